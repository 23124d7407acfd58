package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ffx-go/ffxradix/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [values...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt values",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg, v)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	cryptFlags(cmd)

	return cmd
}
