package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ffx-go/ffxradix/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [values...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt values",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = false

			return preRun(cfg, v)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg)
		},
	}

	cryptFlags(cmd)

	return cmd
}
