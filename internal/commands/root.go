// Package commands provides the command-line interface for the ffx tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key generation
//
// Flags are bound through viper, so every flag can also be set from an
// FFX_* environment variable or a config file.
package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ffx-go/ffxradix/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FFX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "ffx [flags] command [flags]",
		Short: "Format-preserving encryption over radix 2-62",
		Long: `Encrypts and decrypts strings with FFX[radix] so that the ciphertext keeps
the length and alphabet of the plaintext. Values are taken from the arguments,
or read one per line from stdin when no arguments are given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a config file (yaml, toml or json)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		NewEncryptCommand(cfg, v),
		NewDecryptCommand(cfg, v),
		NewKeygenCommand(),
	)

	return root
}

// cryptFlags registers the flags shared by encrypt and decrypt.
func cryptFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Encryption key (16, 24 or 32 bytes, hex-encoded)")
	cmd.Flags().StringP("tweak", "t", "", "Tweak as raw text")
	cmd.Flags().String("tweak-hex", "", "Tweak as hex, instead of --tweak")
	cmd.Flags().IntP("radix", "r", 10, "Radix of the input, between 2 and 62")
	cmd.Flags().StringP("alphabet", "a", "", "Explicit alphabet; overrides --radix and --ordering")
	cmd.Flags().String("ordering", config.OrderingCanonical, "Digit ordering above radix 36: canonical (0-9a-zA-Z) or gmp (0-9A-Za-z)")
}

// preRun returns a PreRunE handler that loads flags, environment and
// config file into cfg and validates the result.
func preRun(cfg *config.Config, v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if path := v.GetString("config"); path != "" {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Inputs = args

		return cfg.Validate()
	}
}

// newLogger writes to the command's stderr, at debug level when verbose.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
