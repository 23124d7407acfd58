package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// NewKeygenCommand creates a new cobra command that prints a random hex key.
func NewKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keygen",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bits, err := cmd.Flags().GetInt("bits")
			if err != nil {
				return err
			}

			switch bits {
			case 128, 192, 256:
			default:
				return fmt.Errorf("bits must be 128, 192, or 256: got %d", bits)
			}

			key := make([]byte, bits/8)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))

			return nil
		},
	}

	cmd.Flags().IntP("bits", "b", 256, "Key size in bits: 128, 192 or 256")

	return cmd
}
