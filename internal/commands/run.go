package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ffx-go/ffxradix/ffx"
	"github.com/ffx-go/ffxradix/internal/config"
)

// run encrypts or decrypts every input and writes one result per line.
// Processing stops at the first failing value.
func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd, cfg.Verbose)

	c, err := cfg.Cipher()
	if err != nil {
		return fmt.Errorf("creating cipher: %w", err)
	}

	tweak, err := cfg.TweakBytes()
	if err != nil {
		return err
	}

	op, crypt := "encrypt", c.Encrypt
	if cfg.Decrypt {
		op, crypt = "decrypt", c.Decrypt
	}

	logger.Debug("cipher ready",
		"operation", op,
		"radix", c.Radix(),
		"alphabet", c.Alphabet(),
		"tweak_len", len(tweak),
		"inputs", len(cfg.Inputs),
	)

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	process := func(line int, value string) error {
		result, err := crypt(value, tweak)
		if err != nil {
			logger.Error("value rejected", "line", line, "operation", op, "input_error", ffx.IsInputError(err), "error", err)

			return fmt.Errorf("value %d: %w", line, err)
		}

		_, err = fmt.Fprintln(out, result)

		return err
	}

	if len(cfg.Inputs) > 0 {
		for i, value := range cfg.Inputs {
			if err := process(i+1, value); err != nil {
				return err
			}
		}

		return nil
	}

	return processLines(cmd.InOrStdin(), process, logger)
}

func processLines(r io.Reader, process func(int, string) error, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		if err := process(line, scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	logger.Debug("input processed", "lines", line)

	return nil
}
