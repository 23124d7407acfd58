// Command ffx encrypts and decrypts values with FFX[radix] format-preserving encryption.
package main

import (
	"fmt"
	"os"

	"github.com/ffx-go/ffxradix/internal/commands"
	"github.com/ffx-go/ffxradix/internal/config"
)

// version is set at build time with -ldflags.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
