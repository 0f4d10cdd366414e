// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-skf.
//
// go-skf is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Each call returns an independent
// tree with its own configuration, which keeps tests isolated.
func NewRootCommand() *cobra.Command {
	return newRootCommand(NewConfig())
}

func newRootCommand(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skf",
		Short: "SKF vendor adapter inspection tool",
		Long: `skf inspects the vendor adapters compiled into this build and
translates vendor-native algorithm identifiers, capability masks and
error codes into the GM/T 0016 standard identifier space.

Identifier spaces:
  - cipher: block ciphers and modes (DEVINFO AlgSymCap)
  - digest: hash algorithms (DEVINFO AlgHashCap)
  - pkey:   public key algorithms (DEVINFO AlgAsymCap)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "",
		"config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&cfg.OutputFormat, "output", "o", "text",
		"output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.AddCommand(newVersionCmd(cfg))
	rootCmd.AddCommand(newVendorsCmd(cfg))
	rootCmd.AddCommand(newTranslateCmd(cfg))
	rootCmd.AddCommand(newCapsCmd(cfg))
	rootCmd.AddCommand(newReasonCmd(cfg))
	rootCmd.AddCommand(newDeviceCmd(cfg))

	return rootCmd
}

// Execute runs the root command and prints any error in the selected format.
func Execute() error {
	return execute(NewConfig(), os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the command tree over cfg. The log file is closed whether or
// not the command succeeds.
func execute(cfg *Config, args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCommand(cfg)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if closeErr := cfg.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close log file: %w", closeErr))
	}
	if err != nil {
		printer := NewPrinter(cfg.OutputFormat, stderr)
		_ = printer.PrintError(err) // Error printing to stderr is best-effort
	}
	return err
}

// parseUint32 accepts decimal, 0x-prefixed hex, 0o octal and 0b binary.
func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32-bit value %q: %w", s, err)
	}
	return uint32(v), nil
}
