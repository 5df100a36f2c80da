// SPDX-License-Identifier: MIT

// Command bosnet designs collection networks for balance-of-system cost
// estimates and prints the results as JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:          "bosnet",
		Short:        "Collection-network design engine for balance-of-system cost estimation",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "console", "log format (json|console)")

	root.AddCommand(designCmd(g))
	root.AddCommand(layoutCmd(g))
	root.AddCommand(sweepCmd(g))
	root.AddCommand(catalogCmd(g))

	return root
}

// logger builds the run logger; logs go to w, results to stdout.
func (g *globalFlags) logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(g.logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}

	switch g.logFormat {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	default:
		return zerolog.Nop(), fmt.Errorf("--log-format: unknown format %q", g.logFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
