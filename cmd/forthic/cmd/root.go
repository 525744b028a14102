// Package cmd implements the forthic command-line interface as a
// Cobra command tree.
package cmd

import (
	"os"

	"github.com/forthic-lang/forthic/internal/logio"
	"github.com/spf13/cobra"
)

// Version is overwritten at build time via -ldflags.
var Version = "0.1.0-dev"

var (
	traceFlag         bool
	maxStackDepthFlag int
)

var logger logio.Logger

var rootCmd = &cobra.Command{
	Use:           "forthic",
	Short:         "forthic runs programs in a small stack-oriented concatenative language",
	SilenceErrors: true,
	Version:       Version,
}

func init() {
	logger.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false,
		"log the stack before each conditional/loop-condition evaluation")
	rootCmd.PersistentFlags().IntVar(&maxStackDepthFlag, "max-stack-depth", 0,
		"abort with a runtime error past this many operand stack entries (0 = unbounded)")
}

// logf adapts the package logger to forthic.WithLogf's signature.
func logf(level, format string, args ...interface{}) {
	logger.Printf(level, format, args...)
}

// Execute runs the command tree and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
	}
	return logger.ExitCode()
}
