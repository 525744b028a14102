package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/forthic-lang/forthic"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "parse and execute a forthic source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}

	prog, err := forthic.Parse(filename, src)
	if err != nil {
		var syn *forthic.SyntaxError
		if errors.As(err, &syn) {
			return syn
		}
		return err
	}
	defer prog.Release()

	opts := []forthic.Option{
		forthic.WithOutput(os.Stdout),
		forthic.WithLogf(logf),
		forthic.WithTrace(traceFlag),
	}
	if maxStackDepthFlag > 0 {
		opts = append(opts, forthic.WithMaxStackDepth(maxStackDepthFlag))
	}

	ctx := forthic.NewContext(opts...)
	defer ctx.Close()

	if err := ctx.Exec(prog); err != nil {
		// ctx.Exec has already logged a non-fatal error (stack underflow,
		// type error, name error) through WithLogf; only a *FatalError
		// escalates the command's exit code.
		var fatal *forthic.FatalError
		if errors.As(err, &fatal) {
			return fatal
		}
	}

	fmt.Fprintln(os.Stdout, ctx.Render())
	return nil
}
