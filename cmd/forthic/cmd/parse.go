package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/forthic-lang/forthic"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a forthic source file and print the parsed program",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(os.Stdout, forthic.Render(prog))
	return nil
}
