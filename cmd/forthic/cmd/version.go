package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the forthic version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forthic version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
