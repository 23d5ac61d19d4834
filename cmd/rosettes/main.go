package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rosettes",
	Short: "rosettes highlights and tokenizes source code",
	Long:  `rosettes is a syntax highlighting and tokenization library with a small command-line front end.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func main() {
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newTokenizeCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newFormattersCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
