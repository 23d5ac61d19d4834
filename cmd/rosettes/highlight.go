package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbliii/rosettes/pkg/engine"
	"github.com/lbliii/rosettes/pkg/token"
)

func newHighlightCommand() *cobra.Command {
	var (
		formatterName  string
		language       string
		lineNumbers    bool
		highlightLines []int
		containerClass string
		compatStyle    bool
	)

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight source code and print the formatted result",
		Long: `highlight reads source code (from a file argument, or stdin when no
file is given), tokenizes it with the lexer registered for --language, and
renders the result with the formatter registered for --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			style := token.Compatibility
			if !compatStyle {
				style = token.Semantic
			}

			opts := []engine.Option{
				engine.WithFormatter(formatterName),
				engine.WithLineNumbers(lineNumbers),
				engine.WithContainerClass(containerClass),
				engine.WithClassStyle(style),
			}
			if len(highlightLines) > 0 {
				opts = append(opts, engine.WithHighlightedLines(highlightLines...))
			}

			out, err := engine.Highlight(src, language, opts...)
			if err != nil {
				return fmt.Errorf("highlight: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "plaintext", "source language")
	cmd.Flags().StringVarP(&formatterName, "format", "f", "html", "output formatter")
	cmd.Flags().BoolVar(&lineNumbers, "line-numbers", false, "show line numbers")
	cmd.Flags().IntSliceVar(&highlightLines, "highlight-line", nil, "line number to highlight (repeatable)")
	cmd.Flags().StringVar(&containerClass, "container-class", "", "override the formatter's default container class")
	cmd.Flags().BoolVar(&compatStyle, "compat-classes", false, "use short compatibility class names instead of semantic ones")

	return cmd
}

// readInput reads from args[0] when given, otherwise from cmd's input
// stream (stdin outside of tests), the way carv's CLI reads a .carv file
// path but falls back gracefully when no positional argument is supplied
// for commands that accept one.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
