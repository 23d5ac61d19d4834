package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI builds a fresh root command (mirroring main's wiring) and executes
// it with args, capturing stdout/stderr into a single buffer the way
// cobra.Command.SetOut/SetErr is used in denisvmedia/inventario's subcommand
// tests.
func runCLI(stdin string, args ...string) (string, error) {
	cmd := *rootCmd // shallow copy so flag state from one test doesn't leak into another
	cmd.ResetCommands()
	cmd.AddCommand(newHighlightCommand())
	cmd.AddCommand(newTokenizeCommand())
	cmd.AddCommand(newLanguagesCommand())
	cmd.AddCommand(newFormattersCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestHighlightCommandFromStdin(t *testing.T) {
	out, err := runCLI("def f(): pass", "highlight", "--language=python", "--format=null")
	if err != nil {
		t.Fatal(err)
	}
	if out != "def f(): pass" {
		t.Fatalf("got %q", out)
	}
}

func TestHighlightCommandLineNumbers(t *testing.T) {
	out, err := runCLI("a\nb", "highlight", "--language=plaintext", "--line-numbers")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="ln"`) {
		t.Fatalf("expected line-number markup, got: %s", out)
	}
}

func TestHighlightCommandUnknownFormatterErrors(t *testing.T) {
	_, err := runCLI("x", "highlight", "--format=pdf")
	if err == nil {
		t.Fatal("expected an error for an unknown formatter")
	}
}

func TestTokenizeCommandTableOutput(t *testing.T) {
	out, err := runCLI("x", "tokenize", "--language=plaintext")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "LINE") || !strings.Contains(out, `"x"`) {
		t.Fatalf("unexpected table output: %s", out)
	}
}

func TestTokenizeCommandJSONOutput(t *testing.T) {
	out, err := runCLI("x", "tokenize", "--language=plaintext", "--output=json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"category"`) || !strings.Contains(out, `"text": "x"`) {
		t.Fatalf("unexpected JSON output: %s", out)
	}
}

func TestLanguagesCommandListsPython(t *testing.T) {
	out, err := runCLI("", "languages")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "python") {
		t.Fatalf("expected python in language list, got: %s", out)
	}
}

func TestFormattersCommandListsHTML(t *testing.T) {
	out, err := runCLI("", "formatters")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "html") {
		t.Fatalf("expected html in formatter list, got: %s", out)
	}
}

func TestHighlightCommandMissingFileErrors(t *testing.T) {
	_, err := runCLI("", "highlight", "testdata/does-not-exist.py")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
