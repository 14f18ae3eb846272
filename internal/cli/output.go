package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Output destinations. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Colors
var (
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("196")
	colorCyan   = lipgloss.Color("14")
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleNoun    = lipgloss.NewStyle().Foreground(colorCyan)
)

// useColor reports whether w is a terminal that should get styled output.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(w io.Writer, style lipgloss.Style, s string) string {
	if !useColor(w) {
		return s
	}
	return style.Render(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	fmt.Fprintf(stdout, "%s %s\n", render(stdout, styleSuccess, "✓"), msg)
}

// printCreated reports a created file
func printCreated(name string) {
	printSuccess("Created " + render(stdout, styleNoun, name))
}

// printWarning prints a warning message
func printWarning(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", render(stderr, styleWarning, "⚠"), msg)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", render(stderr, styleError, "Error:"), err)
}
