package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	return confirm(os.Stdin, os.Stdout, prompt, defaultYes)
}

func confirm(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(out, prompt+suffix)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(w, "✓", "OK", format, args...)
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(w, "ℹ", "INFO", format, args...)
}

// PrintWarning prints a warning message, also in quiet mode
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	printTagged(w, "⚠", "WARNING", format, args...)
}

// PrintError prints an error message, also in quiet mode
func PrintError(w io.Writer, format string, args ...interface{}) {
	printTagged(w, "✗", "ERROR", format, args...)
}

// printTagged prefixes the message with a symbol, or with a word under --no-color
func printTagged(w io.Writer, symbol, word, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", word, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// IsQuiet reports whether informational output is suppressed
func IsQuiet() bool {
	return quiet
}
