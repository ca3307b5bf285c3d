package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// printSuccess prints a success line, styled when stdout is a terminal
func printSuccess(msg string) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.Success.Println(msg)
		return
	}
	fmt.Println(msg)
}

// PrintError prints an error line, styled when stderr is a terminal.
// The root command silences cobra's own error printing, so this is the
// single place run failures are reported.
func PrintError(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		pterm.Error.Println(err.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
