// Package main provides the entry point for pulsectl.
//
// pulsectl is the command-line tool for the Neat Pulse API, supporting
// both single-command mode and an interactive menu mode.
package main

import (
	"fmt"
	"os"

	"github.com/neatops/pulsectl/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
