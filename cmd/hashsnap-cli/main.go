// Package main provides the entry point for hashsnap-cli.
//
// hashsnap-cli is the command-line management tool for HashSnap
// snapshot directories.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/hashsnap-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
