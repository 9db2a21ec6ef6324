// Package main is the evsavings command.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/evsavings/internal/cli"
	"github.com/rshade/evsavings/pkg/version"
)

func run() error {
	return cli.Execute(version.GetVersion())
}

// exitCode maps an error returned by run to a process exit code. An
// *cli.ExitError anywhere in the chain supplies its own code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}

func main() {
	err := run()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
