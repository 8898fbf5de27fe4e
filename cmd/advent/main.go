// Command advent scaffolds, tracks, and runs daily puzzle solutions.
package main

import (
	"context"
	"os"

	"advent/internal/cli"
	"advent/internal/errors"
)

func main() {
	err := cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
