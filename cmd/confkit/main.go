// Package main is the entry point for the confkit CLI.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/thoreinstein/confkit/cmd/confkit/commands"
	"github.com/thoreinstein/confkit/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr *errors.ExitError
		if stderrors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(errors.Code(err))
	}
}
