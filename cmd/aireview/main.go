// Package main is the entry point for the aireview CLI binary.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/irahardianto/aireview/cmd/aireview/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrCommitCanceled) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
}
