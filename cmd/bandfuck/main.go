// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command bandfuck interprets programs over a cyclic byte band.
//
// Usage:
//
//	bandfuck run <file.bf>     run a program
//	bandfuck check <file.bf>   report unmatched brackets
//	bandfuck step <file.bf>    step through a program interactively
//
// Exits with 0 on success, 1 on usage or runtime errors, and 2 when the
// program could not be loaded.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const (
	EXIT_OK    = 0
	EXIT_ERROR = 1
	EXIT_LOAD  = 2
)

// exitError selects the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (ee *exitError) Error() string {
	return ee.err.Error()
}

func (ee *exitError) Unwrap() error {
	return ee.err
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bandfuck",
		Short:         "Interpret programs over a cyclic byte band",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(stepCmd())
	return cmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	err := rootCmd().Execute()
	if err == nil {
		os.Exit(EXIT_OK)
	}

	log.Print(err)

	code := EXIT_ERROR
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
	}
	os.Exit(code)
}
