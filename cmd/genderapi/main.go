// Package main is the entry point for the genderapi CLI.
package main

import (
	"fmt"
	"os"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to process exit codes.
func exitCode(err error) int {
	typ, ok := errors.TypeOf(err)
	if !ok {
		return 1
	}
	switch typ {
	case errors.ErrConfig:
		return 2
	case errors.ErrValidation:
		return 3
	case errors.ErrAPI:
		return 4
	case errors.ErrTransport:
		return 5
	default:
		return 1
	}
}
