package main

import (
	"errors"

	"github.com/aretw0/notes/pkg/core"
)

// Exit codes
const (
	ExitSuccess  = 0 // Success
	ExitError    = 1 // I/O or other runtime failure
	ExitUsage    = 2 // Missing subcommand, bad id or bad text
	ExitNotFound = 3 // Unknown id or empty store
)

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errUsage) {
		return ExitUsage
	}

	var e *core.Error
	if !errors.As(err, &e) {
		// cobra reports unknown commands and argument errors as plain errors.
		return ExitUsage
	}

	switch e.Kind {
	case core.KindBadArgument:
		return ExitUsage
	case core.KindUnknownID, core.KindEmptyStore, core.KindNotFound:
		return ExitNotFound
	default:
		return ExitError
	}
}
