package main

import (
	"errors"

	"github.com/metalagman/todo/internal/config"
	"github.com/metalagman/todo/internal/task"
)

// Exit codes returned by the CLI.
const (
	exitOK = 0
	// exitUserError covers bad arguments, unknown names and duplicates.
	exitUserError = 1
	// exitStorageError covers unreadable, invalid or unwritable documents
	// and configuration.
	exitStorageError = 2
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, task.ErrIO),
		errors.Is(err, task.ErrDecode),
		errors.Is(err, task.ErrEncode),
		errors.Is(err, config.ErrInvalid):
		return exitStorageError
	default:
		return exitUserError
	}
}
