package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: connection failures, storage errors, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing or malformed arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested project was not found.
	ExitNotFound = 3

	// ExitDataErr indicates stored data that cannot be read back.
	// Use for: rows that no longer match the expected schema.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty names, out-of-range difficulty, negative hours.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command.
// Commands return it instead of calling os.Exit; only main exits.
type CommandError struct {
	Code int
	Err  error
}

// NewCommandError wraps err with an exit code
func NewCommandError(code int, err error) *CommandError {
	return &CommandError{Code: code, Err: err}
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}
