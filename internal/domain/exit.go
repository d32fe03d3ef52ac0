package domain

import (
	"errors"
	"fmt"
)

// Process exit codes for the two fatal conditions.
const (
	ExitNoManifest     = 1
	ExitNoDeclarations = 2
)

// ExitError is a fatal condition carrying a dedicated process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error returns the user-facing message.
func (e *ExitError) Error() string { return e.Message }

// Exitf builds an ExitError from a format string.
func Exitf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error to a process exit code: nil is 0, an ExitError
// carries its own code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return 1
}
