package cli

import (
	"errors"
	"fmt"
)

// ExitError signals that a command failed with a specific exit code.
//
// Commands return NewExitError(code) instead of calling os.Exit, so the code
// travels up to [RunWithConfig] and into [ExecuteResult]. Tests can then
// assert on exit codes without terminating the process.
type ExitError struct {
	// Code is the exit code returned to the shell.
	Code int
}

// Error returns "exit status N", matching os/exec.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError reports whether err is or wraps an [ExitError] and returns
// its code. It returns (0, false) for nil and for any other error.
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
