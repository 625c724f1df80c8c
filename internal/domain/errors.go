package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit codes. External tools integrating with crucible can check
// these symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates every requested stage passed.
	ExitSuccess = 0

	// ExitExternal indicates something outside crucible's control failed:
	// a delegated tool, a missing tool binary, a missing manifest. When the
	// delegated tool reported its own non-zero status, that status is
	// forwarded unchanged instead.
	ExitExternal = 1

	// ExitInternal indicates a usage or internal error: unknown stage,
	// excess arguments, bad flags.
	ExitInternal = 2

	// ExitInterrupt indicates the operator interrupted the run.
	ExitInterrupt = 130
)

// ExternalError marks a failure outside crucible's control. Code carries the
// delegated tool's exit status when one exists; zero means "no tool status",
// which maps to ExitExternal.
type ExternalError struct {
	Code int
	Err  error
}

func (e *ExternalError) Error() string { return e.Err.Error() }

func (e *ExternalError) Unwrap() error { return e.Err }

// Externalf builds an ExternalError with a formatted message.
func Externalf(code int, format string, args ...any) error {
	return &ExternalError{Code: code, Err: fmt.Errorf(format, args...)}
}

// UnknownStageError reports an unrecognized stage token along with the full
// list of valid tokens.
type UnknownStageError struct {
	Token string
	Valid []string
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("unknown stage %q\nvalid stages: %s", e.Token, strings.Join(e.Valid, ", "))
}

// ExitCodeFor maps an error to the process exit status. Delegated tool
// statuses propagate verbatim; everything else is an internal error.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ext *ExternalError
	if errors.As(err, &ext) {
		if ext.Code > 0 {
			return ext.Code
		}
		return ExitExternal
	}
	return ExitInternal
}
