package driver

import "errors"

// ExitError requests a specific process exit code, typically the status of
// a collaborator that exited non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit codes used when no collaborator status applies.
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitMisusage          = 2
	ExitNotExecutable     = 126
	ExitNotFound          = 127
	ExitMissingExecutable = 255 // what exit(-1) becomes on POSIX
)

// ExitCode converts an error to a process exit code.
// Precedence:
//  1. nil is success
//  2. ExitError (requested code, verbatim)
//  3. Error category
//  4. general error
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var e *Error
	if errors.As(err, &e) {
		switch {
		case e.IsUsage():
			return ExitMisusage
		case e.Type == ErrorTypeMissingExecutable:
			return ExitMissingExecutable
		}
	}
	return ExitGeneralError
}
