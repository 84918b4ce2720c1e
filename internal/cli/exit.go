package cli

import (
	"errors"

	"github.com/idelchi/filefinder/internal/finder"
)

// Exit codes for semantic error classification.
const (
	ExitSuccess      = 0 // Scan completed
	ExitGeneralError = 1 // Unknown or unclassified error
	ExitUsageError   = 2 // Invalid arguments or flags
	ExitPathError    = 3 // Root path missing, not a directory, or unreadable
)

// errUsage marks errors caused by invalid command-line input.
var errUsage = errors.New("usage error")

type wrappedUsage struct {
	err error
}

func (e wrappedUsage) Error() string { return e.err.Error() }

func (e wrappedUsage) Unwrap() []error { return []error{e.err, errUsage} }

func usageError(err error) error {
	return wrappedUsage{err: err}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	var pathErr *finder.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &pathErr):
		return ExitPathError
	case errors.Is(err, errUsage), errors.Is(err, finder.ErrInvalidConfig):
		return ExitUsageError
	default:
		return ExitGeneralError
	}
}
