package finder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a scan configuration that cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNotDirectory indicates the scan root exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// PathError reports a scan root that is missing, not a directory, or unreadable.
// It is returned before any entry is produced.
type PathError struct {
	// Path is the root being scanned.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("accessing path %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// EntryReadError reports an entry that could not be read mid-traversal.
// The walker skips such entries and keeps going.
type EntryReadError struct {
	// Path is the entry that failed.
	Path string
	// Op is the failed operation ("lstat", "open", "readdir").
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *EntryReadError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *EntryReadError) Unwrap() error {
	return e.Err
}
