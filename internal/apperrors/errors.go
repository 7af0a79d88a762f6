package apperrors

import (
	"fmt"
	"strings"
)

// ErrDecode is returned when no candidate encoding manages to decode a file.
type ErrDecode struct {
	Path  string
	Tried []string
}

// Error implements the error interface.
func (e *ErrDecode) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no candidate encoding decoded %s (tried %s)", e.Path, strings.Join(e.Tried, ", "))
	}
	return fmt.Sprintf("no candidate encoding decoded content (tried %s)", strings.Join(e.Tried, ", "))
}

// Is allows for error checking with errors.Is().
func (e *ErrDecode) Is(target error) bool {
	_, ok := target.(*ErrDecode)
	return ok
}

// NewDecodeError creates a new ErrDecode for the given path and attempted encodings.
func NewDecodeError(path string, tried []string) *ErrDecode {
	return &ErrDecode{
		Path:  path,
		Tried: tried,
	}
}

// ErrAnchorNotFound is returned when a document has no head section to anchor
// an insertion to. It is non-fatal: callers report it as a skip, not a failure.
type ErrAnchorNotFound struct {
	Path string
}

// Error implements the error interface.
func (e *ErrAnchorNotFound) Error() string {
	return fmt.Sprintf("no <head> section found in %s", e.Path)
}

// Is allows for error checking with errors.Is().
func (e *ErrAnchorNotFound) Is(target error) bool {
	_, ok := target.(*ErrAnchorNotFound)
	return ok
}

// ErrFileAccess wraps a filesystem error with the path and operation that failed.
type ErrFileAccess struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *ErrFileAccess) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrFileAccess) Is(target error) bool {
	_, ok := target.(*ErrFileAccess)
	return ok
}

// Unwrap exposes the underlying filesystem error.
func (e *ErrFileAccess) Unwrap() error {
	return e.Err
}
