package ppm

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification; every *Error matches one of them
// through errors.Is.
var (
	ErrFormat = errors.New("malformed ppm data")
	ErrRead   = errors.New("ppm read failed")
	ErrWrite  = errors.New("ppm write failed")
)

// ErrorKind separates malformed input from I/O failures.
type ErrorKind string

const (
	KindFormat ErrorKind = "format"
	KindRead   ErrorKind = "read"
	KindWrite  ErrorKind = "write"
)

// Error wraps an underlying failure with the operation, kind, and optional path.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: file being read or written
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrFormat:
		return e.Kind == KindFormat
	case ErrRead:
		return e.Kind == KindRead
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// IsKind reports whether err carries a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

func formatErrorf(op, format string, args ...any) error {
	return &Error{Op: op, Kind: KindFormat, Err: fmt.Errorf(format, args...)}
}

// withPath attaches path to err when err is a *Error without one.
func withPath(err error, path string) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return err
}
