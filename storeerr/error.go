// Package storeerr defines the closed set of failure kinds surfaced by the
// storage core, and a small wrapped-error type that carries a Kind through
// errors.Is/errors.As while keeping the underlying cause.
package storeerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the core's documented failure modes. Kind values
// are comparable and are the thing callers should switch on, not error
// message text.
type Kind int

const (
	// UnknownType is returned when a type tag does not match any
	// supported scalar type.
	UnknownType Kind = iota
	// TypeMismatch is returned when a variant cannot be cast to the
	// target scalar type.
	TypeMismatch
	// ArityMismatch is returned when a row's value count does not match
	// a chunk's column count.
	ArityMismatch
	// OutOfRange is returned when a chunk, column, or row index is out
	// of bounds.
	OutOfRange
	// ValueOutOfRange is returned when a dictionary code exceeds the
	// width of the attribute vector storing it.
	ValueOutOfRange
	// ImmutableColumn is returned when a write is attempted against a
	// dictionary or reference column.
	ImmutableColumn
	// UnknownColumn is returned when a column name does not resolve.
	UnknownColumn
	// UnknownTable is returned when a table name does not resolve.
	UnknownTable
	// DuplicateName is returned when a table name is already in use.
	DuplicateName
)

func (k Kind) String() string {
	switch k {
	case UnknownType:
		return "UnknownType"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case OutOfRange:
		return "OutOfRange"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case ImmutableColumn:
		return "ImmutableColumn"
	case UnknownColumn:
		return "UnknownColumn"
	case UnknownTable:
		return "UnknownTable"
	case DuplicateName:
		return "DuplicateName"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by this module. It always
// carries a Kind and a human-readable message, and may wrap an underlying
// cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, storeerr.New(storeerr.UnknownType, "")) style matching
// works; callers more commonly use Is(err, Kind) via the package-level Is
// helper below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an *Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given Kind that wraps cause, recording
// a stack trace via github.com/pkg/errors.WithStack (always, even if cause
// already carries one).
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// Is reports whether err is, or wraps, a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
