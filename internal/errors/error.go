package errors

import (
	"fmt"
)

// Error pairs a Kind with a human-readable message and an optional
// wrapped cause. It is the concrete error type returned by every
// consensus-path function in this kernel (spec §7: "all errors are
// surfaced to the caller with their kind; no local recovery inside the
// consensus core").
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates an *Error of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error of kind k whose cause is err. If err is nil,
// Wrap returns nil, so call sites can write
// `return errors.Wrap(KindX, err)` unconditionally in a defer or
// helper without a nil check.
func Wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Message: err.Error(), Cause: err}
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is supports errors.Is(err, SomeKind) and errors.Is(err, otherErr).
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		if e.Kind == t.Kind {
			return true
		}
	case Kind:
		if e.Kind == t {
			return true
		}
	}
	if e.Cause != nil {
		if u, ok := e.Cause.(interface{ Is(error) bool }); ok {
			return u.Is(target)
		}
	}
	return false
}
