// Package errs defines the typed errors returned by optable.
//
// Every error belongs to a types.Kind (declaration, usage or lookup) and is identified by a message key.
// Package-level sentinels are matched with errors.Is, including copies carrying arguments:
//
//	err := errs.ErrUnknownFlag.WithArgs("--nope")
//	errors.Is(err, errs.ErrUnknownFlag) // true
package errs

import (
	"errors"
	"fmt"

	"github.com/napalu/optable/types"
)

// Error is an error with a taxonomy kind, a message key, optional format arguments
// and an optional wrapped cause.
type Error struct {
	// the sentinel this error was derived from - nil for sentinels
	sentinel *Error
	kind     types.Kind
	key      string
	args     []interface{}
	wrapped  error
}

// New creates a sentinel error
func New(kind types.Kind, key string) *Error {
	return &Error{kind: kind, key: key}
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	msg := Message(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.root(),
		kind:     e.kind,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.root(),
		kind:     e.kind,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is - two errors match when they derive from the same sentinel
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Kind returns the taxonomy kind
func (e *Error) Kind() types.Kind {
	return e.kind
}

// Key returns the message key
func (e *Error) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

func (e *Error) root() *Error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return e
}

// KindOf returns the kind of the first *Error in err's chain, or types.KindUnknown
func KindOf(err error) types.Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return types.KindUnknown
}

// IsFatal returns true when err must stop the caller
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	kind := KindOf(err)

	return kind == types.KindUnknown || kind.Fatal()
}

// Exit statuses follow sysexits.h
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64
	ExitSoftware = 70
)

// ExitCode maps err to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch KindOf(err) {
	case types.KindDeclaration:
		return ExitSoftware
	case types.KindUsage:
		return ExitUsage
	default:
		return ExitFailure
	}
}
