// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     shell
// Description: Error taxonomy recovered at the dispatch boundary
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"errors"
	"fmt"
)

// Kind classifies errors surfaced by handlers and the loop
type Kind string

const (
	KindUserInput      Kind = "USER_INPUT"
	KindResource       Kind = "RESOURCE"
	KindUnknownCommand Kind = "UNKNOWN_COMMAND"
	KindInterrupt      Kind = "INTERRUPT"
	KindInternal       Kind = "INTERNAL"
)

// ErrInterrupt is returned by a LineReader when the user interrupts a read
var ErrInterrupt = &Error{Kind: KindInterrupt, Msg: "interrupted"}

// Error is a classified shell error. Msg is what the user sees, Err is the
// underlying cause if any, Op names the command for diagnostics.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same Kind, so errors.Is(err, ErrInterrupt) holds
// for every interrupt error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// Usage reports missing or malformed arguments with a usage hint
func Usage(usage string) error {
	return &Error{Kind: KindUserInput, Msg: "Usage: " + usage}
}

// UserInput reports invalid arguments
func UserInput(op, format string, args ...interface{}) error {
	return &Error{Kind: KindUserInput, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Resource wraps a filesystem or configuration failure
func Resource(op, msg string, err error) error {
	return &Error{Kind: KindResource, Op: op, Msg: msg, Err: err}
}

// UnknownCommand reports a name with no registry entry
func UnknownCommand(name string) error {
	return &Error{Kind: KindUnknownCommand, Msg: "Command not found: " + name}
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
