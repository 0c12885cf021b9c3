// Package serrors provides semantic error kinds for the generation pipeline.
// Each pipeline stage tags its failures with a kind sentinel; the HTTP layer
// maps kinds to status codes without inspecting error strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It distinguishes kind sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is the unexported sentinel implementation behind NewKind.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Kinds are
// comparable and match through errors.Is/As via the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Pipeline stage kinds. Exactly one of these ends up on every failed request.
var (
	// ErrValidation indicates the caller's request was rejected at intake.
	ErrValidation = NewKind("VALIDATION")
	// ErrGeneration indicates the LLM call failed or its output could not be
	// parsed into files.
	ErrGeneration = NewKind("GENERATION")
	// ErrPublish indicates repository creation, file commits or static-hosting
	// activation failed.
	ErrPublish = NewKind("PUBLISH")
)

// Transport-level kinds used by the outbound API clients. They are usually
// wrapped inside a stage kind before reaching the handler.
var (
	// ErrUnauthorized indicates missing or rejected credentials upstream.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrConflict indicates a state conflict, e.g. a repository name that
	// already exists.
	ErrConflict = NewKind("CONFLICT")
	// ErrRateLimited indicates the upstream service throttled the request.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrNotFound indicates the requested entity does not exist upstream.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message. errors.Is/As traverse both the kind and the
// cause chain, so errors.Is(err, ErrPublish) and errors.Is(err, ErrConflict)
// can both hold for a single error.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps a concrete
// cause and adds a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface. Formatting: "<msg>: <cause>" when
// both are set, otherwise whichever is present, falling back to the kind name.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches type assertions against either the kind sentinel or the wrapped
// cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
