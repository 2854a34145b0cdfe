// Package errs defines the evaluation error taxonomy: errors are
// classified by semantic kind rather than by Go type hierarchy, matching
// how the original interpreter reports a kind string alongside the
// offending name or index.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the evaluation error kinds: the eleven evaluation-time
// kinds plus KindMismatch.
type Kind string

const (
	MalformedAST          Kind = "malformed_ast"
	UndefinedSymbol       Kind = "undefined_symbol"
	DuplicateBinding      Kind = "duplicate_binding"
	TypeError             Kind = "type_error"
	ArityMismatch         Kind = "arity_mismatch"
	ArgumentTypeMismatch  Kind = "argument_type_mismatch"
	MemberNotFound        Kind = "member_not_found"
	IndexOutOfRange       Kind = "index_out_of_range"
	DivideByZero          Kind = "divide_by_zero"
	MissingReturn         Kind = "missing_return"
	ReturnInGlobal        Kind = "return_in_global"
	KindMismatch          Kind = "kind_mismatch" // cross-tag compare/equals
)

// EvalError is the error type raised by every evaluation-time failure.
// Subject names the offending symbol, member, or index when available.
type EvalError struct {
	Kind    Kind
	Subject string
	cause   error
}

func (e *EvalError) Error() string {
	if e.Subject == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *EvalError) Unwrap() error { return e.cause }

// New builds an EvalError whose subject is format rendered with args.
func New(kind Kind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Subject: fmt.Sprintf(format, args...), cause: errors.New(string(kind))}
}

// Newf is an alias of New kept for call sites that read more naturally
// with a formatting-style name.
func Newf(kind Kind, format string, args ...any) *EvalError {
	return New(kind, format, args...)
}

// Wrap attaches kind and subject context to an existing error, preserving
// its stack trace via github.com/pkg/errors.
func Wrap(cause error, kind Kind, subject string) *EvalError {
	return &EvalError{Kind: kind, Subject: subject, cause: errors.WithStack(cause)}
}

// Is reports whether err is an EvalError of the given kind.
func Is(err error, kind Kind) bool {
	var e *EvalError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
