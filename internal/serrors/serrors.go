// Package serrors defines the domain error taxonomy of the rewriting core,
// adapted from sentra's internal/errors package (SentraError) to the three
// error categories the engine's spec recognizes: structural diagnostics,
// which in Go are caught by the type system and are not represented here;
// rewrite non-events, which are not errors and never surface one; and
// numeric domain issues raised by rules themselves (division by the literal
// zero, an unprovable non-zero exponent).
package serrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of a domain error.
type Kind string

const (
	// DivisionByZero is raised when a literal Fraction or constant-folding
	// division has denominator zero. The spec treats this as a
	// static_assert failure — an authoring error, not a recoverable
	// runtime condition — so constructors panic with it rather than
	// returning an error.
	DivisionByZero Kind = "DivisionByZero"

	// UnprovableExponent marks a rule that declined to rewrite 0^x because
	// no predicate could prove x is non-zero. Not panicked; recorded only
	// for diagnostics when a caller asks for a rule trace.
	UnprovableExponent Kind = "UnprovableExponent"

	// DepthExceeded and IterationCapReached record a graceful stop, never
	// an error in the Go sense (§7.3): the pipeline still returns a valid
	// Expr. Carried for diagnostic traces only.
	DepthExceeded      Kind = "DepthExceeded"
	IterationCapReached Kind = "IterationCapReached"
)

// DomainError is a located, typed error describing a numeric domain issue
// surfaced by a rule or operator.
type DomainError struct {
	Kind    Kind
	Message string
	Rule    string // name of the rule or operator that raised it, if any
}

func (e *DomainError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s: %s (in %s)", e.Kind, e.Message, e.Rule)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds a DomainError and wraps it with github.com/pkg/errors so call
// sites that propagate it (CLI, REPL) retain a stack trace for diagnostics.
func New(kind Kind, rule, format string, args ...interface{}) error {
	return errors.WithStack(&DomainError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Rule:    rule,
	})
}

// IsKind reports whether err is a *DomainError of the given kind, unwrapping
// github.com/pkg/errors wrapping as needed.
func IsKind(err error, kind Kind) bool {
	var de *DomainError
	for err != nil {
		if d, ok := err.(*DomainError); ok {
			de = d
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return de != nil && de.Kind == kind
}

// Panic raises a DomainError as a panic — the rendering of a compile-time
// static_assert failure into Go, where the nearest equivalent of "this
// program must not have been accepted" is a runtime panic on construction,
// the same way Go itself panics on integer division by zero.
func Panic(kind Kind, rule, format string, args ...interface{}) {
	panic(&DomainError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Rule:    rule,
	})
}
