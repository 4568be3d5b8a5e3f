// Package strategy implements the combinator algebra of spec §4.6: every
// Strategy exposes Apply(expr, ctx) -> expr'. Failure is signalled by
// returning the input unchanged (preferred, for any Strategy that might
// reach a public pipeline boundary) or the Never sentinel (internal
// channels only — Fail, and the losing branches of Choice).
package strategy

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/symbolic"
)

// Strategy is anything with Apply(expr, ctx) -> expr'.
type Strategy interface {
	Apply(e symbolic.Expr, ctx context.Context) symbolic.Expr
}

// Func adapts a plain function to the Strategy interface, the same pattern
// net/http uses for http.HandlerFunc.
type Func func(symbolic.Expr, context.Context) symbolic.Expr

func (f Func) Apply(e symbolic.Expr, ctx context.Context) symbolic.Expr { return f(e, ctx) }

// exprEqual reports whether a and b are structurally identical. Reusing
// the matcher as a zero-wildcard equality check is exactly what spec §4.4
// prescribes for repeated-variable consistency; the same check serves
// FixPoint's convergence test and Choice's no-change test.
func exprEqual(a, b symbolic.Expr) bool {
	return match.BooleanMatch(a, b)
}

// Identity always succeeds, returning its input unchanged.
var Identity Strategy = Func(func(e symbolic.Expr, _ context.Context) symbolic.Expr { return e })

// Fail always fails, returning the Never sentinel. Internal-channel only —
// never return the result of Fail.Apply from a public pipeline.
var Fail Strategy = Func(func(symbolic.Expr, context.Context) symbolic.Expr { return symbolic.Never })

// Sequence applies s1, then s2, ... to the running result; it fails (Never)
// if any stage fails.
func Sequence(ss ...Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		cur := e
		for _, s := range ss {
			cur = s.Apply(cur, ctx)
			if symbolic.IsNever(cur) {
				return symbolic.Never
			}
		}
		return cur
	})
}

// Choice tries each strategy in order; on failure or no-change it tries the
// next, returning the first result that differs from the input. If every
// strategy fails or leaves the input unchanged, Choice returns the input
// unchanged — never Never, so Choice is always safe at a pipeline boundary.
func Choice(ss ...Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		for _, s := range ss {
			r := s.Apply(e, ctx)
			if symbolic.IsNever(r) {
				continue
			}
			if !exprEqual(r, e) {
				return r
			}
		}
		return e
	})
}

// Try applies s; on failure it returns the input unchanged.
func Try(s Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		r := s.Apply(e, ctx)
		if symbolic.IsNever(r) {
			return e
		}
		return r
	})
}

// When applies s only when pred(expr, ctx) holds; otherwise returns the
// input unchanged.
func When(pred func(symbolic.Expr, context.Context) bool, s Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		if !pred(e, ctx) {
			return e
		}
		return s.Apply(e, ctx)
	})
}

// Repeat applies s exactly n times, short-circuiting (and returning the
// last successful result) if s ever fails.
func Repeat(n int, s Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		cur := e
		for i := 0; i < n; i++ {
			r := s.Apply(cur, ctx)
			if symbolic.IsNever(r) {
				break
			}
			cur = r
		}
		return cur
	})
}

// FixPoint repeatedly applies s until either a pass produces a result
// identical to its input (convergence) or cap iterations are reached. The
// per-context depth guard additionally stops recursion inside s (e.g. a
// traversal combinator) to prevent unbounded work.
func FixPoint(cap int, s Strategy) Strategy {
	return Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		cur := e
		for i := 0; i < cap; i++ {
			r := s.Apply(cur, ctx)
			if symbolic.IsNever(r) {
				return cur
			}
			if exprEqual(r, cur) {
				return r
			}
			cur = r
		}
		recordIterationCapReached("FixPoint", cap)
		return cur
	})
}
