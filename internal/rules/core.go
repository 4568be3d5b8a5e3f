// Package rules holds the concrete Rewrite{pattern, replacement, predicate}
// rules organized into RewriteSystems (spec §4.7): constant folding, power,
// addition, multiplication, subtraction/division normalization, log/exp,
// trig, Pythagorean, fraction handling. The sets implemented here are the
// spec's authoritative rule inventory.
package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/strategy"
	"symalg/internal/symbolic"
)

// Rewrite is the rule primitive of spec §4.7: when applied to E, it
// extracts bindings from pattern, and if extraction succeeds and predicate
// holds, returns Substitute(replacement, bindings); otherwise it returns E
// unchanged.
//
// Exactly one of Replacement or Compute should be set. Replacement is a
// template substituted declaratively (the common case — most rules are
// pure tree rewrites). Compute is used by the handful of rules that need
// to inspect or calculate over the bound sub-expressions directly: constant
// folding (evaluating an operator on numeric leaves) and the two
// termination-guarded rules (like-term factoring measured by node count,
// associativity re-bracketing gated on "does it enable a further rule").
// Compute returns nil to decline firing even though the shape matched. It
// receives the active Context so rules that fold or evaluate (constant
// folding, exact trig-angle evaluation) can decline when the caller has
// asked for symbolic-only rewriting (ctx.Has(context.ConstantFoldingEnabled)
// is false) instead of folding unconditionally.
type Rewrite struct {
	Name        string
	Pattern     symbolic.Expr
	Predicate   match.Predicate
	Replacement symbolic.Expr
	Compute     func(b match.Bindings, ctx context.Context) symbolic.Expr
}

func (r *Rewrite) Apply(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	b, ok := match.Match(r.Pattern, e)
	if !ok {
		return e
	}
	pred := r.Predicate
	if pred == nil {
		pred = match.AlwaysTrue
	}
	if !pred(b) {
		return e
	}
	if r.Compute != nil {
		res := r.Compute(b, ctx)
		if res == nil {
			return e
		}
		return res
	}
	return match.Substitute(r.Replacement, b)
}

// System is a RewriteSystem: it tries its members (Rewrites or nested
// Systems — both satisfy strategy.Strategy) in declaration order; the first
// one that changes the term wins (spec §4.7).
type System struct {
	Name       string
	Strategies []strategy.Strategy
}

func NewSystem(name string, members ...strategy.Strategy) *System {
	return &System{Name: name, Strategies: members}
}

func (s *System) Apply(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	for _, st := range s.Strategies {
		r := st.Apply(e, ctx)
		if !exprEqual(r, e) {
			return r
		}
	}
	return e
}

func exprEqual(a, b symbolic.Expr) bool { return match.BooleanMatch(a, b) }

func nodeCount(e symbolic.Expr) int {
	ex, ok := e.(*symbolic.Expression)
	if !ok {
		return 1
	}
	n := 1
	for _, a := range ex.Args {
		n += nodeCount(a)
	}
	return n
}
