package strategy

import (
	"symalg/internal/context"
	"symalg/internal/symbolic"
)

// mapArgs reconstructs e with every argument replaced by f(arg, ctx),
// returning e itself (not a copy) when nothing changed. Leaves (Symbol,
// Constant, Fraction) are returned unchanged, matching spec §4.6's
// "Leaves are returned unchanged by the recursion."
func mapArgs(e symbolic.Expr, ctx context.Context, f func(symbolic.Expr, context.Context) symbolic.Expr) symbolic.Expr {
	ex, ok := e.(*symbolic.Expression)
	if !ok {
		return e
	}
	args := make([]symbolic.Expr, len(ex.Args))
	changed := false
	for i, a := range ex.Args {
		na := f(a, ctx)
		if !exprEqual(na, a) {
			changed = true
		}
		args[i] = na
	}
	if !changed {
		return e
	}
	return symbolic.NewExpr(ex.Op, args...)
}

// BottomUp (alias Fold) is post-order traversal: every sub-expression is
// transformed first, then s is applied to the reconstructed node.
func BottomUp(s Strategy) Strategy {
	var self Strategy
	self = Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		if ctx.AtDepthLimit() {
			recordDepthExceeded("BottomUp", ctx)
			return e
		}
		next := ctx.IncrementDepth(1)
		transformed := mapArgs(e, next, self.Apply)
		return s.Apply(transformed, ctx)
	})
	return self
}

// Fold is an alias for BottomUp, matching the naming the spec uses
// interchangeably (§4.6, §6).
func Fold(s Strategy) Strategy { return BottomUp(s) }

// TopDown (alias Unfold) is pre-order traversal: s is applied to the node
// first, then the traversal recurses into the arguments of the result.
func TopDown(s Strategy) Strategy {
	var self Strategy
	self = Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		if ctx.AtDepthLimit() {
			recordDepthExceeded("TopDown", ctx)
			return e
		}
		r := s.Apply(e, ctx)
		next := ctx.IncrementDepth(1)
		return mapArgs(r, next, self.Apply)
	})
	return self
}

// Unfold is an alias for TopDown.
func Unfold(s Strategy) Strategy { return TopDown(s) }

// Innermost is bottom-up traversal with an embedded fix-point per node:
// keep applying s at a node until it stabilizes, then propagate the
// stable result up to the parent.
func Innermost(s Strategy) Strategy {
	var self Strategy
	self = Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		if ctx.AtDepthLimit() {
			recordDepthExceeded("Innermost", ctx)
			return e
		}
		next := ctx.IncrementDepth(1)
		cur := mapArgs(e, next, self.Apply)
		converged := false
		for i := 0; i < context.DefaultIterationCap; i++ {
			r := s.Apply(cur, ctx)
			if symbolic.IsNever(r) || exprEqual(r, cur) {
				converged = true
				break
			}
			cur = r
		}
		if !converged {
			recordIterationCapReached("Innermost", context.DefaultIterationCap)
		}
		return cur
	})
	return self
}

// Outermost is top-down traversal with retry: when s changes the root, the
// traversal restarts from the root instead of descending.
func Outermost(s Strategy) Strategy {
	var self Strategy
	self = Func(func(e symbolic.Expr, ctx context.Context) symbolic.Expr {
		if ctx.AtDepthLimit() {
			recordDepthExceeded("Outermost", ctx)
			return e
		}
		cur := e
		for i := 0; i < context.DefaultIterationCap; i++ {
			r := s.Apply(cur, ctx)
			if symbolic.IsNever(r) {
				r = cur
			}
			if exprEqual(r, cur) {
				next := ctx.IncrementDepth(1)
				return mapArgs(cur, next, self.Apply)
			}
			cur = r
		}
		recordIterationCapReached("Outermost", context.DefaultIterationCap)
		return cur
	})
	return self
}
