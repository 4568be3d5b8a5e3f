// Package pipeline assembles the rule catalog (package rules) and the
// strategy combinators (package strategy) into the named, public
// simplification entry points of spec §4.7: algebraic_simplify and its
// recursive/bottomup/topdown variants, simplify/full_simplify,
// trig_aware_simplify, and two_stage_simplify.
package pipeline

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/rules"
	"symalg/internal/strategy"
	"symalg/internal/symbolic"
)

func exprEqual(a, b symbolic.Expr) bool { return match.BooleanMatch(a, b) }

// AlgebraicSimplify applies the full rule catalog once, at the root only —
// no traversal into sub-expressions. It is the building block the
// traversal-driven variants below are defined in terms of.
func AlgebraicSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return rules.All.Apply(e, ctx)
}

var (
	bottomUpAll = strategy.BottomUp(rules.All)
	topDownAll  = strategy.TopDown(rules.All)
)

// AlgebraicSimplifyRecursive drives AlgebraicSimplify bottom-up over the
// whole tree, once (no fix-point). Also exposed as BottomupSimplify, its
// spec-named alias.
func AlgebraicSimplifyRecursive(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return bottomUpAll.Apply(e, ctx)
}

// BottomupSimplify is the spec-named alias for AlgebraicSimplifyRecursive.
func BottomupSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return bottomUpAll.Apply(e, ctx)
}

// TopdownSimplify drives AlgebraicSimplify top-down over the whole tree,
// once (no fix-point).
func TopdownSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return topDownAll.Apply(e, ctx)
}

var innermostAll = strategy.Innermost(rules.All)

// FullSimplify is the canonical pipeline: FixPoint(innermost(all_rules))
// with a depth guard (carried by ctx) and an iteration cap. Simplify is its
// spec-named alias ("simplify ≡ full_simplify").
func FullSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return strategy.FixPoint(context.DefaultIterationCap, innermostAll).Apply(e, ctx)
}

// Simplify is the spec-named alias for FullSimplify — the default public
// entry point.
func Simplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return FullSimplify(e, ctx)
}

var innermostTrigAware = strategy.Innermost(rules.TrigAware)

// TrigAwareSimplify is FullSimplify's shape with trig-expansion (double
// angle) and Pythagorean rules folded into the catalog.
func TrigAwareSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return strategy.FixPoint(context.DefaultIterationCap, innermostTrigAware).Apply(e, ctx)
}

var topDownQuick = strategy.TopDown(rules.QuickAnnihilators)

// TwoStageSimplify is the performance-oriented variant (spec §4.7): a
// descent pass of quick annihilators (0*_, 1*_, constant folding) top-down
// first, so the ascent pass never recurses into a subtree the descent pass
// is about to erase, then a bottom-up ascent pass running the full rule
// catalog for term collection and factoring. The two passes repeat to a
// fix-point.
func TwoStageSimplify(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	cur := e
	for i := 0; i < context.DefaultIterationCap; i++ {
		descended := topDownQuick.Apply(cur, ctx)
		ascended := bottomUpAll.Apply(descended, ctx)
		if exprEqual(ascended, cur) {
			return ascended
		}
		cur = ascended
	}
	return cur
}
