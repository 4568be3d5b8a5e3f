package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/order"
	"symalg/internal/symbolic"
)

var (
	addZeroLeft = &Rewrite{
		Name:        "AddZeroLeft",
		Pattern:     symbolic.Add(symbolic.C(0), symbolic.Var("x")),
		Replacement: symbolic.Var("x"),
	}
	addZeroRight = &Rewrite{
		Name:        "AddZeroRight",
		Pattern:     symbolic.Add(symbolic.Var("x"), symbolic.C(0)),
		Replacement: symbolic.Var("x"),
	}
	likeTerms = &Rewrite{
		Name:        "LikeTerms",
		Pattern:     symbolic.Add(symbolic.Var("x"), symbolic.Var("x")),
		Replacement: symbolic.Mul(symbolic.C(2), symbolic.Var("x")),
	}
)

// factorLeft and factorRight implement "x*a + x -> x*(a+1)" and its mirror,
// folding the coefficient with ConstantFold before comparing node counts,
// per spec §4.7 ("only applied when it shortens the expression, measured
// by node count on the simplified coefficient").
var factorLeft = &Rewrite{
	Name:    "FactorLeft",
	Pattern: symbolic.Add(symbolic.Mul(symbolic.Var("x"), symbolic.Var("a")), symbolic.Var("x")),
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		original := symbolic.Add(symbolic.Mul(b["x"], b["a"]), b["x"])
		return factorCandidate(b["x"], b["a"], symbolic.C(1), original, ctx)
	},
}

var factorRight = &Rewrite{
	Name:    "FactorRight",
	Pattern: symbolic.Add(symbolic.Var("x"), symbolic.Mul(symbolic.Var("x"), symbolic.Var("a"))),
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		original := symbolic.Add(b["x"], symbolic.Mul(b["x"], b["a"]))
		return factorCandidate(b["x"], symbolic.C(1), b["a"], original, ctx)
	},
}

var factorBoth = &Rewrite{
	Name: "FactorBoth",
	Pattern: symbolic.Add(
		symbolic.Mul(symbolic.Var("x"), symbolic.Var("a")),
		symbolic.Mul(symbolic.Var("x"), symbolic.Var("b")),
	),
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		original := symbolic.Add(symbolic.Mul(b["x"], b["a"]), symbolic.Mul(b["x"], b["b"]))
		return factorCandidate(b["x"], b["a"], b["b"], original, ctx)
	},
}

func factorCandidate(x, a, bb, original symbolic.Expr, ctx context.Context) symbolic.Expr {
	coeff := foldIfNumeric(symbolic.Add(a, bb), ctx)
	candidate := symbolic.Mul(x, coeff)
	if nodeCount(candidate) < nodeCount(original) {
		return candidate
	}
	return nil
}

// canonicalAdd reorders x+y to y+x iff y<x under the total order, giving
// commutative addition a single canonical orientation.
var canonicalAdd = &Rewrite{
	Name:        "CanonicalAdd",
	Pattern:     symbolic.Add(symbolic.Var("x"), symbolic.Var("y")),
	Replacement: symbolic.Add(symbolic.Var("y"), symbolic.Var("x")),
	Predicate: func(b match.Bindings) bool {
		return order.Less(b["y"], b["x"])
	},
}

// additionQuickRules is a restricted set of rules checked for "does the
// right-associated form then simplify" before associativityAdd fires.
var additionQuickRules = []*Rewrite{addZeroLeft, addZeroRight, likeTerms, factorLeft, factorRight, factorBoth}

// associativityAdd re-brackets (a+b)+c -> a+(b+c) only when doing so
// enables a subsequent rule on the newly adjacent (b+c) pair — never
// unconditionally, to avoid oscillating with a hypothetical reverse rule
// (spec §4.7, §9 termination discipline).
var associativityAdd = &Rewrite{
	Name: "AssociativityAdd",
	Pattern: symbolic.Add(
		symbolic.Add(symbolic.Var("a"), symbolic.Var("b")),
		symbolic.Var("c"),
	),
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		inner := symbolic.Add(b["b"], b["c"])
		simplified := inner
		for _, r := range additionQuickRules {
			if r2 := r.Apply(simplified, ctx); !exprEqual(r2, simplified) {
				simplified = r2
				break
			}
		}
		if exprEqual(simplified, inner) {
			return nil
		}
		return symbolic.Add(b["a"], simplified)
	},
}

// AdditionSystem is the addition RewriteSystem of spec §4.7.
var AdditionSystem = NewSystem("Addition",
	addZeroLeft, addZeroRight, likeTerms,
	factorLeft, factorRight, factorBoth,
	canonicalAdd, associativityAdd,
)
