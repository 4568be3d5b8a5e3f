package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/order"
	"symalg/internal/symbolic"
)

var (
	mulZeroLeft = &Rewrite{
		Name:        "MulZeroLeft",
		Pattern:     symbolic.Mul(symbolic.C(0), symbolic.Var("x")),
		Replacement: symbolic.C(0),
	}
	mulZeroRight = &Rewrite{
		Name:        "MulZeroRight",
		Pattern:     symbolic.Mul(symbolic.Var("x"), symbolic.C(0)),
		Replacement: symbolic.C(0),
	}
	mulOneLeft = &Rewrite{
		Name:        "MulOneLeft",
		Pattern:     symbolic.Mul(symbolic.C(1), symbolic.Var("x")),
		Replacement: symbolic.Var("x"),
	}
	mulOneRight = &Rewrite{
		Name:        "MulOneRight",
		Pattern:     symbolic.Mul(symbolic.Var("x"), symbolic.C(1)),
		Replacement: symbolic.Var("x"),
	}
)

var canonicalMul = &Rewrite{
	Name:        "CanonicalMul",
	Pattern:     symbolic.Mul(symbolic.Var("x"), symbolic.Var("y")),
	Replacement: symbolic.Mul(symbolic.Var("y"), symbolic.Var("x")),
	Predicate: func(b match.Bindings) bool {
		return order.Less(b["y"], b["x"])
	},
}

var multiplicationQuickRules = []*Rewrite{
	mulZeroLeft, mulZeroRight, mulOneLeft, mulOneRight,
	combineLeftBare, combineRightBare, combineBothPowers,
}

// associativityMul mirrors associativityAdd: re-bracket only when it
// enables a subsequent rule on the newly adjacent pair.
var associativityMul = &Rewrite{
	Name: "AssociativityMul",
	Pattern: symbolic.Mul(
		symbolic.Mul(symbolic.Var("a"), symbolic.Var("b")),
		symbolic.Var("c"),
	),
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		inner := symbolic.Mul(b["b"], b["c"])
		simplified := inner
		for _, r := range multiplicationQuickRules {
			if r2 := r.Apply(simplified, ctx); !exprEqual(r2, simplified) {
				simplified = r2
				break
			}
		}
		if r2 := foldIfNumeric(inner, ctx); !exprEqual(r2, simplified) && !exprEqual(r2, inner) {
			simplified = r2
		}
		if exprEqual(simplified, inner) {
			return nil
		}
		return symbolic.Mul(b["a"], simplified)
	},
}

// MultiplicationSystem is the multiplication RewriteSystem of spec §4.7.
// Distribution (a*(b+c) -> a*b+a*c) is intentionally absent — the spec
// disables it as an automatic rule because it fights factoring; see
// Distribute in explicit.go for the opt-in, caller-invoked form.
var MultiplicationSystem = NewSystem("Multiplication",
	mulZeroLeft, mulZeroRight, mulOneLeft, mulOneRight,
	combineLeftBare, combineRightBare, combineBothPowers,
	canonicalMul, associativityMul,
)
