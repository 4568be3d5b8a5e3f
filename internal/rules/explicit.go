package rules

import (
	"symalg/internal/context"
	"symalg/internal/symbolic"
)

// Distribute is the opt-in a*(b+c) -> a*b+a*c law. It is never a member of
// any automatic RewriteSystem — running it alongside MultiplicationSystem's
// factoring rules would oscillate (expand then immediately re-factor) — so
// callers apply it explicitly, once, when they specifically want an
// expanded form.
var Distribute = NewSystem("Distribute", distributeLeft, distributeRight)

var distributeLeft = &Rewrite{
	Name:    "DistributeLeft",
	Pattern: symbolic.Mul(symbolic.Var("a"), symbolic.Add(symbolic.Var("b"), symbolic.Var("c"))),
	Replacement: symbolic.Add(
		symbolic.Mul(symbolic.Var("a"), symbolic.Var("b")),
		symbolic.Mul(symbolic.Var("a"), symbolic.Var("c")),
	),
}

var distributeRight = &Rewrite{
	Name:    "DistributeRight",
	Pattern: symbolic.Mul(symbolic.Add(symbolic.Var("b"), symbolic.Var("c")), symbolic.Var("a")),
	Replacement: symbolic.Add(
		symbolic.Mul(symbolic.Var("a"), symbolic.Var("b")),
		symbolic.Mul(symbolic.Var("a"), symbolic.Var("c")),
	),
}

// DistributeOnce applies Distribute at the root only, the idiomatic
// single-step call a caller reaches for before re-running a full simplify.
func DistributeOnce(e symbolic.Expr) symbolic.Expr {
	return Distribute.Apply(e, context.Default())
}
