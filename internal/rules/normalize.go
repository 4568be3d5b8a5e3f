package rules

import (
	"symalg/internal/match"
	"symalg/internal/symbolic"
)

// Subtraction and division are rewritten to addition-of-negation and
// multiplication-by-reciprocal so normalization happens in one place (spec
// §4.7). Division of two literals is left to ConstantFold (tried earlier in
// the combined pipeline) so it folds exactly to a Constant/Fraction instead
// of normalizing into an unevaluated Pow(-1).
var subToAddNeg = &Rewrite{
	Name:        "SubToAddNeg",
	Pattern:     symbolic.Sub(symbolic.Var("a"), symbolic.Var("b")),
	Replacement: symbolic.Add(symbolic.Var("a"), symbolic.Mul(symbolic.C(-1), symbolic.Var("b"))),
}

var divToMulRecip = &Rewrite{
	Name:        "DivToMulRecip",
	Pattern:     symbolic.Div(symbolic.Var("a"), symbolic.Var("b")),
	Replacement: symbolic.Mul(symbolic.Var("a"), symbolic.Pow(symbolic.Var("b"), symbolic.C(-1))),
	Predicate:   match.Not(match.And(match.IsConstantVar("a"), match.IsConstantVar("b"))),
}

// NormalizeSystem is the subtraction/division normalization RewriteSystem.
var NormalizeSystem = NewSystem("Normalize", subToAddNeg, divToMulRecip)
