package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/operator"
	"symalg/internal/symbolic"
)

func isSquare(e symbolic.Expr, op operator.Tag) (symbolic.Expr, bool) {
	ex, ok := e.(*symbolic.Expression)
	if !ok || ex.Op != operator.Pow || len(ex.Args) != 2 {
		return nil, false
	}
	if v, isNum := symbolic.NumericValue(ex.Args[1]); !isNum || v != 2 {
		return nil, false
	}
	inner, ok := ex.Args[0].(*symbolic.Expression)
	if !ok || inner.Op != op || len(inner.Args) != 1 {
		return nil, false
	}
	return inner.Args[0], true
}

// pythagoreanIdentity collapses sin(x)^2 + cos(x)^2 (in either order) to the
// Constant 1. The reverse expansion (1 -> sin(x)^2+cos(x)^2) is never a
// rule — there is no x to pick without more context, per spec §4.7.
var pythagoreanIdentity = &Rewrite{
	Name:    "PythagoreanIdentity",
	Pattern: symbolic.Add(symbolic.Var("p"), symbolic.Var("q")),
	Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
		p, q := b["p"], b["q"]
		if sx, ok := isSquare(p, operator.Sin); ok {
			if cx, ok := isSquare(q, operator.Cos); ok && exprEqual(sx, cx) {
				return symbolic.C(1)
			}
		}
		if cx, ok := isSquare(p, operator.Cos); ok {
			if sx, ok := isSquare(q, operator.Sin); ok && exprEqual(sx, cx) {
				return symbolic.C(1)
			}
		}
		return nil
	},
}

// PythagoreanSystem is the Pythagorean-identity RewriteSystem of spec §4.7.
var PythagoreanSystem = NewSystem("Pythagorean", pythagoreanIdentity)
