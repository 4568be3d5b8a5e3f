package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/symbolic"
)

var (
	sinhOfZero = &Rewrite{
		Name:        "SinhOfZero",
		Pattern:     symbolic.Sinh(symbolic.C(0)),
		Replacement: symbolic.C(0),
	}
	coshOfZero = &Rewrite{
		Name:        "CoshOfZero",
		Pattern:     symbolic.Cosh(symbolic.C(0)),
		Replacement: symbolic.C(1),
	}
	tanhOfZero = &Rewrite{
		Name:        "TanhOfZero",
		Pattern:     symbolic.Tanh(symbolic.C(0)),
		Replacement: symbolic.C(0),
	}

	sinhParity = &Rewrite{
		Name:    "SinhParity",
		Pattern: symbolic.Sinh(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Neg(symbolic.Sinh(z))
		},
	}
	coshParity = &Rewrite{
		Name:    "CoshParity",
		Pattern: symbolic.Cosh(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Cosh(z)
		},
	}
	tanhParity = &Rewrite{
		Name:    "TanhParity",
		Pattern: symbolic.Tanh(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Neg(symbolic.Tanh(z))
		},
	}
)

// HyperbolicSystem is the hyperbolic RewriteSystem of spec §4.7: zero
// evaluations and odd/even parity. cosh(x)^2-sinh(x)^2 -> 1 expansion is
// intentionally absent, mirroring the Pythagorean identity's one-way
// direction — there is no collecting rule defined for it in the spec, so it
// is left unimplemented rather than invented.
var HyperbolicSystem = NewSystem("Hyperbolic",
	sinhOfZero, coshOfZero, tanhOfZero,
	sinhParity, coshParity, tanhParity,
)
