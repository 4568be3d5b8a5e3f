package rules

import (
	"math"

	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/operator"
	"symalg/internal/symbolic"
)

const angleEps = 1e-9

// isNegation reports whether e is a negation of z, in either representation
// that can reach this rule: an explicit Neg(z) (built directly via
// symbolic.Neg) or the Mul(C(-1), z) form that subtraction normalization
// produces (package-level NormalizeSystem never emits Neg itself).
func isNegation(e symbolic.Expr) (symbolic.Expr, bool) {
	ex, ok := e.(*symbolic.Expression)
	if !ok {
		return nil, false
	}
	if ex.Op == operator.Neg && len(ex.Args) == 1 {
		return ex.Args[0], true
	}
	if ex.Op == operator.Mul && len(ex.Args) == 2 {
		if v, isNum := symbolic.NumericValue(ex.Args[0]); isNum && v == -1 {
			return ex.Args[1], true
		}
		if v, isNum := symbolic.NumericValue(ex.Args[1]); isNum && v == -1 {
			return ex.Args[0], true
		}
	}
	return nil, false
}

func isPi(e symbolic.Expr) bool {
	ex, ok := e.(*symbolic.Expression)
	return ok && ex.Op == operator.PiOp && len(ex.Args) == 0
}

// piMultiple reports whether e is k*pi (or pi itself) for some rational
// float k, returning k.
func piMultiple(e symbolic.Expr) (float64, bool) {
	if isPi(e) {
		return 1, true
	}
	ex, ok := e.(*symbolic.Expression)
	if !ok || ex.Op != operator.Mul || len(ex.Args) != 2 {
		return 0, false
	}
	a, b := ex.Args[0], ex.Args[1]
	if isPi(a) {
		if v, ok := symbolic.NumericValue(b); ok {
			return v, true
		}
	}
	if isPi(b) {
		if v, ok := symbolic.NumericValue(a); ok {
			return v, true
		}
	}
	return 0, false
}

// quarterIndex reports whether k*pi lands on a multiple of pi/2, returning
// the quadrant index (k*pi/2 mod 4) the exact-angle tables are keyed on.
func quarterIndex(k float64) (int, bool) {
	twoK := k * 2
	rounded := math.Round(twoK)
	if math.Abs(twoK-rounded) > angleEps {
		return 0, false
	}
	idx := int(rounded) % 4
	if idx < 0 {
		idx += 4
	}
	return idx, true
}

var sinExactVals = [4]float64{0, 1, 0, -1}
var cosExactVals = [4]float64{1, 0, -1, 0}

// tanExactVals holds nil where tan is undefined (pi/2, 3pi/2): the rule
// declines rather than guessing at an asymptote.
var tanExactVals = [4]*float64{f(0), nil, f(0), nil}

func f(v float64) *float64 { return &v }

func exactAngleRule(name string, build func(symbolic.Expr) symbolic.Expr, table [4]float64, zeroAt0 float64) *Rewrite {
	return &Rewrite{
		Name:    name,
		Pattern: build(symbolic.Var("theta")),
		Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
			if !ctx.Has(context.ConstantFoldingEnabled) {
				return nil
			}
			theta := b["theta"]
			if v, ok := symbolic.NumericValue(theta); ok && v == 0 {
				return symbolic.C(zeroAt0)
			}
			k, ok := piMultiple(theta)
			if !ok {
				return nil
			}
			idx, ok := quarterIndex(k)
			if !ok {
				return nil
			}
			return symbolic.C(table[idx])
		},
	}
}

var (
	sinExactAngle = exactAngleRule("SinExactAngle", symbolic.Sin, sinExactVals, 0)
	cosExactAngle = exactAngleRule("CosExactAngle", symbolic.Cos, cosExactVals, 1)

	tanExactAngle = &Rewrite{
		Name:    "TanExactAngle",
		Pattern: symbolic.Tan(symbolic.Var("theta")),
		Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
			if !ctx.Has(context.ConstantFoldingEnabled) {
				return nil
			}
			theta := b["theta"]
			if v, ok := symbolic.NumericValue(theta); ok && v == 0 {
				return symbolic.C(0)
			}
			k, ok := piMultiple(theta)
			if !ok {
				return nil
			}
			idx, ok := quarterIndex(k)
			if !ok || tanExactVals[idx] == nil {
				return nil
			}
			return symbolic.C(*tanExactVals[idx])
		},
	}

	sinParity = &Rewrite{
		Name:    "SinParity",
		Pattern: symbolic.Sin(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Neg(symbolic.Sin(z))
		},
	}
	cosParity = &Rewrite{
		Name:    "CosParity",
		Pattern: symbolic.Cos(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Cos(z)
		},
	}
	tanParity = &Rewrite{
		Name:    "TanParity",
		Pattern: symbolic.Tan(symbolic.Var("inner")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			z, ok := isNegation(b["inner"])
			if !ok {
				return nil
			}
			return symbolic.Neg(symbolic.Tan(z))
		},
	}
)

// TrigSystem holds the default-enabled trig rules: exact-angle evaluation at
// multiples of pi/2 and the odd/even parity identities. Double-angle
// identities are not members — they live in DoubleAngleSystem and are wired
// only into trig_aware_simplify, per spec §4.7 ("disabled by default").
var TrigSystem = NewSystem("Trig",
	sinExactAngle, cosExactAngle, tanExactAngle,
	sinParity, cosParity, tanParity,
)

// isScaledBy reports whether e is coeff*x or x*coeff for the given coeff.
func isScaledBy(e symbolic.Expr, coeff float64) (symbolic.Expr, bool) {
	ex, ok := e.(*symbolic.Expression)
	if !ok || ex.Op != operator.Mul || len(ex.Args) != 2 {
		return nil, false
	}
	if v, isNum := symbolic.NumericValue(ex.Args[0]); isNum && v == coeff {
		return ex.Args[1], true
	}
	if v, isNum := symbolic.NumericValue(ex.Args[1]); isNum && v == coeff {
		return ex.Args[0], true
	}
	return nil, false
}

var doubleAngleSin = &Rewrite{
	Name:    "DoubleAngleSin",
	Pattern: symbolic.Sin(symbolic.Var("theta")),
	Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
		x, ok := isScaledBy(b["theta"], 2)
		if !ok {
			return nil
		}
		return symbolic.Mul(symbolic.C(2), symbolic.Sin(x), symbolic.Cos(x))
	},
}

var doubleAngleCos = &Rewrite{
	Name:    "DoubleAngleCos",
	Pattern: symbolic.Cos(symbolic.Var("theta")),
	Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
		x, ok := isScaledBy(b["theta"], 2)
		if !ok {
			return nil
		}
		return symbolic.Sub(symbolic.Pow(symbolic.Cos(x), symbolic.C(2)), symbolic.Pow(symbolic.Sin(x), symbolic.C(2)))
	},
}

// DoubleAngleSystem is opt-in only; trig_aware_simplify is the sole pipeline
// that wires it in (spec §4.7).
var DoubleAngleSystem = NewSystem("DoubleAngle", doubleAngleSin, doubleAngleCos)

// TanToSinCos renders tan(x) as sin(x)/cos(x). Not part of any default
// pipeline — callers invoke it explicitly.
var TanToSinCos = &Rewrite{
	Name:        "TanToSinCos",
	Pattern:     symbolic.Tan(symbolic.Var("x")),
	Replacement: symbolic.Div(symbolic.Sin(symbolic.Var("x")), symbolic.Cos(symbolic.Var("x"))),
}
