package rules

import (
	"symalg/internal/context"
	"symalg/internal/eval"
	"symalg/internal/match"
	"symalg/internal/serrors"
	"symalg/internal/strategy"
	"symalg/internal/symbolic"
)

func powerRule(name string, pattern, replacement symbolic.Expr, pred match.Predicate) *Rewrite {
	return &Rewrite{Name: name, Pattern: pattern, Replacement: replacement, Predicate: pred}
}

var (
	powZeroExp = powerRule("PowZeroExponent",
		symbolic.Pow(symbolic.Var("x"), symbolic.C(0)),
		symbolic.C(1), nil)

	powOneExp = powerRule("PowOneExponent",
		symbolic.Pow(symbolic.Var("x"), symbolic.C(1)),
		symbolic.Var("x"), nil)

	oneToAnyPower = powerRule("OneToAnyPower",
		symbolic.Pow(symbolic.C(1), symbolic.Var("x")),
		symbolic.C(1), nil)

	// 0^x -> 0 only when x is provably non-zero; declines (does not
	// guess) when x is symbolic or could be zero, per spec §7/§9, and
	// records why so a rule trace can tell "didn't match" apart from
	// "matched but couldn't prove the exponent non-zero."
	zeroToAnyPower = &Rewrite{
		Name:    "ZeroToAnyPower",
		Pattern: symbolic.Pow(symbolic.C(0), symbolic.Var("x")),
		Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
			if match.NumericNotEquals("x", 0)(b) {
				return symbolic.C(0)
			}
			strategy.Record(serrors.New(serrors.UnprovableExponent, "ZeroToAnyPower",
				"cannot prove %s is non-zero", eval.ToString(b["x"], eval.RenderOptions{})))
			return nil
		},
	}

	// (x^a)^b -> x^(a*b), one-way only — never the reverse.
	powerOfPower = powerRule("PowerOfPower",
		symbolic.Pow(symbolic.Pow(symbolic.Var("x"), symbolic.Var("a")), symbolic.Var("b")),
		symbolic.Pow(symbolic.Var("x"), symbolic.Mul(symbolic.Var("a"), symbolic.Var("b"))), nil)

	// Power combining: never expansion, only combining. Each relies on a
	// repeated PatternVar ("x") for binding-consistency enforcement.
	combineLeftBare = powerRule("CombineLeftBare",
		symbolic.Mul(symbolic.Var("x"), symbolic.Pow(symbolic.Var("x"), symbolic.Var("a"))),
		symbolic.Pow(symbolic.Var("x"), symbolic.Add(symbolic.Var("a"), symbolic.C(1))), nil)

	combineRightBare = powerRule("CombineRightBare",
		symbolic.Mul(symbolic.Pow(symbolic.Var("x"), symbolic.Var("a")), symbolic.Var("x")),
		symbolic.Pow(symbolic.Var("x"), symbolic.Add(symbolic.Var("a"), symbolic.C(1))), nil)

	combineBothPowers = powerRule("CombineBothPowers",
		symbolic.Mul(symbolic.Pow(symbolic.Var("x"), symbolic.Var("a")), symbolic.Pow(symbolic.Var("x"), symbolic.Var("b"))),
		symbolic.Pow(symbolic.Var("x"), symbolic.Add(symbolic.Var("a"), symbolic.Var("b"))), nil)
)

// PowerSystem is the power RewriteSystem of spec §4.7.
var PowerSystem = NewSystem("Power",
	powZeroExp, powOneExp, oneToAnyPower, zeroToAnyPower, powerOfPower,
)

// PowerCombiningSystem holds the x*x^a-family rules; these pattern-match on
// Mul so they live alongside MultiplicationSystem in the combined pipeline,
// but are named separately because the spec lists them under "Power rules."
var PowerCombiningSystem = NewSystem("PowerCombining",
	combineLeftBare, combineRightBare, combineBothPowers,
)
