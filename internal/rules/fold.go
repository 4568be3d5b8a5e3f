package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/operator"
	"symalg/internal/serrors"
	"symalg/internal/symbolic"
)

// ratio extracts an exact (numerator, denominator) pair from a Fraction or
// an integral Constant, so division of literals can be folded exactly
// instead of through lossy float arithmetic.
func ratio(e symbolic.Expr) (n, d int64, ok bool) {
	switch v := e.(type) {
	case *symbolic.Fraction:
		return v.N, v.D, true
	case *symbolic.Constant:
		if v.Value == float64(int64(v.Value)) {
			return int64(v.Value), 1, true
		}
	}
	return 0, 0, false
}

func foldDivision(a, b symbolic.Expr) symbolic.Expr {
	bv, _ := symbolic.NumericValue(b)
	if bv == 0 {
		serrors.Panic(serrors.DivisionByZero, "ConstantFold", "division by the literal constant 0")
	}
	na, da, aok := ratio(a)
	nb, db, bok := ratio(b)
	if aok && bok {
		// (na/da) / (nb/db) = na*db / (da*nb); Frac normalizes and folds
		// to a Constant when the reduced denominator is 1 (spec: "Integer
		// division of constants is folded to Constant iff exact,
		// otherwise promoted to a reduced Fraction").
		return symbolic.Frac(na*db, da*nb)
	}
	av, _ := symbolic.NumericValue(a)
	return symbolic.C(av / bv)
}

func allNumericNonEmpty(args []symbolic.Expr) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		if !symbolic.IsNumeric(a) {
			return false
		}
	}
	return true
}

// ConstantFold folds Expression(Op, numeric...) into a single Constant or
// Fraction by evaluating Op at the captured numeric values. Zero-arity
// operators (Pi, E) are excluded — they are "every argument is constant"
// only vacuously, and the spec intends them to remain symbolic unless a
// caller explicitly asks to evaluate.
var ConstantFold = &Rewrite{
	Name:    "ConstantFold",
	Pattern: symbolic.Var("e"),
	Predicate: func(b match.Bindings) bool {
		ex, ok := b["e"].(*symbolic.Expression)
		return ok && allNumericNonEmpty(ex.Args)
	},
	Compute: func(b match.Bindings, ctx context.Context) symbolic.Expr {
		if !ctx.Has(context.ConstantFoldingEnabled) {
			return nil
		}
		ex := b["e"].(*symbolic.Expression)
		if ex.Op == operator.Div {
			return foldDivision(ex.Args[0], ex.Args[1])
		}
		vals := make([]float64, len(ex.Args))
		for i, a := range ex.Args {
			v, _ := symbolic.NumericValue(a)
			vals[i] = v
		}
		res, err := ex.Op.Apply(vals...)
		if err != nil {
			return nil
		}
		return symbolic.C(res)
	},
}

// ConstantFoldSystem is the constant-folding RewriteSystem of spec §4.7,
// applied at a single node (no recursion — pipelines drive recursion via a
// traversal combinator).
var ConstantFoldSystem = NewSystem("ConstantFolding", ConstantFold)

// foldIfNumeric is a small helper used by other rule categories (addition's
// like-term factoring) to fold a freshly-built coefficient sum before
// measuring its node count.
func foldIfNumeric(e symbolic.Expr, ctx context.Context) symbolic.Expr {
	return ConstantFold.Apply(e, ctx)
}
