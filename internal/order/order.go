// Package order implements the strict total ordering over expression trees
// (spec §4.5) used to pick canonical operand orientation in commutative
// operators and to prevent ordering rules from oscillating.
package order

import (
	"symalg/internal/operator"
	"symalg/internal/symbolic"
)

// category ranks: Expression < Symbol < Constant; Never is maximal.
const (
	rankExpression = iota
	rankSymbol
	rankNumeric
	rankNever
	rankOther // wildcards: never expected inside a concrete comparison
)

func category(e symbolic.Expr) int {
	switch e.(type) {
	case *symbolic.Expression:
		return rankExpression
	case *symbolic.Symbol:
		return rankSymbol
	case *symbolic.Constant, *symbolic.Fraction:
		return rankNumeric
	default:
		if symbolic.IsNever(e) {
			return rankNever
		}
		return rankOther
	}
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b under the expression total order.
func Compare(a, b symbolic.Expr) int {
	ca, cb := category(a), category(b)
	if ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}
	switch ca {
	case rankNumeric:
		return compareNumeric(a, b)
	case rankSymbol:
		return compareSymbol(a.(*symbolic.Symbol), b.(*symbolic.Symbol))
	case rankExpression:
		return compareExpression(a.(*symbolic.Expression), b.(*symbolic.Expression))
	default:
		return 0
	}
}

// Less reports whether a strictly precedes b.
func Less(a, b symbolic.Expr) bool { return Compare(a, b) < 0 }

func compareSymbol(a, b *symbolic.Symbol) int {
	switch {
	case a.ID() < b.ID():
		return -1
	case a.ID() > b.ID():
		return 1
	default:
		return 0
	}
}

// ratio extracts an exact (numerator, denominator) pair for Fractions and
// integral Constants, so two numerics compare by cross-multiplication
// rather than lossy float comparison. Non-integral Constants fall back to
// a float compare in compareNumeric.
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

func compareNumeric(a, b symbolic.Expr) int {
	if na, da, ok := ratio(a); ok {
		if nb, db, ok := ratio(b); ok {
			lhs, rhs := na*db, nb*da
			switch {
			case lhs < rhs:
				return -1
			case lhs > rhs:
				return 1
			default:
				return 0
			}
		}
	}
	va, _ := symbolic.NumericValue(a)
	vb, _ := symbolic.NumericValue(b)
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	default:
		return 0
	}
}

func compareExpression(a, b *symbolic.Expression) int {
	pa, pb := operator.Position(a.Op), operator.Position(b.Op)
	if pa != pb {
		if pa < pb {
			return -1
		}
		return 1
	}
	if len(a.Args) != len(b.Args) {
		if len(a.Args) < len(b.Args) {
			return -1
		}
		return 1
	}
	for i := range a.Args {
		if c := Compare(a.Args[i], b.Args[i]); c != 0 {
			return c
		}
	}
	return 0
}
