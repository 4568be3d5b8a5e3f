package match

import "symalg/internal/symbolic"

// Predicate receives the binding map extracted by Match and decides
// whether a Rewrite may fire. A predicate that returns false vetoes the
// rule even when the shape matched (spec §4.4).
type Predicate func(b Bindings) bool

// AlwaysTrue is the default predicate used by a Rewrite with no explicit
// veto condition.
var AlwaysTrue Predicate = func(Bindings) bool { return true }

// And composes predicates: all must hold.
func And(ps ...Predicate) Predicate {
	return func(b Bindings) bool {
		for _, p := range ps {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

// Or composes predicates: at least one must hold.
func Or(ps ...Predicate) Predicate {
	return func(b Bindings) bool {
		for _, p := range ps {
			if p(b) {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(b Bindings) bool { return !p(b) }
}

// IsConstantVar requires the binding at id to be a Constant or Fraction.
func IsConstantVar(id string) Predicate {
	return func(b Bindings) bool {
		e, ok := b[id]
		return ok && symbolic.IsNumeric(e)
	}
}

// IsSymbolVar requires the binding at id to be a Symbol.
func IsSymbolVar(id string) Predicate {
	return func(b Bindings) bool {
		e, ok := b[id]
		return ok && symbolic.IsSymbol(e)
	}
}

// IsExpressionVar requires the binding at id to be an Expression.
func IsExpressionVar(id string) Predicate {
	return func(b Bindings) bool {
		e, ok := b[id]
		return ok && symbolic.IsExpression(e)
	}
}

// VarLessThan requires the binding at idA to strictly precede the binding
// at idB under the total order — used to avoid re-applying a canonical
// ordering rule once operands are already oriented.
func VarLessThan(idA, idB string) Predicate {
	return func(b Bindings) bool {
		a, ok1 := b[idA]
		c, ok2 := b[idB]
		return ok1 && ok2 && varLess(a, c)
	}
}

// NumericEquals requires the binding at id to be a numeric literal equal to
// v.
func NumericEquals(id string, v float64) Predicate {
	return func(b Bindings) bool {
		e, ok := b[id]
		if !ok {
			return false
		}
		n, isNum := symbolic.NumericValue(e)
		return isNum && n == v
	}
}

// NumericNotEquals requires the binding at id to be numeric and not equal
// to v — used by rules like 0^x → 0 that must decline, not guess, when the
// exponent cannot be proven non-zero.
func NumericNotEquals(id string, v float64) Predicate {
	return func(b Bindings) bool {
		e, ok := b[id]
		if !ok {
			return false
		}
		n, isNum := symbolic.NumericValue(e)
		return isNum && n != v
	}
}

// VarEquals requires the bindings at idA and idB to be structurally equal
// — the predicate form of a repeated pattern variable, useful when two
// independently-named pattern variables must agree after the fact.
func VarEquals(idA, idB string) Predicate {
	return func(b Bindings) bool {
		a, ok1 := b[idA]
		c, ok2 := b[idB]
		return ok1 && ok2 && BooleanMatch(a, c)
	}
}
