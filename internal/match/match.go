// Package match implements the matcher and binding extractor (spec §4.4):
// deciding whether a pattern matches a concrete expression and, when it
// does, extracting a binding map from pattern-variable identities to the
// sub-expressions they captured.
//
// The six-tier priority dispatch of §4.4 is rendered as an ordered Go type
// switch — one of the three mechanisms the spec names as equivalent to the
// source's overload-resolution ranking (§9).
package match

import (
	"symalg/internal/order"
	"symalg/internal/symbolic"
)

// Bindings maps a pattern variable's identity to the expression sub-type it
// captured. It is a plain value aggregate that lives only for the duration
// of one match attempt (spec §3 ownership).
type Bindings map[string]symbolic.Expr

// Match decides whether pattern matches expr and, on success, returns the
// binding map extracted from PatternVar occurrences.
func Match(pattern, expr symbolic.Expr) (Bindings, bool) {
	b := Bindings{}
	if !matchInto(pattern, expr, b) {
		return nil, false
	}
	return b, true
}

// BooleanMatch reports only whether pattern matches expr, ignoring
// bindings — used internally to verify repeated-PatternVar consistency,
// exactly the "compares the stored type to the current one by the boolean
// matcher" step of §4.4.
func BooleanMatch(pattern, expr symbolic.Expr) bool {
	_, ok := Match(pattern, expr)
	return ok
}

func matchInto(pattern, expr symbolic.Expr, b Bindings) bool {
	// Tier 1: Never never matches anything, on either side.
	if symbolic.IsNever(pattern) || symbolic.IsNever(expr) {
		return false
	}

	// Tier 2: identical types match — a concrete (non-wildcard) Symbol in
	// the pattern must be the very same declared Symbol in the target.
	if ps, ok := pattern.(*symbolic.Symbol); ok {
		es, ok := expr.(*symbolic.Symbol)
		return ok && es.ID() == ps.ID()
	}

	// Tier 3: wildcards match their category.
	if symbolic.IsAnyArg(pattern) {
		return true
	}
	if symbolic.IsAnyExpr(pattern) {
		return symbolic.IsExpression(expr)
	}
	if symbolic.IsAnyConstant(pattern) {
		return symbolic.IsNumeric(expr)
	}
	if symbolic.IsAnySymbol(pattern) {
		return symbolic.IsSymbol(expr)
	}
	if pv, ok := symbolic.AsPatternVar(pattern); ok {
		if existing, seen := b[pv.ID]; seen {
			// Binding consistency: a second occurrence must bind to a
			// structurally identical expression, or the whole match fails.
			return BooleanMatch(existing, expr)
		}
		b[pv.ID] = expr
		return true
	}

	// Tier 4: Constant/Fraction numeric equality, with Fraction<n,1>
	// matching Constant<n>.
	switch p := pattern.(type) {
	case *symbolic.Constant:
		switch e := expr.(type) {
		case *symbolic.Constant:
			return e.Value == p.Value
		case *symbolic.Fraction:
			return e.D == 1 && float64(e.N) == p.Value
		default:
			return false
		}
	case *symbolic.Fraction:
		switch e := expr.(type) {
		case *symbolic.Fraction:
			return e.N == p.N && e.D == p.D
		case *symbolic.Constant:
			return p.D == 1 && float64(p.N) == e.Value
		default:
			return false
		}
	case *symbolic.Expression:
		// Tier 5: Expression matches Expression iff operator tags are
		// identical and every argument matches positionally. Different
		// arities or op tags fail.
		e, ok := expr.(*symbolic.Expression)
		if !ok || e.Op != p.Op || len(e.Args) != len(p.Args) {
			return false
		}
		for i := range p.Args {
			if !matchInto(p.Args[i], e.Args[i], b) {
				return false
			}
		}
		return true
	default:
		// Tier 6: otherwise no match.
		return false
	}
}

// Substitute walks template; when it hits a PatternVar it returns the bound
// expression, otherwise it reconstructs the same Expression shape with
// substituted arguments.
func Substitute(template symbolic.Expr, b Bindings) symbolic.Expr {
	switch t := template.(type) {
	case *symbolic.PatternVar:
		if v, ok := b[t.ID]; ok {
			return v
		}
		return symbolic.Never
	case *symbolic.Expression:
		args := make([]symbolic.Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = Substitute(a, b)
		}
		return symbolic.NewExpr(t.Op, args...)
	default:
		return template
	}
}

// varLess is a thin in-package wrapper over order.Less, used by
// predicate.go's VarLessThan.
func varLess(a, b symbolic.Expr) bool { return order.Less(a, b) }
