// Package derivative implements symbolic differentiation (spec §4.7
// "diff"): a total function over the expression tree with one case per
// operator, plus the higher-order and multivariate helpers built on it.
package derivative

import (
	"symalg/internal/context"
	"symalg/internal/operator"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

// sameSymbol reports whether e is the exact Symbol x (same identity, not
// just the same Name).
func sameSymbol(e symbolic.Expr, x *symbolic.Symbol) bool {
	s, ok := e.(*symbolic.Symbol)
	return ok && s.ID() == x.ID()
}

// Diff differentiates expr with respect to x: d/dx(c) = 0, d/dx(x) = 1,
// d/dx(y) = 0 for any other Symbol y, and the sum/product/quotient/power/
// chain rules for every Expression node.
func Diff(expr symbolic.Expr, x *symbolic.Symbol) symbolic.Expr {
	switch e := expr.(type) {
	case *symbolic.Constant, *symbolic.Fraction:
		return symbolic.C(0)
	case *symbolic.Symbol:
		if sameSymbol(e, x) {
			return symbolic.C(1)
		}
		return symbolic.C(0)
	case *symbolic.Expression:
		return diffExpression(e, x)
	default:
		return symbolic.C(0)
	}
}

func d(e symbolic.Expr, x *symbolic.Symbol) symbolic.Expr { return Diff(e, x) }

func diffExpression(e *symbolic.Expression, x *symbolic.Symbol) symbolic.Expr {
	args := e.Args
	switch e.Op {
	case operator.Add:
		terms := make([]symbolic.Expr, len(args))
		for i, a := range args {
			terms[i] = d(a, x)
		}
		return symbolic.Add(terms...)
	case operator.Sub:
		return symbolic.Sub(d(args[0], x), d(args[1], x))
	case operator.Neg:
		return symbolic.Neg(d(args[0], x))
	case operator.Mul:
		// Binary product rule folded left-to-right over a variadic product:
		// d(f1*f2*...*fn) = sum_i (d(fi) * prod_{j!=i} fj).
		return diffProduct(args, x)
	case operator.Div:
		f, g := args[0], args[1]
		num := symbolic.Sub(symbolic.Mul(d(f, x), g), symbolic.Mul(f, d(g, x)))
		return symbolic.Div(num, symbolic.Pow(g, symbolic.C(2)))
	case operator.Pow:
		return diffPow(args[0], args[1], x)
	case operator.Sqrt:
		f := args[0]
		return symbolic.Div(d(f, x), symbolic.Mul(symbolic.C(2), symbolic.Sqrt(f)))
	case operator.Exp:
		f := args[0]
		return symbolic.Mul(symbolic.Exp(f), d(f, x))
	case operator.Log:
		f := args[0]
		return symbolic.Div(d(f, x), f)
	case operator.Sin:
		f := args[0]
		return symbolic.Mul(symbolic.Cos(f), d(f, x))
	case operator.Cos:
		f := args[0]
		return symbolic.Neg(symbolic.Mul(symbolic.Sin(f), d(f, x)))
	case operator.Tan:
		f := args[0]
		return symbolic.Div(d(f, x), symbolic.Pow(symbolic.Cos(f), symbolic.C(2)))
	case operator.Asin:
		f := args[0]
		denom := symbolic.Sqrt(symbolic.Sub(symbolic.C(1), symbolic.Pow(f, symbolic.C(2))))
		return symbolic.Div(d(f, x), denom)
	case operator.Acos:
		f := args[0]
		denom := symbolic.Sqrt(symbolic.Sub(symbolic.C(1), symbolic.Pow(f, symbolic.C(2))))
		return symbolic.Neg(symbolic.Div(d(f, x), denom))
	case operator.Atan:
		f := args[0]
		denom := symbolic.Add(symbolic.C(1), symbolic.Pow(f, symbolic.C(2)))
		return symbolic.Div(d(f, x), denom)
	case operator.Sinh:
		f := args[0]
		return symbolic.Mul(symbolic.Cosh(f), d(f, x))
	case operator.Cosh:
		f := args[0]
		return symbolic.Mul(symbolic.Sinh(f), d(f, x))
	case operator.Tanh:
		f := args[0]
		return symbolic.Div(d(f, x), symbolic.Pow(symbolic.Cosh(f), symbolic.C(2)))
	default:
		// Comparison/logical/bitwise operators have no derivative in this
		// domain; treated as locally constant.
		return symbolic.C(0)
	}
}

// diffProduct applies the product rule to a (possibly variadic) Mul node by
// folding: d(f1*...*fn) = sum_i d(fi) * (product of all other factors).
func diffProduct(args []symbolic.Expr, x *symbolic.Symbol) symbolic.Expr {
	terms := make([]symbolic.Expr, len(args))
	for i := range args {
		rest := make([]symbolic.Expr, 0, len(args)-1)
		for j, a := range args {
			if j != i {
				rest = append(rest, a)
			}
		}
		factor := d(args[i], x)
		if len(rest) == 0 {
			terms[i] = factor
			continue
		}
		terms[i] = symbolic.Mul(append([]symbolic.Expr{factor}, rest...)...)
	}
	return symbolic.Add(terms...)
}

// diffPow implements d/dx(f^n) = n*f^(n-1)*df for a constant exponent, and
// the general d/dx(f^g) = f^g * (dg*ln(f) + g*df/f) when the exponent
// itself depends on x (spec §4.7: "no special case for variable exponents
// in the spec, but an implementation may add one").
func diffPow(f, n symbolic.Expr, x *symbolic.Symbol) symbolic.Expr {
	dn := d(n, x)
	if v, ok := symbolic.NumericValue(dn); ok && v == 0 {
		exponentMinusOne := symbolic.Sub(n, symbolic.C(1))
		return symbolic.Mul(n, symbolic.Pow(f, exponentMinusOne), d(f, x))
	}
	base := symbolic.Pow(f, n)
	inner := symbolic.Add(
		symbolic.Mul(dn, symbolic.Log(f)),
		symbolic.Div(symbolic.Mul(n, d(f, x)), f),
	)
	return symbolic.Mul(base, inner)
}

// DiffSimplified is diff_simplified(expr, var, ctx) = simplify(diff(expr,
// var), ctx).
func DiffSimplified(expr symbolic.Expr, x *symbolic.Symbol, ctx context.Context) symbolic.Expr {
	return pipeline.Simplify(Diff(expr, x), ctx)
}

// NthDerivative differentiates expr with respect to x, n times in
// succession, without simplifying between steps.
func NthDerivative(expr symbolic.Expr, x *symbolic.Symbol, n int) symbolic.Expr {
	cur := expr
	for i := 0; i < n; i++ {
		cur = Diff(cur, x)
	}
	return cur
}

// Gradient returns the tuple of partial derivatives of expr with respect to
// each variable in vars, in order.
func Gradient(expr symbolic.Expr, vars ...*symbolic.Symbol) []symbolic.Expr {
	grad := make([]symbolic.Expr, len(vars))
	for i, v := range vars {
		grad[i] = Diff(expr, v)
	}
	return grad
}
