package rules

import (
	"symalg/internal/context"
	"symalg/internal/match"
	"symalg/internal/operator"
	"symalg/internal/symbolic"
)

var (
	expOfLog = &Rewrite{
		Name:        "ExpOfLog",
		Pattern:     symbolic.Exp(symbolic.Log(symbolic.Var("x"))),
		Replacement: symbolic.Var("x"),
	}
	logOfExp = &Rewrite{
		Name:        "LogOfExp",
		Pattern:     symbolic.Log(symbolic.Exp(symbolic.Var("x"))),
		Replacement: symbolic.Var("x"),
	}
	logOfOne = &Rewrite{
		Name:        "LogOfOne",
		Pattern:     symbolic.Log(symbolic.C(1)),
		Replacement: symbolic.C(0),
	}
	logOfE = &Rewrite{
		Name:        "LogOfE",
		Pattern:     symbolic.Log(symbolic.E),
		Replacement: symbolic.C(1),
	}
	logOfPower = &Rewrite{
		Name:        "LogOfPower",
		Pattern:     symbolic.Log(symbolic.Pow(symbolic.Var("x"), symbolic.Var("a"))),
		Replacement: symbolic.Mul(symbolic.Var("a"), symbolic.Log(symbolic.Var("x"))),
	}
	expOfSub = &Rewrite{
		Name:        "ExpOfDifference",
		Pattern:     symbolic.Exp(symbolic.Sub(symbolic.Var("a"), symbolic.Var("b"))),
		Replacement: symbolic.Div(symbolic.Exp(symbolic.Var("a")), symbolic.Exp(symbolic.Var("b"))),
	}
)

// isReciprocal reports whether e is Pow(z, -1), returning z.
func isReciprocal(e symbolic.Expr) (symbolic.Expr, bool) {
	ex, ok := e.(*symbolic.Expression)
	if !ok || ex.Op != operator.Pow || len(ex.Args) != 2 {
		return nil, false
	}
	n, isNum := symbolic.NumericValue(ex.Args[1])
	if !isNum || n != -1 {
		return nil, false
	}
	return ex.Args[0], true
}

// isLogOf reports whether e is Log(z), returning z.
func isLogOf(e symbolic.Expr) (symbolic.Expr, bool) {
	ex, ok := e.(*symbolic.Expression)
	if !ok || ex.Op != operator.Log || len(ex.Args) != 1 {
		return nil, false
	}
	return ex.Args[0], true
}

// logOfProductOrQuotient handles log(x*y) -> log(x)+log(y) and
// log(x/y) -> log(x)-log(y). It inspects the Mul argument list directly
// (rather than two mirrored structural patterns) because canonical operand
// ordering (spec §4.5: Expression < Symbol < Constant) can place either
// factor first, and a reciprocal factor Pow(z,-1) is itself an Expression.
var logOfProductOrQuotient = &Rewrite{
	Name:    "LogOfProductOrQuotient",
	Pattern: symbolic.Log(symbolic.Var("inner")),
	Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
		inner, ok := b["inner"].(*symbolic.Expression)
		if !ok || inner.Op != operator.Mul || len(inner.Args) != 2 {
			return nil
		}
		x, y := inner.Args[0], inner.Args[1]
		if z, ok := isReciprocal(y); ok {
			return symbolic.Sub(symbolic.Log(x), symbolic.Log(z))
		}
		if z, ok := isReciprocal(x); ok {
			return symbolic.Sub(symbolic.Log(y), symbolic.Log(z))
		}
		return symbolic.Add(symbolic.Log(x), symbolic.Log(y))
	},
}

// expOfSumOrProductOfLog handles exp(a+b) -> exp(a)*exp(b) and
// exp(n*log(a)) -> a^n, for the same canonical-ordering reason as above.
var expOfSumOrProductOfLog = &Rewrite{
	Name:    "ExpOfSumOrLogPower",
	Pattern: symbolic.Exp(symbolic.Var("inner")),
	Compute: func(b match.Bindings, _ context.Context) symbolic.Expr {
		inner, ok := b["inner"].(*symbolic.Expression)
		if !ok {
			return nil
		}
		switch inner.Op {
		case operator.Add:
			if len(inner.Args) != 2 {
				return nil
			}
			return symbolic.Mul(symbolic.Exp(inner.Args[0]), symbolic.Exp(inner.Args[1]))
		case operator.Mul:
			if len(inner.Args) != 2 {
				return nil
			}
			x, y := inner.Args[0], inner.Args[1]
			if a, ok := isLogOf(y); ok {
				return symbolic.Pow(a, x)
			}
			if a, ok := isLogOf(x); ok {
				return symbolic.Pow(a, y)
			}
			return nil
		default:
			return nil
		}
	},
}

// ExpLogSystem is the exp/log RewriteSystem of spec §4.7.
var ExpLogSystem = NewSystem("ExpLog",
	expOfLog, logOfExp, logOfOne, logOfE, logOfPower,
	logOfProductOrQuotient, expOfSub, expOfSumOrProductOfLog,
)
