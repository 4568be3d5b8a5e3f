package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestExpLogInverses(t *testing.T) {
	x := symbolic.NewSymbol("x")
	ctx := context.Default()

	if got := ExpLogSystem.Apply(symbolic.Exp(symbolic.Log(x)), ctx); !exprEqual(got, x) {
		t.Fatalf("exp(log(x)) = %#v, want x", got)
	}
	if got := ExpLogSystem.Apply(symbolic.Log(symbolic.Exp(x)), ctx); !exprEqual(got, x) {
		t.Fatalf("log(exp(x)) = %#v, want x", got)
	}
}

func TestLogSpecialValues(t *testing.T) {
	ctx := context.Default()
	if got := ExpLogSystem.Apply(symbolic.Log(symbolic.C(1)), ctx); !exprEqual(got, symbolic.C(0)) {
		t.Fatalf("log(1) = %#v, want 0", got)
	}
	if got := ExpLogSystem.Apply(symbolic.Log(symbolic.E), ctx); !exprEqual(got, symbolic.C(1)) {
		t.Fatalf("log(e) = %#v, want 1", got)
	}
}

func TestLogOfPowerPullsExponentOut(t *testing.T) {
	x := symbolic.NewSymbol("x")
	a := symbolic.NewSymbol("a")
	e := symbolic.Log(symbolic.Pow(x, a))
	want := symbolic.Mul(a, symbolic.Log(x))
	got := ExpLogSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("log(x^a) = %#v, want %#v", got, want)
	}
}

func TestLogOfQuotientSplitsOnReciprocalFactor(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	// x/y normalizes to Mul(x, Pow(y,-1)); log of that should split to a
	// subtraction, not an addition.
	e := symbolic.Log(symbolic.Mul(x, symbolic.Pow(y, symbolic.C(-1))))
	want := symbolic.Sub(symbolic.Log(x), symbolic.Log(y))
	got := ExpLogSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("log(x*y^-1) = %#v, want %#v", got, want)
	}
}

func TestLogOfProductSplitsToSum(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	e := symbolic.Log(symbolic.Mul(x, y))
	want := symbolic.Add(symbolic.Log(x), symbolic.Log(y))
	got := ExpLogSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("log(x*y) = %#v, want %#v", got, want)
	}
}

func TestExpOfSumBecomesProduct(t *testing.T) {
	a := symbolic.NewSymbol("a")
	b := symbolic.NewSymbol("b")
	e := symbolic.Exp(symbolic.Add(a, b))
	want := symbolic.Mul(symbolic.Exp(a), symbolic.Exp(b))
	got := ExpLogSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("exp(a+b) = %#v, want %#v", got, want)
	}
}

func TestExpOfLogPowerCollapses(t *testing.T) {
	a := symbolic.NewSymbol("a")
	n := symbolic.NewSymbol("n")
	e := symbolic.Exp(symbolic.Mul(n, symbolic.Log(a)))
	want := symbolic.Pow(a, n)
	got := ExpLogSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("exp(n*log(a)) = %#v, want %#v", got, want)
	}
}
