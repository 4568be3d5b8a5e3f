package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestSubToAddNeg(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	e := symbolic.Sub(x, y)
	want := symbolic.Add(x, symbolic.Mul(symbolic.C(-1), y))

	got := NormalizeSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("NormalizeSystem.Apply(%#v) = %#v, want %#v", e, got, want)
	}
}

func TestDivToMulRecip(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	e := symbolic.Div(x, y)
	want := symbolic.Mul(x, symbolic.Pow(y, symbolic.C(-1)))

	got := NormalizeSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("NormalizeSystem.Apply(%#v) = %#v, want %#v", e, got, want)
	}
}

func TestDivToMulRecipDeclinesOnTwoLiterals(t *testing.T) {
	// Division of two literal constants is left for ConstantFold, not
	// normalization into an unevaluated Pow(-1).
	e := symbolic.Div(symbolic.C(4), symbolic.C(2))
	got := divToMulRecip.Apply(e, context.Default())
	if !exprEqual(got, e) {
		t.Fatalf("DivToMulRecip should decline on two literal operands, got %#v", got)
	}
}
