package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestConstantFoldArithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr symbolic.Expr
		want float64
	}{
		{"addition", symbolic.Add(symbolic.C(2), symbolic.C(3)), 5},
		{"multiplication", symbolic.Mul(symbolic.C(2), symbolic.C(3)), 6},
		{"power", symbolic.Pow(symbolic.C(2), symbolic.C(3)), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConstantFold.Apply(tt.expr, context.Default())
			c, ok := got.(*symbolic.Constant)
			if !ok || c.Value != tt.want {
				t.Fatalf("ConstantFold.Apply(%#v) = %#v, want Constant<%v>", tt.expr, got, tt.want)
			}
		})
	}
}

func TestConstantFoldDeclinesOnSymbolic(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Add(symbolic.C(2), x)
	got := ConstantFold.Apply(e, context.Default())
	if got != symbolic.Expr(e) {
		t.Fatalf("ConstantFold should decline a non-fully-numeric Expression, got %#v", got)
	}
}

func TestConstantFoldDivisionExactFoldsToFraction(t *testing.T) {
	got := ConstantFold.Apply(symbolic.Div(symbolic.C(2), symbolic.C(4)), context.Default())
	f, ok := got.(*symbolic.Fraction)
	if !ok || f.N != 1 || f.D != 2 {
		t.Fatalf("ConstantFold(2/4) = %#v, want Fraction<1,2>", got)
	}
}

func TestConstantFoldDivisionExactIntegerFoldsToConstant(t *testing.T) {
	got := ConstantFold.Apply(symbolic.Div(symbolic.C(6), symbolic.C(2)), context.Default())
	c, ok := got.(*symbolic.Constant)
	if !ok || c.Value != 3 {
		t.Fatalf("ConstantFold(6/2) = %#v, want Constant<3>", got)
	}
}

func TestConstantFoldDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("dividing by the literal 0 should panic with a DivisionByZero domain error")
		}
	}()
	ConstantFold.Apply(symbolic.Div(symbolic.C(1), symbolic.C(0)), context.Default())
}

func TestConstantFoldLeavesZeroArityOperatorsAlone(t *testing.T) {
	// Pi/E have no arguments, so allNumericNonEmpty's len(args)==0 guard
	// declines folding them automatically.
	pi := symbolic.Pi
	got := ConstantFold.Apply(pi, context.Default())
	if got != pi {
		t.Fatalf("ConstantFold should not evaluate a zero-arity operator, got %#v", got)
	}
}
