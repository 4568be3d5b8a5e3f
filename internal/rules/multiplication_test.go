package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestMultiplicationIdentities(t *testing.T) {
	x := symbolic.NewSymbol("x")
	ctx := context.Default()

	tests := []struct {
		name string
		expr symbolic.Expr
		want symbolic.Expr
	}{
		{"0*x -> 0", symbolic.Mul(symbolic.C(0), x), symbolic.C(0)},
		{"x*0 -> 0", symbolic.Mul(x, symbolic.C(0)), symbolic.C(0)},
		{"1*x -> x", symbolic.Mul(symbolic.C(1), x), x},
		{"x*1 -> x", symbolic.Mul(x, symbolic.C(1)), x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MultiplicationSystem.Apply(tt.expr, ctx)
			if !exprEqual(got, tt.want) {
				t.Fatalf("MultiplicationSystem.Apply(%#v) = %#v, want %#v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCanonicalMulReordersByTotalOrder(t *testing.T) {
	a := symbolic.NewSymbol("a")
	b := symbolic.NewSymbol("b")
	e := symbolic.Mul(b, a)
	want := symbolic.Mul(a, b)
	got := canonicalMul.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("CanonicalMul: Apply(%#v) = %#v, want %#v", e, got, want)
	}
}

func TestDistributeIsNotInMultiplicationSystem(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	z := symbolic.NewSymbol("z")
	e := symbolic.Mul(x, symbolic.Add(y, z))
	// CanonicalMul may swap the operands (expressions sort before symbols),
	// but the Add must stay intact as a single factor.
	want := symbolic.Mul(symbolic.Add(y, z), x)
	got := MultiplicationSystem.Apply(e, context.Default())
	if !exprEqual(got, want) {
		t.Fatalf("MultiplicationSystem must not auto-distribute (that's opt-in), got %#v", got)
	}
}

func TestAssociativityMulFiresWhenItEnablesCombining(t *testing.T) {
	x := symbolic.NewSymbol("x")
	a := symbolic.NewSymbol("a")
	e := symbolic.Mul(symbolic.Mul(x, symbolic.Pow(x, a)), x)
	got := associativityMul.Apply(e, context.Default())
	if exprEqual(got, e) {
		t.Fatal("AssociativityMul should re-bracket when the adjacent pair combines powers")
	}
}
