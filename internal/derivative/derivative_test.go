package derivative

import (
	"math"
	"testing"

	"symalg/internal/context"
	"symalg/internal/eval"
	"symalg/internal/match"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

func simplifiedExpr(e symbolic.Expr) symbolic.Expr {
	return pipeline.Simplify(e, context.Default())
}

func exprEqualTest(a, b symbolic.Expr) bool { return match.BooleanMatch(a, b) }

// evalAt evaluates expr with x bound to v, failing the test on error.
// Several of the chain/power/product rule outputs build variadic Mul/Add
// nodes the strictly-binary rule patterns don't fully canonicalize, so
// correctness here is checked numerically rather than structurally.
func evalAt(t *testing.T, expr symbolic.Expr, binding eval.Bindings) float64 {
	t.Helper()
	v, err := eval.Evaluate(expr, binding)
	if err != nil {
		t.Fatalf("Evaluate(%#v, %v): %v", expr, binding, err)
	}
	return v
}

func TestDiffConstantAndSymbol(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")

	if got := Diff(symbolic.C(5), x); !exprEqualTest(got, symbolic.C(0)) {
		t.Fatalf("d/dx(5) = %#v, want 0", got)
	}
	if got := Diff(x, x); !exprEqualTest(got, symbolic.C(1)) {
		t.Fatalf("d/dx(x) = %#v, want 1", got)
	}
	if got := Diff(y, x); !exprEqualTest(got, symbolic.C(0)) {
		t.Fatalf("d/dx(y) = %#v, want 0", got)
	}
}

func TestDiffSumRule(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Add(symbolic.Pow(x, symbolic.C(2)), symbolic.C(3))
	got := Diff(e, x)

	at := 4.0
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := 2 * at
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(x^2+3) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestDiffPowerRuleConstantExponent(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Pow(x, symbolic.C(3))
	got := Diff(e, x)

	at := 2.0
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := 3 * at * at
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(x^3) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestDiffProductRule(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Mul(x, symbolic.Sin(x))
	got := Diff(e, x)

	at := 0.6
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := math.Sin(at) + at*math.Cos(at)
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(x*sin(x)) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestDiffQuotientRule(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Div(symbolic.Sin(x), x)
	got := Diff(e, x)

	at := 0.9
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := (math.Cos(at)*at - math.Sin(at)) / (at * at)
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(sin(x)/x) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestDiffChainRule(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Sin(symbolic.Pow(x, symbolic.C(2)))
	got := Diff(e, x)

	at := 1.7
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := math.Cos(at*at) * 2 * at
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(sin(x^2)) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestDiffVariableExponentUsesGeneralPowerRule(t *testing.T) {
	x := symbolic.NewSymbol("x")
	// d/dx(x^x) = x^x * (ln(x) + 1); check at a point away from the
	// constant-exponent shortcut's formula (which would give a different,
	// wrong value here).
	e := symbolic.Pow(x, x)
	got := Diff(e, x)

	at := 2.0
	gotV := evalAt(t, got, eval.Bindings{"x": at})
	want := math.Pow(at, at) * (math.Log(at) + 1)
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d/dx(x^x) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestNthDerivativeWithoutIntermediateSimplification(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Pow(x, symbolic.C(3))
	second := NthDerivative(e, x, 2)

	at := 5.0
	gotV := evalAt(t, second, eval.Bindings{"x": at})
	want := 6 * at
	if math.Abs(gotV-want) > 1e-9 {
		t.Fatalf("d2/dx2(x^3) at x=%v = %v, want %v", at, gotV, want)
	}
}

func TestNthDerivativeZeroIsIdentity(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Pow(x, symbolic.C(3))
	if got := NthDerivative(e, x, 0); !exprEqualTest(got, e) {
		t.Fatalf("NthDerivative(e, x, 0) = %#v, want e unchanged", got)
	}
}

func TestGradientOrdersPartialsByVarList(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	e := symbolic.Add(symbolic.Mul(symbolic.C(2), x), symbolic.Mul(symbolic.C(3), y))
	grad := Gradient(e, x, y)
	if len(grad) != 2 {
		t.Fatalf("Gradient returned %d entries, want 2", len(grad))
	}
	if !exprEqualTest(simplifiedExpr(grad[0]), symbolic.C(2)) {
		t.Fatalf("d/dx = %#v, want 2", simplifiedExpr(grad[0]))
	}
	if !exprEqualTest(simplifiedExpr(grad[1]), symbolic.C(3)) {
		t.Fatalf("d/dy = %#v, want 3", simplifiedExpr(grad[1]))
	}
}

func TestDiffSimplifiedFoldsConstants(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Mul(symbolic.C(5), x)
	got := DiffSimplified(e, x, context.Default())
	if !exprEqualTest(got, symbolic.C(5)) {
		t.Fatalf("DiffSimplified(5x) = %#v, want 5", got)
	}
}
