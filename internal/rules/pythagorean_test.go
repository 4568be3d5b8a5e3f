package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestPythagoreanIdentityEitherOrder(t *testing.T) {
	x := symbolic.NewSymbol("x")
	sin2 := symbolic.Pow(symbolic.Sin(x), symbolic.C(2))
	cos2 := symbolic.Pow(symbolic.Cos(x), symbolic.C(2))

	if got := PythagoreanSystem.Apply(symbolic.Add(sin2, cos2), context.Default()); !exprEqual(got, symbolic.C(1)) {
		t.Fatalf("sin(x)^2+cos(x)^2 = %#v, want Constant<1>", got)
	}
	if got := PythagoreanSystem.Apply(symbolic.Add(cos2, sin2), context.Default()); !exprEqual(got, symbolic.C(1)) {
		t.Fatalf("cos(x)^2+sin(x)^2 = %#v, want Constant<1>", got)
	}
}

func TestPythagoreanIdentityRequiresSameAngle(t *testing.T) {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	e := symbolic.Add(
		symbolic.Pow(symbolic.Sin(x), symbolic.C(2)),
		symbolic.Pow(symbolic.Cos(y), symbolic.C(2)),
	)
	got := PythagoreanSystem.Apply(e, context.Default())
	if !exprEqual(got, e) {
		t.Fatalf("mismatched angles must not collapse, got %#v", got)
	}
}

func TestPythagoreanIdentityNeverExpandsInReverse(t *testing.T) {
	// There is no rule that turns Constant<1> back into sin^2+cos^2.
	got := PythagoreanSystem.Apply(symbolic.C(1), context.Default())
	if !exprEqual(got, symbolic.C(1)) {
		t.Fatalf("PythagoreanSystem should leave a bare constant alone, got %#v", got)
	}
}
