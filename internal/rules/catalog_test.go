package rules

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

func TestAllFoldsAnnihilatorsAndLikeTerms(t *testing.T) {
	x := symbolic.NewSymbol("x")
	ctx := context.Default()

	if got := All.Apply(symbolic.Mul(symbolic.C(0), x), ctx); !exprEqual(got, symbolic.C(0)) {
		t.Fatalf("All.Apply(0*x) = %#v, want 0", got)
	}
	if got := All.Apply(symbolic.Add(x, x), ctx); !exprEqual(got, symbolic.Mul(symbolic.C(2), x)) {
		t.Fatalf("All.Apply(x+x) = %#v, want 2*x", got)
	}
}

func TestTrigAwareIncludesDoubleAngleButAllDoesNot(t *testing.T) {
	x := symbolic.NewSymbol("x")
	e := symbolic.Sin(symbolic.Mul(symbolic.C(2), x))
	ctx := context.Default()

	if got := All.Apply(e, ctx); !exprEqual(got, e) {
		t.Fatalf("All should not apply the double-angle identity, got %#v", got)
	}
	want := symbolic.Mul(symbolic.C(2), symbolic.Sin(x), symbolic.Cos(x))
	if got := TrigAware.Apply(e, ctx); !exprEqual(got, want) {
		t.Fatalf("TrigAware.Apply(sin(2x)) = %#v, want %#v", got, want)
	}
}

func TestQuickAnnihilatorsFoldsAndShrinksWithoutFullRuleSet(t *testing.T) {
	x := symbolic.NewSymbol("x")
	ctx := context.Default()

	if got := QuickAnnihilators.Apply(symbolic.Mul(symbolic.C(0), x), ctx); !exprEqual(got, symbolic.C(0)) {
		t.Fatalf("QuickAnnihilators.Apply(0*x) = %#v, want 0", got)
	}
	if got := QuickAnnihilators.Apply(symbolic.Add(symbolic.C(2), symbolic.C(3)), ctx); !exprEqual(got, symbolic.C(5)) {
		t.Fatalf("QuickAnnihilators.Apply(2+3) = %#v, want 5", got)
	}
	// It does not know like-term combination — that's in AdditionSystem,
	// not the quick-descent set.
	e := symbolic.Add(x, x)
	if got := QuickAnnihilators.Apply(e, ctx); !exprEqual(got, e) {
		t.Fatalf("QuickAnnihilators should not combine like terms, got %#v", got)
	}
}
