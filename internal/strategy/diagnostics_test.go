package strategy

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/serrors"
	"symalg/internal/symbolic"
)

// neverConverges always returns a new, distinct constant so FixPoint/
// Innermost/Outermost never see two consecutive equal results and must run
// to their cap.
func neverConverges() Strategy {
	n := 0.0
	return Func(func(symbolic.Expr, context.Context) symbolic.Expr {
		n++
		return symbolic.C(n)
	})
}

func TestFixPointRecordsIterationCapReachedWhenItNeverConverges(t *testing.T) {
	Diagnostics() // drain leftovers from another test
	FixPoint(5, neverConverges()).Apply(symbolic.C(0), context.Default())

	found := false
	for _, err := range Diagnostics() {
		if serrors.IsKind(err, serrors.IterationCapReached) {
			found = true
		}
	}
	if !found {
		t.Fatalf("FixPoint that never converges should record an IterationCapReached diagnostic")
	}
}

func TestFixPointRecordsNothingWhenItConverges(t *testing.T) {
	Diagnostics()
	FixPoint(5, Identity).Apply(symbolic.C(0), context.Default())
	for _, err := range Diagnostics() {
		if serrors.IsKind(err, serrors.IterationCapReached) {
			t.Fatalf("FixPoint that converges on the first pass should not record a cap diagnostic, got %v", err)
		}
	}
}

func TestBottomUpRecordsDepthExceededAtTheGuard(t *testing.T) {
	Diagnostics()
	x := symbolic.NewSymbol("x")
	ctx := context.Default().IncrementDepth(context.DefaultDepthGuard)
	BottomUp(Identity).Apply(x, ctx)

	found := false
	for _, err := range Diagnostics() {
		if serrors.IsKind(err, serrors.DepthExceeded) {
			found = true
		}
	}
	if !found {
		t.Fatalf("traversal starting at the depth guard should record a DepthExceeded diagnostic")
	}
}
