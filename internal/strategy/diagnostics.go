package strategy

import (
	"sync"

	"symalg/internal/context"
	"symalg/internal/serrors"
)

// maxDiagnostics bounds the sink so a long-running process (the REPL) that
// never calls Diagnostics doesn't grow it without limit; the oldest entries
// are dropped first, since a trace cares most about what just happened.
const maxDiagnostics = 256

// diagnostics collects the non-fatal DepthExceeded / IterationCapReached
// domain errors a traversal or fix-point records when it hits a resource
// limit without converging. Recording one never changes what a strategy
// returns — a graceful stop still returns a valid Expr (§7.3) — this is
// purely a side channel for a caller that wants a trace, like `symalg
// trace`, to ask what happened. Package-level because the traversal
// combinators close over themselves recursively and have no return path
// of their own to carry a diagnostic out through.
var diagnostics struct {
	mu   sync.Mutex
	errs []error
}

func recordDiagnostic(err error) {
	diagnostics.mu.Lock()
	diagnostics.errs = append(diagnostics.errs, err)
	if over := len(diagnostics.errs) - maxDiagnostics; over > 0 {
		diagnostics.errs = diagnostics.errs[over:]
	}
	diagnostics.mu.Unlock()
}

// Record adds err to the diagnostic log directly; exported so packages
// outside strategy (e.g. a rule that declines to rewrite rather than a
// traversal that hits a limit) can report into the same sink that
// Diagnostics drains.
func Record(err error) {
	recordDiagnostic(err)
}

// Diagnostics drains and returns every domain error recorded since the
// last call.
func Diagnostics() []error {
	diagnostics.mu.Lock()
	out := diagnostics.errs
	diagnostics.errs = nil
	diagnostics.mu.Unlock()
	return out
}

func recordDepthExceeded(rule string, ctx context.Context) {
	recordDiagnostic(serrors.New(serrors.DepthExceeded, rule, "depth guard (%d) reached", ctx.DepthGuard()))
}

func recordIterationCapReached(rule string, cap int) {
	recordDiagnostic(serrors.New(serrors.IterationCapReached, rule, "iteration cap (%d) reached without converging", cap))
}
