package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kr/pretty"

	"symalg/internal/context"
	"symalg/internal/eval"
	"symalg/internal/exprlang"
	"symalg/internal/match"
	"symalg/internal/rules"
	"symalg/internal/serrors"
	"symalg/internal/strategy"
	"symalg/internal/symbolic"
)

// traceCommand applies the default rule set innermost-first, one step at a
// time, printing the expression after every step until it reaches a
// fixpoint or the iteration cap — the visible form of what pipeline.Simplify
// does silently. Each run gets a short id so separate trace runs piped
// through a log are distinguishable.
func traceCommand(args []string) error {
	positional, flags := parseFlags(args)
	if len(positional) == 0 {
		return fmt.Errorf("usage: symalg trace <expr> [--verbose]")
	}
	env := exprlang.NewEnv()
	e, err := exprlang.Parse(joinPositional(positional), env)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	runID := uuid.New().String()[:8]
	fmt.Printf("trace %s\n", runID)

	verbose := flags["verbose"] == "true"
	innermost := strategy.Innermost(rules.All)
	ctx := context.Default()
	strategy.Diagnostics() // drain any stale diagnostics from an earlier run

	cur := e
	for step := 0; step < context.DefaultIterationCap; step++ {
		fmt.Printf("  [%d] %s\n", step, eval.ToString(cur, eval.RenderOptions{Spacing: true}))
		if verbose {
			fmt.Printf("%# v\n", pretty.Formatter(cur))
		}
		next := innermost.Apply(cur, ctx)
		if symbolic.IsNever(next) || exprEqual(next, cur) {
			fmt.Printf("  converged after %d step(s)\n", step)
			printDiagnostics()
			return nil
		}
		cur = next
	}
	fmt.Printf("  iteration cap reached (%d steps)\n", context.DefaultIterationCap)
	printDiagnostics()
	return nil
}

// printDiagnostics reports any DepthExceeded/IterationCapReached conditions
// a traversal hit internally while reaching the trace above — these never
// change the result (§7.3's graceful stop), so they're surfaced here and
// nowhere else. A single trace step can recurse into many sibling
// sub-expressions that each hit the same depth guard, so depth notes are
// collapsed to one line rather than repeated per occurrence.
func printDiagnostics() {
	sawDepthExceeded := false
	for _, err := range strategy.Diagnostics() {
		if serrors.IsKind(err, serrors.DepthExceeded) {
			if sawDepthExceeded {
				continue
			}
			sawDepthExceeded = true
		}
		fmt.Printf("  note: %v\n", err)
	}
}

func exprEqual(a, b symbolic.Expr) bool { return match.BooleanMatch(a, b) }
