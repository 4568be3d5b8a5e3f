package proptest

import (
	"symalg/internal/context"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

// StressSuite builds a deeply left-nested expression well past the default
// depth guard and confirms FullSimplify still terminates with a valid
// expression (the §7.3 "resource exhaustion" contract: stop at the cap,
// return the most-recent term, never loop forever, never panic).
func StressSuite() *Suite {
	return &Suite{
		Name: "Termination under resource exhaustion",
		Cases: []Case{
			{
				Name: "deeply nested sum still terminates within the iteration cap",
				Run: func(ctx *Context) {
					x := symbolic.NewSymbol("x")
					var e symbolic.Expr = x
					for i := 0; i < 500; i++ {
						e = symbolic.Add(e, symbolic.C(0))
					}
					result := pipeline.Simplify(e, context.Default())
					ctx.Require(result != nil, "Simplify returned nil instead of stopping gracefully")
					ctx.Require(exprEqual(result, x) || symbolic.IsExpression(result),
						"Simplify did not return a valid expression under depth exhaustion")
				},
			},
		},
	}
}
