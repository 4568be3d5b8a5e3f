package main

import (
	"fmt"

	"symalg/internal/context"
	"symalg/internal/eval"
	"symalg/internal/exprlang"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

var pipelinesByName = map[string]func(symbolic.Expr, context.Context) symbolic.Expr{
	"simplify":            pipeline.Simplify,
	"full_simplify":       pipeline.FullSimplify,
	"two_stage_simplify":  pipeline.TwoStageSimplify,
	"trig_aware_simplify": pipeline.TrigAwareSimplify,
}

func resolvePipeline(name string) (func(symbolic.Expr, context.Context) symbolic.Expr, error) {
	if name == "" {
		name = "simplify"
	}
	run, ok := pipelinesByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown pipeline %q (want simplify|full_simplify|two_stage_simplify|trig_aware_simplify)", name)
	}
	return run, nil
}

// resolveContext maps the --mode flag onto the spec's three named
// contexts (default_context/numeric_context/symbolic_context). symbolic
// mode disables constant folding, including exact-angle trig evaluation,
// so the tree keeps e.g. `sin(pi)` as a call instead of folding it to 0.
func resolveContext(mode string) (context.Context, error) {
	switch mode {
	case "", "default":
		return context.Default(), nil
	case "numeric":
		return context.Numeric(), nil
	case "symbolic":
		return context.Symbolic(), nil
	default:
		return context.Context{}, fmt.Errorf("unknown mode %q (want default|numeric|symbolic)", mode)
	}
}

func simplifyCommand(args []string) error {
	positional, flags := parseFlags(args)
	if len(positional) == 0 {
		return fmt.Errorf("usage: symalg simplify <expr> [--pipeline=<name>] [--mode=default|numeric|symbolic]")
	}
	run, err := resolvePipeline(flags["pipeline"])
	if err != nil {
		return err
	}
	ctx, err := resolveContext(flags["mode"])
	if err != nil {
		return err
	}
	env := exprlang.NewEnv()
	e, err := exprlang.Parse(joinPositional(positional), env)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	result := run(e, ctx)
	fmt.Println(eval.ToString(result, eval.RenderOptions{Spacing: true}))
	return nil
}
