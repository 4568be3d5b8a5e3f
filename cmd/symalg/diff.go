package main

import (
	"fmt"
	"strconv"

	"symalg/internal/context"
	"symalg/internal/derivative"
	"symalg/internal/eval"
	"symalg/internal/exprlang"
)

func diffCommand(args []string) error {
	positional, flags := parseFlags(args)
	if len(positional) == 0 {
		return fmt.Errorf("usage: symalg diff <expr> --wrt=<var> [--order=<n>]")
	}
	wrt := flags["wrt"]
	if wrt == "" {
		return fmt.Errorf("diff requires --wrt=<var>")
	}
	order := 1
	if raw, ok := flags["order"]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("--order must be a positive integer, got %q", raw)
		}
		order = n
	}

	env := exprlang.NewEnv()
	e, err := exprlang.Parse(joinPositional(positional), env)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	x := env.Symbol(wrt)
	var result = derivative.NthDerivative(e, x, order)
	if order == 1 {
		result = derivative.DiffSimplified(e, x, context.Default())
	}
	fmt.Println(eval.ToString(result, eval.RenderOptions{Spacing: true}))
	return nil
}
