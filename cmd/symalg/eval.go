package main

import (
	"fmt"
	"strconv"
	"strings"

	"symalg/internal/eval"
	"symalg/internal/exprlang"
)

func evalCommand(args []string) error {
	positional, flags := parseFlags(args)
	if len(positional) == 0 {
		return fmt.Errorf("usage: symalg eval <expr> --where=x=1,y=2")
	}
	env := exprlang.NewEnv()
	e, err := exprlang.Parse(joinPositional(positional), env)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	bindings := eval.Bindings{}
	if where, ok := flags["where"]; ok {
		for _, assign := range strings.Split(where, ",") {
			name, value, hasValue := strings.Cut(assign, "=")
			if !hasValue {
				return fmt.Errorf("bad binding %q, want name=value", assign)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return fmt.Errorf("bad binding value %q: %w", value, err)
			}
			bindings[strings.TrimSpace(name)] = v
		}
	}

	result, err := eval.Evaluate(e, bindings)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
