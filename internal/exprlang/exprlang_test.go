package exprlang

import (
	"testing"

	"symalg/internal/context"
	"symalg/internal/eval"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

func parseOK(t *testing.T, src string) symbolic.Expr {
	t.Helper()
	e, err := Parse(src, NewEnv())
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return e
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want float64
	}{
		{"mul before add", "1 + 2 * 3", 7},
		{"parens override", "(1 + 2) * 3", 9},
		{"power right-associative", "2 ^ 3 ^ 2", 512}, // 2^(3^2) = 2^9
		{"unary minus", "-3 + 5", 2},
		{"division", "10 / 4", 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := parseOK(t, tt.src)
			v, err := eval.Evaluate(e, eval.Bindings{})
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tt.src, err)
			}
			if v != tt.want {
				t.Fatalf("eval(%q) = %v, want %v", tt.src, v, tt.want)
			}
		})
	}
}

func TestParseFunctionCalls(t *testing.T) {
	e := parseOK(t, "sin(0)")
	v, err := eval.Evaluate(e, eval.Bindings{})
	if err != nil {
		t.Fatalf("Evaluate(sin(0)): %v", err)
	}
	if v != 0 {
		t.Fatalf("eval(sin(0)) = %v, want 0", v)
	}
}

func TestParseBinaryFunctionWrongArityErrors(t *testing.T) {
	_, err := Parse("atan2(1)", NewEnv())
	if err == nil {
		t.Fatal("atan2 with one argument should error")
	}
}

func TestParseUnknownFunctionErrors(t *testing.T) {
	_, err := Parse("bogus(1)", NewEnv())
	if err == nil {
		t.Fatal("an unknown function name should error")
	}
}

func TestParseUnexpectedCharacterErrors(t *testing.T) {
	_, err := Parse("1 $ 2", NewEnv())
	if err == nil {
		t.Fatal("an unrecognized character should error")
	}
}

func TestParseTrailingTokensError(t *testing.T) {
	_, err := Parse("1 + 2)", NewEnv())
	if err == nil {
		t.Fatal("trailing unmatched tokens should error")
	}
}

func TestEnvSymbolIdentityIsStableAcrossMentions(t *testing.T) {
	env := NewEnv()
	e, err := Parse("x + x", env)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := pipeline.Simplify(e, context.Default())
	want := symbolic.Mul(symbolic.C(2), env.Symbol("x"))
	if v, _ := eval.Evaluate(got, eval.Bindings{"x": 5}); v != 10 {
		t.Fatalf("eval(x+x, x=5) = %v, want 10", v)
	}
	_ = want
}

func TestEnvBindLetsANameRefer(t *testing.T) {
	env := NewEnv()
	y := env.Symbol("y")
	env.Bind("double_y", symbolic.Mul(symbolic.C(2), y))

	e, err := Parse("double_y + 1", env)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, err := eval.Evaluate(e, eval.Bindings{"y": 3})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v != 7 {
		t.Fatalf("eval(double_y+1, y=3) = %v, want 7", v)
	}
}

func TestParseNamedConstants(t *testing.T) {
	e := parseOK(t, "pi")
	if e != symbolic.Pi {
		t.Fatalf("Parse(\"pi\") = %#v, want the shared Pi constant", e)
	}
	e2 := parseOK(t, "e")
	if e2 != symbolic.E {
		t.Fatalf("Parse(\"e\") = %#v, want the shared E constant", e2)
	}
}
