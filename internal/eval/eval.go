// Package eval bridges the symbolic tree back to numbers and text: the
// evaluate/toString/PRETTY_PRINT consumption surface of spec §4.7.
package eval

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"symalg/internal/operator"
	"symalg/internal/serrors"
	"symalg/internal/symbolic"
)

// Bindings maps a Symbol's Name to the value it is bound to for Evaluate.
// Values are accepted heterogeneously (int, float64, string numerals, ...)
// and coerced with cast, mirroring how a host-language BinderPack accepts
// whatever numeric type the caller has on hand.
type Bindings map[string]interface{}

// Evaluate reduces expr to a numeric value by running each operator's
// Apply at the leaves, substituting bound Symbol values along the way.
func Evaluate(expr symbolic.Expr, b Bindings) (float64, error) {
	switch e := expr.(type) {
	case *symbolic.Constant:
		return e.Value, nil
	case *symbolic.Fraction:
		return e.Value(), nil
	case *symbolic.Symbol:
		raw, ok := b[e.Name]
		if !ok {
			return 0, errors.Errorf("evaluate: unbound symbol %q", e.Name)
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return 0, errors.Wrapf(err, "evaluate: symbol %q", e.Name)
		}
		return v, nil
	case *symbolic.Expression:
		vals := make([]float64, len(e.Args))
		for i, a := range e.Args {
			v, err := Evaluate(a, b)
			if err != nil {
				return 0, err
			}
			vals[i] = v
		}
		if e.Op == operator.Div && len(vals) == 2 && vals[1] == 0 {
			serrors.Panic(serrors.DivisionByZero, "evaluate", "division by zero evaluating %s", e.Op.Name())
		}
		res, err := e.Op.Apply(vals...)
		if err != nil {
			return 0, errors.Wrapf(err, "evaluate: operator %s", e.Op.Name())
		}
		return res, nil
	default:
		return 0, errors.Errorf("evaluate: %T is a pattern-only sentinel, not a value", expr)
	}
}

// RenderOptions controls ToString's output spacing.
type RenderOptions struct {
	// Spacing puts a single space around infix operators ("x + 1" instead
	// of "x+1").
	Spacing bool
}

// ToString renders expr to its static string form.
func ToString(expr symbolic.Expr, opts RenderOptions) string {
	var sb strings.Builder
	writeExpr(&sb, expr, opts)
	return sb.String()
}

// PrettyPrint is PRETTY_PRINT(expr, vars...): ToString with spacing on,
// documented as using the caller-visible variable names (Symbol.Name is
// always what gets rendered, so this is ToString with spacing forced).
func PrettyPrint(expr symbolic.Expr, vars ...*symbolic.Symbol) string {
	_ = vars
	return ToString(expr, RenderOptions{Spacing: true})
}

func writeExpr(sb *strings.Builder, expr symbolic.Expr, opts RenderOptions) {
	switch e := expr.(type) {
	case *symbolic.Symbol:
		sb.WriteString(e.Name)
	case *symbolic.Constant:
		sb.WriteString(formatFloat(e.Value))
	case *symbolic.Fraction:
		fmt.Fprintf(sb, "%d/%d", e.N, e.D)
	case *symbolic.Expression:
		writeExpression(sb, e, opts)
	default:
		sb.WriteString("<sentinel>")
	}
}

func writeExpression(sb *strings.Builder, e *symbolic.Expression, opts RenderOptions) {
	traits := e.Op.Display()
	if traits.Mode == operator.Prefix {
		sb.WriteString(traits.Glyph)
		if e.Op.Arity() == 0 {
			return
		}
		sb.WriteString("(")
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, a, opts)
		}
		sb.WriteString(")")
		return
	}
	sep := traits.Glyph
	if opts.Spacing {
		sep = " " + sep + " "
	}
	for i, a := range e.Args {
		if i > 0 {
			sb.WriteString(sep)
		}
		needsParens := isExpression(a) && lowerPrecedence(a, e.Op)
		if needsParens {
			sb.WriteString("(")
		}
		writeExpr(sb, a, opts)
		if needsParens {
			sb.WriteString(")")
		}
	}
}

func isExpression(e symbolic.Expr) bool {
	_, ok := e.(*symbolic.Expression)
	return ok
}

func lowerPrecedence(e symbolic.Expr, outer operator.Tag) bool {
	ex, ok := e.(*symbolic.Expression)
	if !ok {
		return false
	}
	return ex.Op.Display().Prec < outer.Display().Prec
}

func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
