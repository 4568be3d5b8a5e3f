package symbolic

import "symalg/internal/operator"

// Construction surface (spec §6). Go has no operator overloading or
// user-defined literal suffixes, so the host-language "operator overload on
// Symbolic operands" and "numeric literal suffix" constructors are rendered
// as ordinary functions: Add(a, b) in place of a+b, C(3) in place of 3_c,
// Frac(2,3) in place of 2/3_frac.

func Add(args ...Expr) Expr  { return NewExpr(operator.Add, args...) }
func Sub(a, b Expr) Expr     { return NewExpr(operator.Sub, a, b) }
func Mul(args ...Expr) Expr  { return NewExpr(operator.Mul, args...) }
func Div(a, b Expr) Expr     { return NewExpr(operator.Div, a, b) }
func Mod(a, b Expr) Expr     { return NewExpr(operator.Mod, a, b) }
func Pow(a, b Expr) Expr     { return NewExpr(operator.Pow, a, b) }
func Neg(a Expr) Expr        { return NewExpr(operator.Neg, a) }

func Sin(a Expr) Expr   { return NewExpr(operator.Sin, a) }
func Cos(a Expr) Expr   { return NewExpr(operator.Cos, a) }
func Tan(a Expr) Expr   { return NewExpr(operator.Tan, a) }
func Asin(a Expr) Expr  { return NewExpr(operator.Asin, a) }
func Acos(a Expr) Expr  { return NewExpr(operator.Acos, a) }
func Atan(a Expr) Expr  { return NewExpr(operator.Atan, a) }
func Atan2(a, b Expr) Expr { return NewExpr(operator.Atan2, a, b) }
func Sinh(a Expr) Expr  { return NewExpr(operator.Sinh, a) }
func Cosh(a Expr) Expr  { return NewExpr(operator.Cosh, a) }
func Tanh(a Expr) Expr  { return NewExpr(operator.Tanh, a) }
func Exp(a Expr) Expr   { return NewExpr(operator.Exp, a) }
func Log(a Expr) Expr   { return NewExpr(operator.Log, a) }
func Sqrt(a Expr) Expr  { return NewExpr(operator.Sqrt, a) }

// Pi and E are the named zero-argument constants.
var (
	Pi Expr = NewExpr(operator.PiOp)
	E  Expr = NewExpr(operator.EOp)
)

// Binding is the "symbol = value" pair the spec uses to build an evaluation
// BinderPack entry.
type Binding struct {
	Sym   *Symbol
	Value interface{}
}

// Bind creates a Symbol/value binding pair, the Go rendering of
// `symbol = value`.
func Bind(s *Symbol, v interface{}) Binding { return Binding{Sym: s, Value: v} }
