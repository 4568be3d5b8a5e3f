// Package operator defines the stateless tag vocabulary for every operation
// the engine knows about: arithmetic, transcendentals, comparisons, and
// logical/bitwise operators. Each tag is a zero-size value carrying its
// arity, display metadata, and the runtime numeric semantics used by
// evaluate(). Tags are compared by table position for the total ordering
// in package order.
package operator

import (
	"fmt"
	"math"
)

// DisplayMode controls how toString renders an operator.
type DisplayMode int

const (
	Infix DisplayMode = iota
	Prefix
)

// Precedence buckets, ordered exactly as the spec requires:
// Addition < Multiplication < Power < Unary < Atomic.
type Precedence int

const (
	PrecAddition Precedence = iota
	PrecMultiplication
	PrecPower
	PrecUnary
	PrecAtomic
)

// DisplayTraits is the per-operator rendering metadata.
type DisplayTraits struct {
	Glyph string
	Mode  DisplayMode
	Prec  Precedence
}

// Tag is the capability every operator vocabulary member implements.
type Tag interface {
	// Name is a unique, stable identifier (used in error messages and the
	// rule trace), not necessarily the display glyph.
	Name() string
	// Arity is the fixed argument count, or -1 for variadic (Add, Mul).
	Arity() int
	Display() DisplayTraits
	// Apply computes the runtime value of the operator on already-reduced
	// numeric arguments.
	Apply(args ...float64) (float64, error)
	// CanonicalForm reports whether operand reordering rules apply
	// (associative + commutative: only Add and Mul).
	CanonicalForm() bool
}

// tag is the shared implementation backing every package-level Tag value.
type tag struct {
	name      string
	arity     int
	display   DisplayTraits
	apply     func(args ...float64) (float64, error)
	canonical bool
}

func (t *tag) Name() string                                  { return t.name }
func (t *tag) Arity() int                                    { return t.arity }
func (t *tag) Display() DisplayTraits                        { return t.display }
func (t *tag) Apply(args ...float64) (float64, error)        { return t.apply(args...) }
func (t *tag) CanonicalForm() bool                            { return t.canonical }

func variadicFold(seed float64, op func(acc, x float64) float64) func(args ...float64) (float64, error) {
	return func(args ...float64) (float64, error) {
		acc := seed
		first := true
		for _, a := range args {
			if first {
				acc = a
				first = false
				continue
			}
			acc = op(acc, a)
		}
		return acc, nil
	}
}

func unary(f func(float64) float64) func(args ...float64) (float64, error) {
	return func(args ...float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("unary operator requires exactly one argument, got %d", len(args))
		}
		return f(args[0]), nil
	}
}

func binary(f func(a, b float64) float64) func(args ...float64) (float64, error) {
	return func(args ...float64) (float64, error) {
		if len(args) != 2 {
			return 0, fmt.Errorf("binary operator requires exactly two arguments, got %d", len(args))
		}
		return f(args[0], args[1]), nil
	}
}

// Arithmetic.
var (
	Add = &tag{"Add", -1, DisplayTraits{"+", Infix, PrecAddition}, variadicFold(0, func(a, b float64) float64 { return a + b }), true}
	Sub = &tag{"Sub", 2, DisplayTraits{"-", Infix, PrecAddition}, binary(func(a, b float64) float64 { return a - b }), false}
	Mul = &tag{"Mul", -1, DisplayTraits{"*", Infix, PrecMultiplication}, variadicFold(1, func(a, b float64) float64 { return a * b }), true}
	Div = &tag{"Div", 2, DisplayTraits{"/", Infix, PrecMultiplication}, binary(func(a, b float64) float64 { return a / b }), false}
	Mod = &tag{"Mod", 2, DisplayTraits{"mod", Infix, PrecMultiplication}, binary(math.Mod), false}
	Pow = &tag{"Pow", 2, DisplayTraits{"^", Infix, PrecPower}, binary(math.Pow), false}
	Neg = &tag{"Neg", 1, DisplayTraits{"-", Prefix, PrecUnary}, unary(func(a float64) float64 { return -a }), false}
)

// Transcendentals.
var (
	Sin   = &tag{"Sin", 1, DisplayTraits{"sin", Prefix, PrecAtomic}, unary(math.Sin), false}
	Cos   = &tag{"Cos", 1, DisplayTraits{"cos", Prefix, PrecAtomic}, unary(math.Cos), false}
	Tan   = &tag{"Tan", 1, DisplayTraits{"tan", Prefix, PrecAtomic}, unary(math.Tan), false}
	Asin  = &tag{"Asin", 1, DisplayTraits{"asin", Prefix, PrecAtomic}, unary(math.Asin), false}
	Acos  = &tag{"Acos", 1, DisplayTraits{"acos", Prefix, PrecAtomic}, unary(math.Acos), false}
	Atan  = &tag{"Atan", 1, DisplayTraits{"atan", Prefix, PrecAtomic}, unary(math.Atan), false}
	Atan2 = &tag{"Atan2", 2, DisplayTraits{"atan2", Prefix, PrecAtomic}, binary(math.Atan2), false}
	Sinh  = &tag{"Sinh", 1, DisplayTraits{"sinh", Prefix, PrecAtomic}, unary(math.Sinh), false}
	Cosh  = &tag{"Cosh", 1, DisplayTraits{"cosh", Prefix, PrecAtomic}, unary(math.Cosh), false}
	Tanh  = &tag{"Tanh", 1, DisplayTraits{"tanh", Prefix, PrecAtomic}, unary(math.Tanh), false}
	Exp   = &tag{"Exp", 1, DisplayTraits{"exp", Prefix, PrecAtomic}, unary(math.Exp), false}
	Log   = &tag{"Log", 1, DisplayTraits{"log", Prefix, PrecAtomic}, unary(math.Log), false}
	Sqrt  = &tag{"Sqrt", 1, DisplayTraits{"sqrt", Prefix, PrecAtomic}, unary(math.Sqrt), false}
)

// Zero-argument named constants.
var (
	PiOp = &tag{"Pi", 0, DisplayTraits{"pi", Prefix, PrecAtomic}, func(args ...float64) (float64, error) { return math.Pi, nil }, false}
	EOp  = &tag{"E", 0, DisplayTraits{"e", Prefix, PrecAtomic}, func(args ...float64) (float64, error) { return math.E, nil }, false}
)

// Comparisons and logical/bitwise operators: expressible but never subject
// to algebraic simplification rules (spec §4.3).
var (
	Eq  = &tag{"Eq", 2, DisplayTraits{"==", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a == b) }), false}
	Neq = &tag{"Neq", 2, DisplayTraits{"!=", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a != b) }), false}
	Lt  = &tag{"Lt", 2, DisplayTraits{"<", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a < b) }), false}
	Leq = &tag{"Leq", 2, DisplayTraits{"<=", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a <= b) }), false}
	Gt  = &tag{"Gt", 2, DisplayTraits{">", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a > b) }), false}
	Geq = &tag{"Geq", 2, DisplayTraits{">=", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a >= b) }), false}
	And = &tag{"And", 2, DisplayTraits{"&&", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a != 0 && b != 0) }), false}
	Or  = &tag{"Or", 2, DisplayTraits{"||", Infix, PrecAddition}, binary(func(a, b float64) float64 { return boolf(a != 0 || b != 0) }), false}
	Not = &tag{"Not", 1, DisplayTraits{"!", Prefix, PrecUnary}, unary(func(a float64) float64 { return boolf(a == 0) }), false}

	BitAnd = &tag{"BitAnd", 2, DisplayTraits{"&", Infix, PrecAddition}, bitwise(func(a, b int64) int64 { return a & b }), false}
	BitOr  = &tag{"BitOr", 2, DisplayTraits{"|", Infix, PrecAddition}, bitwise(func(a, b int64) int64 { return a | b }), false}
	BitXor = &tag{"BitXor", 2, DisplayTraits{"^", Infix, PrecAddition}, bitwise(func(a, b int64) int64 { return a ^ b }), false}
	Shl    = &tag{"Shl", 2, DisplayTraits{"<<", Infix, PrecAddition}, bitwise(func(a, b int64) int64 { return a << uint(b) }), false}
	Shr    = &tag{"Shr", 2, DisplayTraits{">>", Infix, PrecAddition}, bitwise(func(a, b int64) int64 { return a >> uint(b) }), false}
)

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func bitwise(f func(a, b int64) int64) func(args ...float64) (float64, error) {
	return binary(func(a, b float64) float64 { return float64(f(int64(a), int64(b))) })
}

// Table is the fixed operator-position table used by package order for
// comparing two Expressions: EOp, PiOp, Add, Sub, Mul, Div, Pow, Atan2,
// Sqrt, Exp, Log, Sin, Cos, Tan, Asin, Acos, Atan, Sinh, Cosh, Tanh, Eq,
// Neq, Lt, Leq, Gt, Geq, And, Or, Not, BitAnd, BitOr, BitXor, Shl, Shr.
var Table = []Tag{
	EOp, PiOp, Add, Sub, Mul, Div, Pow, Atan2, Sqrt, Exp, Log,
	Sin, Cos, Tan, Asin, Acos, Atan, Sinh, Cosh, Tanh,
	Eq, Neq, Lt, Leq, Gt, Geq, And, Or, Not, BitAnd, BitOr, BitXor, Shl, Shr,
}

var tablePos = func() map[Tag]int {
	m := make(map[Tag]int, len(Table))
	for i, t := range Table {
		m[t] = i
	}
	return m
}()

// Position returns t's fixed index in Table, used by the total order.
// Operators not in the table (Neg, Mod) sort after every tabled operator,
// ordered among themselves by nameRank, a deterministic hash of the name.
func Position(t Tag) int {
	if p, ok := tablePos[t]; ok {
		return p
	}
	return len(Table) + int(nameRank(t.Name()))
}

func nameRank(name string) int64 {
	var r int64
	for _, c := range name {
		r = r*31 + int64(c)
	}
	if r < 0 {
		r = -r
	}
	return r % 1000
}
