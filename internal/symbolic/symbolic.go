// Package symbolic defines the expression algebra: the four entity kinds
// (Symbol, Constant, Fraction, Expression) plus the wildcard sentinels used
// only inside patterns. Every value is immutable after construction — a
// rewrite never mutates a node, it builds a new tree and the caller
// discards the old one (spec §3).
package symbolic

import (
	"symalg/internal/operator"
	"symalg/internal/serrors"
	"symalg/internal/typeid"
)

// Expr is the capability shared by every node in an expression tree,
// including the wildcard sentinels that appear only in patterns. It is a
// sealed interface: only this package may implement it, because the
// matcher's priority dispatch (package match) switches exhaustively over
// the concrete types declared here.
type Expr interface {
	exprNode()
}

// Symbol is a fresh nominal identity with no value. Two Symbols with the
// same Name are still distinct unless they share an ID — NewSymbol always
// mints a fresh identity.
type Symbol struct {
	Name string
	id   typeid.ID
}

// NewSymbol declares a fresh Symbol, ordered after every Symbol declared
// earlier in this process.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name, id: typeid.New()}
}

// ID returns the Symbol's ordering identity.
func (s *Symbol) ID() typeid.ID { return s.id }

func (*Symbol) exprNode() {}

// Constant is a compile-time (here: construction-time) literal numeric
// value.
type Constant struct {
	Value float64
}

// C builds a Constant.
func C(v float64) *Constant { return &Constant{Value: v} }

func (*Constant) exprNode() {}

// Fraction is two integers reduced to lowest terms with denominator >= 1.
// Constructing directly is disallowed outside this package — use Frac,
// which maintains the normalization invariant.
type Fraction struct {
	N, D int64
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Frac builds a normalized Fraction: gcd(|n|,d)=1 and d>0. A Fraction that
// reduces to denominator 1 folds to a Constant instead, per the spec's
// fraction-normalization invariant. Division by zero is a structural
// diagnostic (§7.1) — an authoring error — so it panics.
func Frac(n, d int64) Expr {
	if d == 0 {
		serrors.Panic(serrors.DivisionByZero, "Frac", "fraction with zero denominator (%d/0)", n)
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(n, d)
	n, d = n/g, d/g
	if d == 1 {
		return C(float64(n))
	}
	return &Fraction{N: n, D: d}
}

func (*Fraction) exprNode() {}

// Value converts a Fraction to its numeric value.
func (f *Fraction) Value() float64 { return float64(f.N) / float64(f.D) }

// Expression is an operator tag and an ordered sequence of k >= 0 symbolic
// arguments.
type Expression struct {
	Op   operator.Tag
	Args []Expr
}

// NewExpr builds an Expression node. It does not fold or normalize — that
// is the job of the constant-folding rule (package rules).
func NewExpr(op operator.Tag, args ...Expr) *Expression {
	return &Expression{Op: op, Args: args}
}

func (*Expression) exprNode() {}

// --- Pattern-only wildcard sentinels ---
// These implement Expr so the matcher can dispatch on a single interface,
// but a pipeline that yields one of these in a public result is a bug
// (spec §3 "No sentinels in user output").

type anyArgT struct{}

// AnyArg matches anything.
var AnyArg Expr = anyArgT{}

func (anyArgT) exprNode() {}

type anyExprT struct{}

// AnyExpr matches any Expression.
var AnyExpr Expr = anyExprT{}

func (anyExprT) exprNode() {}

type anyConstantT struct{}

// AnyConstant matches any Constant or Fraction.
var AnyConstant Expr = anyConstantT{}

func (anyConstantT) exprNode() {}

type anySymbolT struct{}

// AnySymbol matches any Symbol.
var AnySymbol Expr = anySymbolT{}

func (anySymbolT) exprNode() {}

// PatternVar matches anything and binds it to ID for later substitution.
type PatternVar struct {
	ID string
}

// Var builds a PatternVar with the given binding identity.
func Var(id string) *PatternVar { return &PatternVar{ID: id} }

func (*PatternVar) exprNode() {}

type neverT struct{}

// Never is the non-matching sentinel: it never matches anything, on either
// side, and is returned by shape accessors when the shape does not apply.
var Never Expr = neverT{}

func (neverT) exprNode() {}

// IsNever reports whether e is the Never sentinel.
func IsNever(e Expr) bool {
	_, ok := e.(neverT)
	return ok
}

// IsAnyArg reports whether e is the AnyArg wildcard.
func IsAnyArg(e Expr) bool { _, ok := e.(anyArgT); return ok }

// IsAnyExpr reports whether e is the AnyExpr wildcard.
func IsAnyExpr(e Expr) bool { _, ok := e.(anyExprT); return ok }

// IsAnyConstant reports whether e is the AnyConstant wildcard.
func IsAnyConstant(e Expr) bool { _, ok := e.(anyConstantT); return ok }

// IsAnySymbol reports whether e is the AnySymbol wildcard.
func IsAnySymbol(e Expr) bool { _, ok := e.(anySymbolT); return ok }

// AsPatternVar returns e as a *PatternVar if it is one.
func AsPatternVar(e Expr) (*PatternVar, bool) {
	v, ok := e.(*PatternVar)
	return v, ok
}

// --- Classification predicates ---

func IsSymbol(e Expr) bool {
	_, ok := e.(*Symbol)
	return ok
}

func IsConstant(e Expr) bool {
	_, ok := e.(*Constant)
	return ok
}

func IsFraction(e Expr) bool {
	_, ok := e.(*Fraction)
	return ok
}

// IsNumeric reports whether e is a Constant or Fraction.
func IsNumeric(e Expr) bool {
	return IsConstant(e) || IsFraction(e)
}

func IsExpression(e Expr) bool {
	_, ok := e.(*Expression)
	return ok
}

func IsWildcard(e Expr) bool {
	switch e.(type) {
	case anyArgT, anyExprT, anyConstantT, anySymbolT, *PatternVar:
		return true
	default:
		return false
	}
}

// --- Accessors: never fail, return Never on shape mismatch ---

// Op returns e's operator tag, or nil if e is not an Expression.
func Op(e Expr) operator.Tag {
	if ex, ok := e.(*Expression); ok {
		return ex.Op
	}
	return nil
}

// Operand returns the sole argument of a unary Expression, or Never.
func Operand(e Expr) Expr {
	if ex, ok := e.(*Expression); ok && len(ex.Args) == 1 {
		return ex.Args[0]
	}
	return Never
}

// Left returns the first argument of a binary (or variadic) Expression, or
// Never.
func Left(e Expr) Expr {
	if ex, ok := e.(*Expression); ok && len(ex.Args) >= 1 {
		return ex.Args[0]
	}
	return Never
}

// Right returns the second argument of a binary Expression, or Never.
func Right(e Expr) Expr {
	if ex, ok := e.(*Expression); ok && len(ex.Args) >= 2 {
		return ex.Args[1]
	}
	return Never
}

// Arg returns the k-th argument (0-indexed) of an Expression, or Never.
func Arg(e Expr, k int) Expr {
	if ex, ok := e.(*Expression); ok && k >= 0 && k < len(ex.Args) {
		return ex.Args[k]
	}
	return Never
}

// Arity returns the argument count of an Expression, or -1 otherwise.
func Arity(e Expr) int {
	if ex, ok := e.(*Expression); ok {
		return len(ex.Args)
	}
	return -1
}

// NumericValue returns e's value as a float64 and true, for a Constant or
// Fraction; otherwise (0, false).
func NumericValue(e Expr) (float64, bool) {
	switch v := e.(type) {
	case *Constant:
		return v.Value, true
	case *Fraction:
		return v.Value(), true
	default:
		return 0, false
	}
}
