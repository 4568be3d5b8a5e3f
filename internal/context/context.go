// Package context is the compile-time-aggregate-turned-runtime-value that
// strategies thread through a traversal: a recursion depth counter and an
// open set of mode tags. Strategies read tags but never mutate them — every
// transition produces a new Context (spec §4.6, §9 "Context tags vs.
// modes").
package context

// Tag is a mode marker carried in a Context's tag set.
type Tag string

const (
	InsideTrig             Tag = "InsideTrig"
	ConstantFoldingEnabled  Tag = "ConstantFoldingEnabled"
	SymbolicMode           Tag = "SymbolicMode"
	NumericMode            Tag = "NumericMode"
)

// DefaultDepthGuard is the default per-context recursion depth limit (§5).
const DefaultDepthGuard = 20

// DefaultIterationCap is the default fix-point iteration cap (§5).
const DefaultIterationCap = 100

// Context is an immutable value aggregate. Zero value is a valid, empty
// context with depth 0 and no tags.
type Context struct {
	depth      int
	depthGuard int
	tags       map[Tag]struct{}
}

// Default returns default_context(): depth 0, constant-folding enabled, no
// mode tags.
func Default() Context {
	return Context{depthGuard: DefaultDepthGuard}.With(ConstantFoldingEnabled)
}

// Numeric returns numeric_context(): constant-folding enabled, NumericMode
// set.
func Numeric() Context {
	return Default().With(NumericMode)
}

// Symbolic returns symbolic_context(): constant-folding disabled,
// SymbolicMode set.
func Symbolic() Context {
	return Context{depthGuard: DefaultDepthGuard}.With(SymbolicMode).Without(ConstantFoldingEnabled)
}

// With returns a new Context with tag added.
func (c Context) With(tag Tag) Context {
	next := c.clone()
	next.tags[tag] = struct{}{}
	return next
}

// Without returns a new Context with tag removed.
func (c Context) Without(tag Tag) Context {
	next := c.clone()
	delete(next.tags, tag)
	return next
}

// Has reports whether tag is set.
func (c Context) Has(tag Tag) bool {
	_, ok := c.tags[tag]
	return ok
}

// Depth returns the current recursion depth.
func (c Context) Depth() int { return c.depth }

// DepthGuard returns the configured depth guard (default 20).
func (c Context) DepthGuard() int {
	if c.depthGuard == 0 {
		return DefaultDepthGuard
	}
	return c.depthGuard
}

// IncrementDepth returns a new Context with depth increased by delta.
func (c Context) IncrementDepth(delta int) Context {
	next := c.clone()
	next.depth = c.depth + delta
	return next
}

// AtDepthLimit reports whether the depth guard has been reached.
func (c Context) AtDepthLimit() bool {
	return c.depth >= c.DepthGuard()
}

// WithDepthGuard returns a new Context using a custom depth guard.
func (c Context) WithDepthGuard(guard int) Context {
	next := c.clone()
	next.depthGuard = guard
	return next
}

func (c Context) clone() Context {
	tags := make(map[Tag]struct{}, len(c.tags)+1)
	for t := range c.tags {
		tags[t] = struct{}{}
	}
	return Context{depth: c.depth, depthGuard: c.depthGuard, tags: tags}
}
