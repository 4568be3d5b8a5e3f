package rules

// All is the combined RewriteSystem the simplification pipelines drive
// through a traversal combinator (package pipeline). Order matters: each
// member is tried in turn and the first rule anywhere that changes the term
// wins, so cheaper/more-specific systems are listed first. ConstantFold
// leads so literal arithmetic (including exact fraction division) folds
// before Normalize rewrites Div into Mul-by-reciprocal. Distribute is
// deliberately absent — it is opt-in only (see explicit.go).
// PowerCombiningSystem's member rules (combineLeftBare, combineRightBare,
// combineBothPowers) are exercised here through MultiplicationSystem, which
// lists the same *Rewrite values directly — not through PowerCombiningSystem
// itself, which would duplicate them in this combined list.
var All = NewSystem("All",
	ConstantFoldSystem,
	NormalizeSystem,
	PowerSystem,
	AdditionSystem,
	MultiplicationSystem,
	ExpLogSystem,
	TrigSystem,
	PythagoreanSystem,
	HyperbolicSystem,
)

// TrigAware is All plus the opt-in double-angle identities, the rule set
// backing the trig_aware_simplify pipeline (spec §4.7).
var TrigAware = NewSystem("AllTrigAware",
	ConstantFoldSystem,
	NormalizeSystem,
	PowerSystem,
	AdditionSystem,
	MultiplicationSystem,
	ExpLogSystem,
	TrigSystem,
	DoubleAngleSystem,
	PythagoreanSystem,
	HyperbolicSystem,
)

// QuickAnnihilators is the descent-pass rule set two_stage_simplify uses: the
// cheap, purely-shrinking rules (constant folding and the zero/one
// identities) that make it pointless to recurse into a subtree they are
// about to annihilate.
var QuickAnnihilators = NewSystem("QuickAnnihilators",
	ConstantFoldSystem,
	NewSystem("ZeroOneIdentities", mulZeroLeft, mulZeroRight, mulOneLeft, mulOneRight, addZeroLeft, addZeroRight),
)
