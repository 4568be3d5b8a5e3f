// Package proptest is a small test-suite runner adapted from sentra's
// internal/testing framework (TestRunner/TestSuite/TestCase/TestReporter),
// repurposed to drive the property-level checks of spec §8 — idempotence,
// value preservation, canonical orientation, match/substitute round trip,
// repeated-variable enforcement, derivative linearity, and the ordering
// laws — as a standalone, compiled check a caller can run without `go
// test` (the spec's "compiled test programs that print results").
package proptest

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of a single Case.
type Result struct {
	Name     string
	Passed   bool
	Failed   bool
	Skipped  bool
	Duration time.Duration
	Message  string
}

// Case is one property check.
type Case struct {
	Name string
	Skip bool
	Run  func(ctx *Context)
}

// Suite groups related Cases under one name.
type Suite struct {
	Name    string
	Cases   []Case
	Results []Result
}

// Context is the assertion surface a Case's Run function uses.
type Context struct {
	failures []string
}

// Require records a failure (without stopping the case) when condition is
// false.
func (c *Context) Require(condition bool, format string, args ...interface{}) {
	if !condition {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// Stats tallies results across every Suite a Runner has executed.
type Stats struct {
	Total, Passed, Failed, Skipped int
	Suites                         int
	Elapsed                        time.Duration
}

// Reporter receives Runner events; TextReporter is the default.
type Reporter interface {
	StartSuite(s *Suite)
	CaseDone(result Result)
	EndSuite(s *Suite)
	Summary(stats *Stats)
}

// Runner executes a set of Suites against a Reporter.
type Runner struct {
	suites   []*Suite
	reporter Reporter
	stats    Stats
}

// NewRunner builds a Runner. A nil reporter defaults to TextReporter.
func NewRunner(reporter Reporter) *Runner {
	if reporter == nil {
		reporter = NewTextReporter()
	}
	return &Runner{reporter: reporter}
}

// Add registers a Suite to run.
func (r *Runner) Add(s *Suite) { r.suites = append(r.suites, s) }

// Run executes every registered Suite and returns the aggregate Stats.
func (r *Runner) Run() *Stats {
	start := time.Now()
	for _, s := range r.suites {
		r.runSuite(s)
	}
	r.stats.Elapsed = time.Since(start)
	r.reporter.Summary(&r.stats)
	return &r.stats
}

func (r *Runner) runSuite(s *Suite) {
	r.reporter.StartSuite(s)
	r.stats.Suites++
	for _, c := range s.Cases {
		result := r.runCase(c)
		s.Results = append(s.Results, result)
		r.stats.Total++
		switch {
		case result.Skipped:
			r.stats.Skipped++
		case result.Passed:
			r.stats.Passed++
		default:
			r.stats.Failed++
		}
		r.reporter.CaseDone(result)
	}
	r.reporter.EndSuite(s)
}

func (r *Runner) runCase(c Case) Result {
	if c.Skip {
		return Result{Name: c.Name, Skipped: true}
	}
	ctx := &Context{}
	start := time.Now()
	c.Run(ctx)
	duration := time.Since(start)
	if len(ctx.failures) > 0 {
		return Result{Name: c.Name, Failed: true, Duration: duration, Message: strings.Join(ctx.failures, "; ")}
	}
	return Result{Name: c.Name, Passed: true, Duration: duration}
}
