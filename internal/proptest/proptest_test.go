package proptest

import "testing"

// recordingReporter captures events instead of printing them, for assertions.
type recordingReporter struct {
	started  []string
	done     []Result
	ended    []string
	finalize *Stats
}

func (r *recordingReporter) StartSuite(s *Suite)   { r.started = append(r.started, s.Name) }
func (r *recordingReporter) CaseDone(result Result) { r.done = append(r.done, result) }
func (r *recordingReporter) EndSuite(s *Suite)      { r.ended = append(r.ended, s.Name) }
func (r *recordingReporter) Summary(stats *Stats)   { r.finalize = stats }

func TestRunnerTalliesPassFailSkip(t *testing.T) {
	suite := &Suite{
		Name: "fixture",
		Cases: []Case{
			{Name: "passes", Run: func(ctx *Context) {}},
			{Name: "fails", Run: func(ctx *Context) { ctx.Require(false, "boom") }},
			{Name: "skipped", Skip: true, Run: func(ctx *Context) {}},
		},
	}
	rep := &recordingReporter{}
	runner := NewRunner(rep)
	runner.Add(suite)
	stats := runner.Run()

	if stats.Total != 3 || stats.Passed != 1 || stats.Failed != 1 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want Total:3 Passed:1 Failed:1 Skipped:1", *stats)
	}
	if stats.Suites != 1 {
		t.Fatalf("stats.Suites = %d, want 1", stats.Suites)
	}
	if len(rep.started) != 1 || rep.started[0] != "fixture" {
		t.Fatalf("reporter.StartSuite not called as expected: %v", rep.started)
	}
	if len(rep.done) != 3 {
		t.Fatalf("reporter.CaseDone called %d times, want 3", len(rep.done))
	}
	if rep.finalize != stats {
		t.Fatal("reporter.Summary should receive the same Stats pointer Run returns")
	}
}

func TestContextRequireAccumulatesMultipleFailures(t *testing.T) {
	c := &Context{}
	c.Require(true, "should not record")
	c.Require(false, "first: %d", 1)
	c.Require(false, "second: %d", 2)
	if len(c.failures) != 2 {
		t.Fatalf("failures = %v, want 2 entries", c.failures)
	}
}

func TestNewRunnerDefaultsToTextReporterWhenNil(t *testing.T) {
	runner := NewRunner(nil)
	if _, ok := runner.reporter.(*TextReporter); !ok {
		t.Fatalf("NewRunner(nil).reporter = %T, want *TextReporter", runner.reporter)
	}
}

func TestLawSuiteAllCasesPass(t *testing.T) {
	rep := &recordingReporter{}
	runner := NewRunner(rep)
	runner.Add(LawSuite())
	stats := runner.Run()
	if stats.Failed != 0 {
		var msgs []string
		for _, r := range rep.done {
			if r.Failed {
				msgs = append(msgs, r.Name+": "+r.Message)
			}
		}
		t.Fatalf("LawSuite had %d failing case(s): %v", stats.Failed, msgs)
	}
}

func TestStressSuiteTerminates(t *testing.T) {
	rep := &recordingReporter{}
	runner := NewRunner(rep)
	runner.Add(StressSuite())
	stats := runner.Run()
	if stats.Failed != 0 {
		t.Fatalf("StressSuite had %d failing case(s)", stats.Failed)
	}
}
