package proptest

import "fmt"

// TextReporter prints human-readable, colorized results, matching the
// texture of sentra's own TextReporter (indentation, ANSI color, an emoji
// banner on the suite header and final summary).
type TextReporter struct{}

func NewTextReporter() *TextReporter { return &TextReporter{} }

func (r *TextReporter) StartSuite(s *Suite) {
	fmt.Printf("\n📦 %s\n", s.Name)
}

func (r *TextReporter) CaseDone(result Result) {
	switch {
	case result.Skipped:
		fmt.Printf("  \033[33m⊘ %s (skipped)\033[0m\n", result.Name)
	case result.Passed:
		fmt.Printf("  \033[32m✓ %s\033[0m (%v)\n", result.Name, result.Duration)
	default:
		fmt.Printf("  \033[31m✗ %s\033[0m (%v)\n    %s\n", result.Name, result.Duration, result.Message)
	}
}

func (r *TextReporter) EndSuite(*Suite) {}

func (r *TextReporter) Summary(stats *Stats) {
	fmt.Printf("\n" + `====================================================` + "\n")
	fmt.Printf("Total: %d  Passed: %d  Failed: %d  Skipped: %d  (%v, %d suites)\n",
		stats.Total, stats.Passed, stats.Failed, stats.Skipped, stats.Elapsed, stats.Suites)
	if stats.Failed == 0 {
		fmt.Println("\033[32m🎉 All properties held.\033[0m")
	} else {
		fmt.Println("\033[31m❌ Some properties failed.\033[0m")
	}
}
