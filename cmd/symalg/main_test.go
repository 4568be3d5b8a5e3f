package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript exec this test binary as the "symalg" command
// in-process, the standard go-internal/testscript pattern for CLI testing.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"symalg": run1,
	}))
}

func run1() int { return run(os.Args[1:]) }

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
