package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"symalg/internal/context"
	"symalg/internal/symbolic"
)

type benchResult struct {
	pipeline string
	elapsed  time.Duration
	nodes    int
}

// benchFixtures is the fixed battery every pipeline is timed against: a mix
// of the shapes each rule category targets (annihilators, like terms,
// exp/log, trig, nested powers).
func benchFixtures() []symbolic.Expr {
	x := symbolic.NewSymbol("x")
	y := symbolic.NewSymbol("y")
	return []symbolic.Expr{
		symbolic.Add(x, symbolic.C(0)),
		symbolic.Mul(symbolic.C(0), symbolic.Add(x, y)),
		symbolic.Add(symbolic.Mul(x, symbolic.C(2)), symbolic.Mul(x, symbolic.C(3))),
		symbolic.Add(symbolic.Pow(symbolic.Sin(x), symbolic.C(2)), symbolic.Pow(symbolic.Cos(x), symbolic.C(2))),
		symbolic.Exp(symbolic.Log(symbolic.Mul(x, y))),
		symbolic.Pow(symbolic.Pow(x, symbolic.C(2)), symbolic.C(3)),
	}
}

// benchCommand runs every named pipeline over benchFixtures concurrently
// (one goroutine per pipeline, via errgroup) and reports elapsed time.
func benchCommand(args []string) error {
	names := lo.Keys(pipelinesByName)
	slices.Sort(names)

	results := make([]benchResult, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		run := pipelinesByName[name]
		g.Go(func() error {
			fixtures := benchFixtures()
			start := time.Now()
			nodes := 0
			for _, f := range fixtures {
				result := run(f, context.Default())
				nodes += countNodes(result)
			}
			results[i] = benchResult{pipeline: name, elapsed: time.Since(start), nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slices.SortFunc(results, func(a, b benchResult) int {
		if a.elapsed < b.elapsed {
			return -1
		}
		if a.elapsed > b.elapsed {
			return 1
		}
		return 0
	})

	fmt.Printf("%-22s %12s %10s\n", "pipeline", "elapsed", "nodes")
	for _, r := range results {
		fmt.Printf("%-22s %12s %10s\n", r.pipeline, r.elapsed, humanize.Comma(int64(r.nodes)))
	}
	return nil
}

func countNodes(e symbolic.Expr) int {
	ex, ok := e.(*symbolic.Expression)
	if !ok {
		return 1
	}
	n := 1
	for _, a := range ex.Args {
		n += countNodes(a)
	}
	return n
}
