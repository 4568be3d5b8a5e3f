// cmd/symalg/main.go
package main

import (
	"fmt"
	"os"
)

const VERSION = "0.1.0"

// commandAliases mirrors the teacher CLI's short-form dispatch: a single
// letter for every frequently-typed subcommand.
var commandAliases = map[string]string{
	"i": "repl",
	"s": "simplify",
	"d": "diff",
	"e": "eval",
	"b": "bench",
	"t": "trace",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run holds the entire dispatch as a function of (args) -> exit code, kept
// separate from main so testscript's RunMain can register it as an
// in-process subcommand (cmd/symalg/main_test.go).
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		if len(args) > 1 {
			showCommandHelp(args[1])
		} else {
			showUsage()
		}
		return 0
	}

	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		showVersion()
		return 0
	}

	var err error
	switch cmd {
	case "repl":
		err = replCommand(args[1:])
	case "simplify":
		err = simplifyCommand(args[1:])
	case "diff":
		err = diffCommand(args[1:])
	case "eval":
		err = evalCommand(args[1:])
	case "bench":
		err = benchCommand(args[1:])
	case "trace":
		err = traceCommand(args[1:])
	default:
		return suggestCommand(cmd)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "symalg: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("symalg - symbolic algebra engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  symalg repl                              Start the interactive REPL       (alias: i)")
	fmt.Println("  symalg simplify <expr>                    Simplify an expression            (alias: s)")
	fmt.Println("  symalg diff <expr> --wrt=<var>            Differentiate an expression       (alias: d)")
	fmt.Println("  symalg eval <expr> --where=x=1,y=2        Evaluate an expression numerically (alias: e)")
	fmt.Println("  symalg bench                              Benchmark the simplification pipelines (alias: b)")
	fmt.Println("  symalg trace <expr>                       Show the rewrite steps to a fixpoint    (alias: t)")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --pipeline=<name>   simplify|full_simplify|two_stage_simplify|trig_aware_simplify (default: simplify)")
	fmt.Println("  --mode=<name>       default|numeric|symbolic context (default: default)")
	fmt.Println()
	fmt.Println("Help:")
	fmt.Println("  symalg help <command>      Show detailed help for a command")
	fmt.Println("  symalg --version           Show version information")
}

func showVersion() {
	fmt.Printf("symalg v%s\n", VERSION)
	fmt.Println("Symbolic algebra engine: rewrite systems over immutable expression trees.")
}

func showCommandHelp(command string) {
	if alias, ok := commandAliases[command]; ok {
		command = alias
	}
	help := map[string]string{
		"repl": `symalg repl - interactive shell

USAGE:
  symalg repl

DESCRIPTION:
  Starts a REPL over the engine's expression parser and simplification
  pipelines. Type 'help' inside the REPL for its commands.`,

		"simplify": `symalg simplify - simplify an expression

USAGE:
  symalg simplify <expr> [--pipeline=<name>] [--mode=default|numeric|symbolic]

DESCRIPTION:
  --mode=symbolic builds the expression with constant folding disabled
  (context.Symbolic()), so e.g. "4/6" and "sin(pi)" are left as literal
  calls instead of being evaluated away.

EXAMPLES:
  symalg simplify "x + 0"
  symalg s "sin(x)^2 + cos(x)^2" --pipeline=trig_aware_simplify
  symalg s "sin(pi) + 4/6" --mode=symbolic`,

		"diff": `symalg diff - differentiate an expression

USAGE:
  symalg diff <expr> --wrt=<var> [--order=<n>]

EXAMPLES:
  symalg diff "x^3 + sin(x)" --wrt=x
  symalg d "x^2" --wrt=x --order=2`,

		"eval": `symalg eval - evaluate an expression numerically

USAGE:
  symalg eval <expr> --where=x=1,y=2

EXAMPLES:
  symalg eval "x^2 + y" --where=x=3,y=1`,

		"bench": `symalg bench - benchmark the simplification pipelines

USAGE:
  symalg bench

DESCRIPTION:
  Runs a fixed battery of expressions through every pipeline concurrently
  and reports elapsed time per pipeline.`,

		"trace": `symalg trace - show rewrite steps

USAGE:
  symalg trace <expr> [--verbose]

DESCRIPTION:
  Applies the default rule set innermost-first, printing the expression
  after every step until it reaches a fixpoint.`,
	}
	if text, ok := help[command]; ok {
		fmt.Println(text)
		return
	}
	fmt.Printf("No detailed help available for %q\n", command)
}

func suggestCommand(cmd string) int {
	fmt.Fprintf(os.Stderr, "symalg: unknown command %q\n", cmd)
	fmt.Fprintln(os.Stderr, "Run 'symalg help' to see all available commands")
	return 1
}
