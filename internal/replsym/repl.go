// Package replsym is the interactive shell for the engine, adapted from
// sentra's internal/repl (a bufio.Scanner loop over the language's own
// lexer/parser/vm) into a loop over this engine's expression parser and
// pipeline set, using github.com/lmorg/readline/v4 for line editing and
// golang.org/x/term to detect whether stdin is actually a terminal.
package replsym

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"symalg/internal/context"
	"symalg/internal/derivative"
	"symalg/internal/eval"
	"symalg/internal/exprlang"
	"symalg/internal/pipeline"
	"symalg/internal/symbolic"
)

// REPL holds the running binding environment between lines: every Symbol
// the user has mentioned, by name, so `x` means the same Symbol across
// separate input lines in one session.
type REPL struct {
	env    *exprlang.Env
	out    io.Writer
	prompt string
}

func New(out io.Writer) *REPL {
	return &REPL{env: exprlang.NewEnv(), out: out, prompt: "symalg> "}
}

// Run dispatches to the interactive (readline) loop when stdin is a
// terminal, otherwise to a plain line-at-a-time loop reading from in.
func Run(in io.Reader, out io.Writer) error {
	r := New(out)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return r.runInteractive()
	}
	return r.runPlain(in)
}

func (r *REPL) runInteractive() error {
	fmt.Fprintln(r.out, "symalg — symbolic algebra REPL. Type 'help' for commands, 'exit' to quit.")
	rl := readline.NewInstance()
	rl.SetPrompt(r.prompt)
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		if r.handleLine(line) {
			return nil
		}
	}
}

func (r *REPL) runPlain(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if r.handleLine(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handleLine processes one line of input, returning true if the REPL
// should exit.
func (r *REPL) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	switch line {
	case "exit", "quit":
		return true
	case "help":
		r.printHelp()
		return false
	case "clear":
		r.env = exprlang.NewEnv()
		return false
	}

	cmd, rest := splitCommand(line)
	switch cmd {
	case "let":
		r.handleLet(rest)
	case "simplify":
		r.handleSimplify(rest, pipeline.Simplify)
	case "two_stage_simplify":
		r.handleSimplify(rest, pipeline.TwoStageSimplify)
	case "trig_aware_simplify":
		r.handleSimplify(rest, pipeline.TrigAwareSimplify)
	case "diff":
		r.handleDiff(rest)
	case "eval":
		r.handleEval(rest)
	default:
		r.handleSimplify(line, pipeline.Simplify)
	}
	return false
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func (r *REPL) handleLet(rest string) {
	eqIdx := strings.Index(rest, "=")
	if eqIdx < 0 {
		fmt.Fprintln(r.out, "usage: let <name> = <expr>")
		return
	}
	name := strings.TrimSpace(rest[:eqIdx])
	exprSrc := strings.TrimSpace(rest[eqIdx+1:])
	e, err := exprlang.Parse(exprSrc, r.env)
	if err != nil {
		fmt.Fprintf(r.out, "parse error: %v\n", err)
		return
	}
	e = pipeline.Simplify(e, context.Default())
	r.env.Bind(name, e)
	fmt.Fprintf(r.out, "%s = %s\n", name, eval.ToString(e, eval.RenderOptions{Spacing: true}))
}

func (r *REPL) handleSimplify(src string, run func(symbolic.Expr, context.Context) symbolic.Expr) {
	e, err := exprlang.Parse(src, r.env)
	if err != nil {
		fmt.Fprintf(r.out, "parse error: %v\n", err)
		return
	}
	result := run(e, context.Default())
	fmt.Fprintln(r.out, eval.ToString(result, eval.RenderOptions{Spacing: true}))
}

func (r *REPL) handleDiff(rest string) {
	parts := strings.SplitN(rest, " wrt ", 2)
	if len(parts) != 2 {
		fmt.Fprintln(r.out, "usage: diff <expr> wrt <symbol>")
		return
	}
	e, err := exprlang.Parse(strings.TrimSpace(parts[0]), r.env)
	if err != nil {
		fmt.Fprintf(r.out, "parse error: %v\n", err)
		return
	}
	x := r.env.Symbol(strings.TrimSpace(parts[1]))
	result := derivative.DiffSimplified(e, x, context.Default())
	fmt.Fprintln(r.out, eval.ToString(result, eval.RenderOptions{Spacing: true}))
}

func (r *REPL) handleEval(rest string) {
	parts := strings.SplitN(rest, " where ", 2)
	e, err := exprlang.Parse(strings.TrimSpace(parts[0]), r.env)
	if err != nil {
		fmt.Fprintf(r.out, "parse error: %v\n", err)
		return
	}
	bindings := eval.Bindings{}
	if len(parts) == 2 {
		for _, assign := range strings.Split(parts[1], ",") {
			kv := strings.SplitN(assign, "=", 2)
			if len(kv) != 2 {
				continue
			}
			var v float64
			fmt.Sscanf(strings.TrimSpace(kv[1]), "%g", &v)
			bindings[strings.TrimSpace(kv[0])] = v
		}
	}
	v, err := eval.Evaluate(e, bindings)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, v)
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `
Commands:
  let <name> = <expr>               bind a symbol to an expression
  simplify <expr>                   run the default pipeline (simplify)
  two_stage_simplify <expr>         run two_stage_simplify
  trig_aware_simplify <expr>        run trig_aware_simplify
  diff <expr> wrt <symbol>          differentiate and simplify
  eval <expr> where x=1, y=2        evaluate with bindings
  clear                             forget all bound symbols
  exit, quit                        leave the REPL

Expressions use infix +,-,*,/,^ and calls like sin(x), log(x), exp(x).
`)
}
