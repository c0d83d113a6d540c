package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kiidax/nablajs/internal/interp"
	"github.com/spf13/cobra"
)

var (
	evalExpr     string
	noExtensions bool
)

// runScripts is the root command's entry point (spec §6 CLI): positional
// script files run in order against one shared Context; -e evaluates
// inline source instead; no files and no -e drops into a REPL. Grounded
// on the teacher's cmd/dwscript/cmd/run.go file-or-eval dispatch, adapted
// to the shared-Context-across-files model the spec requires instead of
// one fresh interpreter per file.
func runScripts(cmd *cobra.Command, args []string) error {
	ctx := interp.New(os.Stdout, !noExtensions)

	if evalExpr != "" {
		if _, err := ctx.EvalValue(evalExpr, "<eval>"); err != nil {
			exitWithError("%s", err.Error())
		}
		return nil
	}

	if len(args) == 0 {
		return repl(ctx)
	}

	for _, path := range args {
		if _, err := ctx.RunFile(path); err != nil {
			exitWithError("%s", err.Error())
		}
	}
	return nil
}

// repl implements the interactive mode (spec §6: "no files ⇒ interactive
// REPL"). Line editing is an external collaborator the spec explicitly
// places out of scope, so this is a plain line-at-a-time reader; each
// line is evaluated against the same shared Context and a non-empty
// result is echoed, mirroring how embedder eval results surface.
func repl(ctx *interp.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stdout, "jsvm "+Version+" (Ctrl-D to exit)")
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		s, ok := ctx.Eval(line, "<repl>")
		if ok {
			fmt.Fprintln(os.Stdout, s)
		}
	}
}
