package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jsvm [script ...]",
	Short: "A tree-walking ECMAScript 3 interpreter",
	Long: `jsvm is a Go implementation of a third-edition ECMAScript core:
values, objects, environments, and the evaluator, plus the Object,
Function, Array, String, Number, Boolean, Date, RegExp, Error, and Math
standard-library surface.

Positional arguments are script files, executed in order against a
shared global environment. With no arguments, jsvm drops into an
interactive read-eval-print loop.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runScripts,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading files")
	rootCmd.Flags().BoolVar(&noExtensions, "no-extensions", false, "do not install the print/load/read/quit/evalcx extension globals")
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "jsvm: "+msg+"\n", args...)
	os.Exit(1)
}
