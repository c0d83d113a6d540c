// Command jsvm runs a third-edition ECMAScript core: a tree-walking
// evaluator over values, objects, and environments, plus the Object,
// Function, Array, String, Number, Boolean, Date, RegExp, Error, and
// Math standard-library surface.
package main

import (
	"fmt"
	"os"

	"github.com/kiidax/nablajs/cmd/jsvm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
