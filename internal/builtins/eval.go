package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/parser"
	"github.com/kiidax/nablajs/internal/runtime"
)

// EvalSource parses source under the given name and runs it in in's global
// environment, the shared implementation behind the `eval` global (spec §6)
// and the embedder's Context.Eval entry point. Grounded on the teacher's
// cmd/dwscript/cmd/run.go lexer/parser wiring, adapted to hand the parsed
// program straight to the evaluator instead of a separate semantic pass.
func EvalSource(in *evaluator.Interpreter, source, name string) (runtime.Value, error) {
	p := parser.New(source, name)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, runtime.NewSyntaxError("%s", err.Error())
	}
	script := &evaluator.Script{Name: name, Program: program, Strings: p.Strings()}
	return in.RunScript(script)
}

// installEval wires the global eval function (spec §6 minimum built-in
// list). Parse errors and runtime exceptions both surface as a thrown
// completion, per the embedder's single exception-slot propagation rule.
func installEval(in *evaluator.Interpreter, global *runtime.Object) {
	evalFn := in.NativeFunction("eval", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		if argc(args) == 0 {
			return runtime.Undefined, nil
		}
		src, ok := arg(args, 0).(*runtime.StringValue)
		if !ok {
			return arg(args, 0), nil
		}
		return EvalSource(in, src.Value, "<eval>")
	})
	global.DefineHidden("eval", evalFn)
}
