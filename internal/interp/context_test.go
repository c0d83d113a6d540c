package interp

import (
	"bytes"
	"strings"
	"testing"
)

// ============================================================================
// spec.md §8 "Concrete end-to-end scenarios"
// ============================================================================

func TestEvalEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"array push via length fallback",
			`var a = [1,2,3]; a.push ? a.push(4) : a[a.length]=4; a.length;`,
			"4",
		},
		{
			"try/catch/finally returns caught value",
			`function f(){ try { throw {m:1}; } catch(e) { return e.m + 41; } finally { } } f();`,
			"42",
		},
		{
			"for loop string accumulation",
			`var s=""; for (var i=0;i<3;i++) s+=i; s;`,
			"012",
		},
		{
			"for-in over own enumerable properties, insertion order",
			`(function(){var o={x:1}; o.y=2; var r=""; for (var k in o) r+=k; return r;})();`,
			"xy",
		},
		{
			"substring clamps end past length",
			`"abc".substring(1,10)`,
			"bc",
		},
		{
			"charCodeAt",
			`"abc".charCodeAt(1)`,
			"98",
		},
		{
			"labelled break exits exactly one enclosing loop",
			`(function(){L: for (var i=0;i<3;i++){ for (var j=0;j<3;j++){ if (j==1) break L; } } return i+":"+j;})();`,
			"0:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(&bytes.Buffer{}, false)
			got, ok := ctx.Eval(tt.source, tt.name)
			if !ok {
				t.Fatalf("Eval(%q) failed, want %q", tt.source, tt.want)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestEvalTypeofUndeclaredIsUndefined(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`typeof undeclaredVar`, "typeof")
	if !ok {
		t.Fatalf("Eval failed unexpectedly")
	}
	if got != "undefined" {
		t.Errorf("typeof undeclaredVar = %q, want %q", got, "undefined")
	}
}

func TestEvalUnresolvedIdentifierThrows(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	_, err := ctx.EvalValue(`undeclaredVar;`, "ref")
	if err == nil {
		t.Fatalf("expected a ReferenceError, got nil")
	}
}

func TestEvalSharedGlobalAcrossCalls(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	if _, ok := ctx.Eval(`var counter = 0;`, "first"); ok {
		t.Fatalf("declaration statement should not yield a printable result")
	}
	got, ok := ctx.Eval(`counter += 1; counter;`, "second")
	if !ok || got != "1" {
		t.Errorf("counter after second eval = %q, ok=%v, want 1", got, ok)
	}
	got, ok = ctx.Eval(`counter += 1; counter;`, "third")
	if !ok || got != "2" {
		t.Errorf("counter after third eval = %q, ok=%v, want 2", got, ok)
	}
}

func TestEvalHoistingFunctionDeclInNestedBlock(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`(function(){ if (true) { function f(){return 1;} } return f(); })();`, "nested-fn-hoist")
	if !ok {
		t.Fatalf("Eval failed")
	}
	if got != "1" {
		t.Errorf("got %q, want %q", got, "1")
	}
}

func TestEvalHoistingVarBeforeDeclaration(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`(function(){ var r = typeof x; var x = 1; return r; })();`, "hoist")
	if !ok {
		t.Fatalf("Eval failed")
	}
	if got != "undefined" {
		t.Errorf("pre-declaration read = %q, want undefined", got)
	}
}

func TestEvalStrictEqualityNaNAndZero(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`(NaN === NaN) + "," + (+0 === -0)`, "strict-eq")
	if !ok {
		t.Fatalf("Eval failed")
	}
	if got != "false,true" {
		t.Errorf("got %q, want %q", got, "false,true")
	}
}

func TestEvalFunctionPrototypeConstructorBackReference(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`function F(){} F.prototype.constructor === F;`, "ctor")
	if !ok || got != "true" {
		t.Errorf("got %q, ok=%v, want true", got, ok)
	}
}

func TestEvalNewArrayLength(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`new Array(5).length;`, "newarray")
	if !ok || got != "5" {
		t.Errorf("got %q, ok=%v, want 5", got, ok)
	}
}

func TestEvalFailureReturnsEmptyString(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(`this is not valid syntax {{{`, "bad")
	if ok {
		t.Fatalf("expected failure, got %q", got)
	}
	if got != "" {
		t.Errorf("got %q, want empty string on failure", got)
	}
}

func TestEvalPrintExtensionWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := New(&buf, true)
	if _, ok := ctx.Eval(`print("hello");`, "print"); !ok {
		t.Fatalf("Eval failed")
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "hello")
	}
}

func TestEvalExtensionsOffOmitsPrint(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	_, err := ctx.EvalValue(`print("hello");`, "noext")
	if err == nil {
		t.Fatalf("expected ReferenceError for print with extensions disabled")
	}
}

func TestRunFileMissing(t *testing.T) {
	ctx := New(&bytes.Buffer{}, false)
	if _, err := ctx.RunFile("/nonexistent/path/does-not-exist.js"); err == nil {
		t.Fatalf("expected an error reading a missing file")
	}
}
