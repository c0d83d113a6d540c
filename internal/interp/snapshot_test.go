package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalSnapshots runs a handful of representative programs against a
// fresh Context and snapshot-matches their ToString output, using
// go-snaps for the golden-output comparison (the teacher's
// internal/interp/fixture_test.go does the same against its own script
// fixtures via snaps.MatchSnapshot).
func TestEvalSnapshots(t *testing.T) {
	tests := []struct {
		name, source string
	}{
		{"array_literal", `[1,2,3].join(",");`},
		{"object_literal_keys", `Object.keys({b:1,a:2,c:3}).join(",");`},
		{"closure_counter", `function makeCounter(){var n=0; return function(){return ++n;};} var c=makeCounter(); c()+","+c()+","+c();`},
		{"nested_function_hoisting", `(function(){ if (true) { function f(){return 1;} } return f(); })();`},
		{"date_to_string", `typeof new Date().toString();`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(&bytes.Buffer{}, false)
			got, ok := ctx.Eval(tt.source, tt.name)
			if !ok {
				t.Fatalf("Eval(%q) failed", tt.source)
			}
			snaps.MatchSnapshot(t, got)
		})
	}
}
