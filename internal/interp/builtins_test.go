package interp

import (
	"bytes"
	"testing"
)

// evalString is a small test helper: run source against a fresh Context
// and fail the test if evaluation doesn't succeed.
func evalString(t *testing.T, source string) string {
	t.Helper()
	ctx := New(&bytes.Buffer{}, false)
	got, ok := ctx.Eval(source, "test")
	if !ok {
		t.Fatalf("Eval(%q) failed", source)
	}
	return got
}

// ============================================================================
// Object / Function statics (spec §6 minimum + SPEC_FULL.md §4 supplements)
// ============================================================================

func TestObjectStatics(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"create with null prototype", `Object.getPrototypeOf(Object.create(null)) === null;`, "true"},
		{"defineProperty non-enumerable", `var o={}; Object.defineProperty(o,"x",{value:1,enumerable:false}); var r=""; for (var k in o) r+=k; r;`, ""},
		{"getOwnPropertyDescriptor", `Object.getOwnPropertyDescriptor({x:1}, "x").value;`, "1"},
		{"keys order", `Object.keys({b:1,a:2}).join(",");`, "b,a"},
		{"hasOwnProperty own vs inherited", `var p={x:1}; var o=Object.create(p); o.hasOwnProperty("x") + "," + ("x" in o);`, "false,true"},
		{"isPrototypeOf", `var p={}; var o=Object.create(p); p.isPrototypeOf(o);`, "true"},
		{"propertyIsEnumerable", `({x:1}).propertyIsEnumerable("x");`, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionApplyCallBind(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"call sets this", `function f(){return this.x;} f.call({x:5});`, "5"},
		{"apply spreads args array", `function f(a,b){return a+b;} f.apply(null,[1,2]);`, "3"},
		{"bind partial application", `function f(a,b){return a+b;} var g=f.bind(null,1); g(2);`, "3"},
		{"bind fixes this", `function f(){return this.x;} var g=f.bind({x:9}); g();`, "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Array.prototype (spec §6 minimum + supplements)
// ============================================================================

func TestArrayPrototypeMethods(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"isArray true/false", `Array.isArray([1]) + "," + Array.isArray({});`, "true,false"},
		{"concat", `[1,2].concat([3,4]).join(",");`, "1,2,3,4"},
		{"forEach accumulates", `var s=0; [1,2,3].forEach(function(v){s+=v;}); s;`, "6"},
		{"pop shrinks length", `var a=[1,2,3]; a.pop(); a.length + "," + a.join(",");`, "2,1,2"},
		{"splice removes and inserts", `var a=[1,2,3,4,5]; var r=a.splice(1,2,"x","y"); a.join(",")+"|"+r.join(",");`, "1,x,y,4,5|2,3"},
		{"splice no-op empty target", `var a=[1,2,3]; a.splice(3,0); a.join(",");`, "1,2,3"},
		{"push then length", `var a=[1]; a.push(2,3); a.length;`, "3"},
		{"shift", `var a=[1,2,3]; var v=a.shift(); v+","+a.join(",");`, "1,2,3"},
		{"map", `[1,2,3].map(function(v){return v*2;}).join(",");`, "2,4,6"},
		{"filter", `[1,2,3,4].filter(function(v){return v%2===0;}).join(",");`, "2,4"},
		{"reduce", `[1,2,3,4].reduce(function(acc,v){return acc+v;},0);`, "10"},
		{"sort default lexicographic", `[10,2,1].sort().join(",");`, "1,10,2"},
		{"sort with comparator", `[10,2,1].sort(function(a,b){return a-b;}).join(",");`, "1,2,10"},
		{"reverse", `[1,2,3].reverse().join(",");`, "3,2,1"},
		{"slice", `[1,2,3,4].slice(1,3).join(",");`, "2,3"},
		{"indexOf", `[1,2,3].indexOf(2);`, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// String.prototype (spec §6 minimum + supplements, §9(b) toUpperCase fix)
// ============================================================================

func TestStringPrototypeMethods(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"toUpperCase full ascii range", `"abcxyz".toUpperCase();`, "ABCXYZ"},
		{"toLowerCase", `"ABCXYZ".toLowerCase();`, "abcxyz"},
		{"indexOf found", `"hello world".indexOf("world");`, "6"},
		{"indexOf not found", `"hello".indexOf("z");`, "-1"},
		{"lastIndexOf", `"abcabc".lastIndexOf("a");`, "3"},
		{"slice negative", `"hello".slice(-3);`, "llo"},
		{"split on comma", `"a,b,c".split(",").join("|");`, "a|b|c"},
		{"trim", `"  hi  ".trim();`, "hi"},
		{"charAt", `"abc".charAt(0);`, "a"},
		{"concat", `"foo".concat("bar");`, "foobar"},
		{"fromCharCode", `String.fromCharCode(97,98,99);`, "abc"},
		{"new String wraps as an indexable object", `var s = new String("abc"); typeof s + "," + s.length + "," + s[1];`, "object,3,b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Number / Math / Boolean
// ============================================================================

func TestNumberAndMath(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"toFixed", `(3.14159).toFixed(2);`, "3.14"},
		{"Number valueOf", `new Number(5).valueOf();`, "5"},
		{"Math.floor", `Math.floor(3.7);`, "3"},
		{"Math.pow", `Math.pow(2,10);`, "1024"},
		{"Math.abs", `Math.abs(-5);`, "5"},
		{"Math.max", `Math.max(1,9,3);`, "9"},
		{"Math.min", `Math.min(1,9,3);`, "1"},
		{"Boolean valueOf", `new Boolean(true).valueOf();`, "true"},
		{"Number.MAX_VALUE is finite", `isFinite(Number.MAX_VALUE) && Number.MAX_VALUE > 0;`, "true"},
		{"Number.POSITIVE_INFINITY", `Number.POSITIVE_INFINITY === Infinity;`, "true"},
		{"new Number is an object, typeof", `typeof new Number(5);`, "object"},
		{"new Boolean is an object, typeof", `typeof new Boolean(false);`, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// RegExp (external match primitive assumed available, spec §1/§6)
// ============================================================================

func TestRegExpBasics(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"test matches", `/ab+c/.test("abbbc");`, "true"},
		{"test no match", `/^x$/.test("y");`, "false"},
		{"exec captures", `/(\w+)@(\w+)/.exec("u@h")[1];`, "u"},
		{"source property", `/foo/gi.source;`, "foo"},
		{"global flag property", `/foo/g.global;`, "true"},
		{"String.replace with regexp", `"a1b2".replace(/[0-9]/, "#");`, "a#b2"},
		{"String.match returns capture", `"2026-07-31".match(/(\d+)-(\d+)-(\d+)/)[1];`, "2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Error hierarchy (spec §7)
// ============================================================================

func TestErrorHierarchy(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{"TypeError name", `try { null.x; } catch(e) { e.name; }`, "TypeError"},
		{"ReferenceError on unresolved identifier", `try { undeclared; } catch(e) { e.name; }`, "ReferenceError"},
		{"custom Error toString", `new Error("boom").toString();`, "Error: boom"},
		{"TypeError instanceof Error", `try { null.x; } catch(e) { e instanceof Error; }`, "true"},
		{"throw non-callable", `try { (1)(); } catch(e) { e instanceof TypeError; }`, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Control flow not covered by the §8 scenarios: with, switch fallthrough,
// labelled continue, nested try/finally interactions.
// ============================================================================

func TestControlFlowSupplements(t *testing.T) {
	tests := []struct {
		name, source, want string
	}{
		{
			"with resolves identifiers against target object",
			`var o={x:42}; var r; with(o){ r = x; } r;`,
			"42",
		},
		{
			"switch fallthrough accumulates until break",
			`function f(n){ var r=""; switch(n){ case 1: r+="a"; case 2: r+="b"; break; case 3: r+="c"; default: r+="d"; } return r; } f(1);`,
			"ab",
		},
		{
			"switch default when no case matches",
			`function f(n){ switch(n){ case 1: return "one"; default: return "other"; } } f(9);`,
			"other",
		},
		{
			"labelled continue skips to next outer iteration",
			`(function(){ var r=""; L: for (var i=0;i<3;i++){ for (var j=0;j<3;j++){ if (j===1) continue L; r+=i+""+j; } } return r; })();`,
			"001020",
		},
		{
			"finally runs after return, does not override it",
			`(function(){ function f(){ try { return 1; } finally { } } return f(); })();`,
			"1",
		},
		{
			"finally's own abrupt completion overrides pending return",
			`(function(){ function f(){ try { return 1; } finally { return 2; } } return f(); })();`,
			"2",
		},
		{
			"do-while executes body at least once",
			`var i=0; do { i++; } while (false); i;`,
			"1",
		},
		{
			"comma/sequence expression returns last",
			`(1, 2, 3);`,
			"3",
		},
		{
			"conditional expression",
			`true ? "yes" : "no";`,
			"yes",
		},
		{
			"logical && short-circuits returning LHS",
			`0 && 5;`,
			"0",
		},
		{
			"logical || returns first truthy",
			`0 || "fallback";`,
			"fallback",
		},
		{
			"instanceof walks prototype chain",
			`function A(){} function B(){} B.prototype = new A(); (new B()) instanceof A;`,
			"true",
		},
		{
			"delete on configurable property",
			`var o={x:1}; delete o.x; "x" in o;`,
			"false",
		},
		{
			"void always yields undefined",
			`typeof void(0);`,
			"undefined",
		},
		{
			"update operators pre vs post",
			`var i=0; var a=i++; var b=++i; a+","+b;`,
			"0,2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalString(t, tt.source); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
