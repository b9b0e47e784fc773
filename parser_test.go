// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/flexjson/flexjson"
)

func obj(pairs ...any) flexjson.Value {
	o := flexjson.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(flexjson.Value))
	}
	return flexjson.ObjectValue(o)
}

func mustEqual(t *testing.T, got, want flexjson.Value) {
	t.Helper()
	if !cmp.Equal(got, want) {
		t.Errorf("value mismatch (-got +want):\n%s", cmp.Diff(got, want))
	}
}

// TestWellFormedMatchesEncodingJSON checks the reader against
// encoding/json on inputs that have no malformations to recover from:
// on such input the reader must agree with the standard library, since
// well-formed JSON requires strict-JSON fidelity.
func TestWellFormedMatchesEncodingJSON(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`null`,
		`true`,
		`false`,
		`0`,
		`-12.5e3`,
		`"hello\nworld"`,
		`{"a":1,"b":[1,2,3],"c":{"d":null}}`,
		`[1,"two",3.0,[4,5],{"six":6}]`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			out := flexjson.ParseSmart(in, nil)
			if !out.OK {
				t.Fatalf("ParseSmart(%q): unexpected diagnostics %v", in, out.Errors)
			}
			if len(out.Results) != 1 {
				t.Fatalf("ParseSmart(%q): got %d results, want 1", in, len(out.Results))
			}

			var std any
			if err := json.Unmarshal([]byte(in), &std); err != nil {
				t.Fatalf("encoding/json.Unmarshal(%q): %v", in, err)
			}
			want := fromStdlib(std)
			mustEqual(t, out.Results[0], want)
		})
	}
}

func fromStdlib(v any) flexjson.Value {
	switch x := v.(type) {
	case nil:
		return flexjson.Null()
	case bool:
		return flexjson.Bool(x)
	case float64:
		return flexjson.Number(x)
	case string:
		return flexjson.String(x)
	case []any:
		elems := make([]flexjson.Value, len(x))
		for i, e := range x {
			elems[i] = fromStdlib(e)
		}
		return flexjson.Array(elems...)
	case map[string]any:
		// encoding/json does not keep member order but Value.Equal
		// compares members in order; every object in the inputs above
		// lists its keys in sorted order, so rebuild them sorted.
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := flexjson.NewObject()
		for _, k := range keys {
			o.Set(k, fromStdlib(x[k]))
		}
		return flexjson.ObjectValue(o)
	default:
		panic("unreachable")
	}
}

// TestEmptyInput covers blank-input short circuit.
func TestEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t  \n"} {
		out := flexjson.ParseSmart(in, nil)
		if !out.OK || len(out.Results) != 0 || out.ErrorCount != 0 {
			t.Errorf("ParseSmart(%q) = %+v, want OK with no results", in, out)
		}
	}
}

// TestTrailingCommaRecovered exercises scenario: under the default
// options (AllowTrailingComma set) a trailing comma before a closing
// brace is accepted without a diagnostic.
func TestTrailingCommaRecovered(t *testing.T) {
	out := flexjson.ParseSmart(`{"a":1,"b":2,}`, nil)
	if !out.OK {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	want := obj("a", flexjson.Number(1), "b", flexjson.Number(2))
	mustEqual(t, out.Results[0], want)
}

// TestUnquotedKeyRecovered checks that a bare identifier used as an
// object key is accepted and logged.
func TestUnquotedKeyRecovered(t *testing.T) {
	out := flexjson.ParseSmart(`{foo: 1, "bar": 2}`, nil)
	if out.OK {
		t.Fatalf("expected diagnostics for unquoted key, got none")
	}
	want := obj("foo", flexjson.Number(1), "bar", flexjson.Number(2))
	mustEqual(t, out.Results[0], want)
}

// TestUnclosedContainersAutoClose checks that a truncated object/array
// is closed automatically with a diagnostic, rather than losing the
// value entirely.
func TestUnclosedContainersAutoClose(t *testing.T) {
	out := flexjson.ParseSmart(`{"a":[1,2,3`, nil)
	if out.OK {
		t.Fatalf("expected diagnostics for unclosed containers")
	}
	want := obj("a", flexjson.Array(flexjson.Number(1), flexjson.Number(2), flexjson.Number(3)))
	mustEqual(t, out.Results[0], want)
}

// TestPrematureArrayEndHeuristic checks that the "key:" look-ahead that
// closes an array early does not fire on a properly closed array
// followed by a sibling member: the input parses without diagnostics.
func TestPrematureArrayEndHeuristic(t *testing.T) {
	out := flexjson.ParseSmart(`{"a":[1,2],"b":3}`, nil)
	if !out.OK {
		t.Fatalf("unexpected diagnostics: %v", out.Errors)
	}
	want := obj("a", flexjson.Array(flexjson.Number(1), flexjson.Number(2)), "b", flexjson.Number(3))
	mustEqual(t, out.Results[0], want)
}

// TestUnescapedQuoteHeuristic checks look-ahead: a quote
// followed (after whitespace) by a structural character closes the
// string, while a quote followed by ordinary text does not.
func TestUnescapedQuoteHeuristic(t *testing.T) {
	out := flexjson.ParseSmart(`["she said "hi" to me"]`, nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for the unescaped quote")
	}
	if len(out.Results) != 1 {
		t.Fatalf("expected one recovered array, got %d", len(out.Results))
	}
}

// TestMaxDepthPrunesInnermostContainer documents the resolved depth-limit
// behavior (see DESIGN.md): with MaxDepth 2 the container that first
// exceeds the limit is pruned to empty, not the outermost.
func TestMaxDepthPrunesInnermostContainer(t *testing.T) {
	opts := flexjson.DefaultOptions()
	opts.MaxDepth = 2
	out := flexjson.ParseSmart(`{"a":{"b":{"c":1}}}`, &opts)
	if out.OK {
		t.Fatalf("expected a max-depth diagnostic")
	}
	want := obj("a", obj("b", obj()))
	mustEqual(t, out.Results[0], want)
}

// TestStrictModeShortCircuits checks strict-mode contract: the
// first malformation aborts the parse and Parse returns a non-nil error
// of type *StrictError, converted from a panic by recoverStrict.
func TestStrictModeShortCircuits(t *testing.T) {
	opts := flexjson.DefaultOptions()
	opts.Strict = true

	p := flexjson.NewParser(`{foo: 1}`, opts)
	_, err := p.Parse()
	if err == nil {
		t.Fatalf("expected an error in strict mode")
	}
	se, ok := err.(*flexjson.StrictError)
	if !ok {
		t.Fatalf("expected *StrictError, got %T", err)
	}
	if se.Pos < 0 {
		t.Errorf("StrictError.Pos = %d, want >= 0", se.Pos)
	}
}

// TestStrictModeNeverPanicsPastAPIBoundary confirms recoverStrict
// converts every *StrictError panic into a normal return, so Parse
// itself never panics regardless of how malformed strict-mode input is.
func TestStrictModeNeverPanicsPastAPIBoundary(t *testing.T) {
	opts := flexjson.DefaultOptions()
	opts.Strict = true
	inputs := []string{`{`, `[`, `"`, `{,}`, `nul`, `{"a":}`}

	for _, in := range inputs {
		p := flexjson.NewParser(in, opts)
		p.Parse() // must return normally, not panic
	}
}

// TestValueAccessorsPanicOnWrongKind checks the documented panic
// behaviour of Value's typed accessors, using mtest.MustPanic the same
// way jwcc_test.go asserts jwcc.ToValue's panics.
func TestValueAccessorsPanicOnWrongKind(t *testing.T) {
	v := flexjson.String("hi")
	mtest.MustPanic(t, func() { v.NumberValue() })
	mtest.MustPanic(t, func() { v.BoolValue() })
	mtest.MustPanic(t, func() { v.ArrayValue() })
	mtest.MustPanic(t, func() { v.Object() })
}

// TestDispatchRetryGuardTerminates ensures pathological garbage input
// terminates in bounded time rather than looping forever, per the
// retry-guard invariant.
func TestDispatchRetryGuardTerminates(t *testing.T) {
	garbage := ""
	for i := 0; i < 500; i++ {
		garbage += "@"
	}
	out := flexjson.ParseSmart(garbage, nil)
	if out.OK {
		t.Fatalf("expected diagnostics for all-garbage input")
	}
}

// TestPythonTokenConversion exercises ConvertPythonTokens.
func TestPythonTokenConversion(t *testing.T) {
	out := flexjson.ParseSmart(`[True, False, None]`, nil)
	if out.OK {
		t.Fatalf("expected diagnostics for Python token substitution")
	}
	want := flexjson.Array(flexjson.Bool(true), flexjson.Bool(false), flexjson.Null())
	mustEqual(t, out.Results[0], want)
}

// TestConvertPythonTokensDisabled checks the option gate: with the
// option off, a bare `True` is neither a recognised keyword nor a valid
// value start, so the dispatcher's stray-byte recovery applies instead.
func TestConvertPythonTokensDisabled(t *testing.T) {
	opts := flexjson.DefaultOptions()
	opts.ConvertPythonTokens = false
	out := flexjson.ParseSmart(`True`, &opts)
	if out.OK {
		t.Fatalf("expected diagnostics with ConvertPythonTokens disabled")
	}
}
