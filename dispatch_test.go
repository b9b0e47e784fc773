// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson_test

import (
	"testing"

	"github.com/flexjson/flexjson"
)

// TestUndefinedConversion exercises ConvertUndefined.
func TestUndefinedConversion(t *testing.T) {
	out := flexjson.ParseSmart(`undefined`, nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for the undefined conversion")
	}
	if !out.Results[0].IsNull() {
		t.Errorf("expected null, got %v", out.Results[0].Kind())
	}
}

// TestNaNAndInfinityBecomeNull checks the unconditional NaN/Infinity
// substitution (not gated by an option, per the dispatcher's fixed
// keyword table).
func TestNaNAndInfinityBecomeNull(t *testing.T) {
	for _, in := range []string{"NaN", "Infinity"} {
		out := flexjson.ParseSmart(in, nil)
		if out.OK {
			t.Fatalf("ParseSmart(%q): expected a diagnostic", in)
		}
		if !out.Results[0].IsNull() {
			t.Errorf("ParseSmart(%q): expected null", in)
		}
	}
}

// TestStrayColonRecovered checks that an unexpected ':' or ',' where a
// value was expected is logged and retried.
func TestStrayColonRecovered(t *testing.T) {
	out := flexjson.ParseSmart(`[: 1]`, nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for the stray colon")
	}
	want := flexjson.Array(flexjson.Number(1))
	mustEqual(t, out.Results[0], want)
}

// TestAbsentNeverEscapes checks that a bare top-level closing byte,
// which the dispatcher refuses to consume via the internal absent()
// sentinel, never surfaces as a stored value: ParseSmart reports no
// results rather than an absent Value leaking into the public API.
func TestAbsentNeverEscapes(t *testing.T) {
	out := flexjson.ParseSmart(`]`, nil)
	if len(out.Results) != 0 {
		t.Fatalf("expected no top-level result for a bare closing byte, got %d", len(out.Results))
	}
	if !out.OK {
		t.Errorf("expected OK: a refused closing byte is not itself logged as a diagnostic")
	}

	// Via the direct Parser.Parse API, the same absent value is
	// substituted with Null instead of being dropped, since ParseResult
	// always carries exactly one Result.
	p := flexjson.NewParser(`]`, flexjson.DefaultOptions())
	res, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Result.IsNull() {
		t.Errorf("Parse().Result = %v, want Null", res.Result.Kind())
	}
}

// TestDispatchRetryGuardResetsOnSuccess checks that dispatchRetries is
// reset by every successful value classification, not just the keyword
// branches. Scattered single-byte garbage between otherwise well-formed
// array elements must not accumulate across separate, individually
// recovered values: only a *run* of consecutive unclassifiable bytes
// should ever approach maxDispatchRetries.
func TestDispatchRetryGuardResetsOnSuccess(t *testing.T) {
	// 11 isolated stray bytes, one before each element after the first --
	// enough to exceed a non-resetting counter, but each is immediately
	// followed by a clean number that must reset the count back to zero.
	input := `[1,~2,~3,~4,~5,~6,~7,~8,~9,~10,~11,~12]`
	out := flexjson.ParseSmart(input, nil)
	if out.OK {
		t.Fatalf("expected diagnostics for the stray bytes")
	}
	want := flexjson.Array(
		flexjson.Number(1), flexjson.Number(2), flexjson.Number(3),
		flexjson.Number(4), flexjson.Number(5), flexjson.Number(6),
		flexjson.Number(7), flexjson.Number(8), flexjson.Number(9),
		flexjson.Number(10), flexjson.Number(11), flexjson.Number(12),
	)
	mustEqual(t, out.Results[0], want)
}
