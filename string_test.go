// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson_test

import (
	"testing"

	"github.com/flexjson/flexjson"
)

func TestStringEscapes(t *testing.T) {
	cases := map[string]string{
		`"\n"`:     "\n",
		`"\t"`:     "\t",
		`"\\"`:     "\\",
		`"\""`:     "\"",
		`"A"`: "A",
	}
	for in, want := range cases {
		out := flexjson.ParseSmart(in, nil)
		if !out.OK {
			t.Fatalf("ParseSmart(%q): unexpected diagnostics %v", in, out.Errors)
		}
		if got := out.Results[0].StringValue(); got != want {
			t.Errorf("ParseSmart(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestSingleQuotedString checks that '...' is accepted symmetrically
// with "...".
func TestSingleQuotedString(t *testing.T) {
	out := flexjson.ParseSmart(`'hello'`, nil)
	if !out.OK {
		t.Fatalf("unexpected diagnostics: %v", out.Errors)
	}
	if got := out.Results[0].StringValue(); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

// TestShortUnicodeEscapeStopsAtFour checks that a \u escape with fewer
// than four hex digits stops consuming rather than reading past the
// boundary.
func TestShortUnicodeEscapeStopsAtFour(t *testing.T) {
	out := flexjson.ParseSmart(`"\u12"`, nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for a short \\u escape")
	}
	if len(out.Results) != 1 {
		t.Fatalf("expected a recovered string result")
	}
}

// TestUnterminatedStringLogsAndReturnsPartial checks that EOF inside a
// string produces a diagnostic and the text collected so far.
func TestUnterminatedStringLogsAndReturnsPartial(t *testing.T) {
	out := flexjson.ParseSmart(`"abc`, nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for an unterminated string")
	}
	if got := out.Results[0].StringValue(); got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

// TestNewlineClosesString checks that a bare newline inside a string
// (not escaped) closes the string without consuming the newline.
func TestNewlineClosesString(t *testing.T) {
	out := flexjson.ParseSmart("[\"abc\ndef\"]", nil)
	if out.OK {
		t.Fatalf("expected a diagnostic for the embedded newline")
	}
}
