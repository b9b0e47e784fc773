// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson_test

import (
	"testing"

	"github.com/flexjson/flexjson"
)

func TestNumberGrammar(t *testing.T) {
	cases := map[string]float64{
		"0":       0,
		"-0":      0,
		"12":      12,
		"-12":     -12,
		"12.5":    12.5,
		"0.5":     0.5,
		"1e3":     1000,
		"1E3":     1000,
		"1e+3":    1000,
		"1e-3":    0.001,
		"-1.5e2":  -150,
	}
	for in, want := range cases {
		out := flexjson.ParseSmart(in, nil)
		if !out.OK {
			t.Fatalf("ParseSmart(%q): unexpected diagnostics %v", in, out.Errors)
		}
		if got := out.Results[0].NumberValue(); got != want {
			t.Errorf("ParseSmart(%q) = %v, want %v", in, got, want)
		}
	}
}

// TestLeadingZeroDigitStopsAtOneDigit checks that "0" followed by
// further digits (not a '.') is not consumed as part of the number,
// matching the JSON-standard "0 or nonzero-leading digit run" grammar.
func TestLeadingZeroDigitStopsAtOneDigit(t *testing.T) {
	out := flexjson.ParseSmart(`[01]`, nil)
	if out.OK {
		t.Fatalf("expected diagnostics: the second array element (1) is unseparated")
	}
}
