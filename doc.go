// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

// Package flexjson implements a fault-tolerant JSON reader: a
// recursive-descent parser that accepts strict JSON as well as a broad
// superset of malformed input commonly found in the wild -- truncated
// payloads, unquoted keys, single-quoted strings, comments, trailing
// commas, foreign-language literals, unescaped embedded quotes, stray
// punctuation, and unrecognised characters.
//
// # Reading
//
// The entry point is ParseSmart, which parses input and returns an
// Outcome describing the best-effort value tree together with a log of
// every recovery the reader took along the way:
//
//	out := flexjson.ParseSmart(input, nil)
//	if !out.OK {
//	    log.Printf("recovered from %d issues", out.ErrorCount)
//	}
//
// For repeated configuration, construct a Parser directly:
//
//	p := flexjson.NewParser(input, flexjson.Options{Strict: true})
//	result, err := p.Parse()
//
// # Recovery
//
// Rather than abandoning a parse at the first malformed byte, the reader
// attempts local recovery: it records a Diagnostic describing what it
// saw and where, applies a narrow, documented fix-up, and continues.
// Diagnostics are never raised as errors unless Options.Strict is set,
// in which case the first one aborts the parse.
//
// # Scope
//
// This package implements only the reader itself. Pretty-printing,
// minification, diffing, sorting, flattening, path queries, statistics,
// and transport are the responsibility of the sibling tree, server, and
// cmd/flexjson packages, which operate on the Value tree this package
// produces.
package flexjson
