// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import "strings"

// Parser owns an input, a cursor, a diagnostic log, and the depth/retry
// counters the container readers and value dispatcher share. A Parser
// is consumed in a single Parse call; construct a fresh one for each
// input.
type Parser struct {
	input string
	cursor int

	log             diagLog
	containerDepth  int
	dispatchRetries int

	opts Options
}

// NewParser constructs a Parser over input configured by opts. A zero
// MaxDepth selects the default depth cap; every other field is used as
// given, so pass DefaultOptions() to accept every default.
func NewParser(input string, opts Options) *Parser {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	return &Parser{
		input: input,
		opts:  opts,
		log:   diagLog{strict: opts.Strict},
	}
}

// ParseResult is the secondary (direct) API's return value: a single
// Value together with the diagnostics accumulated while producing it.
type ParseResult struct {
	OK     bool
	Result Value
	Errors []string
}

// Parse runs the reader to completion and returns its result. In strict
// mode, a non-nil error is returned alongside a ParseResult carrying that
// single error and no usable Result.
func (p *Parser) Parse() (ParseResult, error) {
	v, err := p.run()
	if err != nil {
		return ParseResult{OK: false, Result: Null(), Errors: []string{err.Error()}}, err
	}
	if v.isAbsent() {
		v = Null()
	}
	return ParseResult{OK: p.log.empty(), Result: v, Errors: p.log.formatted()}, nil
}

// run drives a single top-level parse: it strips a leading byte-order
// mark and dispatches exactly one value, converting a strict-mode panic
// into a returned error at the API boundary.
func (p *Parser) run() (v Value, err error) {
	defer p.recoverStrict(&err)
	p.stripBOM()
	v = p.readValue()
	return v, nil
}

func (p *Parser) recoverStrict(errp *error) {
	if r := recover(); r != nil {
		if se, ok := r.(*StrictError); ok {
			*errp = se
			return
		}
		panic(r)
	}
}

// Outcome is the primary API's result: a best-effort value (0 or 1
// elements, never more -- Multiple is reserved for future use and is
// always false today) together with the reader's full diagnostic log.
type Outcome struct {
	OK         bool
	Results    []Value
	ErrorCount int
	Errors     []string
	Multiple   bool
}

// ParseSmart parses input with opts (nil selects DefaultOptions) and
// returns the resulting Outcome. Empty or whitespace-only input short-
// circuits to {OK: true} with no results and no diagnostics, without
// constructing a Parser at all.
func ParseSmart(input string, opts *Options) Outcome {
	if strings.TrimSpace(input) == "" {
		return Outcome{OK: true}
	}

	p := NewParser(input, resolveOptions(opts))
	v, err := p.run()
	if err != nil {
		se := err.(*StrictError)
		return Outcome{OK: false, ErrorCount: 1, Errors: []string{se.Error()}}
	}

	out := Outcome{
		OK:         p.log.empty(),
		ErrorCount: p.log.count(),
		Errors:     p.log.formatted(),
	}
	if !v.isAbsent() {
		out.Results = []Value{v}
	}
	return out
}
