// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

// Options controls the behaviour of a Parser. The zero value is not
// necessarily usable; call DefaultOptions to obtain a populated value, or
// start from it and override individual fields.
//
// Unrecognised fields carried by future callers (e.g. via a config file
// unmarshalled into this struct) are ignored: this type only ever grows,
// never shrinks its meaning, for forward compatibility.
type Options struct {
	// Strict, if set, aborts the parse at the first diagnostic instead of
	// recovering. The resulting Outcome has OK=false, no results, and
	// exactly one formatted error.
	Strict bool

	// MaxDepth is the hard cap on nested container depth. Zero means use
	// the default (100).
	MaxDepth int

	// AllowComments enables // line comments and /* block */ comments in
	// whitespace position.
	AllowComments bool

	// AllowTrailingComma suppresses the diagnostic for a separator that
	// immediately precedes a container's closing byte.
	AllowTrailingComma bool

	// ConvertPythonTokens accepts True/False/None as true/false/null,
	// logging a diagnostic for the substitution.
	ConvertPythonTokens bool

	// ConvertUndefined accepts the bare word undefined as null, logging a
	// diagnostic for the substitution.
	ConvertUndefined bool
}

// defaultMaxDepth is the depth cap applied when Options.MaxDepth is zero.
const defaultMaxDepth = 100

// DefaultOptions returns the effective default configuration used when a
// caller passes nil options to ParseSmart. The returned value is safe to
// copy and mutate.
func DefaultOptions() Options {
	return Options{
		Strict:              false,
		MaxDepth:            defaultMaxDepth,
		AllowComments:       true,
		AllowTrailingComma:  true,
		ConvertPythonTokens: true,
		ConvertUndefined:    true,
	}
}

// resolveOptions returns DefaultOptions for a nil opts. Otherwise it
// returns a copy of *opts with a zero MaxDepth replaced by
// defaultMaxDepth; the boolean fields are used as given.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	out := *opts
	if out.MaxDepth == 0 {
		out.MaxDepth = defaultMaxDepth
	}
	return out
}
