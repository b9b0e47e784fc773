// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import "fmt"

// Diagnostic records a single recovery the reader performed: the byte
// offset at which the malformation was detected, and a stable
// human-readable message describing what was done about it.
//
// Diagnostics are not a structured error taxonomy -- downstream consumers
// that need to distinguish recovery kinds match on the message text.
type Diagnostic struct {
	Pos     int
	Message string
}

// Format renders d the way Outcome.Errors and StrictError.Error do:
// "[pos <N>] <message>".
func (d Diagnostic) Format() string {
	return fmt.Sprintf("[pos %d] %s", d.Pos, d.Message)
}

// diagLog is an append-only, chronologically ordered sequence of
// diagnostics. It is never reordered or truncated once appended to,
// matching the "log monotone" invariant of the reader.
type diagLog struct {
	entries []Diagnostic
	strict  bool
	first   *Diagnostic
}

func (l *diagLog) empty() bool { return len(l.entries) == 0 }

func (l *diagLog) count() int { return len(l.entries) }

// add records a diagnostic at pos with the given message. If the log was
// constructed in strict mode, add panics with *StrictError on the first
// diagnostic instead of appending, so the parse unwinds immediately.
func (l *diagLog) add(pos int, format string, args ...any) {
	d := Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)}
	if l.strict {
		e := &StrictError{Pos: d.Pos, Message: d.Message}
		l.first = &d
		panic(e)
	}
	l.entries = append(l.entries, d)
}

// formatted returns every diagnostic in l rendered with Diagnostic.Format,
// in chronological order.
func (l *diagLog) formatted() []string {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]string, len(l.entries))
	for i, d := range l.entries {
		out[i] = d.Format()
	}
	return out
}

// StrictError is returned (wrapped in a panic and recovered at the API
// boundary) when Options.Strict is set and the reader would otherwise
// have logged a diagnostic. It carries exactly the first diagnostic
// that would have been recorded.
type StrictError struct {
	Pos     int
	Message string
}

// Error satisfies the error interface.
func (e *StrictError) Error() string {
	return fmt.Sprintf("[pos %d] %s", e.Pos, e.Message)
}
