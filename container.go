// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import "unicode"

// readObject implements the Object reader. Precondition: the
// cursor is on '{'.
func (p *Parser) readObject() Value {
	start := p.cursor
	p.containerDepth++
	if p.containerDepth > p.opts.MaxDepth {
		p.log.add(start, "Max depth exceeded at pos %d", start)
		p.skipBalanced('{', '}')
		p.containerDepth--
		return ObjectValue(nil)
	}
	p.advance() // consume '{'

	obj := NewObject()

loop:
	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}

		switch p.peek() {
		case ',':
			p.advance()
			continue loop
		case '}':
			break loop
		case ']':
			p.log.add(p.cursor, "Unexpected `]` inside object at pos %d", p.cursor)
			p.advance()
			continue loop
		}

		key, ok := p.readObjectKey()
		if !ok {
			continue loop
		}

		p.skipWhitespace()
		key = p.sanitizeKey(key)

		if p.peek() == ':' {
			p.advance()
		} else {
			pos := p.cursor
			p.log.add(pos, "Missing colon after key at pos %d", pos)
			p.skipWhitespace()
			if p.eof() || p.peek() == ',' || p.peek() == '}' {
				obj.Set(key, Null())
				continue loop
			}
		}

		p.skipWhitespace()
		if p.eof() {
			obj.Set(key, Null())
			p.log.add(p.cursor, "Truncated object at pos %d", p.cursor)
			break loop
		}

		v := p.readValue()
		if v.isAbsent() {
			v = Null()
		}
		obj.Set(key, v)

		p.skipWhitespace()
		switch {
		case p.peek() == ',':
			p.advance()
			p.checkTrailingComma('}')
		case p.peek() == '}':
			// fall through to loop condition
		case p.eof():
			break loop
		default:
			p.log.add(p.cursor, "Expected `,` or `}` at pos %d", p.cursor)
			continue loop
		}
	}

	if p.peek() == '}' {
		p.advance()
	} else {
		p.log.add(p.cursor, "Unclosed object, auto-closing at pos %d", p.cursor)
	}
	p.containerDepth--
	return ObjectValue(obj)
}

// readObjectKey reads a single member key: a quoted string, a bare-word
// identifier (logged as an "Unquoted key" recovery), or -- failing both --
// skips one byte and logs "Expected key", signalling the caller to retry.
func (p *Parser) readObjectKey() (string, bool) {
	ch := p.peek()
	switch {
	case ch == '"' || ch == '\'':
		return p.readString(), true
	case isIdentStart(ch):
		start := p.cursor
		for isIdentPart(p.peek()) {
			p.advance()
		}
		p.log.add(start, "Unquoted key at pos %d", start)
		return p.input[start:p.cursor], true
	default:
		p.log.add(p.cursor, "Expected key at pos %d", p.cursor)
		p.advance()
		return "", false
	}
}

// sanitizeKey trims a run of leading commas (and any whitespace
// immediately following them) from a key that was read as a bare
// identifier or quoted string beginning with one or more commas.
func (p *Parser) sanitizeKey(key string) string {
	i := 0
	for i < len(key) && key[i] == ',' {
		i++
	}
	if i == 0 {
		return key
	}
	p.log.add(p.cursor, "Trimmed leading commas from key at pos %d", p.cursor)
	for i < len(key) && unicode.IsSpace(rune(key[i])) {
		i++
	}
	return key[i:]
}

// checkTrailingComma logs a diagnostic when Options.AllowTrailingComma
// is false and the comma just consumed is immediately followed (modulo
// whitespace) by closer, the container's closing byte.
func (p *Parser) checkTrailingComma(closer rune) {
	if p.opts.AllowTrailingComma {
		return
	}
	i := 0
	for unicode.IsSpace(p.peekAt(i)) {
		i++
	}
	if p.peekAt(i) == closer {
		p.log.add(p.cursor, "Trailing comma before `%c` at pos %d", closer, p.cursor)
	}
}

// readArray implements the Array reader, symmetric to readObject except
// that it has no key/colon phase, logs and skips a stray '}', closes
// early when looksLikeObjectKey fires, and drops an absent value instead
// of storing Null.
func (p *Parser) readArray() Value {
	start := p.cursor
	p.containerDepth++
	if p.containerDepth > p.opts.MaxDepth {
		p.log.add(start, "Max depth exceeded at pos %d", start)
		p.skipBalanced('[', ']')
		p.containerDepth--
		return Array()
	}
	p.advance() // consume '['

	var elems []Value

loop:
	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}

		switch p.peek() {
		case ',':
			p.advance()
			continue loop
		case ']':
			break loop
		case '}':
			p.log.add(p.cursor, "Unexpected `}` inside array at pos %d", p.cursor)
			p.advance()
			continue loop
		}

		if p.looksLikeObjectKey() {
			p.log.add(p.cursor, "Detected object key inside array, closing array at pos %d", p.cursor)
			break loop
		}

		v := p.readValue()
		if v.isAbsent() {
			// The dispatcher refused a closing byte that belongs to us;
			// the top-of-loop switch will see it on the next iteration.
			continue loop
		}
		elems = append(elems, v)

		p.skipWhitespace()
		switch {
		case p.peek() == ',':
			p.advance()
			p.checkTrailingComma(']')
		case p.peek() == ']':
			// fall through to loop condition
		case p.eof():
			break loop
		default:
			p.log.add(p.cursor, "Expected `,` or `]` at pos %d", p.cursor)
			continue loop
		}
	}

	if p.peek() == ']' {
		p.advance()
	} else {
		p.log.add(p.cursor, "Unclosed array, auto-closing at pos %d", p.cursor)
	}
	p.containerDepth--
	return Array(elems...)
}

// skipBalanced advances the cursor past a balanced open/close span rooted
// at the current position (which must hold open), used to discard a
// subtree that would otherwise exceed Options.MaxDepth. It is EOF-safe:
// an unterminated span simply consumes to the end of input.
func (p *Parser) skipBalanced(open, close rune) {
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case open:
			depth++
			p.advance()
		case close:
			depth--
			p.advance()
			if depth == 0 {
				return
			}
		default:
			p.advance()
		}
	}
}

// looksLikeObjectKey is a non-mutating look-ahead from the cursor that
// detects an object-member "key:" shape appearing where an array
// element was expected. It never advances the cursor or writes to the
// log.
func (p *Parser) looksLikeObjectKey() bool {
	i := 0
	switch ch := p.peekAt(i); {
	case ch == '"' || ch == '\'':
		quote := ch
		i++
		for {
			c := p.peekAt(i)
			if c == eof {
				return false
			}
			if c == '\\' {
				i += 2
				continue
			}
			i++
			if c == quote {
				break
			}
			if c == '\n' || c == '\r' {
				return false
			}
		}
	case isIdentStart(ch):
		for isIdentPart(p.peekAt(i)) {
			i++
		}
	default:
		return false
	}
	for unicode.IsSpace(p.peekAt(i)) {
		i++
	}
	return p.peekAt(i) == ':'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch) || isDigit(ch)
}
