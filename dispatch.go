// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

// maxDispatchRetries bounds how many consecutive bytes the dispatcher may
// skip while failing to classify a value. This caps recovery
// cost on adversarial input composed entirely of garbage.
const maxDispatchRetries = 10

// readValue implements the Value dispatcher. It classifies
// the next value at the cursor, handling keyword literals, alien-token
// substitutions, and recovery for stray or unrecognised bytes. It may
// return the internal absent() sentinel to tell an enclosing container
// reader that a closing byte was left unconsumed.
func (p *Parser) readValue() Value {
	p.skipWhitespace()
	if p.eof() {
		return Null()
	}

	ch := p.peek()
	switch {
	case ch == '{':
		p.dispatchRetries = 0
		return p.readObject()
	case ch == '[':
		p.dispatchRetries = 0
		return p.readArray()
	case ch == '"' || ch == '\'':
		p.dispatchRetries = 0
		return String(p.readString())
	case ch == '-' || isDigit(ch):
		p.dispatchRetries = 0
		return Number(p.readNumber())

	case p.matchWord("true"):
		p.advanceBy(4)
		p.dispatchRetries = 0
		return Bool(true)
	case p.matchWord("false"):
		p.advanceBy(5)
		p.dispatchRetries = 0
		return Bool(false)
	case p.matchWord("null"):
		p.advanceBy(4)
		p.dispatchRetries = 0
		return Null()

	case p.opts.ConvertPythonTokens && p.matchWord("True"):
		pos := p.cursor
		p.advanceBy(4)
		p.log.add(pos, "Converted Python token True to true at pos %d", pos)
		p.dispatchRetries = 0
		return Bool(true)
	case p.opts.ConvertPythonTokens && p.matchWord("False"):
		pos := p.cursor
		p.advanceBy(5)
		p.log.add(pos, "Converted Python token False to false at pos %d", pos)
		p.dispatchRetries = 0
		return Bool(false)
	case p.opts.ConvertPythonTokens && p.matchWord("None"):
		pos := p.cursor
		p.advanceBy(4)
		p.log.add(pos, "Converted Python token None to null at pos %d", pos)
		p.dispatchRetries = 0
		return Null()

	case p.opts.ConvertUndefined && p.matchWord("undefined"):
		pos := p.cursor
		p.advanceBy(9)
		p.log.add(pos, "Converted undefined to null at pos %d", pos)
		p.dispatchRetries = 0
		return Null()

	case p.matchWord("NaN"):
		pos := p.cursor
		p.advanceBy(3)
		p.log.add(pos, "Converted NaN to null at pos %d", pos)
		p.dispatchRetries = 0
		return Null()
	case p.matchWord("Infinity"):
		pos := p.cursor
		p.advanceBy(8)
		p.log.add(pos, "Converted Infinity to null at pos %d", pos)
		p.dispatchRetries = 0
		return Null()

	case ch == '}' || ch == ']':
		// Do not advance: signal the enclosing container that this byte
		// was not consumed as a value.
		return absent()

	case ch == ',' || ch == ':':
		pos := p.cursor
		p.log.add(pos, "Unexpected separator %q at pos %d", ch, pos)
		p.advance()
		return p.retryDispatch()

	default:
		pos := p.cursor
		p.log.add(pos, "Unexpected character %q at pos %d", ch, pos)
		p.advance()
		return p.retryDispatch()
	}
}

// retryDispatch re-enters the dispatcher after a stray or unrecognised
// byte has been skipped, under the bounded retry guard. Every successful
// normal return of readValue resets dispatchRetries to zero; this
// function increments it and, once it exceeds maxDispatchRetries, gives
// up and returns Null rather than recursing further.
func (p *Parser) retryDispatch() Value {
	p.dispatchRetries++
	if p.dispatchRetries > maxDispatchRetries {
		p.dispatchRetries = 0
		return Null()
	}
	return p.readValue()
}
