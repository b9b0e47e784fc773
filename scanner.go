// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import (
	"unicode"
	"unicode/utf8"

	"go4.org/mem"
)

// eof is the rune value Parser.peek returns once the cursor has run off
// the end of the input; it can never be produced by decoding real UTF-8
// text, so callers can compare against it directly.
const eof rune = -1

// byteOrderMark is the UTF-8 encoding of U+FEFF, stripped from the front
// of the input by the entry point before any other work.
const byteOrderMark = "\xef\xbb\xbf"

// The remainder of this file implements the byte/character cursor
// shared by every reader below. It never performs recovery itself;
// recovery is the responsibility of its callers, the value dispatcher
// and the container readers.

// eof reports whether the cursor has reached the end of the input.
func (p *Parser) eof() bool { return p.cursor >= len(p.input) }

// peek returns the rune at the cursor without consuming it, or the eof
// sentinel if the cursor is at or past the end of the input.
func (p *Parser) peek() rune {
	if p.eof() {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.cursor:])
	return r
}

// peekAt returns the rune n runes ahead of the cursor without consuming
// anything, or eof past the end of input. It is used by the comment
// scanner and the premature-array-end heuristic, neither of which may
// mutate parser state while looking ahead.
func (p *Parser) peekAt(n int) rune {
	rest := p.input[p.cursor:]
	for i := 0; i < n; i++ {
		if rest == "" {
			return eof
		}
		_, w := utf8.DecodeRuneInString(rest)
		rest = rest[w:]
	}
	if rest == "" {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

// advance steps the cursor forward by one rune. It is a no-op at EOF.
// Together with advanceBy and stripBOM it is the only place the cursor
// moves, and none of the three ever decreases p.cursor.
func (p *Parser) advance() {
	if p.eof() {
		return
	}
	_, w := utf8.DecodeRuneInString(p.input[p.cursor:])
	p.cursor += w
}

// matchWord reports whether w occurs literally at the cursor, without
// consuming any input. Comparison is a zero-copy byte compare over the
// unconsumed remainder of the input.
func (p *Parser) matchWord(w string) bool {
	return mem.HasPrefix(mem.S(p.input[p.cursor:]), mem.S(w))
}

// advanceBy steps the cursor forward by n bytes, used after matchWord has
// confirmed a literal ASCII keyword is present at the cursor.
func (p *Parser) advanceBy(n int) {
	p.cursor += n
	if p.cursor > len(p.input) {
		p.cursor = len(p.input)
	}
}

// stripBOM advances the cursor past a leading byte-order-mark, if present.
func (p *Parser) stripBOM() {
	if p.cursor == 0 && mem.HasPrefix(mem.S(p.input), mem.S(byteOrderMark)) {
		p.cursor += len(byteOrderMark)
	}
}

// skipWhitespace consumes runs of Unicode whitespace, interleaved with
// line and block comments when Options.AllowComments is set. An
// unterminated block comment silently closes at EOF; this is intentional
// and never logged.
func (p *Parser) skipWhitespace() {
	for {
		if p.eof() {
			return
		}
		ch := p.peek()
		if unicode.IsSpace(ch) {
			p.advance()
			continue
		}
		if p.opts.AllowComments && ch == '/' {
			switch p.peekAt(1) {
			case '/':
				p.skipLineComment()
				continue
			case '*':
				p.skipBlockComment()
				continue
			}
		}
		return
	}
}

func (p *Parser) skipLineComment() {
	p.advance() // '/'
	p.advance() // '/'
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}
}

func (p *Parser) skipBlockComment() {
	p.advance() // '/'
	p.advance() // '*'
	for {
		if p.eof() {
			return // unterminated: silently closes, no diagnostic
		}
		if p.peek() == '*' && p.peekAt(1) == '/' {
			p.advance()
			p.advance()
			return
		}
		p.advance()
	}
}
