package asm

import (
	"unicode/utf8"
)

// lexer walks a single source line.
type lexer struct {
	text string
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// peek returns the byte at the current position, or 0 at end of line.
func (lx *lexer) peek() byte {
	if lx.pos >= len(lx.text) {
		return 0
	}
	return lx.text[lx.pos]
}

// peekRune returns the rune at the current position, for diagnostics.
func (lx *lexer) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(lx.text[lx.pos:])
	return r
}

// skipSpace skips horizontal whitespace.
func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.text) && isSpace(lx.text[lx.pos]) {
		lx.pos++
	}
}

// atEnd is true at the end of the line or at the start of a comment.
func (lx *lexer) atEnd() bool {
	return lx.pos >= len(lx.text) || lx.text[lx.pos] == ';'
}

// ident consumes an identifier, or returns "" if there is none.
func (lx *lexer) ident() string {
	start := lx.pos
	if start >= len(lx.text) || !isIdentStart(lx.text[start]) {
		return ""
	}
	lx.pos++
	for lx.pos < len(lx.text) && isIdent(lx.text[lx.pos]) {
		lx.pos++
	}
	return lx.text[start:lx.pos]
}

// number consumes an optional sign followed by a run of identifier
// characters. Validation is left to valueOf.
func (lx *lexer) number() string {
	start := lx.pos
	if c := lx.peek(); c == '+' || c == '-' {
		lx.pos++
	}
	for lx.pos < len(lx.text) && isIdent(lx.text[lx.pos]) {
		lx.pos++
	}
	return lx.text[start:lx.pos]
}

// expression consumes $( ... ) with balanced parentheses, returning the
// text between the outer parentheses.
func (lx *lexer) expression() (expr string, err error) {
	start := lx.pos
	if lx.pos+1 >= len(lx.text) || lx.text[lx.pos+1] != '(' {
		err = ErrCharacterInvalid('$')
		return
	}

	depth := 0
	for n := lx.pos + 1; n < len(lx.text); n++ {
		switch lx.text[n] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				expr = lx.text[start+2 : n]
				lx.pos = n + 1
				return
			}
		}
	}

	err = ErrParseExpression(lx.text[start+2:])
	return
}
