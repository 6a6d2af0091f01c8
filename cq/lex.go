package cq

import "strings"

// tokenType identifies a lexical token of the conjunctive query grammar:
// a small enum of token kinds, plus an error token rather than a second
// return value.
type tokenType int

const (
	eofToken tokenType = iota
	errorToken
	nameToken
	lparenToken
	rparenToken
	commaToken
)

type token struct {
	typ tokenType
	val string
	pos int
}

// lexer is a pull lexer over the raw query text. Whitespace is significant
// in this grammar (exactly one space after "," and around ":-"), so it is
// not skipped automatically; next() only recognizes names and punctuation,
// and the parser matches literal separators explicitly.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func isNameStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isNameCont(b byte) bool {
	return isNameStart(b) || ('0' <= b && b <= '9')
}

func (l *lexer) lexName() token {
	start := l.pos
	if l.pos >= len(l.input) || !isNameStart(l.input[l.pos]) {
		return token{typ: errorToken, val: "expected a name", pos: l.pos}
	}
	l.pos++
	for l.pos < len(l.input) && isNameCont(l.input[l.pos]) {
		l.pos++
	}
	return token{typ: nameToken, val: l.input[start:l.pos], pos: start}
}

// next returns the next token without skipping whitespace.
func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: eofToken, pos: l.pos}
	}
	pos := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return token{typ: lparenToken, val: "(", pos: pos}
	case ')':
		l.pos++
		return token{typ: rparenToken, val: ")", pos: pos}
	case ',':
		l.pos++
		return token{typ: commaToken, val: ",", pos: pos}
	default:
		return l.lexName()
	}
}

// peekByte reports whether the next unconsumed byte equals b.
func (l *lexer) peekByte(b byte) bool {
	return l.pos < len(l.input) && l.input[l.pos] == b
}

// expectLiteral consumes lit from the current position if present.
func (l *lexer) expectLiteral(lit string) bool {
	if strings.HasPrefix(l.input[l.pos:], lit) {
		l.pos += len(lit)
		return true
	}
	return false
}
