// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package expr

import "strconv"

type tokenKind uint8

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind  tokenKind
	text  string
	value float64 // set for tokenNumber
	pos   int
}

// scanner tokenizes formula text. The token set is closed: anything outside
// it is a compile error, never passed through.
type scanner struct {
	src string
	pos int
}

func (s *scanner) next() (token, error) {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return token{kind: tokenEOF, pos: s.pos}, nil
	}

	start := s.pos
	c := s.src[s.pos]

	switch {
	case isDigit(c) || c == '.':
		for s.pos < len(s.src) && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
			s.pos++
		}
		text := s.src[start:s.pos]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, &CompileError{Pos: start, Reason: "malformed number " + strconv.Quote(text)}
		}
		return token{kind: tokenNumber, text: text, value: value, pos: start}, nil
	case isIdentStart(c):
		for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
			s.pos++
		}
		return token{kind: tokenIdent, text: s.src[start:s.pos], pos: start}, nil
	}

	s.pos++
	kind, ok := operatorKinds[c]
	if !ok {
		return token{}, &CompileError{Pos: start, Reason: "unexpected character " + strconv.QuoteRune(rune(c))}
	}
	return token{kind: kind, text: s.src[start:s.pos], pos: start}, nil
}

var operatorKinds = map[byte]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'^': tokenCaret,
	'(': tokenLParen,
	')': tokenRParen,
	',': tokenComma,
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
