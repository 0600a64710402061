// File: scanner/scanner.go
package scanner

import (
	"fmt"
	"strconv"
)

// Error reports a scan failure and the line it occurred on. The first error
// aborts the whole scan; no partial token list is returned alongside it.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Scanner tokenizes a single source text. One Scanner scans one source to
// completion and is then discarded; it is not safe for concurrent use.
type Scanner struct {
	source    []rune
	start     int // offset of the first character of the current lexeme
	startLine int // line of the first character of the current lexeme
	pos       int // scan cursor
	line      int // 1-based line under the cursor
}

// NewScanner creates a Scanner over source. Offsets in the resulting token
// positions are character offsets, so non-ASCII source round-trips exactly.
func NewScanner(source string) *Scanner {
	return &Scanner{source: []rune(source), line: 1}
}

// ScanTokens consumes the entire source left to right and returns its tokens
// in lexical order. On the first invalid construct it returns a *Error and
// discards any tokens already recognized. A source containing only whitespace
// and comments yields an empty list; no terminating EOF token is appended
// (KindEOF is the out-of-band sentinel, see token.go).
func (s *Scanner) ScanTokens() ([]Token, error) {
	var tokens []Token
	for !s.finished() {
		s.start = s.pos
		s.startLine = s.line

		tok, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		if tok != nil {
			tokens = append(tokens, *tok)
		}
	}
	return tokens, nil
}

// scanToken consumes one lexeme and returns its token, or nil for lexemes
// that produce none (whitespace, newlines, comments).
func (s *Scanner) scanToken() (*Token, error) {
	ch, ok := s.advance()
	if !ok {
		return nil, s.failf("Invalid syntax.")
	}

	switch ch {
	case '(':
		return s.emit(KindOpenParen), nil
	case ')':
		return s.emit(KindCloseParen), nil
	case '{':
		return s.emit(KindOpenBrace), nil
	case '}':
		return s.emit(KindCloseBrace), nil
	case ',':
		return s.emit(KindComma), nil
	case '.':
		return s.emit(KindDot), nil
	case '-':
		return s.emit(KindMinus), nil
	case '+':
		return s.emit(KindPlus), nil
	case ';':
		return s.emit(KindSemicolon), nil
	case '*':
		return s.emit(KindStar), nil

	case '!':
		if s.match('=') {
			return s.emit(KindBangEqual), nil
		}
		return s.emit(KindBang), nil
	case '=':
		if s.match('=') {
			return s.emit(KindEqualEqual), nil
		}
		return s.emit(KindEqual), nil
	case '>':
		if s.match('=') {
			return s.emit(KindGreaterEqual), nil
		}
		return s.emit(KindGreater), nil
	case '<':
		if s.match('=') {
			return s.emit(KindLessEqual), nil
		}
		return s.emit(KindLess), nil

	case '/':
		if s.match('/') {
			// Line comment: discard up to, but not including, the newline.
			for !s.finished() && s.peek() != '\n' {
				s.pos++
			}
			return nil, nil
		}
		return s.emit(KindSlash), nil

	case '"':
		return s.scanString()

	case ' ', '\r', '\t':
		return nil, nil
	case '\n':
		s.line++
		return nil, nil
	}

	if isDigit(ch) {
		return s.scanNumber()
	}
	if isAlpha(ch) {
		return s.scanIdentifier()
	}
	return nil, s.failf("Invalid syntax.")
}

// scanString scans the remainder of a string literal; the opening quote has
// already been consumed. Contents are taken verbatim between the quotes (no
// escape processing) and literals may span newlines.
func (s *Scanner) scanString() (*Token, error) {
	for !s.finished() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.pos++
	}

	if s.finished() {
		return nil, s.failf("EOF while scanning string literal")
	}
	s.pos++ // closing quote

	tok := s.emit(KindString)
	tok.Text = string(s.source[s.start+1 : s.pos-1])
	return tok, nil
}

// scanNumber scans the remainder of a number literal; the leading digit has
// already been consumed.
func (s *Scanner) scanNumber() (*Token, error) {
	for isDigit(s.peek()) {
		s.pos++
	}

	// A fractional part is consumed only when the dot is immediately followed
	// by a digit; a trailing dot is left for the next lexeme.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.pos += 2
		for isDigit(s.peek()) {
			s.pos++
		}
	}

	lexeme := string(s.source[s.start:s.pos])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// The span is guaranteed numeric by construction.
		panic(fmt.Sprintf("scanner: unparseable number literal %q: %v", lexeme, err))
	}

	tok := s.emit(KindNumber)
	tok.Number = value
	return tok, nil
}

// scanIdentifier scans the remainder of an identifier or reserved word; the
// leading letter or underscore has already been consumed.
func (s *Scanner) scanIdentifier() (*Token, error) {
	for isAlphaNumeric(s.peek()) {
		s.pos++
	}

	name := string(s.source[s.start:s.pos])
	if keyword, ok := Keywords[name]; ok {
		tok := s.emit(KindKeyword)
		tok.Keyword = keyword
		return tok, nil
	}

	tok := s.emit(KindIdentifier)
	tok.Text = name
	return tok, nil
}

// advance consumes and returns the character under the cursor.
func (s *Scanner) advance() (rune, bool) {
	if s.finished() {
		return 0, false
	}
	ch := s.source[s.pos]
	s.pos++
	return ch, true
}

// match consumes the character under the cursor when it equals want. This is
// the uniform one-character lookahead for !=, ==, >= and <=.
func (s *Scanner) match(want rune) bool {
	if s.finished() || s.source[s.pos] != want {
		return false
	}
	s.pos++
	return true
}

// peek returns the character under the cursor without consuming it, or 0 at
// end of input.
func (s *Scanner) peek() rune {
	if s.finished() {
		return 0
	}
	return s.source[s.pos]
}

// peekNext returns the character one past the cursor, or 0 when out of range.
func (s *Scanner) peekNext() rune {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

func (s *Scanner) finished() bool {
	return s.pos >= len(s.source)
}

// emit builds a token of the given kind spanning the current lexeme.
func (s *Scanner) emit(kind Kind) *Token {
	return &Token{
		Kind: kind,
		Position: Position{
			Start: s.start,
			End:   s.pos,
			Line:  s.startLine,
		},
	}
}

func (s *Scanner) failf(message string) *Error {
	return &Error{Message: message, Line: s.line}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
