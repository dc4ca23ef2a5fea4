package scanner

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/havrydotdev/treelox/token"
)

// Error is a lexical error at a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

type Scanner struct {
	source string
	tokens []token.Token
	errs   []error

	start   int
	current int
	line    int
}

func New(source string) *Scanner {
	return &Scanner{source: source, tokens: make([]token.Token, 0), start: 0, current: 0, line: 1}
}

// Scan tokenizes the whole source. Tokens are always terminated by Eof;
// every lexical error is collected and returned joined.
func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.New(token.Eof, "", nil, s.line))

	return s.tokens, errors.Join(s.errs...)
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	// one-character tokens
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)

	// two or one character tokens
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater))

	// multiple character tokens
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(token.Slash)
		}

	case ' ', '\t', '\r':

	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.error(fmt.Sprintf("Unexpected character '%c'.", c))
		}
	}
}

func (s *Scanner) either(next byte, two, one token.Kind) token.Kind {
	if s.match(next) {
		return two
	}

	return one
}

func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}

		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}

		s.advance()
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	s.addToken(token.LookupIdent(s.source[s.start:s.current]))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	num, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.error(fmt.Sprintf("Invalid number %q.", s.source[s.start:s.current]))
		return
	}

	s.addToken(token.Number, num)
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}

		s.advance()
	}

	if s.isAtEnd() {
		s.error("Unterminated string.")
		return
	}

	s.advance()
	s.addToken(token.String, s.source[s.start+1:s.current-1])
}

func (s *Scanner) error(message string) {
	s.errs = append(s.errs, &Error{Line: s.line, Message: message})
}

func (s *Scanner) addToken(kind token.Kind, literal ...any) {
	var l any
	if len(literal) != 0 {
		l = literal[0]
	}

	lexeme := s.source[s.start:s.current]

	s.tokens = append(s.tokens, token.New(kind, lexeme, l, s.line))
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) advance() byte {
	curr := s.current
	s.current++
	return s.source[curr]
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}

	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return '\000'
	}

	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
