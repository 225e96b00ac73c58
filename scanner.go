package calc

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/cznic/mathutil"
)

type TokenKind int

const (
	EOF TokenKind = iota
	NUMBER
	PLUS
	MINUS
	STAR
	SLASH
	CARET
	LEFTPAREN
	RIGHTPAREN
)

func (t TokenKind) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	case LEFTPAREN:
		return "("
	case RIGHTPAREN:
		return ")"
	}
	panic("unreachable")
}

// Pos is a location in the source. Line and Column are 1-based, Offset is a
// byte offset.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Value is set only for NUMBER tokens.
type Token struct {
	Pos
	Kind    TokenKind
	Content []byte
	Value   float64
}

func (t Token) String() string {
	if t.Kind == NUMBER {
		return fmt.Sprintf("(%s:%s)", t.Kind, Format(t.Value))
	}
	return fmt.Sprintf("(%s)", t.Kind)
}

// ScanTokens scans the whole source up front. The returned slice always ends
// with an EOF token unless scanning failed.
func ScanTokens(source []byte) ([]Token, error) {
	sc := NewScanner(source)
	tokens := []Token{}
	for {
		tok, err := sc.Scan()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens, nil
}

// Scanner produces tokens on demand. Once the source is exhausted every call
// to Scan returns an EOF token.
type Scanner struct {
	source []byte
	start  int
	end    int
	line   int
	col    int
	pos    Pos
}

func NewScanner(source []byte) *Scanner {
	const DEFAULT_LINE = 1
	return &Scanner{
		source: source,
		line:   DEFAULT_LINE,
		col:    1,
	}
}

func (s *Scanner) Scan() (Token, error) {
	s.skipWhitespace()
	s.start = s.end
	s.pos = Pos{Offset: s.end, Line: s.line, Column: s.col}
	if s.end >= len(s.source) {
		return s.token(EOF), nil
	}
	var t Token
	switch c := s.next(); c {
	case '+':
		s.advance()
		t = s.token(PLUS)
	case '-':
		s.advance()
		t = s.token(MINUS)
	case '*':
		s.advance()
		t = s.token(STAR)
	case '/':
		s.advance()
		t = s.token(SLASH)
	case '^':
		s.advance()
		t = s.token(CARET)
	case '(':
		s.advance()
		t = s.token(LEFTPAREN)
	case ')':
		s.advance()
		t = s.token(RIGHTPAREN)
	default:
		if isNum(c) {
			return s.num(), nil
		}
		return s.token(EOF), NewLexError(s.pos, s.char())
	}
	return t, nil
}

func isNum(c byte) bool {
	return '0' <= c && c <= '9'
}

func (s *Scanner) num() Token {
	for isNum(s.next()) {
		s.advance()
	}
	t := s.token(NUMBER)
	// A digit run always parses; the only failure is ErrRange, for which
	// ParseFloat already returns ±Inf.
	t.Value, _ = strconv.ParseFloat(string(t.Content), 64)
	return t
}

func (s *Scanner) skipWhitespace() {
	for s.end < len(s.source) {
		switch s.next() {
		case ' ', '\t':
			s.advance()
		case '\n':
			s.advance()
			s.line++
			s.col = 1
		default:
			return
		}
	}
}

func (s *Scanner) next() byte {
	if s.end >= len(s.source) {
		return 0
	}
	return s.source[s.end]
}

func (s *Scanner) advance() byte {
	c := s.next()
	s.end++
	s.col++
	return c
}

// char decodes the offending character at the current position so that
// multi-byte input is reported whole.
func (s *Scanner) char() rune {
	r, _ := utf8.DecodeRune(s.source[s.end:])
	return r
}

func (s *Scanner) token(t TokenKind) Token {
	end := mathutil.Clamp(s.end, 0, len(s.source))
	content := s.source[s.start:end]
	s.start = end
	return Token{
		Pos:     s.pos,
		Kind:    t,
		Content: content,
	}
}
