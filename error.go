package calc

import "fmt"

// LexError reports a character that does not start any token.
type LexError struct {
	Pos  Pos
	Char rune
}

func NewLexError(pos Pos, c rune) *LexError {
	return &LexError{
		Pos:  pos,
		Char: c,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: error: unexpected character %q", e.Pos, e.Char)
}

// ParseError reports a token sequence the grammar does not accept.
type ParseError struct {
	Pos Pos
	Msg string
}

func NewParseError(pos Pos, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Msg)
}
