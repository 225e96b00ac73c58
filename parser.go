package calc

// Parse scans and parses source as a single expression followed by the end
// of input.
func Parse(source []byte) (Node, error) {
	psr := NewStreamParser(NewScanner(source))
	return psr.ParseExprAndEof()
}

type tokenSource interface {
	Scan() (Token, error)
}

type sliceSource struct {
	tokens []Token
	index  int
}

func (s *sliceSource) Scan() (Token, error) {
	if s.index >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1], nil
	}
	t := s.tokens[s.index]
	s.index++
	return t, nil
}

// Parser is a recursive descent parser holding a single token of lookahead.
//
//	expr   := term ((PLUS | MINUS) term)*
//	term   := factor ((STAR | SLASH) factor)*
//	factor := (PLUS | MINUS) factor | power
//	power  := atom (CARET factor)*
//	atom   := NUMBER | LEFTPAREN expr RIGHTPAREN
type Parser struct {
	src    tokenSource
	tok    Token
	primed bool
}

// NewParser parses an already scanned token list. A missing trailing EOF is
// added.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		var eofPos Pos
		if len(tokens) > 0 {
			eofPos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Pos: eofPos, Kind: EOF})
	}
	return &Parser{
		src: &sliceSource{tokens: tokens},
	}
}

// NewStreamParser pulls tokens from sc one at a time as parsing proceeds.
func NewStreamParser(sc *Scanner) *Parser {
	return &Parser{
		src: sc,
	}
}

// ParseExpr parses one expression and leaves any following tokens unread.
func (p *Parser) ParseExpr() (Node, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	return p.parseExpr()
}

// ParseExprAndEof parses one expression and fails if anything follows it.
func (p *Parser) ParseExprAndEof() (Node, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.next(); t.Kind != EOF {
		return nil, NewParseError(t.Pos, "unexpected %s after expression", t.Kind)
	}
	return expr, nil
}

func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.next().Kind == PLUS || p.next().Kind == MINUS {
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.next().Kind == STAR || p.next().Kind == SLASH {
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Node, error) {
	switch p.next().Kind {
	case PLUS, MINUS:
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{
			Op:      op,
			Operand: operand,
		}, nil
	}
	return p.parsePower()
}

// parsePower reads the right operand of ^ with parseFactor, which consumes
// the rest of the chain, so ^ groups to the right.
func (p *Parser) parsePower() (Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.next().Kind == CARET {
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseAtom() (Node, error) {
	switch t := p.next(); t.Kind {
	case NUMBER:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberNode{Token: t}, nil
	case LEFTPAREN:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.next().Kind != RIGHTPAREN {
			return nil, NewParseError(p.next().Pos, "missing )")
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	if p.next().Kind == EOF {
		return nil, NewParseError(p.next().Pos, "unexpected end of input, expected number or (")
	}
	return nil, NewParseError(p.next().Pos, "expected number or (, but got %s", p.next().Kind)
}

func (p *Parser) prime() error {
	if p.primed {
		return nil
	}
	tok, err := p.src.Scan()
	if err != nil {
		return err
	}
	p.tok = tok
	p.primed = true
	return nil
}

func (p *Parser) next() Token {
	return p.tok
}

// advance returns the current lookahead and pulls the following token from
// the source.
func (p *Parser) advance() (Token, error) {
	t := p.tok
	tok, err := p.src.Scan()
	if err != nil {
		return t, err
	}
	p.tok = tok
	return t, nil
}
