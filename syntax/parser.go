package syntax

import "errors"

// ErrMisplacedQuantifier indicates a `?`, `*` or `+` with no atom or group
// immediately before it, e.g. `*a` or `a**`.
var ErrMisplacedQuantifier = errors.New("quantifier without preceding atom")

// parser holds the token cursor for one recursive descent over a pattern.
// There is one method per grammar production.
type parser struct {
	pattern string
	tokens  []Token
	pos     int
}

// Parse compiles a pattern string into its AST.
//
// Scanning and parsing failures are both returned as *Error with the rune
// offset of the offending character. A nil error guarantees the returned
// tree satisfies the structural invariants documented on Regexp.
func Parse(pattern string) (*Regexp, error) {
	tokens, err := Scan(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{pattern: pattern, tokens: tokens}
	re, err := p.parseRegexp()
	if err != nil {
		return nil, err
	}
	// The top-level production consumes everything except a stray `)`,
	// which no open group can account for.
	if tok, ok := p.peek(); ok {
		if tok.Kind == TokenRParen {
			return nil, &Error{Err: ErrUnexpectedCloseParen, Pattern: pattern, Pos: tok.Pos, Ch: ')'}
		}
		return nil, &Error{Err: ErrMisplacedQuantifier, Pattern: pattern, Pos: tok.Pos, Ch: tok.Ch}
	}
	return re, nil
}

// peek returns the next token without consuming it.
func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// next consumes and returns the next token.
func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// atTerminator reports whether the cursor sits at the end of the current
// scope: end of input, a `|` separating alternatives, or the `)` closing an
// enclosing group.
func (p *parser) atTerminator() bool {
	tok, ok := p.peek()
	if !ok {
		return true
	}
	return tok.Kind == TokenPipe || tok.Kind == TokenRParen
}

// parseRegexp parses `Concatenation { "|" Concatenation }`. With a single
// alternative no Alternate node is allocated.
func (p *parser) parseRegexp() (*Regexp, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	alts := []*Regexp{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenPipe {
			break
		}
		p.pos++
		branch, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		alts = append(alts, branch)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return &Regexp{Op: OpAlternate, Sub: alts}, nil
}

// parseConcatenation parses primaries until the scope ends. A concatenation
// of exactly one primary collapses to that primary; an empty scope (`""`,
// `()`, the gaps around `|`) becomes the Empty node.
func (p *parser) parseConcatenation() (*Regexp, error) {
	var subs []*Regexp
	for !p.atTerminator() {
		sub, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	switch len(subs) {
	case 0:
		return &Regexp{Op: OpEmpty}, nil
	case 1:
		return subs[0], nil
	default:
		return &Regexp{Op: OpConcat, Sub: subs}, nil
	}
}

// parseQuantified parses one Match or Group and then at most one postfix
// quantifier. Quantifiers bind to exactly the preceding atom or group,
// never to a whole concatenation or alternation.
func (p *parser) parseQuantified() (*Regexp, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Err: ErrUnexpectedEOF, Pattern: p.pattern, Pos: len([]rune(p.pattern))}
	}

	var operand *Regexp
	var err error
	switch tok.Kind {
	case TokenLParen:
		operand, err = p.parseGroup()
	case TokenStar, TokenPlus, TokenQuestion:
		err = &Error{Err: ErrMisplacedQuantifier, Pattern: p.pattern, Pos: tok.Pos, Ch: tok.Ch}
	default:
		operand, err = p.parseMatch()
	}
	if err != nil {
		return nil, err
	}

	quant, ok := p.peek()
	if !ok || !quant.isQuantifier() {
		return operand, nil
	}
	p.pos++
	switch quant.Kind {
	case TokenQuestion:
		return &Regexp{Op: OpQuest, Sub: []*Regexp{operand}}, nil
	case TokenStar:
		return &Regexp{Op: OpStar, Sub: []*Regexp{operand}}, nil
	default:
		return &Regexp{Op: OpPlus, Sub: []*Regexp{operand}}, nil
	}
}

// parseGroup parses `( Regexp )`. The group is structurally transparent:
// its inner tree is returned directly, so grouping survives only through
// the shape it forced during parsing.
func (p *parser) parseGroup() (*Regexp, error) {
	open, _ := p.next() // the LParen that routed us here
	inner, err := p.parseRegexp()
	if err != nil {
		return nil, err
	}
	// parseRegexp stops only at `)` or end of input.
	if _, ok := p.next(); !ok {
		return nil, &Error{Err: ErrUnmatchedOpenParen, Pattern: p.pattern, Pos: open.Pos, Ch: '('}
	}
	return inner, nil
}

// parseMatch parses a single-character atom: the `.` wildcard or a literal,
// escaped or plain.
func (p *parser) parseMatch() (*Regexp, error) {
	tok, _ := p.next()
	switch tok.Kind {
	case TokenDot:
		return &Regexp{Op: OpAnyChar}, nil
	case TokenChar, TokenEscapedChar:
		return &Regexp{Op: OpLiteral, Ch: tok.Ch}, nil
	default:
		return nil, &Error{Err: ErrUnexpectedEOF, Pattern: p.pattern, Pos: tok.Pos, Ch: tok.Ch}
	}
}
