package syntax

import "strings"

// Metacharacters recognized by the scanner. Escaping any of them yields a
// literal; escaping anything else is a lexical error.
const metacharacters = `()\|*.?+`

// isMetachar reports whether c is syntactically special when unescaped.
func isMetachar(c rune) bool {
	return strings.ContainsRune(metacharacters, c)
}

// Scanner converts a pattern string into a token sequence, resolving escape
// sequences. It operates on runes so that token positions are character
// offsets regardless of UTF-8 encoding width.
type Scanner struct {
	pattern string
	src     []rune
	pos     int
}

// NewScanner returns a scanner over pattern.
func NewScanner(pattern string) *Scanner {
	return &Scanner{
		pattern: pattern,
		src:     []rune(pattern),
	}
}

// Scan tokenizes the whole pattern. It fails with ErrDanglingEscape if a
// backslash is the last character, and with ErrUnknownEscape if a backslash
// precedes anything other than a metacharacter. Balance of parentheses is
// the parser's concern, not the scanner's.
func (s *Scanner) Scan() ([]Token, error) {
	// The empty pattern scans to an empty token sequence; the parser turns
	// that into the Empty node.
	tokens := make([]Token, 0, len(s.src))

	for s.pos < len(s.src) {
		start := s.pos
		c := s.src[s.pos]
		s.pos++

		switch c {
		case '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Ch: c, Pos: start})
		case ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Ch: c, Pos: start})
		case '|':
			tokens = append(tokens, Token{Kind: TokenPipe, Ch: c, Pos: start})
		case '*':
			tokens = append(tokens, Token{Kind: TokenStar, Ch: c, Pos: start})
		case '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Ch: c, Pos: start})
		case '?':
			tokens = append(tokens, Token{Kind: TokenQuestion, Ch: c, Pos: start})
		case '.':
			tokens = append(tokens, Token{Kind: TokenDot, Ch: c, Pos: start})
		case '\\':
			if s.pos >= len(s.src) {
				return nil, &Error{Err: ErrDanglingEscape, Pattern: s.pattern, Pos: start}
			}
			esc := s.src[s.pos]
			if !isMetachar(esc) {
				return nil, &Error{Err: ErrUnknownEscape, Pattern: s.pattern, Pos: s.pos, Ch: esc}
			}
			s.pos++
			tokens = append(tokens, Token{Kind: TokenEscapedChar, Ch: esc, Pos: start})
		default:
			tokens = append(tokens, Token{Kind: TokenChar, Ch: c, Pos: start})
		}
	}

	return tokens, nil
}

// Scan tokenizes pattern in one call.
func Scan(pattern string) ([]Token, error) {
	return NewScanner(pattern).Scan()
}
