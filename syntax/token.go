package syntax

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	// TokenChar is an ordinary character that matches itself.
	TokenChar TokenKind = iota

	// TokenEscapedChar is a metacharacter made literal by a backslash,
	// e.g. `\.` or `\|`. It matches itself, exactly like TokenChar; the
	// distinction exists only for diagnostics.
	TokenEscapedChar

	// TokenDot is the `.` wildcard (any single character).
	TokenDot

	// TokenPipe is the `|` alternation operator.
	TokenPipe

	// TokenStar is the `*` quantifier (zero or more).
	TokenStar

	// TokenPlus is the `+` quantifier (one or more).
	TokenPlus

	// TokenQuestion is the `?` quantifier (zero or one).
	TokenQuestion

	// TokenLParen is `(`, opening a group.
	TokenLParen

	// TokenRParen is `)`, closing a group.
	TokenRParen
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenChar:
		return "Char"
	case TokenEscapedChar:
		return "EscapedChar"
	case TokenDot:
		return "Dot"
	case TokenPipe:
		return "Pipe"
	case TokenStar:
		return "Star"
	case TokenPlus:
		return "Plus"
	case TokenQuestion:
		return "Question"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a single lexical atom of a pattern.
//
// Pos is the rune offset of the token's first character in the source
// pattern (for escaped characters, the offset of the backslash). Tokens are
// produced once by the Scanner, consumed left to right by the Parser, and
// never mutated.
type Token struct {
	// Kind is the lexical category.
	Kind TokenKind

	// Ch is the character payload. It is meaningful only for TokenChar and
	// TokenEscapedChar; for structural tokens it holds the metacharacter
	// itself, which is convenient for diagnostics.
	Ch rune

	// Pos is the rune offset in the source pattern.
	Pos int
}

// String returns a debug representation like `Char('a')@3`.
func (t Token) String() string {
	switch t.Kind {
	case TokenChar, TokenEscapedChar:
		return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Ch, t.Pos)
	default:
		return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
	}
}

// isQuantifier reports whether the token is a postfix quantifier.
func (t Token) isQuantifier() bool {
	return t.Kind == TokenStar || t.Kind == TokenPlus || t.Kind == TokenQuestion
}
