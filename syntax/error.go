// Package syntax implements the pattern compiler front end: a scanner that
// turns a pattern string into tokens, a recursive-descent parser that builds
// an abstract syntax tree, and the AST type itself.
//
// The grammar is deliberately small:
//
//	Regexp        = Concatenation { "|" Concatenation } .
//	Concatenation = { Primary } .
//	Primary       = ( Match | Group ) [ "?" | "*" | "+" ] .
//	Group         = "(" Regexp ")" .
//	Match         = "." | character | "\" metacharacter .
//
// Alternation binds loosest, quantifiers tightest. There are no character
// classes, anchors or backreferences. A parsed Regexp is immutable and safe
// to share across goroutines.
//
// Basic usage:
//
//	re, err := syntax.Parse("(ab)+|c?")
//	if err != nil {
//	    var serr *syntax.Error
//	    if errors.As(err, &serr) {
//	        fmt.Println(serr.Pos, serr.Err)
//	    }
//	}
package syntax

import (
	"errors"
	"fmt"
)

// Common compilation errors. All of them are surfaced wrapped in *Error,
// which adds the pattern and the offending offset.
var (
	// ErrDanglingEscape indicates a `\` as the last pattern character.
	ErrDanglingEscape = errors.New("dangling escape at end of pattern")

	// ErrUnknownEscape indicates `\` followed by a character that is not an
	// escapable metacharacter.
	ErrUnknownEscape = errors.New("unknown escaped character")

	// ErrUnmatchedOpenParen indicates a `(` with no matching `)`.
	ErrUnmatchedOpenParen = errors.New("unmatched open parenthesis")

	// ErrUnexpectedCloseParen indicates a `)` outside any open group.
	ErrUnexpectedCloseParen = errors.New("unexpected close parenthesis")

	// ErrUnexpectedEOF indicates the pattern ended where a production
	// still required input.
	ErrUnexpectedEOF = errors.New("unexpected end of pattern")
)

// Error is a scanner or parser failure tied to a position in the pattern.
//
// Pos is a rune offset, not a byte offset, so it lines up with what a user
// sees when counting characters. Ch carries the offending character when one
// exists (unknown escapes, stray parentheses); it is zero otherwise.
type Error struct {
	// Err is one of the sentinel errors above.
	Err error

	// Pattern is the full source pattern being compiled.
	Pattern string

	// Pos is the rune offset of the offending character.
	Pos int

	// Ch is the offending character, if meaningful.
	Ch rune
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Ch != 0 {
		return fmt.Sprintf("parsing %q at offset %d: %v: %q", e.Pattern, e.Pos, e.Err, e.Ch)
	}
	return fmt.Sprintf("parsing %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}
