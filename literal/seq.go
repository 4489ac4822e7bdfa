// Package literal provides types and operations for representing and
// manipulating literal byte sequences extracted from compiled patterns.
//
// The primary use case is prefilter optimization: by extracting the literal
// prefixes a pattern demands (e.g. "ab" from /ab(c|d)*/), the engine can
// reject non-candidate inputs with a cheap string comparison before running
// the backtracker. When extraction proves the pattern's whole language is a
// finite set of literals, matching degenerates to set membership and the
// backtracker is bypassed entirely.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that may begin (or be) a match
//   - A Seq is a set of alternative literals (e.g. from /foo|bar/)
//   - A Seq is exact when its literals are the pattern's entire language
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether this literal is an entire match
// (true) or just a required prefix of potential matches (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /ab.*/ → Literal{[]byte("ab"), false} (prefix only)
type Literal struct {
	// Bytes contains the literal byte sequence, UTF-8 encoded.
	Bytes []byte

	// Complete indicates whether this literal is an entire match on its
	// own. If every literal in a Seq is complete and extraction lost no
	// information, matching the pattern is a set-membership test.
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals extracted from a pattern.
//
// A nil or empty Seq means "no information": extraction could not establish
// any literal requirement, and the engine must fall back to unfiltered
// backtracking. A non-empty Seq guarantees that every matching string starts
// with one of its literals.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence carries no literals, i.e. no
// prefilter can be built from it.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// IsExact reports whether every literal in the sequence is complete.
//
// For a Seq produced by Extractor.Prefixes, exactness means the pattern's
// language is precisely the literal set: the engine may answer matches by
// set membership without ever running the backtracker.
func (s *Seq) IsExact() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLiteralLen returns the length of the shortest literal in the sequence,
// or 0 for an empty sequence. Prefilter selection uses this to reject
// sequences whose literals are too short to filter effectively.
func (s *Seq) MinLiteralLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if len(lit.Bytes) < min {
			min = len(lit.Bytes)
		}
	}
	return min
}

// Strings returns the literal set as strings, preserving order. Intended
// for building lookup tables and for tests.
func (s *Seq) Strings() []string {
	if s.IsEmpty() {
		return nil
	}
	out := make([]string, len(s.literals))
	for i, lit := range s.literals {
		out[i] = string(lit.Bytes)
	}
	return out
}

// Minimize removes duplicate literals and, for prefix filtering, literals
// shadowed by one of their own prefixes: if "foo" is present and incomplete,
// "foobar" is redundant as a filter because any text starting with "foobar"
// also starts with "foo".
//
// Exact sequences only lose duplicates; dropping a shadowed complete literal
// would change the represented language.
func (s *Seq) Minimize() {
	if s.Len() <= 1 {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return bytes.Compare(s.literals[i].Bytes, s.literals[j].Bytes) < 0
	})

	kept := s.literals[:0]
	for _, lit := range s.literals {
		if len(kept) > 0 {
			prev := &kept[len(kept)-1]
			if bytes.Equal(prev.Bytes, lit.Bytes) {
				prev.Complete = prev.Complete && lit.Complete
				continue
			}
			if !prev.Complete && bytes.HasPrefix(lit.Bytes, prev.Bytes) {
				// prev already filters everything lit would.
				continue
			}
		}
		kept = append(kept, lit)
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest prefix shared by every literal in
// the sequence, or nil for an empty sequence.
//
// When the common prefix is non-trivial, a single-prefix filter over it can
// replace a multi-literal automaton.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return nil
	}
	lcp := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		lcp = commonPrefix(lcp, lit.Bytes)
		if len(lcp) == 0 {
			break
		}
	}
	return lcp
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
