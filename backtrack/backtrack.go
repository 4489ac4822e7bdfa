// Package backtrack implements the whole-string backtracking recognizer
// that walks a compiled pattern's AST against an input string.
//
// The recognizer threads an explicit success continuation through recursive
// calls: each node matches some of the input and then asks the continuation
// whether the rest of the obligation chain can be satisfied. Backtracking
// falls out of ordered choice: a branch or repetition count is abandoned
// exactly when its entire continuation chain fails.
//
// Matching is greedy: quantifiers try more repetitions before fewer, and
// alternation prefers earlier branches. Worst-case time is exponential under
// nested quantifiers and alternation, which is intrinsic to backtracking
// recognition; a per-call step budget turns runaway cases into
// ErrStepLimitExceeded instead of hangs.
package backtrack

import (
	"errors"

	"github.com/coregx/bregex/internal/ascii"
	"github.com/coregx/bregex/syntax"
)

// DefaultStepLimit is the step budget used by New. It is far beyond what
// any non-pathological pattern/text pair needs, so hitting it reliably
// indicates exponential blowup rather than a large input.
const DefaultStepLimit = 1 << 20

// ErrStepLimitExceeded is returned when a match exhausts its step budget.
// The match result is unknown in that case; the budget never changes the
// outcome of a match that completes within it.
var ErrStepLimitExceeded = errors.New("backtracking step limit exceeded")

// Backtracker matches input strings against one compiled pattern.
//
// The AST is never mutated and all per-match state lives on the call stack
// of IsMatch, so a single Backtracker is safe for concurrent use from
// multiple goroutines.
type Backtracker struct {
	re        *syntax.Regexp
	stepLimit int
}

// New creates a backtracker for re with the default step budget.
func New(re *syntax.Regexp) *Backtracker {
	return NewWithStepLimit(re, DefaultStepLimit)
}

// NewWithStepLimit creates a backtracker with an explicit step budget.
// A limit <= 0 selects DefaultStepLimit.
func NewWithStepLimit(re *syntax.Regexp, limit int) *Backtracker {
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	return &Backtracker{re: re, stepLimit: limit}
}

// IsMatch reports whether the entire text is recognized by the pattern.
//
// A failed match is a normal false result. The only error condition is an
// exhausted step budget, reported as ErrStepLimitExceeded with a false
// result that must not be interpreted as "no match".
func (b *Backtracker) IsMatch(text string) (bool, error) {
	s := &matchState{limit: b.stepLimit}
	if ascii.IsASCII(text) {
		// Byte positions and character positions coincide; skip the
		// rune decode entirely.
		s.text = text
		s.n = len(text)
		s.bytes = true
	} else {
		s.runes = []rune(text)
		s.n = len(s.runes)
	}

	matched := s.match(b.re, 0, func(pos int) bool {
		return pos == s.n
	})
	if s.overflow {
		return false, ErrStepLimitExceeded
	}
	return matched, nil
}

// matchState is the per-call state of one IsMatch invocation: the prepared
// input and the step accounting. Nothing here is shared across calls.
type matchState struct {
	text  string // input when bytes is true
	runes []rune // decoded input otherwise
	bytes bool
	n     int // input length in characters

	steps    int
	limit    int
	overflow bool
}

// at returns the character at position pos, which must be < n.
func (s *matchState) at(pos int) rune {
	if s.bytes {
		return rune(s.text[pos])
	}
	return s.runes[pos]
}

// match attempts to derive text[pos:] from re followed by cont. It returns
// true as soon as one full derivation chain succeeds. After a false return
// the caller must check overflow before trying alternatives: once the
// budget is gone, false means "aborted", not "failed".
func (s *matchState) match(re *syntax.Regexp, pos int, cont func(int) bool) bool {
	s.steps++
	if s.steps > s.limit {
		s.overflow = true
		return false
	}

	switch re.Op {
	case syntax.OpEmpty:
		return cont(pos)

	case syntax.OpLiteral:
		if pos < s.n && s.at(pos) == re.Ch {
			return cont(pos + 1)
		}
		return false

	case syntax.OpAnyChar:
		if pos < s.n {
			return cont(pos + 1)
		}
		return false

	case syntax.OpConcat:
		return s.matchSeq(re.Sub, pos, cont)

	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if s.match(sub, pos, cont) {
				return true
			}
			if s.overflow {
				return false
			}
		}
		return false

	case syntax.OpQuest:
		// Greedy: one occurrence first, skip only if that whole chain
		// fails.
		if s.match(re.Sub[0], pos, cont) {
			return true
		}
		if s.overflow {
			return false
		}
		return cont(pos)

	case syntax.OpStar:
		return s.matchStar(re.Sub[0], pos, cont)

	case syntax.OpPlus:
		// One mandatory occurrence, then zero-or-more.
		return s.match(re.Sub[0], pos, func(next int) bool {
			return s.matchStar(re.Sub[0], next, cont)
		})
	}

	return false
}

// matchSeq matches a concatenation: the head node with a continuation that
// matches the tail. Continuations compose right to left, ending in cont.
func (s *matchState) matchSeq(subs []*syntax.Regexp, pos int, cont func(int) bool) bool {
	if len(subs) == 0 {
		return cont(pos)
	}
	return s.match(subs[0], pos, func(next int) bool {
		return s.matchSeq(subs[1:], next, cont)
	})
}

// matchStar matches zero or more greedy repetitions of child. A repetition
// that consumed no characters refuses to repeat at the same position, which
// is what keeps patterns like (a?)* from recursing forever on zero-width
// matches.
func (s *matchState) matchStar(child *syntax.Regexp, pos int, cont func(int) bool) bool {
	if s.match(child, pos, func(next int) bool {
		if next == pos {
			return false
		}
		return s.matchStar(child, next, cont)
	}) {
		return true
	}
	if s.overflow {
		return false
	}
	return cont(pos)
}
