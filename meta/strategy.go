package meta

import (
	"fmt"

	"github.com/coregx/bregex/literal"
)

// Strategy identifies the execution path selected for a pattern.
type Strategy int

const (
	// UseBacktracker runs the backtracking recognizer unassisted.
	// Selected when literal extraction yields nothing usable: the pattern
	// starts with `.`, a leading quantifier, or exceeded extraction limits.
	UseBacktracker Strategy = iota

	// UsePrefilteredBacktracker checks a required-prefix filter first and
	// runs the backtracker only on candidate text.
	// Selected when extraction found prefix literals but the language is
	// not a finite literal set.
	UsePrefilteredBacktracker

	// UseLiteralSet answers matches by set membership.
	// Selected when extraction proved the pattern's language is exactly a
	// finite set of literals, e.g. `foo|ba(r|z)` or `a?b`.
	UseLiteralSet
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktracker:
		return "Backtracker"
	case UsePrefilteredBacktracker:
		return "PrefilteredBacktracker"
	case UseLiteralSet:
		return "LiteralSet"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// SelectStrategy chooses the execution path from the extracted prefix
// literals. The prefilter itself may still fail to build (and the engine
// then degrades to UseBacktracker); this function only encodes the policy.
func SelectStrategy(seq *literal.Seq, config Config) Strategy {
	switch {
	case config.EnableLiteralSet && seq.IsExact():
		return UseLiteralSet
	case config.EnablePrefilter && !seq.IsEmpty():
		return UsePrefilteredBacktracker
	default:
		return UseBacktracker
	}
}

// StrategyReason returns a short explanation of why a strategy applies to
// the given literal sequence, for debugging and tuning.
func StrategyReason(s Strategy, seq *literal.Seq) string {
	switch s {
	case UseLiteralSet:
		return fmt.Sprintf("language is a finite set of %d literals", seq.Len())
	case UsePrefilteredBacktracker:
		return fmt.Sprintf("%d required prefix literals available", seq.Len())
	default:
		if seq.IsEmpty() {
			return "no literal requirement could be extracted"
		}
		return "literal paths disabled by config"
	}
}
