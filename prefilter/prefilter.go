// Package prefilter provides fast candidate rejection for whole-string
// matching using literal sequences extracted from a pattern.
//
// Every string a pattern matches must start with one of its extracted prefix
// literals. A prefilter checks that requirement with a cheap comparison, so
// text that cannot possibly match is rejected before the backtracker runs.
// A prefilter never accepts on its own: text that passes still has to be
// verified by the full engine.
//
// The package selects the filter structure from the literal sequence:
//   - Single literal → direct prefix comparison
//   - Literals sharing a useful common prefix → comparison against that prefix
//   - Several distinct literals → Aho-Corasick automaton, queried at offset 0
//
// Example usage:
//
//	re, _ := syntax.Parse("(hello|world)x*")
//	seq := literal.New(literal.DefaultConfig()).Prefixes(re)
//	pf := prefilter.New(seq)
//	if pf != nil && !pf.Accepts([]byte("goodbye")) {
//	    // cannot match; skip the backtracker
//	}
package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/bregex/literal"
)

// minFilterLiteralLen is the shortest literal worth filtering on. Checking
// a required first byte is already cheaper than entering the backtracker,
// so even single-byte literals qualify.
const minFilterLiteralLen = 1

// Prefilter rejects text that cannot match the pattern it was built for.
type Prefilter interface {
	// Accepts reports whether text starts with one of the required prefix
	// literals. False means the text cannot match; true means it must
	// still be verified by the full engine.
	Accepts(text []byte) bool

	// HeapBytes returns the approximate heap memory held by the filter,
	// for profiling and memory budgeting.
	HeapBytes() int
}

// New builds a prefilter for the given prefix literal sequence, or nil when
// the sequence provides nothing worth filtering on (empty, or literals too
// short to reject anything).
//
// The sequence is minimized in place as part of construction.
func New(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLiteralLen() < minFilterLiteralLen {
		return nil
	}
	seq.Minimize()

	if seq.Len() == 1 {
		return &prefixPrefilter{prefix: seq.Get(0).Bytes}
	}

	// A shared prefix of at least two bytes filters as well as the full
	// set and needs no automaton.
	if lcp := seq.LongestCommonPrefix(); len(lcp) >= 2 {
		return &prefixPrefilter{prefix: lcp}
	}

	return newAhoCorasickPrefilter(seq)
}

// prefixPrefilter rejects text not starting with one fixed byte sequence.
type prefixPrefilter struct {
	prefix []byte
}

// Accepts implements Prefilter.
func (p *prefixPrefilter) Accepts(text []byte) bool {
	return bytes.HasPrefix(text, p.prefix)
}

// HeapBytes implements Prefilter.
func (p *prefixPrefilter) HeapBytes() int {
	return len(p.prefix)
}

// String returns a debug description.
func (p *prefixPrefilter) String() string {
	return fmt.Sprintf("prefix(%q)", p.prefix)
}

// ahoCorasickPrefilter rejects text that starts with none of a set of
// literals, using a multi-pattern automaton. The automaton reports the
// leftmost occurrence of any literal; a leftmost occurrence after offset 0
// means no literal sits at the start of the text.
type ahoCorasickPrefilter struct {
	auto      *ahocorasick.Automaton
	heapBytes int
}

// newAhoCorasickPrefilter builds the automaton over the literal set.
// Returns nil if automaton construction fails, which simply disables
// prefiltering for the pattern.
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	total := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		total += len(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{
		auto: auto,
		// Rough estimate: transition tables dominate, scaling with the
		// total pattern bytes.
		heapBytes: total * 16,
	}
}

// Accepts implements Prefilter.
func (p *ahoCorasickPrefilter) Accepts(text []byte) bool {
	m := p.auto.Find(text, 0)
	return m != nil && m.Start == 0
}

// HeapBytes implements Prefilter.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.heapBytes
}

// String returns a debug description.
func (p *ahoCorasickPrefilter) String() string {
	return "aho-corasick"
}
