package literal

import (
	"unicode/utf8"

	"github.com/coregx/bregex/syntax"
)

// ExtractorConfig bounds how much work extraction may do.
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals a sequence may hold.
	// Alternations and concatenation cross products can multiply literal
	// counts; beyond this limit extraction gives up rather than return a
	// partial (and therefore unsound) prefix set. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal in bytes.
	// Longer literals are truncated and marked incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor extracts literal prefix sequences from compiled patterns.
//
// For a whole-string engine the prefix sequence serves two purposes:
//
//   - Quick reject: a non-empty sequence means every matching string starts
//     with one of the literals, so text starting with none of them cannot
//     match and the backtracker never runs.
//   - Exact sets: if every literal is complete, the sequence IS the
//     pattern's language and matching is a set-membership test.
//
// Example:
//
//	re, _ := syntax.Parse("(foo|bar)x*")
//	seq := literal.New(literal.DefaultConfig()).Prefixes(re)
//	// seq = [foo, bar], both incomplete (x* may follow)
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// maxExtractDepth caps AST recursion during extraction. Patterns nested
// deeper than this are matched without a prefilter.
const maxExtractDepth = 100

// Prefixes extracts the prefix literal sequence of re.
//
// The result is nil when no sound prefix requirement can be established:
// the pattern starts with `.`, a leading quantifier makes every prefix
// optional, or a size limit was exceeded. Otherwise every string the
// pattern matches starts with one of the returned literals, and a literal
// marked complete is itself a full match.
func (e *Extractor) Prefixes(re *syntax.Regexp) *Seq {
	seq := e.prefixes(re, 0)
	if seq.IsEmpty() {
		return nil
	}
	// A bare empty literal imposes no requirement at all.
	if !seq.IsExact() && seq.MinLiteralLen() == 0 {
		return nil
	}
	return seq
}

// prefixes is the recursive worker. A nil return means "no information".
func (e *Extractor) prefixes(re *syntax.Regexp, depth int) *Seq {
	if depth > maxExtractDepth {
		return nil
	}

	switch re.Op {
	case syntax.OpEmpty:
		// The language is exactly {""}.
		return NewSeq(NewLiteral(nil, true))

	case syntax.OpLiteral:
		b := make([]byte, utf8.RuneLen(re.Ch))
		utf8.EncodeRune(b, re.Ch)
		return NewSeq(NewLiteral(b, true))

	case syntax.OpAnyChar:
		// Matches anything; no literal requirement.
		return nil

	case syntax.OpAlternate:
		// Union of branch prefixes. One opaque branch poisons the whole
		// union: a prefix set missing that branch's strings would reject
		// inputs the pattern accepts.
		var all []Literal
		for _, sub := range re.Sub {
			seq := e.prefixes(sub, depth+1)
			if seq.IsEmpty() {
				return nil
			}
			if len(all)+seq.Len() > e.config.MaxLiterals {
				return nil
			}
			all = append(all, seq.literals...)
		}
		return NewSeq(all...)

	case syntax.OpConcat:
		return e.concatPrefixes(re.Sub, depth)

	case syntax.OpQuest:
		// L(x?) = {""} ∪ L(x). Only useful when the child set is exact;
		// otherwise the empty alternative voids any prefix requirement.
		child := e.prefixes(re.Sub[0], depth+1)
		if !child.IsExact() {
			return nil
		}
		if child.Len()+1 > e.config.MaxLiterals {
			return nil
		}
		lits := append([]Literal{NewLiteral(nil, true)}, child.literals...)
		return NewSeq(lits...)

	case syntax.OpStar:
		// The empty repetition is always allowed, so nothing is required.
		return nil

	case syntax.OpPlus:
		// At least one repetition: the child's prefixes are required, but
		// never complete, since more repetitions may follow.
		child := e.prefixes(re.Sub[0], depth+1)
		if child.IsEmpty() {
			return nil
		}
		lits := make([]Literal, child.Len())
		for i, lit := range child.literals {
			if lit.Len() == 0 {
				// An empty required prefix is no requirement.
				return nil
			}
			lits[i] = NewLiteral(lit.Bytes, false)
		}
		return NewSeq(lits...)

	default:
		return nil
	}
}

// concatPrefixes folds prefix sets across a concatenation. While every
// literal so far is complete, the next part's prefixes extend them by cross
// product; the first opaque or incomplete part freezes the set, which then
// stands as a plain prefix requirement for the whole concatenation.
func (e *Extractor) concatPrefixes(subs []*syntax.Regexp, depth int) *Seq {
	cur := []Literal{NewLiteral(nil, true)}

	for _, sub := range subs {
		seq := e.prefixes(sub, depth+1)
		if seq.IsEmpty() {
			// Nothing known about this part; what we have so far is still
			// a valid prefix of the whole, but no longer complete.
			return freeze(cur)
		}

		if len(cur)*seq.Len() > e.config.MaxLiterals {
			return freeze(cur)
		}

		cross := make([]Literal, 0, len(cur)*seq.Len())
		frozen := false
		for _, a := range cur {
			for _, b := range seq.literals {
				joined := make([]byte, 0, len(a.Bytes)+len(b.Bytes))
				joined = append(joined, a.Bytes...)
				joined = append(joined, b.Bytes...)
				complete := b.Complete
				if len(joined) > e.config.MaxLiteralLen {
					joined = joined[:e.config.MaxLiteralLen]
					complete = false
				}
				if !complete {
					frozen = true
				}
				cross = append(cross, NewLiteral(joined, complete))
			}
		}
		cur = cross
		if frozen {
			// Incomplete literals cannot be extended by later parts.
			return freeze(cur)
		}
	}

	return NewSeq(cur...)
}

// freeze marks the accumulated literals incomplete and drops the set
// entirely if that leaves an empty literal, which would impose no
// requirement.
func freeze(lits []Literal) *Seq {
	out := make([]Literal, len(lits))
	for i, lit := range lits {
		if lit.Len() == 0 {
			return nil
		}
		out[i] = NewLiteral(lit.Bytes, false)
	}
	return NewSeq(out...)
}
