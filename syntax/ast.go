package syntax

import "strings"

// Op is the variant tag of an AST node.
type Op int

const (
	// OpEmpty matches the empty string.
	OpEmpty Op = iota

	// OpLiteral matches a single character, stored in Ch.
	OpLiteral

	// OpAnyChar matches any single character, including newline.
	OpAnyChar

	// OpConcat matches the concatenation of Sub in order. len(Sub) >= 2:
	// a concatenation of one element is that element.
	OpConcat

	// OpAlternate matches any one of Sub, preferring earlier branches.
	// len(Sub) >= 2: an alternation of one branch is that branch.
	OpAlternate

	// OpQuest matches Sub[0] zero or one time, preferring one.
	OpQuest

	// OpStar matches Sub[0] zero or more times, preferring more.
	OpStar

	// OpPlus matches Sub[0] one or more times, preferring more.
	OpPlus
)

// String returns a human-readable name for the op.
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "Empty"
	case OpLiteral:
		return "Literal"
	case OpAnyChar:
		return "AnyChar"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpQuest:
		return "Quest"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	default:
		return "Unknown"
	}
}

// Regexp is a node of the abstract syntax tree for a compiled pattern.
//
// The tree is strict: every node exclusively owns its children, there is no
// sharing and no cycles. Once returned by Parse the tree is never mutated,
// so a single compiled pattern may serve any number of concurrent matches.
//
// Only some fields are meaningful for a given Op:
//   - OpLiteral uses Ch
//   - OpConcat and OpAlternate use Sub (always length >= 2)
//   - OpQuest, OpStar and OpPlus use Sub[0]
//   - OpEmpty and OpAnyChar use neither
//
// Whether a literal was written escaped (`\.`) or plain (`a`) is not
// recorded; both collapse to OpLiteral.
type Regexp struct {
	Op  Op
	Sub []*Regexp
	Ch  rune
}

// IsQuantifier reports whether the op is one of the three postfix
// quantifiers.
func (op Op) IsQuantifier() bool {
	return op == OpQuest || op == OpStar || op == OpPlus
}

// Equal reports whether two trees are structurally identical.
func (re *Regexp) Equal(other *Regexp) bool {
	if re == nil || other == nil {
		return re == other
	}
	if re.Op != other.Op || re.Ch != other.Ch || len(re.Sub) != len(other.Sub) {
		return false
	}
	for i, sub := range re.Sub {
		if !sub.Equal(other.Sub[i]) {
			return false
		}
	}
	return true
}

// String re-derives a pattern string that parses back to an equivalent tree.
//
// The output is not necessarily the source pattern: redundant groupings
// collapse and every representable literal is escaped only when required.
// Recompiling the result yields identical match behavior on every input.
func (re *Regexp) String() string {
	var b strings.Builder
	writeRegexp(&b, re)
	return b.String()
}

// writeRegexp appends the pattern form of re to b, parenthesizing children
// only where precedence demands it.
func writeRegexp(b *strings.Builder, re *Regexp) {
	switch re.Op {
	case OpEmpty:
		// Nothing: the empty pattern.

	case OpLiteral:
		if isMetachar(re.Ch) {
			b.WriteByte('\\')
		}
		b.WriteRune(re.Ch)

	case OpAnyChar:
		b.WriteByte('.')

	case OpConcat:
		for _, sub := range re.Sub {
			// An alternation inside a concatenation needs its grouping
			// back, or the `|` would swallow the siblings.
			if sub.Op == OpAlternate {
				b.WriteByte('(')
				writeRegexp(b, sub)
				b.WriteByte(')')
			} else {
				writeRegexp(b, sub)
			}
		}

	case OpAlternate:
		for i, sub := range re.Sub {
			if i > 0 {
				b.WriteByte('|')
			}
			writeRegexp(b, sub)
		}

	case OpQuest, OpStar, OpPlus:
		sub := re.Sub[0]
		// A quantifier binds to a single atom. Anything wider than a
		// literal or wildcard must be re-grouped, and so must an Empty
		// operand, which has no standalone spelling.
		if sub.Op == OpLiteral || sub.Op == OpAnyChar {
			writeRegexp(b, sub)
		} else {
			b.WriteByte('(')
			writeRegexp(b, sub)
			b.WriteByte(')')
		}
		switch re.Op {
		case OpQuest:
			b.WriteByte('?')
		case OpStar:
			b.WriteByte('*')
		case OpPlus:
			b.WriteByte('+')
		}
	}
}

// MinLen returns the minimum number of characters any string matched by re
// can have.
func (re *Regexp) MinLen() int {
	switch re.Op {
	case OpLiteral, OpAnyChar:
		return 1
	case OpConcat:
		n := 0
		for _, sub := range re.Sub {
			n += sub.MinLen()
		}
		return n
	case OpAlternate:
		min := re.Sub[0].MinLen()
		for _, sub := range re.Sub[1:] {
			if m := sub.MinLen(); m < min {
				min = m
			}
		}
		return min
	case OpPlus:
		return re.Sub[0].MinLen()
	default:
		// OpEmpty, OpQuest, OpStar
		return 0
	}
}

// MaxLen returns the maximum number of characters any string matched by re
// can have, or -1 if the language is unbounded (the pattern contains a
// reachable `*` or `+`).
func (re *Regexp) MaxLen() int {
	switch re.Op {
	case OpLiteral, OpAnyChar:
		return 1
	case OpConcat:
		n := 0
		for _, sub := range re.Sub {
			m := sub.MaxLen()
			if m < 0 {
				return -1
			}
			n += m
		}
		return n
	case OpAlternate:
		max := 0
		for _, sub := range re.Sub {
			m := sub.MaxLen()
			if m < 0 {
				return -1
			}
			if m > max {
				max = m
			}
		}
		return max
	case OpQuest:
		return re.Sub[0].MaxLen()
	case OpStar, OpPlus:
		if re.Sub[0].MaxLen() == 0 {
			// Repeating a zero-width expression adds nothing.
			return 0
		}
		return -1
	default:
		// OpEmpty
		return 0
	}
}

// ContainsDot reports whether the pattern contains the `.` wildcard
// anywhere. A dot-free pattern over ASCII literals can only ever match
// ASCII text.
func (re *Regexp) ContainsDot() bool {
	if re.Op == OpAnyChar {
		return true
	}
	for _, sub := range re.Sub {
		if sub.ContainsDot() {
			return true
		}
	}
	return false
}

// IsASCII reports whether every literal in the pattern is an ASCII
// character.
func (re *Regexp) IsASCII() bool {
	if re.Op == OpLiteral && re.Ch >= 0x80 {
		return false
	}
	for _, sub := range re.Sub {
		if !sub.IsASCII() {
			return false
		}
	}
	return true
}
