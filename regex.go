// Package bregex provides a small backtracking regular-expression engine
// built around whole-string recognition.
//
// A pattern is compiled once into an immutable AST and matched any number of
// times, concurrently if desired. The supported syntax is deliberately
// minimal:
//   - `|` alternation (lowest precedence)
//   - concatenation by juxtaposition
//   - postfix `?`, `*`, `+` quantifiers (highest precedence, greedy,
//     binding to the single preceding atom or group)
//   - `(...)` grouping
//   - `.` any single character
//   - `\` escaping a metacharacter to its literal self
//
// There are no character classes, anchors or backreferences, and matching is
// whole-string: the pattern must consume the entire input, not merely occur
// inside it.
//
// Basic usage:
//
//	re, err := bregex.Compile("(ab)+|c?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abab") // true
//	re.MatchString("abc")  // false
//
// Behind the public API a meta-engine picks an execution path per pattern:
// finite literal languages are answered by set membership, patterns with
// required prefixes get an Aho-Corasick or single-prefix quick-reject
// filter, and everything else runs the backtracking recognizer directly.
// Pathological patterns are bounded by a step budget; see TryMatchString.
package bregex

import (
	"strings"

	"github.com/coregx/bregex/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is safe for concurrent use by multiple goroutines.
//
// Example:
//
//	re := bregex.MustCompile("a*b")
//	if re.MatchString("aaab") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Config is the compile-time configuration, re-exported from the meta
// package for convenience.
type Config = meta.Config

// Compile compiles a pattern into a Regex.
//
// On failure the returned error is a *syntax.Error describing the problem
// and the rune offset of the offending character.
//
// Example:
//
//	re, err := bregex.Compile(`a\.b|c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is intended for patterns known to be valid at program start:
//
//	var binaryish = bregex.MustCompile("(0|1)+")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("bregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := bregex.DefaultConfig()
//	config.StepLimit = 10_000 // fail fast on pathological patterns
//	re, err := bregex.CompileWithConfig("(a|aa)*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default configuration for compilation.
// Customize it and pass the result to CompileWithConfig.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// MatchString reports whether the pattern recognizes the entire string s.
//
// If the backtracking step budget is exhausted, which can happen only for
// pathological pattern and input pairs, the result is false. Callers that
// need to distinguish that case should use TryMatchString.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// Match reports whether the pattern recognizes the entire byte slice b,
// interpreted as UTF-8 text.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// TryMatchString is MatchString with an explicit error channel for the step
// budget. A non-match is a normal (false, nil) outcome; the only error is
// backtrack.ErrStepLimitExceeded, and the boolean is then meaningless.
//
// Example:
//
//	matched, err := re.TryMatchString(input)
//	if errors.Is(err, backtrack.ErrStepLimitExceeded) {
//	    // pattern too expensive for this input; treat as rejected
//	}
func (r *Regex) TryMatchString(s string) (bool, error) {
	return r.engine.TryMatch(s)
}

// String returns the source pattern the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Stats returns a snapshot of the engine's execution counters.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats zeroes the engine's execution counters.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}

// QuoteMeta returns a pattern that matches the literal text s, escaping
// every metacharacter in it.
//
// Example:
//
//	escaped := bregex.QuoteMeta("a.b")
//	// escaped = `a\.b`
//	bregex.MustCompile(escaped).MatchString("a.b") // true
func QuoteMeta(s string) string {
	const special = `()\|*.?+`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
