// Package meta implements the meta-engine orchestrator that selects how a
// compiled pattern is matched.
//
// The meta-engine coordinates three execution paths:
//   - Literal set: the pattern's language is a finite set of literals, so
//     matching is a hash lookup and the backtracker never runs
//   - Prefiltered backtracker: extracted prefix literals reject
//     non-candidate text before the backtracker is consulted
//   - Backtracker: plain continuation-passing backtracking over the AST
//
// Strategy selection happens once at compile time, based on literal
// extraction. Length bounds derived from the AST are applied to every path
// as a cheap pre-reject.
package meta

import "errors"

// ErrInvalidConfig indicates an invalid configuration was provided.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force plain backtracking
//	engine, err := meta.CompileWithConfig("(a|b)c*", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When false, no prefilter is built even if literals are available.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralSet enables the literal-set fast path for patterns
	// whose language is a finite set of literals (e.g. `foo|ba(r|z)`).
	// Default: true
	EnableLiteralSet bool

	// StepLimit bounds the number of backtracking steps a single match
	// may take before failing with ErrStepLimitExceeded. Zero selects
	// backtrack.DefaultStepLimit. The limit never changes the result of
	// a match that completes within it.
	// Default: 0 (library default)
	StepLimit int

	// MaxLiterals limits how many literals extraction may collect.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal in bytes.
	// Default: 64
	MaxLiteralLen int
}

// DefaultConfig returns the default meta-engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		EnableLiteralSet: true,
		StepLimit:        0,
		MaxLiterals:      64,
		MaxLiteralLen:    64,
	}
}

// validate rejects configurations that cannot be honored.
func (c Config) validate() error {
	if c.StepLimit < 0 || c.MaxLiterals < 0 || c.MaxLiteralLen < 0 {
		return ErrInvalidConfig
	}
	return nil
}
