package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/bregex/backtrack"
	"github.com/coregx/bregex/internal/ascii"
	"github.com/coregx/bregex/literal"
	"github.com/coregx/bregex/prefilter"
	"github.com/coregx/bregex/syntax"
)

// Engine coordinates the execution paths for one compiled pattern.
//
// Thread safety: the AST, the literal set and the prefilter are immutable
// after compilation, and backtracker state is local to each call, so any
// number of goroutines may match against the same Engine concurrently. The
// statistics counters are updated atomically.
type Engine struct {
	// stats MUST be the first field for proper 8-byte alignment of its
	// uint64 counters on 32-bit platforms.
	stats Stats

	re       *syntax.Regexp
	pattern  string
	strategy Strategy
	config   Config

	backtracker *backtrack.Backtracker
	pf          prefilter.Prefilter
	literalSet  map[string]struct{}

	// Length bounds of the pattern's language, in characters.
	// maxLen is -1 when unbounded.
	minLen int
	maxLen int

	// asciiOnly is true when the pattern has no `.` and only ASCII
	// literals, so no non-ASCII text can match.
	asciiOnly bool
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// BacktrackerSearches counts matches answered by the backtracker.
	BacktrackerSearches uint64

	// LiteralSetSearches counts matches answered by set membership.
	LiteralSetSearches uint64

	// PrefilterRejects counts inputs rejected by the prefix filter
	// without running the backtracker.
	PrefilterRejects uint64

	// QuickRejects counts inputs rejected before any search by the
	// length bounds or the ASCII pre-check.
	QuickRejects uint64
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Compilation errors come from the syntax package and carry the offending
// offset; an invalid configuration fails with ErrInvalidConfig.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	re, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		re:        re,
		pattern:   pattern,
		config:    config,
		minLen:    re.MinLen(),
		maxLen:    re.MaxLen(),
		asciiOnly: re.IsASCII() && !re.ContainsDot(),
	}

	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: config.MaxLiteralLen,
	})
	seq := extractor.Prefixes(re)

	e.strategy = SelectStrategy(seq, config)
	switch e.strategy {
	case UseLiteralSet:
		e.literalSet = make(map[string]struct{}, seq.Len())
		for _, lit := range seq.Strings() {
			e.literalSet[lit] = struct{}{}
		}
	case UsePrefilteredBacktracker:
		e.pf = prefilter.New(seq)
		if e.pf == nil {
			e.strategy = UseBacktracker
		}
		e.backtracker = backtrack.NewWithStepLimit(re, config.StepLimit)
	default:
		e.backtracker = backtrack.NewWithStepLimit(re, config.StepLimit)
	}

	return e, nil
}

// IsMatch reports whether the pattern recognizes the entire text.
//
// If the backtracking step budget is exhausted the result is false; use
// TryMatch to distinguish that case from an ordinary non-match.
func (e *Engine) IsMatch(text string) bool {
	matched, _ := e.TryMatch(text)
	return matched
}

// TryMatch reports whether the pattern recognizes the entire text.
//
// A failed match is a normal (false, nil) outcome. The only error is
// backtrack.ErrStepLimitExceeded, in which case the boolean carries no
// information.
func (e *Engine) TryMatch(text string) (bool, error) {
	if !e.admits(text) {
		atomic.AddUint64(&e.stats.QuickRejects, 1)
		return false, nil
	}

	switch e.strategy {
	case UseLiteralSet:
		atomic.AddUint64(&e.stats.LiteralSetSearches, 1)
		_, ok := e.literalSet[text]
		return ok, nil

	case UsePrefilteredBacktracker:
		if !e.pf.Accepts([]byte(text)) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false, nil
		}
		fallthrough

	default:
		atomic.AddUint64(&e.stats.BacktrackerSearches, 1)
		return e.backtracker.IsMatch(text)
	}
}

// admits checks cheap necessary conditions on text: the character count
// against the pattern's language bounds, and, for dot-free ASCII patterns,
// that the text itself is ASCII.
func (e *Engine) admits(text string) bool {
	var n int
	if ascii.IsASCII(text) {
		n = len(text)
	} else {
		if e.asciiOnly {
			return false
		}
		n = utf8.RuneCountInString(text)
	}
	if n < e.minLen {
		return false
	}
	return e.maxLen < 0 || n <= e.maxLen
}

// Strategy returns the execution path selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Pattern returns the source pattern the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Syntax returns the compiled AST. Callers must not mutate it.
func (e *Engine) Syntax() *syntax.Regexp {
	return e.re
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		BacktrackerSearches: atomic.LoadUint64(&e.stats.BacktrackerSearches),
		LiteralSetSearches:  atomic.LoadUint64(&e.stats.LiteralSetSearches),
		PrefilterRejects:    atomic.LoadUint64(&e.stats.PrefilterRejects),
		QuickRejects:        atomic.LoadUint64(&e.stats.QuickRejects),
	}
}

// ResetStats zeroes the execution statistics.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.BacktrackerSearches, 0)
	atomic.StoreUint64(&e.stats.LiteralSetSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.QuickRejects, 0)
}
