package bregex

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/bregex/backtrack"
	"github.com/coregx/bregex/syntax"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		// Empty pattern matches exactly the empty string.
		{"", "", true},
		{"", "a", false},

		// Plain literals, whole-string semantics.
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"abc", "abcd", false},
		{"abc", "xabc", false},

		// Alternation.
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "ab", false},
		{"a|b", "", false},
		{"cat|dog|bird", "dog", true},
		{"cat|dog|bird", "fish", false},

		// Quantifiers.
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aaab", false},
		{"a+", "", false},
		{"a+", "a", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},

		// Grouping with quantifiers.
		{"(ab)+", "ab", true},
		{"(ab)+", "abab", true},
		{"(ab)+", "aba", false},
		{"(ab)+", "", false},
		{"(a|b)*", "abba", true},
		{"(a|b)*", "abca", false},

		// Escaped metacharacters match their literal selves.
		{`a\.b`, "a.b", true},
		{`a\.b`, "axb", false},
		{`\(\)`, "()", true},
		{`\\`, `\`, true},
		{`\|`, "|", true},
		{`\*`, "*", true},

		// Dot matches any single character, including newline.
		{".", "a", true},
		{".", "\n", true},
		{".", "", false},
		{".", "ab", false},
		{"a.c", "abc", true},
		{"a.c", "a\u00e9c", true},

		// Zero-width repetition terminates.
		{"(a?)*", "aaa", true},
		{"(a?)*", "", true},
		{"(a*)*", "b", false},
		{"()*", "", true},

		// Mixed.
		{"(0|1)+", "010110", true},
		{"(0|1)+", "0120", false},
		{"ab*c?|d", "abbb", true},
		{"ab*c?|d", "d", true},
		{"ab*c?|d", "abd", false},

		// Unicode literals.
		{"дом", "дом", true},
		{"д.м", "дым", true},
		{"д*", "ддд", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"(a", syntax.ErrUnmatchedOpenParen},
		{"a)", syntax.ErrUnexpectedCloseParen},
		{`ab\`, syntax.ErrDanglingEscape},
		{`\d`, syntax.ErrUnknownEscape},
		{"*a", syntax.ErrMisplacedQuantifier},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if re != nil {
				t.Errorf("Compile(%q) returned non-nil Regex on error", tt.pattern)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
			var serr *syntax.Error
			if !errors.As(err, &serr) {
				t.Errorf("Compile(%q) error is not a *syntax.Error", tt.pattern)
			}
		})
	}
}

// Compiling a pattern's own printed form must yield an equivalent matcher.
func TestPatternRoundTrip(t *testing.T) {
	patterns := []string{
		"", "a", "abc", "a|b", "a|b|c", "(ab)+", "a*b?c+",
		`a\.b`, `\(\)`, "(a|b)*c", "x(y|z)?", "((a))", ".|..",
	}
	inputs := []string{"", "a", "b", "c", "ab", "abc", "a.b", "axb",
		"()", "abab", "xy", "xz", "x", "aaa", "cc"}

	for _, pattern := range patterns {
		re, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", pattern, err)
		}
		ast, err := syntax.Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", pattern, err)
		}
		re2, err := Compile(ast.String())
		if err != nil {
			t.Fatalf("Compile(%q) of printed form error: %v", ast.String(), err)
		}
		for _, input := range inputs {
			if a, b := re.MatchString(input), re2.MatchString(input); a != b {
				t.Errorf("pattern %q reprinted as %q: MatchString(%q) = %v vs %v",
					pattern, ast.String(), input, a, b)
			}
		}
	}
}

func TestMustCompile(t *testing.T) {
	re := MustCompile("a+b")
	if !re.MatchString("aab") {
		t.Error("MustCompile result does not match")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile of invalid pattern did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "(a") {
			t.Errorf("panic value = %v, want message naming the pattern", r)
		}
	}()
	MustCompile("(a")
}

func TestTryMatchString(t *testing.T) {
	re, err := Compile("a*b")
	if err != nil {
		t.Fatal(err)
	}
	matched, err := re.TryMatchString("aaab")
	if err != nil || !matched {
		t.Errorf("TryMatchString(aaab) = %v, %v", matched, err)
	}
	matched, err = re.TryMatchString("aaac")
	if err != nil || matched {
		t.Errorf("TryMatchString(aaac) = %v, %v", matched, err)
	}
}

func TestTryMatchStringStepLimit(t *testing.T) {
	config := DefaultConfig()
	config.StepLimit = 100
	re, err := CompileWithConfig("(a|a)*b", config)
	if err != nil {
		t.Fatal(err)
	}
	_, err = re.TryMatchString(strings.Repeat("a", 30))
	if !errors.Is(err, backtrack.ErrStepLimitExceeded) {
		t.Errorf("TryMatchString error = %v, want ErrStepLimitExceeded", err)
	}
	// MatchString swallows the budget error and reports a non-match.
	if re.MatchString(strings.Repeat("a", 30)) {
		t.Error("MatchString = true after budget exhaustion")
	}
}

func TestString(t *testing.T) {
	const pattern = `(ab)+|c\.`
	re := MustCompile(pattern)
	if re.String() != pattern {
		t.Errorf("String() = %q, want %q", re.String(), pattern)
	}
}

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a.b", `a\.b`},
		{"(a|b)*", `\(a\|b\)\*`},
		{`c:\dir`, `c:\\dir`},
		{"x+y?", `x\+y\?`},
	}
	for _, tt := range tests {
		if got := QuoteMeta(tt.in); got != tt.want {
			t.Errorf("QuoteMeta(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// QuoteMeta output compiled as a pattern must match exactly its input.
func TestQuoteMetaRoundTrip(t *testing.T) {
	inputs := []string{"a.b", "(a|b)*", `back\slash`, "x+y?z", "plain", "()"}
	for _, input := range inputs {
		re, err := Compile(QuoteMeta(input))
		if err != nil {
			t.Fatalf("Compile(QuoteMeta(%q)) error: %v", input, err)
		}
		if !re.MatchString(input) {
			t.Errorf("QuoteMeta(%q) pattern does not match its input", input)
		}
		if re.MatchString(input + "x") {
			t.Errorf("QuoteMeta(%q) pattern matches a longer string", input)
		}
	}
}

func TestStats(t *testing.T) {
	re := MustCompile("a*b")
	re.MatchString("aab")
	re.MatchString("ab")
	if re.Stats().BacktrackerSearches != 2 {
		t.Errorf("BacktrackerSearches = %d, want 2", re.Stats().BacktrackerSearches)
	}
	re.ResetStats()
	if re.Stats().BacktrackerSearches != 0 {
		t.Error("stats not zeroed by ResetStats")
	}
}

// The supported grammar is a subset of stdlib regexp syntax, so anchored
// stdlib matching must agree wherever both accept the pattern.
func TestAgainstStdlib(t *testing.T) {
	patterns := []string{
		"", "a", "abc", "a|b", "a|b|c", "a*", "a+", "a?", "(ab)+",
		"(a|b)*c", "a.c", `a\.b`, "x(y|z)?", "(0|1)+", "ab*c?|d",
	}
	inputs := []string{"", "a", "b", "c", "d", "ab", "abc", "a.b", "axb",
		"aXc", "a\nc", "xy", "xz", "x", "abab", "010", "abbb", "abd"}

	for _, pattern := range patterns {
		re := MustCompile(pattern)
		// (?s) so stdlib `.` also matches newline.
		std := regexp.MustCompile(`(?s)\A(?:` + pattern + `)\z`)
		for _, input := range inputs {
			if got, want := re.MatchString(input), std.MatchString(input); got != want {
				t.Errorf("pattern %q input %q: MatchString = %v, stdlib = %v",
					pattern, input, got, want)
			}
		}
	}
}

func BenchmarkMatchLiteral(b *testing.B) {
	re := MustCompile("hello world")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString("hello world")
	}
}

func BenchmarkMatchQuantified(b *testing.B) {
	re := MustCompile("(a|b)*c")
	input := strings.Repeat("ab", 32) + "c"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(input)
	}
}
