package bregex

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// A single compiled Regex must be usable from many goroutines at once.
func TestConcurrentMatch(t *testing.T) {
	// One pattern per execution path, plus a rune-mode pattern.
	patterns := []string{"(a|b)*c", "foo|bar", "(ab)+x*", "д.м"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			re := MustCompile(pattern)

			inputs := []struct {
				text string
				want bool
			}{
				{"", false},
				{"c", pattern == "(a|b)*c"},
				{"foo", pattern == "foo|bar"},
				{"ababx", pattern == "(ab)+x*"},
				{"дым", pattern == "д.м"},
				{strings.Repeat("ab", 20) + "c", pattern == "(a|b)*c"},
			}

			const goroutines = 16
			const iterations = 200

			var wg sync.WaitGroup
			errs := make(chan string, goroutines)
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < iterations; i++ {
						in := inputs[i%len(inputs)]
						if got := re.MatchString(in.text); got != in.want {
							select {
							case errs <- fmt.Sprintf("MatchString(%q) = %v, want %v", in.text, got, in.want):
							default:
							}
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for msg := range errs {
				t.Error(msg)
			}
		})
	}
}

func TestConcurrentStats(t *testing.T) {
	re := MustCompile("a*b")

	const goroutines = 8
	const iterations = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				re.MatchString("aaab")
				re.Stats()
			}
		}()
	}
	wg.Wait()

	if got := re.Stats().BacktrackerSearches; got != goroutines*iterations {
		t.Errorf("BacktrackerSearches = %d, want %d", got, goroutines*iterations)
	}
}
