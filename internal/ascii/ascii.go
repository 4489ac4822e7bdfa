// Package ascii provides fast all-ASCII detection for the matcher's input
// fast path. When both pattern and text are ASCII-only, the engine indexes
// bytes directly and skips UTF-8 decoding entirely.
package ascii

// IsASCII reports whether every byte of s is ASCII (< 0x80).
//
// The loop folds 8 bytes at a time into a single OR before testing the high
// bit, which lets the compiler keep the accumulator in a register; the tail
// is handled byte by byte.
func IsASCII(s string) bool {
	n := len(s)
	i := 0
	for ; i+8 <= n; i += 8 {
		or := s[i] | s[i+1] | s[i+2] | s[i+3] | s[i+4] | s[i+5] | s[i+6] | s[i+7]
		if or&0x80 != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
