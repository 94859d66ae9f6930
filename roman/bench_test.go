package roman_test

import (
	"testing"

	"github.com/quentar/astroion/roman"
)

// BenchmarkEncode measures greedy encoding across the full range.
func BenchmarkEncode(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := i%3999 + 1
		if _, err := roman.Encode(n); err != nil {
			b.Fatalf("Encode(%d) failed: %v", n, err)
		}
	}
}

// BenchmarkDecode measures decoding including the closed-loop canonical check.
func BenchmarkDecode(b *testing.B) {
	// Pre-encode the full range so the loop measures Decode alone.
	numerals := make([]string, 3999)
	for n := 1; n <= 3999; n++ {
		s, err := roman.Encode(n)
		if err != nil {
			b.Fatalf("Encode(%d) failed: %v", n, err)
		}
		numerals[n-1] = s
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := numerals[i%len(numerals)]
		if _, err := roman.Decode(s); err != nil {
			b.Fatalf("Decode(%q) failed: %v", s, err)
		}
	}
}
