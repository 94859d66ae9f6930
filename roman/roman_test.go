package roman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentar/astroion/roman"
)

// TestEncode_KnownValues verifies a spread of hand-checked encodings.
func TestEncode_KnownValues(t *testing.T) {
	cases := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		900:  "CM",
		1999: "MCMXCIX",
		2000: "MM",
		3888: "MMMDCCCLXXXVIII",
		3999: "MMMCMXCIX",
	}
	for n, want := range cases {
		got, err := roman.Encode(n)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, want, got, "Encode(%d)", n)
	}
}

// TestEncode_OutOfRange ensures values outside [1, 3999] error ErrOutOfRange.
func TestEncode_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 4000, 100000} {
		_, err := roman.Encode(n)
		assert.ErrorIs(t, err, roman.ErrOutOfRange, "Encode(%d)", n)
	}
}

// TestDecode_RoundTrip exercises the full domain: every encodable integer
// must decode back to itself.
func TestDecode_RoundTrip(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		s, err := roman.Encode(n)
		require.NoError(t, err, "Encode(%d)", n)

		got, err := roman.Decode(s)
		require.NoError(t, err, "Decode(%q)", s)
		require.Equal(t, n, got, "Decode(Encode(%d))", n)
	}
}

// TestDecode_CaseInsensitive verifies lowercase and mixed-case inputs decode.
func TestDecode_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"xiv", "XIV", "xIv"} {
		got, err := roman.Decode(s)
		require.NoError(t, err, "Decode(%q)", s)
		assert.Equal(t, 14, got, "Decode(%q)", s)
	}
}

// TestDecode_RejectsNonCanonical ensures decodable-but-non-canonical strings
// fail the closed-loop check rather than being normalized.
func TestDecode_RejectsNonCanonical(t *testing.T) {
	for _, s := range []string{"IIII", "IL", "VV", "VVVIV", "IM", "XM", "IIX"} {
		_, err := roman.Decode(s)
		assert.ErrorIs(t, err, roman.ErrInvalidNumeral, "Decode(%q)", s)
	}
}

// TestDecode_RejectsGarbage ensures non-numeral characters and empty input
// error ErrInvalidNumeral.
func TestDecode_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "MCMXCIXa", "M C", "14"} {
		_, err := roman.Decode(s)
		assert.ErrorIs(t, err, roman.ErrInvalidNumeral, "Decode(%q)", s)
	}
}
