package roman

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the codec.
var (
	// ErrOutOfRange indicates an Encode argument outside [1, 3999].
	ErrOutOfRange = errors.New("roman: integer must be between 1 and 3999")

	// ErrInvalidNumeral indicates a Decode input that contains a non-numeral
	// character or is not the canonical subtractive form of any integer.
	ErrInvalidNumeral = errors.New("roman: input is not a valid roman numeral")
)

// pair binds a subtractive-notation value to its symbol. The table is ordered
// by descending value; Encode consumes it greedily.
type pair struct {
	value  int
	symbol string
}

var pairs = [...]pair{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// faceValue maps each numeral character to its positional base value.
var faceValue = map[byte]int{
	'M': 1000, 'D': 500, 'C': 100, 'L': 50, 'X': 10, 'V': 5, 'I': 1,
}

// Encode converts n into its canonical roman numeral.
//
// The greedy reduction over the subtractive-pair table always yields the
// unique minimal-symbol-count form, so Encode(Decode(s)) == s for every
// canonical s and Decode(Encode(n)) == n for every n in range.
//
// Returns ErrOutOfRange unless 1 <= n <= 3999.
func Encode(n int) (string, error) {
	if n <= 0 || n >= 4000 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	var b strings.Builder
	for _, p := range pairs {
		for n >= p.value {
			b.WriteString(p.symbol)
			n -= p.value
		}
	}

	return b.String(), nil
}

// Decode converts a roman numeral into its integer value. Input
// capitalization is irrelevant; "xiv", "XIV" and "xIv" all decode to 14.
//
// Each character contributes its face value, negated when the following
// character has a strictly larger face value (the subtractive rule). The
// signed sum is then re-encoded and compared byte-for-byte against the
// uppercased input; any mismatch means the input was not canonical and
// Decode fails with ErrInvalidNumeral.
func Decode(s string) (int, error) {
	upper := strings.ToUpper(s)

	sum := 0
	for i := 0; i < len(upper); i++ {
		v, ok := faceValue[upper[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
		}
		if i+1 < len(upper) {
			if next, ok := faceValue[upper[i+1]]; ok && next > v {
				sum -= v
				continue
			}
		}
		sum += v
	}

	// Closed-loop canonical check. Also rejects the empty string, whose sum
	// of zero is not encodable.
	canonical, err := Encode(sum)
	if err != nil || canonical != upper {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
	}

	return sum, nil
}
