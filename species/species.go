package species

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quentar/astroion/elements"
	"github.com/quentar/astroion/roman"
)

// Sentinel errors returned by Parse. Registry errors
// (elements.ErrUnknownSymbol, elements.ErrUnknownAtomicNumber) pass through
// unwrapped.
var (
	// ErrMalformedSpecies indicates input that matches neither accepted
	// grammar shape, or an ionization token that is neither a roman numeral
	// nor an integer.
	ErrMalformedSpecies = errors.New(`species: expecting notation like "Si 2", "Si2" or "Si II"`)

	// ErrIonizationOutOfRange indicates a resolved ionization stage outside
	// [1, atomic number].
	ErrIonizationOutOfRange = errors.New("species: ionization stage out of range for element")
)

// Identifier is the canonical species representation: an atomic number and
// a zero-based ion number (0 = neutral, 1 = singly ionized, …). Display
// strings are derived from it, never stored.
type Identifier struct {
	AtomicNumber int
	IonNumber    int
}

// Parse reads a species string against reg and returns its Identifier.
//
// Resolution order for the ionization token: roman numeral first, plain
// integer second. The resulting 1-based stage must lie in
// [1, atomic number]; Parse returns the zero-based ion number, stage-1.
func Parse(reg *elements.Registry, raw string) (Identifier, error) {
	symbolTok, ionTok, ok := splitSymbolDigits(raw)
	if !ok {
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			return Identifier{}, fmt.Errorf("%w: %q", ErrMalformedSpecies, raw)
		}
		symbolTok, ionTok = fields[0], fields[1]
	}

	z, err := reg.AtomicNumber(symbolTok)
	if err != nil {
		// The shape was valid; surface the more specific registry error.
		return Identifier{}, err
	}

	stage, err := resolveIonToken(ionTok)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: unreadable ionization token %q", ErrMalformedSpecies, ionTok)
	}
	if stage < 1 || stage > z {
		return Identifier{}, fmt.Errorf("%w: %q (stage %d, atomic number %d)",
			ErrIonizationOutOfRange, raw, stage, z)
	}

	return Identifier{AtomicNumber: z, IonNumber: stage - 1}, nil
}

// Format renders id as "<symbol> <stage>", with the 1-based stage written as
// a roman numeral when useRoman is set and as a decimal integer otherwise.
// The atomic number is trusted to satisfy registry bounds at this layer;
// violations surface as elements.ErrUnknownAtomicNumber.
func Format(reg *elements.Registry, id Identifier, useRoman bool) (string, error) {
	symbol, err := reg.Symbol(id.AtomicNumber)
	if err != nil {
		return "", err
	}

	if useRoman {
		numeral, err := roman.Encode(id.IonNumber + 1)
		if err != nil {
			return "", err
		}

		return symbol + " " + numeral, nil
	}

	return fmt.Sprintf("%s %d", symbol, id.IonNumber+1), nil
}

// splitSymbolDigits matches the adjacent form: a leading alphabetic run,
// zero or more spaces or tabs, and a trailing digit run consuming the rest
// of the input. Leading and trailing whitespace around the whole string is
// ignored.
func splitSymbolDigits(raw string) (symbolTok, ionTok string, ok bool) {
	s := strings.TrimSpace(raw)

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}

	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}

	k := j
	for k < len(s) && isDigit(s[k]) {
		k++
	}
	if k == j || k != len(s) {
		return "", "", false
	}

	return s[:i], s[j:], true
}

// resolveIonToken reads a 1-based ionization stage: roman numeral first,
// non-negative integer fallback.
func resolveIonToken(tok string) (int, error) {
	if stage, err := roman.Decode(tok); err == nil {
		return stage, nil
	}

	stage, err := strconv.Atoi(tok)
	if err != nil || stage < 0 {
		return 0, fmt.Errorf("species: ionization token %q is neither roman nor integer", tok)
	}

	return stage, nil
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
