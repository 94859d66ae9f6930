package elements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors returned by registry lookups and construction.
var (
	// ErrUnknownSymbol indicates a symbol absent from the registry after
	// normalization.
	ErrUnknownSymbol = errors.New("elements: unknown element symbol")

	// ErrUnknownAtomicNumber indicates an atomic number absent from the
	// registry.
	ErrUnknownAtomicNumber = errors.New("elements: unknown atomic number")

	// ErrBadTable indicates a malformed line in a Load input table.
	ErrBadTable = errors.New("elements: malformed symbol table")
)

// Registry is an immutable bijection between atomic numbers and element
// symbols. Symbols are stored in canonical capitalization (see Reformat).
// A Registry is safe for unsynchronized concurrent reads.
type Registry struct {
	bySymbol map[string]int
	byNumber map[int]string
}

// Load builds a Registry from an ordered table of "<atomic_number> <symbol>"
// records, one per line. Blank lines and lines starting with '#' are
// skipped. Lines that do not hold exactly two fields, or whose first field
// is not a positive integer, fail with ErrBadTable.
//
// Symbols are normalized via Reformat on the way in, so the table may use
// any capitalization. Bijectivity of the table is a precondition, not
// validated here.
func Load(r io.Reader) (*Registry, error) {
	reg := &Registry{
		bySymbol: make(map[string]int),
		byNumber: make(map[int]string),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadTable, line, text)
		}
		z, err := strconv.Atoi(fields[0])
		if err != nil || z <= 0 {
			return nil, fmt.Errorf("%w: line %d: bad atomic number %q", ErrBadTable, line, fields[0])
		}

		symbol := Reformat(fields[1])
		reg.bySymbol[symbol] = z
		reg.byNumber[z] = symbol
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	return reg, nil
}

// AtomicNumber resolves a symbol, in any capitalization, to its atomic
// number. Returns ErrUnknownSymbol when the normalized symbol is not in the
// registry; the error carries the raw input, not the normalized form.
func (r *Registry) AtomicNumber(symbol string) (int, error) {
	z, ok := r.bySymbol[Reformat(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	return z, nil
}

// Symbol resolves an atomic number to its canonical symbol. Returns
// ErrUnknownAtomicNumber when z is outside the populated range.
func (r *Registry) Symbol(z int) (string, error) {
	symbol, ok := r.byNumber[z]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownAtomicNumber, z)
	}

	return symbol, nil
}

// Len reports how many elements the registry holds.
func (r *Registry) Len() int { return len(r.byNumber) }

// Reformat normalizes an element symbol: first byte uppercased, remaining
// bytes lowercased. The transform is byte-wise and meaningful only for
// ASCII-alphabetic input; anything else simply fails the subsequent lookup.
func Reformat(symbol string) string {
	if symbol == "" {
		return symbol
	}

	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}
