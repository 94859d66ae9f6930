package elements_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentar/astroion/elements"
)

// TestDefault_Coverage verifies the embedded table spans the full periodic
// table and that both lookup directions agree.
func TestDefault_Coverage(t *testing.T) {
	reg := elements.Default()
	require.Equal(t, 118, reg.Len(), "embedded table should hold 118 elements")

	for z := 1; z <= 118; z++ {
		symbol, err := reg.Symbol(z)
		require.NoError(t, err, "Symbol(%d)", z)

		back, err := reg.AtomicNumber(symbol)
		require.NoError(t, err, "AtomicNumber(%q)", symbol)
		require.Equal(t, z, back, "bijection broken at %d ↔ %q", z, symbol)
	}
}

// TestAtomicNumber_CaseInsensitive ensures any capitalization that
// normalizes to a known symbol resolves.
func TestAtomicNumber_CaseInsensitive(t *testing.T) {
	reg := elements.Default()

	for _, symbol := range []string{"Fe", "fe", "FE", "fE"} {
		z, err := reg.AtomicNumber(symbol)
		require.NoError(t, err, "AtomicNumber(%q)", symbol)
		assert.Equal(t, 26, z, "AtomicNumber(%q)", symbol)
	}

	// Single-letter symbols take the same path.
	z, err := reg.AtomicNumber("h")
	require.NoError(t, err)
	assert.Equal(t, 1, z)
}

// TestAtomicNumber_Unknown ensures absent symbols error ErrUnknownSymbol.
func TestAtomicNumber_Unknown(t *testing.T) {
	reg := elements.Default()

	for _, symbol := range []string{"Xx", "Fee", "", "2"} {
		_, err := reg.AtomicNumber(symbol)
		assert.ErrorIs(t, err, elements.ErrUnknownSymbol, "AtomicNumber(%q)", symbol)
	}
}

// TestSymbol_Unknown ensures out-of-range atomic numbers error
// ErrUnknownAtomicNumber.
func TestSymbol_Unknown(t *testing.T) {
	reg := elements.Default()

	for _, z := range []int{0, -1, 119, 1000} {
		_, err := reg.Symbol(z)
		assert.ErrorIs(t, err, elements.ErrUnknownAtomicNumber, "Symbol(%d)", z)
	}
}

// TestLoad_ExternalTable builds a registry from a caller-supplied table with
// comments, blank lines and loose capitalization.
func TestLoad_ExternalTable(t *testing.T) {
	table := `
# abridged table
1 h
2 HE
26 fe
`
	reg, err := elements.Load(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	z, err := reg.AtomicNumber("He")
	require.NoError(t, err)
	assert.Equal(t, 2, z)

	symbol, err := reg.Symbol(26)
	require.NoError(t, err)
	assert.Equal(t, "Fe", symbol, "symbols are stored canonically")
}

// TestLoad_Malformed ensures bad lines error ErrBadTable.
func TestLoad_Malformed(t *testing.T) {
	for _, table := range []string{
		"1 H extra",
		"x H",
		"-3 H",
		"0 H",
	} {
		_, err := elements.Load(strings.NewReader(table))
		assert.ErrorIs(t, err, elements.ErrBadTable, "Load(%q)", table)
	}
}

// TestReformat covers the normalization transform directly.
func TestReformat(t *testing.T) {
	cases := map[string]string{
		"si": "Si",
		"SI": "Si",
		"Si": "Si",
		"h":  "H",
		"":   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, elements.Reformat(in), "Reformat(%q)", in)
	}
}
