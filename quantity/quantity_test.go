package quantity_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentar/astroion/quantity"
)

// TestParse_Tokenizes verifies the nil-resolver path yields the raw pair.
func TestParse_Tokenizes(t *testing.T) {
	q, err := quantity.Parse("5 km/s", nil)
	require.NoError(t, err)
	assert.Equal(t, quantity.Quantity{Value: 5, Unit: "km/s"}, q)

	q, err = quantity.Parse("1.2e4 erg", nil)
	require.NoError(t, err)
	assert.Equal(t, quantity.Quantity{Value: 1.2e4, Unit: "erg"}, q)

	// Runs of whitespace between the fields are a single separator.
	q, err = quantity.Parse("  -3.5\t cm  ", nil)
	require.NoError(t, err)
	assert.Equal(t, quantity.Quantity{Value: -3.5, Unit: "cm"}, q)
}

// TestParse_DelegatesToResolver checks the resolver receives the tokenized
// pair and that its result is returned untouched.
func TestParse_DelegatesToResolver(t *testing.T) {
	toMeters := func(value float64, unit string) (quantity.Quantity, error) {
		if unit != "km" {
			return quantity.Quantity{}, fmt.Errorf("unsupported unit %q", unit)
		}

		return quantity.Quantity{Value: value * 1000, Unit: "m"}, nil
	}

	q, err := quantity.Parse("5 km", toMeters)
	require.NoError(t, err)
	assert.Equal(t, quantity.Quantity{Value: 5000, Unit: "m"}, q)
}

// TestParse_Malformed covers wrong field counts and unreadable values.
func TestParse_Malformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "5", "5 km /s", "five km", "km 5"} {
		_, err := quantity.Parse(raw, nil)
		assert.ErrorIs(t, err, quantity.ErrMalformedQuantity, "Parse(%q)", raw)
	}
}

// TestParse_ResolverRejection ensures a resolver error is re-signaled as
// ErrMalformedQuantity and the resolver's own error never escapes.
func TestParse_ResolverRejection(t *testing.T) {
	errUnits := errors.New("resolver: no such unit")
	reject := func(float64, string) (quantity.Quantity, error) {
		return quantity.Quantity{}, errUnits
	}

	_, err := quantity.Parse("5 parsnips", reject)
	assert.ErrorIs(t, err, quantity.ErrMalformedQuantity)
	assert.NotErrorIs(t, err, errUnits, "resolver error type must not escape")
	assert.True(t, strings.Contains(err.Error(), "5 parsnips"), "error carries the raw input")
}
