package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedQuantity indicates input that is not a two-field
// "<number> <unit>" string, a numeric field that does not parse, or a unit
// field the resolver rejected.
var ErrMalformedQuantity = errors.New(`quantity: expecting a quantity string like "5 km/s"`)

// Quantity is a numeric value paired with its unit token. Past the Resolver
// boundary the pair is opaque to this package; resolvers typically return a
// normalized value and canonical unit of their own choosing.
type Quantity struct {
	Value float64
	Unit  string
}

// Resolver owns unit semantics. It receives the tokenized value and unit
// and either constructs the resulting quantity or rejects the unit with an
// error. Parse treats it as a black box.
type Resolver func(value float64, unit string) (Quantity, error)

// Parse splits raw into a value and a unit token, then hands both to
// resolve. A nil resolver accepts the tokenized pair as-is, which makes
// Parse a pure tokenizer.
//
// Any failure, including a resolver rejection, is reported as
// ErrMalformedQuantity; the resolver's own error type never escapes.
func Parse(raw string, resolve Resolver) (Quantity, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Quantity{}, fmt.Errorf("%w: %q", ErrMalformedQuantity, raw)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: bad value %q", ErrMalformedQuantity, raw, fields[0])
	}

	if resolve == nil {
		return Quantity{Value: value, Unit: fields[1]}, nil
	}

	q, err := resolve(value, fields[1])
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %v", ErrMalformedQuantity, raw, err)
	}

	return q, nil
}
