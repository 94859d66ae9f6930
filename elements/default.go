package elements

import (
	"bytes"
	_ "embed"
)

//go:embed atomic_symbols.dat
var defaultTable []byte

// defaultRegistry is built once at package initialization, before any parse
// call is reachable.
var defaultRegistry = mustLoad(defaultTable)

// Default returns the registry over the embedded periodic table, covering
// atomic numbers 1 (H) through 118 (Og). The returned value is shared and
// immutable.
func Default() *Registry { return defaultRegistry }

func mustLoad(table []byte) *Registry {
	reg, err := Load(bytes.NewReader(table))
	if err != nil {
		panic(err)
	}

	return reg
}
