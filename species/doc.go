// Package species parses and renders astronomical species notation — an
// element symbol plus an ionization stage — against an elements.Registry.
//
// What
//
//   - Parse turns "Si 2", "Si2" or "Si II" into Identifier{14, 1}:
//     atomic number 14, zero-based ion number 1 (singly ionized silicon).
//   - Format renders an Identifier back to "Si II" (roman) or "Si 2"
//     (decimal). Both renderings round-trip through Parse.
//
// Grammar
//
//	Two shapes are accepted. First, a leading alphabetic run followed by an
//	optional whitespace run and a trailing digit run ("Si2", "Si 2").
//	Second, exactly two whitespace-separated fields, the second being a
//	roman numeral or an integer ("Si II", "Fe IV"). The ionization token is
//	resolved roman-first: "II" reads as 2, "2" falls through to the integer
//	path, and an ambiguous token like "IV" always reads as roman 4.
//
// Ionization stages are 1-based in notation (I = neutral, II = singly
// ionized) and zero-based in the Identifier, so Parse returns stage-1 and
// Format renders ion+1.
//
// Errors (sentinel)
//
//   - ErrMalformedSpecies             if the input matches neither grammar shape,
//     or its ionization token is neither a roman numeral nor an integer.
//   - elements.ErrUnknownSymbol       if the shape is valid but the symbol is not
//     in the registry (propagated as-is; deliberately more specific than a
//     generic malformed-species failure).
//   - ErrIonizationOutOfRange         if the resolved stage is non-positive or
//     exceeds the atomic number — an atom cannot be ionized beyond itself.
//   - elements.ErrUnknownAtomicNumber from Format, for identifiers constructed
//     out-of-band with an atomic number the registry does not hold.
//
// Both operations are pure functions of their inputs plus the immutable
// registry; they are safe for concurrent use.
package species
