// Package astroion is a toolbox for radiative-transfer simulation setup:
// astronomical species notation, spectral bookkeeping, and the small
// numeric helpers that surround them.
//
// What's inside?
//
//	A set of independent, library-grade subpackages:
//		• roman    — integer ↔ canonical roman numeral codec
//		• elements — immutable atomic-number ↔ symbol registry (H..Og)
//		• species  — "Si 2" / "Si2" / "Si II" ↔ (atomic number, ion number)
//		• quantity — "<number> <unit>" tokenizer with pluggable unit resolution
//		• spectrum — spectral data loading, luminosity integral, Planck law
//		• savgol   — Savitzky–Golay smoothing and differentiation
//		• synpp    — YAML export of a model for the synpp synthesis tool
//
// Design
//
//   - Parse loosely, fail precisely: inputs may be sloppy about case and
//     spacing, but every failure is a package-prefixed sentinel error
//     carrying the offending input, matchable with errors.Is.
//   - No hidden state: every operation is a pure function of its inputs
//     plus, at most, an immutable registry constructed before first use.
//     All parse and format operations are safe for concurrent callers.
//   - Unit semantics stay external: quantity hands unit tokens to a
//     caller-supplied resolver and spectrum documents a fixed CGS contract.
//
// Quick example:
//
//	id, err := species.Parse(elements.Default(), "Si II")
//	// id == species.Identifier{AtomicNumber: 14, IonNumber: 1}
//	s, _ := species.Format(elements.Default(), id, false)
//	// s == "Si 2"
//
//	go get github.com/quentar/astroion
package astroion
