// Package elements maintains the bijection between atomic numbers and
// element symbols used throughout species-notation parsing.
//
// What
//
//   - Registry: an immutable two-way table, atomic number ↔ symbol.
//   - Default(): a registry over the embedded periodic table (H through Og,
//     1..118), ready without any I/O.
//   - Load(): build a registry from an external whitespace-separated
//     "<number> <symbol>" table, for callers with their own atomic data.
//   - Reformat(): symbol normalization — first letter uppercased, the rest
//     lowercased — so "fe", "FE" and "Fe" all resolve to iron.
//
// Concurrency
//
//	A Registry is never mutated after construction, so any number of
//	goroutines may call AtomicNumber and Symbol concurrently without
//	locking. Construct once, before first use, then share freely.
//
// Data integrity
//
//	Load trusts its source: beyond per-line shape it does not validate the
//	table (no duplicate or gap detection). Supplying a non-bijective table
//	is a data-source defect, and lookups over such a registry are
//	unspecified.
//
// Errors (sentinel)
//
//   - ErrUnknownSymbol       if a normalized symbol is absent from the table.
//   - ErrUnknownAtomicNumber if an atomic number is absent from the table.
//   - ErrBadTable            if a Load input line is malformed.
package elements
