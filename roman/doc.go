// Package roman converts between positive integers and canonical roman
// numerals in subtractive notation.
//
// What
//
//   - Encode maps an integer in [1, 3999] to its unique minimal-length
//     subtractive form ("IV", never "IIII").
//   - Decode maps a canonical numeral string back to its integer value,
//     accepting any input capitalization.
//
// Canonical-only acceptance
//
//	Decode accepts exactly the strings Encode can produce. The signed-sum
//	pass alone would accept malformed inputs such as "IIII" or "VVVIV"
//	(their character values still sum to an integer), so Decode re-encodes
//	the computed value and requires byte-for-byte equality with the
//	uppercased input. Anything that fails this closed loop is rejected
//	with ErrInvalidNumeral rather than normalized. No separate table of
//	valid patterns is maintained; the round-trip check is the sole
//	correctness guarantee.
//
// Errors (sentinel)
//
//   - ErrOutOfRange     if the Encode argument is outside [1, 3999].
//   - ErrInvalidNumeral if a Decode input contains a non-numeral character
//     or is not in canonical form.
//
// Complexity
//
//	Both directions run in O(len) time and O(len) memory over strings of
//	at most 15 characters ("MMMDCCCLXXXVIII").
package roman
