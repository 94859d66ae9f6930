// Package quantity tokenizes "<number> <unit>" strings, such as "5 km/s"
// or "1.2e4 erg", delegating all unit semantics to an external Resolver.
//
// The parser owns only the split: exactly two whitespace-separated fields,
// the first a float64. What "km/s" means (conversion factors, compound
// units, dimensional validity) is the resolver's business; this package
// never inspects the unit token. When the resolver rejects a unit, the
// rejection is re-signaled uniformly as ErrMalformedQuantity so callers see
// a single error taxonomy at this boundary rather than the resolver's own
// error types.
//
// Every failure, including a resolver rejection, is ErrMalformedQuantity
// carrying the offending input.
package quantity
