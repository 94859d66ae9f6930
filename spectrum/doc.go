// Package spectrum provides the numeric helpers of simulation setup:
// loading two-column spectral data, integrating it into a luminosity, and
// the Planck black-body intensity.
//
// What
//
//   - Load reads whitespace-separated columns of (wavelength, flux) rows,
//     skipping blank lines and '#' comments.
//   - Luminosity integrates flux density over wavelength with the
//     trapezoidal rule and scales by 4πd² for a source at distance d.
//   - IntensityBlackBody evaluates the Planck law at a frequency and
//     temperature.
//
// Units
//
//	All quantities are CGS and the contract is fixed rather than
//	convertible: wavelengths in angstrom, flux in erg/(angstrom cm² s),
//	distance in cm, luminosity in erg/s, frequency in Hz, temperature in K.
//	Unit modeling is out of scope for this module; callers needing
//	conversions resolve them before calling in.
//
// Errors (sentinel)
//
//   - ErrBadSpectrum if a data row is malformed, the requested columns are
//     missing, or the arrays are too short or mismatched to integrate.
//   - ErrBadDistance if the integration distance is not positive.
package spectrum
