package spectrum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors returned by loading and integration.
var (
	// ErrBadSpectrum indicates malformed spectral data: an unreadable row, a
	// missing column, or arrays unfit for integration.
	ErrBadSpectrum = errors.New("spectrum: malformed spectral data")

	// ErrBadDistance indicates a non-positive integration distance.
	ErrBadDistance = errors.New("spectrum: distance must be positive")
)

// LoadOptions selects which whitespace-separated columns hold wavelength
// and flux. The zero value (columns 0 and 1) matches the common two-column
// layout.
type LoadOptions struct {
	WavelengthColumn int
	FluxColumn       int
}

// DefaultLoadOptions returns the two-column layout: wavelength first,
// flux second.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{WavelengthColumn: 0, FluxColumn: 1}
}

// Load reads spectral rows from r. Blank lines and lines starting with '#'
// are skipped; every other line must hold float-parsable fields at the two
// requested column indices. Returns parallel wavelength and flux slices.
func Load(r io.Reader, opts LoadOptions) (wavelength, flux []float64, err error) {
	if opts.WavelengthColumn < 0 || opts.FluxColumn < 0 {
		return nil, nil, fmt.Errorf("%w: negative column index", ErrBadSpectrum)
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		w, err := column(fields, opts.WavelengthColumn, line)
		if err != nil {
			return nil, nil, err
		}
		f, err := column(fields, opts.FluxColumn, line)
		if err != nil {
			return nil, nil, err
		}

		wavelength = append(wavelength, w)
		flux = append(flux, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadSpectrum, err)
	}

	return wavelength, flux, nil
}

func column(fields []string, idx, line int) (float64, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("%w: line %d: missing column %d", ErrBadSpectrum, line, idx)
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: bad value %q", ErrBadSpectrum, line, fields[idx])
	}

	return v, nil
}

// Luminosity integrates flux over wavelength with the trapezoidal rule and
// scales by 4πd² for an isotropic source at distance d (cm). Returns the
// luminosity in erg/s together with the minimum and maximum wavelength of
// the input.
//
// The slices must be parallel and hold at least two samples; d must be
// positive.
func Luminosity(wavelength, flux []float64, distance float64) (lum, wlMin, wlMax float64, err error) {
	if len(wavelength) != len(flux) {
		return 0, 0, 0, fmt.Errorf("%w: %d wavelengths vs %d fluxes", ErrBadSpectrum, len(wavelength), len(flux))
	}
	if len(wavelength) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: need at least two samples, got %d", ErrBadSpectrum, len(wavelength))
	}
	if distance <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: %g", ErrBadDistance, distance)
	}

	fluxDensity := trapezoid(wavelength, flux)
	lum = fluxDensity * 4 * math.Pi * distance * distance

	wlMin, wlMax = wavelength[0], wavelength[0]
	for _, w := range wavelength[1:] {
		wlMin = math.Min(wlMin, w)
		wlMax = math.Max(wlMax, w)
	}

	return lum, wlMin, wlMax, nil
}

// IntensityBlackBody evaluates the Planck law
//
//	I(ν, T) = (2hν³/c²) · 1/(exp(hν/kT) − 1)
//
// in CGS units: frequency in Hz, temperature in K, intensity in
// erg/(s cm² Hz sr).
func IntensityBlackBody(nu, t float64) float64 {
	betaRad := 1 / (KBoltzmann * t)
	coefficient := 2 * HPlanck / (CLight * CLight)

	return coefficient * nu * nu * nu / math.Expm1(HPlanck*nu*betaRad)
}

// trapezoid integrates y over x sample by sample.
func trapezoid(x, y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}

	return sum
}
