package savgol

import "errors"

// Sentinel errors returned by Filter.
var (
	// ErrEmptyInput indicates an empty signal.
	ErrEmptyInput = errors.New("savgol: input signal must be non-empty")

	// ErrWindowSize indicates an even, too-small, or too-large window.
	ErrWindowSize = errors.New("savgol: window size must be a positive odd number fitting the signal")

	// ErrOrder indicates a polynomial order incompatible with the window.
	ErrOrder = errors.New("savgol: polynomial order must satisfy 0 <= order < window-1")

	// ErrDeriv indicates a derivative order outside [0, order].
	ErrDeriv = errors.New("savgol: derivative order must satisfy 0 <= deriv <= order")
)

// Options configures the Savitzky–Golay filter.
//
// Fields:
//   - WindowSize — odd number of samples per fit window, >= 3.
//   - Order      — polynomial order of the local fit, < WindowSize-1.
//   - Deriv      — derivative order to evaluate; 0 means plain smoothing.
//   - Rate       — sample spacing scale applied to derivatives; the k-th
//     derivative is multiplied by Rate^k. Irrelevant when Deriv is 0.
type Options struct {
	WindowSize int
	Order      int
	Deriv      int
	Rate       float64
}

// DefaultOptions returns a 5-point quadratic smoothing filter.
func DefaultOptions() Options {
	return Options{WindowSize: 5, Order: 2, Deriv: 0, Rate: 1}
}
