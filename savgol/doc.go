// Package savgol smooths (and optionally differentiates) sampled signals
// with a Savitzky–Golay filter.
//
// What
//
//	For each sample the filter fits a least-squares polynomial of a given
//	order over an odd-sized window centered at the point, then evaluates
//	the fit (or its derivative) at the center. Compared with a moving
//	average, the fit preserves the height and width of signal features
//	while still suppressing high-frequency noise.
//
// Algorithm
//
//  1. Build the window design matrix B with B[k][i] = k^i for
//     k in [-half, half] and i in [0, order].
//  2. The convolution kernel is row `deriv` of the pseudo-inverse of B,
//     scaled by rate^deriv · deriv!. Because B has full column rank the
//     pseudo-inverse reduces to (BᵀB)⁻¹Bᵀ, solved here via the normal
//     equations with Gaussian elimination.
//  3. Pad the signal at both ends by reflecting it about the first and
//     last samples, then convolve.
//
// The output has the same length as the input.
//
// Errors (sentinel)
//
//   - ErrEmptyInput if the signal is empty.
//   - ErrWindowSize if the window is even, too small, or longer than the
//     padding the signal can support.
//   - ErrOrder      if order is negative or >= window size − 1.
//   - ErrDeriv      if deriv is negative or exceeds the polynomial order.
//
// Complexity
//
//	Time O(n·w + p³) and memory O(n + w·p) for n samples, window w and
//	polynomial order p; p and w are small in practice, so the filter is
//	effectively linear in the signal length.
package savgol
