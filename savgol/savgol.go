package savgol

import (
	"fmt"
	"math"
)

// Filter applies a Savitzky–Golay filter to y and returns the smoothed
// signal, or its Deriv-th derivative, with the same length as y.
//
// Example:
//
//	opts := savgol.DefaultOptions()
//	opts.WindowSize = 31
//	opts.Order = 4
//	smooth, err := savgol.Filter(noisy, opts)
func Filter(y []float64, opts Options) ([]float64, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	window := opts.WindowSize
	if window < 3 || window%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrWindowSize, window)
	}
	half := (window - 1) / 2
	if n <= half {
		return nil, fmt.Errorf("%w: window %d needs at least %d samples, got %d",
			ErrWindowSize, window, half+1, n)
	}
	if opts.Order < 0 || opts.Order >= window-1 {
		return nil, fmt.Errorf("%w: order %d with window %d", ErrOrder, opts.Order, window)
	}
	if opts.Deriv < 0 || opts.Deriv > opts.Order {
		return nil, fmt.Errorf("%w: deriv %d with order %d", ErrDeriv, opts.Deriv, opts.Order)
	}
	rate := opts.Rate
	if rate == 0 {
		// Zero-value Options mean unit sample spacing.
		rate = 1
	}

	kernel, err := coefficients(half, opts.Order, opts.Deriv, rate)
	if err != nil {
		return nil, err
	}

	// Reflect the signal about its endpoints to pad both extremes, so the
	// convolution stays "valid" while the output keeps the input length.
	padded := make([]float64, 0, n+2*half)
	for i := half; i >= 1; i-- {
		padded = append(padded, y[0]-math.Abs(y[i]-y[0]))
	}
	padded = append(padded, y...)
	for i := 0; i < half; i++ {
		padded = append(padded, y[n-1]+math.Abs(y[n-2-i]-y[n-1]))
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for j := 0; j < window; j++ {
			acc += kernel[j] * padded[i+j]
		}
		out[i] = acc
	}

	return out, nil
}

// coefficients computes the convolution kernel: row `deriv` of the
// pseudo-inverse of the window design matrix B[k][i] = k^i, scaled by
// rate^deriv * deriv!. Since B has full column rank, the row is obtained by
// solving the normal equations (BᵀB)x = e_deriv and mapping x back through
// Bᵀ.
func coefficients(half, order, deriv int, rate float64) ([]float64, error) {
	p := order + 1
	window := 2*half + 1

	// BᵀB entries are power sums over the window offsets.
	powerSums := make([]float64, 2*order+1)
	for k := -half; k <= half; k++ {
		pow := 1.0
		for m := 0; m <= 2*order; m++ {
			powerSums[m] += pow
			pow *= float64(k)
		}
	}
	normal := make([][]float64, p)
	for i := 0; i < p; i++ {
		normal[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			normal[i][j] = powerSums[i+j]
		}
	}

	rhs := make([]float64, p)
	rhs[deriv] = 1
	x, err := solve(normal, rhs)
	if err != nil {
		return nil, err
	}

	scale := math.Pow(rate, float64(deriv)) * factorial(deriv)
	kernel := make([]float64, window)
	for k := -half; k <= half; k++ {
		pow, acc := 1.0, 0.0
		for i := 0; i < p; i++ {
			acc += x[i] * pow
			pow *= float64(k)
		}
		kernel[k+half] = acc * scale
	}

	return kernel, nil
}

// solve performs in-place Gaussian elimination with partial pivoting on the
// dense system a·x = b. The normal matrix of a valid window/order pair is
// positive definite, so a zero pivot means the options check missed an
// impossible configuration.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if a[pivot][col] == 0 {
			return nil, fmt.Errorf("%w: singular normal matrix", ErrOrder)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for j := col; j < n; j++ {
				a[row][j] -= factor * a[col][j]
			}
			b[row] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		acc := b[row]
		for j := row + 1; j < n; j++ {
			acc -= a[row][j] * x[j]
		}
		x[row] = acc / a[row][row]
	}

	return x, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
