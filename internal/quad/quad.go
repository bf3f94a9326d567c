// Package quad integrates uniformly sampled functions.
package quad

import (
	"fmt"
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"gonum.org/v1/gonum/integrate"
)

// Compatible reports whether n samples fit the composite 3/8 rule, n = 3k+1
// with k >= 1.
func Compatible(n int) bool {
	return n >= 4 && (n-1)%3 == 0
}

// NewtonCotes4 integrates samples f taken at spacing h with the composite
// 4-point Newton-Cotes (Simpson 3/8) rule. Panels overlap at their ends:
// f[0..3], f[3..6], ...
func NewtonCotes4(f []float64, h float64) (float64, error) {
	if err := checkStep(h); err != nil {
		return 0, err
	}
	n := len(f)
	if !Compatible(n) {
		return 0, fmt.Errorf("%w: 4-point Newton-Cotes needs 3k+1 samples, got %d", dynamo.ErrSizeMismatch, n)
	}

	w := 3 * h / 8
	result := 0.0
	for i := 0; i < n-1; i += 3 {
		result += w * (f[i] + 3*f[i+1] + 3*f[i+2] + f[i+3])
	}
	return result, nil
}

// Trapezoid integrates samples f taken at spacing h with the composite
// trapezoidal rule.
func Trapezoid(f []float64, h float64) (float64, error) {
	if err := checkStep(h); err != nil {
		return 0, err
	}
	n := len(f)
	if n < 2 {
		return 0, fmt.Errorf("%w: trapezoidal rule needs at least 2 samples, got %d", dynamo.ErrSizeMismatch, n)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * h
	}
	return integrate.Trapezoidal(x, f), nil
}

func checkStep(h float64) error {
	if !(h > 0) || math.IsInf(h, 1) {
		return fmt.Errorf("%w: sample spacing must be positive and finite, got %g", dynamo.ErrOutOfDomain, h)
	}
	return nil
}
