package interp

import (
	"fmt"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

// Coeffs returns the Newton divided-difference coefficients of the
// interpolant through (xi[i], yi[i]).
func Coeffs(xi, yi []float64) ([]float64, error) {
	if err := checkPoints(xi, yi); err != nil {
		return nil, err
	}

	n := len(xi)
	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n)
		table[i][0] = yi[i]
	}

	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			table[i][j] = (table[i+1][j-1] - table[i][j-1]) / (xi[i+j] - xi[i])
		}
	}

	coeffs := make([]float64, n)
	copy(coeffs, table[0])
	return coeffs, nil
}

// PolyEval evaluates Newton coefficients in nested form, highest order
// first. xi must be the grid, in the same order, that produced coeffs.
func PolyEval(coeffs, xi []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("%w: no coefficients", dynamo.ErrSizeMismatch)
	}
	if len(coeffs) != len(xi) {
		return 0, fmt.Errorf("%w: %d coefficients for %d grid points", dynamo.ErrSizeMismatch, len(coeffs), len(xi))
	}
	return nested(coeffs, xi, x), nil
}

func nested(coeffs, xi []float64, x float64) float64 {
	n := len(coeffs)
	result := coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		result = result*(x-xi[i]) + coeffs[i]
	}
	return result
}

// Newton is the divided-difference form of an interpolant.
type Newton struct {
	xi     []float64
	coeffs []float64
}

func NewNewton(xi, yi []float64) (*Newton, error) {
	coeffs, err := Coeffs(xi, yi)
	if err != nil {
		return nil, err
	}
	return &Newton{xi: clone(xi), coeffs: coeffs}, nil
}

func (p *Newton) Eval(x float64) float64 { return nested(p.coeffs, p.xi, x) }
func (p *Newton) Degree() int            { return len(p.coeffs) - 1 }

// Coeffs returns a copy of the coefficients.
func (p *Newton) Coeffs() []float64 { return clone(p.coeffs) }
