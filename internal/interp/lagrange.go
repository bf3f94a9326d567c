package interp

import (
	"fmt"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

// Polynomial is an interpolant that can be evaluated anywhere.
type Polynomial interface {
	Eval(x float64) float64
	Degree() int
}

// BasisValue returns the k-th Lagrange basis polynomial of xi at x: one on
// xi[k] and zero on every other grid point.
func BasisValue(k int, xi []float64, x float64) float64 {
	prod := 1.0
	for j := range xi {
		if j == k {
			continue
		}
		prod *= (x - xi[j]) / (xi[k] - xi[j])
	}
	return prod
}

// Lagrange evaluates the interpolant through (xi[k], yi[k]) at x.
func Lagrange(xi, yi []float64, x float64) (float64, error) {
	if err := checkPoints(xi, yi); err != nil {
		return 0, err
	}
	return lagrange(xi, yi, x), nil
}

func lagrange(xi, yi []float64, x float64) float64 {
	sum := 0.0
	for k := range xi {
		sum += yi[k] * BasisValue(k, xi, x)
	}
	return sum
}

// Basis is the Lagrange-basis form of an interpolant.
type Basis struct {
	xi, yi []float64
}

// NewBasis copies the points; xi must be distinct.
func NewBasis(xi, yi []float64) (*Basis, error) {
	if err := checkPoints(xi, yi); err != nil {
		return nil, err
	}
	return &Basis{xi: clone(xi), yi: clone(yi)}, nil
}

func (b *Basis) Eval(x float64) float64 { return lagrange(b.xi, b.yi, x) }
func (b *Basis) Degree() int            { return len(b.xi) - 1 }

func checkPoints(xi, yi []float64) error {
	if len(xi) == 0 {
		return fmt.Errorf("%w: no interpolation points", dynamo.ErrSizeMismatch)
	}
	if len(xi) != len(yi) {
		return fmt.Errorf("%w: %d grid points, %d values", dynamo.ErrSizeMismatch, len(xi), len(yi))
	}
	return nil
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
