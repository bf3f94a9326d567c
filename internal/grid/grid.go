// Package grid locates query points on ordered sample grids.
package grid

import (
	"fmt"
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

// Mode selects how the grid spacing is treated.
type Mode int

const (
	// Uniform assumes equal spacing between consecutive grid points.
	Uniform Mode = iota
	// NonUniform is recognised but not supported by Locate.
	NonUniform
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case NonUniform:
		return "non-uniform"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Locate returns the index i of the interval [xi[i], xi[i+1]) containing x.
// xi must be strictly increasing with at least two points. x equal to the
// last grid value returns len(xi)-1. On failure the index is -1.
func Locate(xi []float64, x float64, mode Mode) (int, error) {
	n := len(xi)
	if n < 2 {
		return -1, fmt.Errorf("%w: grid needs at least 2 points, got %d", dynamo.ErrSizeMismatch, n)
	}
	if mode != Uniform {
		return -1, fmt.Errorf("%w: %s locate", dynamo.ErrNotImplemented, mode)
	}

	a, b := xi[0], xi[n-1]
	if x == b {
		return n - 1, nil
	}
	if !(x >= a && x <= b) {
		return -1, fmt.Errorf("%w: x=%g not in [%g, %g]", dynamo.ErrOutOfDomain, x, a, b)
	}

	dx := (b - a) / float64(n-1)
	idx := int(math.Floor((x - a) / dx))

	// Stored grid values may differ from a+i*dx by rounding.
	if idx > n-2 {
		idx = n - 2
	}
	if idx > 0 && x < xi[idx] {
		idx--
	} else if idx < n-2 && x >= xi[idx+1] {
		idx++
	}

	return idx, nil
}

// IsUniform reports whether consecutive spacings of xi differ from the mean
// spacing by at most tol relative to it.
func IsUniform(xi []float64, tol float64) bool {
	n := len(xi)
	if n < 2 {
		return false
	}
	dx := (xi[n-1] - xi[0]) / float64(n-1)
	if dx <= 0 {
		return false
	}
	for i := 1; i < n; i++ {
		if math.Abs((xi[i]-xi[i-1])-dx) > tol*dx {
			return false
		}
	}
	return true
}
