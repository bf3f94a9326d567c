package interp

import (
	"fmt"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/grid"
)

// Local interpolates a uniformly sampled series at x using only the
// `points` samples around the interval containing x. Near the ends of the
// series the window is shifted inward instead of shrinking.
func Local(xi, yi []float64, x float64, points int) (float64, error) {
	if err := checkPoints(xi, yi); err != nil {
		return 0, err
	}
	if points < 2 || points > len(xi) {
		return 0, fmt.Errorf("%w: window of %d points over %d samples", dynamo.ErrSizeMismatch, points, len(xi))
	}

	idx, err := grid.Locate(xi, x, grid.Uniform)
	if err != nil {
		return 0, err
	}

	lo := idx - (points-1)/2
	if lo < 0 {
		lo = 0
	}
	if lo+points > len(xi) {
		lo = len(xi) - points
	}

	wx, wy := xi[lo:lo+points], yi[lo:lo+points]
	coeffs, err := Coeffs(wx, wy)
	if err != nil {
		return 0, err
	}
	return nested(coeffs, wx, x), nil
}
