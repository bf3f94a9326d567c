package tracking

import (
	"fmt"
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/interp"
	"github.com/san-kum/pitchlab/internal/physics"
	"gonum.org/v1/gonum/floats"
)

// Track is a position time series.
type Track struct {
	T []float64
	X []float64
	Y []float64
}

func (tr *Track) Len() int { return len(tr.T) }

// ToPitch maps normalised coordinates to metres centred on the pitch. The
// receiver is not modified.
func (tr *Track) ToPitch(p physics.Pitch) *Track {
	out := &Track{
		T: append([]float64(nil), tr.T...),
		X: make([]float64, len(tr.X)),
		Y: make([]float64, len(tr.Y)),
	}
	for i := range tr.X {
		out.X[i], out.Y[i] = p.FromNormalised(tr.X[i], tr.Y[i])
	}
	return out
}

// CentredDiff returns (f[i+1]-f[i-1])/(2dt) for the interior samples, so
// the result is two shorter than f.
func CentredDiff(f []float64, dt float64) ([]float64, error) {
	if len(f) < 3 {
		return nil, fmt.Errorf("%w: centred difference needs 3 samples, got %d", dynamo.ErrSizeMismatch, len(f))
	}
	out := make([]float64, len(f)-2)
	floats.SubTo(out, f[2:], f[:len(f)-2])
	floats.Scale(1/(2*dt), out)
	return out, nil
}

// Magnitude returns sqrt(a²+b²) element-wise.
func Magnitude(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Hypot(a[i], b[i])
	}
	return out
}

// Kinematics holds velocity and acceleration derived from a track. Each
// derivative is aligned with the interior times it was computed on.
type Kinematics struct {
	VT    []float64
	VX    []float64
	VY    []float64
	Speed []float64
	AT    []float64
	Accel []float64
}

// MaxSpeed returns the largest speed sample.
func (k *Kinematics) MaxSpeed() float64 {
	if len(k.Speed) == 0 {
		return 0
	}
	return floats.Max(k.Speed)
}

// Derive computes speed and acceleration magnitudes with centred differences.
func (tr *Track) Derive(dt float64) (*Kinematics, error) {
	if len(tr.X) != len(tr.T) || len(tr.Y) != len(tr.T) {
		return nil, fmt.Errorf("%w: track columns differ in length", dynamo.ErrSizeMismatch)
	}
	vx, err := CentredDiff(tr.X, dt)
	if err != nil {
		return nil, err
	}
	vy, err := CentredDiff(tr.Y, dt)
	if err != nil {
		return nil, err
	}

	k := &Kinematics{
		VT:    append([]float64(nil), tr.T[1:len(tr.T)-1]...),
		VX:    vx,
		VY:    vy,
		Speed: Magnitude(vx, vy),
	}

	// Acceleration needs two more samples; short tracks stop at speed.
	if len(vx) >= 3 {
		ax, _ := CentredDiff(vx, dt)
		ay, _ := CentredDiff(vy, dt)
		k.Accel = Magnitude(ax, ay)
		k.AT = append([]float64(nil), k.VT[1:len(k.VT)-1]...)
	}
	return k, nil
}

// Upsample resamples a uniformly sampled series at the given rate (samples
// per unit of t) using local polynomial interpolation over `points` samples.
func Upsample(t, f []float64, rate float64, points int) (ts, fs []float64, err error) {
	if len(t) != len(f) || len(t) < 2 {
		return nil, nil, fmt.Errorf("%w: %d times, %d values", dynamo.ErrSizeMismatch, len(t), len(f))
	}
	if rate <= 0 {
		return nil, nil, fmt.Errorf("rate must be positive, got %f", rate)
	}

	span := t[len(t)-1] - t[0]
	n := int(math.Floor(span*rate+1e-9)) + 1
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: rate %g yields fewer than 2 samples", dynamo.ErrSizeMismatch, rate)
	}
	ts = make([]float64, n)
	floats.Span(ts, t[0], t[0]+float64(n-1)/rate)
	fs = make([]float64, n)
	for i, x := range ts {
		if x > t[len(t)-1] {
			x = t[len(t)-1]
		}
		if fs[i], err = interp.Local(t, f, x, points); err != nil {
			return nil, nil, err
		}
	}
	return ts, fs, nil
}
