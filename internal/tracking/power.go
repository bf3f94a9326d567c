package tracking

import (
	"github.com/san-kum/pitchlab/internal/interp"
	"github.com/san-kum/pitchlab/internal/quad"
)

// PowerCurve maps running speed (m/s) to metabolic power (W) through the
// interpolating polynomial of a small measured table.
type PowerCurve struct {
	poly interp.Polynomial
}

// DefaultPowerTable is the measured (speed, power) table.
var DefaultPowerTable = struct{ Speed, Power []float64 }{
	Speed: []float64{0, 3, 5, 8},
	Power: []float64{100, 700, 1100, 2000},
}

func NewPowerCurve(speed, power []float64) (*PowerCurve, error) {
	poly, err := interp.NewBasis(speed, power)
	if err != nil {
		return nil, err
	}
	return &PowerCurve{poly: poly}, nil
}

func DefaultPowerCurve() *PowerCurve {
	pc, err := NewPowerCurve(DefaultPowerTable.Speed, DefaultPowerTable.Power)
	if err != nil {
		panic(err)
	}
	return pc
}

func (pc *PowerCurve) At(v float64) float64 { return pc.poly.Eval(v) }

// Series evaluates the curve for every speed sample.
func (pc *PowerCurve) Series(speeds []float64) []float64 {
	out := make([]float64, len(speeds))
	for i, v := range speeds {
		out[i] = pc.At(v)
	}
	return out
}

// EnergyEstimate holds the energy from both quadrature rules.
type EnergyEstimate struct {
	Trapezoid float64
	// NewtonCotes is set only when HasNewtonCotes is true.
	NewtonCotes    float64
	HasNewtonCotes bool
}

// Energy integrates a power series sampled at spacing dt. The Newton-Cotes
// estimate is skipped, not approximated, when the sample count is not 3k+1.
func Energy(power []float64, dt float64) (EnergyEstimate, error) {
	var est EnergyEstimate

	tr, err := quad.Trapezoid(power, dt)
	if err != nil {
		return est, err
	}
	est.Trapezoid = tr

	if !quad.Compatible(len(power)) {
		return est, nil
	}
	nc, err := quad.NewtonCotes4(power, dt)
	if err != nil {
		return est, err
	}
	est.NewtonCotes, est.HasNewtonCotes = nc, true
	return est, nil
}
