package metrics

import (
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/sim"
)

// Metric accumulates a scalar over the states of a run.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Energetic is implemented by systems that can report mechanical energy.
type Energetic interface {
	Energy(x dynamo.State) float64
}

// EnergyDrift tracks the largest relative change in mechanical energy from
// the first observed state. Gravity-only flight should stay near zero; drag
// shows up as dissipation.
type EnergyDrift struct {
	name     string
	sys      Energetic
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(sys Energetic) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		sys:  sys,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) OnStep(t float64, x dynamo.State, phase sim.Phase) {
	energy := e.sys.Energy(x)

	if e.samples == 0 {
		e.initial = energy
	}

	e.current = energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

// Loss is the fraction of the initial energy gone by the latest state.
func (e *EnergyDrift) Loss() float64 {
	if e.initial == 0 {
		return 0
	}
	return (e.initial - e.current) / e.initial
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.maxDrift = 0
	e.samples = 0
}
