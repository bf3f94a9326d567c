package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/physics"
)

// Simulator time-steps a ball model until it lands or crosses the goal line.
// A Simulator is not safe for concurrent runs.
type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	pitch      physics.Pitch
	radius     float64
	observers  []Observer
}

// New creates a simulator. radius is the height of the ball centre at
// ground contact.
func New(dyn dynamo.System, integrator dynamo.Integrator, pitch physics.Pitch, radius float64) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		pitch:      pitch,
		radius:     radius,
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// PhaseOf classifies a state. Crossing the goal line takes precedence over
// ground contact.
func (s *Simulator) PhaseOf(x dynamo.State) Phase {
	if x[physics.X] >= s.pitch.GoalLine() {
		return PastGoalLine
	}
	if x[physics.Z] <= s.radius {
		return Grounded
	}
	return Flying
}

// Run integrates from x0 at t = 0. The phase is checked only after each
// step, so a ball launched from the ground still flies. If cfg.MaxSteps is
// reached first the partial result is returned with dynamo.ErrStepLimit.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	capacity := 1024
	if cfg.MaxSteps > 0 && cfg.MaxSteps < capacity {
		capacity = cfg.MaxSteps + 1
	}
	result := &Result{
		States: make([]dynamo.State, 0, capacity),
		Times:  make([]float64, 0, capacity),
		Phase:  Flying,
	}

	x := x0.Clone()
	t := 0.0
	s.record(result, t, x, Flying)

	for i := 0; cfg.MaxSteps == 0 || i < cfg.MaxSteps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next := s.integrator.Step(s.dyn.Derive, t, x, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !next.IsValid() {
			return result, &dynamo.SimulationError{Step: i, Time: t, State: next, Wrapped: dynamo.ErrInvalidState}
		}

		x = next
		phase := s.PhaseOf(x)
		result.Phase = phase
		result.StepsTaken++
		s.record(result, t, x, phase)

		if phase.Terminal() {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %d steps without landing or crossing the goal line", dynamo.ErrStepLimit, cfg.MaxSteps)
}

func (s *Simulator) record(result *Result, t float64, x dynamo.State, phase Phase) {
	result.States = append(result.States, x)
	result.Times = append(result.Times, t)
	for _, obs := range s.observers {
		obs.OnStep(t, x, phase)
	}
}

func (s *Simulator) validate(x0 dynamo.State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("max steps must be non-negative, got %d", cfg.MaxSteps)
	}
	if len(x0) != s.dyn.StateDim() || len(x0) < physics.StateDim {
		return fmt.Errorf("%w: state has %d components, system expects %d", dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}
	return nil
}

// Launch builds an initial state for a kick of the given speed and
// elevation (degrees) along +x from (x0, y0, z0).
func Launch(speed, elevationDeg, x0, y0, z0 float64) dynamo.State {
	angle := elevationDeg * math.Pi / 180
	return dynamo.State{
		x0, y0, z0,
		speed * math.Cos(angle), 0, speed * math.Sin(angle),
	}
}
