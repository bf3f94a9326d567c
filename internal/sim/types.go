package sim

import (
	"fmt"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

// Phase is the flight state of the ball.
type Phase int

const (
	Flying Phase = iota
	Grounded
	PastGoalLine
)

func (p Phase) String() string {
	switch p {
	case Flying:
		return "flying"
	case Grounded:
		return "grounded"
	case PastGoalLine:
		return "past_goal_line"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether the run stops in this phase.
func (p Phase) Terminal() bool { return p != Flying }

type Observer interface {
	OnStep(t float64, x dynamo.State, phase Phase)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(t float64, x dynamo.State, phase Phase)

func (f ObserverFunc) OnStep(t float64, x dynamo.State, phase Phase) { f(t, x, phase) }

type Config struct {
	Dt float64 `yaml:"dt"`
	// MaxSteps bounds the run; zero means no bound.
	MaxSteps      int  `yaml:"max_steps"`
	ValidateState bool `yaml:"validate_state"`
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		MaxSteps:      100000,
		ValidateState: true,
	}
}

type Result struct {
	States     []dynamo.State
	Times      []float64
	Phase      Phase
	StepsTaken int
}

// Final returns the last recorded state.
func (r *Result) Final() dynamo.State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}

// Duration returns the time of the last recorded state.
func (r *Result) Duration() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	return r.Times[len(r.Times)-1]
}
