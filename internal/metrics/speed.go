package metrics

import (
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/sim"
)

// TopSpeed records the fastest ball speed seen during a run.
type TopSpeed struct {
	max float64
}

func NewTopSpeed() *TopSpeed { return &TopSpeed{} }

func (s *TopSpeed) Name() string { return "top_speed" }

func (s *TopSpeed) OnStep(t float64, x dynamo.State, phase sim.Phase) {
	v := math.Sqrt(x[physics.VX]*x[physics.VX] + x[physics.VY]*x[physics.VY] + x[physics.VZ]*x[physics.VZ])
	s.max = math.Max(s.max, v)
}

func (s *TopSpeed) Value() float64 { return s.max }

func (s *TopSpeed) Reset() { s.max = 0 }
