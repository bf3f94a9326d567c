package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

const (
	DefaultGravity    = 9.81
	DefaultRadius     = 0.11
	DefaultMass       = 0.43
	DefaultDragCoeff  = 0.25
	DefaultAirDensity = 1.225
	DefaultLiftCoeff  = 0.0025
	DefaultSpinZ      = 10.0
)

// State indices.
const (
	X = iota
	Y
	Z
	VX
	VY
	VZ
	StateDim
)

// ForceConfig parameterises the ball's right-hand side. It is read-only for
// the duration of a run.
type ForceConfig struct {
	Gravity    float64    `yaml:"gravity"`
	Radius     float64    `yaml:"radius"`
	Mass       float64    `yaml:"mass"`
	DragCoeff  float64    `yaml:"drag_coeff"`
	AirDensity float64    `yaml:"air_density"`
	LiftCoeff  float64    `yaml:"lift_coeff"`
	Spin       [3]float64 `yaml:"spin"`
	Drag       bool       `yaml:"drag"`
	Magnus     bool       `yaml:"magnus"`
}

func DefaultForceConfig() ForceConfig {
	return ForceConfig{
		Gravity:    DefaultGravity,
		Radius:     DefaultRadius,
		Mass:       DefaultMass,
		DragCoeff:  DefaultDragCoeff,
		AirDensity: DefaultAirDensity,
		LiftCoeff:  DefaultLiftCoeff,
		Spin:       [3]float64{0, 0, DefaultSpinZ},
	}
}

func (c ForceConfig) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %f", c.Radius)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %f", c.Mass)
	}
	if c.Drag && (c.DragCoeff < 0 || c.AirDensity < 0) {
		return fmt.Errorf("drag coefficient and air density must be non-negative")
	}
	return nil
}

// DragFactor is k in a = -k|v|v: 0.5 Cd rho (pi r²) / m.
func (c ForceConfig) DragFactor() float64 {
	area := math.Pi * c.Radius * c.Radius
	return 0.5 * c.DragCoeff * c.AirDensity * area / c.Mass
}

// MagnusFactor is S/m, S being the lift coefficient in kg.
func (c ForceConfig) MagnusFactor() float64 {
	return c.LiftCoeff / c.Mass
}

// Ball is the point-mass football model under the forces enabled in its config.
type Ball struct {
	cfg  ForceConfig
	drag float64
	lift float64
}

// NewBall precomputes the drag and Magnus factors from cfg.
func NewBall(cfg ForceConfig) *Ball {
	return &Ball{
		cfg:  cfg,
		drag: cfg.DragFactor(),
		lift: cfg.MagnusFactor(),
	}
}

func (b *Ball) Config() ForceConfig { return b.cfg }

func (b *Ball) StateDim() int { return StateDim }

func (b *Ball) Derive(t float64, y dynamo.State) dynamo.State {
	vx, vy, vz := y[VX], y[VY], y[VZ]

	ax, ay, az := 0.0, 0.0, -b.cfg.Gravity

	if b.cfg.Drag {
		speed := math.Sqrt(vx*vx + vy*vy + vz*vz)
		ax -= b.drag * speed * vx
		ay -= b.drag * speed * vy
		az -= b.drag * speed * vz
	}

	// Spin about z only: the lift stays in the horizontal plane.
	if b.cfg.Magnus {
		wz := b.cfg.Spin[2]
		ax += b.lift * wz * vy
		ay -= b.lift * wz * vx
	}

	return dynamo.State{vx, vy, vz, ax, ay, az}
}

// Energy is kinetic plus potential energy, zero for a ball at rest on the ground.
func (b *Ball) Energy(y dynamo.State) float64 {
	v2 := y[VX]*y[VX] + y[VY]*y[VY] + y[VZ]*y[VZ]
	return 0.5*b.cfg.Mass*v2 + b.cfg.Mass*b.cfg.Gravity*(y[Z]-b.cfg.Radius)
}
