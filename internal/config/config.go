package config

import (
	"fmt"
	"os"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"github.com/san-kum/pitchlab/internal/physics"
	"github.com/san-kum/pitchlab/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultMaxSteps  = 100000
	DefaultSpeed     = 25.0
	DefaultElevation = 20.0
	DefaultDistance  = 20.0
	DefaultOffsetY   = 3.0
)

type Config struct {
	Integrator string              `yaml:"integrator"`
	Dt         float64             `yaml:"dt"`
	MaxSteps   int                 `yaml:"max_steps"`
	Shot       ShotConfig          `yaml:"shot"`
	Force      physics.ForceConfig `yaml:"force"`
	Pitch      physics.Pitch       `yaml:"pitch"`
}

// ShotConfig places the kick relative to the attacked goal.
type ShotConfig struct {
	Speed     float64 `yaml:"speed"`
	Elevation float64 `yaml:"elevation"`
	Distance  float64 `yaml:"distance"`
	OffsetY   float64 `yaml:"offset_y"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "rk4",
		Dt:         DefaultDt,
		MaxSteps:   DefaultMaxSteps,
		Shot: ShotConfig{
			Speed:     DefaultSpeed,
			Elevation: DefaultElevation,
			Distance:  DefaultDistance,
			OffsetY:   DefaultOffsetY,
		},
		Force: physics.DefaultForceConfig(),
		Pitch: physics.DefaultPitch(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", c.MaxSteps)
	}
	if c.Pitch.Length <= 0 {
		return fmt.Errorf("pitch length must be positive, got %f", c.Pitch.Length)
	}
	return c.Force.Validate()
}

// SimConfig returns the run parameters for sim.Simulator.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{Dt: c.Dt, MaxSteps: c.MaxSteps, ValidateState: true}
}

// InitState is the launch state: Distance metres from the goal line,
// OffsetY across, ball resting on the ground.
func (c *Config) InitState() dynamo.State {
	return sim.Launch(
		c.Shot.Speed, c.Shot.Elevation,
		c.Pitch.GoalLine()-c.Shot.Distance, c.Shot.OffsetY, c.Force.Radius,
	)
}
