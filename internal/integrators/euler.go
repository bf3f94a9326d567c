package integrators

import (
	"fmt"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

// Euler is the explicit first-order method.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step advances x by one forward-Euler step of size dt.
func (e *Euler) Step(f dynamo.Derivative, t float64, x dynamo.State, dt float64) dynamo.State {
	dx := f(t, x)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

// New returns the integrator registered under name.
func New(name string) (dynamo.Integrator, error) {
	switch name {
	case "rk4", "":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
