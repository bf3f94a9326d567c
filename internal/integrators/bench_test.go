package integrators

import (
	"testing"

	"github.com/san-kum/pitchlab/internal/dynamo"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(oscillator, 0, x, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	x := dynamo.State{1.0, 0.0, 0.0, 1.0, 0.0, 0.0}
	f := func(t float64, x dynamo.State) dynamo.State {
		return dynamo.State{x[3], x[4], x[5], -x[0], -x[1], -x[2]}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(f, 0, x, 0.01)
	}
}
