// Package dynamo provides core primitives shared by the numerical packages.
//
//   - [State]: ODE state vector
//   - [Derivative]: right-hand side dX/dt = f(t, X)
//   - [System]: a model exposing its right-hand side and dimension
//   - [Integrator]: fixed-step ODE stepper
//
// Errors are reported through the sentinels in errors.go and are meant to
// be matched with [errors.Is]:
//
//	idx, err := grid.Locate(xi, x, grid.Uniform)
//	if errors.Is(err, dynamo.ErrOutOfDomain) {
//	    // skip the sample
//	}
//
// # Thread Safety
//
// Nothing here holds shared state. Integrators may keep scratch buffers
// and must not be shared between goroutines.
package dynamo
