package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for numerical and simulation operations.
var (
	// ErrOutOfDomain indicates a query point outside the sampled interval.
	ErrOutOfDomain = errors.New("dynamo: point outside grid domain")

	// ErrNotImplemented indicates a requested mode that is not supported.
	ErrNotImplemented = errors.New("dynamo: mode not implemented")

	// ErrSizeMismatch indicates input sequences of incompatible length.
	ErrSizeMismatch = errors.New("dynamo: incompatible input size")

	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates a state vector of the wrong dimension.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrStepLimit indicates a run stopped at its step budget before reaching a terminal phase.
	ErrStepLimit = errors.New("dynamo: step limit reached")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
