package sim

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with invalid dimensions or values.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrUnstable indicates the simulation became numerically unstable.
	ErrUnstable = errors.New("sim: simulation unstable (state diverged)")

	// ErrStepTooSmall indicates adaptive timestep became too small.
	ErrStepTooSmall = errors.New("sim: adaptive timestep below minimum")

	// ErrDimensionMismatch indicates mismatched state/forcing dimensions.
	ErrDimensionMismatch = errors.New("sim: dimension mismatch between state and system")
)
