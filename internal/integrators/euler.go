package integrators

import "github.com/mkuiper/streamsim/internal/sim"

// Euler is the first-order explicit method. Too diffusive for production
// runs over flashy catchments; kept as the convergence baseline.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn sim.Dynamics, x sim.State, u sim.Forcing, t float64, dt float64) sim.State {
	dx := dyn.Derivative(x, u, t)
	result := make(sim.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
