// Package sim provides core simulation primitives for hydrological models
// expressed as ordinary differential equations.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ODE systems driven by exogenous forcing (dX/dt = f(X, u, t)):
//
//   - [State]: vector representing storage state
//   - [Forcing]: exogenous input vector (precipitation, evaporation)
//   - [Dynamics]: interface for ODE right-hand sides
//   - [Integrator]: numerical integrator interface
//   - [ForcingSource]: supplies forcing values per evaluation time
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	dyn := hydro.NewRiverModel()
//	integ := integrators.NewRK4()
//	s := sim.New(dyn, integ, forcing.Constant{Precip: 10, Evap: 2})
//	result, _ := s.Run(ctx, dyn.DefaultState(), cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parallel simulations,
// use the [Ensemble] type which safely manages multiple simulation runs.
package sim
