// Package hydro implements a five-state lumped conceptual rainfall-runoff
// model as an ODE right-hand side.
//
// The model routes precipitation through an interception store and an
// unsaturated zone into two linear reservoirs (slow and fast), accumulating
// total outflow in a fifth state:
//
//	[S_i, S_u, S_s, S_f, z]
//
// All process rates are shaped by [Flux], a stabilized saturation-excess
// flux function. Both Flux and the model derivative are pure: no state
// persists between calls and evaluation is safe from any number of
// goroutines, which matters at solver-micro-step x ensemble x calibration
// call volumes.
package hydro
