package hydro

import (
	"fmt"
	"math"

	"github.com/mkuiper/streamsim/internal/sim"
)

// State vector indices.
const (
	StateInterception = iota // S_i
	StateUnsaturated         // S_u
	StateSlow                // S_s
	StateFast                // S_f
	StateOutflow             // z, cumulative outflow
	NumStates
)

// RiverModel is the five-state rainfall-runoff model. Capacities (Imax,
// Sumax), the percolation rate scale (Qsmax) and the reservoir time
// constants (Ks, Kf) must be strictly positive; the derivative does not
// check them, zero values propagate Inf/NaN to the caller.
type RiverModel struct {
	Imax   float64 // interception capacity
	Sumax  float64 // unsaturated storage capacity
	Qsmax  float64 // maximum percolation rate
	AlphaE float64 // evaporation flux shape
	AlphaF float64 // runoff flux shape
	AlphaS float64 // percolation flux shape
	AlphaI float64 // interception flux shape
	Ks     float64 // slow reservoir time constant
	Kf     float64 // fast reservoir time constant
}

// NewRiverModel returns a model with the French Broad reference parameters.
func NewRiverModel() *RiverModel {
	return &RiverModel{
		Imax:   9.0,
		Sumax:  200.0,
		Qsmax:  7.0,
		AlphaE: 85.0,
		AlphaF: 0.2,
		AlphaS: 0.0,
		AlphaI: 50.0,
		Ks:     70.0,
		Kf:     2.5,
	}
}

func (m *RiverModel) StateDim() int   { return NumStates }
func (m *RiverModel) ForcingDim() int { return 2 }

// Derivative evaluates the model equations at one point. u is
// [precipitation, evaporation]; t is accepted for solver compatibility but
// unused, the model is autonomous. The state is read only, never mutated.
func (m *RiverModel) Derivative(x sim.State, u sim.Forcing, _ float64) sim.State {
	precip, evap := u[0], u[1]
	si, su, ss, sf := x[StateInterception], x[StateUnsaturated], x[StateSlow], x[StateFast]

	// Interception component
	interceptEvap := evap * Flux(si/m.Imax, m.AlphaI)
	effectPrecip := precip * Flux(si/m.Imax, -m.AlphaI)

	// Unsaturated storage; interception evaporation never exceeds total
	// evaporative demand
	unsatEvap := math.Max(0, evap-interceptEvap) * Flux(su/m.Sumax, m.AlphaE)

	// Percolation and runoff
	percolation := m.Qsmax * Flux(su/m.Sumax, m.AlphaS)
	runoff := effectPrecip * Flux(su/m.Sumax, m.AlphaF)

	// Linear reservoirs
	slowStream := ss / m.Ks
	fastStream := sf / m.Kf

	return sim.State{
		precip - interceptEvap - effectPrecip,
		effectPrecip - unsatEvap - percolation - runoff,
		percolation - slowStream,
		runoff - fastStream,
		slowStream + fastStream,
	}
}

// Discharge returns the instantaneous streamflow implied by a state, the
// combined outflow of both reservoirs (dz/dt).
func (m *RiverModel) Discharge(x sim.State) float64 {
	return x[StateSlow]/m.Ks + x[StateFast]/m.Kf
}

// DefaultState is a dry catchment.
func (m *RiverModel) DefaultState() sim.State {
	return make(sim.State, NumStates)
}

func (m *RiverModel) GetParams() map[string]float64 {
	return map[string]float64{
		"i_max":   m.Imax,
		"s_umax":  m.Sumax,
		"q_smax":  m.Qsmax,
		"alpha_e": m.AlphaE,
		"alpha_f": m.AlphaF,
		"alpha_s": m.AlphaS,
		"alpha_i": m.AlphaI,
		"k_s":     m.Ks,
		"k_f":     m.Kf,
	}
}

func (m *RiverModel) SetParam(name string, v float64) error {
	switch name {
	case "i_max":
		m.Imax = v
	case "s_umax":
		m.Sumax = v
	case "q_smax":
		m.Qsmax = v
	case "alpha_e":
		m.AlphaE = v
	case "alpha_f":
		m.AlphaF = v
	case "alpha_s":
		m.AlphaS = v
	case "alpha_i":
		m.AlphaI = v
	case "k_s":
		m.Ks = v
	case "k_f":
		m.Kf = v
	default:
		return fmt.Errorf("hydro: unknown parameter %q", name)
	}
	return nil
}
