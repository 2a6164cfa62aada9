// Package forcing supplies precipitation and evaporation inputs to the
// simulation, either as fixed values or from daily observation series.
package forcing

import "github.com/mkuiper/streamsim/internal/sim"

// Zero supplies no precipitation and no evaporation.
type Zero struct{}

func (Zero) At(t float64) sim.Forcing {
	return sim.Forcing{0, 0}
}

// Constant supplies fixed rates for the whole run.
type Constant struct {
	Precip float64
	Evap   float64
}

func (c Constant) At(t float64) sim.Forcing {
	return sim.Forcing{c.Precip, c.Evap}
}
