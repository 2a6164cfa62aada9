package experiment

import (
	"fmt"

	"github.com/mkuiper/streamsim/internal/forcing"
	"github.com/mkuiper/streamsim/internal/hydro"
	"github.com/mkuiper/streamsim/internal/integrators"
	"github.com/mkuiper/streamsim/internal/metrics"
	"github.com/mkuiper/streamsim/internal/sim"
)

type Registry struct {
	models      map[string]func() sim.Dynamics
	integrators map[string]func() sim.Integrator
	forcings    map[string]func(params map[string]float64) sim.ForcingSource
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() sim.Dynamics),
		integrators: make(map[string]func() sim.Integrator),
		forcings:    make(map[string]func(map[string]float64) sim.ForcingSource),
	}

	r.models["river"] = func() sim.Dynamics { return hydro.NewRiverModel() }

	r.integrators["euler"] = func() sim.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() sim.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() sim.Integrator { return integrators.NewRK45() }

	r.forcings["zero"] = func(params map[string]float64) sim.ForcingSource {
		return forcing.Zero{}
	}
	r.forcings["constant"] = func(params map[string]float64) sim.ForcingSource {
		return forcing.Constant{Precip: params["precip"], Evap: params["evap"]}
	}

	return r
}

func (r *Registry) GetModel(name string) (sim.Dynamics, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (sim.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetForcing(name string, params map[string]float64) (sim.ForcingSource, error) {
	fn, ok := r.forcings[name]
	if !ok {
		return nil, fmt.Errorf("unknown forcing: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	return names
}

func (r *Registry) DefaultMetrics(dyn sim.Dynamics) []sim.Metric {
	if rm, ok := dyn.(*hydro.RiverModel); ok {
		return []sim.Metric{
			metrics.NewPeakFlow(rm.Ks, rm.Kf),
			metrics.NewTotalDischarge(rm.Ks, rm.Kf),
			metrics.NewFlowStability(rm.Ks, rm.Kf),
			metrics.NewWaterBalance(rm),
		}
	}
	return nil
}
