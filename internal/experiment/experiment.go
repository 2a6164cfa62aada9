// Package experiment wires a model, integrator, forcing source and metrics
// into a runnable simulation, and resolves components by name.
package experiment

import (
	"context"
	"fmt"

	"github.com/mkuiper/streamsim/internal/forcing"
	"github.com/mkuiper/streamsim/internal/sim"
)

type Config struct {
	Model      string
	Integrator string
	Forcing    string
	InitState  []float64
	Dt         float64
	Duration   float64
	Seed       int64
	Params     map[string]float64
}

type Experiment struct {
	cfg       Config
	simulator *sim.Simulator
	source    sim.ForcingSource
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(dyn sim.Dynamics, integrator sim.Integrator, source sim.ForcingSource, metrics []sim.Metric) error {
	if cfgParams := e.cfg.Params; cfgParams != nil {
		if tunable, ok := dyn.(sim.Configurable); ok {
			for name, v := range cfgParams {
				if err := tunable.SetParam(name, v); err != nil {
					return err
				}
			}
		}
	}

	e.source = source
	e.simulator = sim.New(dyn, integrator, source)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	// A daily series must cover the simulated window; the model never
	// extrapolates beyond its data.
	if s, ok := e.source.(*forcing.Series); ok {
		if !s.Covers(0, e.cfg.Duration) {
			return nil, fmt.Errorf("forcing data are not available for the full run (%g days)", e.cfg.Duration)
		}
	}

	x0 := make(sim.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := sim.Config{
		Dt:       e.cfg.Dt,
		Duration: e.cfg.Duration,
		Seed:     e.cfg.Seed,
	}

	return e.simulator.Run(ctx, x0, simCfg)
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}
