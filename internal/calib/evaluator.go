package calib

import (
	"context"
	"fmt"
	"math"

	"github.com/mkuiper/streamsim/internal/forcing"
	"github.com/mkuiper/streamsim/internal/hydro"
	"github.com/mkuiper/streamsim/internal/integrators"
	"github.com/mkuiper/streamsim/internal/sim"
)

// Objective scores a simulated discharge series against observations;
// lower must mean better, so efficiency-style scores should be negated.
type Objective func(simulated, observed []float64) (float64, error)

// Evaluator runs the river model over a forcing series for one candidate
// parameter set and scores the daily discharge against the observed flow.
// Each call builds its own model and integrator, so evaluations can run
// concurrently, one Evaluator shared across goroutines.
type Evaluator struct {
	Series    *forcing.Series
	Dt        float64
	Warmup    int // leading days excluded from scoring
	Objective Objective
}

func NewEvaluator(series *forcing.Series) *Evaluator {
	return &Evaluator{
		Series:    series,
		Dt:        0.25,
		Warmup:    0,
		Objective: RMSE,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, params map[string]float64) (float64, error) {
	observed := e.Series.Flow()
	if observed == nil {
		return 0, fmt.Errorf("calib: forcing series has no observed flow")
	}

	days := e.Series.Len()
	if e.Warmup >= days {
		return 0, fmt.Errorf("calib: warmup %d exceeds series length %d", e.Warmup, days)
	}

	simulated, err := e.simulateDischarge(ctx, params)
	if err != nil {
		return 0, err
	}

	return e.Objective(simulated[e.Warmup:], observed[e.Warmup:])
}

// simulateDischarge runs one candidate over the full series and returns
// the daily discharge it produces.
func (e *Evaluator) simulateDischarge(ctx context.Context, params map[string]float64) ([]float64, error) {
	model := hydro.NewRiverModel()
	for name, v := range params {
		if err := model.SetParam(name, v); err != nil {
			return nil, err
		}
	}

	s := sim.New(model, integrators.NewRK4(), e.Series)

	days := e.Series.Len()
	cfg := sim.Config{
		Dt:            e.Dt,
		Duration:      float64(days),
		ValidateState: true,
	}

	result, err := s.Run(ctx, model.DefaultState(), cfg)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("calib: candidate diverged: %w", result.Errors[0])
	}

	return DailyDischarge(model, result, e.Dt, days), nil
}

// DailyDischarge samples the discharge implied by the state closest to
// each day boundary.
func DailyDischarge(model *hydro.RiverModel, result *sim.Result, dt float64, days int) []float64 {
	q := make([]float64, days)
	if len(result.States) == 0 {
		return q
	}

	for d := 0; d < days; d++ {
		idx := int(math.Round(float64(d+1) / dt))
		if idx >= len(result.States) {
			idx = len(result.States) - 1
		}
		q[d] = model.Discharge(result.States[idx])
	}
	return q
}
