package sim

import (
	"context"
	"sync"
)

// BuildFunc constructs the simulator and initial state for one ensemble
// member. Members must not share Simulator instances; the model RHS itself
// is pure and safe to share, but integrators carry scratch buffers.
type BuildFunc func(member int) (*Simulator, State)

// Ensemble runs many independent simulations in parallel, one per member.
// Typical members are calibration candidates or perturbed parameter sets.
type Ensemble struct {
	build   BuildFunc
	numRuns int
}

func NewEnsemble(build BuildFunc, numRuns int) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = cfg.Seed + int64(idx)

			s, x0 := e.build(idx)
			results[idx], errs[idx] = s.Run(ctx, x0, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
