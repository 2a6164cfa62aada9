package hydro

import (
	"math"
	"sync"
	"testing"

	"github.com/mkuiper/streamsim/internal/sim"
)

// testModel is a small catchment whose hand-computed fluxes the tests
// below pin down.
func testModel() *RiverModel {
	return &RiverModel{
		Imax:   2.5,
		Sumax:  100.0,
		Qsmax:  7.0,
		AlphaE: 1.0,
		AlphaF: -0.5,
		AlphaS: 0.0,
		AlphaI: 50.0,
		Ks:     60.0,
		Kf:     3.25,
	}
}

func TestRiverModelDimensions(t *testing.T) {
	m := NewRiverModel()

	if m.StateDim() != 5 {
		t.Errorf("expected state dim 5, got %d", m.StateDim())
	}
	if m.ForcingDim() != 2 {
		t.Errorf("expected forcing dim 2, got %d", m.ForcingDim())
	}
}

func TestRiverModelDryCatchment(t *testing.T) {
	// Completely dry conditions: no change in any component.
	m := testModel()

	x := make(sim.State, NumStates)
	dx := m.Derivative(x, sim.Forcing{0, 1.0}, 0)

	for i, d := range dx {
		if d != 0 {
			t.Errorf("dx[%d] = %v, want 0 for dry catchment", i, d)
		}
	}
}

func TestRiverModelPrecipEntersInterception(t *testing.T) {
	m := testModel()

	x := make(sim.State, NumStates)
	dx := m.Derivative(x, sim.Forcing{10.0, 1.0}, 0)

	if math.Abs(dx[StateInterception]-10.0) > 1e-10 {
		t.Errorf("d(S_i) = %v, want 10.0 (all precipitation intercepted)", dx[StateInterception])
	}
	if dx[StateOutflow] < 0 {
		t.Errorf("d(z) = %v, want >= 0", dx[StateOutflow])
	}
}

func TestRiverModelFullInterceptionPassesThrough(t *testing.T) {
	// With interception storage at capacity, all precipitation reaches the
	// unsaturated zone.
	m := testModel()

	x := sim.State{2.5, 0, 0, 0, 0}
	dx := m.Derivative(x, sim.Forcing{5.0, 1.0}, 0)

	if math.Abs(dx[StateUnsaturated]-5.0) > 1e-10 {
		t.Errorf("d(S_u) = %v, want 5.0", dx[StateUnsaturated])
	}
}

func TestRiverModelTimeConstantOrdering(t *testing.T) {
	x := sim.State{0.5, 0.5, 0.5, 0.5, 0}
	u := sim.Forcing{5.0, 1.0}

	slow := testModel()
	slow.Ks = 10.0
	slower := testModel()
	slower.Ks = 1000.0

	if d1, d2 := slow.Derivative(x, u, 0), slower.Derivative(x, u, 0); d2[StateSlow] < d1[StateSlow] {
		t.Errorf("larger K_s should drain slower: d3=%v vs %v", d2[StateSlow], d1[StateSlow])
	}

	fast := testModel()
	fast.Kf = 3.2
	faster := testModel()
	faster.Kf = 32.0

	if d1, d2 := fast.Derivative(x, u, 0), faster.Derivative(x, u, 0); d2[StateFast] < d1[StateFast] {
		t.Errorf("larger K_f should drain slower: d4=%v vs %v", d2[StateFast], d1[StateFast])
	}
}

func TestRiverModelReservoirLinearity(t *testing.T) {
	// With S_s=100, K_s=10 and all else zero, the slow stream is exactly
	// 10.0 in full double precision.
	m := testModel()
	m.Ks = 10.0

	x := sim.State{0, 0, 100.0, 0, 0}
	dx := m.Derivative(x, sim.Forcing{0, 0}, 0)

	if dx[StateSlow] != -10.0 {
		t.Errorf("d(S_s) = %v, want exactly -10.0", dx[StateSlow])
	}
	if dx[StateOutflow] != 10.0 {
		t.Errorf("d(z) = %v, want exactly 10.0", dx[StateOutflow])
	}
	if m.Discharge(x) != 10.0 {
		t.Errorf("Discharge = %v, want exactly 10.0", m.Discharge(x))
	}
}

func TestRiverModelMassBalance(t *testing.T) {
	// d1+d2+d3+d4+d5 must equal precip minus the two evaporative losses.
	m := testModel()

	states := []sim.State{
		{0, 0, 0, 0, 0},
		{1.0, 50.0, 20.0, 5.0, 0},
		{2.5, 100.0, 200.0, 30.0, 12.0},
	}
	u := sim.Forcing{10.0, 2.0}

	for _, x := range states {
		dx := m.Derivative(x, u, 0)

		interceptEvap := u[1] * Flux(x[StateInterception]/m.Imax, m.AlphaI)
		unsatEvap := math.Max(0, u[1]-interceptEvap) * Flux(x[StateUnsaturated]/m.Sumax, m.AlphaE)

		sum := 0.0
		for _, d := range dx {
			sum += d
		}

		if residual := sum - (u[0] - interceptEvap - unsatEvap); math.Abs(residual) > 1e-10 {
			t.Errorf("mass balance residual %v for state %v", residual, x)
		}

		if dx[StateInterception] < -u[1] {
			t.Errorf("interception loses more than total demand: d1=%v", dx[StateInterception])
		}
	}
}

func TestRiverModelFiniteOutputs(t *testing.T) {
	m := NewRiverModel()

	states := []sim.State{
		{0, 0, 0, 0, 0},
		{9.0, 200.0, 1000.0, 500.0, 1e6},
		{-1.0, -5.0, 0, 0, 0}, // negative storages still clamp inside Flux
	}
	forcings := []sim.Forcing{{0, 0}, {500.0, 50.0}}

	for _, x := range states {
		for _, u := range forcings {
			if dx := m.Derivative(x, u, 0); !dx.IsValid() {
				t.Errorf("non-finite derivative for state %v, forcing %v: %v", x, u, dx)
			}
		}
	}
}

func TestRiverModelPure(t *testing.T) {
	m := testModel()
	x := sim.State{1.0, 50.0, 20.0, 5.0, 3.0}
	orig := x.Clone()
	u := sim.Forcing{10.0, 2.0}

	d1 := m.Derivative(x, u, 0)
	d2 := m.Derivative(x, u, 123.0) // autonomous: t must not matter

	for i := range d1 {
		if d1[i] != d2[i] {
			t.Errorf("derivative depends on t at index %d: %v vs %v", i, d1[i], d2[i])
		}
	}
	for i := range x {
		if x[i] != orig[i] {
			t.Errorf("state mutated at index %d", i)
		}
	}
}

func TestRiverModelConcurrent(t *testing.T) {
	m := testModel()
	x := sim.State{1.0, 50.0, 20.0, 5.0, 3.0}
	u := sim.Forcing{10.0, 2.0}
	want := m.Derivative(x, u, 0)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				got := m.Derivative(x, u, 0)
				for k := range got {
					if got[k] != want[k] {
						t.Errorf("concurrent evaluation diverged at index %d", k)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestRiverModelParams(t *testing.T) {
	m := NewRiverModel()

	params := m.GetParams()
	if len(params) != 9 {
		t.Fatalf("expected 9 parameters, got %d", len(params))
	}

	if err := m.SetParam("k_s", 42.0); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if m.Ks != 42.0 {
		t.Errorf("K_s = %v, want 42.0", m.Ks)
	}

	if err := m.SetParam("bogus", 1.0); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func BenchmarkRiverModelDerivative(b *testing.B) {
	m := NewRiverModel()
	x := sim.State{1.0, 50.0, 20.0, 5.0, 3.0}
	u := sim.Forcing{10.0, 2.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Derivative(x, u, 0)
	}
}
