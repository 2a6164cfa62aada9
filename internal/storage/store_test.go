package storage

import (
	"testing"

	"github.com/mkuiper/streamsim/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		States: []sim.State{
			{0, 0, 0, 0, 0},
			{1.25, 0.5, 0.1, 0.05, 0.0125},
		},
		Forcings: []sim.Forcing{{10, 2}},
		Times:    []float64{0, 0.25},
		Metrics:  map[string]float64{"peak_flow": 0.3},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Model:      "river",
		Station:    "03451500",
		Dt:         0.25,
		Duration:   0.5,
		Integrator: "rk4",
		Forcing:    "constant",
		Params:     map[string]float64{"k_s": 70},
	}

	runID, err := st.Save(meta, testResult(), []float64{0, 0.021428571428571429})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Station != "03451500" {
		t.Errorf("station = %q, want 03451500", loaded.Station)
	}
	if loaded.Metrics["peak_flow"] != 0.3 {
		t.Errorf("peak_flow = %v, want 0.3", loaded.Metrics["peak_flow"])
	}
	if loaded.Params["k_s"] != 70 {
		t.Errorf("k_s = %v, want 70", loaded.Params["k_s"])
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(states) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 rows, got %d states %d times", len(states), len(times))
	}

	// time + 5 states + discharge + precip + evap
	if len(states[0]) != 8 {
		t.Fatalf("expected 8 columns past time, got %d", len(states[0]))
	}

	// Full double precision must survive the round trip.
	if states[1][0] != 1.25 {
		t.Errorf("s_i = %v, want 1.25", states[1][0])
	}
	if states[1][5] != 0.021428571428571429 {
		t.Errorf("discharge = %v, want full-precision 0.021428571428571429", states[1][5])
	}
	if states[0][6] != 10 || states[0][7] != 2 {
		t.Errorf("forcing columns = %v %v, want 10 2", states[0][6], states[0][7])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{Model: "river"}, testResult(), nil); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreSaveDistinctIDs(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	// Back-to-back saves of the same model must not share a run directory.
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		runID, err := st.Save(RunMetadata{Model: "river"}, testResult(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if seen[runID] {
			t.Fatalf("duplicate run id %q", runID)
		}
		seen[runID] = true
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New("/nonexistent/path/for/streamsim")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not error, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreDelete(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(RunMetadata{Model: "river"}, testResult(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := st.Delete(runID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := st.Load(runID); err == nil {
		t.Error("expected error loading deleted run")
	}
}
