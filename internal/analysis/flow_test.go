package analysis

import (
	"math"
	"testing"
)

func TestFlowDuration(t *testing.T) {
	q := []float64{1, 5, 3, 9, 7}

	curve, err := FlowDuration(q, 5)
	if err != nil {
		t.Fatalf("FlowDuration failed: %v", err)
	}

	if len(curve) != 5 {
		t.Fatalf("expected 5 points, got %d", len(curve))
	}

	if curve[0].Discharge != 9 {
		t.Errorf("highest flow = %v, want 9", curve[0].Discharge)
	}
	if curve[len(curve)-1].Discharge != 1 {
		t.Errorf("lowest flow = %v, want 1", curve[len(curve)-1].Discharge)
	}

	// Monotonic: discharge falls as exceedance rises.
	for i := 1; i < len(curve); i++ {
		if curve[i].Discharge > curve[i-1].Discharge {
			t.Errorf("curve not monotonic at %d", i)
		}
		if curve[i].Exceedance <= curve[i-1].Exceedance {
			t.Errorf("exceedance not increasing at %d", i)
		}
	}
}

func TestFlowDurationErrors(t *testing.T) {
	if _, err := FlowDuration(nil, 5); err == nil {
		t.Error("expected error for empty series")
	}
	if _, err := FlowDuration([]float64{1}, 1); err == nil {
		t.Error("expected error for too few points")
	}
}

func TestBaseflowConstantFlow(t *testing.T) {
	// Constant discharge is all baseflow.
	q := []float64{5, 5, 5, 5, 5}

	base, quick, err := Baseflow(q, 0.925)
	if err != nil {
		t.Fatalf("Baseflow failed: %v", err)
	}

	for i := range q {
		if math.Abs(base[i]-5) > 1e-12 {
			t.Errorf("base[%d] = %v, want 5", i, base[i])
		}
		if quick[i] != 0 {
			t.Errorf("quick[%d] = %v, want 0", i, quick[i])
		}
	}
}

func TestBaseflowPartition(t *testing.T) {
	q := []float64{2, 2, 10, 6, 3, 2, 2}

	base, quick, err := Baseflow(q, 0.925)
	if err != nil {
		t.Fatalf("Baseflow failed: %v", err)
	}

	for i := range q {
		if math.Abs(base[i]+quick[i]-q[i]) > 1e-12 {
			t.Errorf("partition broken at %d: %v + %v != %v", i, base[i], quick[i], q[i])
		}
		if base[i] < 0 || quick[i] < 0 {
			t.Errorf("negative component at %d", i)
		}
	}

	// The peak day should carry quickflow.
	if quick[2] == 0 {
		t.Error("expected quickflow on the event peak")
	}
}

func TestBaseflowErrors(t *testing.T) {
	if _, _, err := Baseflow(nil, 0.9); err == nil {
		t.Error("expected error for empty series")
	}
	if _, _, err := Baseflow([]float64{1}, 1.5); err == nil {
		t.Error("expected error for invalid alpha")
	}
}

func TestBaseflowIndex(t *testing.T) {
	bfi, err := BaseflowIndex([]float64{5, 5, 5, 5}, 0.925)
	if err != nil {
		t.Fatalf("BaseflowIndex failed: %v", err)
	}
	if math.Abs(bfi-1.0) > 1e-12 {
		t.Errorf("BFI of constant flow = %v, want 1.0", bfi)
	}

	bfi, err = BaseflowIndex([]float64{2, 2, 10, 6, 3, 2, 2}, 0.925)
	if err != nil {
		t.Fatal(err)
	}
	if bfi <= 0 || bfi >= 1 {
		t.Errorf("BFI = %v, want value in (0,1) for event series", bfi)
	}

	if _, err := BaseflowIndex([]float64{0, 0}, 0.925); err == nil {
		t.Error("expected error for zero total flow")
	}
}
