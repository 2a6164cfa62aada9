package forcing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeriesAt(t *testing.T) {
	precip := []float64{0, 10, 0, 20, 20, 0, 1}
	evap := []float64{3, 3.5, 4, 4.5, 5, 5.5, 5.5}

	s, err := NewSeries(1, precip, evap)
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	u := s.At(1)
	if u[0] != 0 || u[1] != 3 {
		t.Errorf("At(1) = %v, want [0 3]", u)
	}

	u = s.At(7)
	if u[0] != 1 || u[1] != 5.5 {
		t.Errorf("At(7) = %v, want [1 5.5]", u)
	}

	// Piecewise constant within a day.
	u = s.At(2.75)
	if u[0] != 10 || u[1] != 3.5 {
		t.Errorf("At(2.75) = %v, want [10 3.5]", u)
	}
}

func TestSeriesOutOfRange(t *testing.T) {
	s, err := NewSeries(0, []float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	for _, tt := range []float64{-1, 2, 100} {
		u := s.At(tt)
		if u[0] != 0 || u[1] != 0 {
			t.Errorf("At(%v) = %v, want zeros out of range", tt, u)
		}
	}
}

func TestSeriesCovers(t *testing.T) {
	s, _ := NewSeries(1, make([]float64, 7), make([]float64, 7))

	if !s.Covers(1, 7) {
		t.Error("expected coverage of [1,7]")
	}
	// A 7-day series covers exactly a 7-day window.
	if !s.Covers(1, 8) {
		t.Error("expected coverage of [1,8)")
	}
	if s.Covers(1, 8.5) {
		t.Error("expected no coverage past the last day")
	}
	if s.Covers(10, 12) {
		t.Error("expected no coverage of [10,12]")
	}
	if s.Covers(0, 3) {
		t.Error("expected no coverage before start")
	}
	if s.Covers(5, 3) {
		t.Error("expected no coverage for inverted range")
	}
}

func TestSeriesMismatchedLengths(t *testing.T) {
	if _, err := NewSeries(0, []float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestSeriesFlow(t *testing.T) {
	s, _ := NewSeries(0, []float64{1}, []float64{2})

	if s.Flow() != nil {
		t.Error("expected nil flow before WithFlow")
	}
	if _, ok := s.FlowAt(0); ok {
		t.Error("expected no flow value before WithFlow")
	}

	s.WithFlow([]float64{7.5})
	q, ok := s.FlowAt(0.5)
	if !ok || q != 7.5 {
		t.Errorf("FlowAt(0.5) = %v, %v; want 7.5, true", q, ok)
	}
}

func TestLoadDLY(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "03451500.dly")

	content := "1990\t1\t1\t0\t3\t6.1\t10\t2\n" +
		"1990\t1\t2\t10\t3.5\t7.2\t11\t3\n" +
		"1990\t1\t3\t0\t4\t6.8\t12\t4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadDLY(path)
	if err != nil {
		t.Fatalf("LoadDLY failed: %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", s.Len())
	}

	u := s.At(1)
	if u[0] != 10 || u[1] != 3.5 {
		t.Errorf("At(1) = %v, want [10 3.5]", u)
	}

	q, ok := s.FlowAt(2)
	if !ok || q != 6.8 {
		t.Errorf("FlowAt(2) = %v, %v; want 6.8, true", q, ok)
	}
}

func TestLoadDLYErrors(t *testing.T) {
	if _, err := LoadDLY("nonexistent.dly"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dly")
	if err := os.WriteFile(path, []byte("1990\t1\t1\tnotanumber\t3\t6.1\t10\t2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDLY(path); err == nil {
		t.Error("expected error for malformed value")
	}
}
