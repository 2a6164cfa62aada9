package analysis

import (
	"fmt"
	"sort"
)

// FlowDuration returns the flow-duration curve of a discharge series:
// n points of (exceedance probability, discharge), sorted from rarely
// exceeded high flows to almost-always exceeded low flows.
type DurationPoint struct {
	Exceedance float64 // fraction of time the discharge is exceeded
	Discharge  float64
}

func FlowDuration(q []float64, n int) ([]DurationPoint, error) {
	if len(q) == 0 {
		return nil, fmt.Errorf("analysis: empty discharge series")
	}
	if n < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 curve points, got %d", n)
	}

	sorted := make([]float64, len(q))
	copy(sorted, q)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	curve := make([]DurationPoint, n)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n-1)
		idx := int(p * float64(len(sorted)-1))
		curve[i] = DurationPoint{Exceedance: p, Discharge: sorted[idx]}
	}
	return curve, nil
}

// Baseflow splits a discharge series into baseflow and quickflow with the
// Lyne-Hollick one-parameter digital filter. alpha is the filter constant,
// typically 0.9 to 0.95 for daily data.
func Baseflow(q []float64, alpha float64) (base, quick []float64, err error) {
	if len(q) == 0 {
		return nil, nil, fmt.Errorf("analysis: empty discharge series")
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, nil, fmt.Errorf("analysis: filter constant must be in (0,1), got %g", alpha)
	}

	base = make([]float64, len(q))
	quick = make([]float64, len(q))

	for i := 1; i < len(q); i++ {
		f := alpha*quick[i-1] + 0.5*(1+alpha)*(q[i]-q[i-1])
		if f < 0 {
			f = 0
		}
		if f > q[i] {
			f = q[i]
		}
		quick[i] = f
		base[i] = q[i] - f
	}
	base[0] = q[0]

	return base, quick, nil
}

// BaseflowIndex is the fraction of total flow classified as baseflow.
func BaseflowIndex(q []float64, alpha float64) (float64, error) {
	base, _, err := Baseflow(q, alpha)
	if err != nil {
		return 0, err
	}

	var total, baseTotal float64
	for i := range q {
		total += q[i]
		baseTotal += base[i]
	}
	if total == 0 {
		return 0, fmt.Errorf("analysis: zero total flow")
	}
	return baseTotal / total, nil
}
