package forcing

import (
	"fmt"
	"math"

	"github.com/mkuiper/streamsim/internal/sim"
)

// Series holds daily forcing records and serves them as piecewise-constant
// forcing: the value for day d applies on [d, d+1). Times are days since
// the series start plus Start.
type Series struct {
	Start  float64
	precip []float64
	evap   []float64
	flow   []float64
}

func NewSeries(start float64, precip, evap []float64) (*Series, error) {
	if len(precip) != len(evap) {
		return nil, fmt.Errorf("forcing: precip and evap lengths differ (%d vs %d)", len(precip), len(evap))
	}
	return &Series{Start: start, precip: precip, evap: evap}, nil
}

// WithFlow attaches an observed streamflow series, used by calibration.
func (s *Series) WithFlow(flow []float64) *Series {
	s.flow = flow
	return s
}

func (s *Series) Len() int { return len(s.precip) }

// Flow returns the observed streamflow series, or nil if none was attached.
func (s *Series) Flow() []float64 { return s.flow }

func (s *Series) At(t float64) sim.Forcing {
	day := int(math.Floor(t - s.Start))
	if day < 0 || day >= len(s.precip) {
		return sim.Forcing{0, 0}
	}
	return sim.Forcing{s.precip[day], s.evap[day]}
}

// Covers reports whether every day touched by the half-open window
// [t0, t1) has data, so a series of exactly n days covers an n-day run.
func (s *Series) Covers(t0, t1 float64) bool {
	if t1 <= t0 {
		return false
	}
	first := int(math.Floor(t0 - s.Start))
	last := int(math.Ceil(t1-s.Start)) - 1
	return first >= 0 && last < len(s.precip)
}

// FlowAt returns the observed streamflow for the day containing t.
func (s *Series) FlowAt(t float64) (float64, bool) {
	day := int(math.Floor(t - s.Start))
	if s.flow == nil || day < 0 || day >= len(s.flow) {
		return 0, false
	}
	return s.flow[day], true
}
