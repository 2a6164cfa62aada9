package hydro

import "math"

const (
	// fluxLinearThreshold is the shape-parameter magnitude below which the
	// closed form degenerates to 0/0 and the linear limit f(s)=s is used.
	fluxLinearThreshold = 1e-5

	// fluxExpCap bounds the exponent argument. Well within double range,
	// far beyond any realistic shape parameter.
	fluxExpCap = 600.0
)

// Flux is the saturation-excess flux function
//
//	f(s, a) = (1 - exp(-a*s)) / (1 - exp(-a))
//
// mapping relative storage s and shape parameter a to a flux ratio in [0,1].
// s is clamped to [0,1] first. Positive a concentrates flux near full
// storage, negative a near empty storage. The result is finite for any
// finite inputs: exponent arguments are capped and |a| <= 1e-5 takes the
// linear branch. The magnitude check must be floating point; truncating a
// to an integer here silently disables the linear branch for small
// fractional shape parameters.
func Flux(s, a float64) float64 {
	if s > 1.0 {
		s = 1.0
	}
	if s < 0.0 {
		s = 0.0
	}

	if math.Abs(a) <= fluxLinearThreshold {
		return s
	}

	return (1 - math.Exp(math.Min(fluxExpCap, -a*s))) / (1 - math.Exp(math.Min(fluxExpCap, -a)))
}
