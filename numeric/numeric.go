// Package numeric collects the small closed-form numerical kernels that
// several predictor packages share: the inverse standard-normal
// approximation used by the diffraction time-percentage interpolation, the
// linear interpolation convention used throughout the combiner, and a
// numerically stable log-sum-exp used by the soft-minimum blend in the
// final combiner step.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// invCumNorm coefficients, Annex 1 Attachment 3 rational approximation.
const (
	invCumNormC0 = 2.515516698
	invCumNormC1 = 0.802853
	invCumNormC2 = 0.010328
	invCumNormD1 = 1.432788
	invCumNormD2 = 0.189269
	invCumNormD3 = 0.001308

	// invCumNormFloor is the lower clamp on the approximation's argument;
	// this is one of the four intentional clamps in the whole core.
	invCumNormFloor = 1e-6
)

// InvCumNorm evaluates the Annex 1 Attachment 3 rational approximation of
// the inverse standard-normal cumulative distribution, Phi^-1(prob). The
// argument is clamped to a 1e-6 floor before evaluation so the function is
// defined for every p the core is asked to evaluate, including p -> 0.
func InvCumNorm(prob float64) float64 {
	p := math.Max(prob, invCumNormFloor)
	tx := math.Sqrt(-2 * math.Log(p))
	ksi := ((invCumNormC2*tx+invCumNormC1)*tx + invCumNormC0) /
		(((invCumNormD3*tx+invCumNormD2)*tx+invCumNormD1)*tx + 1)
	return ksi - tx
}

// Interpolate1D performs the linear interpolation the combiner uses
// throughout Section 4.6: at fraction f along [a, b], the value is
// a + f*(b-a). f is not clamped to [0,1]; callers that need extrapolation
// guards apply them at the call site.
func Interpolate1D(a, b, f float64) float64 {
	return a + f*(b-a)
}

// LogSumExp returns eta*ln(exp(a/eta) + exp(b/eta)), the smooth blend the
// combiner uses between ducting loss and LOS-plus-multipath loss. Delegates
// the shifted, overflow-safe summation to gonum's floats.LogSumExp rather
// than hand-rolling the stabilisation, per the Numerical Hazards note on
// the log-sum-exp step.
func LogSumExp(a, b, eta float64) float64 {
	return eta * floats.LogSumExp([]float64{a / eta, b / eta})
}
