package path

// EffRadiusBPercentExceededKm is the effective Earth radius exceeded for
// b0 percent of time (Eq 6b), fixed at 3 times the true
// Earth radius regardless of delta-N.
const EffRadiusBPercentExceededKm = 6371.0 * 3.0

// MedianEffectiveRadiusKm returns the median effective Earth radius
// a_e50 (Eq 5, 6a) for the given surface refractivity lapse rate deltaN
// (N-units/km, positive). deltaN approaching 157 drives the radius to
// infinity; callers validate deltaN < 157 before calling (InvalidEnvironment
// in the combining package).
func MedianEffectiveRadiusKm(deltaN float64) float64 {
	k50 := 157.0 / (157.0 - deltaN) // Eq 5
	return 6371.0 * k50              // Eq 6a
}
