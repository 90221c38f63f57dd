package path

import (
	"errors"
	"math"
)

// ErrInvalidLatitude is returned when a center latitude outside [-90, 90]
// is supplied to Beta0Percent; out-of-range latitude must fail loudly
// rather than be silently clamped.
var ErrInvalidLatitude = errors.New("path: center latitude must be in [-90, 90] degrees")

// Beta0Percent returns beta0, the annual time percentage for which
// super-refractive gradients exceeding 100 N-units/km occur in the lowest
// 100 m of atmosphere (Annex 2 Section 2, Eq 2-4). It is derived from two
// distinct longest-run statistics of the path -- the longest non-sea
// (land) run feeds Eq 3's mu1a term, while the longest contiguous Inland
// run feeds Eq 3a's tau term -- plus the path center latitude.
func (p Path) Beta0Percent(centerLatDeg float64) (float64, error) {
	if math.Abs(centerLatDeg) > 90 {
		return 0, ErrInvalidLatitude
	}

	longestLand := p.longestNonSeaKm()
	longestInland := p.LongestContiguousInlandKm()

	// Eq 3a
	tau := 1.0 - math.Exp(-(4.12e-4 * math.Pow(longestInland, 2.41)))
	// Eq 3
	mu1a := math.Pow(10.0, -longestLand/(16.0-6.6*tau))
	mu1b := math.Pow(10.0, -5*(0.496+0.354*tau))
	mu1 := math.Min(math.Pow(mu1a+mu1b, 0.2), 1.0)

	absPhi := math.Abs(centerLatDeg)
	if absPhi <= 70 {
		// Eq 4
		mu4 := math.Pow(10.0, (-0.935+0.0176*absPhi)*math.Log10(mu1))
		// Eq 2
		return math.Pow(10.0, -0.015*absPhi+1.67) * mu1 * mu4, nil
	}
	// Eq 4, high-latitude branch
	mu4 := math.Pow(10.0, 0.3*math.Log10(mu1))
	// Eq 2, high-latitude branch
	return 4.17 * mu1 * mu4, nil
}
