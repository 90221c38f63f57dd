package diffraction

import (
	"math"

	"github.com/trentholliday/p452/path"
	"github.com/trentholliday/p452/units"
)

// bullingtonLossDB implements Section 4.2.1, Eq 13-22: the single
// knife-edge approximation at the Bullington point, found by intersecting
// the highest-slope ray from each terminal. profile may be the actual
// terrain or the zero-height profile used for the smooth-earth variant;
// heightTxASLm/heightRxASLm are the corresponding terminal heights above
// mean sea level for that profile.
func bullingtonLossDB(profile path.Path, heightTxASLm, heightRxASLm, effRadiusKm, freqGHz float64) float64 {
	ce := 1.0 / effRadiusKm
	wavelengthM := units.NewFrequencyGHz(freqGHz).WavelengthM()
	dTot := profile.TotalKm()
	pts := profile.Points()

	// Eq 14: max slope from Tx to each interior point.
	maxSlopeTx := math.Inf(-1)
	for _, pt := range pts[1 : len(pts)-1] {
		slope := (pt.HeightASLm + 500*ce*pt.DistanceKm*(dTot-pt.DistanceKm) - heightTxASLm) / pt.DistanceKm
		maxSlopeTx = math.Max(maxSlopeTx, slope)
	}

	// Eq 15: slope of the direct Tx-Rx ray.
	slopeTrLos := (heightRxASLm - heightTxASLm) / dTot

	var lossKnifeEdgeDB float64

	if maxSlopeTx < slopeTrLos {
		// Case 1: LOS path. Eq 16: diffraction parameter nu at every
		// interior point, take the worst case.
		nuMax := math.Inf(-1)
		for _, pt := range pts[1 : len(pts)-1] {
			deltaD := dTot - pt.DistanceKm
			v1 := pt.HeightASLm + 500.0*ce*pt.DistanceKm*deltaD -
				(heightTxASLm*deltaD+heightRxASLm*pt.DistanceKm)/dTot
			v2 := math.Sqrt(0.002 * dTot / (wavelengthM * pt.DistanceKm * deltaD))
			nuMax = math.Max(nuMax, v1*v2)
		}
		if nuMax > -0.78 {
			lossKnifeEdgeDB = knifeEdgeLossDB(nuMax) // Eq 13, 17
		}
	} else {
		// Case 2: trans-horizon path. Eq 18: max slope from Rx.
		maxSlopeRx := math.Inf(-1)
		for _, pt := range pts[1 : len(pts)-1] {
			slope := (pt.HeightASLm + 500*ce*pt.DistanceKm*(dTot-pt.DistanceKm) - heightRxASLm) / (dTot - pt.DistanceKm)
			maxSlopeRx = math.Max(maxSlopeRx, slope)
		}

		// Eq 19: distance from the Bullington point to Tx.
		dbp := (heightRxASLm - heightTxASLm + maxSlopeRx*dTot) / (maxSlopeTx + maxSlopeRx)

		// Eq 20: diffraction parameter nu at the Bullington point.
		nub := (heightTxASLm + maxSlopeTx*dbp - (heightTxASLm*(dTot-dbp)+heightRxASLm*dbp)/dTot) *
			math.Sqrt(0.002*dTot/(wavelengthM*dbp*(dTot-dbp)))

		if nub > -0.78 {
			lossKnifeEdgeDB = knifeEdgeLossDB(nub) // Eq 13, 21
		}
	}

	// Eq 22: Bullington loss, blending the knife-edge approximation toward
	// free space as it gets small.
	return lossKnifeEdgeDB + (1-math.Exp(-lossKnifeEdgeDB/6.0))*(10+0.02*dTot)
}

// knifeEdgeLossDB is Eq 13: the single knife-edge diffraction loss for
// Fresnel-Kirchhoff parameter nu, valid for nu > -0.78.
func knifeEdgeLossDB(nu float64) float64 {
	return 6.9 + 20.0*math.Log10(math.Sqrt((nu-0.1)*(nu-0.1)+1.0)+nu-0.1)
}

// ActualPathSlopes returns S_tim (the maximum Tx-side curvature-corrected
// slope, Eq 14) and S_tr (the direct Tx-Rx slope, Eq 15) on profile at
// effRadiusKm: the same two quantities the knife-edge solver's LOS/
// trans-horizon branch compares, exposed for the combiner's slope blend
// (Section 4.6 step 6).
func ActualPathSlopes(profile path.Path, heightTxASLm, heightRxASLm, effRadiusKm float64) (sTim, sTr float64) {
	ce := 1.0 / effRadiusKm
	dTot := profile.TotalKm()
	pts := profile.Points()

	sTim = math.Inf(-1)
	for _, pt := range pts[1 : len(pts)-1] {
		slope := (pt.HeightASLm + 500*ce*pt.DistanceKm*(dTot-pt.DistanceKm) - heightTxASLm) / pt.DistanceKm
		sTim = math.Max(sTim, slope)
	}
	sTr = (heightRxASLm - heightTxASLm) / dTot
	return sTim, sTr
}
