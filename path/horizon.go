package path

import (
	"math"

	"github.com/trentholliday/p452/search"
)

// HorizonResult bundles the per-terminal horizon elevation angles (mrad)
// and horizon distances (km) PathGeometry produces for the diffraction,
// anomalous-propagation and troposcatter predictors.
type HorizonResult struct {
	ThetaTMrad float64
	ThetaRMrad float64
	DLtKm      float64
	DLrKm      float64
}

// elevationMrad evaluates the Annex 1 Attachment 2 elevation-angle formula
// 1000*atan((h-hAnt)/(1000*d)) - d/(2*ae) at one profile point.
func elevationMrad(hM, hAntM, dKm, aeKm float64) float64 {
	return 1000*math.Atan((hM-hAntM)/(1000*dKm)) - dKm/(2*aeKm)
}

// bullingtonPointKm locates the Bullington point at effective radius aKm,
// given the maximum Tx-side and Rx-side curvature-corrected slopes (the
// same construction the knife-edge solver uses in Section 4.2.1). It is
// the horizon-distance marker used on line-of-sight paths, where no single
// interior point is itself the "horizon".
func bullingtonPointKm(dTot, heightTxASLm, heightRxASLm, sTim, sRim float64) float64 {
	return (heightRxASLm - heightTxASLm + sRim*dTot) / (sTim + sRim)
}

// curvatureSlope returns the curvature-corrected slope from one antenna to
// an interior point, the quantity the knife-edge Bullington solver
// maximizes over interior points (Section 4.2.1): (h_i + bulge - h_ant)/d,
// where bulge = 500*(1/a)*d_i*(d_tot-d_i) accounts for effective-Earth
// curvature between the antenna and the point.
func curvatureSlope(hM, hAntM, dKm, dTot, aKm float64) float64 {
	bulge := 500 * dKm * (dTot - dKm) / aKm
	return (hM + bulge - hAntM) / dKm
}

// HorizonAnglesAndDistances implements PathGeometry's horizon geometry
// (Section 3.3 / 4.1): for each terminal, the horizon elevation angle and
// distance, deciding line-of-sight vs trans-horizon by comparing the
// maximum intermediate elevation angle against the direct Tx-Rx angle.
func (p Path) HorizonAnglesAndDistances(heightTxASLm, heightRxASLm, aeKm float64) HorizonResult {
	dTot := p.TotalKm()
	n := len(p.points)

	thetaTR := elevationMrad(heightRxASLm, heightTxASLm, dTot, aeKm)

	interior := n - 2
	if interior <= 0 {
		// Two-point profile: trivially line-of-sight, direct geometry only.
		sTim := (heightRxASLm - heightTxASLm) / dTot
		sRim := (heightTxASLm - heightRxASLm) / dTot
		dlt := bullingtonPointKm(dTot, heightTxASLm, heightRxASLm, sTim, sRim)
		return HorizonResult{
			ThetaTMrad: thetaTR,
			ThetaRMrad: elevationMrad(heightTxASLm, heightRxASLm, dTot, aeKm),
			DLtKm:      dlt,
			DLrKm:      dTot - dlt,
		}
	}

	thetaTMax, _, _ := search.ArgMax(interior, func(j int) float64 {
		pt := p.points[j+1]
		return elevationMrad(pt.HeightASLm, heightTxASLm, pt.DistanceKm, aeKm)
	})
	thetaTVal := elevationMrad(p.points[thetaTMax+1].HeightASLm, heightTxASLm, p.points[thetaTMax+1].DistanceKm, aeKm)

	// Rx side: scan in reverse distance order so a tie resolves toward the
	// point closer to Rx (search.ArgMax keeps the first index reached).
	thetaRMaxRev, _, _ := search.ArgMax(interior, func(j int) float64 {
		pt := p.points[n-2-j]
		return elevationMrad(pt.HeightASLm, heightRxASLm, dTot-pt.DistanceKm, aeKm)
	})
	rxIdx := n - 2 - thetaRMaxRev
	thetaRVal := elevationMrad(p.points[rxIdx].HeightASLm, heightRxASLm, dTot-p.points[rxIdx].DistanceKm, aeKm)

	if thetaTVal <= thetaTR {
		// Line of sight: report the direct terminal-to-terminal angles and
		// locate the Bullington point at this effective radius.
		maxTim := maxOverInterior(p, func(pt ProfilePoint) float64 {
			return curvatureSlope(pt.HeightASLm, heightTxASLm, pt.DistanceKm, dTot, aeKm)
		})
		maxRim := maxOverInterior(p, func(pt ProfilePoint) float64 {
			return curvatureSlope(pt.HeightASLm, heightRxASLm, dTot-pt.DistanceKm, dTot, aeKm)
		})
		dlt := bullingtonPointKm(dTot, heightTxASLm, heightRxASLm, maxTim, maxRim)
		return HorizonResult{
			ThetaTMrad: thetaTR,
			ThetaRMrad: elevationMrad(heightTxASLm, heightRxASLm, dTot, aeKm),
			DLtKm:      dlt,
			DLrKm:      dTot - dlt,
		}
	}

	return HorizonResult{
		ThetaTMrad: thetaTVal,
		ThetaRMrad: thetaRVal,
		DLtKm:      p.points[thetaTMax+1].DistanceKm,
		DLrKm:      dTot - p.points[rxIdx].DistanceKm,
	}
}

// maxOverInterior returns the maximum of f over the path's interior
// points (excluding the two endpoints).
func maxOverInterior(p Path, f func(ProfilePoint) float64) float64 {
	best := math.Inf(-1)
	for _, pt := range p.points[1 : len(p.points)-1] {
		if v := f(pt); v > best {
			best = v
		}
	}
	return best
}

// PathAngularDistanceMrad computes theta, the angular path opening seen
// from the troposcatter common volume: theta = theta_t + theta_r +
// 1000*d_tot/a_e (mrad), combining the terminal horizon angles with the
// geometric opening across the effective Earth.
func PathAngularDistanceMrad(thetaTMrad, thetaRMrad, dTotKm, aeKm float64) float64 {
	return thetaTMrad + thetaRMrad + 1000*dTotKm/aeKm
}
