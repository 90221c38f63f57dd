package path

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// HeightPair holds a Tx-side and Rx-side value, the common shape returned
// by the smooth-earth fitting routines below.
type HeightPair struct {
	TxVal float64
	RxVal float64
}

// LeastSquaresSmoothEarthEndpoints fits the least-squares straight line
// approximation of Annex 2 Section 5.1.6.2 through the terrain profile and
// returns its Tx and Rx endpoint heights, in meters above mean sea level.
// The two recurrence sums (Eq 161, 162) are accumulated per-interval and
// reduced with gonum's summation rather than a hand-rolled running total.
func (p Path) LeastSquaresSmoothEarthEndpoints() HeightPair {
	dTot := p.TotalKm()

	n := len(p.points) - 1
	v1Terms := make([]float64, n)
	v2Terms := make([]float64, n)
	last := p.points[0]
	for i, cur := range p.points[1:] {
		dd := cur.DistanceKm - last.DistanceKm
		// Eq 161
		v1Terms[i] = dd * (cur.HeightASLm + last.HeightASLm)
		// Eq 162
		v2Terms[i] = dd * (cur.HeightASLm*(2*cur.DistanceKm+last.DistanceKm) +
			last.HeightASLm*(cur.DistanceKm+2*last.DistanceKm))
		last = cur
	}
	v1 := floats.Sum(v1Terms)
	v2 := floats.Sum(v2Terms)

	return HeightPair{
		// Eq 163
		TxVal: (2.0*v1*dTot - v2) / (dTot * dTot),
		// Eq 164
		RxVal: (v2 - v1*dTot) / (dTot * dTot),
	}
}

// SmoothEarthEndpointsForDiffraction returns the effective smooth-earth
// antenna heights used by the diffraction predictor (Annex 2 Section
// 5.1.6.3, Eq 165-167): the least-squares fit corrected for the single
// highest obstruction on the path, then clamped from above by the actual
// terrain height at each endpoint.
func (p Path) SmoothEarthEndpointsForDiffraction(heightTxASLm, heightRxASLm float64) HeightPair {
	dTot := p.TotalKm()
	heightTxAMSL := heightTxASLm
	heightRxAMSL := heightRxASLm

	heightObsMax := math.Inf(-1)
	alphaObsTMax := math.Inf(-1)
	alphaObsRMax := math.Inf(-1)

	for i := 1; i < len(p.points)-1; i++ {
		pt := p.points[i]
		deltaD := dTot - pt.DistanceKm
		// Eq 165d
		heightVal := pt.HeightASLm - (heightTxAMSL*deltaD+heightRxAMSL*pt.DistanceKm)/dTot
		// Eq 165a
		heightObsMax = math.Max(heightObsMax, heightVal)
		// Eq 165b
		alphaObsTMax = math.Max(alphaObsTMax, heightVal/pt.DistanceKm)
		// Eq 165c
		alphaObsRMax = math.Max(alphaObsRMax, heightVal/deltaD)
	}

	lsq := p.LeastSquaresSmoothEarthEndpoints()
	hstp := lsq.TxVal // Eq 166a
	hsrp := lsq.RxVal // Eq 166b

	if heightObsMax > 0 {
		v1 := alphaObsTMax + alphaObsRMax
		gt := alphaObsTMax / v1 // Eq 166e
		gr := alphaObsRMax / v1 // Eq 166f
		hstp -= heightObsMax * gt // Eq 166c
		hsrp -= heightObsMax * gr // Eq 166d
	}

	return HeightPair{
		// Eq 167 a,b
		TxVal: math.Min(p.points[0].HeightASLm, hstp),
		// Eq 167 c,d
		RxVal: math.Min(p.points[len(p.points)-1].HeightASLm, hsrp),
	}
}
