// Package diffraction implements DiffractionPredictor (Section 4.2): the
// delta-Bullington method, combining a single knife-edge loss over the
// actual terrain with a spherical-Earth correction measured against a
// smooth-Earth equivalent, at both the median and an exceeded effective
// Earth radius, interpolated to the requested time percentage.
package diffraction

import (
	"errors"
	"fmt"
	"math"

	"github.com/trentholliday/p452/numeric"
	"github.com/trentholliday/p452/path"
)

// ErrInvalidTimePercent is returned when pPercent falls outside
// [0.001, 50], the range the interpolation formula (Eq 41a) is valid for.
var ErrInvalidTimePercent = errors.New("diffraction: time percentage must be in [0.001, 50]")

// Result holds the two loss figures DiffractionPredictor computes.
type Result struct {
	LossMedianDB float64 // delta-Bullington loss not exceeded for 50% time
	LossPDB      float64 // delta-Bullington loss not exceeded for pPercent time
}

// Predict implements Section 4.2. profile is the actual terrain; effRadius50Km
// is the median effective Earth radius (path.MedianEffectiveRadiusKm);
// beta0Percent is the time percentage beyond which anomalous refractive
// conditions are assumed; fracOverSea is omega in [0,1].
func Predict(profile path.Path, heightTxASLm, heightRxASLm, freqGHz, effRadius50Km, fracOverSea, pPercent, beta0Percent float64, pol Polarization) (Result, error) {
	if pPercent > 50 || pPercent < 0.001 {
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidTimePercent, pPercent)
	}

	effTx, effRx := smoothEarthEffectiveHeights(profile, heightTxASLm, heightRxASLm)

	lossMedianDB := deltaBullingtonLossDB(profile, heightTxASLm, heightRxASLm, effTx, effRx, effRadius50Km, freqGHz, fracOverSea, pol)

	if pPercent == 50 {
		return Result{LossMedianDB: lossMedianDB, LossPDB: lossMedianDB}, nil
	}

	// Delta-Bullington loss not exceeded for beta0Percent of time, evaluated
	// at the Earth radius exceeded for beta0 percent of time.
	lossB0DB := deltaBullingtonLossDB(profile, heightTxASLm, heightRxASLm, effTx, effRx, path.EffRadiusBPercentExceededKm, freqGHz, fracOverSea, pol)

	fi := 1.0
	if pPercent > beta0Percent {
		// Eq 41a
		fi = numeric.InvCumNorm(pPercent/100.0) / numeric.InvCumNorm(beta0Percent/100.0)
	}

	return Result{
		LossMedianDB: lossMedianDB,
		LossPDB:      numeric.Interpolate1D(lossMedianDB, lossB0DB, fi),
	}, nil
}

// smoothEarthEffectiveHeights returns the effective Tx/Rx heights above the
// least-squares smooth-Earth fit, used by the spherical-diffraction leg and
// by the smooth-path Bullington variant.
func smoothEarthEffectiveHeights(profile path.Path, heightTxASLm, heightRxASLm float64) (float64, float64) {
	smooth := profile.SmoothEarthEndpointsForDiffraction(heightTxASLm, heightRxASLm)
	return heightTxASLm - smooth.TxVal, heightRxASLm - smooth.RxVal
}

// deltaBullingtonLossDB is Eq 40: the actual-terrain Bullington loss, plus
// whatever the spherical-Earth correction adds over the smooth-Earth
// Bullington loss (floored at zero — the correction never helps).
func deltaBullingtonLossDB(profile path.Path, heightTxASLm, heightRxASLm, effHeightTxM, effHeightRxM, effRadiusKm, freqGHz, fracOverSea float64, pol Polarization) float64 {
	lBulla := bullingtonLossDB(profile, heightTxASLm, heightRxASLm, effRadiusKm, freqGHz)

	zeroHeightProfile := zeroedProfile(profile)
	lBulls := bullingtonLossDB(zeroHeightProfile, effHeightTxM, effHeightRxM, effRadiusKm, freqGHz)

	lDsph := sphericalEarthDiffractionLossDB(freqGHz, profile.TotalKm(), effHeightTxM, effHeightRxM, effRadiusKm, fracOverSea, pol)

	return lBulla + math.Max(lDsph-lBulls, 0.0)
}

// zeroedProfile returns a copy of profile with every height set to zero,
// the equivalent-smooth-Earth path the smooth-path Bullington variant runs
// against.
func zeroedProfile(profile path.Path) path.Path {
	pts := profile.Points()
	zeroed := make([]path.ProfilePoint, len(pts))
	for i, pt := range pts {
		zeroed[i] = path.ProfilePoint{DistanceKm: pt.DistanceKm, HeightASLm: 0, Zone: pt.Zone}
	}
	zp, err := path.NewPath(zeroed)
	if err != nil {
		// pts was already a valid Path; zeroing heights cannot break
		// distance monotonicity.
		panic(err)
	}
	return zp
}
