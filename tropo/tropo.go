// Package tropo implements TroposcatterPredictor (Section 4.3): the
// empirical forward-scatter loss over the common volume illuminated by
// both terminals' horizon beams.
package tropo

import (
	"errors"
	"fmt"
	"math"

	"github.com/trentholliday/p452/gas"
	"github.com/trentholliday/p452/path"
)

// ErrInvalidTimePercent is returned when pPercent falls outside
// [0.001, 50].
var ErrInvalidTimePercent = errors.New("tropo: time percentage must be in [0.001, 50]")

// troposcatterWaterVaporDensityGM3 is the fixed water-vapor density the
// troposcatter gas term uses (Eq 9), independent of the path's actual
// fraction over sea.
const troposcatterWaterVaporDensityGM3 = 3.0

// Predict implements Eq 45: thetaTMrad/thetaRMrad are the true (unmodified)
// terminal horizon elevation angles, effRadius50Km the median effective
// Earth radius, seaLevelSurfaceRefractivity is N0 at the path centre, and
// txHorizonGainDBi/rxHorizonGainDBi are each antenna's gain toward its
// horizon.
func Predict(link gas.Link, dTotKm, heightTxASLm, heightRxASLm, freqGHz, thetaTMrad, thetaRMrad, effRadius50Km,
	seaLevelSurfaceRefractivity, txHorizonGainDBi, rxHorizonGainDBi, tempK, dryPressureHPa, pPercent float64) (float64, error) {

	if pPercent > 50 || pPercent < 0.001 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTimePercent, pPercent)
	}

	pathAngularDistanceMrad := path.PathAngularDistanceMrad(thetaTMrad, thetaRMrad, dTotKm, effRadius50Km)

	// Eq 45a
	frequencyDependentLossDB := 25.0*math.Log10(freqGHz) - 2.5*math.Pow(math.Log10(freqGHz/2.0), 2)
	// Eq 45b
	apertureToMediumCouplingLossDB := 0.051 * math.Exp(0.055*(txHorizonGainDBi+rxHorizonGainDBi))

	// Eq 8a
	dLosKm := math.Sqrt(dTotKm*dTotKm + math.Pow((heightTxASLm-heightRxASLm)/1000.0, 2))
	gasLossDB, err := gas.TerrestrialPathAttenuationDB(link, dLosKm, freqGHz, tempK, dryPressureHPa,
		gas.WaterVaporDensityToPressureHPa(troposcatterWaterVaporDensityGM3, tempK))
	if err != nil {
		return 0, err
	}

	// Eq 45
	return 190.0 + frequencyDependentLossDB + 20.0*math.Log10(dTotKm) + 0.573*pathAngularDistanceMrad -
		0.15*seaLevelSurfaceRefractivity + apertureToMediumCouplingLossDB + gasLossDB -
		10.1*math.Pow(-math.Log10(pPercent/50.0), 0.7), nil
}
