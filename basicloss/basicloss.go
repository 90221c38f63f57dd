// Package basicloss implements BasicLosPredictor (Section 4.1):
// free-space loss plus gaseous absorption, and a signed multipath/focusing
// correction evaluated at two time percentages.
package basicloss

import (
	"math"

	"github.com/trentholliday/p452/gas"
)

// FreeSpaceLossConstantDB is the free-space loss constant at 1 GHz*km.
// Two values appear across ITU-R P.452 revisions (92.4 and 92.45); 92.4
// is used here to match the P.452-17 validation spreadsheets.
const FreeSpaceLossConstantDB = 92.4

// Result holds the three scalars BasicLosPredictor computes.
type Result struct {
	LBfsgDB float64 // free-space + gas loss
	LB0pDB  float64 // LBfsg + multipath/focusing correction at p
	LB0Beta float64 // LBfsg + multipath/focusing correction at beta0
}

// Predict implements Section 4.1. dTotKm is the total path length,
// heightTxASLm/heightRxASLm the antenna heights above mean sea level,
// fracOverSea omega in [0,1], dLtKm/dLrKm the terminal horizon distances,
// pPercent and beta0Percent the two time percentages to evaluate the
// multipath correction at.
func Predict(link gas.Link, dTotKm, heightTxASLm, heightRxASLm, freqGHz, tempK, dryPressureHPa, fracOverSea, pPercent, beta0Percent, dLtKm, dLrKm float64) (Result, error) {
	// Eq 8a
	dLosKm := math.Sqrt(dTotKm*dTotKm + math.Pow((heightTxASLm-heightRxASLm)/1000.0, 2))
	// Eq 9a
	rho := 7.5 + 2.5*fracOverSea
	waterVaporHPa := gas.WaterVaporDensityToPressureHPa(rho, tempK)

	gasLossDB, err := gas.TerrestrialPathAttenuationDB(link, dLosKm, freqGHz, tempK, dryPressureHPa, waterVaporHPa)
	if err != nil {
		return Result{}, err
	}

	// Eq 8, without gas attenuation, then with it added.
	fspl := FreeSpaceLossConstantDB + 20.0*math.Log10(freqGHz*dLosKm)
	lBfsg := fspl + gasLossDB

	return Result{
		LBfsgDB: lBfsg,
		LB0pDB:  lBfsg + multipathFocusingCorrectionDB(pPercent, dLtKm, dLrKm),
		LB0Beta: lBfsg + multipathFocusingCorrectionDB(beta0Percent, dLtKm, dLrKm),
	}, nil
}

// multipathFocusingCorrectionDB is E_sp(q) (Eq 10a, 10b): zero at q=50,
// negative for q<50, monotonically increasing in log(q).
func multipathFocusingCorrectionDB(qPercent, dLtKm, dLrKm float64) float64 {
	return 2.6 * (1.0 - math.Exp(-0.1*(dLtKm+dLrKm))) * math.Log10(qPercent/50.0)
}
