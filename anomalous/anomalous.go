// Package anomalous implements AnomalousPropPredictor (Section 4.4): the
// basic transmission loss occurring during anomalous propagation (ducting
// and elevated-layer reflection), split into a fixed coupling loss, a
// time-percentage-and-angular-distance term, and gaseous absorption.
package anomalous

import (
	"math"

	"github.com/trentholliday/p452/gas"
	"github.com/trentholliday/p452/path"
)

// minEffectiveDuctingHeightM is the 1 m floor on effective ducting heights,
// one of the four intentional clamps in the core.
const minEffectiveDuctingHeightM = 1.0

// Result holds the components and total of the anomalous-propagation loss.
type Result struct {
	FixedCouplingLossDB        float64
	TimePercentAndAngularLossDB float64
	GasLossDB                  float64
	TotalLossDB                float64
}

// EffectiveHeights returns the effective ducting-model antenna heights
// above the least-squares smooth-Earth surface (Annex 2 Section 5.1.6.4),
// floored at 1 m.
func EffectiveHeights(profile path.Path, heightTxASLm, heightRxASLm float64) (effTxM, effRxM float64) {
	smooth := profile.LeastSquaresSmoothEarthEndpoints()
	effTxM = math.Max(minEffectiveDuctingHeightM, heightTxASLm-smooth.TxVal)
	effRxM = math.Max(minEffectiveDuctingHeightM, heightRxASLm-smooth.RxVal)
	return effTxM, effRxM
}

// TerrainRoughnessM is h_m (Annex 2 Section 5.1.6.4): the maximum height of
// the actual terrain above the least-squares smooth-Earth straight line, in
// the section of the path between and including the two terminal horizons.
func TerrainRoughnessM(profile path.Path, dLtKm, dLrKm float64) float64 {
	smooth := profile.LeastSquaresSmoothEarthEndpoints()
	dTot := profile.TotalKm()
	rxBoundaryKm := dTot - dLrKm

	roughness := math.Inf(-1)
	for _, pt := range profile.Points() {
		if pt.DistanceKm < dLtKm || pt.DistanceKm > rxBoundaryKm {
			continue
		}
		lineHeight := smooth.TxVal + (smooth.RxVal-smooth.TxVal)*pt.DistanceKm/dTot
		roughness = math.Max(roughness, pt.HeightASLm-lineHeight)
	}
	if math.IsInf(roughness, -1) {
		return 0
	}
	return roughness
}

// Predict implements Section 4.4. horizon carries the Tx/Rx horizon
// elevation angles and distances from path.HorizonAnglesAndDistances;
// effRadius50Km is the median effective Earth radius;
// distCoastTxKm/distCoastRxKm are the over-land distances from each
// terminal to the coast (0 for a terminal at sea); longestInlandKm is the
// longest contiguous inland run used by Beta0Percent's tau term.
func Predict(link gas.Link, profile path.Path, horizon path.HorizonResult, freqGHz, heightTxASLm, heightRxASLm,
	fracOverSea, effRadius50Km, distCoastTxKm, distCoastRxKm, tempK, dryPressureHPa,
	longestInlandKm, pPercent, beta0Percent float64) (Result, error) {

	fixedCoupling := fixedCouplingLossDB(freqGHz, horizon, distCoastTxKm, distCoastRxKm, heightTxASLm, heightRxASLm, fracOverSea)

	effTxM, effRxM := EffectiveHeights(profile, heightTxASLm, heightRxASLm)
	roughnessM := TerrainRoughnessM(profile, horizon.DLtKm, horizon.DLrKm)

	timeAngular := timePercentAndAngularDistanceLossDB(profile.TotalKm(), freqGHz, horizon, effRadius50Km,
		effTxM, effRxM, roughnessM, longestInlandKm, pPercent, beta0Percent)

	// Eq 8a: extra path length from the antenna height differential.
	dLosKm := math.Sqrt(profile.TotalKm()*profile.TotalKm() + math.Pow((heightTxASLm-heightRxASLm)/1000.0, 2))
	// Eq 9a
	rho := 7.5 + 2.5*fracOverSea
	waterVaporHPa := gas.WaterVaporDensityToPressureHPa(rho, tempK)
	gasLossDB, err := gas.TerrestrialPathAttenuationDB(link, dLosKm, freqGHz, tempK, dryPressureHPa, waterVaporHPa)
	if err != nil {
		return Result{}, err
	}

	return Result{
		FixedCouplingLossDB:         fixedCoupling,
		TimePercentAndAngularLossDB: timeAngular,
		GasLossDB:                   gasLossDB,
		// Eq 46
		TotalLossDB: fixedCoupling + timeAngular + gasLossDB,
	}, nil
}

// fixedCouplingLossDB is Eq 47: the aggregate coupling loss between each
// antenna and the anomalous-propagation mechanism, excluding clutter.
func fixedCouplingLossDB(freqGHz float64, horizon path.HorizonResult, distCoastTxKm, distCoastRxKm, heightTxASLm, heightRxASLm, fracOverSea float64) float64 {
	// Eq 47a
	var alf float64
	if freqGHz < 0.5 {
		alf = 45.375 - 137.0*freqGHz + 92.5*freqGHz*freqGHz
	}

	// Eq 48a: modified angles for site-shielding diffraction.
	modThetaT := horizon.ThetaTMrad - 0.1*horizon.DLtKm
	modThetaR := horizon.ThetaRMrad - 0.1*horizon.DLrKm

	// Eq 48: site-shielding diffraction loss at each terminal.
	var ast, asr float64
	if modThetaT > 0 {
		ast = 20.0*math.Log10(1.0+0.361*modThetaT*math.Sqrt(freqGHz*horizon.DLtKm)) +
			0.264*modThetaT*math.Pow(freqGHz, 1.0/3.0)
	}
	if modThetaR > 0 {
		asr = 20.0*math.Log10(1.0+0.361*modThetaR*math.Sqrt(freqGHz*horizon.DLrKm)) +
			0.264*modThetaR*math.Pow(freqGHz, 1.0/3.0)
	}

	// Eq 49: over-sea surface duct coupling corrections, applied only when
	// both terminals are close to a coast on a predominantly sea path.
	var act, acr float64
	condition := fracOverSea >= 0.75 &&
		distCoastTxKm <= horizon.DLtKm && distCoastTxKm <= 5.0 &&
		distCoastRxKm <= horizon.DLrKm && distCoastRxKm <= 5.0
	if condition {
		act = -3.0 * math.Exp(-0.25*distCoastTxKm*distCoastTxKm) * (1.0 + math.Tanh(0.07*(50.0-heightTxASLm)))
		acr = -3.0 * math.Exp(-0.25*distCoastRxKm*distCoastRxKm) * (1.0 + math.Tanh(0.07*(50.0-heightRxASLm)))
	}

	return 102.45 + 20.0*math.Log10(freqGHz*(horizon.DLtKm+horizon.DLrKm)) + alf + ast + asr + act + acr
}

// timePercentAndAngularDistanceLossDB is Eq 50: specific attenuation along
// the path angular distance, plus a time-percentage variability term built
// from the scaled fraction-of-time beta.
func timePercentAndAngularDistanceLossDB(dTotKm, freqGHz float64, horizon path.HorizonResult, effRadius50Km,
	effHeightTxM, effHeightRxM, terrainRoughnessM, longestInlandKm, pPercent, beta0Percent float64) float64 {

	// Eq 51
	specificAttenuationDBPerMrad := 5.0e-5 * effRadius50Km * math.Pow(freqGHz, 1.0/3.0)

	// Eq 52a: angles with the site-shielding component removed.
	correctedThetaT := math.Min(horizon.ThetaTMrad, 0.1*horizon.DLtKm)
	correctedThetaR := math.Min(horizon.ThetaRMrad, 0.1*horizon.DLrKm)
	pathAngularDistanceMrad := path.PathAngularDistanceMrad(correctedThetaT, correctedThetaR, dTotKm, effRadius50Km)

	// Eq 3a
	tau := 1.0 - math.Exp(-(4.12e-4 * math.Pow(longestInlandKm, 2.41)))
	// Eq 55a, clamped at -3.4 (one of the four intentional clamps).
	alpha := math.Max(-3.4, -0.6-3.5e-9*math.Pow(dTotKm, 3.1)*tau)

	// Eq 55: path-geometry correction mu2.
	val1 := math.Pow(dTotKm/(math.Sqrt(effHeightTxM)+math.Sqrt(effHeightRxM)), 2)
	pathGeometryCorrection := math.Pow(500.0/effRadius50Km*val1, alpha)

	// Eq 56a: distance beyond both horizons, capped at 40 km.
	dI := math.Min(dTotKm-horizon.DLtKm-horizon.DLrKm, 40.0)
	// Eq 56: terrain-roughness correction mu3.
	terrainRoughnessCorrection := 1.0
	if terrainRoughnessM > 10 {
		terrainRoughnessCorrection = math.Exp(-4.6e-5 * (terrainRoughnessM - 10) * (43.0 + 6.0*dI))
	}

	// Eq 54
	betaPercent := beta0Percent * pathGeometryCorrection * terrainRoughnessCorrection

	logBeta := math.Log10(betaPercent)
	// Eq 53a
	val2 := -(9.51-4.8*logBeta+0.198*logBeta*logBeta) * 1e-6 * math.Pow(dTotKm, 1.13)
	gamma := 1.076 / math.Pow(2.0058-logBeta, 1.012) * math.Exp(val2)
	// Eq 53
	timePercentageVariabilityLossDB := -12.0 + (1.2+3.7e-3*dTotKm)*math.Log10(pPercent/betaPercent) +
		12.0*math.Pow(pPercent/betaPercent, gamma)

	// Eq 50
	return specificAttenuationDBPerMrad*pathAngularDistanceMrad + timePercentageVariabilityLossDB
}
