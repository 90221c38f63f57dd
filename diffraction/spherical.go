package diffraction

import "math"

// sphericalEarthDiffractionLossDB implements Section 4.2.2: the spherical
// Earth diffraction loss for effective Tx/Rx heights effHeightTxM/RxM above
// a smooth Earth of radius effRadiusKm. Below the marginal LOS distance
// (Eq 23) it falls back to the clearance-interpolation method (Eq 24-28)
// rather than evaluating the first-term method directly.
func sphericalEarthDiffractionLossDB(freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm, fracOverSea float64, pol Polarization) float64 {
	// Eq 23: marginal LOS distance for a smooth path.
	dLosKm := math.Sqrt(2.0*effRadiusKm) * (math.Sqrt(0.001*effHeightTxM) + math.Sqrt(0.001*effHeightRxM))

	if dTotKm >= dLosKm {
		return firstTermSphericalLossDB(freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm, fracOverSea, pol)
	}

	c := (effHeightTxM - effHeightRxM) / (effHeightTxM + effHeightRxM) // Eq 25d
	m := 250 * dTotKm * dTotKm / (effRadiusKm * (effHeightTxM + effHeightRxM)) // Eq 25e
	b := 2 * math.Sqrt((m+1)/(3*m)) * math.Cos(math.Pi/3+
		math.Acos(3*c/2*math.Sqrt(3*m/((m+1)*(m+1)*(m+1))))/3) // Eq 25c

	dse1 := dTotKm / 2 * (1 + b) // Eq 25a
	dse2 := dTotKm - dse1        // Eq 25b

	hse := ((effHeightTxM-500.0*dse1*dse1/effRadiusKm)*dse2+
		(effHeightRxM-500.0*dse2*dse2/effRadiusKm)*dse1)/dTotKm // Eq 24

	lambdaM := wavelengthM(freqGHz)
	// Eq 26: required clearance for zero diffraction loss.
	hReqM := 17.456 * math.Sqrt(dse1*dse2*lambdaM/dTotKm)
	if hse > hReqM {
		return 0.0
	}

	// Eq 27: modified effective Earth radius.
	modEffRadiusKm := 500 * (dTotKm / (math.Sqrt(effHeightTxM) + math.Sqrt(effHeightRxM))) *
		(dTotKm / (math.Sqrt(effHeightTxM) + math.Sqrt(effHeightRxM)))

	lossFirstTermDB := firstTermSphericalLossDB(freqGHz, dTotKm, effHeightTxM, effHeightRxM, modEffRadiusKm, fracOverSea, pol)
	if lossFirstTermDB < 0.0 {
		return 0.0
	}

	// Eq 28: interpolated spherical loss.
	return (1.0 - hse/hReqM) * lossFirstTermDB
}
