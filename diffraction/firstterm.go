package diffraction

import (
	"fmt"
	"math"

	"github.com/trentholliday/p452/units"
)

// Polarization selects which ground-admittance variant Eq 30a/30b use.
// Circular combines the horizontal and vertical admittances K by a vector
// sum (Eq 30b note).
type Polarization int

const (
	Horizontal Polarization = iota
	Vertical
	Circular
)

func (p Polarization) String() string {
	switch p {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Circular:
		return "Circular"
	default:
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
}

// groundZone names the two fixed electrical-constant pairs Eq 29 blends
// between (land, sea), per Table 5.
type groundZone struct {
	relPermittivity float64
	conductivity    float64
}

var (
	landZone = groundZone{relPermittivity: 22, conductivity: 0.003}
	seaZone  = groundZone{relPermittivity: 80, conductivity: 5}
)

// firstTermSphericalLossDB is Eq 29: the land/sea blend of the single-zone
// first-term spherical-earth diffraction loss.
func firstTermSphericalLossDB(freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm, fracOverSea float64, pol Polarization) float64 {
	land := firstTermSingleZoneLossDB(landZone, freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm, pol)
	sea := firstTermSingleZoneLossDB(seaZone, freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm, pol)
	return land + fracOverSea*(sea-land)
}

// firstTermSingleZoneLossDB implements Eq 30a-37 for one ground-electrical
// zone: normalized surface admittance K, distance term F(X), and the two
// normalized-height terms G(Y) at the Tx and Rx ends.
func firstTermSingleZoneLossDB(zone groundZone, freqGHz, dTotKm, effHeightTxM, effHeightRxM, effRadiusKm float64, pol Polarization) float64 {
	// Eq 30a: horizontal-polarization normalized admittance.
	k := 0.036 * math.Pow(effRadiusKm*freqGHz, -1.0/3.0) *
		math.Pow((zone.relPermittivity-1.0)*(zone.relPermittivity-1.0)+
			(18.0*zone.conductivity/freqGHz)*(18.0*zone.conductivity/freqGHz), -1.0/4.0)

	if pol != Horizontal {
		// Eq 30b
		kVer := k * math.Sqrt(zone.relPermittivity*zone.relPermittivity+
			(18.0*zone.conductivity/freqGHz)*(18.0*zone.conductivity/freqGHz))
		switch pol {
		case Vertical:
			k = kVer
		case Circular:
			// Decompose into horizontal/vertical components and combine
			// by vector sum of field amplitude.
			k = math.Sqrt(k*k + kVer*kVer)
		}
	}

	// beta_dft may be taken as 1 above 300 MHz; Eq 31 is used unconditionally.
	k2 := k * k
	k4 := k2 * k2
	betaDft := (1.0 + 1.6*k2 + 0.67*k4) / (1.0 + 4.5*k2 + 1.53*k4) // Eq 31

	// Eq 32: normalized distance.
	x := 21.88 * betaDft * math.Pow(freqGHz/(effRadiusKm*effRadiusKm), 1.0/3.0) * dTotKm

	// Eq 33, 36: normalized heights.
	y := 0.9575 * betaDft * math.Pow(freqGHz*freqGHz/effRadiusKm, 1.0/3.0)
	yt := y * effHeightTxM
	yr := y * effHeightRxM
	bt := betaDft * yt
	br := betaDft * yr

	// Eq 34: distance term.
	var fx float64
	if x >= 1.6 {
		fx = 11 + 10*math.Log10(x) - 17.6*x
	} else {
		fx = -20*math.Log10(x) - 5.6488*math.Pow(x, 1.425)
	}

	// Eq 35: normalized height function, applied at each terminal, with a
	// shared minimum floor.
	gyt := normalizedHeightGainDB(bt)
	gyr := normalizedHeightGainDB(br)
	minGY := 2 + 20*math.Log10(k)
	gyt = math.Max(gyt, minGY)
	gyr = math.Max(gyr, minGY)

	return -fx - gyt - gyr // Eq 37
}

func normalizedHeightGainDB(b float64) float64 {
	if b > 2 {
		return 17.6*math.Sqrt(b-1.1) - 5*math.Log10(b-1.1) - 8
	}
	return 20 * math.Log10(b+0.1*b*b*b)
}

// wavelengthM is a thin forwarding helper so the rest of the package reads
// naturally against the frequency in GHz the predictor is built from.
func wavelengthM(freqGHz float64) float64 {
	return units.NewFrequencyGHz(freqGHz).WavelengthM()
}
