// Package units provides small wrapper types for the physical quantities
// that flow through the path-loss core, so call sites never have to
// remember whether a bare float64 is in km or m, mrad or deg.
package units

import "math"

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// --- Angle ---

// Angle represents an angular measurement. Internally stored in radians;
// the core works mostly in milliradians and degrees, both derived here.
type Angle struct {
	rad float64
}

// NewAngle creates an Angle from radians.
func NewAngle(radians float64) Angle { return Angle{rad: radians} }

// AngleFromDegrees creates an Angle from degrees.
func AngleFromDegrees(deg float64) Angle { return Angle{rad: deg * deg2rad} }

// AngleFromMilliradians creates an Angle from milliradians.
func AngleFromMilliradians(mrad float64) Angle { return Angle{rad: mrad / 1000.0} }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.rad * rad2deg }

// Milliradians returns the angle in milliradians.
func (a Angle) Milliradians() float64 { return a.rad * 1000.0 }

// --- Distance ---

// Distance represents a path length. Internally stored in kilometers.
type Distance struct {
	km float64
}

// NewDistance creates a Distance from kilometers.
func NewDistance(km float64) Distance { return Distance{km: km} }

// DistanceFromMeters creates a Distance from meters.
func DistanceFromMeters(m float64) Distance { return Distance{km: m / 1000.0} }

// Km returns the distance in kilometers.
func (d Distance) Km() float64 { return d.km }

// M returns the distance in meters.
func (d Distance) M() float64 { return d.km * 1000.0 }

// --- Frequency ---

// Frequency represents a radio frequency. Internally stored in GHz, the
// unit every formula in the core is expressed against.
type Frequency struct {
	ghz float64
}

// NewFrequencyGHz creates a Frequency from gigahertz.
func NewFrequencyGHz(ghz float64) Frequency { return Frequency{ghz: ghz} }

// GHz returns the frequency in gigahertz.
func (f Frequency) GHz() float64 { return f.ghz }

// WavelengthM returns the free-space wavelength in meters for this
// frequency (c = 299792458 m/s).
func (f Frequency) WavelengthM() float64 {
	const speedOfLightMPerS = 299792458.0
	return 1e-9 * speedOfLightMPerS / f.ghz
}

// --- Pressure ---

// Pressure represents an atmospheric pressure in hectopascals.
type Pressure struct {
	hPa float64
}

// NewPressureHPa creates a Pressure from hectopascals.
func NewPressureHPa(hPa float64) Pressure { return Pressure{hPa: hPa} }

// HPa returns the pressure in hectopascals.
func (p Pressure) HPa() float64 { return p.hPa }

// --- Temperature ---

// Temperature represents an absolute temperature in kelvin.
type Temperature struct {
	k float64
}

// NewTemperatureK creates a Temperature from kelvin.
func NewTemperatureK(k float64) Temperature { return Temperature{k: k} }

// K returns the temperature in kelvin.
func (t Temperature) K() float64 { return t.k }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return t.k - 273.15 }
