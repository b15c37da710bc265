// Package units holds the scalar conversion factors applied when moving
// values between the document representation (GHz, THz, ps/nm/km, ...) and
// the SI-unit internal model, plus the dB helpers the noise-figure fits need.
package units

import "math"

// Frequency and rate scale factors.
const (
	// Giga converts GHz-denominated document values (baud rates, bit
	// rates, channel spacing) to their base unit.
	Giga = 1e9

	// THz converts THz-denominated frequencies to Hz.
	THz = 1e12
)

// Fiber parameter scale factors, document unit -> SI.
const (
	// FiberDispersion converts chromatic dispersion from ps/nm/km to s/m².
	FiberDispersion = 1e-6

	// FiberDispersionSlope converts dispersion slope from ps/nm²/km to s/m³.
	FiberDispersionSlope = 1e3

	// FiberGamma converts the nonlinear coefficient from 1/(W·km) to 1/(W·m).
	FiberGamma = 1e-3

	// FiberPMDCoef converts the polarization-mode-dispersion coefficient
	// from ps/√km to s/√m.
	FiberPMDCoef = 1e-12 / 31.6227766016838 // 1e-12 / sqrt(1e3)
)

// Channel grid used when resampling sparse per-frequency equipment data.
const (
	// GridBaseFrequency is the first channel of the fixed C-band grid, in Hz.
	GridBaseFrequency = 191.3e12

	// GridSpacing is the fixed grid channel spacing, in Hz.
	GridSpacing = 50e9

	// GridChannels is the number of channels in the fixed grid.
	GridChannels = 96
)

// Lin2DB converts a linear power ratio to decibels.
func Lin2DB(v float64) float64 {
	return 10 * math.Log10(v)
}

// DB2Lin converts decibels to a linear power ratio.
func DB2Lin(v float64) float64 {
	return math.Pow(10, v/10)
}
