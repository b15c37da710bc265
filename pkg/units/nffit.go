package units

import (
	"fmt"
	"math"
)

// NFFit is the two-coil noise-figure fit derived for variable-gain
// amplifiers from their advertised min/max noise figures.
type NFFit struct {
	NF1    float64 // first coil noise figure, dB
	NF2    float64 // second coil noise figure, dB
	DeltaP float64 // power offset between the two coils, dB
}

// fitTolerance is the maximum allowed dB mismatch between the advertised
// NF extremes and the values the fitted model reproduces.
const fitTolerance = 0.01

// EstimateNFFit derives a two-coil noise-figure model from the min/max
// noise figures advertised for a variable-gain amplifier. The fit assumes a
// fixed 5 dB inter-coil power offset and is cross-checked against both
// advertised extremes; an inconsistent datasheet is reported as an error
// naming the amplifier type.
func EstimateNFFit(typeVariety string, gainMin, gainMax, nfMin, nfMax float64) (NFFit, error) {
	if nfMin < -10 {
		return NFFit{}, fmt.Errorf("amplifier %q: invalid nf-min value %g", typeVariety, nfMin)
	}
	if nfMax < -10 {
		return NFFit{}, fmt.Errorf("amplifier %q: invalid nf-max value %g", typeVariety, nfMax)
	}
	if gainMax <= gainMin {
		return NFFit{}, fmt.Errorf("amplifier %q: gain-min %g must be below gain-flatmax %g",
			typeVariety, gainMin, gainMax)
	}

	deltaP := 5.0
	g1aMin := gainMin - (gainMax - gainMin) - deltaP
	g1aMax := gainMax - deltaP

	nf2 := Lin2DB((DB2Lin(nfMin) - DB2Lin(nfMax)) / (1/DB2Lin(g1aMax) - 1/DB2Lin(g1aMin)))
	nf1 := Lin2DB(DB2Lin(nfMin) - DB2Lin(nf2)/DB2Lin(g1aMax))

	// NaN poisons every comparison below, so an inconsistent datasheet
	// would otherwise slip through the cross-checks.
	if math.IsNaN(nf1) || math.IsInf(nf1, 0) || math.IsNaN(nf2) || math.IsInf(nf2, 0) {
		return NFFit{}, fmt.Errorf("amplifier %q: noise-figure fit diverged (nf1=%g, nf2=%g)",
			typeVariety, nf1, nf2)
	}

	if nf1 < 4 {
		return NFFit{}, fmt.Errorf("amplifier %q: first coil value %g too low", typeVariety, nf1)
	}

	// The fitted model must reproduce the advertised extremes.
	if calc := Lin2DB(DB2Lin(nf1) + DB2Lin(nf2)/DB2Lin(g1aMax)); abs(calc-nfMin) > fitTolerance {
		return NFFit{}, fmt.Errorf("amplifier %q: nf-min fit mismatch (%g vs %g)", typeVariety, calc, nfMin)
	}
	if calc := Lin2DB(DB2Lin(nf1) + DB2Lin(nf2)/DB2Lin(g1aMin)); abs(calc-nfMax) > fitTolerance {
		return NFFit{}, fmt.Errorf("amplifier %q: nf-max fit mismatch (%g vs %g)", typeVariety, calc, nfMax)
	}

	return NFFit{NF1: nf1, NF2: nf2, DeltaP: deltaP}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
