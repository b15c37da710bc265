// Package equipment holds the in-memory equipment library: one record type
// per equipment kind, keyed by type-variety name, created once per load and
// immutable afterwards except for the one-time dual-stage enrichment.
package equipment

// NFModelKind discriminates the noise-figure model variants of an
// amplifier type.
type NFModelKind int

const (
	// NFModelUnknown is the zero value; a constructed Amp never carries it.
	NFModelUnknown NFModelKind = iota
	// NFModelFixedGain is a single fixed noise figure.
	NFModelFixedGain
	// NFModelPolynomial is a cubic polynomial fit over gain.
	NFModelPolynomial
	// NFModelVariableGain is the two-coil fit derived from NF extremes.
	NFModelVariableGain
	// NFModelOpenROADMInline is the OpenROADM in-line amplifier polynomial.
	NFModelOpenROADMInline
	// NFModelOpenROADMPreamp is the fixed OpenROADM preamp shape.
	NFModelOpenROADMPreamp
	// NFModelOpenROADMBooster is the fixed OpenROADM booster shape.
	NFModelOpenROADMBooster
	// NFModelDualStage composes two other amplifier types.
	NFModelDualStage
)

// String returns the kind name.
func (k NFModelKind) String() string {
	switch k {
	case NFModelFixedGain:
		return "fixed_gain"
	case NFModelPolynomial:
		return "advanced_model"
	case NFModelVariableGain:
		return "variable_gain"
	case NFModelOpenROADMInline:
		return "openroadm"
	case NFModelOpenROADMPreamp:
		return "openroadm_preamp"
	case NFModelOpenROADMBooster:
		return "openroadm_booster"
	case NFModelDualStage:
		return "dual_stage"
	default:
		return "unknown"
	}
}

// NFModel is a tagged union over the noise-figure model variants. Exactly
// the sub-structure matching Kind is populated; the constructors below are
// the only way these are built.
type NFModel struct {
	Kind NFModelKind

	FixedGain    *FixedGainNF
	Polynomial   *PolynomialNF
	VariableGain *VariableGainNF
	OpenROADM    *OpenROADMInlineNF
	DualStage    *DualStageNF
}

// FixedGainNF is a constant noise figure in dB.
type FixedGainNF struct {
	NF0 float64
}

// PolynomialNF is a cubic polynomial NF fit, coefficients a..d.
type PolynomialNF struct {
	Coefficients [4]float64
}

// VariableGainNF is the two-coil fit plus the advertised extremes it was
// derived from (the extremes are what serialization emits back).
type VariableGainNF struct {
	NF1       float64
	NF2       float64
	DeltaP    float64
	OrigNFMin float64
	OrigNFMax float64
}

// OpenROADMInlineNF is the OpenROADM ILA polynomial, coefficients a..d.
type OpenROADMInlineNF struct {
	Coefficients [4]float64
}

// DualStageNF references the two composed amplifier types by name. The
// resolver materializes the referenced records onto the owning Amp.
type DualStageNF struct {
	PreampVariety  string
	BoosterVariety string
}

// NewFixedGainNF builds a fixed-gain model.
func NewFixedGainNF(nf0 float64) NFModel {
	return NFModel{Kind: NFModelFixedGain, FixedGain: &FixedGainNF{NF0: nf0}}
}

// NewPolynomialNF builds a polynomial model.
func NewPolynomialNF(a, b, c, d float64) NFModel {
	return NFModel{Kind: NFModelPolynomial, Polynomial: &PolynomialNF{Coefficients: [4]float64{a, b, c, d}}}
}

// NewVariableGainNF builds a variable-gain model.
func NewVariableGainNF(nf1, nf2, deltaP, origNFMin, origNFMax float64) NFModel {
	return NFModel{Kind: NFModelVariableGain, VariableGain: &VariableGainNF{
		NF1: nf1, NF2: nf2, DeltaP: deltaP, OrigNFMin: origNFMin, OrigNFMax: origNFMax,
	}}
}

// NewOpenROADMInlineNF builds an OpenROADM ILA model.
func NewOpenROADMInlineNF(a, b, c, d float64) NFModel {
	return NFModel{Kind: NFModelOpenROADMInline, OpenROADM: &OpenROADMInlineNF{Coefficients: [4]float64{a, b, c, d}}}
}

// NewOpenROADMPreampNF builds the parameterless OpenROADM preamp model.
func NewOpenROADMPreampNF() NFModel {
	return NFModel{Kind: NFModelOpenROADMPreamp}
}

// NewOpenROADMBoosterNF builds the parameterless OpenROADM booster model.
func NewOpenROADMBoosterNF() NFModel {
	return NFModel{Kind: NFModelOpenROADMBooster}
}

// NewDualStageNF builds a composite model referencing two amplifier types.
func NewDualStageNF(preamp, booster string) NFModel {
	return NFModel{Kind: NFModelDualStage, DualStage: &DualStageNF{
		PreampVariety: preamp, BoosterVariety: booster,
	}}
}

// clone deep-copies the model.
func (m NFModel) clone() NFModel {
	out := NFModel{Kind: m.Kind}
	if m.FixedGain != nil {
		fg := *m.FixedGain
		out.FixedGain = &fg
	}
	if m.Polynomial != nil {
		p := *m.Polynomial
		out.Polynomial = &p
	}
	if m.VariableGain != nil {
		vg := *m.VariableGain
		out.VariableGain = &vg
	}
	if m.OpenROADM != nil {
		or := *m.OpenROADM
		out.OpenROADM = &or
	}
	if m.DualStage != nil {
		ds := *m.DualStage
		out.DualStage = &ds
	}
	return out
}
