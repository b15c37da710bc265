package equipment

// Amp is one amplifier (EDFA) equipment type. For dual-stage composites the
// band/gain/power fields stay at their zero values until resolution copies
// the referenced stages into Preamp and Booster.
type Amp struct {
	TypeVariety string

	// Frequency band [FMin, FMax), Hz.
	FMin float64
	FMax float64

	GainMin     float64 // dB
	GainFlatMax float64 // dB
	PMax        float64 // dBm

	NF NFModel

	// Resampled spectra on the fixed channel grid. Either GridChannels
	// samples or the single-element constant-zero approximation.
	GainRipple      []float64
	NFRipple        []float64
	DynamicGainTilt []float64

	// OutVOAAuto is nil when the catalog does not state whether the
	// output variable attenuator may be driven automatically.
	OutVOAAuto *bool

	AllowedForDesign bool

	// Preamp and Booster hold deep copies of the referenced stage records
	// once ResolveDualStage has run. Nil for non-composite types.
	Preamp  *Amp
	Booster *Amp
}

// Clone deep-copies the amplifier record.
func (a *Amp) Clone() *Amp {
	if a == nil {
		return nil
	}
	out := *a
	out.NF = a.NF.clone()
	out.GainRipple = append([]float64(nil), a.GainRipple...)
	out.NFRipple = append([]float64(nil), a.NFRipple...)
	out.DynamicGainTilt = append([]float64(nil), a.DynamicGainTilt...)
	if a.OutVOAAuto != nil {
		v := *a.OutVOAAuto
		out.OutVOAAuto = &v
	}
	out.Preamp = a.Preamp.Clone()
	out.Booster = a.Booster.Clone()
	return &out
}
