package transform

import (
	"fmt"

	"github.com/lumennet/photonic/pkg/equipment"
	"github.com/lumennet/photonic/pkg/logging"
	"github.com/lumennet/photonic/pkg/schema"
	"github.com/lumennet/photonic/pkg/units"
)

// simulationSection is the top-level section global simulation assumptions
// live under; a document without it cannot be loaded.
const simulationSection = "tip-photonic-simulation:simulation"

// transformAmplifier turns one validated amplifier entry into an Amp
// record. The noise-figure model is a one-of over the entry's
// sub-structures; anything other than exactly one match is an
// UnrecognizedModelError (a validation gap, not user error).
func transformAmplifier(entry *schema.Amplifier) (*equipment.Amp, error) {
	gainMin := entry.GainMin.Float64()

	var models []equipment.NFModel
	if entry.Composite != nil {
		models = append(models, equipment.NewDualStageNF(entry.Composite.Preamp, entry.Composite.Booster))
	}
	if entry.PolynomialNF != nil {
		c := entry.PolynomialNF
		models = append(models, equipment.NewPolynomialNF(
			c.A.Float64(), c.B.Float64(), c.C.Float64(), c.D.Float64()))
	}
	if entry.OpenROADMILA != nil {
		c := entry.OpenROADMILA
		models = append(models, equipment.NewOpenROADMInlineNF(
			c.A.Float64(), c.B.Float64(), c.C.Float64(), c.D.Float64()))
	}
	if entry.OpenROADMPreamp != nil {
		models = append(models, equipment.NewOpenROADMPreampNF())
	}
	if entry.OpenROADMBooster != nil {
		models = append(models, equipment.NewOpenROADMBoosterNF())
	}
	if entry.MinMaxNF != nil {
		if entry.GainFlatMax == nil {
			return nil, fmt.Errorf("amplifier %q: min-max-NF requires gain-flatmax", entry.Type)
		}
		fit, err := units.EstimateNFFit(entry.Type, gainMin, entry.GainFlatMax.Float64(),
			entry.MinMaxNF.NFMin.Float64(), entry.MinMaxNF.NFMax.Float64())
		if err != nil {
			return nil, err
		}
		models = append(models, equipment.NewVariableGainNF(fit.NF1, fit.NF2, fit.DeltaP,
			entry.MinMaxNF.NFMin.Float64(), entry.MinMaxNF.NFMax.Float64()))
	}
	if entry.RamanApproximation != nil {
		models = append(models, equipment.NewFixedGainNF(entry.RamanApproximation.NF.Float64()))
	}

	if len(models) != 1 {
		return nil, &UnrecognizedModelError{TypeVariety: entry.Type, Matched: len(models)}
	}
	nf := models[0]

	amp := &equipment.Amp{
		TypeVariety:      entry.Type,
		GainMin:          gainMin,
		NF:               nf,
		AllowedForDesign: true,
	}

	if nf.Kind == equipment.NFModelDualStage {
		// Band, gain and power come from the composed stages; the
		// resolver materializes them.
		return amp, nil
	}

	if entry.GainFlatMax == nil {
		return nil, fmt.Errorf("amplifier %q: gain-flatmax is missing", entry.Type)
	}
	if entry.MaxPowerOut == nil {
		return nil, fmt.Errorf("amplifier %q: max-power-out is missing", entry.Type)
	}
	amp.GainFlatMax = entry.GainFlatMax.Float64()
	amp.PMax = entry.MaxPowerOut.Float64()
	amp.FMin = schema.FloatOrDefault(entry.FrequencyMin, 0) * units.THz
	amp.FMax = schema.FloatOrDefault(entry.FrequencyMax, 0) * units.THz
	if entry.HasOutputVOA != nil {
		v := *entry.HasOutputVOA
		amp.OutVOAAuto = &v
	}

	var err error
	if amp.GainRipple, err = resampleSpectrum(gainRipplePoints(entry.GainRipple)); err != nil {
		return nil, fmt.Errorf("amplifier %q gain-ripple: %w", entry.Type, err)
	}
	if amp.DynamicGainTilt, err = resampleSpectrum(dgtPoints(entry.DynamicGainTilt)); err != nil {
		return nil, fmt.Errorf("amplifier %q dynamic-gain-tilt: %w", entry.Type, err)
	}
	if amp.NFRipple, err = resampleSpectrum(nfRipplePoints(entry.NFRipple)); err != nil {
		return nil, fmt.Errorf("amplifier %q nf-ripple: %w", entry.Type, err)
	}
	return amp, nil
}

func gainRipplePoints(in []schema.GainRipplePoint) []spectrumPoint {
	out := make([]spectrumPoint, len(in))
	for i, p := range in {
		out[i] = spectrumPoint{frequency: float64(p.Frequency), value: p.Value.Float64()}
	}
	return out
}

func nfRipplePoints(in []schema.NFRipplePoint) []spectrumPoint {
	out := make([]spectrumPoint, len(in))
	for i, p := range in {
		out[i] = spectrumPoint{frequency: float64(p.Frequency), value: p.Value.Float64()}
	}
	return out
}

func dgtPoints(in []schema.DynamicGainTiltPoint) []spectrumPoint {
	out := make([]spectrumPoint, len(in))
	for i, p := range in {
		out[i] = spectrumPoint{frequency: float64(p.Frequency), value: p.Value.Float64()}
	}
	return out
}

// transformFiber turns one fiber entry into a Fiber record in SI units.
func transformFiber(entry *schema.Fiber) *equipment.Fiber {
	f := &equipment.Fiber{
		TypeVariety: entry.Type,
		Dispersion:  entry.ChromaticDispersion.Float64() * units.FiberDispersion,
		Gamma:       entry.Gamma.Float64() * units.FiberGamma,
		PMDCoef:     entry.PMDCoefficient.Float64() * units.FiberPMDCoef,
	}
	if entry.ChromaticDispersionSlope != nil {
		v := entry.ChromaticDispersionSlope.Float64() * units.FiberDispersionSlope
		f.DispersionSlope = &v
	}
	return f
}

// transformRamanFiber derives the RamanFiber record for a fiber entry that
// carries raman-efficiency data.
func transformRamanFiber(entry *schema.Fiber) (*equipment.RamanFiber, error) {
	base := transformFiber(entry)
	cr := make([]float64, len(entry.RamanEfficiency))
	offsets := make([]float64, len(entry.RamanEfficiency))
	for i, p := range entry.RamanEfficiency {
		cr[i] = p.CR.Float64()
		offsets[i] = p.DeltaFrequency.Float64() * units.THz
	}
	return equipment.NewRamanFiber(*base, cr, offsets)
}

// transformRoadm turns one ROADM entry into a Roadm record.
func transformRoadm(entry *schema.Roadm) *equipment.Roadm {
	return &equipment.Roadm{
		TypeVariety:    entry.Type,
		TargetPchOutDB: entry.TargetChannelOutPower.Float64(),
		AddDropOSNR:    entry.AddDropOSNR.Float64(),
		PMD:            entry.PMD.Float64(),
		Restrictions: equipment.RoadmRestrictions{
			PreampVarieties:  append([]string(nil), entry.CompatiblePreamp...),
			BoosterVarieties: append([]string(nil), entry.CompatibleBooster...),
		},
	}
}

// transformTransceiver turns one transceiver entry into a Transceiver
// record, preserving mode order.
func transformTransceiver(entry *schema.Transceiver) *equipment.Transceiver {
	txp := &equipment.Transceiver{
		TypeVariety: entry.Type,
		FMin:        entry.FrequencyMin.Float64() * units.THz,
		FMax:        entry.FrequencyMax.Float64() * units.THz,
		Modes:       make([]equipment.Mode, 0, len(entry.Modes)),
	}
	for _, m := range entry.Modes {
		txp.Modes = append(txp.Modes, equipment.Mode{
			Format:     m.Name,
			BaudRate:   m.BaudRate.Float64() * units.Giga,
			OSNR:       m.RequiredOSNR.Float64(),
			BitRate:    m.BitRate.Float64() * units.Giga,
			RollOff:    m.TxRollOff.Float64(),
			TxOSNR:     m.InBandTxOSNR.Float64(),
			MinSpacing: m.GridSpacing.Float64() * units.Giga,
			Cost:       m.Cost.Float64(),
		})
	}
	return txp
}

// loadEquipment builds the complete equipment library from a validated,
// default-filled document.
func loadEquipment(doc *schema.Document, log logging.Logger) (*equipment.Library, error) {
	sim := doc.Simulation
	lib := equipment.NewLibrary()

	for i := range doc.Amplifiers {
		amp, err := transformAmplifier(&doc.Amplifiers[i])
		if err != nil {
			return nil, err
		}
		lib.Amplifiers[amp.TypeVariety] = amp
	}
	if err := equipment.ResolveDualStage(lib.Amplifiers); err != nil {
		return nil, err
	}
	applyDesignAllowance(lib.Amplifiers, sim.Autodesign.AllowedInlineEDFA, log)

	for i := range doc.Fibers {
		entry := &doc.Fibers[i]
		lib.Fibers[entry.Type] = transformFiber(entry)
		if len(entry.RamanEfficiency) > 0 {
			rf, err := transformRamanFiber(entry)
			if err != nil {
				return nil, err
			}
			lib.RamanFibers[entry.Type] = rf
		}
	}

	for i := range doc.Roadms {
		r := transformRoadm(&doc.Roadms[i])
		lib.Roadms[r.TypeVariety] = r
	}
	for i := range doc.Transceivers {
		t := transformTransceiver(&doc.Transceivers[i])
		lib.Transceivers[t.TypeVariety] = t
	}

	lib.DefaultSpan = spanDefaults(sim)
	lib.DefaultSI = spectralDefaults(sim)
	return lib, nil
}

// applyDesignAllowance narrows AllowedForDesign to the amplifiers the
// autodesign section names. An absent list leaves every type allowed; a
// present but empty list disallows every type.
func applyDesignAllowance(amps map[string]*equipment.Amp, allowed *[]string, log logging.Logger) {
	if allowed == nil {
		return
	}
	names := make(map[string]bool, len(*allowed))
	for _, name := range *allowed {
		if _, ok := amps[name]; !ok {
			log.Warn("allowed-inline-edfa names an unknown amplifier type",
				logging.String("type_variety", name))
			continue
		}
		names[name] = true
	}
	for name, amp := range amps {
		amp.AllowedForDesign = names[name]
	}
}

// spanDefaults synthesizes the default span assumptions from the
// simulation options. The non-configurable fields carry the engine's
// long-standing defaults.
func spanDefaults(sim *schema.Simulation) equipment.Span {
	adj := sim.Autodesign.PowerAdjustment
	return equipment.Span{
		PowerMode: sim.Autodesign.PowerMode != nil,
		DeltaPowerRangeDB: [3]float64{
			adj.MaximalReduction.Float64(),
			adj.MaximalBoost.Float64(),
			adj.ExcursionStepSize.Float64(),
		},
		MaxFiberLineicLossForRaman: 0,
		TargetExtendedGain:         2.5,
		MaxLength:                  150,
		LengthUnits:                "km",
		Padding:                    0,
		EOL:                        0,
		ConIn:                      0,
		ConOut:                     0,
	}
}

// spectralDefaults synthesizes the default channel grid from the
// simulation options.
func spectralDefaults(sim *schema.Simulation) equipment.SpectralInfo {
	g := sim.Grid
	si := equipment.SpectralInfo{
		FMin:       g.FrequencyMin.Float64() * units.THz,
		FMax:       g.FrequencyMax.Float64() * units.THz,
		BaudRate:   g.BaudRate.Float64() * units.Giga,
		Spacing:    g.Spacing.Float64() * units.Giga,
		PowerDBm:   g.Power.Float64(),
		RollOff:    schema.FloatOrDefault(g.TxRollOff, 0.15),
		SysMargins: sim.SystemMargin.Float64(),
		TxOSNR:     schema.FloatOrDefault(g.TxOSNR, 40),
	}
	if sim.Autodesign.PowerMode != nil {
		sweep := [3]float64{0, 0, 0}
		if ps := sim.Autodesign.PowerMode.PowerSweep; ps != nil {
			sweep = [3]float64{ps.Start.Float64(), ps.Stop.Float64(), ps.StepSize.Float64()}
		}
		si.PowerRangeDB = &sweep
	}
	return si
}
