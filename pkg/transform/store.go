package transform

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lumennet/photonic/pkg/equipment"
	"github.com/lumennet/photonic/pkg/logging"
	"github.com/lumennet/photonic/pkg/network"
	"github.com/lumennet/photonic/pkg/schema"
	"github.com/lumennet/photonic/pkg/units"
)

// storedNetworkID names the single topology instance a store emits.
const storedNetworkID = "network"

// ramanApproximationNFThreshold splits fixed-gain models on store: a noise
// figure this low only occurs on Raman amplifiers, so those go back out as
// raman-approximation while ordinary fixed-gain types become a degenerate
// polynomial.
const ramanApproximationNFThreshold = 3.0

// buildDocument serializes a library and an optional graph into a document.
func (o *options) buildDocument(lib *equipment.Library, g *network.Graph) (*schema.Document, error) {
	doc := &schema.Document{
		Amplifiers:   o.storeAmplifiers(lib.Amplifiers),
		Fibers:       storeFibers(lib.Fibers, lib.RamanFibers),
		Transceivers: storeTransceivers(lib.Transceivers),
		Roadms:       storeRoadms(lib.Roadms),
		Simulation:   storeSimulation(lib),
	}
	if g != nil {
		nets, err := o.storeTopology(g, lib)
		if err != nil {
			return nil, err
		}
		doc.Networks = nets
	}
	return doc, nil
}

func (o *options) storeAmplifiers(amps map[string]*equipment.Amp) []schema.Amplifier {
	names := maps.Keys(amps)
	slices.Sort(names)

	out := make([]schema.Amplifier, 0, len(names))
	for _, name := range names {
		entry, ok := o.storeAmplifier(amps[name])
		if !ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// storeAmplifier serializes one amplifier record. The resampled ripple and
// tilt spectra are not emitted: the sparse source points are not recoverable
// from the grid-resampled form.
func (o *options) storeAmplifier(amp *equipment.Amp) (schema.Amplifier, bool) {
	entry := schema.Amplifier{
		Type:    amp.TypeVariety,
		GainMin: schema.Decimal(amp.GainMin),
	}

	if amp.NF.Kind == equipment.NFModelDualStage {
		ds := amp.NF.DualStage
		entry.Composite = &schema.CompositeAmplifier{
			Preamp:  ds.PreampVariety,
			Booster: ds.BoosterVariety,
		}
		return entry, true
	}

	entry.GainFlatMax = schema.DecimalOf(amp.GainFlatMax)
	entry.MaxPowerOut = schema.DecimalOf(amp.PMax)
	if amp.FMin != 0 {
		entry.FrequencyMin = schema.DecimalOf(amp.FMin / units.THz)
	}
	if amp.FMax != 0 {
		entry.FrequencyMax = schema.DecimalOf(amp.FMax / units.THz)
	}
	if amp.OutVOAAuto != nil {
		v := *amp.OutVOAAuto
		entry.HasOutputVOA = &v
	}

	switch amp.NF.Kind {
	case equipment.NFModelFixedGain:
		nf0 := amp.NF.FixedGain.NF0
		if nf0 < ramanApproximationNFThreshold {
			entry.RamanApproximation = &schema.RamanApproximation{NF: schema.Decimal(nf0)}
		} else {
			entry.PolynomialNF = &schema.PolynomialCoefficients{D: schema.Decimal(nf0)}
		}
	case equipment.NFModelPolynomial:
		c := amp.NF.Polynomial.Coefficients
		entry.PolynomialNF = &schema.PolynomialCoefficients{
			A: schema.Decimal(c[0]), B: schema.Decimal(c[1]),
			C: schema.Decimal(c[2]), D: schema.Decimal(c[3]),
		}
	case equipment.NFModelVariableGain:
		vg := amp.NF.VariableGain
		entry.MinMaxNF = &schema.MinMaxNF{
			NFMin: schema.Decimal(vg.OrigNFMin),
			NFMax: schema.Decimal(vg.OrigNFMax),
		}
	case equipment.NFModelOpenROADMInline:
		c := amp.NF.OpenROADM.Coefficients
		entry.OpenROADMILA = &schema.PolynomialCoefficients{
			A: schema.Decimal(c[0]), B: schema.Decimal(c[1]),
			C: schema.Decimal(c[2]), D: schema.Decimal(c[3]),
		}
	case equipment.NFModelOpenROADMPreamp:
		entry.OpenROADMPreamp = &schema.Presence{}
	case equipment.NFModelOpenROADMBooster:
		entry.OpenROADMBooster = &schema.Presence{}
	default:
		o.log.Warn("skipping amplifier with an unrepresentable noise-figure model",
			logging.String("type_variety", amp.TypeVariety))
		return schema.Amplifier{}, false
	}
	return entry, true
}

// storeFibers serializes the fiber catalog, plain fiber types first and
// Raman-capable ones after, each group sorted by name.
func storeFibers(fibers map[string]*equipment.Fiber, raman map[string]*equipment.RamanFiber) []schema.Fiber {
	names := maps.Keys(fibers)
	slices.Sort(names)

	out := make([]schema.Fiber, 0, len(names))
	var ramanNames []string
	for _, name := range names {
		if _, ok := raman[name]; ok {
			ramanNames = append(ramanNames, name)
			continue
		}
		out = append(out, storeFiber(fibers[name], nil))
	}
	for _, name := range ramanNames {
		out = append(out, storeFiber(fibers[name], raman[name]))
	}
	return out
}

func storeFiber(f *equipment.Fiber, rf *equipment.RamanFiber) schema.Fiber {
	entry := schema.Fiber{
		Type:                f.TypeVariety,
		ChromaticDispersion: schema.Decimal(f.Dispersion / units.FiberDispersion),
		Gamma:               schema.Decimal(f.Gamma / units.FiberGamma),
		PMDCoefficient:      schema.Decimal(f.PMDCoef / units.FiberPMDCoef),
	}
	if f.DispersionSlope != nil {
		entry.ChromaticDispersionSlope = schema.DecimalOf(*f.DispersionSlope / units.FiberDispersionSlope)
	}
	if rf != nil {
		entry.RamanEfficiency = make([]schema.RamanEfficiencyPoint, len(rf.CR))
		for i := range rf.CR {
			entry.RamanEfficiency[i] = schema.RamanEfficiencyPoint{
				DeltaFrequency: schema.Decimal(rf.FrequencyOffset[i] / units.THz),
				CR:             schema.Decimal(rf.CR[i]),
			}
		}
	}
	return entry
}

func storeTransceivers(txps map[string]*equipment.Transceiver) []schema.Transceiver {
	names := maps.Keys(txps)
	slices.Sort(names)

	out := make([]schema.Transceiver, 0, len(names))
	for _, name := range names {
		t := txps[name]
		entry := schema.Transceiver{
			Type:         t.TypeVariety,
			FrequencyMin: schema.Decimal(t.FMin / units.THz),
			FrequencyMax: schema.Decimal(t.FMax / units.THz),
			Modes:        make([]schema.TransceiverMode, 0, len(t.Modes)),
		}
		for _, m := range t.Modes {
			entry.Modes = append(entry.Modes, schema.TransceiverMode{
				Name:         m.Format,
				BitRate:      schema.Decimal(m.BitRate / units.Giga),
				BaudRate:     schema.Decimal(m.BaudRate / units.Giga),
				RequiredOSNR: schema.Decimal(m.OSNR),
				InBandTxOSNR: schema.Decimal(m.TxOSNR),
				GridSpacing:  schema.Decimal(m.MinSpacing / units.Giga),
				TxRollOff:    schema.Decimal(m.RollOff),
				Cost:         schema.Decimal(m.Cost),
			})
		}
		out = append(out, entry)
	}
	return out
}

func storeRoadms(roadms map[string]*equipment.Roadm) []schema.Roadm {
	names := maps.Keys(roadms)
	slices.Sort(names)

	out := make([]schema.Roadm, 0, len(names))
	for _, name := range names {
		r := roadms[name]
		out = append(out, schema.Roadm{
			Type:                  r.TypeVariety,
			TargetChannelOutPower: schema.Decimal(r.TargetPchOutDB),
			AddDropOSNR:           schema.Decimal(r.AddDropOSNR),
			PMD:                   schema.Decimal(r.PMD),
			CompatiblePreamp:      append([]string(nil), r.Restrictions.PreampVarieties...),
			CompatibleBooster:     append([]string(nil), r.Restrictions.BoosterVarieties...),
		})
	}
	return out
}

// storeSimulation reconstructs the simulation section from the default span
// and spectral-info singletons.
func storeSimulation(lib *equipment.Library) *schema.Simulation {
	si := lib.DefaultSI
	span := lib.DefaultSpan

	sim := &schema.Simulation{
		Grid: schema.Grid{
			FrequencyMin: schema.Decimal(si.FMin / units.THz),
			FrequencyMax: schema.Decimal(si.FMax / units.THz),
			Spacing:      schema.Decimal(si.Spacing / units.Giga),
			BaudRate:     schema.Decimal(si.BaudRate / units.Giga),
			Power:        schema.Decimal(si.PowerDBm),
			TxRollOff:    schema.DecimalOf(si.RollOff),
			TxOSNR:       schema.DecimalOf(si.TxOSNR),
		},
		SystemMargin: schema.Decimal(si.SysMargins),
	}

	sim.Autodesign.AllowedInlineEDFA = allowedInlineEDFA(lib.Amplifiers)
	sim.Autodesign.PowerAdjustment = schema.PowerAdjustment{
		MaximalReduction:  schema.Decimal(span.DeltaPowerRangeDB[0]),
		MaximalBoost:      schema.Decimal(span.DeltaPowerRangeDB[1]),
		ExcursionStepSize: schema.Decimal(span.DeltaPowerRangeDB[2]),
	}

	if span.PowerMode {
		pm := &schema.PowerMode{}
		if r := si.PowerRangeDB; r != nil && *r != [3]float64{} {
			pm.PowerSweep = &schema.PowerSweep{
				Start:    schema.Decimal(r[0]),
				Stop:     schema.Decimal(r[1]),
				StepSize: schema.Decimal(r[2]),
			}
		}
		sim.Autodesign.PowerMode = pm
	} else {
		sim.Autodesign.GainMode = &schema.EmptyLeaf{}
	}
	return sim
}

// allowedInlineEDFA lists the design-allowed amplifier types, sorted. An
// all-allowed library emits no list at all, matching how an absent list is
// read back; a library where nothing is design-allowed emits an empty list
// so the restriction survives a round trip.
func allowedInlineEDFA(amps map[string]*equipment.Amp) *[]string {
	allowed := []string{}
	everyTypeAllowed := true
	for name, amp := range amps {
		if amp.AllowedForDesign {
			allowed = append(allowed, name)
		} else {
			everyTypeAllowed = false
		}
	}
	if everyTypeAllowed {
		return nil
	}
	slices.Sort(allowed)
	return &allowed
}

// storeTopology serializes the element graph into one photonic network.
// Fiber segments collapse back into fiber links; every remaining edge
// between non-fiber elements becomes a patch link.
func (o *options) storeTopology(g *network.Graph, lib *equipment.Library) (*schema.Networks, error) {
	net := schema.Network{
		NetworkID:    storedNetworkID,
		NetworkTypes: &schema.NetworkTypes{PhotonicTopology: &schema.Presence{}},
	}

	for _, el := range g.Elements() {
		if f, ok := el.(*network.Fiber); ok {
			link, err := storeFiberLink(f, g)
			if err != nil {
				return nil, err
			}
			net.Links = append(net.Links, link)
			continue
		}
		node, err := o.storeNode(el, lib)
		if err != nil {
			return nil, err
		}
		net.Nodes = append(net.Nodes, node)
	}

	for _, e := range g.Edges() {
		from, _ := g.Element(e.From)
		to, _ := g.Element(e.To)
		fromFiber := from.Kind() == network.KindFiber
		toFiber := to.Kind() == network.KindFiber

		if fromFiber && toFiber {
			return nil, &StructuralError{
				Kind:   "edge",
				ID:     fmt.Sprintf("%s -> %s", e.From, e.To),
				Reason: "two fiber segments connected directly cannot be expressed as links",
			}
		}
		if fromFiber || toFiber {
			// Covered by the segment's own fiber link.
			continue
		}

		link := schema.NetworkLink{
			LinkID:      fmt.Sprintf("patch{%s, %s}", e.From, e.To),
			Source:      schema.LinkSource{SourceNode: e.From},
			Destination: schema.LinkDestination{DestNode: e.To},
			Patch:       &schema.PatchLink{},
		}
		if roadm, ok := from.(*network.Roadm); ok {
			p, ok := roadm.PerDegreePchOutDB[e.To]
			if !ok {
				p = roadm.TargetPchOutDB
			}
			link.Patch.RoadmTargetEgressPerChannelPower = schema.DecimalOf(p)
		}
		net.Links = append(net.Links, link)
	}

	return &schema.Networks{Network: []schema.Network{net}}, nil
}

func (o *options) storeNode(el network.Element, lib *equipment.Library) (schema.NetworkNode, error) {
	node := schema.NetworkNode{NodeID: el.UID()}
	if loc := el.Location(); loc != nil {
		node.GeoLocation = &schema.GeoLocation{
			X: schema.DecimalOf(loc.Longitude),
			Y: schema.DecimalOf(loc.Latitude),
		}
	}

	switch el := el.(type) {
	case *network.Transceiver:
		model := el.TypeVariety
		if model == "" {
			names := maps.Keys(lib.Transceivers)
			if len(names) == 0 {
				return schema.NetworkNode{}, &StructuralError{Kind: "node", ID: el.UID(),
					Reason: "transceiver has no type and the library defines no transceiver types"}
			}
			slices.Sort(names)
			model = names[0]
			o.log.Warn("transceiver has no type, substituting the first library type",
				logging.String("node_id", el.UID()),
				logging.String("type_variety", model))
		}
		node.Transceiver = &schema.TransceiverNode{Model: model}

	case *network.Edfa:
		amp := &schema.AmplifierNode{Model: el.TypeVariety}
		if v := el.Operational.GainTarget; v != nil {
			amp.GainTarget = schema.DecimalOf(*v)
		}
		if v := el.Operational.TiltTarget; v != nil {
			amp.TiltTarget = schema.DecimalOf(*v)
		}
		if v := el.Operational.OutVOA; v != nil {
			amp.OutVOATarget = schema.DecimalOf(*v)
		}
		if v := el.Operational.DeltaP; v != nil {
			amp.DeltaP = schema.DecimalOf(*v)
		}
		node.Amplifier = amp

	case *network.Roadm:
		if el.TypeVariety == "" {
			return schema.NetworkNode{}, &StructuralError{Kind: "node", ID: el.UID(),
				Reason: "roadm has no type"}
		}
		node.Roadm = &schema.RoadmNode{
			Model:                       el.TypeVariety,
			TargetEgressPerChannelPower: schema.DecimalOf(el.TargetPchOutDB),
		}

	case *network.Fused:
		att := &schema.AttenuatorNode{}
		if el.Loss != nil {
			att.Attenuation = schema.DecimalOf(*el.Loss)
		}
		node.Attenuator = att

	default:
		return schema.NetworkNode{}, &StructuralError{Kind: "node", ID: el.UID(),
			Reason: fmt.Sprintf("element kind %s has no document representation", el.Kind())}
	}
	return node, nil
}

// storeFiberLink collapses a fiber segment element back into a fiber link
// between its single predecessor and single successor.
func storeFiberLink(f *network.Fiber, g *network.Graph) (schema.NetworkLink, error) {
	preds := g.Predecessors(f.UID())
	succs := g.Successors(f.UID())
	if len(preds) != 1 || len(succs) != 1 {
		return schema.NetworkLink{}, &StructuralError{Kind: "node", ID: f.UID(),
			Reason: fmt.Sprintf("fiber segment has %d predecessors and %d successors, want exactly 1 of each",
				len(preds), len(succs))}
	}

	return schema.NetworkLink{
		LinkID:      f.UID(),
		Source:      schema.LinkSource{SourceNode: preds[0].UID()},
		Destination: schema.LinkDestination{DestNode: succs[0].UID()},
		Fiber: &schema.FiberLink{
			Type:          f.TypeVariety,
			Length:        schema.Decimal(f.Params.LengthM * 1e-3),
			LossPerKM:     schema.DecimalOf(f.Params.LossCoef),
			AttenuationIn: schema.Decimal(f.Params.AttIn),
			ConnAttIn:     schema.Decimal(f.Params.ConIn),
			ConnAttOut:    schema.Decimal(f.Params.ConOut),
		},
	}, nil
}
