package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumennet/photonic/pkg/equipment"
	"github.com/lumennet/photonic/pkg/network"
	"github.com/lumennet/photonic/pkg/schema"
	"github.com/lumennet/photonic/pkg/units"
)

func boolPtr(v bool) *bool { return &v }

// testDocument builds a small but complete document: four amplifier
// flavors, a plain and a Raman-capable fiber, one transceiver, one ROADM,
// and a five-node line topology with one 80 km span.
func testDocument() *schema.Document {
	return &schema.Document{
		Amplifiers: []schema.Amplifier{
			{
				Type:         "std_booster",
				GainMin:      15,
				GainFlatMax:  schema.DecimalOf(26),
				MaxPowerOut:  schema.DecimalOf(21),
				FrequencyMin: schema.DecimalOf(191.35),
				FrequencyMax: schema.DecimalOf(196.1),
				HasOutputVOA: boolPtr(true),
				PolynomialNF: &schema.PolynomialCoefficients{A: 0.0008, B: -0.0272, C: 0.2249, D: 5.5814},
				GainRipple: []schema.GainRipplePoint{
					{Frequency: 191_350_000_000_000, Value: 0.1},
					{Frequency: 196_100_000_000_000, Value: 0.3},
				},
			},
			{
				Type:        "std_low_gain",
				GainMin:     15,
				GainFlatMax: schema.DecimalOf(26),
				MaxPowerOut: schema.DecimalOf(21),
				MinMaxNF:    &schema.MinMaxNF{NFMin: 6, NFMax: 10},
			},
			{
				Type:               "raman_pump",
				GainMin:            10,
				GainFlatMax:        schema.DecimalOf(15),
				MaxPowerOut:        schema.DecimalOf(21),
				RamanApproximation: &schema.RamanApproximation{NF: 2.5},
			},
			{
				Type:      "dual_stage",
				GainMin:   25,
				Composite: &schema.CompositeAmplifier{Preamp: "std_low_gain", Booster: "std_booster"},
			},
		},
		Fibers: []schema.Fiber{
			{
				Type:                     "SSMF",
				ChromaticDispersion:      16.7,
				ChromaticDispersionSlope: schema.DecimalOf(0.092),
				Gamma:                    1.27,
				PMDCoefficient:           0.1,
			},
			{
				Type:                "NZDF",
				ChromaticDispersion: 4.5,
				Gamma:               1.6,
				PMDCoefficient:      0.1,
				RamanEfficiency: []schema.RamanEfficiencyPoint{
					{DeltaFrequency: 15, CR: 0.39},
					{DeltaFrequency: 5, CR: 0.15},
				},
			},
		},
		Transceivers: []schema.Transceiver{
			{
				Type:         "vendorA_trx",
				FrequencyMin: 191.35,
				FrequencyMax: 196.1,
				Modes: []schema.TransceiverMode{{
					Name:         "PS_SP64_1",
					BitRate:      300,
					BaudRate:     64,
					RequiredOSNR: 18,
					InBandTxOSNR: 40,
					GridSpacing:  75,
					TxRollOff:    0.15,
					Cost:         1,
				}},
			},
		},
		Roadms: []schema.Roadm{{
			Type:                  "std_roadm",
			TargetChannelOutPower: -20,
			AddDropOSNR:           38,
			CompatiblePreamp:      []string{"std_low_gain"},
			CompatibleBooster:     []string{"std_booster"},
		}},
		Simulation: &schema.Simulation{
			Grid: schema.Grid{
				FrequencyMin: 191.35,
				FrequencyMax: 196.1,
				Spacing:      50,
				BaudRate:     32,
				Power:        0,
			},
			Autodesign: schema.Autodesign{
				PowerAdjustment: schema.PowerAdjustment{
					MaximalReduction:  -3,
					MaximalBoost:      3,
					ExcursionStepSize: 0.5,
				},
				PowerMode: &schema.PowerMode{},
			},
			SystemMargin: 2,
		},
		Networks: &schema.Networks{Network: []schema.Network{{
			NetworkID:    "net",
			NetworkTypes: &schema.NetworkTypes{PhotonicTopology: &schema.Presence{}},
			Nodes: []schema.NetworkNode{
				{
					NodeID:      "tx-a",
					GeoLocation: &schema.GeoLocation{X: schema.DecimalOf(-4), Y: schema.DecimalOf(40)},
					Transceiver: &schema.TransceiverNode{Model: "vendorA_trx"},
				},
				{
					NodeID: "roadm-m",
					Roadm: &schema.RoadmNode{
						Model:                       "std_roadm",
						TargetEgressPerChannelPower: schema.DecimalOf(-18),
					},
				},
				{
					NodeID:      "edfa-1",
					GeoLocation: &schema.GeoLocation{X: schema.DecimalOf(0), Y: schema.DecimalOf(42)},
					Amplifier: &schema.AmplifierNode{
						Model:      "std_booster",
						GainTarget: schema.DecimalOf(16),
					},
				},
				{
					NodeID:      "att-1",
					GeoLocation: &schema.GeoLocation{X: schema.DecimalOf(2), Y: schema.DecimalOf(44)},
					Attenuator:  &schema.AttenuatorNode{Attenuation: schema.DecimalOf(0.5)},
				},
				{
					NodeID:      "tx-b",
					Transceiver: &schema.TransceiverNode{Model: "vendorA_trx"},
				},
			},
			Links: []schema.NetworkLink{
				{
					LinkID:      "patch{tx-a, roadm-m}",
					Source:      schema.LinkSource{SourceNode: "tx-a"},
					Destination: schema.LinkDestination{DestNode: "roadm-m"},
					Patch:       &schema.PatchLink{},
				},
				{
					LinkID:      "patch{roadm-m, edfa-1}",
					Source:      schema.LinkSource{SourceNode: "roadm-m"},
					Destination: schema.LinkDestination{DestNode: "edfa-1"},
					Patch: &schema.PatchLink{
						RoadmTargetEgressPerChannelPower: schema.DecimalOf(-19),
					},
				},
				{
					LinkID:      "span-1",
					Source:      schema.LinkSource{SourceNode: "edfa-1"},
					Destination: schema.LinkDestination{DestNode: "att-1"},
					Fiber:       &schema.FiberLink{Type: "SSMF", Length: 80},
				},
				{
					LinkID:      "patch{att-1, tx-b}",
					Source:      schema.LinkSource{SourceNode: "att-1"},
					Destination: schema.LinkDestination{DestNode: "tx-b"},
					Patch:       &schema.PatchLink{},
				},
			},
		}}},
	}
}

func TestLoadEquipment(t *testing.T) {
	lib, _, err := Load(testDocument())
	require.NoError(t, err)

	booster, err := lib.Amplifier("std_booster")
	require.NoError(t, err)
	assert.Equal(t, equipment.NFModelPolynomial, booster.NF.Kind)
	assert.InDelta(t, 191.35e12, booster.FMin, 1)
	assert.InDelta(t, 196.1e12, booster.FMax, 1)
	assert.Equal(t, 26.0, booster.GainFlatMax)
	assert.Equal(t, 21.0, booster.PMax)
	require.NotNil(t, booster.OutVOAAuto)
	assert.True(t, *booster.OutVOAAuto)
	assert.Len(t, booster.GainRipple, units.GridChannels)
	assert.Equal(t, []float64{0}, booster.NFRipple)

	lowGain, err := lib.Amplifier("std_low_gain")
	require.NoError(t, err)
	require.Equal(t, equipment.NFModelVariableGain, lowGain.NF.Kind)
	vg := lowGain.NF.VariableGain
	assert.Equal(t, 6.0, vg.OrigNFMin)
	assert.Equal(t, 10.0, vg.OrigNFMax)
	assert.Equal(t, 5.0, vg.DeltaP)
	assert.GreaterOrEqual(t, vg.NF1, 4.0)

	raman, err := lib.Amplifier("raman_pump")
	require.NoError(t, err)
	require.Equal(t, equipment.NFModelFixedGain, raman.NF.Kind)
	assert.Equal(t, 2.5, raman.NF.FixedGain.NF0)

	dual, err := lib.Amplifier("dual_stage")
	require.NoError(t, err)
	require.Equal(t, equipment.NFModelDualStage, dual.NF.Kind)
	require.NotNil(t, dual.Preamp)
	require.NotNil(t, dual.Booster)
	assert.Equal(t, "std_low_gain", dual.Preamp.TypeVariety)
	assert.Equal(t, "std_booster", dual.Booster.TypeVariety)

	ssmf, err := lib.FiberType("SSMF")
	require.NoError(t, err)
	assert.InDelta(t, 16.7e-6, ssmf.Dispersion, 1e-12)
	assert.InDelta(t, 1.27e-3, ssmf.Gamma, 1e-9)
	require.NotNil(t, ssmf.DispersionSlope)
	assert.InDelta(t, 92, *ssmf.DispersionSlope, 1e-9)

	nzdf, ok := lib.RamanFibers["NZDF"]
	require.True(t, ok)
	assert.Equal(t, []float64{0.15, 0.39}, nzdf.CR)
	assert.Equal(t, []float64{5e12, 15e12}, nzdf.FrequencyOffset)
	_, plainToo := lib.Fibers["NZDF"]
	assert.True(t, plainToo, "raman-capable fiber missing from the plain table")

	trx, err := lib.TransceiverType("vendorA_trx")
	require.NoError(t, err)
	require.Len(t, trx.Modes, 1)
	assert.Equal(t, 64e9, trx.Modes[0].BaudRate)
	assert.Equal(t, 300e9, trx.Modes[0].BitRate)
	assert.Equal(t, 75e9, trx.Modes[0].MinSpacing)

	assert.True(t, lib.DefaultSpan.PowerMode)
	assert.Equal(t, [3]float64{-3, 3, 0.5}, lib.DefaultSpan.DeltaPowerRangeDB)
	assert.Equal(t, 2.5, lib.DefaultSpan.TargetExtendedGain)
	require.NotNil(t, lib.DefaultSI.PowerRangeDB)
	assert.Equal(t, [3]float64{0, 0, 0}, *lib.DefaultSI.PowerRangeDB)
	assert.Equal(t, 0.15, lib.DefaultSI.RollOff)
	assert.Equal(t, 40.0, lib.DefaultSI.TxOSNR)
	assert.Equal(t, 2.0, lib.DefaultSI.SysMargins)
}

func TestLoadTopology(t *testing.T) {
	_, g, err := Load(testDocument())
	require.NoError(t, err)

	// Five nodes plus one materialized fiber segment.
	assert.Equal(t, 6, g.NumElements())
	assert.Equal(t, 5, g.NumEdges())

	el, ok := g.Element("span-1")
	require.True(t, ok)
	fiber, ok := el.(*network.Fiber)
	require.True(t, ok)
	assert.Equal(t, 80_000.0, fiber.Params.LengthM)
	assert.Equal(t, 0.2, fiber.Params.LossCoef, "loss-per-km default not applied")
	require.NotNil(t, fiber.Location())
	assert.Equal(t, 43.0, fiber.Location().Latitude)
	assert.Equal(t, 1.0, fiber.Location().Longitude)

	var ingress, egress *network.Edge
	for _, e := range g.Edges() {
		e := e
		if e.From == "edfa-1" && e.To == "span-1" {
			ingress = &e
		}
		if e.From == "span-1" && e.To == "att-1" {
			egress = &e
		}
	}
	require.NotNil(t, ingress, "missing ingress edge")
	require.NotNil(t, egress, "missing egress edge")
	assert.Equal(t, 80.0, ingress.Weight)
	assert.Equal(t, network.ZeroLengthWeight, egress.Weight)

	el, ok = g.Element("roadm-m")
	require.True(t, ok)
	roadm := el.(*network.Roadm)
	assert.Equal(t, -18.0, roadm.TargetPchOutDB)
	assert.Equal(t, -19.0, roadm.PerDegreePchOutDB["edfa-1"])

	el, ok = g.Element("edfa-1")
	require.True(t, ok)
	edfa := el.(*network.Edfa)
	require.NotNil(t, edfa.Operational.GainTarget)
	assert.Equal(t, 16.0, *edfa.Operational.GainTarget)
	assert.Equal(t, "std_booster", edfa.TypeVariety)
}

func TestLoadMissingSimulation(t *testing.T) {
	doc := testDocument()
	doc.Simulation = nil
	_, _, err := Load(doc)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, simulationSection, cerr.Section)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	doc := testDocument()
	doc.Amplifiers[0].MinMaxNF = &schema.MinMaxNF{NFMin: 6, NFMax: 10}

	_, _, err := Load(doc)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoadNodeWithTwoSubStructures(t *testing.T) {
	doc := testDocument()
	doc.Networks.Network[0].Nodes[0].Attenuator = &schema.AttenuatorNode{}

	_, _, err := Load(doc)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "tx-a", serr.ID)
}

func TestLoadUnknownEquipmentTypes(t *testing.T) {
	doc := testDocument()
	doc.Networks.Network[0].Links[2].Fiber.Type = "nonexistent"
	_, _, err := Load(doc)
	require.ErrorIs(t, err, equipment.ErrUnknownType)

	doc = testDocument()
	doc.Networks.Network[0].Nodes[2].Amplifier.Model = "nonexistent"
	_, _, err = Load(doc)
	require.ErrorIs(t, err, equipment.ErrUnknownType)
}

func TestLoadSkipsNonPhotonicNetworks(t *testing.T) {
	doc := testDocument()
	doc.Networks.Network = append(doc.Networks.Network, schema.Network{
		NetworkID: "other",
		Nodes:     []schema.NetworkNode{{NodeID: "ignored"}},
	})

	_, g, err := Load(doc)
	require.NoError(t, err)
	_, ok := g.Element("ignored")
	assert.False(t, ok)
}

func TestAllowedInlineEDFANarrowsDesign(t *testing.T) {
	doc := testDocument()
	doc.Simulation.Autodesign.AllowedInlineEDFA = &[]string{"std_low_gain", "unknown_type"}

	lib, _, err := Load(doc)
	require.NoError(t, err)

	for name, amp := range lib.Amplifiers {
		want := name == "std_low_gain"
		assert.Equal(t, want, amp.AllowedForDesign, "amplifier %s", name)
	}
}

func TestAllowedInlineEDFASurvivesRoundTrip(t *testing.T) {
	doc := testDocument()
	doc.Simulation.Autodesign.AllowedInlineEDFA = &[]string{"std_low_gain"}

	lib1, g1, err := Load(doc)
	require.NoError(t, err)

	doc2, err := Store(lib1, g1)
	require.NoError(t, err)
	require.NotNil(t, doc2.Simulation.Autodesign.AllowedInlineEDFA)
	assert.Equal(t, []string{"std_low_gain"}, *doc2.Simulation.Autodesign.AllowedInlineEDFA)

	lib2, _, err := Load(doc2)
	require.NoError(t, err)
	for name, amp := range lib2.Amplifiers {
		want := name == "std_low_gain"
		assert.Equal(t, want, amp.AllowedForDesign, "amplifier %s", name)
	}
}

func TestNoAllowedInlineEDFASurvivesRoundTrip(t *testing.T) {
	doc := testDocument()
	doc.Simulation.Autodesign.AllowedInlineEDFA = &[]string{"no_such_type"}

	lib1, g1, err := Load(doc)
	require.NoError(t, err)
	for name, amp := range lib1.Amplifiers {
		assert.False(t, amp.AllowedForDesign, "amplifier %s", name)
	}

	doc2, err := Store(lib1, g1)
	require.NoError(t, err)
	require.NotNil(t, doc2.Simulation.Autodesign.AllowedInlineEDFA)
	assert.Empty(t, *doc2.Simulation.Autodesign.AllowedInlineEDFA)

	lib2, _, err := Load(doc2)
	require.NoError(t, err)
	for name, amp := range lib2.Amplifiers {
		assert.False(t, amp.AllowedForDesign, "amplifier %s", name)
	}
}

func TestStoreSkipsUnrepresentableNFModel(t *testing.T) {
	o := newOptions(nil)

	// The zero NF model never comes out of a constructor; a hand-built
	// record exercising it must be skipped rather than emitted without a
	// noise-figure sub-structure, which would not validate.
	amp := &equipment.Amp{TypeVariety: "corrupt", GainMin: 15, GainFlatMax: 26}
	_, ok := o.storeAmplifier(amp)
	assert.False(t, ok)

	out := o.storeAmplifiers(map[string]*equipment.Amp{"corrupt": amp})
	assert.Empty(t, out)
}

func TestStoreRoundTrip(t *testing.T) {
	lib1, g1, err := Load(testDocument())
	require.NoError(t, err)

	doc2, err := Store(lib1, g1)
	require.NoError(t, err)

	lib2, g2, err := Load(doc2)
	require.NoError(t, err)

	// Equipment tables survive with identical keys and models.
	require.Equal(t, len(lib1.Amplifiers), len(lib2.Amplifiers))
	for name, a1 := range lib1.Amplifiers {
		a2, ok := lib2.Amplifiers[name]
		require.True(t, ok, "amplifier %s lost", name)
		assert.Equal(t, a1.NF.Kind, a2.NF.Kind, "amplifier %s", name)
		assert.Equal(t, a1.GainMin, a2.GainMin)
		assert.Equal(t, a1.GainFlatMax, a2.GainFlatMax)
		assert.Equal(t, a1.PMax, a2.PMax)
	}
	raman := lib2.Amplifiers["raman_pump"]
	require.Equal(t, equipment.NFModelFixedGain, raman.NF.Kind)
	assert.Equal(t, 2.5, raman.NF.FixedGain.NF0)

	assert.Equal(t, lib1.DefaultSpan, lib2.DefaultSpan)
	assert.InDelta(t, lib1.DefaultSI.FMin, lib2.DefaultSI.FMin, 1)
	assert.InDelta(t, lib1.DefaultSI.FMax, lib2.DefaultSI.FMax, 1)
	assert.InDelta(t, lib1.DefaultSI.BaudRate, lib2.DefaultSI.BaudRate, 1e-3)
	assert.InDelta(t, lib1.DefaultSI.Spacing, lib2.DefaultSI.Spacing, 1e-3)
	assert.Equal(t, lib1.DefaultSI.PowerDBm, lib2.DefaultSI.PowerDBm)
	assert.Equal(t, lib1.DefaultSI.PowerRangeDB, lib2.DefaultSI.PowerRangeDB)
	assert.Equal(t, lib1.DefaultSI.RollOff, lib2.DefaultSI.RollOff)
	assert.Equal(t, lib1.DefaultSI.SysMargins, lib2.DefaultSI.SysMargins)
	assert.Equal(t, lib1.DefaultSI.TxOSNR, lib2.DefaultSI.TxOSNR)

	f1, f2 := lib1.Fibers["SSMF"], lib2.Fibers["SSMF"]
	assert.InDelta(t, f1.Dispersion, f2.Dispersion, 1e-15)
	assert.InDelta(t, f1.Gamma, f2.Gamma, 1e-12)
	require.NotNil(t, f2.DispersionSlope)
	assert.InDelta(t, *f1.DispersionSlope, *f2.DispersionSlope, 1e-9)
	rf2, ok := lib2.RamanFibers["NZDF"]
	require.True(t, ok)
	assert.Equal(t, lib1.RamanFibers["NZDF"].CR, rf2.CR)

	// Topology: same elements and the same span edges.
	assert.Equal(t, g1.NumElements(), g2.NumElements())
	assert.Equal(t, g1.NumEdges(), g2.NumEdges())
	for _, el := range g1.Elements() {
		el2, ok := g2.Element(el.UID())
		require.True(t, ok, "element %s lost", el.UID())
		assert.Equal(t, el.Kind(), el2.Kind())
	}
	roadm := mustRoadm(t, g2, "roadm-m")
	assert.Equal(t, -18.0, roadm.TargetPchOutDB)
	assert.Equal(t, -19.0, roadm.PerDegreePchOutDB["edfa-1"])
}

func mustRoadm(t *testing.T, g *network.Graph, uid string) *network.Roadm {
	t.Helper()
	el, ok := g.Element(uid)
	require.True(t, ok)
	r, ok := el.(*network.Roadm)
	require.True(t, ok)
	return r
}

func TestStoreOutputValidates(t *testing.T) {
	lib, g, err := Load(testDocument())
	require.NoError(t, err)

	doc, err := Store(lib, g)
	require.NoError(t, err)
	require.NoError(t, schema.NewValidator().Validate(doc))

	// Sorted, deterministic equipment ordering.
	require.Len(t, doc.Amplifiers, 4)
	assert.Equal(t, "dual_stage", doc.Amplifiers[0].Type)
	assert.Equal(t, "raman_pump", doc.Amplifiers[1].Type)
	require.NotNil(t, doc.Amplifiers[1].RamanApproximation)
	require.NotNil(t, doc.Amplifiers[0].Composite)
}

func TestStoreNilLibrary(t *testing.T) {
	_, err := Store(nil, nil)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestStoreRejectsFiberToFiberEdge(t *testing.T) {
	lib, _, err := Load(testDocument())
	require.NoError(t, err)

	g := network.New()
	params := network.FiberParams{LengthM: 1000, LossCoef: 0.2}
	require.NoError(t, g.AddElement(network.NewTransceiver("tx-a", "vendorA_trx", nil)))
	require.NoError(t, g.AddElement(network.NewFiber("f1", "SSMF", nil, params)))
	require.NoError(t, g.AddElement(network.NewFiber("f2", "SSMF", nil, params)))
	require.NoError(t, g.AddElement(network.NewTransceiver("tx-b", "vendorA_trx", nil)))
	require.NoError(t, g.Connect("tx-a", "f1", 1))
	require.NoError(t, g.Connect("f1", "f2", network.ZeroLengthWeight))
	require.NoError(t, g.Connect("f2", "tx-b", network.ZeroLengthWeight))

	_, err = Store(lib, g)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "edge", serr.Kind)
}

func TestStoreFiberNeedsOneNeighborEachSide(t *testing.T) {
	lib, _, err := Load(testDocument())
	require.NoError(t, err)

	g := network.New()
	require.NoError(t, g.AddElement(network.NewFiber("dangling", "SSMF", nil, network.FiberParams{})))

	_, err = Store(lib, g)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "dangling", serr.ID)
}

func TestStoreTransceiverWithoutType(t *testing.T) {
	lib, _, err := Load(testDocument())
	require.NoError(t, err)

	g := network.New()
	require.NoError(t, g.AddElement(network.NewTransceiver("tx-legacy", "", nil)))

	doc, err := Store(lib, g)
	require.NoError(t, err)
	require.Len(t, doc.Networks.Network, 1)
	require.Len(t, doc.Networks.Network[0].Nodes, 1)
	assert.Equal(t, "vendorA_trx", doc.Networks.Network[0].Nodes[0].Transceiver.Model)

	// No transceiver types at all: the fallback has nothing to offer.
	empty := equipment.NewLibrary()
	empty.DefaultSpan = lib.DefaultSpan
	empty.DefaultSI = lib.DefaultSI
	_, err = Store(empty, g)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
}

func TestResampleSpectrum(t *testing.T) {
	out, err := resampleSpectrum(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out)

	out, err = resampleSpectrum([]spectrumPoint{{frequency: 193e12, value: 1.5}})
	require.NoError(t, err)
	require.Len(t, out, units.GridChannels)
	for _, v := range out {
		assert.Equal(t, 1.5, v)
	}

	// Two points spanning the grid: clamped below, interpolated inside.
	out, err = resampleSpectrum([]spectrumPoint{
		{frequency: 193e12, value: 0},
		{frequency: 194e12, value: 1},
	})
	require.NoError(t, err)
	require.Len(t, out, units.GridChannels)
	assert.Equal(t, 0.0, out[0], "below-range samples must clamp to the first value")
	assert.Equal(t, 1.0, out[units.GridChannels-1], "above-range samples must clamp to the last value")
	mid := (193.5e12 - units.GridBaseFrequency) / units.GridSpacing
	assert.InDelta(t, 0.5, out[int(mid)], 1e-9)
}

func TestResampleSpectrumUnsortedInput(t *testing.T) {
	out, err := resampleSpectrum([]spectrumPoint{
		{frequency: 195e12, value: 2},
		{frequency: 192e12, value: 1},
	})
	require.NoError(t, err)
	require.Len(t, out, units.GridChannels)
	assert.Equal(t, 1.0, out[0])
}

func TestLoadWithoutNetworks(t *testing.T) {
	doc := testDocument()
	doc.Networks = nil

	lib, g, err := Load(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumElements())
	assert.Len(t, lib.Amplifiers, 4)
}

func TestStoreWithoutGraph(t *testing.T) {
	lib, _, err := Load(testDocument())
	require.NoError(t, err)

	doc, err := Store(lib, nil)
	require.NoError(t, err)
	assert.Nil(t, doc.Networks)
	assert.Len(t, doc.Fibers, 2)
}

func TestUnrecognizedModelError(t *testing.T) {
	entry := &schema.Amplifier{Type: "bad", GainMin: 10}
	_, err := transformAmplifier(entry)

	var merr *UnrecognizedModelError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 0, merr.Matched)
}
