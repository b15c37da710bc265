// Package schema defines the document shape exchanged with the outside
// world: the equipment catalog, the simulation options, and the topology,
// using the YANG-derived JSON field names. It also hosts the validation
// collaborator that every document passes through on the way in and out.
package schema

// Document is the top-level hierarchical document.
type Document struct {
	Amplifiers   []Amplifier   `json:"tip-photonic-equipment:amplifier,omitempty" validate:"omitempty,unique=Type,dive"`
	Fibers       []Fiber       `json:"tip-photonic-equipment:fiber,omitempty" validate:"omitempty,unique=Type,dive"`
	Transceivers []Transceiver `json:"tip-photonic-equipment:transceiver,omitempty" validate:"omitempty,unique=Type,dive"`
	Roadms       []Roadm       `json:"tip-photonic-equipment:roadm,omitempty" validate:"omitempty,unique=Type,dive"`
	Simulation   *Simulation   `json:"tip-photonic-simulation:simulation,omitempty"`
	Networks     *Networks     `json:"ietf-network:networks,omitempty"`
}

// Amplifier is one EDFA catalog entry. Exactly one of the noise-figure
// sub-structures must be present; the validator enforces that.
type Amplifier struct {
	Type         string   `json:"type" validate:"required"`
	GainMin      Decimal  `json:"gain-min"`
	GainFlatMax  *Decimal `json:"gain-flatmax,omitempty"`
	FrequencyMin *Decimal `json:"frequency-min,omitempty"` // THz
	FrequencyMax *Decimal `json:"frequency-max,omitempty"` // THz
	MaxPowerOut  *Decimal `json:"max-power-out,omitempty"` // dBm
	HasOutputVOA *bool    `json:"has-output-voa,omitempty"`

	PolynomialNF       *PolynomialCoefficients `json:"polynomial-NF,omitempty"`
	OpenROADMILA       *PolynomialCoefficients `json:"OpenROADM-ILA,omitempty"`
	OpenROADMPreamp    *Presence               `json:"OpenROADM-preamp,omitempty"`
	OpenROADMBooster   *Presence               `json:"OpenROADM-booster,omitempty"`
	MinMaxNF           *MinMaxNF               `json:"min-max-NF,omitempty"`
	Composite          *CompositeAmplifier     `json:"composite,omitempty"`
	RamanApproximation *RamanApproximation     `json:"raman-approximation,omitempty"`

	GainRipple      []GainRipplePoint      `json:"gain-ripple,omitempty" validate:"omitempty,unique=Frequency,dive"`
	NFRipple        []NFRipplePoint        `json:"nf-ripple,omitempty" validate:"omitempty,unique=Frequency,dive"`
	DynamicGainTilt []DynamicGainTiltPoint `json:"dynamic-gain-tilt,omitempty" validate:"omitempty,unique=Frequency,dive"`
}

// PolynomialCoefficients are the four coefficients of a cubic NF polynomial.
type PolynomialCoefficients struct {
	A Decimal `json:"a"`
	B Decimal `json:"b"`
	C Decimal `json:"c"`
	D Decimal `json:"d"`
}

// MinMaxNF describes a variable-gain amplifier by its NF extremes.
type MinMaxNF struct {
	NFMin Decimal `json:"nf-min"`
	NFMax Decimal `json:"nf-max"`
}

// CompositeAmplifier references two other amplifier types by name.
type CompositeAmplifier struct {
	Preamp  string `json:"preamp" validate:"required"`
	Booster string `json:"booster" validate:"required"`
}

// RamanApproximation is the fixed-NF shorthand for a Raman amplifier.
type RamanApproximation struct {
	NF Decimal `json:"nf"`
}

// GainRipplePoint is one sparse sample of the gain ripple spectrum.
type GainRipplePoint struct {
	Frequency int64   `json:"frequency" validate:"required"` // Hz
	Value     Decimal `json:"gain-ripple"`
}

// NFRipplePoint is one sparse sample of the noise-figure ripple spectrum.
type NFRipplePoint struct {
	Frequency int64   `json:"frequency" validate:"required"` // Hz
	Value     Decimal `json:"nf-ripple"`
}

// DynamicGainTiltPoint is one sparse sample of the dynamic gain tilt.
type DynamicGainTiltPoint struct {
	Frequency int64   `json:"frequency" validate:"required"` // Hz
	Value     Decimal `json:"dynamic-gain-tilt"`
}

// Fiber is one fiber catalog entry. An entry carrying raman-efficiency data
// additionally describes a Raman-capable fiber.
type Fiber struct {
	Type                     string                 `json:"type" validate:"required"`
	ChromaticDispersion      Decimal                `json:"chromatic-dispersion"`       // ps/nm/km
	ChromaticDispersionSlope *Decimal               `json:"chromatic-dispersion-slope,omitempty"` // ps/nm²/km
	Gamma                    Decimal                `json:"gamma"`                      // 1/(W·km)
	PMDCoefficient           Decimal                `json:"pmd-coefficient"`            // ps/√km
	RamanEfficiency          []RamanEfficiencyPoint `json:"raman-efficiency,omitempty" validate:"omitempty,min=1,dive"`
}

// RamanEfficiencyPoint pairs a Raman efficiency coefficient with its
// frequency offset from the pump.
type RamanEfficiencyPoint struct {
	DeltaFrequency Decimal `json:"delta-frequency"` // THz
	CR             Decimal `json:"cr"`
}

// Transceiver is one transceiver catalog entry with its modulation modes.
// Mode order is significant and preserved.
type Transceiver struct {
	Type         string            `json:"type" validate:"required"`
	FrequencyMin Decimal           `json:"frequency-min"` // THz
	FrequencyMax Decimal           `json:"frequency-max"` // THz
	Modes        []TransceiverMode `json:"mode" validate:"required,min=1,unique=Name,dive"`
}

// TransceiverMode is one modulation mode of a transceiver.
type TransceiverMode struct {
	Name         string  `json:"name" validate:"required"`
	BitRate      Decimal `json:"bit-rate"`        // Gbit/s
	BaudRate     Decimal `json:"baud-rate"`       // Gbaud
	RequiredOSNR Decimal `json:"required-osnr"`   // dB
	InBandTxOSNR Decimal `json:"in-band-tx-osnr"` // dB
	GridSpacing  Decimal `json:"grid-spacing"`    // GHz
	TxRollOff    Decimal `json:"tx-roll-off"`
	Cost         Decimal `json:"tip-photonic-simulation:cost"`
}

// Roadm is one ROADM catalog entry.
type Roadm struct {
	Type                  string   `json:"type" validate:"required"`
	TargetChannelOutPower Decimal  `json:"target-channel-out-power"`      // dBm
	AddDropOSNR           Decimal  `json:"add-drop-osnr"`                 // dB
	PMD                   Decimal  `json:"polarization-mode-dispersion"`  // s
	CompatiblePreamp      []string `json:"compatible-preamp,omitempty"`
	CompatibleBooster     []string `json:"compatible-booster,omitempty"`
}

// Simulation holds the global simulation assumptions.
type Simulation struct {
	Grid         Grid       `json:"grid"`
	Autodesign   Autodesign `json:"autodesign"`
	SystemMargin Decimal    `json:"system-margin"`
}

// Grid describes the default channel grid.
type Grid struct {
	FrequencyMin Decimal  `json:"frequency-min"` // THz
	FrequencyMax Decimal  `json:"frequency-max"` // THz
	Spacing      Decimal  `json:"spacing"`       // GHz
	BaudRate     Decimal  `json:"baud-rate"`     // Gbaud
	Power        Decimal  `json:"power"`         // dBm
	TxRollOff    *Decimal `json:"tx-roll-off,omitempty" default:"0.15"`
	TxOSNR       *Decimal `json:"tx-osnr,omitempty" default:"40"`
}

// Autodesign holds the automatic-design options. power-mode and gain-mode
// are alternatives; power-mode presence switches the whole design to
// constant-power assumptions.
type Autodesign struct {
	AllowedInlineEDFA *[]string       `json:"allowed-inline-edfa,omitempty"`
	PowerAdjustment   PowerAdjustment `json:"power-adjustment-for-span-loss"`
	PowerMode         *PowerMode      `json:"power-mode,omitempty"`
	GainMode          *EmptyLeaf      `json:"gain-mode,omitempty"`
}

// PowerAdjustment bounds the per-span launch power excursion.
type PowerAdjustment struct {
	MaximalReduction  Decimal `json:"maximal-reduction"`   // dB
	MaximalBoost      Decimal `json:"maximal-boost"`       // dB
	ExcursionStepSize Decimal `json:"excursion-step-size"` // dB
}

// PowerMode selects constant-power autodesign, optionally with a sweep.
type PowerMode struct {
	PowerSweep *PowerSweep `json:"power-sweep,omitempty"`
}

// PowerSweep is an optional launch-power sweep range.
type PowerSweep struct {
	Start    Decimal `json:"start"`     // dBm
	Stop     Decimal `json:"stop"`      // dBm
	StepSize Decimal `json:"step-size"` // dB
}

// Networks is the ietf-network container.
type Networks struct {
	Network []Network `json:"network" validate:"omitempty,dive"`
}

// Network is one topology instance. Only networks flagged with the
// photonic-topology network type are consumed.
type Network struct {
	NetworkID    string        `json:"network-id" validate:"required"`
	NetworkTypes *NetworkTypes `json:"network-types,omitempty"`
	Nodes        []NetworkNode `json:"node,omitempty" validate:"omitempty,unique=NodeID,dive"`
	Links        []NetworkLink `json:"ietf-network-topology:link,omitempty" validate:"omitempty,unique=LinkID,dive"`
}

// NetworkTypes flags the topology flavor of a network.
type NetworkTypes struct {
	PhotonicTopology *Presence `json:"tip-photonic-topology:photonic-topology,omitempty"`
}

// NetworkNode is one topology node. Exactly one of the element
// sub-structures must be present for photonic networks.
type NetworkNode struct {
	NodeID      string           `json:"node-id" validate:"required"`
	GeoLocation *GeoLocation     `json:"tip-photonic-topology:geo-location,omitempty"`
	Amplifier   *AmplifierNode   `json:"tip-photonic-topology:amplifier,omitempty"`
	Roadm       *RoadmNode       `json:"tip-photonic-topology:roadm,omitempty"`
	Transceiver *TransceiverNode `json:"tip-photonic-topology:transceiver,omitempty"`
	Attenuator  *AttenuatorNode  `json:"tip-photonic-topology:attenuator,omitempty"`
}

// GeoLocation is optional per-node geolocation metadata.
type GeoLocation struct {
	X *Decimal `json:"x,omitempty"` // longitude
	Y *Decimal `json:"y,omitempty"` // latitude
}

// AmplifierNode places an amplifier of a given model into the topology.
type AmplifierNode struct {
	Model        string   `json:"model" validate:"required"`
	GainTarget   *Decimal `json:"gain-target,omitempty"`    // dB
	TiltTarget   *Decimal `json:"tilt-target,omitempty"`    // dB
	OutVOATarget *Decimal `json:"out-voa-target,omitempty"` // dB
	DeltaP       *Decimal `json:"delta-p,omitempty"`        // dB
}

// RoadmNode places a ROADM of a given model into the topology.
type RoadmNode struct {
	Model                       string   `json:"model" validate:"required"`
	TargetEgressPerChannelPower *Decimal `json:"target-egress-per-channel-power,omitempty"` // dBm
}

// TransceiverNode places a transceiver of a given model into the topology.
type TransceiverNode struct {
	Model string `json:"model" validate:"required"`
}

// AttenuatorNode places a fixed lumped attenuation into the topology.
type AttenuatorNode struct {
	Attenuation *Decimal `json:"attenuation,omitempty"` // dB
}

// NetworkLink is one topology link: either a fiber segment or a
// zero-length patch.
type NetworkLink struct {
	LinkID      string          `json:"link-id" validate:"required"`
	Source      LinkSource      `json:"source"`
	Destination LinkDestination `json:"destination"`
	Fiber       *FiberLink      `json:"tip-photonic-topology:fiber,omitempty"`
	Patch       *PatchLink      `json:"tip-photonic-topology:patch,omitempty"`
}

// LinkSource names the upstream node of a link.
type LinkSource struct {
	SourceNode string `json:"source-node" validate:"required"`
}

// LinkDestination names the downstream node of a link.
type LinkDestination struct {
	DestNode string `json:"dest-node" validate:"required"`
}

// FiberLink carries the physical parameters of a fiber segment.
type FiberLink struct {
	Type          string   `json:"type" validate:"required"`
	Length        Decimal  `json:"length"` // km
	LossPerKM     *Decimal `json:"loss-per-km,omitempty" default:"0.2"` // dB/km
	AttenuationIn Decimal  `json:"attenuation-in"` // dB
	ConnAttIn     Decimal  `json:"conn-att-in"`    // dB
	ConnAttOut    Decimal  `json:"conn-att-out"`   // dB
}

// PatchLink is a zero-length logical connection. A patch leaving a ROADM
// may pin that degree's egress per-channel power.
type PatchLink struct {
	RoadmTargetEgressPerChannelPower *Decimal `json:"roadm-target-egress-per-channel-power,omitempty"` // dBm
}
