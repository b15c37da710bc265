package network

import "github.com/lumennet/photonic/pkg/equipment"

// Transceiver is a transponder endpoint. TypeVariety may be empty for
// legacy documents that never declared one.
type Transceiver struct {
	uid         string
	location    *Location
	TypeVariety string
}

// NewTransceiver builds a transceiver element.
func NewTransceiver(uid, typeVariety string, loc *Location) *Transceiver {
	return &Transceiver{uid: uid, TypeVariety: typeVariety, location: loc}
}

func (t *Transceiver) UID() string         { return t.uid }
func (t *Transceiver) Kind() Kind          { return KindTransceiver }
func (t *Transceiver) Location() *Location { return t.location }

// EdfaOperational carries the amplifier's requested operating point. The
// auto-design stage may rewrite any of these before a store.
type EdfaOperational struct {
	GainTarget *float64 // dB; nil until requested or designed
	TiltTarget *float64 // dB
	OutVOA     *float64 // dB
	DeltaP     *float64 // dB
}

// Edfa is an amplifier placement. Params is this element's own copy of the
// library record, safe for per-node mutation by the design stage.
type Edfa struct {
	uid         string
	location    *Location
	TypeVariety string
	Params      *equipment.Amp
	Operational EdfaOperational
}

// NewEdfa builds an amplifier element around a copy of its library record.
func NewEdfa(uid, typeVariety string, loc *Location, params *equipment.Amp, op EdfaOperational) *Edfa {
	return &Edfa{uid: uid, TypeVariety: typeVariety, location: loc, Params: params, Operational: op}
}

func (e *Edfa) UID() string         { return e.uid }
func (e *Edfa) Kind() Kind          { return KindEdfa }
func (e *Edfa) Location() *Location { return e.location }

// Roadm is an add/drop node placement. PerDegreePchOutDB maps a downstream
// neighbor UID to the egress per-channel power pinned for that degree;
// degrees not listed fall back to TargetPchOutDB.
type Roadm struct {
	uid              string
	location         *Location
	TypeVariety      string
	Params           *equipment.Roadm
	TargetPchOutDB   float64
	PerDegreePchOutDB map[string]float64
}

// NewRoadm builds a ROADM element around a copy of its library record.
func NewRoadm(uid, typeVariety string, loc *Location, params *equipment.Roadm, targetPchOutDB float64) *Roadm {
	return &Roadm{
		uid:               uid,
		TypeVariety:       typeVariety,
		location:          loc,
		Params:            params,
		TargetPchOutDB:    targetPchOutDB,
		PerDegreePchOutDB: make(map[string]float64),
	}
}

func (r *Roadm) UID() string         { return r.uid }
func (r *Roadm) Kind() Kind          { return KindRoadm }
func (r *Roadm) Location() *Location { return r.location }

// Fused is a lumped attenuation with no type-variety.
type Fused struct {
	uid      string
	location *Location
	Loss     *float64 // dB; nil when unspecified
}

// NewFused builds an attenuator element.
func NewFused(uid string, loc *Location, loss *float64) *Fused {
	return &Fused{uid: uid, location: loc, Loss: loss}
}

func (f *Fused) UID() string         { return f.uid }
func (f *Fused) Kind() Kind          { return KindFused }
func (f *Fused) Location() *Location { return f.location }

// FiberParams are the per-segment physical parameters, merged from the link
// entry and the fiber's catalog record.
type FiberParams struct {
	LengthM         float64  // m
	LossCoef        float64  // dB/km
	AttIn           float64  // dB
	ConIn           float64  // dB
	ConOut          float64  // dB
	Dispersion      float64  // s/m², from the catalog
	DispersionSlope *float64 // s/m³
	Gamma           float64  // 1/(W·m)
	PMDCoef         float64  // s/√m
}

// Fiber is one linear fiber segment: exactly one predecessor and one
// successor in the graph.
type Fiber struct {
	uid         string
	location    *Location
	TypeVariety string
	Params      FiberParams
}

// NewFiber builds a fiber segment element.
func NewFiber(uid, typeVariety string, loc *Location, params FiberParams) *Fiber {
	return &Fiber{uid: uid, TypeVariety: typeVariety, location: loc, Params: params}
}

func (f *Fiber) UID() string         { return f.uid }
func (f *Fiber) Kind() Kind          { return KindFiber }
func (f *Fiber) Location() *Location { return f.location }
