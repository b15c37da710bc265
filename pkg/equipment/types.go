package equipment

// Roadm is one ROADM equipment type.
type Roadm struct {
	TypeVariety    string
	TargetPchOutDB float64 // per-channel output power target, dBm
	AddDropOSNR    float64 // dB
	PMD            float64 // s
	Restrictions   RoadmRestrictions
}

// Clone deep-copies the ROADM record.
func (r *Roadm) Clone() *Roadm {
	if r == nil {
		return nil
	}
	out := *r
	out.Restrictions = RoadmRestrictions{
		PreampVarieties:  append([]string(nil), r.Restrictions.PreampVarieties...),
		BoosterVarieties: append([]string(nil), r.Restrictions.BoosterVarieties...),
	}
	return &out
}

// RoadmRestrictions lists the amplifier types a ROADM accepts on its add
// and drop stages. Order-insensitive; either list may be empty.
type RoadmRestrictions struct {
	PreampVarieties  []string
	BoosterVarieties []string
}

// Transceiver is one transceiver equipment type. Mode order is preserved
// from the document; downstream mode selection depends on it.
type Transceiver struct {
	TypeVariety string
	FMin        float64 // Hz
	FMax        float64 // Hz
	Modes       []Mode
}

// Mode is one modulation mode of a transceiver type.
type Mode struct {
	Format     string
	BaudRate   float64 // baud
	OSNR       float64 // required OSNR, dB
	BitRate    float64 // bit/s
	RollOff    float64
	TxOSNR     float64 // dB
	MinSpacing float64 // Hz
	Cost       float64
}

// Span holds the global default span assumptions synthesized from the
// simulation options.
type Span struct {
	PowerMode                  bool
	DeltaPowerRangeDB          [3]float64 // maximal reduction, maximal boost, step
	MaxFiberLineicLossForRaman float64
	TargetExtendedGain         float64
	MaxLength                  float64
	LengthUnits                string
	MaxLoss                    *float64
	Padding                    float64
	EOL                        float64
	ConIn                      float64
	ConOut                     float64
}

// SpectralInfo holds the default channel grid and launch assumptions.
type SpectralInfo struct {
	FMin         float64 // Hz
	FMax         float64 // Hz
	BaudRate     float64 // baud
	Spacing      float64 // Hz
	PowerDBm     float64
	PowerRangeDB *[3]float64 // start, stop, step; nil outside power mode
	RollOff      float64
	SysMargins   float64 // dB
	TxOSNR       float64 // dB
}
