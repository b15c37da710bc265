package equipment

import (
	"fmt"
	"sort"
)

// Fiber is one fiber equipment type. All values are SI after the load-time
// unit conversions.
type Fiber struct {
	TypeVariety     string
	Dispersion      float64  // chromatic dispersion, s/m²
	DispersionSlope *float64 // s/m³; nil when the catalog does not state it
	Gamma           float64  // nonlinear coefficient, 1/(W·m)
	PMDCoef         float64  // polarization-mode dispersion, s/√m
}

// Clone deep-copies the fiber record.
func (f *Fiber) Clone() *Fiber {
	if f == nil {
		return nil
	}
	out := *f
	if f.DispersionSlope != nil {
		v := *f.DispersionSlope
		out.DispersionSlope = &v
	}
	return &out
}

// RamanFiber extends a fiber type with its Raman gain efficiency profile:
// CR[i] is the efficiency at pump offset FrequencyOffset[i]. The two slices
// always have equal length and offsets are sorted ascending.
type RamanFiber struct {
	Fiber
	CR              []float64
	FrequencyOffset []float64 // Hz
}

// NewRamanFiber builds a RamanFiber, sorting the efficiency profile by
// frequency offset. The input slices must have equal length.
func NewRamanFiber(base Fiber, cr, frequencyOffset []float64) (*RamanFiber, error) {
	if len(cr) != len(frequencyOffset) {
		return nil, fmt.Errorf("fiber %q raman efficiency: %d cr values vs %d frequency offsets: %w",
			base.TypeVariety, len(cr), len(frequencyOffset), ErrLengthsDiffer)
	}

	type pair struct{ offset, cr float64 }
	pairs := make([]pair, len(cr))
	for i := range cr {
		pairs[i] = pair{offset: frequencyOffset[i], cr: cr[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].offset < pairs[j].offset })

	rf := &RamanFiber{
		Fiber:           *base.Clone(),
		CR:              make([]float64, len(pairs)),
		FrequencyOffset: make([]float64, len(pairs)),
	}
	for i, p := range pairs {
		rf.CR[i] = p.cr
		rf.FrequencyOffset[i] = p.offset
	}
	return rf, nil
}
