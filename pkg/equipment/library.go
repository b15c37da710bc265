package equipment

import "fmt"

// Library is the complete equipment library: one table per equipment kind
// keyed by type-variety name, plus the two default-keyed singletons modeled
// as plain fields. A fiber type may appear in both Fibers and RamanFibers;
// the Raman table is additive.
type Library struct {
	Amplifiers   map[string]*Amp
	Fibers       map[string]*Fiber
	RamanFibers  map[string]*RamanFiber
	Roadms       map[string]*Roadm
	Transceivers map[string]*Transceiver

	DefaultSpan Span
	DefaultSI   SpectralInfo
}

// NewLibrary returns an empty library with all tables allocated.
func NewLibrary() *Library {
	return &Library{
		Amplifiers:   make(map[string]*Amp),
		Fibers:       make(map[string]*Fiber),
		RamanFibers:  make(map[string]*RamanFiber),
		Roadms:       make(map[string]*Roadm),
		Transceivers: make(map[string]*Transceiver),
	}
}

// Amplifier looks up an amplifier type by name.
func (l *Library) Amplifier(typeVariety string) (*Amp, error) {
	amp, ok := l.Amplifiers[typeVariety]
	if !ok {
		return nil, fmt.Errorf("amplifier %q: %w", typeVariety, ErrUnknownType)
	}
	return amp, nil
}

// FiberType looks up a fiber type by name.
func (l *Library) FiberType(typeVariety string) (*Fiber, error) {
	f, ok := l.Fibers[typeVariety]
	if !ok {
		return nil, fmt.Errorf("fiber %q: %w", typeVariety, ErrUnknownType)
	}
	return f, nil
}

// RoadmType looks up a ROADM type by name.
func (l *Library) RoadmType(typeVariety string) (*Roadm, error) {
	r, ok := l.Roadms[typeVariety]
	if !ok {
		return nil, fmt.Errorf("roadm %q: %w", typeVariety, ErrUnknownType)
	}
	return r, nil
}

// TransceiverType looks up a transceiver type by name.
func (l *Library) TransceiverType(typeVariety string) (*Transceiver, error) {
	t, ok := l.Transceivers[typeVariety]
	if !ok {
		return nil, fmt.Errorf("transceiver %q: %w", typeVariety, ErrUnknownType)
	}
	return t, nil
}
