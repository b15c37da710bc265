// Package network models the loaded topology: typed network elements and a
// directed graph whose membership is keyed by stable string identifiers
// rather than object identity.
package network

// Kind discriminates the network element variants.
type Kind int

const (
	// KindTransceiver is a transponder endpoint.
	KindTransceiver Kind = iota
	// KindEdfa is an amplifier.
	KindEdfa
	// KindRoadm is a reconfigurable add/drop node.
	KindRoadm
	// KindFused is a lumped attenuation (a fused splice or fixed pad).
	KindFused
	// KindFiber is one linear fiber segment.
	KindFiber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTransceiver:
		return "transceiver"
	case KindEdfa:
		return "edfa"
	case KindRoadm:
		return "roadm"
	case KindFused:
		return "fused"
	case KindFiber:
		return "fiber"
	default:
		return "unknown"
	}
}

// Location is optional geolocation metadata for an element.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Midpoint returns the location halfway between two locations.
func Midpoint(a, b Location) Location {
	return Location{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

// Element is a typed network graph node. Identity is the UID, unique across
// the whole graph. Operational parameters on the concrete types stay
// exported: the auto-design/propagation stage overwrites them in place
// between load and store.
type Element interface {
	UID() string
	Kind() Kind
	// Location returns the element's geolocation, or nil when unknown.
	Location() *Location
}
