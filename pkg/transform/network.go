package transform

import (
	"fmt"

	"github.com/lumennet/photonic/pkg/equipment"
	"github.com/lumennet/photonic/pkg/logging"
	"github.com/lumennet/photonic/pkg/network"
	"github.com/lumennet/photonic/pkg/schema"
)

// loadNetwork walks the topology section and builds the element graph.
// Links are processed in two passes: fiber links first materialize their
// segment elements, then every link contributes its edges. Patch links
// recording per-degree power need the ROADM elements to exist already,
// and edge creation needs the fiber elements, hence the ordering.
func (o *options) loadNetwork(doc *schema.Document, lib *equipment.Library) (*network.Graph, error) {
	g := network.New()
	if doc.Networks == nil {
		return g, nil
	}

	for ni := range doc.Networks.Network {
		net := &doc.Networks.Network[ni]
		if net.NetworkTypes == nil || net.NetworkTypes.PhotonicTopology == nil {
			o.log.Debug("skipping non-photonic network", logging.String("network_id", net.NetworkID))
			continue
		}

		for i := range net.Nodes {
			el, err := o.buildElement(&net.Nodes[i], lib)
			if err != nil {
				return nil, err
			}
			if err := g.AddElement(el); err != nil {
				return nil, err
			}
			o.recordElement(el.Kind().String())
		}

		// First pass: materialize fiber segment elements.
		for i := range net.Links {
			link := &net.Links[i]
			switch {
			case link.Fiber != nil:
				el, err := o.buildFiberElement(link, lib, g)
				if err != nil {
					return nil, err
				}
				if err := g.AddElement(el); err != nil {
					return nil, err
				}
				o.recordElement(el.Kind().String())
			case link.Patch != nil:
				// No element of its own.
			default:
				return nil, &StructuralError{Kind: "link", ID: link.LinkID,
					Reason: "neither a fiber nor a patch"}
			}
		}

		// Second pass: wire the edges.
		for i := range net.Links {
			link := &net.Links[i]
			src := link.Source.SourceNode
			dst := link.Destination.DestNode

			if link.Fiber != nil {
				if err := g.Connect(src, link.LinkID, link.Fiber.Length.Float64()); err != nil {
					return nil, fmt.Errorf("link %q: %w", link.LinkID, err)
				}
				if err := g.Connect(link.LinkID, dst, network.ZeroLengthWeight); err != nil {
					return nil, fmt.Errorf("link %q: %w", link.LinkID, err)
				}
				continue
			}

			if err := g.Connect(src, dst, network.ZeroLengthWeight); err != nil {
				return nil, fmt.Errorf("link %q: %w", link.LinkID, err)
			}
			if p := link.Patch.RoadmTargetEgressPerChannelPower; p != nil {
				el, _ := g.Element(src)
				roadm, ok := el.(*network.Roadm)
				if !ok {
					return nil, &StructuralError{Kind: "link", ID: link.LinkID,
						Reason: "per-degree target power on a non-roadm source"}
				}
				roadm.PerDegreePchOutDB[dst] = p.Float64()
			}
		}
	}

	return g, nil
}

// buildElement classifies one topology node by which element sub-structure
// is present and instantiates the matching graph element. Zero or multiple
// sub-structures is a structural error naming the node.
func (o *options) buildElement(node *schema.NetworkNode, lib *equipment.Library) (network.Element, error) {
	loc := nodeLocation(node)

	type builder func() (network.Element, error)
	var builders []builder

	if amp := node.Amplifier; amp != nil {
		builders = append(builders, func() (network.Element, error) {
			params, err := lib.Amplifier(amp.Model)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", node.NodeID, err)
			}
			tilt := schema.FloatOrDefault(amp.TiltTarget, 0)
			return network.NewEdfa(node.NodeID, amp.Model, loc, params.Clone(), network.EdfaOperational{
				GainTarget: schema.FloatOrNil(amp.GainTarget),
				TiltTarget: &tilt,
				OutVOA:     schema.FloatOrNil(amp.OutVOATarget),
				DeltaP:     schema.FloatOrNil(amp.DeltaP),
			}), nil
		})
	}
	if roadm := node.Roadm; roadm != nil {
		builders = append(builders, func() (network.Element, error) {
			params, err := lib.RoadmType(roadm.Model)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", node.NodeID, err)
			}
			target := schema.FloatOrDefault(roadm.TargetEgressPerChannelPower, params.TargetPchOutDB)
			return network.NewRoadm(node.NodeID, roadm.Model, loc, params.Clone(), target), nil
		})
	}
	if txp := node.Transceiver; txp != nil {
		builders = append(builders, func() (network.Element, error) {
			if _, err := lib.TransceiverType(txp.Model); err != nil {
				return nil, fmt.Errorf("node %q: %w", node.NodeID, err)
			}
			return network.NewTransceiver(node.NodeID, txp.Model, loc), nil
		})
	}
	if att := node.Attenuator; att != nil {
		builders = append(builders, func() (network.Element, error) {
			return network.NewFused(node.NodeID, loc, schema.FloatOrNil(att.Attenuation)), nil
		})
	}

	if len(builders) != 1 {
		return nil, &StructuralError{Kind: "node", ID: node.NodeID,
			Reason: fmt.Sprintf("%d element sub-structures present, want exactly 1", len(builders))}
	}
	return builders[0]()
}

// buildFiberElement materializes the fiber segment element a fiber link
// implies, merging the link's physical parameters with the fiber type's
// catalog record. The segment's location is the midpoint of its endpoints
// when both are geolocated; otherwise it is omitted.
func (o *options) buildFiberElement(link *schema.NetworkLink, lib *equipment.Library, g *network.Graph) (*network.Fiber, error) {
	specs, err := lib.FiberType(link.Fiber.Type)
	if err != nil {
		return nil, fmt.Errorf("link %q: %w", link.LinkID, err)
	}

	var loc *network.Location
	src, srcOK := g.Element(link.Source.SourceNode)
	dst, dstOK := g.Element(link.Destination.DestNode)
	if srcOK && dstOK && src.Location() != nil && dst.Location() != nil {
		mid := network.Midpoint(*src.Location(), *dst.Location())
		loc = &mid
	}

	params := network.FiberParams{
		LengthM:    link.Fiber.Length.Float64() * 1e3,
		LossCoef:   schema.FloatOrDefault(link.Fiber.LossPerKM, 0.2),
		AttIn:      link.Fiber.AttenuationIn.Float64(),
		ConIn:      link.Fiber.ConnAttIn.Float64(),
		ConOut:     link.Fiber.ConnAttOut.Float64(),
		Dispersion: specs.Dispersion,
		Gamma:      specs.Gamma,
		PMDCoef:    specs.PMDCoef,
	}
	if specs.DispersionSlope != nil {
		v := *specs.DispersionSlope
		params.DispersionSlope = &v
	}
	return network.NewFiber(link.LinkID, link.Fiber.Type, loc, params), nil
}

// nodeLocation converts optional geolocation metadata into a Location.
func nodeLocation(node *schema.NetworkNode) *network.Location {
	gl := node.GeoLocation
	if gl == nil || gl.X == nil || gl.Y == nil {
		return nil
	}
	return &network.Location{
		Longitude: gl.X.Float64(),
		Latitude:  gl.Y.Float64(),
	}
}
