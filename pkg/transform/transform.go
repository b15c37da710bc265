// Package transform converts between the document representation and the
// in-memory model: Load turns a validated document into the equipment
// library and the element graph, Store serializes them back out. Both
// directions run the schema validator; Store re-validates its own output
// so a malformed library can never produce a document a later Load would
// reject.
package transform

import (
	"time"

	"github.com/lumennet/photonic/pkg/equipment"
	"github.com/lumennet/photonic/pkg/logging"
	"github.com/lumennet/photonic/pkg/network"
	"github.com/lumennet/photonic/pkg/schema"
)

// Load builds the equipment library and the element graph from a document.
// The document is validated and default-filled first; a document without
// the simulation section cannot be loaded.
func Load(doc *schema.Document, opts ...Option) (*equipment.Library, *network.Graph, error) {
	o := newOptions(opts)
	start := time.Now()

	lib, g, err := o.load(doc)
	if o.metrics != nil {
		o.metrics.RecordTransform("load", statusOf(err), time.Since(start))
	}
	return lib, g, err
}

// Store serializes the equipment library and an optional element graph
// into a document. A nil graph emits the equipment and simulation sections
// only.
func Store(lib *equipment.Library, g *network.Graph, opts ...Option) (*schema.Document, error) {
	o := newOptions(opts)
	start := time.Now()

	doc, err := o.store(lib, g)
	if o.metrics != nil {
		o.metrics.RecordTransform("store", statusOf(err), time.Since(start))
	}
	return doc, err
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (o *options) load(doc *schema.Document) (*equipment.Library, *network.Graph, error) {
	if err := o.validator.Validate(doc); err != nil {
		if o.metrics != nil {
			o.metrics.ValidationFailures.Inc()
		}
		return nil, nil, err
	}
	if err := o.validator.FillDefaults(doc); err != nil {
		return nil, nil, err
	}
	if doc.Simulation == nil {
		return nil, nil, &ConfigError{Section: simulationSection}
	}

	lib, err := loadEquipment(doc, o.log)
	if err != nil {
		return nil, nil, err
	}
	g, err := o.loadNetwork(doc, lib)
	if err != nil {
		return nil, nil, err
	}

	o.setEquipmentCount("amplifier", len(lib.Amplifiers))
	o.setEquipmentCount("fiber", len(lib.Fibers))
	o.setEquipmentCount("raman_fiber", len(lib.RamanFibers))
	o.setEquipmentCount("roadm", len(lib.Roadms))
	o.setEquipmentCount("transceiver", len(lib.Transceivers))

	o.log.Info("document loaded",
		logging.Int("amplifier_types", len(lib.Amplifiers)),
		logging.Int("fiber_types", len(lib.Fibers)),
		logging.Int("elements", g.NumElements()),
		logging.Int("edges", g.NumEdges()))
	return lib, g, nil
}

func (o *options) store(lib *equipment.Library, g *network.Graph) (*schema.Document, error) {
	if lib == nil || lib.Amplifiers == nil || lib.Fibers == nil || lib.RamanFibers == nil ||
		lib.Roadms == nil || lib.Transceivers == nil {
		return nil, &ConfigError{Section: "equipment library"}
	}

	doc, err := o.buildDocument(lib, g)
	if err != nil {
		return nil, err
	}

	if err := o.validator.Validate(doc); err != nil {
		if o.metrics != nil {
			o.metrics.ValidationFailures.Inc()
		}
		return nil, err
	}

	o.log.Info("document stored",
		logging.Int("amplifier_types", len(doc.Amplifiers)),
		logging.Int("fiber_types", len(doc.Fibers)))
	return doc, nil
}
