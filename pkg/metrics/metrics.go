// Package metrics exposes prometheus collectors for the document
// load/store pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the pipeline's prometheus collectors.
type Registry struct {
	registry *prometheus.Registry

	TransformsTotal      *prometheus.CounterVec
	TransformDuration    *prometheus.HistogramVec
	ValidationFailures   prometheus.Counter
	ElementsBuiltTotal   *prometheus.CounterVec
	EquipmentTypesLoaded *prometheus.GaugeVec
}

// NewRegistry creates a Registry backed by a fresh prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.TransformsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "photonic_transforms_total",
			Help: "Total number of document transforms",
		},
		[]string{"operation", "status"},
	)

	r.TransformDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photonic_transform_duration_seconds",
			Help:    "Document transform duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	r.ValidationFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "photonic_validation_failures_total",
			Help: "Total number of schema validation failures",
		},
	)

	r.ElementsBuiltTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "photonic_elements_built_total",
			Help: "Network elements built during loads, by kind",
		},
		[]string{"kind"},
	)

	r.EquipmentTypesLoaded = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photonic_equipment_types_loaded",
			Help: "Equipment types in the most recently loaded library, by kind",
		},
		[]string{"kind"},
	)

	return r
}

// Gatherer exposes the underlying registry for scraping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordTransform records one load or store operation.
func (r *Registry) RecordTransform(operation, status string, duration time.Duration) {
	r.TransformsTotal.WithLabelValues(operation, status).Inc()
	r.TransformDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordElement counts one built network element.
func (r *Registry) RecordElement(kind string) {
	r.ElementsBuiltTotal.WithLabelValues(kind).Inc()
}

// SetEquipmentCount records the size of one equipment table.
func (r *Registry) SetEquipmentCount(kind string, n int) {
	r.EquipmentTypesLoaded.WithLabelValues(kind).Set(float64(n))
}
