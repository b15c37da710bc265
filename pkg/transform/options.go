package transform

import (
	"github.com/lumennet/photonic/pkg/logging"
	"github.com/lumennet/photonic/pkg/metrics"
	"github.com/lumennet/photonic/pkg/schema"
)

// Option customizes a load or store call.
type Option func(*options)

type options struct {
	log       logging.Logger
	metrics   *metrics.Registry
	validator *schema.Validator
}

// WithLogger attaches a structured logger to the pipeline.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records pipeline metrics into the given registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// WithValidator substitutes the schema validation collaborator.
func WithValidator(v *schema.Validator) Option {
	return func(o *options) { o.validator = v }
}

func newOptions(opts []Option) *options {
	o := &options{
		log:       logging.Nop{},
		validator: schema.NewValidator(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) recordElement(kind string) {
	if o.metrics != nil {
		o.metrics.RecordElement(kind)
	}
}

func (o *options) setEquipmentCount(kind string, n int) {
	if o.metrics != nil {
		o.metrics.SetEquipmentCount(kind, n)
	}
}
