package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
)

// Cache lookup outcomes recorded by CacheLookup.
const (
	LookupHit     = "hit"
	LookupMiss    = "miss"
	LookupError   = "error"
	LookupCorrupt = "corrupt"
)

// Collector holds the detector metrics. Every method is safe for concurrent
// use and a nil *Collector records nothing.
type Collector struct {
	builds   *prometheus.CounterVec
	degraded prometheus.Counter
	lookups  *prometheus.CounterVec
}

// Option configures a Collector.
type Option func(*options)

type options struct {
	namespace string
	labels    prometheus.Labels
}

// WithNamespace sets the metric name prefix. Defaults to "devicedetector".
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithConstLabels adds labels to every metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) { o.labels = labels }
}

// New creates a Collector and registers it with reg. A nil reg leaves the
// metrics unregistered.
func New(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	o := options{namespace: "devicedetector"}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "builds_total",
			Help:        "Detector builds by cache kind and result.",
			ConstLabels: o.labels,
		}, []string{"cache_kind", "result"}),
		degraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "cache_degraded_total",
			Help:        "Builds that continued without a cache because the configured one was unusable.",
			ConstLabels: o.labels,
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "cache_lookups_total",
			Help:        "Parse result cache lookups by outcome.",
			ConstLabels: o.labels,
		}, []string{"result"}),
	}

	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.builds, c.degraded, c.lookups} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(reg prometheus.Registerer, opts ...Option) *Collector {
	c, err := New(reg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// BuildDone records one finished build.
func (c *Collector) BuildDone(kind cache.Kind, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.builds.WithLabelValues(kind.String(), result).Inc()
}

// CacheDegraded records a build that dropped its configured cache.
func (c *Collector) CacheDegraded() {
	if c == nil {
		return
	}
	c.degraded.Inc()
}

// CacheLookup records a parse cache lookup outcome, one of the Lookup
// constants.
func (c *Collector) CacheLookup(result string) {
	if c == nil {
		return
	}
	c.lookups.WithLabelValues(result).Inc()
}
