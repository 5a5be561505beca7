// Package metrics exports validation activity as Prometheus metrics. A
// Collector satisfies jtval.Observer:
//
//	c, err := metrics.New(prometheus.DefaultRegisterer)
//	correct, failures, err := jtval.Validate(ctx, schema, items, jtval.WithObserver(c))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jtval"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeValid = "valid"
	OutcomeFail  = "invalid"
)

// Collector counts schema compilations and checked items.
type Collector struct {
	compilations *prometheus.CounterVec
	compileTime  *prometheus.HistogramVec
	items        *prometheus.CounterVec
}

// New creates a Collector and registers it with reg. A nil reg skips
// registration.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		compilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "schema_compilations_total",
				Help:      "Schema compilations by engine and outcome.",
			},
			[]string{"engine", "outcome"},
		),
		compileTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "schema_compile_duration_seconds",
				Help:      "Time spent compiling schemas.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"engine"},
		),
		items: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "items_checked_total",
				Help:      "Items checked against a schema, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{c.compilations, c.compileTime, c.items} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// SchemaCompiled implements jtval.Observer.
func (c *Collector) SchemaCompiled(engine string, elapsed time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.compilations.WithLabelValues(engine, outcome).Inc()
	c.compileTime.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// ItemChecked implements jtval.Observer.
func (c *Collector) ItemChecked(valid bool) {
	if valid {
		c.items.WithLabelValues(OutcomeValid).Inc()
		return
	}
	c.items.WithLabelValues(OutcomeFail).Inc()
}

// Items returns the counter for one item outcome; used by tests and dashboards
// that read values directly.
func (c *Collector) Items(outcome string) prometheus.Counter {
	return c.items.WithLabelValues(outcome)
}

// Compilations returns the counter for one engine/outcome pair.
func (c *Collector) Compilations(engine, outcome string) prometheus.Counter {
	return c.compilations.WithLabelValues(engine, outcome)
}
