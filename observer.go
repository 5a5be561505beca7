package jtval

import "time"

// Observer receives lifecycle events from a validation run. metrics.Collector
// implements it for Prometheus.
type Observer interface {
	SchemaCompiled(engine string, elapsed time.Duration, err error)
	ItemChecked(valid bool)
}

type nopObserver struct{}

func (nopObserver) SchemaCompiled(string, time.Duration, error) {}
func (nopObserver) ItemChecked(bool)                            {}
