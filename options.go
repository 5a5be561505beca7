package jtval

import (
	"log/slog"

	"github.com/reoring/jtval/internal/logging"
)

type options struct {
	engine        Engine
	compile       CompileOptions
	raiseOnError  bool
	applyDefaults bool
	logger        *slog.Logger
	observer      Observer
}

// Option configures Compile and the top-level validation functions.
type Option func(*options)

func buildOptions(opts []Option) options {
	o := options{
		applyDefaults: true,
		logger:        logging.NewNop(),
		observer:      nopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.engine == nil {
		o.engine = DefaultEngine()
	}
	return o
}

// WithRaiseOnError stops at the first invalid item and returns it as a
// *ValidationError instead of collecting it.
func WithRaiseOnError() Option {
	return func(o *options) { o.raiseOnError = true }
}

// WithEngine selects the engine for this call only.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithDraft sets the dialect assumed for schemas without $schema.
func WithDraft(d Draft) Option {
	return func(o *options) { o.compile.Draft = d }
}

// WithAssertFormat makes "format" an assertion. By default it only annotates.
func WithAssertFormat() Option {
	return func(o *options) { o.compile.AssertFormat = true }
}

// WithoutDefaults returns valid items as canonical copies without inserting
// schema defaults.
func WithoutDefaults() Option {
	return func(o *options) { o.applyDefaults = false }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an Observer, e.g. a metrics.Collector.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
