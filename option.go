package hub

import (
	"log/slog"
)

// DefaultHubName is used when no name is given with WithName
var DefaultHubName = "hub"

// options holds configuration for a hub (unexported)
type options struct {
	name           string
	logger         *slog.Logger
	tracingEnabled bool
	metricsEnabled bool
}

// Option option function for hub configuration
type Option func(*options)

// WithName sets the hub name used for logs, spans and metrics
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets a custom logger for the hub
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracing enables/disables a trace span per trigger
func WithTracing(enabled bool) Option {
	return func(o *options) {
		o.tracingEnabled = enabled
	}
}

// WithMetrics enables/disables dispatch counters
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metricsEnabled = enabled
	}
}

// newOptions creates options with defaults and applies provided options
func newOptions(opts ...Option) *options {
	o := &options{
		name:           DefaultHubName,
		logger:         slog.Default(),
		tracingEnabled: true,
		metricsEnabled: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// derive returns a copy used by sub hubs
func (o *options) derive() *options {
	c := *o
	c.name = o.name + ".sub"
	return &c
}
