package hub

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the dispatch counters of a hub. A nil *metrics records nothing.
type metrics struct {
	triggered metric.Int64Counter
	delivered metric.Int64Counter
	stopped   metric.Int64Counter
	aborted   metric.Int64Counter
}

func newMetrics(o *options) *metrics {
	if !o.metricsEnabled {
		return nil
	}
	meter := otel.Meter("github.com/rbaliyan/hub")
	triggered, _ := meter.Int64Counter("hub.triggered",
		metric.WithDescription("Number of triggers that reached at least one callback"),
		metric.WithUnit("{trigger}"))
	delivered, _ := meter.Int64Counter("hub.delivered",
		metric.WithDescription("Number of callback invocations"),
		metric.WithUnit("{call}"))
	stopped, _ := meter.Int64Counter("hub.stopped",
		metric.WithDescription("Number of triggers cancelled by a callback"),
		metric.WithUnit("{trigger}"))
	aborted, _ := meter.Int64Counter("hub.aborted",
		metric.WithDescription("Number of triggers aborted by a callback error"),
		metric.WithUnit("{trigger}"))
	return &metrics{
		triggered: triggered,
		delivered: delivered,
		stopped:   stopped,
		aborted:   aborted,
	}
}

func (m *metrics) record(ctx context.Context, c metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if m == nil || c == nil || n == 0 {
		return
	}
	c.Add(ctx, n, metric.WithAttributes(attrs...))
}

// Triggered a trigger found callbacks to run
func (m *metrics) Triggered(ctx context.Context, attrs ...attribute.KeyValue) {
	if m != nil {
		m.record(ctx, m.triggered, 1, attrs...)
	}
}

// Delivered n callbacks were invoked
func (m *metrics) Delivered(ctx context.Context, n int, attrs ...attribute.KeyValue) {
	if m != nil {
		m.record(ctx, m.delivered, int64(n), attrs...)
	}
}

// Stopped a callback cancelled propagation
func (m *metrics) Stopped(ctx context.Context, attrs ...attribute.KeyValue) {
	if m != nil {
		m.record(ctx, m.stopped, 1, attrs...)
	}
}

// Aborted a callback returned an error
func (m *metrics) Aborted(ctx context.Context, attrs ...attribute.KeyValue) {
	if m != nil {
		m.record(ctx, m.aborted, 1, attrs...)
	}
}
