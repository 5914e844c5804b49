package hub

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Hub owns a table of channels and the callbacks bound to them.
//
// The zero value is ready to use with default options. A Hub must not be
// copied after first use; hosts embed a *Hub.
type Hub struct {
	mu       sync.RWMutex
	channels table
	once     sync.Once
	opts     *options
	logger   *slog.Logger
	metrics  *metrics
}

// New creates a new hub with an empty channel table
func New(opts ...Option) *Hub {
	h := &Hub{opts: newOptions(opts...)}
	h.init()
	return h
}

func (h *Hub) init() {
	h.once.Do(func() {
		if h.opts == nil {
			h.opts = newOptions()
		}
		h.logger = h.opts.logger.With("component", "hub>"+h.opts.name)
		h.metrics = newMetrics(h.opts)
	})
}

// Name returns the hub name
func (h *Hub) Name() string {
	h.init()
	return h.opts.name
}

// Logger returns the hub logger
func (h *Hub) Logger() *slog.Logger {
	h.init()
	return h.logger
}

// Sub returns a new hub with the same options and an empty channel table.
// Nothing bound on h is visible from the sub hub, and the reverse.
func (h *Hub) Sub() *Hub {
	h.init()
	s := &Hub{opts: h.opts.derive()}
	s.init()
	return s
}

// Bind appends cbs to each channel in names. names is a whitespace separated
// list. Binding the same callback twice registers it twice. Nil callbacks are
// ignored.
func (h *Hub) Bind(names string, cbs ...*Callback) *Hub {
	h.init()
	list := splitNames(names)
	cbs = compact(cbs)
	if len(list) == 0 || len(cbs) == 0 {
		return h
	}
	h.mu.Lock()
	if h.channels == nil {
		h.channels = make(table)
	}
	h.channels.add(list, cbs)
	h.mu.Unlock()
	h.logger.Debug("bound", "events", list, "callbacks", len(cbs))
	return h
}

// BindFunc binds fn to each channel in names and returns its handle for Unbind.
// Returns nil if fn is nil.
func (h *Hub) BindFunc(names string, fn Func) *Callback {
	cb := NewCallback(fn)
	if cb == nil {
		return nil
	}
	h.Bind(names, cb)
	return cb
}

// Once binds fn so that it runs at most once: before its first invocation it
// is unbound from every channel in names.
func (h *Hub) Once(names string, fn Func) *Callback {
	if fn == nil {
		return nil
	}
	cb := &Callback{id: NewID()}
	cb.fn = func(ctx context.Context, args ...any) error {
		h.Unbind(names, cb)
		return fn(ctx, args...)
	}
	h.Bind(names, cb)
	return cb
}

// Unbind removes the channels in names. If cbs are given only those callbacks
// are removed and the others keep their order. Unknown channels and callbacks
// are ignored.
func (h *Hub) Unbind(names string, cbs ...*Callback) *Hub {
	h.init()
	list := splitNames(names)
	if len(list) == 0 {
		return h
	}
	cbs = compact(cbs)
	h.mu.Lock()
	removed := h.channels.remove(list, cbs)
	h.mu.Unlock()
	if removed > 0 {
		h.logger.Debug("unbound", "events", list, "callbacks", removed)
	}
	return h
}

// UnbindAll removes every channel
func (h *Hub) UnbindAll() *Hub {
	h.init()
	h.mu.Lock()
	h.channels = nil
	h.mu.Unlock()
	return h
}

// Trigger invokes the callbacks bound to name, in registration order, with
// args. The list is copied first, so callbacks may bind and unbind freely;
// changes apply to later triggers only.
//
// A callback returning an error wrapping ErrStop ends delivery and Trigger
// returns nil. Any other error ends delivery and is returned as is. Panics are
// not recovered.
func (h *Hub) Trigger(ctx context.Context, name string, args ...any) error {
	return h.trigger(ctx, name, nil, args)
}

func (h *Hub) trigger(ctx context.Context, name string, inst *Instance, args []any) error {
	h.init()
	h.mu.RLock()
	cbs := h.channels.snapshot(name)
	h.mu.RUnlock()
	if len(cbs) == 0 {
		return nil
	}
	return h.dispatch(ctx, name, inst, cbs, args)
}

// Channels returns the sorted names of channels with at least one callback
func (h *Hub) Channels() []string {
	h.init()
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.channels))
	for name := range h.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of callbacks bound to name
func (h *Hub) Count(name string) int {
	h.init()
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[name])
}

// dispatch runs cbs without holding the lock.
func (h *Hub) dispatch(ctx context.Context, name string, inst *Instance, cbs []*Callback, args []any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs := []attribute.KeyValue{
		attribute.String(spanKeyHubName, h.opts.name),
		attribute.String(spanKeyEventName, name),
	}
	if inst != nil {
		attrs = append(attrs, attribute.String(spanKeyInstanceID, inst.ID()))
	}

	var span trace.Span
	if h.opts.tracingEnabled {
		spanAttrs := make([]attribute.KeyValue, 0, len(attrs)+1)
		spanAttrs = append(spanAttrs, attrs...)
		spanAttrs = append(spanAttrs, attribute.Int(spanKeyCallbacks, len(cbs)))
		ctx, span = otel.Tracer(h.opts.name).Start(ctx, name+".trigger",
			trace.WithAttributes(spanAttrs...),
			trace.WithSpanKind(trace.SpanKindInternal))
		defer span.End()
	}

	h.metrics.Triggered(ctx, attrs...)
	delivered := 0
	defer func() {
		h.metrics.Delivered(ctx, delivered, attrs...)
	}()

	cctx := contextWithInstance(contextWithChannel(ctx, name), inst)
	for _, cb := range cbs {
		delivered++
		err := cb.Call(cctx, args...)
		switch Classify(err) {
		case ResultContinue:
			continue
		case ResultStop:
			h.logger.Debug("propagation stopped", "event", name, "callback", cb.ID(), "reason", err)
			h.metrics.Stopped(ctx, attrs...)
			if span != nil {
				span.SetAttributes(attribute.String(spanKeyDispatchRes, ResultStop.String()),
					attribute.String(spanKeyCallbackID, cb.ID()))
			}
			return nil
		default:
			h.logger.Debug("callback failed", "event", name, "callback", cb.ID(), "error", err)
			h.metrics.Aborted(ctx, attrs...)
			if span != nil {
				span.SetAttributes(attribute.String(spanKeyDispatchRes, ResultAbort.String()),
					attribute.String(spanKeyCallbackID, cb.ID()))
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
	return nil
}
