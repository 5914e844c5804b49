package hub

import (
	"context"
	"strings"
	"sync"
)

// Listener remembers the callbacks a component bound on other hubs, so they
// can be dropped together when the component goes away.
//
// The zero value is ready to use.
type Listener struct {
	mu       sync.Mutex
	bindings []*listening
}

type listening struct {
	hub   *Hub
	names []string
	cb    *Callback
}

// ListenTo binds fn on h and records the binding
func (l *Listener) ListenTo(h *Hub, names string, fn Func) *Callback {
	if h == nil {
		return nil
	}
	list := splitNames(names)
	if len(list) == 0 {
		return nil
	}
	cb := h.BindFunc(names, fn)
	if cb == nil {
		return nil
	}
	l.record(h, list, cb)
	return cb
}

// ListenToOnce binds fn on h to run at most once. The record is dropped when
// it fires.
func (l *Listener) ListenToOnce(h *Hub, names string, fn Func) *Callback {
	if h == nil || fn == nil {
		return nil
	}
	list := splitNames(names)
	if len(list) == 0 {
		return nil
	}
	var cb *Callback
	cb = h.Once(names, func(ctx context.Context, args ...any) error {
		l.forget(cb)
		return fn(ctx, args...)
	})
	l.record(h, list, cb)
	return cb
}

// StopListening unbinds recorded callbacks.
//
// With a nil hub every recorded binding is removed. With names "" every
// binding on h is removed. Otherwise only the named channels on h are
// unbound, restricted to cbs when given. Callbacks bound on h by others are
// never touched.
func (l *Listener) StopListening(h *Hub, names string, cbs ...*Callback) {
	list := splitNames(names)
	cbs = compact(cbs)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.bindings[:0]
	for _, b := range l.bindings {
		if h != nil && b.hub != h {
			kept = append(kept, b)
			continue
		}
		if len(cbs) > 0 && !contains(cbs, b.cb) {
			kept = append(kept, b)
			continue
		}
		if len(list) == 0 {
			b.hub.Unbind(strings.Join(b.names, " "), b.cb)
			continue
		}
		var rest, drop []string
		for _, n := range b.names {
			if containsName(list, n) {
				drop = append(drop, n)
			} else {
				rest = append(rest, n)
			}
		}
		if len(drop) > 0 {
			b.hub.Unbind(strings.Join(drop, " "), b.cb)
		}
		if len(rest) > 0 {
			b.names = rest
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(l.bindings); i++ {
		l.bindings[i] = nil
	}
	l.bindings = kept
}

// Listening returns the number of recorded bindings
func (l *Listener) Listening() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bindings)
}

func (l *Listener) record(h *Hub, names []string, cb *Callback) {
	l.mu.Lock()
	l.bindings = append(l.bindings, &listening{hub: h, names: names, cb: cb})
	l.mu.Unlock()
}

func (l *Listener) forget(cb *Callback) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, b := range l.bindings {
		if b.cb == cb {
			l.bindings = append(l.bindings[:i], l.bindings[i+1:]...)
			return
		}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
