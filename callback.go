package hub

import (
	"context"
)

// Func is the function invoked when a channel is triggered. args are the
// extra arguments passed to Trigger, forwarded as is.
//
// Returning nil continues delivery. Returning an error wrapping ErrStop
// cancels propagation. Any other error aborts delivery and is returned to the
// caller of Trigger.
type Func func(ctx context.Context, args ...any) error

// Callback is a registered Func. Its pointer is the identity used when
// unbinding: two Callbacks wrapping the same Func are different subscribers.
type Callback struct {
	id string
	fn Func
}

// NewCallback wraps fn into a new Callback handle.
// Returns nil if fn is nil.
func NewCallback(fn Func) *Callback {
	if fn == nil {
		return nil
	}
	return &Callback{id: NewID(), fn: fn}
}

// ID returns the callback ID
func (c *Callback) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Call invokes the wrapped Func. A nil Callback is a no-op.
func (c *Callback) Call(ctx context.Context, args ...any) error {
	if c == nil || c.fn == nil {
		return nil
	}
	return c.fn(ctx, args...)
}

func (c *Callback) String() string {
	return "callback(" + c.ID() + ")"
}
