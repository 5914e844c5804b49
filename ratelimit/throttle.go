package ratelimit

import (
	"context"

	"github.com/rbaliyan/hub"
)

// Throttle wraps fn so that it only runs when l allows it. A skipped
// invocation returns nil and delivery continues with the next callback.
func Throttle(l Limiter, fn hub.Func) hub.Func {
	return throttle(l, fn, nil)
}

// ThrottleStop is Throttle, except that a skipped invocation cancels
// propagation of the trigger with hub.ErrStop.
func ThrottleStop(l Limiter, fn hub.Func) hub.Func {
	return throttle(l, fn, hub.ErrStop)
}

func throttle(l Limiter, fn hub.Func, skipped error) hub.Func {
	if fn == nil {
		return nil
	}
	if l == nil {
		return fn
	}
	logger := hub.Logger("hub>ratelimit")
	return func(ctx context.Context, args ...any) error {
		if !l.Allow(ctx) {
			logger.Debug("callback throttled", "event", hub.ChannelFromContext(ctx))
			return skipped
		}
		return fn(ctx, args...)
	}
}
