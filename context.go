package hub

import (
	"context"
)

type contextKey int

const (
	channelContextKey contextKey = iota
	instanceContextKey
)

// ChannelFromContext returns the channel being triggered, or "" outside a callback.
func ChannelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(channelContextKey).(string)
	return s
}

// InstanceFromContext returns the instance passed to TriggerFor, or nil when the
// callback runs for a class level trigger.
func InstanceFromContext(ctx context.Context) *Instance {
	if ctx == nil {
		return nil
	}
	i, _ := ctx.Value(instanceContextKey).(*Instance)
	return i
}

func contextWithChannel(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, channelContextKey, name)
}

func contextWithInstance(ctx context.Context, inst *Instance) context.Context {
	if inst == nil {
		return ctx
	}
	return context.WithValue(ctx, instanceContextKey, inst)
}
