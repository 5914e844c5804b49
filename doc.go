// Package hub provides named in-process event channels with synchronous
// delivery.
//
// Callbacks are bound to one or more channels and invoked, in registration
// order and on the caller's goroutine, when a channel is triggered. There is
// no queue, no goroutine and no recovery: a trigger returns once every
// callback has returned.
//
// Basic example:
//
//	h := hub.New(hub.WithName("orders"))
//
//	cb := h.BindFunc("created updated", func(ctx context.Context, args ...any) error {
//	    fmt.Println(hub.ChannelFromContext(ctx), args)
//	    return nil
//	})
//
//	h.Trigger(ctx, "created", orderID)
//	h.Unbind("created updated", cb)
//
// Channel names:
// The names argument of Bind and Unbind is a whitespace separated list, so a
// callback can be bound to several channels at once. Trigger takes a single
// name.
//
// Callback identity:
// Go functions cannot be compared, so every subscription is a *Callback
// handle. Unbind removes entries by pointer identity. BindFunc returns the
// handle it created; NewCallback builds one to bind several times.
//
// Cancel propagation:
// A callback returning ErrStop (or Stop(reason)) ends the current trigger
// without an error. Any other error ends it too and is returned by Trigger.
//
//	h.BindFunc("save", func(ctx context.Context, args ...any) error {
//	    return hub.ErrStop // later callbacks are skipped
//	})
//
// Re-entrancy:
// Trigger dispatches over a copy of the channel list, so a callback may bind
// or unbind, including itself. The change applies to the next trigger.
//
// Sub hubs:
// Sub returns a hub with the same options and an empty table. Subscriptions
// never pass between a hub and its sub hubs.
//
// Instance scope:
// A Class is a Hub for a type of objects that also keeps one table per
// Instance. TriggerFor runs the instance callbacks first and then the class
// level ones:
//
//	users := hub.NewClass(hub.WithName("users"))
//	alice := users.NewInstance()
//
//	users.BindFor(alice, "changed", onAliceChanged)
//	users.Bind("changed", onAnyUserChanged)
//
//	users.TriggerFor(ctx, alice, "changed") // onAliceChanged, then onAnyUserChanged
//
// Hosts get the capability by embedding:
//
//	type Model struct {
//	    *hub.Instance
//	    Name string
//	}
//
// Hub Options:
//   - WithName: name used in logs, spans and metrics. Default is "hub".
//   - WithLogger: set the slog logger.
//   - WithTracing: enable/disable a span per trigger. Default is true.
//   - WithMetrics: enable/disable dispatch counters. Default is true.
package hub
