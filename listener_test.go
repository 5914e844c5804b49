package hub

import (
	"context"
	"testing"
)

func TestListener(t *testing.T) {
	ctx := context.Background()
	noop := func(context.Context, ...any) error { return nil }

	t.Run("listen to binds on the target hub", func(t *testing.T) {
		var l Listener
		h := testHub()
		calls := 0

		l.ListenTo(h, "changed", func(context.Context, ...any) error {
			calls++
			return nil
		})
		h.Trigger(ctx, "changed")

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
		if l.Listening() != 1 {
			t.Errorf("expected 1 binding, got %d", l.Listening())
		}
	})

	t.Run("stop listening to everything", func(t *testing.T) {
		var l Listener
		h1, h2 := testHub(), testHub()
		other := NewSpy(nil)
		h1.Bind("a", other.Callback())

		l.ListenTo(h1, "a b", noop)
		l.ListenTo(h2, "c", noop)
		l.StopListening(nil, "")

		if h1.Count("a") != 1 || h1.Count("b") != 0 || h2.Count("c") != 0 {
			t.Errorf("unexpected counts a=%d b=%d c=%d", h1.Count("a"), h1.Count("b"), h2.Count("c"))
		}
		if l.Listening() != 0 {
			t.Errorf("expected no bindings, got %d", l.Listening())
		}
		h1.Trigger(ctx, "a")
		if other.Count() != 1 {
			t.Error("expected foreign callback to survive")
		}
	})

	t.Run("stop listening to one hub", func(t *testing.T) {
		var l Listener
		h1, h2 := testHub(), testHub()

		l.ListenTo(h1, "a", noop)
		l.ListenTo(h2, "a", noop)
		l.StopListening(h1, "")

		if h1.Count("a") != 0 || h2.Count("a") != 1 {
			t.Errorf("unexpected counts h1=%d h2=%d", h1.Count("a"), h2.Count("a"))
		}
		if l.Listening() != 1 {
			t.Errorf("expected 1 binding, got %d", l.Listening())
		}
	})

	t.Run("stop listening to some channels", func(t *testing.T) {
		var l Listener
		h := testHub()

		l.ListenTo(h, "a b c", noop)
		l.StopListening(h, "a c")

		if h.Count("a") != 0 || h.Count("b") != 1 || h.Count("c") != 0 {
			t.Errorf("unexpected counts a=%d b=%d c=%d", h.Count("a"), h.Count("b"), h.Count("c"))
		}
		if l.Listening() != 1 {
			t.Errorf("expected 1 binding, got %d", l.Listening())
		}

		l.StopListening(h, "b")
		if l.Listening() != 0 || len(h.Channels()) != 0 {
			t.Error("expected everything unbound")
		}
	})

	t.Run("stop listening to one callback", func(t *testing.T) {
		var l Listener
		h := testHub()

		first := l.ListenTo(h, "a", noop)
		l.ListenTo(h, "a", noop)
		l.StopListening(h, "a", first)

		if h.Count("a") != 1 {
			t.Errorf("expected 1 callback, got %d", h.Count("a"))
		}
		if l.Listening() != 1 {
			t.Errorf("expected 1 binding, got %d", l.Listening())
		}
	})

	t.Run("listen to once", func(t *testing.T) {
		var l Listener
		h := testHub()
		calls := 0

		l.ListenToOnce(h, "a b", func(context.Context, ...any) error {
			calls++
			return nil
		})
		if l.Listening() != 1 {
			t.Fatalf("expected 1 binding, got %d", l.Listening())
		}
		h.Trigger(ctx, "b")
		h.Trigger(ctx, "a")

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
		if l.Listening() != 0 {
			t.Errorf("expected binding to be forgotten, got %d", l.Listening())
		}
	})

	t.Run("invalid arguments are ignored", func(t *testing.T) {
		var l Listener
		h := testHub()

		if l.ListenTo(nil, "a", noop) != nil {
			t.Error("expected nil for nil hub")
		}
		if l.ListenTo(h, " ", noop) != nil {
			t.Error("expected nil for empty names")
		}
		if l.ListenTo(h, "a", nil) != nil {
			t.Error("expected nil for nil func")
		}
		if l.ListenToOnce(h, "a", nil) != nil {
			t.Error("expected nil for nil func")
		}
		if l.ListenToOnce(h, "", noop) != nil {
			t.Error("expected nil for empty names")
		}
		if l.Listening() != 0 || len(h.Channels()) != 0 {
			t.Error("expected nothing recorded")
		}
	})
}
