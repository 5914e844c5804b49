package hub

import (
	"context"
	"sync"
	"time"
)

// Spy is a helper for testing code that binds or triggers channels.
// It records every invocation for later assertions.
type Spy struct {
	mu    sync.Mutex
	calls []SpyCall
	fn    Func
	cb    *Callback
}

// SpyCall represents a single invocation of a spy
type SpyCall struct {
	Channel  string
	Instance *Instance
	Args     []any
	Time     time.Time
}

// NewSpy creates a new spy.
// If fn is nil, every invocation returns nil.
//
// Example:
//
//	spy := hub.NewSpy(nil)
//	h.Bind("saved", spy.Callback())
//	h.Trigger(ctx, "saved", 1)
//	spy.Count() // 1
func NewSpy(fn Func) *Spy {
	s := &Spy{fn: fn}
	s.cb = NewCallback(s.call)
	return s
}

func (s *Spy) call(ctx context.Context, args ...any) error {
	var recorded []any
	if len(args) > 0 {
		recorded = make([]any, len(args))
		copy(recorded, args)
	}
	s.mu.Lock()
	s.calls = append(s.calls, SpyCall{
		Channel:  ChannelFromContext(ctx),
		Instance: InstanceFromContext(ctx),
		Args:     recorded,
		Time:     time.Now(),
	})
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		return fn(ctx, args...)
	}
	return nil
}

// Callback returns the handle of the spy. It is the same handle on every
// call, so it can be passed to Unbind.
func (s *Spy) Callback() *Callback {
	return s.cb
}

// Calls returns a copy of all recorded calls
func (s *Spy) Calls() []SpyCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]SpyCall, len(s.calls))
	copy(result, s.calls)
	return result
}

// Args returns the arguments of every recorded call
func (s *Spy) Args() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([][]any, len(s.calls))
	for i, c := range s.calls {
		result[i] = c.Args
	}
	return result
}

// Count returns the number of recorded calls
func (s *Spy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Called returns true if the spy was invoked at least once
func (s *Spy) Called() bool {
	return s.Count() > 0
}

// Last returns the last recorded call, or nil if none
func (s *Spy) Last() *SpyCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.calls) == 0 {
		return nil
	}
	call := s.calls[len(s.calls)-1]
	return &call
}

// Reset clears all recorded calls
func (s *Spy) Reset() {
	s.mu.Lock()
	s.calls = nil
	s.mu.Unlock()
}
