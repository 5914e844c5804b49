package hub

import (
	"errors"
	"fmt"
)

// ErrStop stops delivery of the current trigger call when returned from a
// callback. Callbacks bound after the one returning it are not invoked and
// Trigger itself returns nil.
//
// Use errors.Is to check for it, it may be wrapped with a reason:
//
//	h.BindFunc("save", func(ctx context.Context, args ...any) error {
//	    if !valid(args) {
//	        return hub.Stop(errors.New("invalid record"))
//	    }
//	    return nil
//	})
var ErrStop = errors.New("stop: cancel propagation")

// Result is the outcome of a single callback invocation during dispatch.
type Result int

const (
	// ResultContinue - deliver to the next callback
	ResultContinue Result = iota
	// ResultStop - stop delivery, trigger succeeds
	ResultStop
	// ResultAbort - stop delivery, trigger returns the error
	ResultAbort
)

// Classify determines the dispatch result from a callback error.
// Returns ResultContinue if err is nil.
// Returns ResultStop if err wraps ErrStop.
// Returns ResultAbort for any other error.
func Classify(err error) Result {
	if err == nil {
		return ResultContinue
	}
	if errors.Is(err, ErrStop) {
		return ResultStop
	}
	return ResultAbort
}

// String returns a string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultStop:
		return "stop"
	case ResultAbort:
		return "abort"
	default:
		return fmt.Sprintf("unknown(%d)", r)
	}
}

// Stop wraps an error to indicate propagation should be cancelled.
// The original error is preserved for logging but the trigger succeeds.
func Stop(err error) error {
	if err == nil {
		return ErrStop
	}
	return fmt.Errorf("%w: %v", ErrStop, err)
}

// IsStop checks if an error cancels propagation.
func IsStop(err error) bool {
	return errors.Is(err, ErrStop)
}
