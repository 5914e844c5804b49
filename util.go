package hub

import (
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	spanKeyHubName     = "hub.name"
	spanKeyEventName   = "event.name"
	spanKeyCallbacks   = "hub.callbacks"
	spanKeyInstanceID  = "instance.id"
	spanKeyCallbackID  = "callback.id"
	spanKeyDispatchRes = "hub.result"
)

var counter uint64

// NewID generates a new unique ID
func NewID() string {
	u, err := uuid.NewRandom()
	if err == nil {
		return u.String()
	}
	return strconv.FormatUint(atomic.AddUint64(&counter, 1), 10)
}

// Logger returns a logger with the given component name
func Logger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// splitNames parses a space separated list of channel names.
// Any run of whitespace separates names; empty input yields no names.
func splitNames(names string) []string {
	return strings.Fields(names)
}
