package trace

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
)

// StreamTracer writes events to a writer as they happen. Write errors are
// swallowed: tracing must never fail the print session it observes.
type StreamTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewStreamTracer creates a StreamTracer at the given level.
func NewStreamTracer(w io.Writer, level Level) *StreamTracer {
	return &StreamTracer{w: w, level: level}
}

// Emit writes one event line, plus a hex/ASCII dump for wire events.
func (t *StreamTracer) Emit(ev Event) {
	if !t.Enabled(ev.Level) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ts := ev.Time.Format("15:04:05.000")
	if ev.Detail != "" {
		_, _ = fmt.Fprintf(t.w, "%s %s %s: %s\n", ts, ev.Op, ev.Addr, ev.Detail)
	} else {
		_, _ = fmt.Fprintf(t.w, "%s %s %s (%d bytes)\n", ts, ev.Op, ev.Addr, len(ev.Data))
	}
	if len(ev.Data) > 0 {
		_, _ = io.WriteString(t.w, hex.Dump(ev.Data))
	}
}

// Level returns the configured verbosity.
func (t *StreamTracer) Level() Level { return t.level }

// Enabled reports whether events at the given level would be recorded.
func (t *StreamTracer) Enabled(at Level) bool {
	return at != LevelOff && at <= t.level
}
