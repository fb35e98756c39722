// Package trace records printer session activity for the --trace flag.
//
// The printer client emits one Event per session step (dial, write, read,
// close) and, at the wire level, one per payload transfer. Tracing is off
// by default; the Nop tracer keeps the disabled path free of work.
package trace

import (
	"fmt"
	"time"
)

// Event is one record of printer session activity.
type Event struct {
	Time   time.Time
	Level  Level  // level this event belongs to
	Op     string // "connect", "write", "read", "close"
	Addr   string // remote printer address
	Detail string // short summary, e.g. "ok in 2.1ms"
	Data   []byte // payload bytes for wire-level events, nil otherwise
}

// Tracer receives session events from the printer client.
// Implementations must be goroutine-safe; concurrent print sessions
// share one tracer.
type Tracer interface {
	// Emit records an event. Implementations filter by level themselves.
	Emit(ev Event)

	// Level returns the configured verbosity.
	Level() Level

	// Enabled reports whether events at the given level would be recorded.
	Enabled(at Level) bool
}

// Sessionf emits a connection lifecycle event. A nil or disabled tracer
// costs only this check.
func Sessionf(t Tracer, op, addr, format string, args ...any) {
	if t == nil || !t.Enabled(LevelSession) {
		return
	}
	t.Emit(Event{
		Time:   time.Now(),
		Level:  LevelSession,
		Op:     op,
		Addr:   addr,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Wire emits a payload dump event. The data slice is not copied; callers
// must not mutate it until Emit returns.
func Wire(t Tracer, op, addr string, data []byte) {
	if t == nil || !t.Enabled(LevelWire) {
		return
	}
	t.Emit(Event{
		Time:  time.Now(),
		Level: LevelWire,
		Op:    op,
		Addr:  addr,
		Data:  data,
	})
}
