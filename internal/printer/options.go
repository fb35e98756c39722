package printer

import (
	"time"

	"github.com/trevordcampbell/zpl-toolchain/internal/trace"
)

// DefaultTimeoutMS is the base timeout when the caller has no opinion.
// Scaling it yields the LAN profile: 5s connect, 30s write, 10s read.
const DefaultTimeoutMS = 5000

// Timeouts are the per-phase deadlines of one session. Connect is quick
// on a LAN, writes can push hundreds of KB of ^GF graphics, and a status
// answer can lag while the printer is mid-label.
type Timeouts struct {
	Connect time.Duration
	Write   time.Duration
	Read    time.Duration
}

// ScaledTimeouts derives the three deadlines from one base value:
// connect = base, write = 6x base, read = 2x base.
func ScaledTimeouts(base time.Duration) Timeouts {
	return Timeouts{
		Connect: base,
		Write:   6 * base,
		Read:    2 * base,
	}
}

// Options configure one session. The zero value is not usable: TimeoutMS
// must be positive.
type Options struct {
	// TimeoutMS is the base timeout in milliseconds, scaled into the
	// connect/write/read deadlines via ScaledTimeouts. Zero or negative
	// is a configuration error, reported before any socket is opened.
	TimeoutMS int64

	// BindAddr optionally pins the local IP (or IP:port) the connection
	// dials from, for multi-homed hosts.
	BindAddr string

	// KeepAlive enables TCP keepalive probes on the session socket. The
	// connection is still closed when the call returns.
	KeepAlive bool

	// Tracer observes the session. Nil means no tracing.
	Tracer trace.Tracer
}

// timeouts validates TimeoutMS and derives the session deadlines.
func (o Options) timeouts() (Timeouts, error) {
	if o.TimeoutMS <= 0 {
		return Timeouts{}, &Error{Kind: KindConfiguration, Msg: "timeout_ms must be > 0"}
	}
	return ScaledTimeouts(time.Duration(o.TimeoutMS) * time.Millisecond), nil
}
