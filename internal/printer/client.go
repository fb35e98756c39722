// Package printer talks raw ZPL to network printers over TCP port 9100.
//
// Each exported call runs one self-contained session: resolve, dial,
// transfer, close. Failures are classified into four disjoint kinds
// (configuration, connect, timeout, io) so callers can map them to exit
// codes without string matching.
package printer

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/trevordcampbell/zpl-toolchain/internal/trace"
)

// Result reports a completed transmit.
type Result struct {
	BytesSent int `json:"bytes_sent"`
}

// keepAliveInterval is the probe interval printers tolerate well.
const keepAliveInterval = 60 * time.Second

// Transmit delivers payload to the printer at addr. The connection is
// opened, written, and closed within the deadlines derived from
// opts.TimeoutMS, and released on every exit path. No response is read:
// printers accept raw ZPL without acknowledgment.
//
// There is no cancellation beyond the deadlines, so Transmit takes no
// context.
func Transmit(payload []byte, addr string, opts Options) (Result, error) {
	tm, err := opts.timeouts()
	if err != nil {
		return Result{}, err
	}
	target, err := ResolveAddr(addr)
	if err != nil {
		return Result{}, err
	}

	conn, err := dial(target, tm, opts)
	if err != nil {
		return Result{}, err
	}
	defer closeConn(conn, target, opts.Tracer)

	n, err := write(conn, target, payload, tm.Write, opts.Tracer)
	return Result{BytesSent: n}, err
}

// QueryStatus sends ~HS and parses the three-frame response.
func QueryStatus(addr string, opts Options) (HostStatus, error) {
	frames, err := query(hostStatusCmd, hostStatusFrames, addr, opts)
	if err != nil {
		return HostStatus{}, err
	}
	return parseHostStatus(frames)
}

// QueryInfo sends ~HI and parses the single-frame response.
func QueryInfo(addr string, opts Options) (Info, error) {
	frames, err := query(hostInfoCmd, hostInfoFrames, addr, opts)
	if err != nil {
		return Info{}, err
	}
	return parseInfo(frames)
}

// query runs one command/response session and returns the raw frames.
func query(cmd []byte, want int, addr string, opts Options) ([][]byte, error) {
	tm, err := opts.timeouts()
	if err != nil {
		return nil, err
	}
	target, err := ResolveAddr(addr)
	if err != nil {
		return nil, err
	}

	conn, err := dial(target, tm, opts)
	if err != nil {
		return nil, err
	}
	defer closeConn(conn, target, opts.Tracer)

	if _, err := write(conn, target, cmd, tm.Write, opts.Tracer); err != nil {
		return nil, err
	}

	if err := conn.SetReadDeadline(time.Now().Add(tm.Read)); err != nil {
		return nil, &Error{Kind: KindIO, Msg: "read failed", Err: err}
	}
	trace.Sessionf(opts.Tracer, "read", target, "waiting for %d frame(s)", want)
	frames, err := readFrames(conn, want)
	if err != nil {
		return nil, err
	}
	for _, f := range frames {
		trace.Wire(opts.Tracer, "read", target, f)
	}
	return frames, nil
}

// dial opens and configures the session socket: connect deadline, Nagle
// off, optional keepalive and local bind.
func dial(target string, tm Timeouts, opts Options) (net.Conn, error) {
	d := net.Dialer{Timeout: tm.Connect, KeepAlive: -1}
	if opts.KeepAlive {
		d.KeepAlive = keepAliveInterval
	}
	if opts.BindAddr != "" {
		laddr, err := bindTCPAddr(opts.BindAddr)
		if err != nil {
			return nil, err
		}
		d.LocalAddr = laddr
	}

	start := time.Now()
	conn, err := d.Dial("tcp", target)
	if err != nil {
		return nil, classifyDial(target, err)
	}
	trace.Sessionf(opts.Tracer, "connect", target, "ok in %s", time.Since(start).Round(time.Millisecond))

	if tc, ok := conn.(*net.TCPConn); ok {
		if err := tc.SetNoDelay(true); err != nil {
			conn.Close()
			return nil, &Error{Kind: KindConnect, Msg: fmt.Sprintf("connection failed: %s", target), Err: err}
		}
	}
	return conn, nil
}

// classifyDial sorts a dial failure into the connect/timeout kinds.
func classifyDial(target string, err error) *Error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindConnect, Msg: fmt.Sprintf("no address found for hostname: %s", dnsErr.Name), Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Msg: fmt.Sprintf("connection timed out: %s", target), Err: err}
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return &Error{Kind: KindConnect, Msg: fmt.Sprintf("connection refused: %s", target), Err: err}
	}
	return &Error{Kind: KindConnect, Msg: fmt.Sprintf("connection failed: %s", target), Err: err}
}

// write pushes data within the write deadline and reports bytes moved.
func write(conn net.Conn, target string, data []byte, timeout time.Duration, tr trace.Tracer) (int, error) {
	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return 0, &Error{Kind: KindIO, Msg: "write failed", Err: err}
	}
	n, err := conn.Write(data)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return n, &Error{Kind: KindTimeout, Msg: fmt.Sprintf("write timed out: %s", target), Err: err}
		}
		return n, &Error{Kind: KindIO, Msg: "write failed", Err: err}
	}
	trace.Sessionf(tr, "write", target, "%d bytes", n)
	trace.Wire(tr, "write", target, data)
	return n, nil
}

func closeConn(conn net.Conn, target string, tr trace.Tracer) {
	_ = conn.Close()
	trace.Sessionf(tr, "close", target, "done")
}
