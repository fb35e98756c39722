package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Query responses arrive as STX/ETX-framed payloads, with CR/LF padding
// between frames.
const (
	stx = 0x02
	etx = 0x03
)

// maxFrameSize guards against runaway reads from a misbehaving printer.
// A ~HS frame is about 100 bytes, so 1 KB is generous.
const maxFrameSize = 1024

// readFrames collects want framed payloads from r, skipping any bytes
// between frames. The caller sets the read deadline on the underlying
// connection; a deadline hit surfaces as a timeout error, an early close
// as an IO error.
func readFrames(r io.Reader, want int) ([][]byte, error) {
	frames := make([][]byte, 0, want)
	if want == 0 {
		return frames, nil
	}

	var current []byte
	inFrame := false
	buf := make([]byte, 512)

	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			switch {
			case !inFrame:
				if b == stx {
					current = current[:0]
					inFrame = true
				}
			case b == etx:
				frames = append(frames, append([]byte(nil), current...))
				inFrame = false
				if len(frames) == want {
					return frames, nil
				}
			default:
				if len(current) >= maxFrameSize {
					return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("frame too large (%d bytes, max %d)", len(current)+1, maxFrameSize)}
				}
				current = append(current, b)
			}
		}
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return nil, &Error{Kind: KindTimeout, Msg: "read timed out waiting for response", Err: err}
			}
			if errors.Is(err, io.EOF) {
				return nil, &Error{Kind: KindIO, Msg: "connection closed by printer"}
			}
			return nil, &Error{Kind: KindIO, Msg: "read failed", Err: err}
		}
	}
}
