package printer

import (
	"errors"
	"fmt"
)

// Kind classifies a print session failure. The classes are disjoint:
// configuration problems are caught before any socket is opened, connect
// failures before any byte moves, timeouts cover the connect and read
// deadlines, and IO covers everything after a successful connect that is
// not a deadline.
type Kind uint8

const (
	// KindConfiguration marks invalid input: non-positive timeout,
	// malformed address or bind address.
	KindConfiguration Kind = iota + 1
	// KindConnect marks refused, unreachable, or unresolvable targets.
	KindConnect
	// KindTimeout marks an elapsed connect, write, or read deadline.
	KindTimeout
	// KindIO marks a failed transfer or a malformed printer response.
	KindIO
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConnect:
		return "connect"
	case KindTimeout:
		return "timeout"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinel targets for errors.Is. Every error returned by this package
// matches exactly one of them.
var (
	ErrConfiguration = errors.New("printer: configuration error")
	ErrConnect       = errors.New("printer: connect error")
	ErrTimeout       = errors.New("printer: timeout")
	ErrIO            = errors.New("printer: io error")
)

// Error is a classified print session failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, nil for pure configuration errors
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind, so callers can write
// errors.Is(err, printer.ErrTimeout) without unwrapping by hand.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrConnect:
		return e.Kind == KindConnect
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrIO:
		return e.Kind == KindIO
	default:
		return false
	}
}

// KindOf returns the failure class of err, or zero when err did not come
// from this package.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
