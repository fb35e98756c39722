package trace

import "fmt"

// Level controls how much of a printer session is traced.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff Level = iota
	// LevelSession traces the connection lifecycle: dial, write, read, close.
	LevelSession
	// LevelWire additionally dumps every payload byte sent or received.
	LevelWire
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelSession:
		return "session"
	case LevelWire:
		return "wire"
	default:
		return "unknown"
	}
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return LevelOff, nil
	case "session":
		return LevelSession, nil
	case "wire":
		return LevelWire, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|session|wire)", s)
	}
}
