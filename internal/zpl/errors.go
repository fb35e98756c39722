package zpl

import "fmt"

// DecodeError reports source bytes that are not valid UTF-8. The parser is
// total over well-encoded input; undecodable bytes are the one condition it
// refuses outright instead of recovering from.
type DecodeError struct {
	Path   string
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("source is not valid UTF-8 (first invalid byte at offset %d)", e.Offset)
	}
	return fmt.Sprintf("%s: source is not valid UTF-8 (first invalid byte at offset %d)", e.Path, e.Offset)
}
