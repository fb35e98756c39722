package printer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// hostInfoCmd elicits the single-line host identification response.
var hostInfoCmd = []byte("~HI")

const hostInfoFrames = 1

// Info is the parsed ~HI response: model, firmware, resolution, and
// installed memory.
type Info struct {
	Model    string `json:"model"`    // e.g. "ZTC ZD421-300dpi ZPL"
	Firmware string `json:"firmware"` // e.g. "V85.20.19"
	DPI      uint32 `json:"dpi"`
	MemoryKB uint32 `json:"memory_kb"`
}

// parseInfo decodes the single ~HI frame, comma-separated as
// model,firmware,dpi,memory. Trailing fields beyond the fourth are
// ignored.
func parseInfo(frames [][]byte) (Info, error) {
	if len(frames) != hostInfoFrames {
		return Info{}, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HI requires %d frame, got %d", hostInfoFrames, len(frames))}
	}
	if !utf8.Valid(frames[0]) {
		return Info{}, &Error{Kind: KindIO, Msg: "~HI: invalid UTF-8"}
	}

	fields := strings.Split(string(frames[0]), ",")
	if len(fields) < 4 {
		return Info{}, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HI: expected at least 4 fields, got %d", len(fields))}
	}

	dpiRaw := strings.TrimSpace(fields[2])
	dpi, err := strconv.ParseUint(dpiRaw, 10, 32)
	if err != nil {
		return Info{}, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HI: cannot parse DPI (%q)", dpiRaw)}
	}

	mem, err := parseMemoryKB(fields[3])
	if err != nil {
		return Info{}, err
	}

	return Info{
		Model:    strings.TrimSpace(fields[0]),
		Firmware: strings.TrimSpace(fields[1]),
		DPI:      uint32(dpi),
		MemoryKB: mem,
	}, nil
}

// parseMemoryKB reads the leading digits of a memory field. Most firmware
// reports a plain integer ("131072"), some models append a unit suffix
// ("8176KB").
func parseMemoryKB(raw string) (uint32, error) {
	trimmed := strings.TrimSpace(raw)
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HI: cannot parse memory_kb (%q)", trimmed)}
	}
	n, err := strconv.ParseUint(trimmed[:digits], 10, 32)
	if err != nil {
		return 0, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HI: cannot parse memory_kb (%q)", trimmed)}
	}
	return uint32(n), nil
}
