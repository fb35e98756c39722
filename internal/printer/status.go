package printer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// hostStatusCmd elicits the three-line host status response.
var hostStatusCmd = []byte("~HS")

const hostStatusFrames = 3

// PrintMode is the media handling mode reported in the second ~HS line.
type PrintMode uint8

const (
	ModeTearOff       PrintMode = iota // labels advance past the tear bar
	ModePeelOff                        // labels peel from the backing
	ModeRewind                         // labels rewind onto a take-up spool
	ModeApplicator                     // labels go to an applicator device
	ModeCutter                         // labels are cut after printing
	ModeDelayedCutter                  // the cut happens when the next label starts
	ModeLinerless                      // continuous media without a liner
)

// String returns the string representation of PrintMode.
func (m PrintMode) String() string {
	switch m {
	case ModeTearOff:
		return "tear-off"
	case ModePeelOff:
		return "peel-off"
	case ModeRewind:
		return "rewind"
	case ModeApplicator:
		return "applicator"
	case ModeCutter:
		return "cutter"
	case ModeDelayedCutter:
		return "delayed-cutter"
	case ModeLinerless:
		return "linerless"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// MarshalJSON renders the mode name, not the numeric code.
func (m PrintMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func printModeFromCode(code uint32) (PrintMode, error) {
	if code > uint32(ModeLinerless) {
		return 0, &Error{Kind: KindIO, Msg: fmt.Sprintf("unknown print mode code: %d", code)}
	}
	return PrintMode(code), nil
}

// HostStatus is the parsed ~HS response. Flag fields follow the printer
// convention: the raw field "0" is false, anything else is true.
type HostStatus struct {
	CommunicationFlag uint32 `json:"communication_flag"`
	PaperOut          bool   `json:"paper_out"`
	Paused            bool   `json:"paused"`
	LabelLengthDots   uint32 `json:"label_length_dots"`
	FormatsInBuffer   uint32 `json:"formats_in_buffer"`
	BufferFull        bool   `json:"buffer_full"`
	CommDiagMode      bool   `json:"comm_diag_mode"`
	PartialFormat     bool   `json:"partial_format"`
	Reserved1         uint32 `json:"reserved_1"`
	CorruptRAM        bool   `json:"corrupt_ram"`
	UnderTemperature  bool   `json:"under_temperature"`
	OverTemperature   bool   `json:"over_temperature"`

	FunctionSettings       uint32    `json:"function_settings"`
	HeadUp                 bool      `json:"head_up"`
	RibbonOut              bool      `json:"ribbon_out"`
	ThermalTransferMode    bool      `json:"thermal_transfer_mode"`
	PrintMode              PrintMode `json:"print_mode"`
	PrintWidthMode         uint32    `json:"print_width_mode"`
	LabelWaiting           bool      `json:"label_waiting"`
	LabelsRemaining        uint32    `json:"labels_remaining"`
	FormatWhilePrinting    uint32    `json:"format_while_printing"`
	GraphicsStoredInMemory uint32    `json:"graphics_stored_in_memory"`

	Password           uint32 `json:"password"`
	StaticRAMInstalled bool   `json:"static_ram_installed"`
}

// Problems lists the error conditions the status flags report, in a
// stable order. Empty means the printer is healthy.
func (hs HostStatus) Problems() []string {
	var out []string
	if hs.PaperOut {
		out = append(out, "paper out")
	}
	if hs.RibbonOut {
		out = append(out, "ribbon out")
	}
	if hs.HeadUp {
		out = append(out, "head open")
	}
	if hs.OverTemperature {
		out = append(out, "over temperature")
	}
	if hs.UnderTemperature {
		out = append(out, "under temperature")
	}
	if hs.CorruptRAM {
		out = append(out, "corrupt RAM")
	}
	if hs.BufferFull {
		out = append(out, "buffer full")
	}
	return out
}

// statusLine reads indexed fields out of one ~HS response line, keeping
// the first failure.
type statusLine struct {
	fields []string
	line   int
	err    error
}

func newStatusLine(frame []byte, line int) *statusLine {
	l := &statusLine{line: line}
	if !utf8.Valid(frame) {
		l.err = &Error{Kind: KindIO, Msg: fmt.Sprintf("~HS line %d: invalid UTF-8", line)}
		return l
	}
	l.fields = strings.Split(string(frame), ",")
	return l
}

func (l *statusLine) field(idx int) string {
	if l.err != nil {
		return ""
	}
	if idx >= len(l.fields) {
		l.err = &Error{Kind: KindIO, Msg: fmt.Sprintf("~HS line %d: expected field at index %d, only got %d fields", l.line, idx, len(l.fields))}
		return ""
	}
	return strings.TrimSpace(l.fields[idx])
}

// num parses field idx as an unsigned integer.
func (l *statusLine) num(idx int) uint32 {
	raw := l.field(idx)
	if l.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		l.err = &Error{Kind: KindIO, Msg: fmt.Sprintf("~HS line %d: cannot parse field %d (%q)", l.line, idx, raw)}
		return 0
	}
	return uint32(n)
}

// flag parses field idx as a boolean.
func (l *statusLine) flag(idx int) bool {
	raw := l.field(idx)
	if l.err != nil {
		return false
	}
	return raw != "0"
}

// parseHostStatus decodes the three ~HS lines into a HostStatus.
func parseHostStatus(frames [][]byte) (HostStatus, error) {
	if len(frames) != hostStatusFrames {
		return HostStatus{}, &Error{Kind: KindIO, Msg: fmt.Sprintf("~HS requires %d frames, got %d", hostStatusFrames, len(frames))}
	}

	l1 := newStatusLine(frames[0], 1)
	l2 := newStatusLine(frames[1], 2)
	l3 := newStatusLine(frames[2], 3)

	hs := HostStatus{
		CommunicationFlag: l1.num(0),
		PaperOut:          l1.flag(1),
		Paused:            l1.flag(2),
		LabelLengthDots:   l1.num(3),
		FormatsInBuffer:   l1.num(4),
		BufferFull:        l1.flag(5),
		CommDiagMode:      l1.flag(6),
		PartialFormat:     l1.flag(7),
		Reserved1:         l1.num(8),
		CorruptRAM:        l1.flag(9),
		UnderTemperature:  l1.flag(10),
		OverTemperature:   l1.flag(11),

		FunctionSettings:       l2.num(0),
		HeadUp:                 l2.flag(1),
		RibbonOut:              l2.flag(2),
		ThermalTransferMode:    l2.flag(3),
		PrintWidthMode:         l2.num(5),
		LabelWaiting:           l2.flag(6),
		LabelsRemaining:        l2.num(7),
		FormatWhilePrinting:    l2.num(8),
		GraphicsStoredInMemory: l2.num(9),

		Password:           l3.num(0),
		StaticRAMInstalled: l3.flag(1),
	}
	modeCode := l2.num(4)

	for _, err := range []error{l1.err, l2.err, l3.err} {
		if err != nil {
			return HostStatus{}, err
		}
	}

	mode, err := printModeFromCode(modeCode)
	if err != nil {
		return HostStatus{}, err
	}
	hs.PrintMode = mode
	return hs, nil
}
