// Package tables defines the command table: what each ZPL command accepts
// and how it behaves structurally. A Table is built once, either from the
// built-in defaults or from defaults merged with an external JSON schema,
// and is read-only afterwards, so one Table can back any number of
// concurrent validation passes.
package tables

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// Plane classifies where a command belongs relative to label boundaries.
type Plane uint8

const (
	// PlaneNone places no restriction on where the command may appear.
	PlaneNone Plane = iota
	// PlaneFormat commands describe label content and belong inside ^XA/^XZ.
	PlaneFormat
	// PlaneConfig commands set printer parameters and are valid anywhere.
	PlaneConfig
	// PlaneHost commands query the printer and belong outside labels.
	PlaneHost
	// PlaneDevice commands control the device and belong outside labels.
	PlaneDevice
)

func (p Plane) String() string {
	switch p {
	case PlaneFormat:
		return "format"
	case PlaneConfig:
		return "config"
	case PlaneHost:
		return "host"
	case PlaneDevice:
		return "device"
	default:
		return "none"
	}
}

// ArgType is the typed interpretation of one positional parameter.
type ArgType uint8

const (
	ArgAny ArgType = iota
	ArgInt
	ArgNum
	ArgEnum
)

func (t ArgType) String() string {
	switch t {
	case ArgInt:
		return "int"
	case ArgNum:
		return "num"
	case ArgEnum:
		return "enum"
	default:
		return "any"
	}
}

// Arg describes one positional parameter. Min == Max == 0 means the numeric
// value is unconstrained; Enum is consulted only for ArgEnum.
type Arg struct {
	Name     string
	Type     ArgType
	Required bool
	Min      float64
	Max      float64
	Enum     []string
}

// Ranged reports whether the argument carries a numeric range constraint.
func (a *Arg) Ranged() bool {
	return a.Min != 0 || a.Max != 0
}

// DataRules constrains the field data that follows a barcode command.
// Zero values mean "no constraint"; Parity is "", "even", or "odd".
// Charset uses character-class syntax: "a-z" is a range, "\\-" escapes a
// literal, and a leading or trailing "-" is literal.
type DataRules struct {
	Charset        string
	MinLength      int
	MaxLength      int
	ExactLength    int
	AllowedLengths []int
	Parity         string
}

// Entry is everything the validator and formatter need to know about one
// command. Entries are shared read-only; callers must not modify them.
type Entry struct {
	Code        string // canonical code including leader, e.g. "^FO"
	Description string
	Plane       Plane
	Args        []Arg
	Requires    []string // commands that must appear in the same label
	OpensField  bool
	ClosesField bool
	FieldData   bool
	FreeText    bool // parameter is prose, skip argument checks
	Data        *DataRules
}

// MaxArgs returns how many positional parameters the command accepts.
func (e *Entry) MaxArgs() int {
	return len(e.Args)
}

// Table is an immutable code → entry mapping.
type Table struct {
	entries map[string]*Entry
	digest  [32]byte
}

// Builtin returns a table with only the built-in command set.
func Builtin() *Table {
	return newTable(builtinEntries())
}

func newTable(entries []Entry) *Table {
	m := make(map[string]*Entry, len(entries))
	for i := range entries {
		e := entries[i]
		m[e.Code] = &e
	}
	return &Table{entries: m, digest: computeDigest(m)}
}

// Lookup finds the entry for a canonical command code such as "^FO".
func (t *Table) Lookup(code string) (*Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Codes returns all known command codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Digest identifies the table contents, for cache keys. Two tables with the
// same entries produce the same digest regardless of construction order.
func (t *Table) Digest() [32]byte {
	return t.digest
}

func computeDigest(entries map[string]*Entry) [32]byte {
	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	h := sha256.New()
	for _, code := range codes {
		e := entries[code]
		fmt.Fprintf(h, "%s|%s|%v%v%v%v|%v\n", e.Code, e.Plane, e.OpensField, e.ClosesField, e.FieldData, e.FreeText, e.Requires)
		for i := range e.Args {
			a := &e.Args[i]
			fmt.Fprintf(h, "  %s:%s req=%v range=[%g,%g] enum=%v\n", a.Name, a.Type, a.Required, a.Min, a.Max, a.Enum)
		}
		if e.Data != nil {
			fmt.Fprintf(h, "  data=%+v\n", *e.Data)
		}
	}
	var digest [32]byte
	h.Sum(digest[:0])
	return digest
}
