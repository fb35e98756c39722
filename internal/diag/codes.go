package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value; nothing should emit it on purpose.
	UnknownCode Code = 0
)

// Lint codes carry the numeric part of their rendered "ZPLnnnn" ID directly.
// The numbering groups codes by family: 11xx argument shape, 12xx value
// ranges, 15xx required arguments, 21xx command relations, 22xx field
// structure, 23xx label semantics, 24xx barcode data.
const (
	LintArity           Code = 1101
	LintInvalidEnum     Code = 1103
	LintEmptyFieldData  Code = 1104
	LintExpectedInteger Code = 1107
	LintExpectedNumber  Code = 1108

	LintOutOfRange Code = 1201

	LintRequiredMissing Code = 1501
	LintRequiredEmpty   Code = 1502

	LintRequiredCommand Code = 2101

	LintFieldDataWithoutOrigin Code = 2201
	LintEmptyLabel             Code = 2202
	LintFieldNotClosed         Code = 2203
	LintOrphanedFieldSeparator Code = 2204
	LintCommandScope           Code = 2205

	LintDuplicateFieldNumber Code = 2301
	LintPositionOutOfBounds  Code = 2302
	LintInvalidHexEscape     Code = 2304

	LintBarcodeInvalidChar Code = 2401
	LintBarcodeDataLength  Code = 2402
)

// Parser codes live above parserBase and render as "ZPL.PARSER.nnnn".
const (
	parserBase Code = 10000

	ParseNoLabels             Code = parserBase + 1
	ParseInvalidCommand       Code = parserBase + 1001
	ParseUnknownCommand       Code = parserBase + 1002
	ParseMissingTerminator    Code = parserBase + 1102
	ParseMissingFieldSep      Code = parserBase + 1202
	ParseFieldDataInterrupted Code = parserBase + 1203
	ParseStrayContent         Code = parserBase + 1301
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown diagnostic",

	LintArity:                  "Too many arguments",
	LintInvalidEnum:            "Invalid enum value",
	LintEmptyFieldData:         "Empty field data",
	LintExpectedInteger:        "Expected integer",
	LintExpectedNumber:         "Expected number",
	LintOutOfRange:             "Value out of range",
	LintRequiredMissing:        "Required argument missing",
	LintRequiredEmpty:          "Required argument empty",
	LintRequiredCommand:        "Required companion command missing",
	LintFieldDataWithoutOrigin: "Field data without origin",
	LintEmptyLabel:             "Empty label",
	LintFieldNotClosed:         "Field not closed",
	LintOrphanedFieldSeparator: "Orphaned field separator",
	LintCommandScope:           "Command in wrong scope",
	LintDuplicateFieldNumber:   "Duplicate field number",
	LintPositionOutOfBounds:    "Position out of bounds",
	LintInvalidHexEscape:       "Invalid hex escape",
	LintBarcodeInvalidChar:     "Barcode data has invalid characters",
	LintBarcodeDataLength:      "Barcode data length mismatch",

	ParseNoLabels:             "No labels detected",
	ParseInvalidCommand:       "Invalid command",
	ParseUnknownCommand:       "Unknown command",
	ParseMissingTerminator:    "Missing label terminator",
	ParseMissingFieldSep:      "Missing field separator",
	ParseFieldDataInterrupted: "Field data interrupted",
	ParseStrayContent:         "Stray content outside label",
}

// ID renders the stable string form of the code: lint findings as "ZPL1101",
// parser findings as "ZPL.PARSER.1002".
func (c Code) ID() string {
	if c >= parserBase {
		return fmt.Sprintf("ZPL.PARSER.%04d", uint16(c-parserBase))
	}
	return fmt.Sprintf("ZPL%04d", uint16(c))
}

// Title returns the short human name of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
