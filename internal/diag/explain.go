package diag

import "strings"

// explanations holds the long-form text behind each diagnostic code,
// keyed by the code constant. Rendered IDs are derived, not duplicated.
var explanations = map[Code]string{
	LintArity: "The command received more comma-separated arguments than its " +
		"signature defines. Extra arguments are ignored by most printers, which " +
		"usually means a typo or a misplaced comma is silently changing the label.",

	LintInvalidEnum: "The argument only accepts a fixed set of values (for " +
		"example N, R, I, B for field orientation). A value outside that set " +
		"falls back to a printer-dependent default, so the printed label may " +
		"not match the intent.",

	LintEmptyFieldData: "A field data command (^FD or ^FV) carries no content. " +
		"The printer renders an empty field, which is almost always a template " +
		"placeholder that was never filled in.",

	LintExpectedInteger: "The argument must be an integer (dots, counts, or " +
		"similar). Printers parse the leading digits and discard the rest, so a " +
		"non-integer value prints differently than written.",

	LintExpectedNumber: "The argument must be numeric. Non-numeric input makes " +
		"the printer fall back to a default that is rarely the intended value.",

	LintOutOfRange: "The value lies outside the range the command accepts. " +
		"Printers clamp out-of-range values to the nearest bound, which shifts " +
		"or resizes content without any error from the device.",

	LintRequiredMissing: "The command signature marks this argument as " +
		"required, but no value was supplied at its position.",

	LintRequiredEmpty: "The argument position exists but holds an empty slot " +
		"(two adjacent commas). The printer substitutes its default.",

	LintRequiredCommand: "This command depends on another command appearing in " +
		"the same label (for example barcodes depend on ^BY for module width). " +
		"Without it the printer uses device defaults that vary between models.",

	LintFieldDataWithoutOrigin: "Field content appears without a preceding " +
		"field origin (^FO or ^FT). The printer places the field at the origin " +
		"of the previous field or at 0,0, which is rarely intended.",

	LintEmptyLabel: "The label contains no commands between ^XA and ^XZ. The " +
		"printer feeds a blank label.",

	LintFieldNotClosed: "A field was opened with ^FO/^FT but the next field " +
		"started (or the label ended) before ^FS closed it. Printers tolerate " +
		"this, but field state leaks into the next field.",

	LintOrphanedFieldSeparator: "^FS appeared without an open field. It is " +
		"ignored by the printer and usually marks a deleted or misplaced field.",

	LintCommandScope: "The command is used in the wrong scope: host and device " +
		"commands belong outside ^XA/^XZ, while format commands only take " +
		"effect inside a label.",

	LintDuplicateFieldNumber: "The same ^FN field number is assigned twice in " +
		"one label. When the format is merged with ^XF or filled by a host " +
		"application, only one of the fields receives data.",

	LintPositionOutOfBounds: "The field origin lies beyond the label width " +
		"(^PW) or length (^LL) declared in the same label. The field is " +
		"clipped or wrapped depending on the printer.",

	LintInvalidHexEscape: "^FH enables hex escapes in field data, but an " +
		"escape sequence is malformed. Expected the indicator character " +
		"followed by exactly two hex digits, for example _0A.",

	LintBarcodeInvalidChar: "The field data contains characters the selected " +
		"barcode symbology cannot encode. The printer substitutes or drops " +
		"them, producing a barcode that scans differently than the text.",

	LintBarcodeDataLength: "The field data length does not match what the " +
		"barcode symbology requires (fixed length, length range, or digit " +
		"parity). Checksums or quiet zones end up wrong.",

	ParseNoLabels: "The input contains no ^XA ... ^XZ blocks. Nothing would " +
		"be printed; host or configuration commands may still be present.",

	ParseInvalidCommand: "A command leader (^ or ~) is not followed by a " +
		"valid command code. The parser skips ahead to the next leader and " +
		"continues.",

	ParseUnknownCommand: "The command code is not present in the command " +
		"table. It is kept in the document as-is; the printer may still " +
		"understand it if the table is incomplete.",

	ParseMissingTerminator: "A label started with ^XA but the input ended " +
		"before ^XZ. The label is kept and marked incomplete.",

	ParseMissingFieldSep: "Field data ran to the end of the input without " +
		"^FS. The printer would treat everything after ^FD as field content.",

	ParseFieldDataInterrupted: "A command other than ^FS cut field data " +
		"short. The data up to that point is kept; check whether ^FS was " +
		"forgotten or the content accidentally contains a leader character.",

	ParseStrayContent: "Printable text appears outside any command or label. " +
		"Printers ignore it, so it usually marks content that was meant to be " +
		"field data.",
}

// Explain returns the long-form explanation for a rendered diagnostic ID
// such as "ZPL1101" or "ZPL.PARSER.1002". Lookup is case-insensitive.
// The second return is false when the ID is not a known code.
func Explain(id string) (string, bool) {
	want := strings.ToUpper(strings.TrimSpace(id))
	for code, text := range explanations {
		if code.ID() == want {
			return text, true
		}
	}
	return "", false
}

// ExplainCode is the typed variant of Explain.
func ExplainCode(c Code) (string, bool) {
	text, ok := explanations[c]
	return text, ok
}

// Codes returns all registered diagnostic codes. Useful for listing and
// for tests that assert every emitted code has an explanation.
func Codes() []Code {
	out := make([]Code, 0, len(explanations))
	for c := range explanations {
		out = append(out, c)
	}
	return out
}
