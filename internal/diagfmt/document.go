package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// ElementJSON is one node of the parse dump. Kind is "label", "command",
// "comment", or "text"; the remaining fields apply per kind.
type ElementJSON struct {
	Kind     string        `json:"kind"`
	Code     string        `json:"code,omitempty"`
	Param    string        `json:"param,omitempty"`
	Text     string        `json:"text,omitempty"`
	OwnLine  bool          `json:"own_line,omitempty"`
	Complete *bool         `json:"complete,omitempty"`
	Location LocationJSON  `json:"location"`
	Elements []ElementJSON `json:"elements,omitempty"`
}

// DocumentOutput is the root of the parse dump.
type DocumentOutput struct {
	File  string        `json:"file"`
	Items []ElementJSON `json:"items"`
}

// BuildDocumentOutput assembles the parse dump without serializing it.
func BuildDocumentOutput(doc *zpl.Document, fs *source.FileSet, opts JSONOpts) DocumentOutput {
	out := DocumentOutput{
		File:  displayPath(fs, doc.File, opts.PathMode),
		Items: make([]ElementJSON, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		out.Items = append(out.Items, elementJSON(item, fs, opts))
	}
	return out
}

// DocumentJSON writes the parsed document as one indented JSON document.
func DocumentJSON(w io.Writer, doc *zpl.Document, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocumentOutput(doc, fs, opts))
}

func elementJSON(node zpl.Node, fs *source.FileSet, opts JSONOpts) ElementJSON {
	switch n := node.(type) {
	case *zpl.Label:
		complete := n.Complete
		ej := ElementJSON{
			Kind:     "label",
			Complete: &complete,
			Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
			Elements: make([]ElementJSON, 0, len(n.Elements)),
		}
		for _, child := range n.Elements {
			ej.Elements = append(ej.Elements, elementJSON(child, fs, opts))
		}
		return ej
	case *zpl.Command:
		return ElementJSON{
			Kind:     "command",
			Code:     n.Code(),
			Param:    n.Param,
			Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
		}
	case *zpl.Comment:
		return ElementJSON{
			Kind:     "comment",
			Text:     n.Text,
			OwnLine:  n.OwnLine,
			Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
		}
	case *zpl.Text:
		return ElementJSON{
			Kind:     "text",
			Text:     n.Content,
			Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
		}
	default:
		return ElementJSON{Kind: "unknown"}
	}
}

// DocumentPretty renders the parsed document as an indented tree, one node
// per line with its line:col range.
func DocumentPretty(w io.Writer, doc *zpl.Document, fs *source.FileSet) {
	if doc == nil {
		return
	}
	fmt.Fprintf(w, "document %s\n", displayPath(fs, doc.File, PathModeAuto))
	for _, item := range doc.Items {
		writeDocNode(w, item, fs, 1)
	}
}

func writeDocNode(w io.Writer, node zpl.Node, fs *source.FileSet, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *zpl.Label:
		state := "complete"
		if !n.Complete {
			state = "incomplete"
		}
		fmt.Fprintf(w, "%slabel %s %s\n", indent, state, formatRange(fs, n.Span))
		for _, el := range n.Elements {
			writeDocNode(w, el, fs, depth+1)
		}
	case *zpl.Command:
		if n.Param == "" {
			fmt.Fprintf(w, "%scommand %s %s\n", indent, n.Code(), formatRange(fs, n.Span))
			return
		}
		fmt.Fprintf(w, "%scommand %s %q %s\n", indent, n.Code(), n.Param, formatRange(fs, n.Span))
	case *zpl.Comment:
		placement := "trailing"
		if n.OwnLine {
			placement = "own-line"
		}
		fmt.Fprintf(w, "%scomment %q %s %s\n", indent, n.Text, placement, formatRange(fs, n.Span))
	case *zpl.Text:
		fmt.Fprintf(w, "%stext %q %s\n", indent, n.Content, formatRange(fs, n.Span))
	}
}

func formatRange(fs *source.FileSet, sp source.Span) string {
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("[%d:%d-%d:%d]", start.Line, start.Col, end.Line, end.Col)
}
