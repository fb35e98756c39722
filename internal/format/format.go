// Package format re-serializes a parsed document as canonical ZPL text.
// The output depends only on document structure and the configured Options,
// never on incidental source whitespace, which makes formatting idempotent:
// running it again over its own output is byte-identical.
package format

import (
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// Document renders doc under the given options. Every line the formatter
// owns ends with \n; field data and free-text payloads pass through
// verbatim.
func Document(doc *zpl.Document, opt Options) []byte {
	if doc == nil {
		return nil
	}
	f := &formatter{
		opt: opt.withDefaults(),
		w:   NewWriter(256),
	}
	for _, item := range doc.Items {
		switch n := item.(type) {
		case *zpl.Label:
			f.writeLabel(n)
		case *zpl.Command:
			f.writeCommandLine(n, false, false)
		case *zpl.Comment:
			f.writeComment(n, false, false)
		case *zpl.Text:
			f.writeText(n, false, false)
		}
	}
	return f.w.Bytes()
}

type formatter struct {
	opt Options
	w   *Writer
}

// writeLabel walks one label with the nesting state machine: inLabel flips
// after ^XA and before ^XZ so the delimiters stay at column zero, and
// inField covers everything from after a field origin through the ^FS that
// closes it.
func (f *formatter) writeLabel(label *zpl.Label) {
	inLabel := false
	inField := false
	els := label.Elements

	for i := 0; i < len(els); i++ {
		switch n := els[i].(type) {
		case *zpl.Command:
			entry, _ := f.opt.Table.Lookup(n.Code())
			if f.opt.Compaction == CompactField && entry != nil && entry.OpensField {
				if end, ok := f.fieldBlockEnd(els, i); ok {
					f.writeFieldBlock(els[i:end+1], inLabel)
					i = end
					continue
				}
			}

			code := n.Code()
			if code == "^XZ" {
				inLabel = false
				inField = false
			}
			// ^FS dedents after its own line, so the closer is still
			// printed at field depth.
			f.writeCommandLine(n, inLabel, inField)
			if entry != nil && entry.ClosesField {
				inField = false
			}
			if code == "^XA" {
				inLabel = true
			}
			if entry != nil && entry.OpensField {
				inField = true
			}
		case *zpl.Comment:
			f.writeComment(n, inLabel, inField)
		case *zpl.Text:
			f.writeText(n, inLabel, inField)
		}
	}
}

// fieldBlockEnd finds the ^FS that completes the field block starting at
// the origin at index start. Only a clean block compacts: commands all the
// way down, at least one between origin and separator, no label boundary,
// and no second origin.
func (f *formatter) fieldBlockEnd(els []zpl.Element, start int) (int, bool) {
	for j := start + 1; j < len(els); j++ {
		cmd, ok := els[j].(*zpl.Command)
		if !ok {
			return 0, false
		}
		code := cmd.Code()
		if code == "^XA" || code == "^XZ" {
			return 0, false
		}
		entry, found := f.opt.Table.Lookup(code)
		if !found {
			continue
		}
		if entry.OpensField {
			return 0, false
		}
		if entry.ClosesField {
			if j == start+1 {
				return 0, false
			}
			return j, true
		}
	}
	return 0, false
}

// writeFieldBlock joins a complete field block onto a single line at the
// origin's depth, with nothing between the commands.
func (f *formatter) writeFieldBlock(els []zpl.Element, inLabel bool) {
	f.w.SetIndent(f.level(inLabel, false))
	var sb strings.Builder
	for _, el := range els {
		cmd := el.(*zpl.Command)
		entry, _ := f.opt.Table.Lookup(cmd.Code())
		sb.WriteString(renderCommand(cmd, entry))
	}
	f.w.WriteString(sb.String())
	f.w.Newline()
}

func (f *formatter) writeCommandLine(cmd *zpl.Command, inLabel, inField bool) {
	entry, _ := f.opt.Table.Lookup(cmd.Code())
	f.w.SetIndent(f.level(inLabel, inField))
	f.w.WriteString(renderCommand(cmd, entry))
	f.w.Newline()
}

func (f *formatter) writeComment(c *zpl.Comment, inLabel, inField bool) {
	text := strings.TrimRight(c.Text, " \t")
	ownLine := c.OwnLine || f.opt.CommentPlacement == CommentLine || f.w.Empty()
	if ownLine {
		f.w.SetIndent(f.level(inLabel, inField))
		f.w.WriteString(text)
		f.w.Newline()
		return
	}
	f.w.TrimNewline()
	f.w.WriteString(" ")
	f.w.WriteString(text)
	f.w.Newline()
}

func (f *formatter) writeText(t *zpl.Text, inLabel, inField bool) {
	trimmed := strings.TrimSpace(t.Content)
	if trimmed == "" {
		return
	}
	f.w.SetIndent(f.level(inLabel, inField))
	f.w.WriteString(trimmed)
	f.w.Newline()
}

func (f *formatter) level(inLabel, inField bool) int {
	switch f.opt.Indent {
	case IndentLabel:
		if inLabel {
			return 1
		}
	case IndentField:
		n := 0
		if inLabel {
			n++
		}
		if inField {
			n++
		}
		return n
	}
	return 0
}

// renderCommand reassembles one command. Known commands with positional
// parameters are normalized: slots trimmed, trailing empties dropped, comma
// joined. Field data, free text, and unknown commands pass through as
// parsed.
func renderCommand(cmd *zpl.Command, entry *tables.Entry) string {
	if cmd.Param == "" {
		return cmd.Code()
	}
	if entry == nil || entry.FieldData || entry.FreeText {
		return cmd.Code() + cmd.Param
	}
	parts := zpl.SplitParam(cmd.Param)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return cmd.Code() + strings.Join(parts, ",")
}
