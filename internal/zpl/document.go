package zpl

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// Node is a document-level item: a *Label or any Element that occurs outside
// a label (stray commands, comments, raw text between labels).
type Node interface {
	node()
}

// Element is a label-level item: a *Command, *Comment, or *Text.
// Every Element is also a valid document-level Node.
type Element interface {
	Node
	element()
}

// Document is the result of one parse call. Items preserves source order:
// labels and out-of-label content interleave exactly as they appeared.
// The caller owns the Document; nothing in it references shared state.
type Document struct {
	File  source.FileID
	Items []Node
}

// Labels returns the document's labels in source order.
func (d *Document) Labels() []*Label {
	var labels []*Label
	for _, item := range d.Items {
		if l, ok := item.(*Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Label is one ^XA..^XZ block. Elements includes the opening ^XA and, when
// Complete is true, the closing ^XZ. A label cut off by end of input keeps
// everything parsed so far and reports Complete == false.
type Label struct {
	Elements []Element
	Complete bool
	Span     source.Span
}

func (*Label) node() {}

// Commands returns the label's commands in source order, including the
// ^XA/^XZ delimiters.
func (l *Label) Commands() []*Command {
	var cmds []*Command
	for _, el := range l.Elements {
		if c, ok := el.(*Command); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
