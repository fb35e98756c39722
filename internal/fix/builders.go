package fix

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// InsertBefore builds a fix that inserts text at the start of span.
func InsertBefore(title string, sp source.Span, text string) diag.Fix {
	at := source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	return diag.Fix{Title: title, Edits: []diag.FixEdit{{Span: at, NewText: text}}}
}

// InsertAfter builds a fix that inserts text at the end of span.
func InsertAfter(title string, sp source.Span, text string) diag.Fix {
	at := source.Span{File: sp.File, Start: sp.End, End: sp.End}
	return diag.Fix{Title: title, Edits: []diag.FixEdit{{Span: at, NewText: text}}}
}

// Delete builds a fix that removes the text covered by span.
func Delete(title string, sp source.Span) diag.Fix {
	return diag.Fix{Title: title, Edits: []diag.FixEdit{{Span: sp, NewText: ""}}}
}

// Replace builds a fix that swaps the text covered by span for newText.
func Replace(title string, sp source.Span, newText string) diag.Fix {
	return diag.Fix{Title: title, Edits: []diag.FixEdit{{Span: sp, NewText: newText}}}
}
