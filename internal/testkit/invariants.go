// Package testkit holds structural invariant checks shared by parser and
// fuzz tests. The checks cover span bookkeeping that individual assertions
// tend to miss: containment, ordering, and file identity.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// CheckDocumentInvariants runs the span invariants over a parsed document:
// 1) every span points at the parsed file and stays within content bounds
// 2) every label span covers the spans of its elements
// 3) document items appear in source order (non-decreasing span starts)
func CheckDocumentInvariants(doc *zpl.Document, sf *source.File) error {
	if doc == nil || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	var prevStart uint32
	for i, item := range doc.Items {
		sp, err := nodeSpan(item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if err := checkSpan(sp, sf.ID, lenContent); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if sp.Start < prevStart {
			return fmt.Errorf("item %d: span %v starts before previous item", i, sp)
		}
		prevStart = sp.Start

		label, ok := item.(*zpl.Label)
		if !ok {
			continue
		}
		for j, el := range label.Elements {
			esp, err := nodeSpan(el)
			if err != nil {
				return fmt.Errorf("item %d element %d: %w", i, j, err)
			}
			if err := checkSpan(esp, sf.ID, lenContent); err != nil {
				return fmt.Errorf("item %d element %d: %w", i, j, err)
			}
			if esp.Start < label.Span.Start || esp.End > label.Span.End {
				return fmt.Errorf("item %d element %d: span %v outside label span %v",
					i, j, esp, label.Span)
			}
		}
	}
	return nil
}

func checkSpan(sp source.Span, want source.FileID, limit uint32) error {
	if sp.File != want {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, want)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span: %v", sp)
	}
	if sp.End > limit {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, limit)
	}
	return nil
}

func nodeSpan(n zpl.Node) (source.Span, error) {
	switch v := n.(type) {
	case *zpl.Label:
		return v.Span, nil
	case *zpl.Command:
		return v.Span, nil
	case *zpl.Comment:
		return v.Span, nil
	case *zpl.Text:
		return v.Span, nil
	default:
		return source.Span{}, fmt.Errorf("unexpected node type %T", n)
	}
}
