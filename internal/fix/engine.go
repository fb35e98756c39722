// Package fix applies the suggested corrections carried on diagnostics:
// inserting a missing ^FS or ^XZ, deleting an orphaned separator. Fixes
// are plain edits over file content; the engine selects a non-overlapping
// subset and rewrites the bytes, leaving disk I/O to the caller.
package fix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// ErrNoFixes is returned when the diagnostics carry nothing applicable.
var ErrNoFixes = errors.New("no applicable fixes found")

// Applied records one fix that made it into the output.
type Applied struct {
	Code    diag.Code
	Title   string
	Message string
	Span    source.Span
}

// Skipped records a fix that was left out, with the reason.
type Skipped struct {
	Title  string
	Reason string
}

// Result is the outcome of one Apply call over one file.
type Result struct {
	Applied []Applied
	Skipped []Skipped
	// Content is the rewritten file content. Unchanged when nothing
	// applied.
	Content []byte
	Changed bool
}

type candidate struct {
	d     diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects the fixes attached to diagnostics for file, selects a
// deterministic non-overlapping subset, and applies it to the file content.
// Diagnostics pointing at other files are ignored; overlapping fixes after
// the first are skipped, not errors. Returns ErrNoFixes when nothing
// applied.
func Apply(file *source.File, diagnostics []diag.Diagnostic) (*Result, error) {
	if file == nil {
		return nil, fmt.Errorf("fix: file is nil")
	}
	result := &Result{Content: file.Content}

	cands, skips := gather(file, diagnostics)
	result.Skipped = skips
	if len(cands) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(cands)

	selected := selectNonOverlapping(cands, result)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	var edits []diag.FixEdit
	for _, c := range selected {
		edits = append(edits, c.fix.Edits...)
		result.Applied = append(result.Applied, Applied{
			Code:    c.d.Code,
			Title:   c.fix.Title,
			Message: c.d.Message,
			Span:    c.d.Primary,
		})
	}
	result.Content = applyEdits(file.Content, edits)
	result.Changed = true
	return result, nil
}

// gather turns diagnostics into candidates, dropping fixes whose edits
// cannot apply to this file.
func gather(file *source.File, diagnostics []diag.Diagnostic) ([]candidate, []Skipped) {
	var cands []candidate
	var skips []Skipped

	limit := uint32(len(file.Content))
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				skips = append(skips, Skipped{Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			if bad := invalidEdit(f.Edits, file.ID, limit); bad != "" {
				skips = append(skips, Skipped{Title: f.Title, Reason: bad})
				continue
			}
			cands = append(cands, candidate{d: d, fix: f, order: order})
			order++
		}
	}
	return cands, skips
}

func invalidEdit(edits []diag.FixEdit, id source.FileID, limit uint32) string {
	for _, e := range edits {
		if e.Span.File != id {
			return "edit targets a different file"
		}
		if e.Span.End < e.Span.Start || e.Span.End > limit {
			return fmt.Sprintf("edit span %v outside file bounds", e.Span)
		}
	}
	return ""
}

// sortCandidates orders candidates by position, then insertion order, so a
// rerun over the same diagnostics picks the same subset.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		si, sj := cands[i].fix.Edits[0].Span, cands[j].fix.Edits[0].Span
		if si.Start != sj.Start {
			return si.Start < sj.Start
		}
		if si.End != sj.End {
			return si.End < sj.End
		}
		return cands[i].order < cands[j].order
	})
}

// selectNonOverlapping keeps the first candidate at each position and skips
// any later one whose edits touch an already claimed range. Pure insertions
// at the same offset count as overlapping; applying both would interleave
// text unpredictably.
func selectNonOverlapping(cands []candidate, result *Result) []candidate {
	var selected []candidate
	var claimed []source.Span
	for _, c := range cands {
		conflict := false
		for _, e := range c.fix.Edits {
			for _, sp := range claimed {
				if overlaps(e.Span, sp) {
					conflict = true
					break
				}
			}
			if conflict {
				break
			}
		}
		if conflict {
			result.Skipped = append(result.Skipped, Skipped{
				Title:  c.fix.Title,
				Reason: "overlaps an earlier fix",
			})
			continue
		}
		selected = append(selected, c)
		for _, e := range c.fix.Edits {
			claimed = append(claimed, e.Span)
		}
	}
	return selected
}

// overlaps treats spans as half-open ranges; two insertions at the same
// offset collide.
func overlaps(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return a.Start == b.Start
	}
	if a.Empty() {
		return b.Start <= a.Start && a.Start < b.End
	}
	if b.Empty() {
		return a.Start <= b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// applyEdits rewrites content back to front so earlier offsets stay valid.
// Edits must be non-overlapping; selectNonOverlapping guarantees it.
func applyEdits(content []byte, edits []diag.FixEdit) []byte {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	out := append([]byte(nil), content...)
	for _, e := range sorted {
		var next []byte
		next = append(next, out[:e.Span.Start]...)
		next = append(next, e.NewText...)
		next = append(next, out[e.Span.End:]...)
		out = next
	}
	return out
}
