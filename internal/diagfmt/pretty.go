package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// displayPath renders the path of a file under the given mode.
func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	case diag.SevInfo:
		c = color.New(color.FgBlue)
	default:
		c = color.New(color.FgWhite)
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Pretty renders each diagnostic as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed, per options, by the offending source line with a caret
// underline, the notes, and fix titles. Sort the bag first when a stable
// order matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		writePretty(w, d, fs, opts)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColor(d.Severity, opts.Color)
	start, _ := fs.Resolve(d.Primary)
	path := displayPath(fs, d.Primary.File, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)

	if opts.ShowPreview {
		writePreview(w, d.Primary, fs, opts.Context, sev)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nPath := displayPath(fs, n.Span.File, opts.PathMode)
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n", n.Msg, nPath, nStart.Line, nStart.Col)
			if opts.ShowPreview {
				writePreview(w, n.Span, fs, 0, sev)
			}
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", f.Title)
		}
	}
}

// writePreview prints the first line of the span with a caret underline,
// plus context extra lines above and below. Columns are byte positions, so
// the underline aligns exactly for the ASCII bulk of ZPL.
func writePreview(w io.Writer, sp source.Span, fs *source.FileSet, context int, sev *color.Color) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	text := file.GetLine(start.Line)
	if text == "" {
		return
	}

	ctx := uint32(0)
	if context > 0 {
		ctx = uint32(context)
	}
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	for line := first; line < start.Line; line++ {
		if t := file.GetLine(line); t != "" {
			fmt.Fprintf(w, "  %s\n", t)
		}
	}

	fmt.Fprintf(w, "  %s\n", text)

	pad := int(start.Col) - 1
	if pad > len(text) {
		pad = len(text)
	}
	width := 1
	switch {
	case end.Line == start.Line && int(end.Col) > int(start.Col):
		width = int(end.Col - start.Col)
	case end.Line > start.Line:
		width = len(text) - pad
	}
	if rest := len(text) - pad; width > rest && rest > 0 {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), sev.Sprint(marker))

	lastLine := uint32(len(file.LineIdx) + 1)
	stop := end.Line + ctx
	if stop > lastLine {
		stop = lastLine
	}
	for line := end.Line + 1; line <= stop; line++ {
		if t := file.GetLine(line); t != "" {
			fmt.Fprintf(w, "  %s\n", t)
		}
	}
}

// Summary prints one line totalling findings by severity, colored by the
// worst severity present. An empty bag prints nothing.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	counts := map[diag.Severity]int{}
	for _, d := range bag.Items() {
		counts[d.Severity]++
	}
	parts := make([]string, 0, 4)
	for _, sev := range []diag.Severity{diag.SevError, diag.SevWarning, diag.SevInfo, diag.SevHint} {
		if n := counts[sev]; n > 0 {
			parts = append(parts, pluralize(n, strings.ToLower(sev.String())))
		}
	}
	worst := diag.SevHint
	for sev := range counts {
		if sev > worst {
			worst = sev
		}
	}
	fmt.Fprintln(w, severityColor(worst, useColor).Sprint(strings.Join(parts, ", ")))
}

func pluralize(n int, what string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", what)
	}
	return fmt.Sprintf("%d %ss", n, what)
}
