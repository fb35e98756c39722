// Package diagfmt renders diagnostics, token streams, and parsed documents
// for terminal and machine consumers. Rendering never mutates the bag; the
// caller sorts it first when ordering matters.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short paths as-is and collapses long absolute
	// paths to the basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Context is the number of extra source lines shown above and below
	// the finding when ShowPreview is set.
	Context     int
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures JSON diagnostic output.
type JSONOpts struct {
	IncludePositions bool // add line/col fields to every location
	PathMode         PathMode
	Max              int // cap on rendered diagnostics; 0 renders all
	IncludeNotes     bool
	IncludeFixes     bool
}

// SarifMeta carries run-level tool metadata for SARIF output.
type SarifMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}
