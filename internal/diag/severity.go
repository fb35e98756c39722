package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevHint marks stylistic suggestions that need no action.
	SevHint Severity = iota
	// SevInfo is for informational diagnostics.
	SevInfo
	// SevWarning is for findings that do not block printing.
	SevWarning
	// SevError is for findings that produce wrong or rejected output.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevHint:
		return "HINT"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
