package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for supplementary context attached to other findings.
	SevInfo Severity = iota
	// SevWarning flags issues that do not block a build.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
