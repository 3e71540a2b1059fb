// Package diagfmt renders diag.ErrorList contents for terminals and
// tooling. It owns all formatting concerns so the diagnostic model stays
// pure data.
package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color        bool
	Context      int  // excerpt lines around the error line
	ShowExcerpts bool // include source excerpts when a FileSet is given
	ShowNotes    bool // include related-location notes
	NoWarnings   bool // drop warning/info diagnostics
}

// DefaultPrettyOpts returns the CLI defaults.
func DefaultPrettyOpts() PrettyOpts {
	return PrettyOpts{
		Context:      2,
		ShowExcerpts: true,
		ShowNotes:    true,
	}
}

// JSONOpts configures machine-readable JSON output.
type JSONOpts struct {
	IncludeSuggestions bool
	IncludeRelated     bool
	NoWarnings         bool
}

// SarifMeta carries tool metadata for SARIF runs.
type SarifMeta struct {
	ToolName    string
	ToolVersion string
}
