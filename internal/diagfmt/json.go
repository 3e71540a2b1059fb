package diagfmt

import (
	"encoding/json"
	"io"

	"nmscript/internal/diag"
)

// LocationJSON is a source position in JSON output.
type LocationJSON struct {
	File string `json:"file,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// RelatedJSON is a secondary location in JSON output.
type RelatedJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON mirrors diag.ScriptError for serialization.
type DiagnosticJSON struct {
	Severity    string        `json:"severity"`
	Code        string        `json:"code"`
	Message     string        `json:"message"`
	Location    LocationJSON  `json:"location"`
	Suggestions []string      `json:"suggestions,omitempty"`
	Related     []RelatedJSON `json:"related,omitempty"`
}

// Output is the JSON document root.
type Output struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// JSON writes the diagnostics as an indented JSON document.
func JSON(w io.Writer, list *diag.ErrorList, opts JSONOpts) error {
	out := Output{
		Diagnostics: make([]DiagnosticJSON, 0, list.Len()),
		Errors:      list.ErrorCount(),
		Warnings:    list.WarningCount(),
	}
	for _, e := range list.Items() {
		if opts.NoWarnings && !e.IsError() {
			continue
		}
		d := DiagnosticJSON{
			Severity: e.Severity.String(),
			Code:     e.Code.String(),
			Message:  e.Message,
			Location: LocationJSON{File: e.Loc.File, Line: e.Loc.Line, Col: e.Loc.Col},
		}
		if opts.IncludeSuggestions {
			d.Suggestions = e.Suggestions
		}
		if opts.IncludeRelated {
			for _, rel := range e.Related {
				d.Related = append(d.Related, RelatedJSON{
					Message:  rel.Msg,
					Location: LocationJSON{File: rel.Loc.File, Line: rel.Loc.Line, Col: rel.Loc.Col},
				})
			}
		}
		out.Diagnostics = append(out.Diagnostics, d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
