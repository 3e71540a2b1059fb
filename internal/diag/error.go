package diag

import (
	"fmt"
	"strings"

	"nmscript/internal/source"
)

// Related is a secondary location attached to a diagnostic, e.g. the
// original definition site for a duplicate.
type Related struct {
	Loc source.Location
	Msg string
}

// ScriptError is a single finding produced by any pipeline stage.
// Treat values as immutable once added to an ErrorList.
type ScriptError struct {
	Code        Code
	Severity    Severity
	Message     string
	Loc         source.Location
	Suggestions []string  // candidate identifiers, best match first
	Related     []Related // secondary locations
}

// New constructs a diagnostic with the given severity.
func New(sev Severity, code Code, loc source.Location, msg string) ScriptError {
	return ScriptError{
		Code:     code,
		Severity: sev,
		Message:  msg,
		Loc:      loc,
	}
}

// NewError constructs an error-severity diagnostic.
func NewError(code Code, loc source.Location, msg string) ScriptError {
	return New(SevError, code, loc, msg)
}

// NewWarning constructs a warning-severity diagnostic.
func NewWarning(code Code, loc source.Location, msg string) ScriptError {
	return New(SevWarning, code, loc, msg)
}

// WithRelated appends a secondary location.
func (e ScriptError) WithRelated(loc source.Location, msg string) ScriptError {
	e.Related = append(e.Related, Related{Loc: loc, Msg: msg})
	return e
}

// WithSuggestions attaches did-you-mean candidates, best match first.
func (e ScriptError) WithSuggestions(names ...string) ScriptError {
	e.Suggestions = append(e.Suggestions, names...)
	return e
}

func (e ScriptError) IsError() bool   { return e.Severity == SevError }
func (e ScriptError) IsWarning() bool { return e.Severity == SevWarning }

// Format renders the single-line form:
//
//	script.nms:15:10: error[E3001]: undefined character 'Villian'
func (e ScriptError) Format() string {
	return fmt.Sprintf("%s: %s[%s]: %s", e.Loc, e.Severity, e.Code, e.Message)
}

// FormatRich renders the full form with a source excerpt, related notes
// and a did-you-mean hint. file may be nil when no source is available.
func (e ScriptError) FormatRich(file *source.File) string {
	var sb strings.Builder
	sb.WriteString(e.Format())
	sb.WriteByte('\n')

	if file != nil {
		if excerpt := source.Excerpt(file, e.Loc.Line, e.Loc.Col, 2); excerpt != "" {
			sb.WriteByte('\n')
			sb.WriteString(excerpt)
		}
	}
	for _, rel := range e.Related {
		fmt.Fprintf(&sb, "\n  note: %s (at %d:%d)", rel.Msg, rel.Loc.Line, rel.Loc.Col)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, "\n  did you mean '%s'?", e.Suggestions[0])
	}
	return sb.String()
}
