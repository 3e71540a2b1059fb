package diag

import (
	"math"
	"sort"

	"fortio.org/safecast"
)

// DefaultMaxDiagnostics bounds an ErrorList when no explicit limit is given.
const DefaultMaxDiagnostics = 1000

// ErrorList is an append-only, bounded sequence of diagnostics.
type ErrorList struct {
	items []ScriptError
	max   uint16
}

// NewErrorList creates a list that holds at most max diagnostics.
// max <= 0 selects DefaultMaxDiagnostics; limits beyond 65535 clamp
// to 65535.
func NewErrorList(max int) *ErrorList {
	if max <= 0 {
		max = DefaultMaxDiagnostics
	}
	limit, err := safecast.Conv[uint16](max)
	if err != nil {
		limit = math.MaxUint16
	}
	return &ErrorList{
		items: make([]ScriptError, 0, min(max, 64)),
		max:   limit,
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false if the diagnostic was dropped.
func (l *ErrorList) Add(e ScriptError) bool {
	if len(l.items) >= int(l.max) {
		return false
	}
	l.items = append(l.items, e)
	return true
}

// AddError appends an error-severity diagnostic.
func (l *ErrorList) AddError(e ScriptError) bool {
	e.Severity = SevError
	return l.Add(e)
}

// AddWarning appends a warning-severity diagnostic.
func (l *ErrorList) AddWarning(e ScriptError) bool {
	e.Severity = SevWarning
	return l.Add(e)
}

// AddInfo appends an info-severity diagnostic.
func (l *ErrorList) AddInfo(e ScriptError) bool {
	e.Severity = SevInfo
	return l.Add(e)
}

// HasErrors reports whether any diagnostic has error severity.
func (l *ErrorList) HasErrors() bool {
	for i := range l.items {
		if l.items[i].IsError() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has warning severity.
func (l *ErrorList) HasWarnings() bool {
	for i := range l.items {
		if l.items[i].IsWarning() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics.
func (l *ErrorList) ErrorCount() int {
	n := 0
	for i := range l.items {
		if l.items[i].IsError() {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity diagnostics.
func (l *ErrorList) WarningCount() int {
	n := 0
	for i := range l.items {
		if l.items[i].IsWarning() {
			n++
		}
	}
	return n
}

func (l *ErrorList) Len() int    { return len(l.items) }
func (l *ErrorList) Empty() bool { return len(l.items) == 0 }

// Items returns a read-only view of the diagnostics in append order.
// Callers must not modify the returned slice.
func (l *ErrorList) Items() []ScriptError {
	return l.items
}

// Errors returns only the error-severity diagnostics.
func (l *ErrorList) Errors() []ScriptError {
	var out []ScriptError
	for i := range l.items {
		if l.items[i].IsError() {
			out = append(out, l.items[i])
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics.
func (l *ErrorList) Warnings() []ScriptError {
	var out []ScriptError
	for i := range l.items {
		if l.items[i].IsWarning() {
			out = append(out, l.items[i])
		}
	}
	return out
}

// Merge appends all diagnostics from other, raising the limit if needed.
func (l *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	total := len(l.items) + len(other.items)
	if limit, err := safecast.Conv[uint16](total); err == nil && limit > l.max {
		l.max = limit
	}
	l.items = append(l.items, other.items...)
}

// Sort orders diagnostics by file, line, column, severity (errors first)
// and code, for deterministic output across runs.
func (l *ErrorList) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i], l.items[j]
		if a.Loc.File != b.Loc.File {
			return a.Loc.File < b.Loc.File
		}
		if a.Loc.Line != b.Loc.Line {
			return a.Loc.Line < b.Loc.Line
		}
		if a.Loc.Col != b.Loc.Col {
			return a.Loc.Col < b.Loc.Col
		}
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		return a.Code < b.Code
	})
}
