package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"nmscript/internal/diag"
	"nmscript/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	suggestColor = color.New(color.FgGreen)
)

// Pretty writes diagnostics in the single-line-plus-excerpt form:
//
//	intro.nms:3:9: error[E3001]: character 'Villian' is not defined
//	  > 3 |     say Villian "I am evil"
//	      |         ^
//	  did you mean 'Villain'?
//
// fs may be nil; excerpts are then skipped. Call list.Sort() first when
// deterministic ordering matters.
func Pretty(w io.Writer, list *diag.ErrorList, fs *source.FileSet, opts PrettyOpts) {
	for _, e := range list.Items() {
		if opts.NoWarnings && !e.IsError() {
			continue
		}
		writePretty(w, e, fs, opts)
	}

	if n := list.ErrorCount(); n > 0 {
		fmt.Fprintf(w, "%s generated\n", plural(n, "error"))
	}
	if n := list.WarningCount(); n > 0 && !opts.NoWarnings {
		fmt.Fprintf(w, "%s generated\n", plural(n, "warning"))
	}
}

func writePretty(w io.Writer, e diag.ScriptError, fs *source.FileSet, opts PrettyOpts) {
	sev := e.Severity.String()
	if opts.Color {
		switch {
		case e.IsError():
			sev = errorColor.Sprint(sev)
		case e.IsWarning():
			sev = warningColor.Sprint(sev)
		default:
			sev = infoColor.Sprint(sev)
		}
	}
	fmt.Fprintf(w, "%s: %s[%s]: %s\n", e.Loc, sev, e.Code, e.Message)

	if opts.ShowExcerpts && fs != nil {
		if f, ok := fs.Get(e.Loc.File); ok {
			ctx := opts.Context
			if ctx <= 0 {
				ctx = 2
			}
			if excerpt := source.Excerpt(f, e.Loc.Line, e.Loc.Col, uint32(ctx)); excerpt != "" { // #nosec G115
				io.WriteString(w, excerpt)
			}
		}
	}
	if opts.ShowNotes {
		for _, rel := range e.Related {
			fmt.Fprintf(w, "  note: %s (at %d:%d)\n", rel.Msg, rel.Loc.Line, rel.Loc.Col)
		}
	}
	if len(e.Suggestions) > 0 {
		hint := fmt.Sprintf("did you mean '%s'?", strings.Join(e.Suggestions[:1], ""))
		if len(e.Suggestions) > 1 {
			hint = fmt.Sprintf("did you mean '%s'? (or: %s)",
				e.Suggestions[0], strings.Join(e.Suggestions[1:], ", "))
		}
		if opts.Color {
			hint = suggestColor.Sprint(hint)
		}
		fmt.Fprintf(w, "  %s\n", hint)
	}
}

func plural(n int, what string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", what)
	}
	return fmt.Sprintf("%d %ss", n, what)
}
