package source

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Excerpt renders the lines around a location with a `>` marker on the
// error line and a `^` caret under the error column:
//
//	  2 | scene intro {
//	> 3 |     say Villian "I am evil"
//	    |         ^
//	  4 | }
//
// contextLines is the number of lines shown before and after the error
// line. The caret column accounts for tabs and wide glyphs so it lines up
// in a monospace terminal.
func Excerpt(f *File, line, col uint32, contextLines uint32) string {
	if f == nil || len(f.Content) == 0 || line == 0 || line > f.NumLines() {
		return ""
	}

	startLine := uint32(1)
	if line > contextLines {
		startLine = line - contextLines
	}
	endLine := f.NumLines()
	if line+contextLines < endLine {
		endLine = line + contextLines
	}
	numWidth := len(fmt.Sprintf("%d", endLine))

	var sb strings.Builder
	for i := startLine; i <= endLine; i++ {
		text := f.Line(i)
		marker := "  "
		if i == line {
			marker = "> "
		}
		fmt.Fprintf(&sb, " %s%*d | %s\n", marker, numWidth, i, text)

		if i == line && col > 0 {
			sb.WriteString(strings.Repeat(" ", numWidth+3))
			sb.WriteString(" | ")
			sb.WriteString(caretPad(text, col))
			sb.WriteString("^\n")
		}
	}
	return sb.String()
}

// caretPad returns the whitespace that visually spans the first col-1
// characters of text. Tabs count as 4 columns, everything else by its
// display width.
func caretPad(text string, col uint32) string {
	width := 0
	n := uint32(0)
	for _, r := range text {
		if n >= col-1 {
			break
		}
		if r == '\t' {
			width += 4
		} else {
			width += runewidth.RuneWidth(r)
		}
		n++
	}
	return strings.Repeat(" ", width)
}
