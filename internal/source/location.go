package source

import "fmt"

// Location is a 1-based position in a source file. The zero value means
// "unknown location" and renders without line/column information.
type Location struct {
	File string
	Line uint32
	Col  uint32
}

// IsValid reports whether the location carries real position information.
func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		if l.File == "" {
			return "<unknown>"
		}
		return l.File
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Before reports whether l precedes other in document order.
// Files are compared lexicographically.
func (l Location) Before(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Col < other.Col
}
