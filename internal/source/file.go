package source

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures content and derived metadata for a single script file.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of '\n', for line extraction
	Hash    [32]byte
	Flags   FileFlags
}

// NewFile builds a File from normalized content, computing the line index
// and content hash.
func NewFile(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// NumLines returns the number of lines in the file. An empty file has one
// (empty) line.
func (f *File) NumLines() uint32 {
	n, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	if len(f.Content) == 0 {
		return 1
	}
	// Trailing content after the last '\n' forms one more line.
	last := len(f.Content) - 1
	if f.Content[last] != '\n' {
		return n + 1
	}
	return n
}

// Line returns the text of the given 1-based line without the trailing
// newline. Out-of-range lines yield an empty string.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	end := lenContent
	if lineNum-1 < lenIdx {
		end = f.LineIdx[lineNum-1]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// LocationFor builds a Location in this file.
func (f *File) LocationFor(line, col uint32) Location {
	return Location{File: f.Path, Line: line, Col: col}
}
