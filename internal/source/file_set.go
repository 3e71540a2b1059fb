package source

import "os"

// FileSet manages a collection of loaded script files keyed by path.
type FileSet struct {
	files   []*File
	index   map[string]int // normalized path -> files index
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]int)}
}

// NewFileSetWithBase creates a FileSet with a base directory used when
// rendering relative paths.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the configured base directory, falling back to the
// current working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add stores a file built from normalized content. A file with the same
// path replaces the previous index entry but the old File stays reachable
// through any handles already given out.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) *File {
	f := NewFile(path, content, flags)
	fs.index[f.Path] = len(fs.files)
	fs.files = append(fs.files, f)
	return f
}

// Load reads a file from disk, normalizes BOM/CRLF, and adds it.
func (fs *FileSet) Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (tests, stdin, generated sources).
func (fs *FileSet) AddVirtual(name string, content []byte) *File {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for the given path, if loaded.
func (fs *FileSet) Get(path string) (*File, bool) {
	if i, ok := fs.index[normalizePath(path)]; ok {
		return fs.files[i], true
	}
	return nil, false
}

// Files returns all files in load order.
func (fs *FileSet) Files() []*File {
	return fs.files
}

// Len returns the number of loaded files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}
