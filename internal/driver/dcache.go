package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"nmscript/internal/diag"
	"nmscript/internal/source"
)

// cacheSchemaVersion invalidates stored payloads when the format changes.
const cacheSchemaVersion uint16 = 2

// Cache stores validation results on disk keyed by the SHA-256 of the
// file content, so unchanged files skip the whole pipeline.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the msgpack-encoded cache entry.
type cachePayload struct {
	Schema uint16
	Path   string
	Diags  []cachedDiag
}

type cachedDiag struct {
	Code        uint16
	Severity    uint8
	Message     string
	File        string
	Line        uint32
	Col         uint32
	Suggestions []string
	RelatedMsg  []string
	RelatedFile []string
	RelatedLine []uint32
	RelatedCol  []uint32
}

// OpenCache initializes the cache under XDG_CACHE_HOME (or ~/.cache).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "results")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt initializes the cache in an explicit directory (tests).
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Get returns the cached diagnostics for a content hash, if present and
// schema-compatible.
func (c *Cache) Get(hash [32]byte) (*diag.ErrorList, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}

	list := diag.NewErrorList(len(payload.Diags))
	for _, d := range payload.Diags {
		e := diag.ScriptError{
			Code:        diag.Code(d.Code),
			Severity:    diag.Severity(d.Severity),
			Message:     d.Message,
			Loc:         source.Location{File: d.File, Line: d.Line, Col: d.Col},
			Suggestions: d.Suggestions,
		}
		for i := range d.RelatedMsg {
			e.Related = append(e.Related, diag.Related{
				Msg: d.RelatedMsg[i],
				Loc: source.Location{File: d.RelatedFile[i], Line: d.RelatedLine[i], Col: d.RelatedCol[i]},
			})
		}
		list.Add(e)
	}
	return list, true
}

// Put stores diagnostics for a content hash. Write errors are swallowed:
// a broken cache only costs recomputation.
func (c *Cache) Put(hash [32]byte, path string, list *diag.ErrorList) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{Schema: cacheSchemaVersion, Path: path}
	for _, e := range list.Items() {
		d := cachedDiag{
			Code:        uint16(e.Code),
			Severity:    uint8(e.Severity),
			Message:     e.Message,
			File:        e.Loc.File,
			Line:        e.Loc.Line,
			Col:         e.Loc.Col,
			Suggestions: e.Suggestions,
		}
		for _, rel := range e.Related {
			d.RelatedMsg = append(d.RelatedMsg, rel.Msg)
			d.RelatedFile = append(d.RelatedFile, rel.Loc.File)
			d.RelatedLine = append(d.RelatedLine, rel.Loc.Line)
			d.RelatedCol = append(d.RelatedCol, rel.Loc.Col)
		}
		payload.Diags = append(payload.Diags, d)
	}

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return
	}
	tmp := c.entryPath(hash) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, c.entryPath(hash))
}

func (c *Cache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".msgpack")
}
