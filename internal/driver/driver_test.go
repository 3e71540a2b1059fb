package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"nmscript/internal/diag"
	"nmscript/internal/source"
)

const validScript = `
character Hero "Alex" #4A90D9

entry scene intro {
    say Hero "hello"
    goto ending
}

scene ending {
    say Hero "bye"
}
`

func TestValidateSource(t *testing.T) {
	fs := source.NewFileSet()
	res := ValidateSource(fs, "demo.nms", []byte(validScript), DefaultOptions())

	if res.Errors.HasErrors() {
		t.Fatalf("expected clean run, got %v", res.Errors.Items())
	}
	if res.Program == nil || len(res.Program.Scenes) != 2 {
		t.Fatalf("expected parsed program with 2 scenes, got %+v", res.Program)
	}
	if res.Cached {
		t.Error("uncached run must not report Cached")
	}
}

func TestValidateSourceSemanticError(t *testing.T) {
	fs := source.NewFileSet()
	res := ValidateSource(fs, "demo.nms", []byte(`
entry scene intro {
    say Ghost "boo"
}
`), DefaultOptions())

	if !res.Errors.HasErrors() {
		t.Fatal("expected an undefined character error")
	}
	if res.Errors.Items()[0].Code != diag.UndefinedCharacter {
		t.Errorf("expected UndefinedCharacter, got %s", res.Errors.Items()[0].Code)
	}
}

func TestFrontEndErrorsSkipSemanticPass(t *testing.T) {
	fs := source.NewFileSet()
	res := ValidateSource(fs, "broken.nms", []byte(`
entry scene intro {
    say Ghost
}
`), DefaultOptions())

	if !res.Errors.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	for _, e := range res.Errors.Items() {
		if e.Code >= 3000 {
			t.Errorf("semantic diagnostic %s leaked through a failed parse", e.Code)
		}
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.nms")
	if err := os.WriteFile(path, []byte(validScript), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	res, err := ValidateFile(fs, path, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Errors.HasErrors() {
		t.Errorf("expected clean run, got %v", res.Errors.Items())
	}
	if fs.Len() != 1 {
		t.Errorf("expected file registered in the set, got %d", fs.Len())
	}
}

func TestValidateFileMissing(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := ValidateFile(fs, filepath.Join(t.TempDir(), "nope.nms"), DefaultOptions()); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.nms": validScript,
		"a.nms": "entry scene solo {\n    say Ghost \"boo\"\n}\n",
		"c.txt": "not a script",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	fs, results, err := ValidateDir(context.Background(), dir, DefaultOptions(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 script results, got %d", len(results))
	}
	// Path order regardless of completion order.
	if filepath.Base(results[0].Path) != "a.nms" || filepath.Base(results[1].Path) != "b.nms" {
		t.Errorf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	if !results[0].Errors.HasErrors() {
		t.Error("expected a.nms to fail validation")
	}
	if results[1].Errors.HasErrors() {
		t.Errorf("expected b.nms to pass, got %v", results[1].Errors.Items())
	}
	if fs.Len() != 2 {
		t.Errorf("expected 2 files loaded, got %d", fs.Len())
	}
}

func TestValidateDirEmpty(t *testing.T) {
	_, results, err := ValidateDir(context.Background(), t.TempDir(), DefaultOptions(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty dir, got %d", len(results))
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.Cache = cache

	fs := source.NewFileSet()
	script := []byte(`
entry scene intro {
    say Ghost "boo"
}
`)
	first := ValidateSource(fs, "demo.nms", script, opts)
	if first.Cached {
		t.Fatal("first run must not be cached")
	}
	second := ValidateSource(fs, "demo.nms", script, opts)
	if !second.Cached {
		t.Fatal("second run with identical content must hit the cache")
	}
	if second.Errors.Len() != first.Errors.Len() {
		t.Fatalf("cached diagnostics diverge: %d vs %d", second.Errors.Len(), first.Errors.Len())
	}
	a, b := first.Errors.Items()[0], second.Errors.Items()[0]
	if a.Code != b.Code || a.Message != b.Message || a.Loc != b.Loc {
		t.Errorf("cached diagnostic mismatch: %+v vs %+v", a, b)
	}
	if len(a.Suggestions) != len(b.Suggestions) {
		t.Errorf("cached suggestions mismatch: %v vs %v", a.Suggestions, b.Suggestions)
	}
}

func TestCacheMissOnChange(t *testing.T) {
	cache, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Cache = cache

	fs := source.NewFileSet()
	ValidateSource(fs, "demo.nms", []byte("entry scene a {\n}\n"), opts)
	res := ValidateSource(fs, "demo.nms", []byte("entry scene a {\n    say \"x\"\n}\n"), opts)
	if res.Cached {
		t.Error("changed content must not hit the cache")
	}
}

func TestCacheKeepsRelatedLocationFile(t *testing.T) {
	cache, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	list := diag.NewErrorList(0)
	e := diag.NewError(diag.DuplicateSceneDefinition,
		source.Location{File: "b.nms", Line: 3, Col: 1}, "duplicate scene 'intro'")
	e = e.WithRelated(source.Location{File: "a.nms", Line: 1, Col: 1}, "first defined here")
	list.Add(e)

	var hash [32]byte
	cache.Put(hash, "b.nms", list)
	got, ok := cache.Get(hash)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	rel := got.Items()[0].Related[0]
	if rel.Loc.File != "a.nms" {
		t.Errorf("related location file %q after round trip, want a.nms", rel.Loc.File)
	}
	if rel.Msg != "first defined here" || rel.Loc.Line != 1 {
		t.Errorf("related note mangled: %+v", rel)
	}
}
