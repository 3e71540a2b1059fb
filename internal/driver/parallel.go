package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"nmscript/internal/source"
)

// ScriptExtension is the NMScript file suffix.
const ScriptExtension = ".nms"

// listScriptFiles returns all *.nms files under dir, sorted for
// deterministic processing order.
func listScriptFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ScriptExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ValidateDir runs the pipeline over every script file under dir, with at
// most jobs files in flight (jobs <= 0 selects GOMAXPROCS). Results come
// back in path order regardless of completion order.
//
// Files are preloaded serially: FileSet is not safe for concurrent
// mutation, and each worker then only touches its own file.
func ValidateDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []FileResult, error) {
	files, err := listScriptFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	type loaded struct {
		file *source.File
		err  error
	}
	preloaded := make([]loaded, len(files))
	for i, path := range files {
		f, err := fileSet.Load(path)
		preloaded[i] = loaded{file: f, err: err}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if preloaded[i].err != nil {
				return preloaded[i].err
			}
			results[i] = validateLoaded(preloaded[i].file, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}
