// Package driver wires the lex → parse → validate pipeline for the CLI:
// single files, whole directories (in parallel), and an optional on-disk
// result cache.
package driver

import (
	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/lexer"
	"nmscript/internal/parser"
	"nmscript/internal/project"
	"nmscript/internal/source"
	"nmscript/internal/validator"
)

// Options configure a pipeline run.
type Options struct {
	ReportUnused   bool
	ReportDeadCode bool
	ValidateAssets bool
	Project        project.Context
	Suggest        diag.SuggestOptions
	MaxDiagnostics int
	Cache          *Cache // optional
}

// DefaultOptions mirrors the validator defaults.
func DefaultOptions() Options {
	return Options{
		ReportUnused:   true,
		ReportDeadCode: true,
		Suggest:        diag.DefaultSuggestOptions(),
	}
}

// FileResult is the outcome of validating one file.
type FileResult struct {
	Path    string
	Errors  *diag.ErrorList
	Program *ast.Program
	Cached  bool
}

// ValidateFile loads path into fs and runs the full pipeline on it.
func ValidateFile(fs *source.FileSet, path string, opts Options) (FileResult, error) {
	file, err := fs.Load(path)
	if err != nil {
		return FileResult{Path: path}, err
	}
	return validateLoaded(file, opts), nil
}

// ValidateSource runs the pipeline on in-memory content.
func ValidateSource(fs *source.FileSet, name string, content []byte, opts Options) FileResult {
	file := fs.AddVirtual(name, content)
	return validateLoaded(file, opts)
}

func validateLoaded(file *source.File, opts Options) FileResult {
	if opts.Cache != nil {
		if errs, ok := opts.Cache.Get(file.Hash); ok {
			return FileResult{Path: file.Path, Errors: errs, Cached: true}
		}
	}

	errs := diag.NewErrorList(opts.MaxDiagnostics)
	toks := lexer.Tokenize(file, errs)
	prog := parser.New(toks, errs).Parse()

	// The validator assumes a syntactically well-formed AST; skip the
	// semantic pass when the front end already failed.
	if !errs.HasErrors() {
		v := newValidator(file.Path, opts)
		result := v.Validate(prog)
		errs.Merge(result.Errors)
	}

	if opts.Cache != nil {
		opts.Cache.Put(file.Hash, file.Path, errs)
	}
	return FileResult{Path: file.Path, Errors: errs, Program: prog}
}

func newValidator(path string, opts Options) *validator.Validator {
	v := validator.New()
	v.SetReportUnused(opts.ReportUnused)
	v.SetReportDeadCode(opts.ReportDeadCode)
	v.SetValidateAssets(opts.ValidateAssets)
	if opts.Project != nil {
		v.SetProjectContext(opts.Project)
	}
	if opts.Suggest.MaxDistance > 0 {
		v.SetSuggestOptions(opts.Suggest)
	}
	if opts.MaxDiagnostics > 0 {
		v.SetMaxDiagnostics(opts.MaxDiagnostics)
	}
	v.SetFilePath(path)
	return v
}
