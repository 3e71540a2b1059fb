// Package validator performs semantic analysis of NMScript ASTs.
//
// Validation is a two-pass walk: the first pass collects character and
// scene definitions (variables are introduced lazily by `set`), the second
// resolves every reference, tracks usage, threads reachability through
// each scene body and records the scene transition graph. A final graph
// traversal flags scenes unreachable from the entry scene, and optional
// unused-symbol reporting closes the run.
//
// A Validator is reusable across calls but not safe for concurrent use:
// symbol tables and the scene graph are per-instance state reset on every
// Validate.
package validator

import (
	"fmt"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/project"
	"nmscript/internal/source"
)

// ValidationResult is the outcome of one Validate call.
type ValidationResult struct {
	Errors  *diag.ErrorList
	IsValid bool
}

// HasErrors reports whether any error-severity diagnostic was produced.
func (r ValidationResult) HasErrors() bool { return r.Errors.HasErrors() }

// HasWarnings reports whether any warning-severity diagnostic was produced.
func (r ValidationResult) HasWarnings() bool { return r.Errors.HasWarnings() }

// Validator checks a program for semantic problems. Configure with the
// setters, then call Validate; collaborators are injected, never global.
type Validator struct {
	// configuration
	reportUnused   bool
	reportDeadCode bool
	validateAssets bool
	maxDiagnostics int
	suggest        diag.SuggestOptions
	filePath       string

	projectCtx project.Context

	// legacy callbacks, consulted only when no project context is set
	sceneFileExists   project.SceneFileExistsFunc
	sceneObjectExists project.SceneObjectExistsFunc
	assetFileExists   project.AssetFileExistsFunc

	// per-call state
	characters *symbolTable
	scenes     *symbolTable
	variables  *symbolTable
	sceneGraph map[string][]string
	graphEdges map[string]map[string]bool
	entryScene string // explicit `entry` marker, if any
	startScene string // resolved traversal root
	current    string // scene being validated
	errs       *diag.ErrorList
}

// New returns a validator with the default configuration: unused and
// dead-code reporting on, asset validation off.
func New() *Validator {
	return &Validator{
		reportUnused:   true,
		reportDeadCode: true,
		suggest:        diag.DefaultSuggestOptions(),
	}
}

// SetReportUnused toggles UnusedCharacter/UnusedScene/UnusedVariable
// warnings.
func (v *Validator) SetReportUnused(report bool) { v.reportUnused = report }

// SetReportDeadCode toggles DeadCode, UnreachableScene and EmptyScene
// warnings.
func (v *Validator) SetReportDeadCode(report bool) { v.reportDeadCode = report }

// SetValidateAssets toggles asset existence checks. Checks only run when a
// project context or the legacy asset callback is also configured.
func (v *Validator) SetValidateAssets(validate bool) { v.validateAssets = validate }

// SetProjectContext injects the asset-existence collaborator. The context
// is read-only from the validator's perspective. When both a context and
// legacy callbacks are configured, the context wins.
func (v *Validator) SetProjectContext(ctx project.Context) { v.projectCtx = ctx }

// SetSceneFileExists installs the legacy scene-file callback, consulted
// for every declared scene during asset validation. Context has no
// scene-file notion, so the callback applies even when one is set.
func (v *Validator) SetSceneFileExists(fn project.SceneFileExistsFunc) { v.sceneFileExists = fn }

// SetSceneObjectExists installs the legacy scene-object callback.
func (v *Validator) SetSceneObjectExists(fn project.SceneObjectExistsFunc) { v.sceneObjectExists = fn }

// SetAssetFileExists installs the legacy asset-file callback.
func (v *Validator) SetAssetFileExists(fn project.AssetFileExistsFunc) { v.assetFileExists = fn }

// SetFilePath sets the path rendered in diagnostic locations that carry no
// file of their own.
func (v *Validator) SetFilePath(path string) { v.filePath = path }

// SetSuggestOptions overrides the did-you-mean thresholds.
func (v *Validator) SetSuggestOptions(opts diag.SuggestOptions) { v.suggest = opts }

// SetMaxDiagnostics bounds the number of collected diagnostics per call.
// Zero selects the default limit.
func (v *Validator) SetMaxDiagnostics(max int) { v.maxDiagnostics = max }

// Validate analyzes program and returns a fresh result. It never panics
// outward: malformed nodes are skipped and analysis continues with their
// siblings. Safe to call repeatedly on the same instance.
func (v *Validator) Validate(program *ast.Program) ValidationResult {
	v.reset()
	if program != nil {
		v.collectDefinitions(program)
		for i := range program.Scenes {
			v.validateScene(&program.Scenes[i])
		}
		v.checkSceneFiles(program)
		v.analyzeControlFlow(program)
		if v.reportUnused {
			v.reportUnusedSymbols()
		}
	}
	return ValidationResult{Errors: v.errs, IsValid: !v.errs.HasErrors()}
}

// reset discards all state from the previous call.
func (v *Validator) reset() {
	v.characters = newSymbolTable()
	v.scenes = newSymbolTable()
	v.variables = newSymbolTable()
	v.sceneGraph = make(map[string][]string)
	v.graphEdges = make(map[string]map[string]bool)
	v.entryScene = ""
	v.startScene = ""
	v.current = ""
	v.errs = diag.NewErrorList(v.maxDiagnostics)
}

// addEdge records a resolved scene transition exactly once.
func (v *Validator) addEdge(from, to string) {
	if from == "" {
		return
	}
	set := v.graphEdges[from]
	if set == nil {
		set = make(map[string]bool)
		v.graphEdges[from] = set
	}
	if !set[to] {
		set[to] = true
		v.sceneGraph[from] = append(v.sceneGraph[from], to)
	}
}

func (v *Validator) loc(loc source.Location) source.Location {
	if loc.File == "" {
		loc.File = v.filePath
	}
	return loc
}

func (v *Validator) error(code diag.Code, loc source.Location, format string, args ...any) {
	v.errs.Add(diag.NewError(code, v.loc(loc), fmt.Sprintf(format, args...)))
}

func (v *Validator) warning(code diag.Code, loc source.Location, format string, args ...any) {
	v.errs.Add(diag.NewWarning(code, v.loc(loc), fmt.Sprintf(format, args...)))
}

// errorWithSuggestions emits an unresolved-reference error with ranked
// did-you-mean candidates from the given name set.
func (v *Validator) errorWithSuggestions(code diag.Code, loc source.Location, msg, name string, candidates []string) {
	e := diag.NewError(code, v.loc(loc), msg)
	if sims := diag.Similar(name, candidates, v.suggest); len(sims) > 0 {
		e = e.WithSuggestions(sims...)
	}
	v.errs.Add(e)
}
