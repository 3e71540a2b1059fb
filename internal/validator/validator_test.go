package validator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/parser"
	"nmscript/internal/source"
)

// parseProgram builds an AST through the real front end so validator tests
// exercise the same shapes the driver produces.
func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.AddVirtual("test.nms", []byte(src))
	errs := diag.NewErrorList(0)
	prog := parser.ParseFile(file, errs)
	if errs.HasErrors() {
		t.Fatalf("test script does not parse: %v", errs.Items())
	}
	return prog
}

func validate(t *testing.T, src string, configure ...func(*Validator)) ValidationResult {
	t.Helper()
	v := New()
	for _, fn := range configure {
		fn(v)
	}
	return v.Validate(parseProgram(t, src))
}

func codesOf(result ValidationResult) []diag.Code {
	var out []diag.Code
	for _, e := range result.Errors.Items() {
		out = append(out, e.Code)
	}
	return out
}

func countCode(result ValidationResult, code diag.Code) int {
	n := 0
	for _, e := range result.Errors.Items() {
		if e.Code == code {
			n++
		}
	}
	return n
}

func firstWithCode(t *testing.T, result ValidationResult, code diag.Code) diag.ScriptError {
	t.Helper()
	for _, e := range result.Errors.Items() {
		if e.Code == code {
			return e
		}
	}
	t.Fatalf("no diagnostic with code %s in %v", code, result.Errors.Items())
	return diag.ScriptError{}
}

func TestEmptyProgramIsValid(t *testing.T) {
	v := New()
	result := v.Validate(&ast.Program{})
	if !result.IsValid {
		t.Errorf("empty program should be valid, got %v", result.Errors.Items())
	}
	if !result.Errors.Empty() {
		t.Errorf("empty program should produce no diagnostics, got %v", result.Errors.Items())
	}
}

func TestNilProgramIsValid(t *testing.T) {
	result := New().Validate(nil)
	if !result.IsValid || !result.Errors.Empty() {
		t.Errorf("nil program should validate cleanly, got %v", result.Errors.Items())
	}
}

func TestValidScript(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9

entry scene intro {
    show Hero at left
    say Hero "Ready?"
    set trust = 1
    if trust >= 1 {
        goto market
    } else {
        goto market
    }
}

scene market {
    say Hero "Made it."
}
`)
	if !result.IsValid {
		t.Errorf("expected valid script, got %v", result.Errors.Items())
	}
	if result.HasWarnings() {
		t.Errorf("expected no warnings, got %v", result.Errors.Warnings())
	}
}

func TestUndefinedCharacter(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9

entry scene intro {
    show Hero
    say Heros "typo here"
}
`)
	if result.IsValid {
		t.Fatal("expected an undefined-character error")
	}
	if n := countCode(result, diag.UndefinedCharacter); n != 1 {
		t.Fatalf("expected 1 UndefinedCharacter, got %d: %v", n, codesOf(result))
	}
	e := firstWithCode(t, result, diag.UndefinedCharacter)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "Hero" {
		t.Errorf("expected 'Hero' as best suggestion, got %v", e.Suggestions)
	}
}

func TestDuplicateCharacterDefinition(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9
character Hero "Impostor" #FF0000

entry scene intro {
    say Hero "Which one am I?"
}
`)
	if n := countCode(result, diag.DuplicateCharacterDefinition); n != 1 {
		t.Fatalf("expected exactly 1 duplicate error, got %d: %v", n, codesOf(result))
	}
	e := firstWithCode(t, result, diag.DuplicateCharacterDefinition)
	if len(e.Related) != 1 {
		t.Fatalf("expected one related note, got %v", e.Related)
	}
	if e.Related[0].Loc.Line != 2 {
		t.Errorf("related note should point at the first definition (line 2), got line %d", e.Related[0].Loc.Line)
	}
	if e.Loc.Line != 3 {
		t.Errorf("error should point at the second definition (line 3), got line %d", e.Loc.Line)
	}
}

func TestDuplicateSceneDefinition(t *testing.T) {
	result := validate(t, `
entry scene intro {
    say "one"
}
scene intro {
    say "two"
}
`)
	if n := countCode(result, diag.DuplicateSceneDefinition); n != 1 {
		t.Fatalf("expected exactly 1 duplicate scene error, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.DuplicateSceneDefinition)
	if len(e.Related) != 1 || e.Related[0].Loc.Line != 2 {
		t.Errorf("expected related note at the first definition, got %v", e.Related)
	}
}

func TestGotoUndefinedScene(t *testing.T) {
	v := New()
	result := v.Validate(parseProgram(t, `
entry scene intro {
    goto endng
}
scene ending {
    say "fin"
}
`))
	if n := countCode(result, diag.UndefinedScene); n != 1 {
		t.Fatalf("expected exactly 1 undefined scene error, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.UndefinedScene)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "ending" {
		t.Errorf("expected 'ending' suggestion, got %v", e.Suggestions)
	}
	// No edge for the unresolved goto: 'ending' stays unreachable.
	if n := countCode(result, diag.UnreachableScene); n != 1 {
		t.Errorf("expected 'ending' to be flagged unreachable, got %v", codesOf(result))
	}
}

func TestUndefinedVariable(t *testing.T) {
	result := validate(t, `
entry scene intro {
    set trust = 1
    if trst > 0 {
        say "hi"
    }
}
`)
	if n := countCode(result, diag.UndefinedVariable); n != 1 {
		t.Fatalf("expected 1 undefined variable error, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.UndefinedVariable)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "trust" {
		t.Errorf("expected 'trust' suggestion, got %v", e.Suggestions)
	}
}

func TestVariableDefinitionOrderIsLexical(t *testing.T) {
	// `set` introduces a variable for the whole run, including scenes that
	// appear before it in the file but run later.
	result := validate(t, `
entry scene intro {
    set gold = 10
    goto shop
}
scene shop {
    if gold >= 5 {
        say "deal"
    }
}
`)
	if n := countCode(result, diag.UndefinedVariable); n != 0 {
		t.Errorf("expected no undefined variable errors, got %v", codesOf(result))
	}
}

func TestUnusedSymbols(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9
character Extra "Nobody" #888888

entry scene intro {
    say Hero "alone here"
    set mood = 3
}
`)
	if !result.IsValid {
		t.Fatalf("unused symbols must not invalidate, got %v", result.Errors.Errors())
	}
	if n := countCode(result, diag.UnusedCharacter); n != 1 {
		t.Errorf("expected 1 unused character warning, got %v", codesOf(result))
	}
	if n := countCode(result, diag.UnusedVariable); n != 1 {
		t.Errorf("expected 1 unused variable warning, got %v", codesOf(result))
	}
	// The start scene is never a goto target and must not be reported.
	if n := countCode(result, diag.UnusedScene); n != 0 {
		t.Errorf("start scene must be exempt from unused reporting, got %v", codesOf(result))
	}
}

func TestUnusedReportingDisabled(t *testing.T) {
	result := validate(t, `
character Extra "Nobody" #888888

entry scene intro {
    set mood = 3
}
`, func(v *Validator) { v.SetReportUnused(false) })

	for _, code := range []diag.Code{diag.UnusedCharacter, diag.UnusedScene, diag.UnusedVariable} {
		if n := countCode(result, code); n != 0 {
			t.Errorf("expected no %s with reporting disabled, got %d", code, n)
		}
	}
}

func TestEmptyChoiceBlock(t *testing.T) {
	result := validate(t, `
entry scene intro {
    choice {
    }
}
`)
	if n := countCode(result, diag.EmptyChoiceBlock); n != 1 {
		t.Fatalf("expected 1 empty choice error, got %v", codesOf(result))
	}
	if result.IsValid {
		t.Error("empty choice block must invalidate the script")
	}
}

func TestInvalidTransitionType(t *testing.T) {
	result := validate(t, `
entry scene intro {
    transition fde 0.5
}
`)
	if n := countCode(result, diag.InvalidTransitionType); n != 1 {
		t.Fatalf("expected 1 invalid transition error, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.InvalidTransitionType)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "fade" {
		t.Errorf("expected 'fade' suggestion, got %v", e.Suggestions)
	}
}

func TestUnknownFunction(t *testing.T) {
	result := validate(t, `
entry scene intro {
    set x = randm(1, 2)
}
`)
	if n := countCode(result, diag.UnknownFunction); n != 1 {
		t.Fatalf("expected 1 unknown function error, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.UnknownFunction)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "random" {
		t.Errorf("expected 'random' suggestion, got %v", e.Suggestions)
	}
}

func TestFunctionArity(t *testing.T) {
	result := validate(t, `
entry scene intro {
    set x = min(1)
}
`)
	if n := countCode(result, diag.UnknownFunction); n != 1 {
		t.Errorf("expected an arity error for min(1), got %v", codesOf(result))
	}
}

func TestUnknownCharacterProperty(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9

entry scene intro {
    show Hero
    if Hero.visable {
        say Hero "hi"
    }
}
`)
	if !result.IsValid {
		t.Fatalf("unknown property must stay a warning, got %v", result.Errors.Errors())
	}
	if n := countCode(result, diag.UnknownProperty); n != 1 {
		t.Fatalf("expected 1 unknown property warning, got %v", codesOf(result))
	}
	e := firstWithCode(t, result, diag.UnknownProperty)
	if len(e.Suggestions) == 0 || e.Suggestions[0] != "visible" {
		t.Errorf("expected 'visible' suggestion, got %v", e.Suggestions)
	}
}

func TestVisitedMarksSceneUsed(t *testing.T) {
	result := validate(t, `
entry scene intro {
    if visited("bonus") {
        say "again?"
    }
    goto bonus
}
scene bonus {
    say "secret"
}
`)
	if !result.IsValid {
		t.Fatalf("expected valid script, got %v", result.Errors.Errors())
	}
	if n := countCode(result, diag.UnusedScene); n != 0 {
		t.Errorf("visited() must count as a use, got %v", codesOf(result))
	}
}

func TestVisitedUndefinedScene(t *testing.T) {
	result := validate(t, `
entry scene intro {
    if visited("bonus") {
        say "hm"
    }
}
`)
	if n := countCode(result, diag.UndefinedScene); n != 1 {
		t.Errorf("expected undefined scene error from visited(), got %v", codesOf(result))
	}
}

func TestUsedCharacterWithBrokenGoto(t *testing.T) {
	result := validate(t, `
character Hero "Alex" #4A90D9

entry scene intro {
    say Hero "hi"
    goto missing
}
`)
	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if n := countCode(result, diag.UndefinedScene); n != 1 {
		t.Errorf("expected exactly 1 undefined scene error, got %v", codesOf(result))
	}
	if n := countCode(result, diag.DuplicateCharacterDefinition); n != 0 {
		t.Errorf("expected no duplicate errors, got %v", codesOf(result))
	}
	// Hero is referenced by the say and must not be reported unused.
	if n := countCode(result, diag.UnusedCharacter); n != 0 {
		t.Errorf("Hero was used, got %v", codesOf(result))
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	prog := parseProgram(t, `
character Hero "Alex" #4A90D9
character Hero "Dup" #FF0000

entry scene intro {
    say Heros "typo"
    goto missing
}
scene orphan {
}
`)
	v := New()
	first := v.Validate(prog)
	second := v.Validate(prog)

	if diff := cmp.Diff(first.Errors.Items(), second.Errors.Items()); diff != "" {
		t.Errorf("repeated validation diverged (-first +second):\n%s", diff)
	}
	if first.IsValid != second.IsValid {
		t.Errorf("IsValid diverged: %v vs %v", first.IsValid, second.IsValid)
	}
}

func TestMaxDiagnosticsBound(t *testing.T) {
	result := validate(t, `
entry scene intro {
    say A "x"
    say B "x"
    say C "x"
    say D "x"
}
`, func(v *Validator) { v.SetMaxDiagnostics(2) })

	if result.Errors.Len() != 2 {
		t.Errorf("expected diagnostics capped at 2, got %d", result.Errors.Len())
	}
}

func TestMaxDiagnosticsBeyondLimitDoesNotPanic(t *testing.T) {
	result := validate(t, `
entry scene intro {
    say Ghost "boo"
}
`, func(v *Validator) { v.SetMaxDiagnostics(100000) })

	if countCode(result, diag.UndefinedCharacter) != 1 {
		t.Errorf("expected the undefined character to be reported, got %v", codesOf(result))
	}
}

func TestFilePathFillsBareLocations(t *testing.T) {
	// Programmatic ASTs carry no file in their locations; the configured
	// path fills the gap. Locations that already name a file keep it.
	prog := &ast.Program{
		Scenes: []ast.SceneDecl{{
			Name:  "intro",
			Entry: true,
			Body: []ast.Stmt{
				ast.SayStmt{Speaker: "Ghost", Text: "boo", Loc: source.Location{Line: 3, Col: 5}},
			},
			Loc: source.Location{Line: 2, Col: 1},
		}},
	}
	v := New()
	v.SetFilePath("chapters/one.nms")
	result := v.Validate(prog)

	e := firstWithCode(t, result, diag.UndefinedCharacter)
	if e.Loc.File != "chapters/one.nms" {
		t.Errorf("expected configured file path in location, got %q", e.Loc.File)
	}
}
