package diag

import (
	"testing"

	"nmscript/internal/source"
)

func at(line, col uint32) source.Location {
	return source.Location{File: "test.nms", Line: line, Col: col}
}

func TestErrorListCounts(t *testing.T) {
	list := NewErrorList(0)
	if !list.Empty() {
		t.Error("expected fresh list to be empty")
	}

	list.Add(NewError(UndefinedCharacter, at(1, 1), "undefined character 'Bob'"))
	list.Add(NewWarning(UnusedVariable, at(2, 1), "variable 'gold' is never used"))
	list.Add(NewError(UndefinedScene, at(3, 1), "undefined scene 'ending'"))

	if list.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", list.Len())
	}
	if got := list.ErrorCount(); got != 2 {
		t.Errorf("expected 2 errors, got %d", got)
	}
	if got := list.WarningCount(); got != 1 {
		t.Errorf("expected 1 warning, got %d", got)
	}
	if !list.HasErrors() || !list.HasWarnings() {
		t.Error("expected HasErrors and HasWarnings to be true")
	}
}

func TestErrorListLimit(t *testing.T) {
	list := NewErrorList(2)
	for i := uint32(1); i <= 5; i++ {
		list.Add(NewError(UndefinedCharacter, at(i, 1), "x"))
	}
	if list.Len() != 2 {
		t.Errorf("expected limit to cap list at 2, got %d", list.Len())
	}
	if list.Add(NewError(UndefinedCharacter, at(9, 1), "x")) {
		t.Error("expected Add to report dropped diagnostic")
	}
}

func TestErrorListClampsOversizedLimit(t *testing.T) {
	list := NewErrorList(100000)
	if !list.Add(NewError(UndefinedCharacter, at(1, 1), "x")) {
		t.Error("expected Add to succeed under a clamped limit")
	}
	if list.Len() != 1 {
		t.Errorf("expected 1 diagnostic, got %d", list.Len())
	}
}

func TestErrorListSort(t *testing.T) {
	list := NewErrorList(0)
	list.Add(NewWarning(UnusedScene, at(5, 1), "later"))
	list.Add(NewError(UndefinedScene, at(2, 8), "mid"))
	list.Add(NewError(UndefinedCharacter, at(2, 3), "early"))
	// Same position: error must sort before warning.
	list.Add(NewWarning(DeadCode, at(2, 3), "early warning"))

	list.Sort()

	items := list.Items()
	if items[0].Code != UndefinedCharacter {
		t.Errorf("expected error at 2:3 first, got %s", items[0].Code)
	}
	if items[1].Code != DeadCode {
		t.Errorf("expected warning at 2:3 second, got %s", items[1].Code)
	}
	if items[2].Code != UndefinedScene {
		t.Errorf("expected 2:8 third, got %s", items[2].Code)
	}
	if items[3].Code != UnusedScene {
		t.Errorf("expected 5:1 last, got %s", items[3].Code)
	}
}

func TestErrorListMerge(t *testing.T) {
	a := NewErrorList(2)
	a.Add(NewError(UndefinedCharacter, at(1, 1), "one"))
	a.Add(NewError(UndefinedScene, at(2, 1), "two"))

	b := NewErrorList(2)
	b.Add(NewWarning(UnusedVariable, at(3, 1), "three"))

	// Merge must raise the limit past a's cap.
	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("expected 3 diagnostics after merge, got %d", a.Len())
	}
}

func TestScriptErrorFormat(t *testing.T) {
	e := NewError(UndefinedCharacter, source.Location{File: "intro.nms", Line: 15, Col: 10}, "character 'Villian' is not defined")
	want := "intro.nms:15:10: error[E3001]: character 'Villian' is not defined"
	if got := e.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestWithRelatedDoesNotMutateOriginal(t *testing.T) {
	base := NewError(DuplicateSceneDefinition, at(4, 1), "duplicate scene 'intro'")
	withNote := base.WithRelated(at(1, 1), "first defined here")

	if len(base.Related) != 0 {
		t.Error("expected base error to stay without related notes")
	}
	if len(withNote.Related) != 1 || withNote.Related[0].Msg != "first defined here" {
		t.Errorf("unexpected related notes: %v", withNote.Related)
	}
}
