package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"nmscript/internal/diag"
	"nmscript/internal/source"
)

func sampleList() *diag.ErrorList {
	list := diag.NewErrorList(0)
	list.Add(diag.NewError(diag.UndefinedCharacter,
		source.Location{File: "intro.nms", Line: 2, Col: 9},
		"character 'Villian' is not defined").
		WithSuggestions("Villain"))
	list.Add(diag.NewWarning(diag.UnusedVariable,
		source.Location{File: "intro.nms", Line: 3, Col: 5},
		"variable 'gold' is set but never read"))
	return list
}

func sampleFileSet() *source.FileSet {
	fs := source.NewFileSet()
	fs.AddVirtual("intro.nms", []byte("scene intro {\n    say Villian \"hi\"\n    set gold = 1\n}\n"))
	return fs
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleList(), sampleFileSet(), DefaultPrettyOpts())
	out := buf.String()

	for _, want := range []string{
		"intro.nms:2:9: error[E3001]: character 'Villian' is not defined",
		"did you mean 'Villain'?",
		" > 2 |     say Villian \"hi\"",
		"intro.nms:3:5: warning[E3202]: variable 'gold' is set but never read",
		"1 error generated",
		"1 warning generated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyNoWarnings(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultPrettyOpts()
	opts.NoWarnings = true
	Pretty(&buf, sampleList(), sampleFileSet(), opts)
	out := buf.String()

	if strings.Contains(out, "warning") {
		t.Errorf("expected warnings suppressed:\n%s", out)
	}
	if !strings.Contains(out, "error[E3001]") {
		t.Errorf("errors must survive --no-warnings:\n%s", out)
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleList(), nil, DefaultPrettyOpts())
	out := buf.String()

	if strings.Contains(out, " > ") {
		t.Errorf("expected no excerpts without a file set:\n%s", out)
	}
	if !strings.Contains(out, "error[E3001]") {
		t.Errorf("diagnostic lines must still render:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	opts := JSONOpts{IncludeSuggestions: true, IncludeRelated: true}
	if err := JSON(&buf, sampleList(), opts); err != nil {
		t.Fatal(err)
	}

	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Errors != 1 || out.Warnings != 1 {
		t.Errorf("counts = %d errors, %d warnings", out.Errors, out.Warnings)
	}
	if len(out.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Code != "E3001" || first.Severity != "error" {
		t.Errorf("unexpected first diagnostic: %+v", first)
	}
	if first.Location.File != "intro.nms" || first.Location.Line != 2 {
		t.Errorf("unexpected location: %+v", first.Location)
	}
	if len(first.Suggestions) != 1 || first.Suggestions[0] != "Villain" {
		t.Errorf("unexpected suggestions: %v", first.Suggestions)
	}
}

func TestJSONNoSuggestions(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleList(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Diagnostics[0].Suggestions) != 0 {
		t.Errorf("expected suggestions omitted, got %v", out.Diagnostics[0].Suggestions)
	}
}

func TestSarif(t *testing.T) {
	var buf bytes.Buffer
	meta := SarifMeta{ToolName: "nmscript", ToolVersion: "0.1.0"}
	if err := Sarif(&buf, sampleList(), meta); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Errorf("version = %q", doc.Version)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Tool.Driver.Name != "nmscript" {
		t.Fatalf("unexpected runs: %+v", doc.Runs)
	}
	results := doc.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].RuleID != "E3001" || results[0].Level != "error" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[1].Level != "warning" {
		t.Errorf("unexpected second result: %+v", results[1])
	}
}
