package danger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	input := `{
  "fails": [{"message": "Missing tests", "file": "main.go", "line": 12}],
  "warnings": [],
  "messages": [{"message": "Nice <code>refactor</code>"}],
  "markdowns": ["Coverage: 80%"]
}`
	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Results{
		Fails:     []Violation{{Message: "Missing tests", File: "main.go", Line: 12}},
		Warnings:  []Violation{},
		Messages:  []Violation{{Message: "Nice <code>refactor</code>"}},
		Markdowns: []string{"Coverage: 80%"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MarkdownObjects(t *testing.T) {
	input := `{"markdowns": [{"message": "## Report"}, "plain"]}`
	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := []string{"## Report", "plain"}
	if diff := cmp.Diff(want, got.Markdowns); diff != "" {
		t.Errorf("Markdowns mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "   ", "empty input"},
		{"invalid json", "{", "parsing results"},
		{"bad markdown", `{"markdowns": [42]}`, "parsing markdowns[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "danger-results.json")
	if err := os.WriteFile(path, []byte(`{"warnings":[{"message":"Big PR"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(got.Warnings) != 1 || got.Warnings[0].Message != "Big PR" {
		t.Errorf("Warnings = %+v", got.Warnings)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "opening results file") {
		t.Errorf("error = %q", err)
	}
}
