package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"advent/internal/config"
	"advent/internal/dispatch"
	"advent/internal/fs"
)

func TestCreateLayout_CreatesAllFiles(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewRealFS()
	cfg := config.Default()

	result, err := CreateLayout(fsys, root, cfg)
	if err != nil {
		t.Fatalf("CreateLayout failed: %v", err)
	}

	want := map[string]string{
		"src/main.rs":             DispatchTemplate,
		"src/helpers.rs":          HarnessTemplate,
		"src/template.rs":         DayTemplate,
		"src/day_1.rs":            DayTemplate,
		"Cargo.toml":              ManifestTemplate,
		"advent.yaml":             ConfigTemplate,
		"input/day_1.txt":         "",
		"input/day_1_example.txt": "",
		"input/empty.txt":         "",
	}

	for rel, content := range want {
		got, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			t.Errorf("%s not created: %v", rel, err)
			continue
		}
		if string(got) != content {
			t.Errorf("%s content mismatch:\ngot:\n%s\nwant:\n%s", rel, string(got), content)
		}
	}

	if len(result.Created) != len(want) {
		t.Errorf("Created = %v, want %d entries", result.Created, len(want))
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", result.Skipped)
	}
}

func TestCreateLayout_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewRealFS()
	cfg := config.Default()

	// Pre-create a dispatch file with more days registered and a
	// non-empty puzzle input.
	custom := "advent! {\n    day 1\n    day 2\n    day 3\n}\n"
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatalf("failed to create src dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src/main.rs"), []byte(custom), 0644); err != nil {
		t.Fatalf("failed to write dispatch: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "input"), 0755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}
	puzzle := "12\n38\n"
	if err := os.WriteFile(filepath.Join(root, "input/day_1.txt"), []byte(puzzle), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	result, err := CreateLayout(fsys, root, cfg)
	if err != nil {
		t.Fatalf("CreateLayout failed: %v", err)
	}

	gotDispatch, err := os.ReadFile(filepath.Join(root, "src/main.rs"))
	if err != nil {
		t.Fatalf("failed to read dispatch: %v", err)
	}
	if string(gotDispatch) != custom {
		t.Errorf("dispatch was overwritten: got %q, want %q", string(gotDispatch), custom)
	}

	gotInput, err := os.ReadFile(filepath.Join(root, "input/day_1.txt"))
	if err != nil {
		t.Fatalf("failed to read input: %v", err)
	}
	if string(gotInput) != puzzle {
		t.Errorf("input was overwritten: got %q, want %q", string(gotInput), puzzle)
	}

	if len(result.Skipped) != 2 {
		t.Errorf("Skipped = %v, want 2 entries", result.Skipped)
	}
	skipped := map[string]bool{}
	for _, rel := range result.Skipped {
		skipped[rel] = true
	}
	if !skipped["src/main.rs"] || !skipped["input/day_1.txt"] {
		t.Errorf("Skipped = %v, want src/main.rs and input/day_1.txt", result.Skipped)
	}
}

func TestCreateLayout_CustomLayout(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewRealFS()
	cfg := config.Default()
	cfg.InputDir = "puzzles"
	cfg.SourceDir = "solutions"
	cfg.Dispatch = "solutions/main.rs"
	cfg.Template = "solutions/template.rs"

	if _, err := CreateLayout(fsys, root, cfg); err != nil {
		t.Fatalf("CreateLayout failed: %v", err)
	}

	for _, rel := range []string{
		"solutions/main.rs",
		"solutions/helpers.rs",
		"solutions/template.rs",
		"solutions/day_1.rs",
		"puzzles/day_1.txt",
		"puzzles/day_1_example.txt",
		"puzzles/empty.txt",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("%s not created: %v", rel, err)
		}
	}
}

func TestCreateLayout_DispatchRegistersDayOne(t *testing.T) {
	days := dispatch.Days(DispatchTemplate)
	if len(days) != 1 || days[0] != 1 {
		t.Errorf("dispatch template registers days %v, want [1]", days)
	}
}

func TestDayTemplate_HasBothProblems(t *testing.T) {
	for _, fragment := range []string{"pub fn problem_1", "pub fn problem_2", "/**** Problem 2 ******/"} {
		if !strings.Contains(DayTemplate, fragment) {
			t.Errorf("day template missing %q", fragment)
		}
	}
}
