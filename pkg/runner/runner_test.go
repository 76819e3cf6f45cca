package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/analysis/rules"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

func newTestRunner() *runner.Runner {
	reg := analysis.NewRegistry()
	rules.RegisterAll(reg)
	return runner.New(analysis.NewPipeline(analysis.NewEngine(reg)))
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"clean.sy": []byte("let x = 1;\n"),
		"dirty.sy": []byte("let y = 2; \n"),
		"empty.sy": []byte("if x { }\n"),
	})

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.Default(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 3 {
		t.Errorf("FilesDiscovered = %d, want 3", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesWithIssues != 2 {
		t.Errorf("FilesWithIssues = %d, want 2", result.Stats.FilesWithIssues)
	}
	if !result.HasIssues() {
		t.Error("HasIssues() = false, want true")
	}
	if result.HasFailures() {
		t.Error("HasFailures() = true, want false (warnings only)")
	}
}

func TestRunnerDeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string][]byte{}
	for _, name := range []string{"e.sy", "a.sy", "c.sy", "b.sy", "d.sy"} {
		files[name] = []byte("let x = 1;\n")
	}
	writeTree(t, dir, files)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.Default(),
		Jobs:       3,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	if !sort.StringsAreSorted(paths) {
		t.Errorf("outcomes not sorted by path: %v", paths)
	}
}

func TestRunnerCountsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"broken.sy": []byte("let x = ;\n"),
	})

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.Default(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true for syntax errors")
	}
	if result.Stats.DiagnosticsBySeverity["error"] == 0 {
		t.Error("no error-severity diagnostics counted")
	}
}

func TestRunnerFixWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"dirty.sy": []byte("let x = 1;  \n"),
	})

	cfg := config.Default()
	cfg.Fix = true

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesModified != 1 {
		t.Errorf("FilesModified = %d, want 1", result.Stats.FilesModified)
	}
	if result.Stats.DiagnosticsFixed == 0 {
		t.Error("DiagnosticsFixed = 0, want > 0")
	}

	content, err := os.ReadFile(filepath.Join(dir, "dirty.sy"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "let x = 1;\n" {
		t.Errorf("content = %q after fix", content)
	}
}

func TestRunnerEmptyDirectory(t *testing.T) {
	t.Parallel()

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
		Config:     config.Default(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("expected empty result, got %+v", result.Stats)
	}
}
