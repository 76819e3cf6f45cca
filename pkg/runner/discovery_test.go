package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/syntree/pkg/runner"
)

func writeTree(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "main.sy")
	if err := os.WriteFile(file, []byte("let x = 1;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{file},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != file {
		t.Fatalf("files = %v, want [%s]", files, file)
	}
}

func TestDiscoverDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"main.sy":       []byte("let x = 1;\n"),
		"lib/util.syn":  []byte("fn f() { }\n"),
		"lib/notes.txt": []byte("not source"),
		"build.go":      []byte("package main"),
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "lib/util.syn"),
		filepath.Join(dir, "main.sy"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"main.sy":        []byte("let x = 1;\n"),
		"gen/wire.sy":    []byte("let g = 1;\n"),
		"lib/skipme.sy":  []byte("let s = 1;\n"),
		"lib/checked.sy": []byte("let c = 1;\n"),
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"gen/**", "skipme.sy"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "lib/checked.sy"),
		filepath.Join(dir, "main.sy"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
}

func TestDiscoverIncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"main.sy":     []byte("let x = 1;\n"),
		"lib/util.sy": []byte("let u = 1;\n"),
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		IncludeGlobs: []string{"lib/**"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "lib/util.sy") {
		t.Fatalf("files = %v, want only lib/util.sy", files)
	}
}

func TestDiscoverSkipsHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"main.sy":           []byte("let x = 1;\n"),
		".hidden.sy":        []byte("let h = 1;\n"),
		".cache/cached.sy":  []byte("let c = 1;\n"),
		"visible/nested.sy": []byte("let n = 1;\n"),
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("files = %v, want 2 entries", files)
	}
}

func TestDiscoverSkipsBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	binary := append([]byte{0x00, 0x01, 0xff, 0xfe}, []byte("not really source")...)
	writeTree(t, dir, map[string][]byte{
		"main.sy":    []byte("let x = 1;\n"),
		"garbage.sy": binary,
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "main.sy") {
		t.Fatalf("files = %v, want only main.sy", files)
	}
}

func TestDiscoverSkipsVendored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"main.sy":           []byte("let x = 1;\n"),
		"vendor/dep.sy":     []byte("let v = 1;\n"),
		"node_modules/x.sy": []byte("let m = 1;\n"),
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		SkipVendored: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "main.sy") {
		t.Fatalf("files = %v, want only main.sy", files)
	}
}

func TestDiscoverDeduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "main.sy")
	if err := os.WriteFile(file, []byte("let x = 1;\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{file, ".", "main.sy"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("files = %v, want 1 entry", files)
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"does-not-exist.sy"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscoverCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
