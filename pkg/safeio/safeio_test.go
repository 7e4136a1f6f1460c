package safeio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanUserPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{name: "simple path", input: "file.txt", expected: "file.txt"},
		{name: "relative path", input: "./subdir/file.txt", expected: "subdir/file.txt"},
		{name: "absolute path", input: "/tmp/file.txt", expected: "/tmp/file.txt"},
		{name: "path with traversal", input: "../../../etc/passwd", hasError: true},
		{name: "path with traversal in middle", input: "valid/../../../etc/passwd", hasError: true},
		{name: "double dots inside a name", input: "report..html", expected: "report..html"},
		{name: "empty path", input: "", expected: "."},
		{name: "parent directory", input: "..", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CleanUserPath(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("CleanUserPath(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanUserPath(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("CleanUserPath(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewRoot(t *testing.T) {
	dir := t.TempDir()
	root, err := NewRoot(dir)
	if err != nil {
		t.Fatalf("NewRoot failed: %v", err)
	}
	if !filepath.IsAbs(root.Path()) {
		t.Errorf("root path not absolute: %s", root.Path())
	}

	if _, err := NewRoot(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing root")
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRoot(file); err == nil {
		t.Error("expected error for file root")
	}
}

func TestRoot_Rel(t *testing.T) {
	dir := t.TempDir()
	root, err := NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}

	rel, err := root.Rel(filepath.Join(dir, "src", "content", "docs", "a.md"))
	if err != nil {
		t.Fatalf("Rel failed: %v", err)
	}
	if rel != "src/content/docs/a.md" {
		t.Errorf("Rel = %q", rel)
	}

	if _, err := root.Rel(filepath.Join(dir, "..", "elsewhere")); !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("sibling path: expected ErrOutsideRoot, got %v", err)
	}
	if _, err := root.Rel(filepath.Dir(dir)); !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("expected ErrOutsideRoot, got %v", err)
	}
}

func TestRoot_ReadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "astro.config.mjs"), []byte("link: 'a'"), 0o644); err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}

	data, err := root.ReadFile("astro.config.mjs")
	if err != nil {
		t.Fatalf("relative read failed: %v", err)
	}
	if string(data) != "link: 'a'" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := root.ReadFile(filepath.Join(dir, "astro.config.mjs")); err != nil {
		t.Errorf("absolute read inside root failed: %v", err)
	}
	if _, err := root.ReadFile(outside); !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("expected ErrOutsideRoot for outside read, got %v", err)
	}
	if _, err := root.ReadFile("missing.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRoot_Exists(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "docs", "react"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "docs", "react", "routing.md"), []byte("#"), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := NewRoot(dir)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := root.Exists("docs/react/routing.md")
	if err != nil || !ok {
		t.Errorf("Exists(file) = %v, %v", ok, err)
	}
	ok, err = root.Exists("docs/react")
	if err != nil || ok {
		t.Errorf("Exists(dir) = %v, %v; directories are not files", ok, err)
	}
	ok, err = root.Exists("docs/react/rooting.md")
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v", ok, err)
	}
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteReportFile(path, []byte("{}")); err != nil {
		t.Fatalf("WriteReportFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}
