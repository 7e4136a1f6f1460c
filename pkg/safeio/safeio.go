package safeio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrOutsideRoot is returned when a path resolves outside the project root.
var ErrOutsideRoot = errors.New("path is outside project root")

// CleanUserPath cleans a user-provided path and rejects traversal attempts.
// Returns paths with forward slashes for cross-platform consistency.
func CleanUserPath(p string) (string, error) {
	c := filepath.Clean(p)
	for _, seg := range strings.Split(filepath.ToSlash(c), "/") {
		if seg == ".." {
			return "", errors.New("path traversal detected")
		}
	}
	return filepath.ToSlash(c), nil
}

// Root confines reads to a single project directory. Every file docsweep
// reads (navigation config, docs, sources) goes through a Root.
type Root struct {
	abs string
}

// NewRoot resolves dir to an absolute path. The directory must exist.
func NewRoot(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", dir)
	}
	return &Root{abs: abs}, nil
}

// Path returns the absolute root directory.
func (r *Root) Path() string { return r.abs }

// Join resolves a slash-separated, root-relative path to an absolute one.
func (r *Root) Join(rel string) string {
	return filepath.Join(r.abs, filepath.FromSlash(rel))
}

// Rel returns the slash-separated path of p relative to the root.
func (r *Root) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.abs, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", p, ErrOutsideRoot)
	}
	return filepath.ToSlash(rel), nil
}

// ReadFile reads a file only if it is contained within the root.
func (r *Root) ReadFile(p string) ([]byte, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.abs, p)
	}
	if _, err := r.Rel(p); err != nil {
		return nil, err
	}
	// #nosec G304 -- containment verified above
	return os.ReadFile(p)
}

// Exists reports whether a regular file exists at the root-relative path.
// Errors other than "not exist" are returned so callers do not mistake an
// unreadable directory for a missing file.
func (r *Root) Exists(rel string) (bool, error) {
	info, err := os.Stat(r.Join(rel))
	if err == nil {
		return !info.IsDir(), nil
	}
	// ENOTDIR: a path component is a regular file
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, err
}

// WriteReportFile writes data with owner-only permissions, creating or
// truncating the file.
func WriteReportFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
