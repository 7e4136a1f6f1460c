// Package ignore provides gitignore-based path filtering using go-git
package ignore

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFileName is the project-level ignore file read in addition to .gitignore
const IgnoreFileName = ".docsweepignore"

// DefaultPatterns are always ignored, with or without project rules.
// Dependency and VCS trees never hold references to the site's own assets.
var DefaultPatterns = []string{".git/", "node_modules/"}

// Matcher answers ignore questions for paths under a single project root
type Matcher struct {
	root    string
	matcher gitignore.Matcher
}

// NewBaseMatcher creates a matcher that only knows DefaultPatterns
func NewBaseMatcher(root string) (*Matcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Matcher{root: abs, matcher: gitignore.NewMatcher(defaultPatterns())}, nil
}

// NewMatcher creates a matcher with layered ignore sources:
// 1. built-in DefaultPatterns
// 2. .gitignore files found under root (plus .git/info/exclude)
// 3. .docsweepignore at root
func NewMatcher(root string) (*Matcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	patterns := defaultPatterns()

	// ReadPatterns walks the tree for nested .gitignore files; a repo
	// without any simply yields nothing.
	if gitPatterns, err := gitignore.ReadPatterns(osfs.New(abs), nil); err == nil {
		patterns = append(patterns, gitPatterns...)
	}

	lines, err := readPatternFile(filepath.Join(abs, IgnoreFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for _, line := range lines {
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &Matcher{root: abs, matcher: gitignore.NewMatcher(patterns)}, nil
}

func defaultPatterns() []gitignore.Pattern {
	patterns := make([]gitignore.Pattern, 0, len(DefaultPatterns))
	for _, p := range DefaultPatterns {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	return patterns
}

func readPatternFile(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- fixed file name under the project root
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// IsIgnored reports whether the file at path is ignored
func (m *Matcher) IsIgnored(path string) bool {
	return m.match(path, false)
}

// IsIgnoredDir reports whether the directory at path (and thus its subtree) is ignored
func (m *Matcher) IsIgnoredDir(path string) bool {
	return m.match(path, true)
}

func (m *Matcher) match(path string, isDir bool) bool {
	if m == nil {
		return false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, path)
	}
	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		return false
	}
	parts := splitPath(filepath.ToSlash(rel))
	if len(parts) == 0 {
		return false
	}
	return m.matcher.Match(parts, isDir)
}

// splitPath converts a slash-separated path into components for go-git matching
func splitPath(path string) []string {
	if path == "" || path == "." || strings.HasPrefix(path, "../") || path == ".." {
		return nil
	}
	raw := strings.Split(strings.TrimPrefix(path, "/"), "/")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" && p != "." {
			out = append(out, p)
		}
	}
	return out
}
