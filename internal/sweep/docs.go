/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docsweep/pkg/safeio"
)

// ScanDocs walks contentDir and returns the path of every documentation file
// relative to it, extension stripped and with forward slashes. A missing
// content directory is an I/O error.
func ScanDocs(ctx context.Context, root *safeio.Root, contentDir string, exts []string, filter *pathFilter) ([]string, error) {
	base := root.Join(contentDir)
	set := newOrderedSet()

	err := walkTree(ctx, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := root.Rel(p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if filter.skipDir(rel, false) {
				return filepath.SkipDir
			}
			return nil
		}
		if filter.skipFile(rel, false) {
			return nil
		}
		ext := matchExt(d.Name(), exts)
		if ext == "" {
			return nil
		}
		docRel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		set.Add(strings.TrimSuffix(filepath.ToSlash(docRel), ext))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan documentation in %s: %w", contentDir, err)
	}
	return set.Items(), nil
}

// matchExt returns the longest extension in exts that name ends with.
func matchExt(name string, exts []string) string {
	best := ""
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best
}

// hasExt reports whether name carries one of exts, ignoring case.
func hasExt(name string, exts []string) bool {
	e := strings.ToLower(path.Ext(name))
	for _, ext := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
