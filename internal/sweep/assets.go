/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fulmenhq/docsweep/pkg/safeio"
)

var (
	attrAssetPattern   = regexp.MustCompile(`(?i)(?:src|href)=["']([^"']*\.(svg|png|jpg|jpeg|gif|ico|webp))["']`)
	importAssetPattern = regexp.MustCompile(`(?i)import\s+.*?\s+from\s+["']([^"']*\.(svg|png|jpg|jpeg|gif|ico|webp))["']`)
)

// ExtractAssetReferences returns the image paths referenced from text via
// src=/href= attributes or import ... from statements, with any leading "./"
// removed. Attribute matches come first, then imports.
func ExtractAssetReferences(text string) []string {
	var refs []string
	for _, re := range []*regexp.Regexp{attrAssetPattern, importAssetPattern} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			refs = append(refs, strings.TrimPrefix(m[1], "./"))
		}
	}
	return refs
}

// AssetScan selects the asset files to consider
type AssetScan struct {
	Roots      []string
	Extensions []string
	AllFiles   bool
}

// ScanAssets lists asset files relative to their asset root. Roots that do
// not exist are skipped.
func ScanAssets(ctx context.Context, root *safeio.Root, scan AssetScan, filter *pathFilter) ([]string, error) {
	set := newOrderedSet()
	for _, assetRoot := range scan.Roots {
		base := root.Join(assetRoot)
		info, err := os.Stat(base)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat asset root %s: %w", assetRoot, err)
		}
		if !info.IsDir() {
			continue
		}

		err = walkTree(ctx, base, func(p string, d fs.DirEntry, err error) error {
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
			if !scan.AllFiles && !hasExt(d.Name(), scan.Extensions) {
				return nil
			}
			assetRel, err := filepath.Rel(base, p)
			if err != nil {
				return err
			}
			set.Add(filepath.ToSlash(assetRel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan assets in %s: %w", assetRoot, err)
		}
	}
	return set.Items(), nil
}

// ReferenceScan selects the source files searched for asset references
type ReferenceScan struct {
	Dirs       []string
	ScanRoot   bool
	Extensions []string
}

// ScanReferences reads every matching source file under scan.Dirs, plus the
// project root itself (non-recursive) when ScanRoot is set, and returns the
// distinct asset references found. Paths matched by the filter's ignore
// matcher are skipped.
func ScanReferences(ctx context.Context, root *safeio.Root, scan ReferenceScan, filter *pathFilter) ([]string, error) {
	set := newOrderedSet()
	collect := func(p string) error {
		data, err := root.ReadFile(p)
		if err != nil {
			return err
		}
		for _, ref := range ExtractAssetReferences(string(data)) {
			set.Add(ref)
		}
		return nil
	}

	for _, dir := range scan.Dirs {
		err := walkTree(ctx, root.Join(dir), func(p string, d fs.DirEntry, err error) error {
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
				if filter.skipDir(rel, true) {
					return filepath.SkipDir
				}
				return nil
			}
			if filter.skipFile(rel, true) || matchExt(d.Name(), scan.Extensions) == "" {
				return nil
			}
			return collect(p)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan references in %s: %w", dir, err)
		}
	}

	if scan.ScanRoot {
		entries, err := os.ReadDir(root.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to read project root: %w", err)
		}
		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if e.IsDir() || filter.skipFile(e.Name(), true) || matchExt(e.Name(), scan.Extensions) == "" {
				continue
			}
			if err := collect(filepath.Join(root.Path(), e.Name())); err != nil {
				return nil, fmt.Errorf("failed to scan references in %s: %w", e.Name(), err)
			}
		}
	}
	return set.Items(), nil
}

// AssetUsage holds the rules of the unused-asset check
type AssetUsage struct {
	Implicit      []string
	StripPrefixes []string
}

// UnusedAssets reports every asset with no matching reference. An asset is
// used when a reference contains its path, or when its path contains the
// reference with StripPrefixes removed. Assets whose path contains an
// Implicit name are never reported.
func UnusedAssets(assets, refs []string, usage AssetUsage) []Issue {
	stripped := make([]string, len(refs))
	for i, ref := range refs {
		for _, prefix := range usage.StripPrefixes {
			ref = strings.Replace(ref, prefix, "", 1)
		}
		stripped[i] = ref
	}

	var issues []Issue
	for _, asset := range assets {
		if implicitlyUsed(asset, usage.Implicit) {
			continue
		}
		used := false
		for i, ref := range refs {
			if strings.Contains(ref, asset) || strings.Contains(asset, stripped[i]) {
				used = true
				break
			}
		}
		if !used {
			issues = append(issues, Issue{
				Kind:    KindUnusedAsset,
				File:    asset,
				Message: msgUnusedAsset,
			})
		}
	}
	return issues
}

func implicitlyUsed(asset string, names []string) bool {
	for _, name := range names {
		if strings.Contains(asset, name) {
			return true
		}
	}
	return false
}
