/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// walkTree walks dir in lexical order like filepath.WalkDir, but descends
// into symlinked directories and reports symlinked files as the files they
// point to. Paths under a symlink keep their logical form. A directory whose
// real path is already an ancestor in the walk is skipped, so link cycles
// terminate. Dangling symlinks are skipped.
func walkTree(ctx context.Context, dir string, fn fs.WalkDirFunc) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fn(dir, nil, err)
	}
	return walkFollow(ctx, dir, fs.FileInfoToDirEntry(info), fn, map[string]struct{}{})
}

func walkFollow(ctx context.Context, p string, d fs.DirEntry, fn fs.WalkDirFunc, ancestors map[string]struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(p, d, nil); err != nil {
		if d.IsDir() && errors.Is(err, filepath.SkipDir) {
			return nil
		}
		return err
	}
	if !d.IsDir() {
		return nil
	}

	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return fn(p, d, err)
	}
	if _, loop := ancestors[resolved]; loop {
		return nil
	}
	ancestors[resolved] = struct{}{}
	defer delete(ancestors, resolved)

	entries, err := os.ReadDir(p)
	if err != nil {
		return fn(p, d, err)
	}
	for _, e := range entries {
		child := filepath.Join(p, e.Name())
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(child)
			if err != nil {
				continue
			}
			e = fs.FileInfoToDirEntry(info)
		}
		if err := walkFollow(ctx, child, e, fn, ancestors); err != nil {
			return err
		}
	}
	return nil
}
