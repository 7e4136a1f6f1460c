/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fulmenhq/docsweep/pkg/ignore"
)

// pathFilter decides which root-relative paths a walk skips. Exclude globs
// apply to every walk; the ignore matcher only to the reference scan.
type pathFilter struct {
	exclude []string
	ignore  *ignore.Matcher
}

func newPathFilter(exclude []string, m *ignore.Matcher) (*pathFilter, error) {
	for _, pat := range exclude {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}
	return &pathFilter{exclude: exclude, ignore: m}, nil
}

func (f *pathFilter) excluded(rel string) bool {
	if f == nil {
		return false
	}
	rel = strings.TrimPrefix(rel, "./")
	for _, pat := range f.exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// skipDir applies exclude globs and, when withIgnore is set, ignore rules.
func (f *pathFilter) skipDir(rel string, withIgnore bool) bool {
	if f == nil || rel == "." || rel == "" {
		return false
	}
	if f.excluded(rel) {
		return true
	}
	return withIgnore && f.ignore.IsIgnoredDir(rel)
}

// skipFile applies exclude globs and, when withIgnore is set, ignore rules.
func (f *pathFilter) skipFile(rel string, withIgnore bool) bool {
	if f == nil {
		return false
	}
	if f.excluded(rel) {
		return true
	}
	return withIgnore && f.ignore.IsIgnored(rel)
}
