/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"

	"github.com/fulmenhq/docsweep/pkg/safeio"
)

// ErrConfigNotFound is returned when the navigation config file is missing.
// It is the only fatal precondition of a sweep.
var ErrConfigNotFound = errors.New("navigation config not found")

var linkPattern = regexp.MustCompile(`link:\s*["']([^"']+)["']`)

// ExtractLinks returns every distinct `link: "..."` value in text, in order
// of first appearance.
func ExtractLinks(text string) []string {
	set := newOrderedSet()
	for _, m := range linkPattern.FindAllStringSubmatch(text, -1) {
		set.Add(m[1])
	}
	return set.Items()
}

// Navigation is the output of the reference extraction phase
type Navigation struct {
	Links  []string
	Broken []Issue
}

// ReadNavigation reads the navigation config, extracts declared links and
// checks each one against <contentDir>/<link><ext> for the given extensions.
// A link with no matching file yields exactly one broken-link issue.
func ReadNavigation(ctx context.Context, root *safeio.Root, navFile, contentDir string, exts []string) (*Navigation, error) {
	data, err := root.ReadFile(navFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, navFile)
		}
		return nil, fmt.Errorf("failed to read navigation config %s: %w", navFile, err)
	}

	nav := &Navigation{Links: ExtractLinks(string(data))}
	for _, link := range nav.Links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := docExists(root, contentDir, link, exts)
		if err != nil {
			return nil, err
		}
		if !found {
			nav.Broken = append(nav.Broken, Issue{
				Kind:    KindBrokenLink,
				Link:    link,
				Message: msgBrokenLink,
			})
		}
	}
	return nav, nil
}

func docExists(root *safeio.Root, contentDir, link string, exts []string) (bool, error) {
	for _, ext := range exts {
		ok, err := root.Exists(path.Join(contentDir, link+ext))
		if err != nil {
			return false, fmt.Errorf("failed to check %s%s: %w", link, ext, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
