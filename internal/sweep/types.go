/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"time"
)

// Kind identifies one of the four finding categories
type Kind string

const (
	KindDeadFile     Kind = "dead-file"
	KindBrokenLink   Kind = "broken-link"
	KindPossibleTypo Kind = "possible-typo"
	KindUnusedAsset  Kind = "unused-asset"
)

// Kinds lists every category in report order.
var Kinds = []Kind{KindDeadFile, KindBrokenLink, KindPossibleTypo, KindUnusedAsset}

// Issue is a single finding. Which fields are set depends on Kind:
// File for dead files and unused assets, Link for broken links, and
// Referenced/Existing/Similarity for possible typos.
type Issue struct {
	Kind       Kind   `json:"kind"`
	File       string `json:"file,omitempty"`
	Link       string `json:"link,omitempty"`
	Referenced string `json:"referenced,omitempty"`
	Existing   string `json:"existing,omitempty"`
	Similarity int    `json:"similarity,omitempty"` // percent
	Message    string `json:"message"`
}

// Subject is the path the issue is about
func (i Issue) Subject() string {
	switch i.Kind {
	case KindBrokenLink:
		return i.Link
	case KindPossibleTypo:
		return i.Referenced
	default:
		return i.File
	}
}

// Findings holds the issues of one run, one ordered slice per category
type Findings struct {
	DeadFiles     []Issue `json:"dead_files"`
	BrokenLinks   []Issue `json:"broken_links"`
	PossibleTypos []Issue `json:"possible_typos"`
	UnusedAssets  []Issue `json:"unused_assets"`
}

// ByKind returns the slice for a category
func (f Findings) ByKind(k Kind) []Issue {
	switch k {
	case KindDeadFile:
		return f.DeadFiles
	case KindBrokenLink:
		return f.BrokenLinks
	case KindPossibleTypo:
		return f.PossibleTypos
	case KindUnusedAsset:
		return f.UnusedAssets
	}
	return nil
}

// Total returns the number of issues across all categories
func (f Findings) Total() int {
	return len(f.DeadFiles) + len(f.BrokenLinks) + len(f.PossibleTypos) + len(f.UnusedAssets)
}

// Empty reports whether the run found nothing
func (f Findings) Empty() bool {
	return f.Total() == 0
}

// Stats counts what each phase collected
type Stats struct {
	DeclaredLinks   int `json:"declared_links"`
	DocFiles        int `json:"doc_files"`
	Assets          int `json:"assets"`
	AssetReferences int `json:"asset_references"`
}

// Metadata describes a run
type Metadata struct {
	Root          string        `json:"root"`
	Version       string        `json:"version"`
	GeneratedAt   time.Time     `json:"generated_at"`
	ExecutionTime time.Duration `json:"execution_time"`
	ConfigSource  string        `json:"config_source,omitempty"`
}

// Report is the result of a full sweep
type Report struct {
	Metadata Metadata `json:"metadata"`
	Stats    Stats    `json:"stats"`
	Findings Findings `json:"findings"`
}

// Issue messages
const (
	msgBrokenLink  = "Referenced in navigation but file doesn't exist"
	msgDeadFile    = "File exists but is not referenced in navigation"
	msgUnusedAsset = "Asset exists but appears to be unused"
	msgTypoFormat  = `Possible typo: "%s" referenced but "%s" exists`
)

// orderedSet keeps first-insertion order so output is deterministic
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

// Add inserts s and reports whether it was new
func (s *orderedSet) Add(v string) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet) Len() int { return len(s.items) }

// Items returns the members in insertion order
func (s *orderedSet) Items() []string {
	return append([]string(nil), s.items...)
}
