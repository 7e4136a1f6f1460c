/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"fmt"
	"math"
)

// DeadFiles returns an issue for every doc that no declared link points to,
// except index.
func DeadFiles(docs, links []string, index string) []Issue {
	declared := newOrderedSet()
	for _, l := range links {
		declared.Add(l)
	}

	var issues []Issue
	for _, doc := range docs {
		if doc == index || declared.Has(doc) {
			continue
		}
		issues = append(issues, Issue{
			Kind:    KindDeadFile,
			File:    doc,
			Message: msgDeadFile,
		})
	}
	return issues
}

// PossibleTypos pairs each declared link that has no doc of the same path
// with every doc whose similarity is strictly between threshold and 1.
// There is no cap on candidates per link.
func PossibleTypos(links, docs []string, threshold float64) []Issue {
	existing := newOrderedSet()
	for _, d := range docs {
		existing.Add(d)
	}

	var issues []Issue
	for _, link := range links {
		if existing.Has(link) {
			continue
		}
		for _, doc := range docs {
			sim := Similarity(link, doc)
			if sim <= threshold || sim >= 1 {
				continue
			}
			issues = append(issues, Issue{
				Kind:       KindPossibleTypo,
				Referenced: link,
				Existing:   doc,
				Similarity: int(math.Round(sim * 100)),
				Message:    fmt.Sprintf(msgTypoFormat, link, doc),
			})
		}
	}
	return issues
}
