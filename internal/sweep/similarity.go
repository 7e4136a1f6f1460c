/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns (maxLen - distance) / maxLen for a and b, measured in
// runes. It is 1.0 for identical strings, including two empty ones, and 0
// for strings with nothing in common.
func Similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	return float64(longest-d) / float64(longest)
}
