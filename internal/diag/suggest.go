package diag

import (
	"sort"

	"golang.org/x/text/cases"
)

// SuggestOptions configure did-you-mean lookup.
type SuggestOptions struct {
	// MaxDistance is the largest edit distance still considered a match.
	MaxDistance int
	// MaxResults caps the number of returned candidates.
	MaxResults int
}

// DefaultSuggestOptions returns the documented defaults: distance <= 2,
// top 3 candidates.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{MaxDistance: 2, MaxResults: 3}
}

// foldCaser lowercases for ranking purposes only; symbol resolution itself
// stays case-sensitive.
var foldCaser = cases.Fold()

// Levenshtein computes the edit distance between two strings, counting
// single-rune insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows instead of the full matrix.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similar returns the candidates closest to name under the edit-distance
// threshold, best match first; ties break alphabetically. Exact matches
// are excluded, but a candidate differing only in case still qualifies.
// Returns nil when nothing is close enough; callers must not assume a
// suggestion exists.
func Similar(name string, candidates []string, opts SuggestOptions) []string {
	if opts.MaxDistance <= 0 || opts.MaxResults <= 0 {
		return nil
	}

	folded := foldCaser.String(name)
	type match struct {
		dist int
		name string
	}
	var matches []match

	for _, cand := range candidates {
		if cand == name {
			continue
		}
		// Cheap length filter before the O(n*m) distance.
		lenDiff := len(name) - len(cand)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > opts.MaxDistance {
			continue
		}
		dist := Levenshtein(folded, foldCaser.String(cand))
		if dist <= opts.MaxDistance {
			matches = append(matches, match{dist: dist, name: cand})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}
	var out []string
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}
