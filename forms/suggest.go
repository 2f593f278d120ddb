package forms

import (
	"sort"
	"strings"
)

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// suggest returns the candidates closest to input, best first. Only matches
// within two edits (or a third of the candidate's length for long names)
// qualify, so nonsense input yields no suggestion rather than a misleading
// one.
func suggest(input string, candidates []string) []string {
	input = strings.ToLower(input)

	type scored struct {
		name string
		dist int
	}

	var matches []scored

	for _, c := range candidates {
		d := levenshtein(input, strings.ToLower(c))
		if d <= max(2, len(c)/3) {
			matches = append(matches, scored{name: c, dist: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}

		return matches[i].name < matches[j].name
	})

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}

	return names
}
