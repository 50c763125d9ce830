package nn

import "github.com/agnivade/levenshtein"

// maxSuggestDistance bounds how different a suggestion may be from the name
// that was looked up.
const maxSuggestDistance = 2

// suggest returns the candidate closest to name by edit distance, or "" if
// none is close enough. Ties go to the earlier candidate.
func suggest(name string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if d < bestDist && d < len(name) {
			best, bestDist = c, d
		}
	}
	return best
}
