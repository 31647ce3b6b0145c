package seed

import (
	"github.com/agext/levenshtein"
)

// suggestThreshold is the minimum similarity ratio for a "did you mean"
// candidate.
const suggestThreshold = 0.8

// BestMatch returns the candidate most similar to target, provided its
// normalized edit-distance similarity reaches threshold. Ties resolve to
// the earliest candidate so results are stable for a given key order.
// Returns "" when no candidate qualifies.
func BestMatch(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := levenshtein.Similarity(target, c, nil)
		if score >= threshold && score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}
