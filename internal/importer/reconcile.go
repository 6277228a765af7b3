package importer

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance is the largest edit distance at which a known
// category is still offered as a suggestion for a novel one.
const maxSuggestionDistance = 2

// NovelCategories returns the distinct category names that appear in rows
// but not in the known set. Matching is exact and case-sensitive; the result
// keeps first-seen order.
func NovelCategories(rows []Row, known []string) []string {
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	seen := make(map[string]struct{})
	novel := make([]string, 0)

	for _, row := range rows {
		if _, ok := knownSet[row.Category]; ok {
			continue
		}
		if _, ok := seen[row.Category]; ok {
			continue
		}

		seen[row.Category] = struct{}{}
		novel = append(novel, row.Category)
	}

	return novel
}

// Suggest returns the known category closest to the novel name by edit
// distance, or "" when nothing is close enough to be a plausible typo.
func Suggest(novel string, known []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, name := range known {
		distance := levenshtein.ComputeDistance(novel, name)
		if distance < bestDistance {
			best = name
			bestDistance = distance
		}
	}

	return best
}
