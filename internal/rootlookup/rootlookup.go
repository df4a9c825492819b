// Package rootlookup gives the driver something useful to say when a root
// symbol the user typed isn't in the database: the nearest known symbols
// by Jaro-Winkler similarity. It never influences the produced Tree —
// only diagnostics.
package rootlookup

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/hbollon/go-edlib"
)

// Suggestion is one candidate symbol and how close it is to the symbol
// that wasn't found.
type Suggestion struct {
	Symbol     string
	Similarity float64
}

const defaultThreshold = 0.80

// Suggest returns the known symbols most similar to target, sorted by
// descending similarity, capped at limit. Candidates are deduplicated by
// content hash first: a dataset the size of a large codebase can carry
// the same macro or overload name defined in hundreds of files, and
// scoring each spelling once is enough for a diagnostic hint. A hash
// collision would at worst drop one duplicate spelling from
// consideration, which has no effect on tree construction.
func Suggest(target string, candidates []string, limit int) []Suggestion {
	if target == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	seen := make(map[uint64]bool, len(candidates))
	suggestions := make([]Suggestion, 0, limit)

	for _, candidate := range candidates {
		h := xxhash.Sum64String(candidate)
		if seen[h] {
			continue
		}
		seen[h] = true

		if candidate == target {
			continue
		}

		score, err := edlib.StringsSimilarity(target, candidate, edlib.JaroWinkler)
		if err != nil || float64(score) < defaultThreshold {
			continue
		}

		suggestions = append(suggestions, Suggestion{Symbol: candidate, Similarity: float64(score)})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
