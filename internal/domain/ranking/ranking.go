// Package ranking orders scored gigs and truncates them to the requested
// top-N, with a deterministic tie-break.
package ranking

import (
	"fmt"
	"sort"

	"github.com/tugela/gigmatch/internal/domain/model"
)

// Rank sorts scored gigs by score descending, breaking ties by ascending
// gig id so repeated runs on identical input yield identical output
// independent of upstream ordering. Truncation to topN happens after
// sorting, never before. A topN larger than the input returns everything.
func Rank(scored []model.ScoredGig, topN int) (model.RankedResult, error) {
	if topN <= 0 {
		return model.RankedResult{}, fmt.Errorf("%w: got %d", ErrInvalidTopN, topN)
	}

	ordered := make([]model.ScoredGig, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].GigID < ordered[j].GigID
	})

	if topN < len(ordered) {
		ordered = ordered[:topN]
	}
	return model.RankedResult{TopGigs: ordered}, nil
}
