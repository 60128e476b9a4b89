package scoring

import (
	"errors"
	"sort"
)

// Evaluate scores every record and returns a new slice ordered best-first.
//
// Rank is a dense ranking over BusinessScore descending: the highest
// distinct score gets rank 1, the next distinct score rank 2, and so on.
// Tied scores share a rank and no ranks are skipped. Records with equal
// rank keep their relative input order: stability is the tie-break policy,
// not a secondary comparison.
//
// An empty input yields an empty, non-nil slice and no error. The input
// slice and its records are never modified; each output record carries its
// own copy of the rating map.
func Evaluate(records []ToolRecord, weights Weights) ([]ScoredRecord, error) {
	scored := make([]ScoredRecord, 0, len(records))
	for _, rec := range records {
		s, err := Score(rec.Ratings, weights)
		if err != nil {
			var ire *InvalidRatingError
			if errors.As(err, &ire) {
				ire.Tool = rec.Name
			}
			return nil, err
		}
		scored = append(scored, ScoredRecord{
			ToolRecord:    ToolRecord{Name: rec.Name, Ratings: cloneRatings(rec.Ratings)},
			BusinessScore: s,
		})
	}

	// Dense ranks over the distinct scores, highest first. Scores are
	// already rounded to 2 decimals, so float equality is exact here.
	distinct := make([]float64, 0, len(scored))
	seen := make(map[float64]bool, len(scored))
	for _, sr := range scored {
		if !seen[sr.BusinessScore] {
			seen[sr.BusinessScore] = true
			distinct = append(distinct, sr.BusinessScore)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, s := range distinct {
		rankOf[s] = i + 1
	}
	for i := range scored {
		scored[i].Rank = rankOf[scored[i].BusinessScore]
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Rank < scored[j].Rank
	})

	return scored, nil
}

func cloneRatings(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
