package scoring

import (
	"math"
	"sort"
)

// Score computes the weighted business fit score for one set of ratings.
//
// Only criteria present in both ratings and weights contribute. A weighted
// criterion missing from ratings contributes zero and is skipped silently:
// partial stakeholder data is expected in practice, and an incomplete record
// must still produce a valid (lower) score. Rating keys with no weight,
// including non-numeric columns such as the tool name, are ignored entirely.
//
// The result is rounded to 2 decimal places, half away from zero. Rounding
// applies to the stored binary value, so 3.005 (which sits just below the
// decimal midpoint as a float64) rounds down to 3.0.
//
// The only failure mode is a non-numeric value for a weighted criterion,
// reported as *InvalidRatingError.
func Score(ratings map[string]any, weights Weights) (float64, error) {
	// Accumulate in sorted criterion order. Float addition is not
	// associative, so map iteration order could flip the rounded result
	// when the sum lands on a rounding boundary; sorting keeps the score
	// (and the criterion a bad rating is reported for) stable.
	criteria := make([]string, 0, len(weights))
	for criterion := range weights {
		criteria = append(criteria, criterion)
	}
	sort.Strings(criteria)

	var total float64
	for _, criterion := range criteria {
		raw, ok := ratings[criterion]
		if !ok {
			continue
		}
		rating, ok := toFloat(raw)
		if !ok {
			return 0, &InvalidRatingError{Criterion: criterion, Value: raw}
		}
		total += rating * weights[criterion]
	}
	return round2(total), nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toFloat widens any numeric rating value to float64. Loaders produce
// float64 for parsed cells, but YAML and JSON decoding can hand back ints.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}
