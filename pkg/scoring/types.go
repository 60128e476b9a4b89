// Package scoring implements the weighted-sum business fit scorer and ranker
// for candidate logistics tools. It evaluates per-criterion stakeholder
// ratings against a fixed weight table and produces dense-ranked results.
package scoring

import "fmt"

// Weights maps a criterion name to its non-negative importance weight.
// The table is read-only for the duration of an evaluation. No normalization
// is assumed: the weights need not sum to 1.0.
type Weights map[string]float64

// ToolRecord is one raw input row: a tool name plus its per-criterion
// ratings. Ratings hold raw cell values as loaded; numeric ratings are
// expected on a 1-5 scale by convention, but the bound is not enforced.
// Records are never mutated by scoring or ranking.
type ToolRecord struct {
	Name    string         `json:"tool_name"`
	Ratings map[string]any `json:"ratings"`
}

// ScoredRecord is a ToolRecord augmented with its derived business fit
// score and rank. Immutable once computed.
type ScoredRecord struct {
	ToolRecord
	BusinessScore float64 `json:"business_score"` // weighted sum, 2 decimals
	Rank          int     `json:"rank"`           // dense rank, 1 = best
}

// InvalidRatingError reports a rating for a weighted criterion that is not
// a number.
type InvalidRatingError struct {
	Tool      string // empty when scoring a bare rating map
	Criterion string
	Value     any
}

func (e *InvalidRatingError) Error() string {
	if e.Tool == "" {
		return fmt.Sprintf("invalid rating for %q: %v (%T) is not a number", e.Criterion, e.Value, e.Value)
	}
	return fmt.Sprintf("%s: invalid rating for %q: %v (%T) is not a number", e.Tool, e.Criterion, e.Value, e.Value)
}
