package scoring_test

import (
	"errors"
	"testing"

	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/scoring"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		ratings map[string]any
		weights scoring.Weights
		want    float64
	}{
		{
			name:    "weighted sum",
			ratings: map[string]any{"a": 4.0, "b": 2.0},
			weights: scoring.Weights{"a": 0.5, "b": 0.5},
			want:    3.0,
		},
		{
			name:    "missing weighted criterion contributes zero",
			ratings: map[string]any{"a": 4.0},
			weights: scoring.Weights{"a": 0.5, "b": 0.5},
			want:    2.0,
		},
		{
			name:    "extra rating keys are ignored",
			ratings: map[string]any{"a": 5.0, "z": 100.0},
			weights: scoring.Weights{"a": 1.0},
			want:    5.0,
		},
		{
			name:    "non-numeric unweighted columns are ignored",
			ratings: map[string]any{"tool_name": "FreightFlow AI", "a": 5.0},
			weights: scoring.Weights{"a": 1.0},
			want:    5.0,
		},
		{
			name:    "integer ratings are accepted",
			ratings: map[string]any{"a": 4, "b": 2},
			weights: scoring.Weights{"a": 0.5, "b": 0.5},
			want:    3.0,
		},
		{
			name:    "empty ratings score zero",
			ratings: map[string]any{},
			weights: scoring.Weights{"a": 0.5, "b": 0.5},
			want:    0.0,
		},
		{
			name:    "empty weight table scores zero",
			ratings: map[string]any{"a": 5.0},
			weights: scoring.Weights{},
			want:    0.0,
		},
		{
			name:    "unnormalized weights are not rescaled",
			ratings: map[string]any{"a": 4.0, "b": 2.0},
			weights: scoring.Weights{"a": 2.0, "b": 1.0},
			want:    10.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scoring.Score(tc.ratings, tc.weights)
			if err != nil {
				t.Fatalf("Score() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Score() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreRounding(t *testing.T) {
	tests := []struct {
		name    string
		ratings map[string]any
		want    float64
	}{
		{
			// 2.375 is exactly representable in binary, a true midpoint:
			// half away from zero gives 2.38.
			name:    "exact midpoint rounds away from zero",
			ratings: map[string]any{"a": 2.375},
			want:    2.38,
		},
		{
			// 3.005 as a float64 is ~3.00499999999999989, below the decimal
			// midpoint, so it rounds down under the documented rule.
			name:    "3.005 rounds down per binary representation",
			ratings: map[string]any{"a": 3.005},
			want:    3.0,
		},
		{
			name:    "third decimal below half rounds down",
			ratings: map[string]any{"a": 4.104},
			want:    4.1,
		},
		{
			name:    "third decimal above half rounds up",
			ratings: map[string]any{"a": 4.106},
			want:    4.11,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scoring.Score(tc.ratings, scoring.Weights{"a": 1.0})
			if err != nil {
				t.Fatalf("Score() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Score() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreInvalidRating(t *testing.T) {
	ratings := map[string]any{"a": "fast"}
	weights := scoring.Weights{"a": 1.0}

	_, err := scoring.Score(ratings, weights)
	if err == nil {
		t.Fatal("expected error for non-numeric weighted rating")
	}

	var ire *scoring.InvalidRatingError
	if !errors.As(err, &ire) {
		t.Fatalf("expected *InvalidRatingError, got %T", err)
	}
	if ire.Criterion != "a" {
		t.Errorf("Criterion = %q, want %q", ire.Criterion, "a")
	}
	if ire.Value != "fast" {
		t.Errorf("Value = %v, want %q", ire.Value, "fast")
	}
}

func TestScoreDeterministic(t *testing.T) {
	// These ratings sum within one ulp of the 2.745 rounding boundary:
	// one association of the additions gives 2.74499999999999966, another
	// 2.74500000000000011, which round to 2.74 and 2.75. The score must
	// not depend on accumulation order, so repeated calls (each with a
	// fresh randomized map iteration) have to agree.
	ratings := map[string]any{"a": 1.518, "b": 0.851, "c": 0.376}
	weights := scoring.Weights{"a": 1.0, "b": 1.0, "c": 1.0}

	first, err := scoring.Score(ratings, weights)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	for i := 0; i < 2000; i++ {
		got, err := scoring.Score(ratings, weights)
		if err != nil {
			t.Fatalf("Score() error: %v", err)
		}
		if got != first {
			t.Fatalf("Score() = %v on run %d, want %v", got, i, first)
		}
	}
}

func TestScoreInvalidRatingReportsFirstCriterion(t *testing.T) {
	// With several bad ratings, the reported criterion is the first in
	// sorted order, not whichever a map walk happens to reach.
	ratings := map[string]any{"b": "n/a", "a": "tbd", "c": "unknown"}
	weights := scoring.Weights{"a": 0.3, "b": 0.3, "c": 0.4}

	for i := 0; i < 100; i++ {
		_, err := scoring.Score(ratings, weights)
		if err == nil {
			t.Fatal("expected error for non-numeric ratings")
		}
		var ire *scoring.InvalidRatingError
		if !errors.As(err, &ire) {
			t.Fatalf("expected *InvalidRatingError, got %T", err)
		}
		if ire.Criterion != "a" {
			t.Fatalf("Criterion = %q on run %d, want %q", ire.Criterion, i, "a")
		}
	}
}
