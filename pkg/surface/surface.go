// Package surface defines output rendering for evaluation reports.
// Implementations handle different output targets: terminal, JSON, CSV,
// and the executive bar chart.
package surface

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/scoring"
)

// Report wraps a ranked evaluation with run metadata.
type Report struct {
	ID          string                 `json:"id"`
	EvaluatedAt time.Time              `json:"evaluated_at"`
	Weights     scoring.Weights        `json:"weights"`
	Tools       []scoring.ScoredRecord `json:"tools"`
}

// NewReport stamps a ranked evaluation with a run ID and timestamp.
func NewReport(tools []scoring.ScoredRecord, weights scoring.Weights) *Report {
	return &Report{
		ID:          uuid.NewString(),
		EvaluatedAt: time.Now().UTC(),
		Weights:     weights,
		Tools:       tools,
	}
}

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, rep *Report) error
}
