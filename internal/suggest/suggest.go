// Package suggest defines the interface for AI-assisted improvement
// suggestions. The pipeline never depends on it; only the command layer asks
// a Suggester to enrich an analysis.
package suggest

import (
	"context"

	"github.com/resume-forge/resume-forge/internal/analysis"
	"github.com/resume-forge/resume-forge/internal/resume"
)

// Suggester produces free-form improvement suggestions for an analyzed
// record.
type Suggester interface {
	Suggest(ctx context.Context, r *resume.Resume, a *analysis.Analysis) ([]string, error)
}
