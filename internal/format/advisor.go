// Package format inspects a resume record for layout problems: uneven
// bullet lengths, mixed date formats, characters that break ATS parsers,
// ordering issues. Each heuristic is an independent check; the advisor runs
// them in a fixed order and concatenates their findings.
package format

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/resume-forge/resume-forge/internal/resume"
)

// Check is a single formatting heuristic. Checks are stateless and must not
// modify the record.
type Check interface {
	Name() string
	Check(r *resume.Resume) []string
}

// Report is the advisor's output in optimization mode.
type Report struct {
	ImprovementsApplied []string `json:"improvements_applied"`
	Summary             string   `json:"summary"`
}

// Advisor runs the formatting checks against a record.
type Advisor struct {
	logger *zap.Logger
	checks []Check
}

// NewAdvisor creates an advisor with the default check set. The logger may
// be nil.
func NewAdvisor(logger *zap.Logger) *Advisor {
	return &Advisor{
		logger: logger,
		checks: []Check{
			&spacingCheck{},
			&consistencyCheck{},
			&atsCheck{},
			&structureCheck{},
		},
	}
}

// Suggest returns the findings of every check, in check order.
func (a *Advisor) Suggest(r *resume.Resume) []string {
	var suggestions []string
	for _, check := range a.checks {
		found := check.Check(r)
		if a.logger != nil {
			a.logger.Debug("format check",
				zap.String("name", check.Name()),
				zap.Int("findings", len(found)),
			)
		}
		suggestions = append(suggestions, found...)
	}
	return suggestions
}

// Optimize wraps Suggest in the report shape used when the caller treats
// the findings as applied improvements.
func (a *Advisor) Optimize(r *resume.Resume) Report {
	improvements := a.Suggest(r)
	return Report{
		ImprovementsApplied: improvements,
		Summary:             fmt.Sprintf("Applied %d formatting improvements", len(improvements)),
	}
}
