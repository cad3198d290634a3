// Package analysis scores an assembled resume record: numeric metrics, a
// 100-point ATS compatibility rubric, strength/weakness rule lists and an
// informational keyword count. Everything here is a pure function of the
// record and the caller-supplied current year, so identical inputs always
// produce identical output.
package analysis

import (
	"regexp"
	"strconv"

	"github.com/resume-forge/resume-forge/internal/resume"
)

// Metrics are the numeric signals derived from a record. They feed the ATS
// rubric and are also surfaced verbatim in the analysis output.
type Metrics struct {
	TotalExperienceYears     int     `json:"total_experience_years"`
	NumberOfPositions        int     `json:"number_of_positions"`
	NumberOfSkills           int     `json:"number_of_skills"`
	NumberOfCertifications   int     `json:"number_of_certifications"`
	HasSummary               bool    `json:"has_summary"`
	QuantifiableAchievements int     `json:"quantifiable_achievements"`
	TextLength               int     `json:"text_length"`
	AverageDescriptionLength float64 `json:"average_description_length"`
}

// A description line counts as a quantifiable achievement when it carries a
// percentage, a dollar amount, an "N+" figure or a counted noun.
var quantifiableRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\+|\d+\s*(?:years|months|people|projects|clients|users)`)

// CalculateMetrics derives the numeric signals from a record. The current
// year is an explicit parameter: open-ended positions are counted up to it,
// never up to the wall clock. Overlapping employment periods are summed
// without merging.
func CalculateMetrics(r *resume.Resume, currentYear int) Metrics {
	m := Metrics{
		NumberOfPositions:        len(r.Experience),
		NumberOfSkills:           len(r.Skills),
		NumberOfCertifications:   len(r.Certifications),
		HasSummary:               r.Summary != "",
		QuantifiableAchievements: countQuantifiable(r),
		TextLength:               len(r.RawText),
		AverageDescriptionLength: averageDescriptionLength(r),
	}

	for _, exp := range r.Experience {
		start, ok := leadingYear(exp.StartDate)
		if !ok {
			continue
		}
		end := currentYear
		if exp.EndDate != "" {
			y, ok := leadingYear(exp.EndDate)
			if !ok {
				continue
			}
			end = y
		}
		m.TotalExperienceYears += end - start
	}

	return m
}

// leadingYear parses the first four characters of a date string as a year.
func leadingYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

// countQuantifiable counts description lines, not pattern occurrences: a line
// with two figures still counts once.
func countQuantifiable(r *resume.Resume) int {
	count := 0
	for _, exp := range r.Experience {
		for _, desc := range exp.Description {
			if quantifiableRe.MatchString(desc) {
				count++
			}
		}
	}
	return count
}

func averageDescriptionLength(r *resume.Resume) float64 {
	total, count := 0, 0
	for _, exp := range r.Experience {
		for _, desc := range exp.Description {
			total += len(desc)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
