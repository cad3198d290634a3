// Package skills compares the skill set extracted from a resume against the
// skill set inferred from a job description.
package skills

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

// Job skill tokens are single words or two-word phrases; very short tokens
// are noise.
var (
	skillTokenRe  = regexp.MustCompile(`\b\w+(?:\s+\w+)?\b`)
	jobSectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)skills?[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
		regexp.MustCompile(`(?is)requirements?[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
		regexp.MustCompile(`(?is)qualifications?[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`),
	}
)

const minTokenLength = 3

// GapAnalysis is the set-based comparison result. All skill lists are
// lower-cased and sorted.
type GapAnalysis struct {
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExtraSkills     []string `json:"extra_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	Suggestions     []string `json:"suggestions"`
}

// Analyzer infers job skill sets from job descriptions using the
// vocabulary's job-skill list. Safe for concurrent use.
type Analyzer struct {
	vocab *vocabulary.Vocabulary
}

func NewAnalyzer(vocab *vocabulary.Vocabulary) *Analyzer {
	return &Analyzer{vocab: vocab}
}

// AnalyzeGaps compares the record's skills against the job description.
// The match percentage is |matching| / |job skills| as a percentage rounded
// to 2 decimals, 0 when the job skill set is empty.
func (a *Analyzer) AnalyzeGaps(r *resume.Resume, jobDescription string) GapAnalysis {
	resumeSkills := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		resumeSkills[strings.ToLower(s.Name)] = true
	}

	jobSkills := a.extractJobSkills(jobDescription)

	var matching, missing, extra []string
	for skill := range jobSkills {
		if resumeSkills[skill] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range resumeSkills {
		if !jobSkills[skill] {
			extra = append(extra, skill)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	sort.Strings(extra)

	pct := 0.0
	if len(jobSkills) > 0 {
		pct = round2(float64(len(matching)) / float64(len(jobSkills)) * 100)
	}

	return GapAnalysis{
		MatchingSkills:  matching,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		MatchPercentage: pct,
		Suggestions:     suggestions(matching, missing, pct),
	}
}

// extractJobSkills unions two sources: known job skills found as substrings
// in the lower-cased description, and length-filtered tokens from
// skills/requirements/qualifications blocks.
func (a *Analyzer) extractJobSkills(jobDescription string) map[string]bool {
	skills := make(map[string]bool)
	lower := strings.ToLower(jobDescription)

	for _, skill := range a.vocab.JobSkills {
		if strings.Contains(lower, skill) {
			skills[skill] = true
		}
	}

	for _, re := range jobSectionRes {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			for _, token := range skillTokenRe.FindAllString(m[1], -1) {
				if len(token) > minTokenLength {
					skills[strings.ToLower(token)] = true
				}
			}
		}
	}

	return skills
}

func suggestions(matching, missing []string, pct float64) []string {
	var out []string

	switch {
	case pct < 50:
		out = append(out, "Low skill match - consider adding more relevant skills from the job description")
	case pct < 75:
		out = append(out, "Moderate skill match - add a few more matching skills to improve your fit")
	default:
		out = append(out, "Good skill match - your skills align well with the job requirements")
	}

	if len(missing) > 0 {
		top := missing
		if len(top) > 5 {
			top = top[:5]
		}
		out = append(out, "Consider highlighting or adding these skills: "+strings.Join(top, ", "))
	}

	if len(matching) > 0 {
		out = append(out, fmt.Sprintf("You have %d matching skills - make sure these are prominently featured", len(matching)))
	}

	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
