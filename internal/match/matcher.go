// Package match combines the skills-gap and ATS analyses into one overall
// job-match score with a short recommendation list.
package match

import (
	"math"
	"strings"

	"github.com/resume-forge/resume-forge/internal/ats"
	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/skills"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

// Match aggregates both sub-analyses. The overall score is a weighted
// average: 60% skill match, 40% ATS keyword match.
type Match struct {
	OverallMatchScore int                `json:"overall_match_score"`
	SkillsAnalysis    skills.GapAnalysis `json:"skills_analysis"`
	ATSAnalysis       ats.Optimization   `json:"ats_analysis"`
	Recommendations   []string           `json:"recommendations"`
}

// Matcher composes the skills-gap analyzer and the ATS optimizer. It adds
// no scoring of its own beyond the weighted average.
type Matcher struct {
	skills *skills.Analyzer
	ats    *ats.Optimizer
}

func NewMatcher(vocab *vocabulary.Vocabulary) (*Matcher, error) {
	optimizer, err := ats.NewOptimizer(vocab)
	if err != nil {
		return nil, err
	}
	return &Matcher{skills: skills.NewAnalyzer(vocab), ats: optimizer}, nil
}

// Match runs both analyses against the job description and aggregates them.
func (m *Matcher) Match(r *resume.Resume, jobDescription string) Match {
	skillsAnalysis := m.skills.AnalyzeGaps(r, jobDescription)
	atsAnalysis := m.ats.Optimize(r, jobDescription)

	return Match{
		OverallMatchScore: overallScore(skillsAnalysis, atsAnalysis),
		SkillsAnalysis:    skillsAnalysis,
		ATSAnalysis:       atsAnalysis,
		Recommendations:   recommendations(skillsAnalysis, atsAnalysis),
	}
}

func overallScore(skillsAnalysis skills.GapAnalysis, atsAnalysis ats.Optimization) int {
	atsScore := 0
	if atsAnalysis.MatchScore != nil {
		atsScore = *atsAnalysis.MatchScore
	}
	return int(math.Round(skillsAnalysis.MatchPercentage*0.6 + float64(atsScore)*0.4))
}

func recommendations(skillsAnalysis skills.GapAnalysis, atsAnalysis ats.Optimization) []string {
	var recs []string

	if skillsAnalysis.MatchPercentage < 70 {
		recs = append(recs, "Add more skills from the job description to improve your match")
	}

	if len(skillsAnalysis.MissingSkills) > 0 {
		top := skillsAnalysis.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, "Prioritize adding these skills: "+strings.Join(top, ", "))
	}

	if len(atsAnalysis.Suggestions) > 0 {
		top := atsAnalysis.Suggestions
		if len(top) > 2 {
			top = top[:2]
		}
		recs = append(recs, top...)
	}

	return recs
}
