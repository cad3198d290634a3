package analysis

import (
	"fmt"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

// Analysis is the full scoring output for one record.
type Analysis struct {
	ATSScore        int             `json:"ats_score"`
	Strengths       []string        `json:"strengths"`
	Weaknesses      []string        `json:"weaknesses"`
	Metrics         Metrics         `json:"metrics"`
	KeywordAnalysis KeywordAnalysis `json:"keyword_analysis"`
}

// KeywordAnalysis counts domain keywords and extracted skill names in the
// lower-cased resume text. Informational only, never scored.
type KeywordAnalysis struct {
	ImportantKeywords map[string]int `json:"important_keywords"`
	SkillKeywords     map[string]int `json:"skill_keywords"`
	TotalUnique       int            `json:"total_unique_keywords"`
}

// Analyzer evaluates records against the vocabulary's verb and keyword
// lists. Safe for concurrent use.
type Analyzer struct {
	vocab *vocabulary.Vocabulary
}

func NewAnalyzer(vocab *vocabulary.Vocabulary) *Analyzer {
	return &Analyzer{vocab: vocab}
}

// Analyze scores a record. The strength and weakness rules are independent
// of the score and of each other; each is evaluated exactly once and appends
// its finding in a fixed order. An empty record scores 0 with no strengths.
func (a *Analyzer) Analyze(r *resume.Resume, currentYear int) *Analysis {
	metrics := CalculateMetrics(r, currentYear)

	strengths := []string{}
	strengths = append(strengths, quantifiableStrengths(metrics)...)
	strengths = append(strengths, a.verbStrengths(r)...)
	strengths = append(strengths, structureStrengths(r)...)

	weaknesses := []string{}
	weaknesses = append(weaknesses, missingElementWeaknesses(r)...)
	weaknesses = append(weaknesses, a.languageWeaknesses(r)...)
	weaknesses = append(weaknesses, formattingWeaknesses(r)...)

	return &Analysis{
		ATSScore:        atsScore(r, metrics),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Metrics:         metrics,
		KeywordAnalysis: a.keywordAnalysis(r),
	}
}

// atsScore is a fixed additive rubric, clamped to 100: contact info 20,
// structure 30, content quality 30, formatting 20.
func atsScore(r *resume.Resume, m Metrics) int {
	score := 0

	if r.ContactInfo.Email != "" {
		score += 10
	}
	if r.ContactInfo.Phone != "" {
		score += 10
	}

	if r.Summary != "" {
		score += 10
	}
	if len(r.Experience) > 0 {
		score += 10
	}
	if len(r.Skills) >= 5 {
		score += 10
	}

	switch {
	case m.QuantifiableAchievements >= 3:
		score += 15
	case m.QuantifiableAchievements > 0:
		score += 8
	}
	if m.AverageDescriptionLength > 50 {
		score += 15
	}

	switch {
	case m.TextLength >= 500 && m.TextLength <= 2000:
		score += 20
	case (m.TextLength >= 300 && m.TextLength < 500) || (m.TextLength > 2000 && m.TextLength <= 3000):
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func quantifiableStrengths(m Metrics) []string {
	switch {
	case m.QuantifiableAchievements >= 3:
		return []string{fmt.Sprintf("Strong use of quantifiable achievements (%d found)", m.QuantifiableAchievements)}
	case m.QuantifiableAchievements > 0:
		return []string{fmt.Sprintf("Some quantifiable achievements present (%d found)", m.QuantifiableAchievements)}
	}
	return nil
}

// verbStrengths counts strong and weak verb occurrences across every
// description line; a verb appearing in two lines counts twice.
func (a *Analyzer) verbStrengths(r *resume.Resume) []string {
	strong, weak := 0, 0
	for _, desc := range r.DescriptionLines() {
		lower := strings.ToLower(desc)
		for _, verb := range a.vocab.StrongVerbs {
			if strings.Contains(lower, verb) {
				strong++
			}
		}
		for _, verb := range a.vocab.WeakVerbs {
			if strings.Contains(lower, verb) {
				weak++
			}
		}
	}

	switch {
	case strong > weak*2:
		return []string{"Excellent use of strong action verbs"}
	case strong > weak:
		return []string{"Good use of action verbs"}
	}
	return nil
}

func structureStrengths(r *resume.Resume) []string {
	var strengths []string
	if r.Summary != "" {
		strengths = append(strengths, "Professional summary present")
	}
	if len(r.Experience) >= 2 {
		strengths = append(strengths, "Adequate work experience listed")
	}
	if len(r.Skills) >= 5 {
		strengths = append(strengths, "Good variety of skills")
	}
	if r.ContactInfo.Email != "" {
		strengths = append(strengths, "Contact information complete")
	}
	return strengths
}

func missingElementWeaknesses(r *resume.Resume) []string {
	var weaknesses []string
	if r.Summary == "" {
		weaknesses = append(weaknesses, "Missing professional summary")
	}
	if len(r.Experience) == 0 {
		weaknesses = append(weaknesses, "No work experience listed")
	}
	if len(r.Skills) < 5 {
		weaknesses = append(weaknesses, "Limited skills listed (consider adding more)")
	}
	if r.ContactInfo.Email == "" {
		weaknesses = append(weaknesses, "Missing email address")
	}
	if r.ContactInfo.Phone == "" {
		weaknesses = append(weaknesses, "Missing phone number")
	}
	return weaknesses
}

// languageWeaknesses counts lines, not occurrences: a line with two weak
// verbs still counts once.
func (a *Analyzer) languageWeaknesses(r *resume.Resume) []string {
	var weaknesses []string

	weakLines := 0
	vagueLines := 0
	for _, desc := range r.DescriptionLines() {
		lower := strings.ToLower(desc)
		if containsAny(lower, a.vocab.WeakVerbs) {
			weakLines++
		}
		if containsAny(lower, a.vocab.VagueWords) {
			vagueLines++
		}
	}

	if weakLines > 3 {
		weaknesses = append(weaknesses, "Too many weak action verbs (consider using stronger verbs)")
	}
	if vagueLines > 2 {
		weaknesses = append(weaknesses, "Vague language detected (be more specific)")
	}
	return weaknesses
}

func formattingWeaknesses(r *resume.Resume) []string {
	var weaknesses []string

	if r.RawText != "" {
		switch {
		case len(r.RawText) > 2000:
			weaknesses = append(weaknesses, "Resume may be too long (consider condensing)")
		case len(r.RawText) < 300:
			weaknesses = append(weaknesses, "Resume may be too short (add more detail)")
		}
	}

	lines := r.DescriptionLines()
	if len(lines) > 0 {
		total := 0
		for _, desc := range lines {
			total += len(desc)
		}
		avg := float64(total) / float64(len(lines))
		for _, desc := range lines {
			diff := float64(len(desc)) - avg
			if diff < 0 {
				diff = -diff
			}
			if diff > avg*0.5 {
				weaknesses = append(weaknesses, "Inconsistent description lengths (aim for consistency)")
				break
			}
		}
	}

	return weaknesses
}

// keywordAnalysis counts substring occurrences in the lower-cased raw text:
// domain keywords only when present, skill names always (zero counts
// included). Empty text yields an empty analysis.
func (a *Analyzer) keywordAnalysis(r *resume.Resume) KeywordAnalysis {
	if r.RawText == "" {
		return KeywordAnalysis{}
	}

	lower := strings.ToLower(r.RawText)

	important := make(map[string]int)
	for _, keyword := range a.vocab.DomainKeywords {
		if n := strings.Count(lower, keyword); n > 0 {
			important[keyword] = n
		}
	}

	skills := make(map[string]int)
	for _, skill := range r.Skills {
		skills[skill.Name] = strings.Count(lower, strings.ToLower(skill.Name))
	}

	return KeywordAnalysis{
		ImportantKeywords: important,
		SkillKeywords:     skills,
		TotalUnique:       len(important) + len(skills),
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
