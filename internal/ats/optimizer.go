// Package ats generates applicant-tracking-system optimization advice: an
// independent job-description match score and a suggestion list, separate
// from the analysis rubric.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

const maxKeywords = 20

var (
	capitalizedRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	techPhraseRe  = regexp.MustCompile(`(?i)\b\w+\s+(?:development|engineering|management|analysis|design)\b`)
	// A "Skills:" style block runs until a blank line, a new capitalized
	// header line or end of text.
	skillsSectionRe = regexp.MustCompile(`(?is)skills?[:\s]+(.*?)(?:\n\n|\n[A-Z]|$)`)
	wordRe          = regexp.MustCompile(`\b\w+\b`)

	figureRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$\d+`),
		regexp.MustCompile(`\d+\+`),
	}

	// A short verb list for the generic advice; the full strong-verb list
	// belongs to the analysis rubric.
	adviceVerbs = []string{"developed", "implemented", "managed", "led", "created", "improved"}
)

// Optimization is the optimizer's output. MatchScore is nil when no job
// description was supplied.
type Optimization struct {
	Suggestions []string `json:"suggestions"`
	MatchScore  *int     `json:"match_score"`
	ATSFriendly bool     `json:"ats_friendly"`
}

// Optimizer matches records against job descriptions. Safe for concurrent
// use once constructed.
type Optimizer struct {
	stop   map[string]bool
	techRe *regexp.Regexp
}

// NewOptimizer compiles the technology-term pattern from the vocabulary.
func NewOptimizer(vocab *vocabulary.Vocabulary) (*Optimizer, error) {
	terms := make([]string, len(vocab.TechTerms))
	for i, t := range vocab.TechTerms {
		terms[i] = regexp.QuoteMeta(t)
	}
	techRe, err := regexp.Compile(`(?i)\b(?:` + strings.Join(terms, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling tech-term pattern: %w", err)
	}

	return &Optimizer{stop: vocab.StopWordSet(), techRe: techRe}, nil
}

// Optimize produces suggestions for a record, plus a keyword match score
// when a job description is supplied. Suggestion order is fixed: formatting
// first, then missing keywords, then the generic advice.
func (o *Optimizer) Optimize(r *resume.Resume, jobDescription string) Optimization {
	suggestions := o.formattingSuggestions(r)

	var matchScore *int
	if jobDescription != "" {
		suggestions = append(suggestions, o.missingKeywordSuggestions(r, jobDescription)...)
		score := o.matchScore(r, jobDescription)
		matchScore = &score
	}

	suggestions = append(suggestions, generalSuggestions(r)...)

	return Optimization{
		Suggestions: suggestions,
		MatchScore:  matchScore,
		ATSFriendly: isATSFriendly(r),
	}
}

func (o *Optimizer) formattingSuggestions(r *resume.Resume) []string {
	var suggestions []string

	if strings.ContainsAny(r.RawText, "|\t") {
		suggestions = append(suggestions, "Avoid using tables - ATS systems may not parse them correctly")
	}

	// Font choice is invisible in plain text; the advice is always worth
	// giving.
	suggestions = append(suggestions, "Use standard fonts (Arial, Calibri, Times New Roman) for better ATS compatibility")

	lower := strings.ToLower(r.RawText)
	found := 0
	for _, header := range []string{"experience", "education", "skills", "summary"} {
		if strings.Contains(lower, header) {
			found++
		}
	}
	if found < 3 {
		suggestions = append(suggestions, "Ensure clear section headers (Experience, Education, Skills)")
	}

	return suggestions
}

func (o *Optimizer) missingKeywordSuggestions(r *resume.Resume, jobDescription string) []string {
	resumeText := strings.ToLower(r.RawText)

	var missing []string
	for _, keyword := range o.extractKeywords(jobDescription) {
		if !strings.Contains(resumeText, keyword) {
			missing = append(missing, keyword)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if len(missing) > 5 {
		missing = missing[:5]
	}
	return []string{
		"Consider adding these keywords from the job description: " + strings.Join(missing, ", "),
	}
}

// extractKeywords pulls candidate keywords from a job description:
// capitalized words minus stop words, technology terms and phrases, and
// tokens from a skills/requirements block. The result is lower-cased,
// sorted and capped.
func (o *Optimizer) extractKeywords(text string) []string {
	keywords := make(map[string]bool)

	for _, w := range capitalizedRe.FindAllString(text, -1) {
		lower := strings.ToLower(w)
		if !o.stop[lower] {
			keywords[lower] = true
		}
	}

	for _, m := range techPhraseRe.FindAllString(text, -1) {
		keywords[strings.ToLower(m)] = true
	}
	for _, m := range o.techRe.FindAllString(text, -1) {
		keywords[strings.ToLower(m)] = true
	}

	if m := skillsSectionRe.FindStringSubmatch(text); m != nil {
		for _, w := range wordRe.FindAllString(m[1], -1) {
			if len(w) > 3 {
				keywords[strings.ToLower(w)] = true
			}
		}
	}

	sorted := make([]string, 0, len(keywords))
	for k := range keywords {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	if len(sorted) > maxKeywords {
		sorted = sorted[:maxKeywords]
	}
	return sorted
}

// matchScore is the share of extracted job keywords found verbatim in the
// lower-cased resume text, as a rounded percentage.
func (o *Optimizer) matchScore(r *resume.Resume, jobDescription string) int {
	keywords := o.extractKeywords(jobDescription)
	if len(keywords) == 0 {
		return 0
	}

	resumeText := strings.ToLower(r.RawText)
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeText, keyword) {
			matches++
		}
	}

	return int(math.Round(float64(matches) / float64(len(keywords)) * 100))
}

func generalSuggestions(r *resume.Resume) []string {
	var suggestions []string

	figures := 0
	for _, re := range figureRes {
		figures += len(re.FindAllString(r.RawText, -1))
	}
	if figures < 3 {
		suggestions = append(suggestions, "Add more quantifiable achievements (numbers, percentages, metrics)")
	}

	lower := strings.ToLower(r.RawText)
	verbs := 0
	for _, verb := range adviceVerbs {
		if strings.Contains(lower, verb) {
			verbs++
		}
	}
	if verbs < 5 {
		suggestions = append(suggestions, "Use more strong action verbs (developed, implemented, managed, led, etc.)")
	}

	if r.ContactInfo.Email == "" {
		suggestions = append(suggestions, "Ensure email address is included")
	}
	if r.ContactInfo.Phone == "" {
		suggestions = append(suggestions, "Ensure phone number is included")
	}
	if len(r.Skills) < 5 {
		suggestions = append(suggestions, "List at least 5-10 relevant skills")
	}

	return suggestions
}

func isATSFriendly(r *resume.Resume) bool {
	return r.ContactInfo.Email != "" &&
		r.ContactInfo.Phone != "" &&
		len(r.Experience) > 0 &&
		len(r.Skills) >= 5 &&
		!strings.ContainsAny(r.RawText, "|\t")
}
