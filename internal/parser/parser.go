// Package parser turns plain resume text into a structured record. It is a
// pure pipeline: normalize, segment into sections, run the per-section
// extractors, assemble. Sparse or malformed text degrades to empty fields,
// never to an error; the only failure is invalid input, raised before any
// stage runs.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/textutil"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

// ErrInvalidInput is returned when the input is not usable text.
var ErrInvalidInput = errors.New("invalid input")

const maxSummaryLength = 500

// Parser extracts structured resume records from plain text. It is safe for
// concurrent use: all state is immutable after New.
type Parser struct {
	vocab    *vocabulary.Vocabulary
	sections []sectionPattern
}

// New creates a Parser using the provided vocabulary. It fails only when a
// configured section-header pattern does not compile.
func New(vocab *vocabulary.Vocabulary) (*Parser, error) {
	sections, err := compileSectionPatterns(vocab.SectionHeaders)
	if err != nil {
		return nil, err
	}

	return &Parser{vocab: vocab, sections: sections}, nil
}

// Parse extracts a structured record from resume text. Every field is
// best-effort: missing sections and unmatched patterns yield empty fields.
func (p *Parser) Parse(text string) (*resume.Resume, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}

	// Contact patterns need characters ('@', '/') that full normalization
	// strips, so contact extraction runs on the collapsed-only text.
	collapsed := textutil.CollapseWhitespace(text)
	normalized := textutil.Normalize(text)

	sections := p.SplitSections(normalized)

	return &resume.Resume{
		ContactInfo:    extractContact(collapsed),
		Summary:        extractSummary(sections["summary"]),
		Experience:     extractExperience(sections["experience"]),
		Education:      extractEducation(sections["education"]),
		Skills:         p.extractSkills(sections["skills"] + "\n" + normalized),
		Certifications: extractCertifications(sections["certifications"]),
		RawText:        normalized,
		Version:        1,
	}, nil
}

// extractSummary flattens the summary section to a single line and caps its
// length.
func extractSummary(text string) string {
	summary := strings.Join(strings.Fields(text), " ")
	if len(summary) > maxSummaryLength {
		summary = summary[:maxSummaryLength] + "..."
	}
	return summary
}
