package parser

import (
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
)

// extractSkills runs two passes over the skills section plus the surrounding
// text: a case-insensitive membership test against the known-skill
// vocabulary, then a scan for inline comma-separated lists. The extractor is
// deliberately over-inclusive; false positives are tolerated and only
// mitigated by the scoring layer. Names are kept as found — uniqueness is by
// exact, case-sensitive name.
func (p *Parser) extractSkills(text string) []resume.Skill {
	lower := strings.ToLower(text)

	var skills []resume.Skill
	seen := make(map[string]bool)

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		skills = append(skills, resume.Skill{Name: name})
		seen[name] = true
	}

	for _, known := range p.vocab.Skills {
		if strings.Contains(lower, strings.ToLower(known)) {
			add(known)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, ",")
		if len(parts) <= 2 {
			// Fewer than two commas: probably prose, not a skill list.
			continue
		}
		for _, part := range parts {
			add(strings.TrimSpace(part))
		}
	}

	return skills
}
