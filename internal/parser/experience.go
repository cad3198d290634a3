package parser

import (
	"regexp"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
)

// A date range line opens a new experience entry: "2020 - 2023",
// "Jan 2020 - Present" and similar.
var expDateRangeRe = regexp.MustCompile(`(?i)(\d{4}|[A-Za-z]+\s+\d{4})\s*[-–—]\s*(\d{4}|Present|Current)`)

// extractExperience is a per-line accumulator over the experience section.
// A line matching the date-range pattern closes the in-progress entry and
// opens a new one; lines in between become the open entry's description.
// Position and company come from the text before the date match, or from the
// preceding line when the date stands on a line of its own (the common
// "title line above date line" resume layout).
func extractExperience(text string) []resume.Experience {
	if text == "" {
		return nil
	}

	var (
		entries  []resume.Experience
		open     *resume.Experience
		lastLine string
		buffered bool // lastLine sits at the tail of open.Description
	)

	flush := func() {
		if open != nil {
			entries = append(entries, *open)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := expDateRangeRe.FindStringSubmatchIndex(line)
		if m == nil {
			// Lines starting with a digit are stray page numbers or
			// similar noise, not description content.
			if line[0] >= '0' && line[0] <= '9' {
				continue
			}
			if open != nil {
				open.Description = append(open.Description, line)
			}
			lastLine = line
			buffered = open != nil
			continue
		}

		head := strings.TrimSpace(line[:m[0]])
		if head == "" && lastLine != "" {
			head = lastLine
			if buffered && len(open.Description) > 0 {
				open.Description = open.Description[:len(open.Description)-1]
			}
		}

		flush()

		endToken := line[m[4]:m[5]]
		current := strings.EqualFold(endToken, "present") || strings.EqualFold(endToken, "current")
		endDate := ""
		if !current {
			endDate = endToken
		}

		position, company := splitPositionCompany(head)
		open = &resume.Experience{
			Company:     company,
			Position:    position,
			StartDate:   line[m[2]:m[3]],
			EndDate:     endDate,
			Current:     current,
			Description: []string{},
		}
		lastLine = ""
		buffered = false
	}

	flush()
	return entries
}

// splitPositionCompany splits "Engineer at Acme" style text, preferring the
// " at " separator, then " - ". Without a separator the whole text is the
// position and the company is unknown.
func splitPositionCompany(head string) (position, company string) {
	if i := strings.Index(head, " at "); i >= 0 {
		return strings.TrimSpace(head[:i]), strings.TrimSpace(head[i+4:])
	}
	if i := strings.Index(head, " - "); i >= 0 {
		return strings.TrimSpace(head[:i]), strings.TrimSpace(head[i+3:])
	}
	return head, "Unknown"
}
