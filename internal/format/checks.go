package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/resume-forge/resume-forge/internal/resume"
)

const maxSummaryLength = 500

// spacingCheck flags uneven description lengths and mixed bullet markers
// within an entry.
type spacingCheck struct{}

func (c *spacingCheck) Name() string { return "spacing" }

func (c *spacingCheck) Check(r *resume.Resume) []string {
	var findings []string

	lines := r.DescriptionLines()
	if len(lines) > 0 {
		total := 0
		for _, desc := range lines {
			total += len(desc)
		}
		avg := float64(total) / float64(len(lines))

		short, long := false, false
		for _, desc := range lines {
			if float64(len(desc)) < avg*0.5 {
				short = true
			}
			if float64(len(desc)) > avg*1.5 {
				long = true
			}
		}
		if short {
			findings = append(findings, "Some descriptions are too short - consider adding more detail")
		}
		if long {
			findings = append(findings, "Some descriptions are too long - consider condensing")
		}
	}

	if !bulletsConsistent(r) {
		findings = append(findings, "Inconsistent bullet point formatting - standardize bullet style")
	}

	return findings
}

// bulletsConsistent reports whether every description line within each entry
// agrees with that entry's first line on having a bullet marker.
func bulletsConsistent(r *resume.Resume) bool {
	for _, exp := range r.Experience {
		if len(exp.Description) == 0 {
			continue
		}
		first := hasBullet(exp.Description[0])
		for _, desc := range exp.Description[1:] {
			if hasBullet(desc) != first {
				return false
			}
		}
	}
	return true
}

func hasBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
}

// consistencyCheck flags mixed date formats across experience start dates
// and lower-cased position or company names.
type consistencyCheck struct{}

func (c *consistencyCheck) Name() string { return "consistency" }

func (c *consistencyCheck) Check(r *resume.Resume) []string {
	var findings []string

	formats := make(map[string]bool)
	for _, exp := range r.Experience {
		if exp.StartDate != "" {
			formats[dateFormat(exp.StartDate)] = true
		}
	}
	if len(formats) > 1 {
		findings = append(findings, "Inconsistent date formats - use consistent format (e.g., 'MM/YYYY')")
	}

	capitalization := false
	for _, exp := range r.Experience {
		if exp.Position != "" && !startsUpper(exp.Position) {
			capitalization = true
		}
		if exp.Company != "" && !startsUpper(exp.Company) {
			capitalization = true
		}
	}
	if capitalization {
		findings = append(findings, "Ensure proper capitalization for position titles and company names")
	}

	return findings
}

func dateFormat(date string) string {
	switch {
	case strings.Contains(date, "/"):
		return "slash"
	case strings.Contains(date, "-"):
		return "dash"
	case len(date) == 4 && isDigits(date):
		return "year_only"
	default:
		return "other"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// atsCheck flags characters and missing headers that trip ATS parsers.
type atsCheck struct{}

func (c *atsCheck) Name() string { return "ats" }

func (c *atsCheck) Check(r *resume.Resume) []string {
	var findings []string

	if strings.ContainsAny(r.RawText, "|\t") {
		findings = append(findings, "Remove tables - use standard formatting for better ATS compatibility")
	}

	for _, glyph := range []string{"©", "®", "™", "•"} {
		if strings.Contains(r.RawText, glyph) {
			findings = append(findings, "Replace special characters with standard alternatives for ATS compatibility")
			break
		}
	}

	lower := strings.ToLower(r.RawText)
	found := 0
	for _, header := range []string{"experience", "education", "skills", "summary"} {
		if strings.Contains(lower, header) {
			found++
		}
	}
	if found < 3 {
		findings = append(findings, "Ensure clear section headers are present (Experience, Education, Skills)")
	}

	return findings
}

// structureCheck flags an overlong summary and experience entries out of
// reverse-chronological order. Ordering compares only the leading 4-digit
// year of each start date; entries whose year does not parse are skipped,
// so mixed formats like "Jan 2020" never trip the check.
type structureCheck struct{}

func (c *structureCheck) Name() string { return "structure" }

func (c *structureCheck) Check(r *resume.Resume) []string {
	var findings []string

	if len(r.Summary) > maxSummaryLength {
		findings = append(findings, "Summary is too long - keep it under 3-4 sentences")
	}

	if !reverseChronological(r.Experience) {
		findings = append(findings, "Ensure experience is listed in reverse chronological order (most recent first)")
	}

	return findings
}

func reverseChronological(entries []resume.Experience) bool {
	for i := 0; i+1 < len(entries); i++ {
		current, okA := startYear(entries[i].StartDate)
		next, okB := startYear(entries[i+1].StartDate)
		if okA && okB && current < next {
			return false
		}
	}
	return true
}

func startYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, year > 0
}
