package parser

import (
	"regexp"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
)

var (
	eduDegreeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|Associate)\s+(?:of|in)\s+(\w+)`),
		regexp.MustCompile(`(?i)(B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|Ph\.?D\.?)\s+(?:in\s+)?(\w+)`),
	}
	eduDateRangeRe = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|Present)`)
	gpaRe          = regexp.MustCompile(`(?i)GPA[:\s]+([\d.]+)`)
)

// extractEducation accumulates education entries. A line mentioning a degree
// or an institution opens a new entry; later lines update the open entry in
// place (currently only a GPA pattern).
func extractEducation(text string) []resume.Education {
	if text == "" {
		return nil
	}

	var (
		entries []resume.Education
		open    *resume.Education
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		degree := matchDegree(line)
		institutional := strings.Contains(line, "University") || strings.Contains(line, "College")

		if degree == "" && !institutional {
			if open != nil {
				if m := gpaRe.FindStringSubmatch(line); m != nil {
					open.GPA = m[1]
				}
			}
			continue
		}

		if open != nil {
			entries = append(entries, *open)
		}

		entry := resume.Education{StartDate: "Unknown"}
		if institutional {
			// "Institution, Degree, ..." — first segment is the school,
			// the rest describes the degree.
			parts := strings.Split(line, ",")
			entry.Institution = strings.TrimSpace(parts[0])
			entry.Degree = strings.TrimSpace(strings.Join(parts[1:], " "))
		} else {
			entry.Institution = line
			entry.Degree = degree
		}
		if entry.Degree == "" {
			entry.Degree = "Degree"
		}

		if m := eduDateRangeRe.FindStringSubmatch(line); m != nil {
			entry.StartDate = m[1]
			if m[2] != "Present" {
				entry.EndDate = m[2]
			}
		}

		open = &entry
	}

	if open != nil {
		entries = append(entries, *open)
	}

	return entries
}

func matchDegree(line string) string {
	for _, re := range eduDegreeRes {
		if m := re.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
