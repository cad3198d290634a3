package parser

import (
	"regexp"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
)

// Contact patterns operate over the whole document, not a single section:
// contact details usually sit in the preamble but emails and profile links
// can appear anywhere.
var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)

	// Phone variants are tried in priority order; the first match anywhere
	// in the text wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	// "City, ST" then "City, Country"; only the opening of the document is
	// searched since locations further down are usually employer addresses.
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z][a-z]+)`),
	}
)

const locationSearchWindow = 500

func extractContact(text string) resume.ContactInfo {
	info := resume.ContactInfo{
		Name:     extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    extractPhone(text),
		Location: extractLocation(text),
	}

	if link := linkedinRe.FindString(text); link != "" {
		info.LinkedIn = "https://" + link
	}

	return info
}

// extractName takes the first non-empty line. A line with more than four
// tokens is unlikely to be just a name (probably a title or a sentence), so
// it is truncated to the first two tokens.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) > 4 {
			return strings.Join(tokens[:2], " ")
		}
		return line
	}
	return ""
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractLocation(text string) string {
	window := []rune(text)
	if len(window) > locationSearchWindow {
		window = window[:locationSearchWindow]
	}
	head := string(window)

	for _, re := range locationRes {
		if m := re.FindStringSubmatch(head); m != nil {
			return m[1] + ", " + m[2]
		}
	}
	return ""
}
