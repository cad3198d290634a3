package parser

import (
	"regexp"
	"strings"

	"github.com/resume-forge/resume-forge/internal/resume"
)

var certYearRe = regexp.MustCompile(`\d{4}`)

var certMarkers = []string{"Certified", "Certificate", "License"}

// extractCertifications scans the certifications section line by line. There
// is no accumulation state: each accepted line yields one entry. A line is
// accepted only when it carries one of the certification markers.
func extractCertifications(text string) []resume.Certification {
	if text == "" {
		return nil
	}

	var certs []resume.Certification

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !containsMarker(line) {
			continue
		}

		name := line
		issuer := "Unknown"
		if i := strings.Index(line, " - "); i >= 0 {
			name = strings.TrimSpace(line[:i])
			rest := line[i+3:]
			if j := strings.Index(rest, " - "); j >= 0 {
				rest = rest[:j]
			}
			issuer = strings.TrimSpace(rest)
		}

		date := "Unknown"
		if m := certYearRe.FindString(line); m != "" {
			date = m
		}

		certs = append(certs, resume.Certification{
			Name:   name,
			Issuer: issuer,
			Date:   date,
		})
	}

	return certs
}

func containsMarker(line string) bool {
	for _, marker := range certMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
