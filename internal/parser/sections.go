package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// HeaderSection is the state holding everything before the first recognized
// section header.
const HeaderSection = "header"

type sectionPattern struct {
	name string
	re   *regexp.Regexp
}

func compileSectionPatterns(headers map[string]string) ([]sectionPattern, error) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	patterns := make([]sectionPattern, 0, len(names))
	for _, name := range names {
		// A header is the whole line, optionally followed by a colon.
		re, err := regexp.Compile(`(?i)^(?:` + headers[name] + `)\s*:?\s*$`)
		if err != nil {
			return nil, fmt.Errorf("compiling section header pattern %q: %w", name, err)
		}
		patterns = append(patterns, sectionPattern{name: name, re: re})
	}

	return patterns, nil
}

// SplitSections splits normalized text into labeled sections. It is a
// single-pass state machine over the line sequence: a line matching a header
// pattern switches the current section and is itself discarded; every other
// line is appended to the current section's buffer. Text before the first
// header lands in the "header" section. Sections absent from the text are
// absent from the map.
func (p *Parser) SplitSections(text string) map[string]string {
	buffers := make(map[string][]string)
	state := HeaderSection

	for _, line := range strings.Split(text, "\n") {
		if name, ok := p.matchHeader(line); ok {
			state = name
			continue
		}
		buffers[state] = append(buffers[state], line)
	}

	sections := make(map[string]string, len(buffers))
	for name, lines := range buffers {
		sections[name] = strings.Join(lines, "\n")
	}

	return sections
}

func (p *Parser) matchHeader(line string) (string, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(line))
	if trimmed == "" {
		return "", false
	}

	for _, sp := range p.sections {
		if sp.re.MatchString(trimmed) {
			return sp.name, true
		}
	}

	return "", false
}
