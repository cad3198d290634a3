package parser

import (
	"errors"
	"strings"
	"testing"
)

const sampleResume = "Jane Doe\njane@x.com\n555-123-4567\nEXPERIENCE\nEngineer at Acme\n2020 - Present\nBuilt systems\nSKILLS\nPython, SQL, AWS"

func TestParseSampleResume(t *testing.T) {
	p := newTestParser(t)

	r, err := p.Parse(sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.ContactInfo.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", r.ContactInfo.Name)
	}
	if r.ContactInfo.Email != "jane@x.com" {
		t.Fatalf("expected email jane@x.com, got %q", r.ContactInfo.Email)
	}
	if r.ContactInfo.Phone != "555-123-4567" {
		t.Fatalf("expected phone 555-123-4567, got %q", r.ContactInfo.Phone)
	}

	if len(r.Experience) != 1 {
		t.Fatalf("expected 1 experience entry, got %d", len(r.Experience))
	}
	exp := r.Experience[0]
	if exp.Position != "Engineer" || exp.Company != "Acme" {
		t.Fatalf("expected Engineer at Acme, got %q at %q", exp.Position, exp.Company)
	}
	if !exp.Current {
		t.Fatalf("expected a current position")
	}
	if exp.EndDate != "" {
		t.Fatalf("current entries must have no end date, got %q", exp.EndDate)
	}
	if exp.StartDate != "2020" {
		t.Fatalf("expected start date 2020, got %q", exp.StartDate)
	}
	if len(exp.Description) != 1 || exp.Description[0] != "Built systems" {
		t.Fatalf("unexpected description: %v", exp.Description)
	}

	if len(r.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %d: %v", len(r.Skills), r.SkillNames())
	}

	if r.Version != 1 {
		t.Fatalf("expected version 1, got %d", r.Version)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser(t)

	r, err := p.Parse("")
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}

	if r.ContactInfo.Name != "" {
		t.Fatalf("expected empty name, got %q", r.ContactInfo.Name)
	}
	if len(r.Experience) != 0 || len(r.Education) != 0 || len(r.Skills) != 0 || len(r.Certifications) != 0 {
		t.Fatalf("expected an empty record, got %+v", r)
	}
	if r.RawText != "" {
		t.Fatalf("expected empty raw text, got %q", r.RawText)
	}
}

func TestParseRejectsInvalidText(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse(string([]byte{0xff, 0xfe, 0xfd}))
	if err == nil {
		t.Fatalf("expected an error for non-UTF-8 input")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExtractContact(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Jane Doe",
		"jane.doe+jobs@example.io | 41 555 123 4567",
		"San Francisco, CA",
		"linkedin.com/in/jane-doe",
	}, "\n")

	info := extractContact(text)

	if info.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", info.Name)
	}
	if info.Email != "jane.doe+jobs@example.io" {
		t.Fatalf("unexpected email: %q", info.Email)
	}
	if info.Location != "San Francisco, CA" {
		t.Fatalf("unexpected location: %q", info.Location)
	}
	if info.LinkedIn != "https://linkedin.com/in/jane-doe" {
		t.Fatalf("unexpected linkedin: %q", info.LinkedIn)
	}
	if info.Phone == "" {
		t.Fatalf("expected a phone match")
	}
}

func TestExtractNameTruncatesLongLines(t *testing.T) {
	t.Parallel()

	name := extractName("Jane Doe Senior Staff Software Engineer\njane@x.com")
	if name != "Jane Doe" {
		t.Fatalf("expected truncation to two tokens, got %q", name)
	}
}

func TestExtractExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect []struct {
			position, company, start, end string
			current                       bool
			descriptions                  int
		}
	}{
		{
			name: "inline position and dates",
			text: "Senior Engineer at Globex Jan 2018 - 2020\nShipped the platform\nCut costs by 30%",
			expect: []struct {
				position, company, start, end string
				current                       bool
				descriptions                  int
			}{
				{"Senior Engineer", "Globex", "Jan 2018", "2020", false, 2},
			},
		},
		{
			name: "dash separator",
			text: "Engineer - Initech\n2015 - 2018",
			expect: []struct {
				position, company, start, end string
				current                       bool
				descriptions                  int
			}{
				{"Engineer", "Initech", "2015", "2018", false, 0},
			},
		},
		{
			name: "title line above date line",
			text: "Engineer at Acme\n2020 - Present\nBuilt systems",
			expect: []struct {
				position, company, start, end string
				current                       bool
				descriptions                  int
			}{
				{"Engineer", "Acme", "2020", "", true, 1},
			},
		},
		{
			name: "multiple entries flush in order",
			text: "Lead at Acme\n2021 - Current\nRan the team\nEngineer at Globex\n2018 - 2021\nBuilt it",
			expect: []struct {
				position, company, start, end string
				current                       bool
				descriptions                  int
			}{
				{"Lead", "Acme", "2021", "", true, 1},
				{"Engineer", "Globex", "2018", "2021", false, 1},
			},
		},
		{
			name: "no separator falls back to unknown company",
			text: "Freelancing\n2019 - 2020",
			expect: []struct {
				position, company, start, end string
				current                       bool
				descriptions                  int
			}{
				{"Freelancing", "Unknown", "2019", "2020", false, 0},
			},
		},
		{
			name:   "no date lines yield no entries",
			text:   "Worked on things\nDid more things",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries := extractExperience(tt.text)
			if len(entries) != len(tt.expect) {
				t.Fatalf("expected %d entries, got %d: %+v", len(tt.expect), len(entries), entries)
			}
			for i, want := range tt.expect {
				got := entries[i]
				if got.Position != want.position || got.Company != want.company {
					t.Fatalf("entry %d: expected %q at %q, got %q at %q", i, want.position, want.company, got.Position, got.Company)
				}
				if got.StartDate != want.start || got.EndDate != want.end || got.Current != want.current {
					t.Fatalf("entry %d: unexpected dates: %+v", i, got)
				}
				if len(got.Description) != want.descriptions {
					t.Fatalf("entry %d: expected %d description lines, got %v", i, want.descriptions, got.Description)
				}
			}
		})
	}
}

func TestExtractExperienceFiltersNumericLines(t *testing.T) {
	t.Parallel()

	entries := extractExperience("Engineer at Acme\n2020 - 2022\nBuilt systems\n42\nShipped more")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if len(entries[0].Description) != 2 {
		t.Fatalf("expected numeric line to be filtered, got %v", entries[0].Description)
	}
}

func TestExtractEducation(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Stanford University, B.S. Computer Science, 2014 - 2018",
		"GPA: 3.8",
		"Bachelor of Arts in History",
	}, "\n")

	entries := extractEducation(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	first := entries[0]
	if first.Institution != "Stanford University" {
		t.Fatalf("unexpected institution: %q", first.Institution)
	}
	if !strings.Contains(first.Degree, "B.S. Computer Science") {
		t.Fatalf("unexpected degree: %q", first.Degree)
	}
	if first.StartDate != "2014" || first.EndDate != "2018" {
		t.Fatalf("unexpected dates: %+v", first)
	}
	if first.GPA != "3.8" {
		t.Fatalf("expected GPA 3.8, got %q", first.GPA)
	}

	second := entries[1]
	if second.Institution != "Bachelor of Arts in History" {
		t.Fatalf("unexpected institution: %q", second.Institution)
	}
	if second.Degree != "Bachelor of Arts" {
		t.Fatalf("unexpected degree: %q", second.Degree)
	}
	if second.StartDate != "Unknown" {
		t.Fatalf("expected unknown start date, got %q", second.StartDate)
	}
}

func TestExtractEducationDefaultsDegree(t *testing.T) {
	t.Parallel()

	entries := extractEducation("City College")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Degree != "Degree" {
		t.Fatalf("expected default degree, got %q", entries[0].Degree)
	}
}

func TestExtractCertifications(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"AWS Certified Solutions Architect - Amazon - 2021",
		"Random line without markers",
		"Certificate of Completion",
	}, "\n")

	certs := extractCertifications(text)
	if len(certs) != 2 {
		t.Fatalf("expected 2 certifications, got %d: %+v", len(certs), certs)
	}

	first := certs[0]
	if first.Name != "AWS Certified Solutions Architect" {
		t.Fatalf("unexpected name: %q", first.Name)
	}
	if first.Issuer != "Amazon" {
		t.Fatalf("unexpected issuer: %q", first.Issuer)
	}
	if first.Date != "2021" {
		t.Fatalf("unexpected date: %q", first.Date)
	}

	second := certs[1]
	if second.Issuer != "Unknown" || second.Date != "Unknown" {
		t.Fatalf("expected unknown issuer and date, got %+v", second)
	}
}

func TestExtractSkillsKeepsCaseSensitiveNames(t *testing.T) {
	p := newTestParser(t)

	// The comma-list pass adds tokens verbatim; "python" and "Python" are
	// distinct by design.
	skills := p.extractSkills("SKILLS\npython, Elixir, Haskell\nPython is mentioned here too")

	names := make(map[string]bool)
	for _, s := range skills {
		names[s.Name] = true
	}

	if !names["Python"] {
		t.Fatalf("expected vocabulary entry Python, got %v", names)
	}
	if !names["python"] {
		t.Fatalf("expected literal list entry python, got %v", names)
	}
	if !names["Elixir"] || !names["Haskell"] {
		t.Fatalf("expected comma-list entries, got %v", names)
	}
}

func TestExtractSummaryTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 600)
	got := extractSummary(long)
	if len(got) != maxSummaryLength+3 {
		t.Fatalf("expected %d chars, got %d", maxSummaryLength+3, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix")
	}

	if got := extractSummary("short  summary"); got != "short summary" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
