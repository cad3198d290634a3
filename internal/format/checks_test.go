package format

import (
	"strings"
	"testing"

	"github.com/resume-forge/resume-forge/internal/resume"
)

func TestSpacingCheck(t *testing.T) {
	t.Parallel()

	check := &spacingCheck{}

	even := &resume.Resume{Experience: []resume.Experience{{
		Description: []string{
			"Led the migration of the billing platform to the new stack",
			"Reduced the deployment cycle from two weeks down to one day",
		},
	}}}
	if got := check.Check(even); len(got) != 0 {
		t.Fatalf("expected no findings for even descriptions, got %v", got)
	}

	uneven := &resume.Resume{Experience: []resume.Experience{{
		Description: []string{
			"Did things",
			"Led the migration of the billing platform to the new stack and kept it running",
		},
	}}}
	got := check.Check(uneven)
	if !contains(got, "Some descriptions are too short - consider adding more detail") {
		t.Fatalf("expected a short-description finding, got %v", got)
	}
	if !contains(got, "Some descriptions are too long - consider condensing") {
		t.Fatalf("expected a long-description finding, got %v", got)
	}
}

func TestSpacingCheckBulletConsistency(t *testing.T) {
	t.Parallel()

	check := &spacingCheck{}

	mixed := &resume.Resume{Experience: []resume.Experience{{
		Description: []string{
			"- Shipped the rollout across three regions on schedule",
			"Maintained the pipeline and its monitoring dashboards",
		},
	}}}
	if got := check.Check(mixed); !contains(got, "Inconsistent bullet point formatting - standardize bullet style") {
		t.Fatalf("expected a bullet finding, got %v", got)
	}

	uniform := &resume.Resume{Experience: []resume.Experience{{
		Description: []string{
			"- Shipped the rollout across three regions on schedule",
			"- Maintained the pipeline and its monitoring dashboards",
		},
	}}}
	if got := check.Check(uniform); contains(got, "Inconsistent bullet point formatting - standardize bullet style") {
		t.Fatalf("uniform bullets must not be flagged: %v", got)
	}
}

func TestConsistencyCheck(t *testing.T) {
	t.Parallel()

	check := &consistencyCheck{}

	tests := []struct {
		name    string
		entries []resume.Experience
		want    []string
	}{
		{
			name: "uniform year-only dates",
			entries: []resume.Experience{
				{Position: "Engineer", Company: "Acme", StartDate: "2022"},
				{Position: "Analyst", Company: "Globex", StartDate: "2019"},
			},
			want: nil,
		},
		{
			name: "mixed date formats",
			entries: []resume.Experience{
				{Position: "Engineer", Company: "Acme", StartDate: "01/2022"},
				{Position: "Analyst", Company: "Globex", StartDate: "2019"},
			},
			want: []string{"Inconsistent date formats - use consistent format (e.g., 'MM/YYYY')"},
		},
		{
			name: "lowercase position",
			entries: []resume.Experience{
				{Position: "engineer", Company: "Acme", StartDate: "2022"},
			},
			want: []string{"Ensure proper capitalization for position titles and company names"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := check.Check(&resume.Resume{Experience: tt.entries})
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("finding %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestATSCheck(t *testing.T) {
	t.Parallel()

	check := &atsCheck{}

	r := &resume.Resume{RawText: "name | title © experience education skills"}

	got := check.Check(r)

	if !contains(got, "Remove tables - use standard formatting for better ATS compatibility") {
		t.Fatalf("expected a table finding, got %v", got)
	}
	if !contains(got, "Replace special characters with standard alternatives for ATS compatibility") {
		t.Fatalf("expected a glyph finding, got %v", got)
	}
	if contains(got, "Ensure clear section headers are present (Experience, Education, Skills)") {
		t.Fatalf("three headers are present, got %v", got)
	}

	bare := &resume.Resume{RawText: "just some text"}
	if got := check.Check(bare); !contains(got, "Ensure clear section headers are present (Experience, Education, Skills)") {
		t.Fatalf("expected a header finding, got %v", got)
	}
}

func TestStructureCheck(t *testing.T) {
	t.Parallel()

	check := &structureCheck{}

	tests := []struct {
		name    string
		r       *resume.Resume
		finding string
		want    bool
	}{
		{
			name:    "long summary",
			r:       &resume.Resume{Summary: strings.Repeat("a", 501)},
			finding: "Summary is too long - keep it under 3-4 sentences",
			want:    true,
		},
		{
			name: "out of order",
			r: &resume.Resume{Experience: []resume.Experience{
				{StartDate: "2018"}, {StartDate: "2022"},
			}},
			finding: "Ensure experience is listed in reverse chronological order (most recent first)",
			want:    true,
		},
		{
			name: "in order",
			r: &resume.Resume{Experience: []resume.Experience{
				{StartDate: "2022"}, {StartDate: "2018"},
			}},
			finding: "Ensure experience is listed in reverse chronological order (most recent first)",
			want:    false,
		},
		{
			name: "unparsable years are skipped",
			r: &resume.Resume{Experience: []resume.Experience{
				{StartDate: "Jan 2018"}, {StartDate: "2022"},
			}},
			finding: "Ensure experience is listed in reverse chronological order (most recent first)",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := check.Check(tt.r)
			if contains(got, tt.finding) != tt.want {
				t.Fatalf("expected finding=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestAdvisorRunsChecksInOrder(t *testing.T) {
	t.Parallel()

	advisor := NewAdvisor(nil)

	r := &resume.Resume{
		Summary: strings.Repeat("a", 501),
		// Both start dates lead with a 4-digit year so the ordering check
		// compares them, while their formats still differ.
		Experience: []resume.Experience{
			{Position: "engineer", Company: "Acme", StartDate: "2018-06"},
			{Position: "Engineer", Company: "Globex", StartDate: "2022"},
		},
		RawText: "a | b",
	}

	got := advisor.Suggest(r)

	want := []string{
		"Inconsistent date formats - use consistent format (e.g., 'MM/YYYY')",
		"Ensure proper capitalization for position titles and company names",
		"Remove tables - use standard formatting for better ATS compatibility",
		"Ensure clear section headers are present (Experience, Education, Skills)",
		"Summary is too long - keep it under 3-4 sentences",
		"Ensure experience is listed in reverse chronological order (most recent first)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d findings, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("finding %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAdvisorOptimizeSummary(t *testing.T) {
	t.Parallel()

	advisor := NewAdvisor(nil)

	report := advisor.Optimize(&resume.Resume{RawText: "a | b experience education skills summary"})

	if len(report.ImprovementsApplied) != 1 {
		t.Fatalf("expected one improvement, got %v", report.ImprovementsApplied)
	}
	if report.Summary != "Applied 1 formatting improvements" {
		t.Fatalf("unexpected summary: %q", report.Summary)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
