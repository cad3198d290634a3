package match

import (
	"math"
	"strings"
	"testing"

	"github.com/resume-forge/resume-forge/internal/ats"
	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/skills"
	"github.com/resume-forge/resume-forge/internal/vocabulary"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(vocabulary.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestMatchCombinesBothAnalyses(t *testing.T) {
	m := newTestMatcher(t)

	r := &resume.Resume{
		Skills:  []resume.Skill{{Name: "Python"}},
		RawText: "python experience",
	}

	got := m.Match(r, "We want Python, Docker, Kubernetes")

	if got.ATSAnalysis.MatchScore == nil {
		t.Fatalf("expected an ATS match score")
	}
	want := int(math.Round(got.SkillsAnalysis.MatchPercentage*0.6 + float64(*got.ATSAnalysis.MatchScore)*0.4))
	if got.OverallMatchScore != want {
		t.Fatalf("expected overall score %d, got %d", want, got.OverallMatchScore)
	}

	if got.SkillsAnalysis.MatchPercentage != 33.33 {
		t.Fatalf("unexpected skill match: %v", got.SkillsAnalysis.MatchPercentage)
	}
}

func TestOverallScoreFormula(t *testing.T) {
	t.Parallel()

	score := 50
	tests := []struct {
		name   string
		skills skills.GapAnalysis
		ats    ats.Optimization
		want   int
	}{
		{
			name:   "weighted average",
			skills: skills.GapAnalysis{MatchPercentage: 100},
			ats:    ats.Optimization{MatchScore: &score},
			want:   80,
		},
		{
			name:   "missing ats score counts as zero",
			skills: skills.GapAnalysis{MatchPercentage: 50},
			ats:    ats.Optimization{},
			want:   30,
		},
		{
			name:   "rounds half up",
			skills: skills.GapAnalysis{MatchPercentage: 33.33},
			ats:    ats.Optimization{MatchScore: &score},
			want:   40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := overallScore(tt.skills, tt.ats); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	skillsAnalysis := skills.GapAnalysis{
		MatchPercentage: 25,
		MissingSkills:   []string{"aws", "docker", "kafka", "kubernetes"},
	}
	atsAnalysis := ats.Optimization{
		Suggestions: []string{"first", "second", "third"},
	}

	got := recommendations(skillsAnalysis, atsAnalysis)

	want := []string{
		"Add more skills from the job description to improve your match",
		"Prioritize adding these skills: aws, docker, kafka",
		"first",
		"second",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recommendation %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRecommendationsHighMatch(t *testing.T) {
	t.Parallel()

	got := recommendations(skills.GapAnalysis{MatchPercentage: 90}, ats.Optimization{})

	for _, rec := range got {
		if strings.Contains(rec, "Add more skills") {
			t.Fatalf("high matches must not get the low-match hint: %v", got)
		}
	}
	if len(got) != 0 {
		t.Fatalf("expected no recommendations, got %v", got)
	}
}
