// Package vocabulary holds the word lists the pipeline matches against.
// A Vocabulary is loaded once at startup and treated as read-only afterwards:
// every component keeps a reference to the same instance, which is what makes
// concurrent pipelines safe without locks.
package vocabulary

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Vocabulary enumerates the configurable word lists of the pipeline: the
// known-skill names the skills extractor recognizes, the keyword lists the
// scoring engine counts, and the technology terms the gap analyzer and ATS
// optimizer look for in job descriptions.
type Vocabulary struct {
	// Skills are matched case-insensitively against resume text; matched
	// entries keep this exact spelling in the record.
	Skills []string `mapstructure:"skills"`

	// DomainKeywords are counted in the lower-cased resume text for the
	// informational keyword analysis.
	DomainKeywords []string `mapstructure:"domain-keywords"`

	// TechTerms are matched as whole words in job descriptions when
	// extracting ATS keywords.
	TechTerms []string `mapstructure:"tech-terms"`

	// JobSkills are matched as lower-cased substrings in job descriptions
	// during skills-gap analysis.
	JobSkills []string `mapstructure:"job-skills"`

	// ATSKeywords are soft-skill terms ATS systems commonly rank on.
	ATSKeywords []string `mapstructure:"ats-keywords"`

	StrongVerbs []string `mapstructure:"strong-verbs"`
	WeakVerbs   []string `mapstructure:"weak-verbs"`
	VagueWords  []string `mapstructure:"vague-words"`
	StopWords   []string `mapstructure:"stop-words"`

	// SectionHeaders maps a section name to the alternation of header
	// spellings that open it.
	SectionHeaders map[string]string `mapstructure:"section-headers"`
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return &Vocabulary{
		Skills: []string{
			"Python", "JavaScript", "Java", "C++", "C#", "SQL", "React", "Node.js",
			"Angular", "Vue.js", "TypeScript", "HTML", "CSS", "AWS", "Docker",
			"Kubernetes", "Git", "Linux", "Machine Learning", "Data Science",
			"Agile", "Scrum", "Project Management", "TensorFlow", "PyTorch",
			"MongoDB", "PostgreSQL", "Redis", "Kafka", "REST API", "GraphQL",
		},
		DomainKeywords: []string{
			"experience", "skills", "education", "certification",
			"project", "achievement", "leadership", "management",
			"development", "implementation", "optimization", "analysis",
		},
		TechTerms: []string{
			"Python", "JavaScript", "Java", "SQL", "AWS", "Docker",
			"Kubernetes", "React", "Angular",
		},
		JobSkills: []string{
			"python", "javascript", "java", "c++", "sql", "react", "node.js",
			"aws", "docker", "kubernetes", "git", "linux", "machine learning",
			"data science", "agile", "scrum", "project management", "mongodb",
			"postgresql", "redis", "kafka", "rest api", "graphql", "typescript",
			"angular", "vue.js", "html", "css", "tensorflow", "pytorch",
		},
		ATSKeywords: []string{
			"leadership", "management", "communication", "teamwork",
			"problem solving", "analytical", "strategic", "project management",
			"agile", "scrum", "collaboration", "innovation", "results-driven",
		},
		StrongVerbs: []string{
			"achieved", "improved", "increased", "decreased", "reduced",
			"developed", "created", "designed", "implemented", "managed",
			"led", "coordinated", "executed", "delivered", "optimized",
			"enhanced", "streamlined", "established", "launched", "built",
		},
		WeakVerbs: []string{
			"worked", "did", "made", "helped", "assisted", "responsible for",
		},
		VagueWords: []string{
			"various", "many", "some", "several", "assisted with",
		},
		StopWords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
			"for", "of", "with", "by",
		},
		SectionHeaders: map[string]string{
			"summary":        `summary|profile|objective|about`,
			"experience":     `experience|work\s+experience|employment|professional\s+experience`,
			"education":      `education|academic|qualifications`,
			"skills":         `skills|technical\s+skills|competencies`,
			"certifications": `certifications|certificates|credentials`,
			"projects":       `projects|portfolio`,
		},
	}
}

// Load decodes configuration overrides on top of the default vocabulary.
// Only keys present in the override replace their defaults.
func Load(overrides map[string]any) (*Vocabulary, error) {
	vocab := Default()
	if len(overrides) == 0 {
		return vocab, nil
	}

	// ZeroFields clears a list before decoding into it; without it an
	// override shorter than the default would keep the default's tail.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ZeroFields: true,
		Result:     vocab,
	})
	if err != nil {
		return nil, fmt.Errorf("building vocabulary decoder: %w", err)
	}

	if err := decoder.Decode(overrides); err != nil {
		return nil, fmt.Errorf("decoding vocabulary overrides: %w", err)
	}

	return vocab, nil
}

// StopWordSet returns the stop words as a lookup set.
func (v *Vocabulary) StopWordSet() map[string]bool {
	set := make(map[string]bool, len(v.StopWords))
	for _, w := range v.StopWords {
		set[w] = true
	}
	return set
}
