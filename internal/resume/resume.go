// Package resume defines the structured career record produced by the parser
// and the in-memory store the CLI keeps records in.
package resume

import (
	"encoding/json"
	"os"
	"time"
)

// ContactInfo holds contact details extracted from the document header.
// Only Name is always populated; every other field is best-effort.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is a single employment entry. When Current is true EndDate is
// empty; the two are never set together.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Honors       []string `json:"honors,omitempty"`
}

// Skill is identified by its exact name. No case normalization is applied:
// "Python" and "python" are distinct entries, matching how the extractor
// reports them.
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Certification is a single certification or license entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Version is a point-in-time snapshot of a record kept by the store.
type Version struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Changes   string    `json:"changes,omitempty"`
	Snapshot  *Resume   `json:"snapshot"`
}

// Resume aggregates everything extracted from one document. The parser
// creates it once per parse; scoring components are read-only consumers and
// never mutate it.
type Resume struct {
	ID         string    `json:"id,omitempty"`
	Filename   string    `json:"filename,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitempty"`

	ContactInfo    ContactInfo     `json:"contact_info"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	RawText        string          `json:"raw_text,omitempty"`

	Version  int        `json:"version"`
	Versions []*Version `json:"versions,omitempty"`
}

// SkillNames returns the skill names in record order.
func (r *Resume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// DescriptionLines returns every experience description line in record order.
func (r *Resume) DescriptionLines() []string {
	var lines []string
	for _, exp := range r.Experience {
		lines = append(lines, exp.Description...)
	}
	return lines
}

// Clone returns a deep copy of the record without its version history.
func (r *Resume) Clone() *Resume {
	clone := *r
	clone.Versions = nil

	clone.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		clone.Experience[i] = exp
		clone.Experience[i].Description = append([]string(nil), exp.Description...)
		clone.Experience[i].Achievements = append([]string(nil), exp.Achievements...)
	}

	clone.Education = make([]Education, len(r.Education))
	for i, edu := range r.Education {
		clone.Education[i] = edu
		clone.Education[i].Honors = append([]string(nil), edu.Honors...)
	}

	clone.Skills = append([]Skill(nil), r.Skills...)
	clone.Certifications = append([]Certification(nil), r.Certifications...)

	return &clone
}

// DumpToTmpFile writes the record as indented JSON to a temporary file and
// returns its name.
func (r *Resume) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "resume_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
