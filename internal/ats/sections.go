package ats

import "regexp"

// SectionKind is one of the canonical resume sections.
type SectionKind string

const (
	SectionContact    SectionKind = "contact"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
)

var sectionPatterns = []struct {
	kind SectionKind
	re   *regexp.Regexp
}{
	{SectionContact, regexp.MustCompile(`(?i)email|phone|linkedin|github`)},
	{SectionSummary, regexp.MustCompile(`(?i)summary|objective|profile|about me`)},
	{SectionExperience, regexp.MustCompile(`(?i)experience|employment|work history`)},
	{SectionEducation, regexp.MustCompile(`(?i)education|degree|university|college`)},
	{SectionSkills, regexp.MustCompile(`(?i)skills|technologies|competencies`)},
	{SectionProjects, regexp.MustCompile(`(?i)projects|portfolio`)},
}

// Sections returns every SectionKind in detection order.
func Sections() []SectionKind {
	out := make([]SectionKind, len(sectionPatterns))
	for i, p := range sectionPatterns {
		out[i] = p.kind
	}
	return out
}

// SectionReport splits the fixed section list into found and missing.
type SectionReport struct {
	Found   []SectionKind `json:"found" yaml:"found"`
	Missing []SectionKind `json:"missing" yaml:"missing"`
}

// DetectSections matches each section pattern anywhere in text. Position is
// ignored: a "summary" keyword in the middle of a bullet still counts.
func DetectSections(text string) SectionReport {
	r := SectionReport{Found: []SectionKind{}, Missing: []SectionKind{}}
	for _, p := range sectionPatterns {
		if p.re.MatchString(text) {
			r.Found = append(r.Found, p.kind)
		} else {
			r.Missing = append(r.Missing, p.kind)
		}
	}
	return r
}
