package ats

import "strings"

// Category tags a known skill as a hard (technical) or soft (interpersonal) skill.
type Category string

const (
	HardSkill Category = "hard"
	SoftSkill Category = "soft"
)

// Skill is one term of the fixed taxonomy.
type Skill struct {
	Term     string   `json:"term" yaml:"term"`
	Category Category `json:"category" yaml:"category"`
}

// hardSkills and softSkills are listed in match order. Single-letter terms
// ("c", "r") are left out: under substring matching they would hit almost
// every token.
var hardSkills = []string{
	"javascript", "typescript", "python", "java", "golang", "rust", "ruby", "php",
	"swift", "kotlin", "scala", "sql", "html", "css", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "spring", "graphql", "aws", "azure",
	"gcp", "docker", "kubernetes", "terraform", "jenkins", "git", "linux",
	"mongodb", "postgresql", "mysql", "redis", "kafka", "elasticsearch",
	"machine learning", "tensorflow", "pytorch", "pandas", "tableau", "excel",
	"agile", "scrum", "jira",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "collaboration", "problem solving",
	"critical thinking", "adaptability", "creativity", "mentoring",
	"time management", "negotiation", "presentation",
}

// taxonomy is built once; nothing writes to it afterwards.
var taxonomy = buildTaxonomy()

type taxonomyEntry struct {
	skill  Skill
	needle string // term with dots and spaces removed
}

func buildTaxonomy() []taxonomyEntry {
	entries := make([]taxonomyEntry, 0, len(hardSkills)+len(softSkills))
	add := func(terms []string, c Category) {
		for _, t := range terms {
			entries = append(entries, taxonomyEntry{
				skill:  Skill{Term: t, Category: c},
				needle: strings.NewReplacer(".", "", " ", "").Replace(t),
			})
		}
	}
	add(hardSkills, HardSkill)
	add(softSkills, SoftSkill)
	return entries
}

// Taxonomy returns a copy of the known skills in match order.
func Taxonomy() []Skill {
	out := make([]Skill, len(taxonomy))
	for i, e := range taxonomy {
		out[i] = e.skill
	}
	return out
}
