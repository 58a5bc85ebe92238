package ats

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// ExtractKeywords returns the taxonomy skills found in text, in taxonomy order.
//
// A skill counts as found when some lowercase alphanumeric token of text
// contains the skill's term (dots and spaces removed) as a substring, so
// "javascripting" yields "javascript" and "javascript" also yields "java".
func ExtractKeywords(text string) []Skill {
	tokens := uniqueTokens(text)
	found := []Skill{}
	if len(tokens) == 0 {
		return found
	}
	for _, e := range taxonomy {
		for _, tok := range tokens {
			if strings.Contains(tok, e.needle) {
				found = append(found, e.skill)
				break
			}
		}
	}
	return found
}

func uniqueTokens(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// KeywordAnalysis compares resume skills against job description skills.
type KeywordAnalysis struct {
	Matched    []string `json:"matched" yaml:"matched"`
	Missing    []string `json:"missing" yaml:"missing"`
	HardSkills []string `json:"hard_skills" yaml:"hard_skills"`
	SoftSkills []string `json:"soft_skills" yaml:"soft_skills"`
}

const maxMissingKeywords = 10

func compareKeywords(resume, job []Skill) KeywordAnalysis {
	ka := KeywordAnalysis{
		Matched:    []string{},
		Missing:    []string{},
		HardSkills: []string{},
		SoftSkills: []string{},
	}
	inResume := make(map[string]bool, len(resume))
	for _, s := range resume {
		inResume[s.Term] = true
		switch s.Category {
		case HardSkill:
			ka.HardSkills = append(ka.HardSkills, s.Term)
		case SoftSkill:
			ka.SoftSkills = append(ka.SoftSkills, s.Term)
		}
	}
	for _, s := range job {
		if inResume[s.Term] {
			ka.Matched = append(ka.Matched, s.Term)
		} else if len(ka.Missing) < maxMissingKeywords {
			ka.Missing = append(ka.Missing, s.Term)
		}
	}
	return ka
}
