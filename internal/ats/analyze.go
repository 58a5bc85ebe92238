// Package ats scores resume text the way a simple applicant tracking system
// parser would, optionally against a job description.
//
// Everything here is a pure function of its string inputs: no I/O, no clock,
// no shared mutable state. Callers may run Analyze concurrently.
package ats

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput is returned by Analyze when the resume is blank.
var ErrEmptyInput = errors.New("resume text is empty")

// Sub-score ceilings.
const (
	MaxKeywordMatch = 35
	MaxStructure    = 20
	MaxFormatting   = 15
	MaxImpact       = 10
	MaxReadability  = 10
	MaxRelevance    = 10

	// neutralKeywordMatch is used when there is no job description to compare against.
	neutralKeywordMatch = 25
	formattingPenalty   = 3
	lowKeywordMatch     = 20
	maxRecommendations  = 5
)

var achievementRe = regexp.MustCompile(`\d+%|\$\d[\d,]*(?:\.\d+)?|\d+\+`)

// Breakdown holds the six independently bounded sub-scores.
type Breakdown struct {
	KeywordMatch int `json:"keyword_match" yaml:"keyword_match"`
	Structure    int `json:"structure" yaml:"structure"`
	Formatting   int `json:"formatting" yaml:"formatting"`
	Impact       int `json:"impact" yaml:"impact"`
	Readability  int `json:"readability" yaml:"readability"`
	Relevance    int `json:"relevance" yaml:"relevance"`
}

// Total sums the sub-scores.
func (b Breakdown) Total() int {
	return b.KeywordMatch + b.Structure + b.Formatting + b.Impact + b.Readability + b.Relevance
}

// Recommendation is one suggested fix. Impact is a priority weight; the list
// is kept in the order the rules fired, not sorted by it.
type Recommendation struct {
	Category string `json:"category" yaml:"category"`
	Issue    string `json:"issue" yaml:"issue"`
	Fix      string `json:"fix" yaml:"fix"`
	Impact   int    `json:"impact" yaml:"impact"`
}

// Result is the full report for one resume. Treat it as read-only.
type Result struct {
	OverallScore     int              `json:"overall_score" yaml:"overall_score"`
	Breakdown        Breakdown        `json:"breakdown" yaml:"breakdown"`
	Recommendations  []Recommendation `json:"recommendations" yaml:"recommendations"`
	Keywords         KeywordAnalysis  `json:"keywords" yaml:"keywords"`
	Sections         SectionReport    `json:"sections" yaml:"sections"`
	FormattingIssues []string         `json:"formatting_issues" yaml:"formatting_issues"`
}

// Grade labels the overall score for display.
func (r Result) Grade() string {
	switch {
	case r.OverallScore >= 80:
		return "excellent"
	case r.OverallScore >= 60:
		return "good"
	case r.OverallScore >= 40:
		return "fair"
	default:
		return "poor"
	}
}

// Analyze scores resumeText. jobDescription may be empty, in which case the
// keyword sub-score falls back to a neutral value.
func Analyze(resumeText, jobDescription string) (Result, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Result{}, ErrEmptyInput
	}

	resumeKW := ExtractKeywords(resumeText)
	var jobKW []Skill
	if jobDescription != "" {
		jobKW = ExtractKeywords(jobDescription)
	}
	keywords := compareKeywords(resumeKW, jobKW)
	sections := DetectSections(resumeText)
	defects := AuditFormatting(resumeText)

	// Each sub-score is rounded on its own before summing.
	b := Breakdown{
		KeywordMatch: neutralKeywordMatch,
		Structure:    round(float64(len(sections.Found)) / float64(len(sectionPatterns)) * MaxStructure),
		Formatting:   max(0, MaxFormatting-formattingPenalty*len(defects)),
		Impact:       min(MaxImpact, 2*len(achievementRe.FindAllStringIndex(resumeText, -1))),
		Readability:  5,
		Relevance:    5,
	}
	if len(jobKW) > 0 {
		b.KeywordMatch = round(float64(len(keywords.Matched)) / float64(len(jobKW)) * MaxKeywordMatch)
	}
	if n := utf8.RuneCountInString(resumeText); n >= 800 && n < 2000 {
		b.Readability = MaxReadability
	}
	if len(resumeKW) > 5 {
		b.Relevance = MaxRelevance
	}

	return Result{
		OverallScore:     b.Total(),
		Breakdown:        b,
		Recommendations:  recommend(b, sections, defects),
		Keywords:         keywords,
		Sections:         sections,
		FormattingIssues: defects,
	}, nil
}

func recommend(b Breakdown, sections SectionReport, defects []string) []Recommendation {
	recs := []Recommendation{}
	if b.KeywordMatch < lowKeywordMatch {
		recs = append(recs, Recommendation{
			Category: "Keywords",
			Issue:    "Low keyword match with the job description",
			Fix:      "Work the skills and technologies named in the job description into your skills and experience sections",
			Impact:   15,
		})
	}
	if len(sections.Missing) > 2 {
		names := make([]string, len(sections.Missing))
		for i, s := range sections.Missing {
			names[i] = string(s)
		}
		recs = append(recs, Recommendation{
			Category: "Structure",
			Issue:    fmt.Sprintf("Missing sections: %s", strings.Join(names, ", ")),
			Fix:      "Add clearly labeled headings for each missing section",
			Impact:   10,
		})
	}
	if len(defects) > 0 {
		recs = append(recs, Recommendation{
			Category: "Formatting",
			Issue:    defects[0],
			Fix:      "Use a simple single-column layout with contact details as plain text",
			Impact:   8,
		})
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func round(f float64) int {
	return int(math.Round(f))
}
