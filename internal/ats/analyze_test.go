package ats

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filler = "Built internal tools and maintained services for the platform team."

// padTo appends filler lines to s until it is exactly n runes long.
func padTo(s string, n int) string {
	var b strings.Builder
	b.WriteString(s)
	for utf8.RuneCountInString(b.String()) < n {
		b.WriteString("\n" + filler)
	}
	return string([]rune(b.String())[:n])
}

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t  \n"} {
		_, err := Analyze(in, "python")
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestAnalyze_WellFormedResumeWithoutJob(t *testing.T) {
	resume := padTo(strings.Join([]string{
		"Jane Doe",
		"Email: jane.doe@example.com",
		"Phone: 555-123-4567",
		"Experience",
		"Software Engineer at Acme",
		"Education",
		"BSc Computer Science",
		"Skills: Python, AWS",
	}, "\n"), 1200)
	require.Equal(t, 1200, utf8.RuneCountInString(resume))

	r, err := Analyze(resume, "")
	require.NoError(t, err)

	assert.Subset(t, r.Sections.Found, []SectionKind{SectionExperience, SectionEducation, SectionSkills})
	assert.Empty(t, r.FormattingIssues)
	assert.Equal(t, 25, r.Breakdown.KeywordMatch)
	assert.Equal(t, 10, r.Breakdown.Readability)
	assert.Equal(t, MaxFormatting, r.Breakdown.Formatting)
	assert.Equal(t, r.Breakdown.Total(), r.OverallScore)
}

func TestAnalyze_TinyResume(t *testing.T) {
	r, err := Analyze("Hi", "")
	require.NoError(t, err)

	assert.Contains(t, r.FormattingIssues, DefectTooShort)
	assert.Equal(t, 0, r.Breakdown.Structure)
	assert.Equal(t, 3, r.Breakdown.Formatting)
	assert.Equal(t, 38, r.OverallScore)
	assert.Equal(t, "poor", r.Grade())
}

func TestAnalyze_KeywordMatchAgainstJob(t *testing.T) {
	r, err := Analyze("Python and AWS", "Python, Java, AWS, Docker")
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "aws"}, r.Keywords.Matched)
	assert.Equal(t, []string{"java", "docker"}, r.Keywords.Missing)
	assert.Equal(t, 18, r.Breakdown.KeywordMatch)
}

func TestAnalyze_RecommendationOrder(t *testing.T) {
	// Long enough and multi-line, but no phone or email: exactly two defects.
	resume := "Experience\n" + lines(filler, 12)
	r, err := Analyze(resume, "Kubernetes Terraform Golang")
	require.NoError(t, err)

	require.Equal(t, []string{DefectNoPhone, DefectNoEmail}, r.FormattingIssues)
	require.Greater(t, len(r.Sections.Missing), 2)
	require.Less(t, r.Breakdown.KeywordMatch, 20)

	require.Len(t, r.Recommendations, 3)
	assert.Equal(t, "Keywords", r.Recommendations[0].Category)
	assert.Equal(t, 15, r.Recommendations[0].Impact)
	assert.Equal(t, "Structure", r.Recommendations[1].Category)
	assert.Contains(t, r.Recommendations[1].Issue, "contact, summary, education, skills, projects")
	assert.Equal(t, "Formatting", r.Recommendations[2].Category)
	assert.Equal(t, DefectNoPhone, r.Recommendations[2].Issue)
}

func TestAnalyze_NoRecommendationsForStrongResume(t *testing.T) {
	resume := padTo(strings.Join([]string{
		"jane@example.com | 555-123-4567",
		"Summary", "Experience", "Education", "Skills", "Projects",
	}, "\n"), 1000)
	r, err := Analyze(resume, "")
	require.NoError(t, err)
	assert.Empty(t, r.Recommendations)
}

func TestAnalyze_ImpactCounting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "none", text: "did some work", want: 0},
		{name: "percentage", text: "cut latency 40%", want: 2},
		{name: "dollars and plus", text: "saved $1,200,000 across 10+ teams", want: 4},
		{name: "capped", text: "1% 2% 3% 4% 5% 6% 7%", want: MaxImpact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Analyze(tt.text, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Breakdown.Impact)
		})
	}
}

func TestAnalyze_ReadabilityAndRelevanceBands(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		readability int
	}{
		{name: "below band", length: 799, readability: 5},
		{name: "band start", length: 800, readability: 10},
		{name: "band end exclusive", length: 2000, readability: 5},
		{name: "inside band", length: 1999, readability: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Analyze(padTo("Resume", tt.length), "")
			require.NoError(t, err)
			assert.Equal(t, tt.readability, r.Breakdown.Readability)
		})
	}

	r, err := Analyze("python java golang docker kubernetes", "")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Breakdown.Relevance)

	r, err = Analyze("python java golang docker kubernetes terraform", "")
	require.NoError(t, err)
	assert.Equal(t, 10, r.Breakdown.Relevance)
}

func TestAnalyze_NoJobAlwaysNeutralKeywordScore(t *testing.T) {
	for _, resume := range []string{"x", "python", strings.Repeat("leadership docker ", 100)} {
		r, err := Analyze(resume, "")
		require.NoError(t, err)
		assert.Equal(t, 25, r.Breakdown.KeywordMatch)
	}
	r, err := Analyze("python", "a job with no known terms")
	require.NoError(t, err)
	assert.Equal(t, 25, r.Breakdown.KeywordMatch)
}

func TestAnalyze_ScoresStayInBounds(t *testing.T) {
	resumes := []string{
		"a",
		"Hi",
		strings.Repeat("$100 50% 3+ ", 400),
		padTo("email phone summary experience education skills projects", 1500),
		strings.Repeat("python java aws docker leadership\n", 300),
	}
	jobs := []string{"", "python", "rust scala kafka", strings.Join(softSkills, " ")}
	for _, resume := range resumes {
		for _, job := range jobs {
			r, err := Analyze(resume, job)
			require.NoError(t, err)
			b := r.Breakdown
			assert.True(t, b.KeywordMatch >= 0 && b.KeywordMatch <= MaxKeywordMatch)
			assert.True(t, b.Structure >= 0 && b.Structure <= MaxStructure)
			assert.True(t, b.Formatting >= 0 && b.Formatting <= MaxFormatting)
			assert.True(t, b.Impact >= 0 && b.Impact <= MaxImpact)
			assert.True(t, b.Readability >= 0 && b.Readability <= MaxReadability)
			assert.True(t, b.Relevance >= 0 && b.Relevance <= MaxRelevance)
			assert.Equal(t, b.Total(), r.OverallScore)
			assert.True(t, r.OverallScore >= 0 && r.OverallScore <= 100)
			assert.LessOrEqual(t, len(r.Recommendations), maxRecommendations)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	resume := padTo("Experience\nSkills: Go, Python, AWS, leadership\njane@example.com", 1300)
	job := "Python, Java, AWS, Docker, communication"
	a, err := Analyze(resume, job)
	require.NoError(t, err)
	b, err := Analyze(resume, job)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResult_Grade(t *testing.T) {
	for score, want := range map[int]string{100: "excellent", 80: "excellent", 79: "good", 60: "good", 40: "fair", 39: "poor", 0: "poor"} {
		assert.Equal(t, want, Result{OverallScore: score}.Grade(), score)
	}
}
