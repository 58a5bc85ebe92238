// Package report renders ATS results for people and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/muhammadolammi/atsworker/internal/ats"
	"gopkg.in/yaml.v3"
)

// Formats lists the output formats Display understands.
var Formats = []string{"human", "json", "yaml"}

var ErrUnknownFormat = errors.New("unknown output format")

// ValidateFormat reports whether format is one of Formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w %q (use %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
	return nil
}

// Display writes result to w as "human", "json" or "yaml".
func Display(w io.Writer, result ats.Result, format string) error {
	switch format {
	case "json":
		return displayJSON(w, result)
	case "yaml":
		return displayYAML(w, result)
	case "human":
		displayHuman(w, result)
		return nil
	default:
		return ValidateFormat(format)
	}
}

func displayJSON(w io.Writer, result ats.Result) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, result ats.Result) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHuman(w io.Writer, r ats.Result) {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	gradeColor(r.Grade()).Fprintf(w, "ATS SCORE: %d/100 (%s)\n\n", r.OverallScore, r.Grade())

	white.Fprintln(w, "BREAKDOWN:")
	b := r.Breakdown
	for _, row := range []struct {
		label string
		score int
		max   int
	}{
		{"Keyword match", b.KeywordMatch, ats.MaxKeywordMatch},
		{"Structure", b.Structure, ats.MaxStructure},
		{"Formatting", b.Formatting, ats.MaxFormatting},
		{"Impact", b.Impact, ats.MaxImpact},
		{"Readability", b.Readability, ats.MaxReadability},
		{"Relevance", b.Relevance, ats.MaxRelevance},
	} {
		fmt.Fprintf(w, "   %-14s %2d/%-2d %s\n", row.label, row.score, row.max, bar(row.score, row.max, 20))
	}
	fmt.Fprintln(w)

	white.Fprintln(w, "SECTIONS:")
	fmt.Fprintf(w, "   Found:   %s\n", joinSections(r.Sections.Found))
	fmt.Fprintf(w, "   Missing: %s\n\n", color.YellowString(joinSections(r.Sections.Missing)))

	white.Fprintln(w, "KEYWORDS:")
	if len(r.Keywords.Matched) > 0 || len(r.Keywords.Missing) > 0 {
		fmt.Fprintf(w, "   Matched: %s\n", color.GreenString(joinOrNone(r.Keywords.Matched)))
		fmt.Fprintf(w, "   Missing: %s\n", color.RedString(joinOrNone(r.Keywords.Missing)))
	}
	fmt.Fprintf(w, "   Hard skills: %s\n", joinOrNone(r.Keywords.HardSkills))
	fmt.Fprintf(w, "   Soft skills: %s\n\n", joinOrNone(r.Keywords.SoftSkills))

	if len(r.FormattingIssues) > 0 {
		yellow.Fprintln(w, "FORMATTING ISSUES:")
		for _, issue := range r.FormattingIssues {
			fmt.Fprintf(w, "   - %s\n", issue)
		}
		fmt.Fprintln(w)
	}

	if len(r.Recommendations) > 0 {
		cyan.Fprintln(w, "RECOMMENDATIONS:")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(w, "   %d. [%s] %s\n", i+1, rec.Category, rec.Issue)
			fmt.Fprintf(w, "      Fix: %s\n", color.CyanString(rec.Fix))
			fmt.Fprintf(w, "      Impact: +%d\n\n", rec.Impact)
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "%s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func gradeColor(grade string) *color.Color {
	switch grade {
	case "excellent":
		return color.New(color.FgGreen, color.Bold)
	case "good":
		return color.New(color.FgGreen)
	case "fair":
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func bar(score, max, width int) string {
	if max <= 0 {
		return ""
	}
	filled := score * width / max
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func joinSections(s []ats.SectionKind) string {
	names := make([]string, len(s))
	for i, k := range s {
		names[i] = string(k)
	}
	return joinOrNone(names)
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}
