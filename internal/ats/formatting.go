package ats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minResumeChars = 500
	maxResumeChars = 5000
	minResumeLines = 10
)

// Formatting defect messages, in check order.
const (
	DefectTooShort      = "Resume is too short (under 500 characters)"
	DefectTooLong       = "Resume is too long (over 5000 characters)"
	DefectNoPhone       = "No phone number detected"
	DefectNoEmail       = "No email address detected"
	DefectFewLineBreaks = "Too few line breaks, possible formatting issue"
)

var (
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// AuditFormatting runs every shape check and returns the defects found, in
// check order. An empty slice means the text passed all checks.
func AuditFormatting(text string) []string {
	defects := []string{}
	n := utf8.RuneCountInString(text)
	if n < minResumeChars {
		defects = append(defects, DefectTooShort)
	}
	if n > maxResumeChars {
		defects = append(defects, DefectTooLong)
	}
	if !phoneRe.MatchString(text) {
		defects = append(defects, DefectNoPhone)
	}
	if !emailRe.MatchString(text) {
		defects = append(defects, DefectNoEmail)
	}
	if len(strings.Split(text, "\n")) < minResumeLines {
		defects = append(defects, DefectFewLineBreaks)
	}
	return defects
}
