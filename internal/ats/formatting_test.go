package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lines returns n newline-separated copies of line.
func lines(line string, n int) string {
	return strings.TrimSuffix(strings.Repeat(line+"\n", n), "\n")
}

func TestAuditFormatting(t *testing.T) {
	contact := "jane@example.com\n(555) 123-4567\n"
	body := lines("Built internal tools and maintained services for the platform team.", 12)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "clean",
			text: contact + body,
			want: []string{},
		},
		{
			name: "everything wrong",
			text: "Hi",
			want: []string{DefectTooShort, DefectNoPhone, DefectNoEmail, DefectFewLineBreaks},
		},
		{
			name: "too long",
			text: contact + lines(strings.Repeat("x", 100), 60),
			want: []string{DefectTooLong},
		},
		{
			name: "no contact details",
			text: body,
			want: []string{DefectNoPhone, DefectNoEmail},
		},
		{
			name: "single line",
			text: "jane@example.com 555.123.4567 " + strings.Repeat("word ", 120),
			want: []string{DefectFewLineBreaks},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuditFormatting(tt.text))
		})
	}
}

func TestAuditFormatting_PhoneSeparators(t *testing.T) {
	for _, phone := range []string{"5551234567", "555-123-4567", "555.123.4567", "555 123 4567", "(555)123-4567"} {
		assert.NotContains(t, AuditFormatting(phone), DefectNoPhone, phone)
	}
}

func TestAuditFormatting_CountsRunes(t *testing.T) {
	// 499 multi-byte runes is more than 500 bytes but still too short.
	text := strings.Repeat("é", 499)
	assert.Contains(t, AuditFormatting(text), DefectTooShort)
}
