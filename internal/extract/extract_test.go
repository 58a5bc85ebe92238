package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMIME(t *testing.T) {
	tests := []struct {
		mime string
		want Extractor
	}{
		{MIMEPlainText, PlainText{}},
		{"text/plain; charset=utf-8", PlainText{}},
		{"Application/PDF", PDF{}},
		{MIMEDOCX, DOCX{}},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			got, err := ForMIME(tt.mime)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}

	_, err := ForMIME("image/png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "image/png")
}

func TestForFilename(t *testing.T) {
	for name, want := range map[string]Extractor{
		"resume.pdf":  PDF{},
		"Resume.DOCX": DOCX{},
		"cv.txt":      PlainText{},
		"notes.md":    PlainText{},
	} {
		got, err := ForFilename(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, got, name)
	}

	_, err := ForFilename("resume.doc")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestResumeText_PlainText(t *testing.T) {
	text, err := ResumeText(MIMEPlainText, []byte("Experience\nSkills: Go"))
	require.NoError(t, err)
	assert.Equal(t, "Experience\nSkills: Go", text)

	text, err = ResumeText(MIMEPlainText, []byte{'o', 'k', 0xff})
	require.NoError(t, err)
	assert.Equal(t, "ok�", text)
}

func TestResumeText_Errors(t *testing.T) {
	_, err := ResumeText("application/zip", []byte("PK"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ResumeText(MIMEPDF, []byte("not a pdf"))
	assert.Error(t, err)

	_, err = ResumeText(MIMEDOCX, []byte("not a zip"))
	assert.Error(t, err)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>R&amp;D Engineer</w:t><w:tab/><w:t>2020</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills</w:t><w:br/><w:t>Go, Python</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	assert.Equal(t, "Jane Doe\nR&D Engineer\t2020\nSkills\nGo, Python", docxXMLToText(xml))
}

func TestPDFExtract(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "resume.pdf"))
	require.NoError(t, err)

	text, err := PDF{}.Extract(data)
	require.NoError(t, err)
	assert.Equal(t, "\nJane Doe\nSoftware Engineer\n\nExperience\n", text)

	text, err = ResumeText(MIMEPDF, data)
	require.NoError(t, err)
	assert.Contains(t, text, "Experience")
}

func TestPDFExtract_BadPageFailsDocument(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "bad_page.pdf"))
	require.NoError(t, err)

	text, err := PDF{}.Extract(data)
	assert.ErrorContains(t, err, "failed to read pdf page 2")
	assert.Empty(t, text)
}

// buildDocx zips a minimal WordprocessingML package around body.
func buildDocx(t *testing.T, body string, withRels bool) []byte {
	t.Helper()
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}
	if withRels {
		parts["word/_rels/document.xml.rels"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDOCXExtract(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve">Skills: </w:t></w:r><w:r><w:t>Go, Python</w:t></w:r></w:p>`,
		true)

	text, err := DOCX{}.Extract(data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nExperience\nSkills: Go, Python", text)

	text, err = ResumeText(MIMEDOCX, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "Experience", "Skills: Go, Python"}, strings.Split(text, "\n"))
}

func TestDOCXExtract_MissingParts(t *testing.T) {
	_, err := DOCX{}.Extract(buildDocx(t, `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`, false))
	assert.ErrorContains(t, err, "failed to parse docx")
}
