// Package extract turns uploaded resume documents into plain text for the
// ATS engine. Extraction failures are reported here, before analysis runs.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned when no extractor handles a document type.
var ErrUnsupportedFormat = errors.New("unsupported file type")

const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor pulls plain text out of one document format.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// PlainText passes UTF-8 text through, replacing invalid sequences.
type PlainText struct{}

// PDF concatenates the plain text of every non-empty page.
type PDF struct{}

// DOCX flattens the main document part, one paragraph per line.
type DOCX struct{}

var byMIME = map[string]Extractor{
	MIMEPlainText: PlainText{},
	MIMEPDF:       PDF{},
	MIMEDOCX:      DOCX{},
}

var byExt = map[string]Extractor{
	".txt":  PlainText{},
	".md":   PlainText{},
	".pdf":  PDF{},
	".docx": DOCX{},
}

// ForMIME picks the extractor for a MIME type. Parameters such as
// "; charset=utf-8" are ignored.
func ForMIME(mime string) (Extractor, error) {
	base, _, _ := strings.Cut(mime, ";")
	if e, ok := byMIME[strings.ToLower(strings.TrimSpace(base))]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
}

// ForFilename picks the extractor for a file by its extension.
func ForFilename(name string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if e, ok := byExt[ext]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ResumeText extracts text from data according to its MIME type.
func ResumeText(mime string, data []byte) (string, error) {
	e, err := ForMIME(mime)
	if err != nil {
		return "", err
	}
	return e.Extract(data)
}

func (PlainText) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), "�"), nil
	}
	return string(data), nil
}

func (PDF) Extract(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func (DOCX) Extract(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

var (
	docxBreakRe = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTabRe   = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
)

// docxXMLToText flattens WordprocessingML into text, one paragraph per line.
func docxXMLToText(content string) string {
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTabRe.ReplaceAllString(content, "\t")
	content = xmlTagRe.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content))
}
