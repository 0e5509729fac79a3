// Package document turns uploaded resume files into plain text.
package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnreadableDocument is returned when the payload is not a well-formed document of a supported type.
var ErrUnreadableDocument = errors.New("unreadable document")

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")

	reTags    = regexp.MustCompile(`<[^>]+>`)
	reSpaces  = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewline = regexp.MustCompile(`\n+`)
)

// Extractor is the Document-Text Extractor port used by the ingestion pipeline.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// TextExtractor extracts text from PDF and DOCX payloads. The format is sniffed from
// magic bytes; the client-supplied filename and content type are not trusted.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor { return &TextExtractor{} }

func (TextExtractor) ExtractText(data []byte) (text string, err error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		text, err = extractTextFromPDF(data)
	case bytes.HasPrefix(data, zipMagic):
		text, err = extractTextFromDocx(data)
	default:
		return "", fmt.Errorf("%w: only pdf and docx are supported", ErrUnreadableDocument)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if text == "" {
		return "", fmt.Errorf("%w: no extractable text", ErrUnreadableDocument)
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some truncated xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines (naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, "")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	// Preserve newlines but collapse runs
	s = reNewline.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
