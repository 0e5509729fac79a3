package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a single-page PDF with one line of Helvetica text and a valid xref table.
func buildPDF(t *testing.T, line string) []byte {
	t.Helper()
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", line)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<w:document><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextPDF(t *testing.T) {
	text, err := NewTextExtractor().ExtractText(buildPDF(t, "Jane Doe Go Engineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe Go Engineer")
}

func TestExtractTextDocx(t *testing.T) {
	text, err := NewTextExtractor().ExtractText(buildDocx(t, "Jane   Doe", "Skills: Go, Rust"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, Rust", text)
}

func TestExtractTextUnreadable(t *testing.T) {
	cases := map[string][]byte{
		"empty":         nil,
		"plain text":    []byte("just some text, not a document"),
		"truncated pdf": []byte("%PDF-1.4\n1 0 obj\n<<"),
		"zip without doc": func() []byte {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			_, _ = zw.Create("other.txt")
			_ = zw.Close()
			return buf.Bytes()
		}(),
		"docx without text": buildDocx(t, "   "),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewTextExtractor().ExtractText(data)
			assert.ErrorIs(t, err, ErrUnreadableDocument)
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("  a \t  b\n\n\nc  "))
}
