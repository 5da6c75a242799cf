package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
)

const fixtureSentence = "Photosynthesis converts light"

func zipFixture(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func docxFixture(t *testing.T, text string) []byte {
	return zipFixture(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			`<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>` +
			`</w:body></w:document>`,
	})
}

func pptxFixture(t *testing.T, text string) []byte {
	return zipFixture(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>` +
			`</Types>`,
		"ppt/slides/slide1.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
			`<p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld>` +
			`</p:sld>`,
	})
}

// pdfFixture writes a one-page PDF with a correct xref table.
func pdfFixture(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefAt)
	return buf.Bytes()
}

func TestExtractText_RealParsersReadWellFormedFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content func(t *testing.T) []byte
	}{
		{"pdf", "lecture.pdf", func(t *testing.T) []byte { return pdfFixture(fixtureSentence) }},
		{"docx", "essay.docx", func(t *testing.T) []byte { return docxFixture(t, fixtureSentence) }},
		{"pptx", "slides.pptx", func(t *testing.T) []byte { return pptxFixture(t, fixtureSentence) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := writeUpload(t, tt.file, tt.content(t))

			text, err := NewDispatcher().ExtractText(context.Background(), doc)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !strings.Contains(text, fixtureSentence) {
				t.Errorf("text = %q, want it to contain %q", text, fixtureSentence)
			}
		})
	}
}

func TestExtractDocx_ZipWithoutDocumentIsEmpty(t *testing.T) {
	doc := writeUpload(t, "hollow.docx", zipFixture(t, map[string]string{"docProps/app.xml": "<Properties/>"}))

	text, err := extractDocx(context.Background(), doc.StoragePath)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Errorf("text = %q, want empty", text)
	}
}
