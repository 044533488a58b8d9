package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/docintel-cloud/docintel/internal/domain"
)

func TestExtract_TXT(t *testing.T) {
	e := New()
	text, err := e.Extract("notes.txt", []byte("plain text content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "plain text content" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	e := New()
	if _, err := e.Extract("NOTES.TXT", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtract_Unsupported(t *testing.T) {
	e := New()
	for _, name := range []string{"image.png", "archive.zip", "noextension"} {
		_, err := e.Extract(name, []byte("data"))
		if !errors.Is(err, domain.ErrUnsupportedFileType) {
			t.Errorf("%s: expected ErrUnsupportedFileType, got %v", name, err)
		}
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := New()
	if _, err := e.Extract("broken.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

// buildDOCX assembles a minimal WordprocessingML archive in memory.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const docxParagraphs = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_DOCXParagraphs(t *testing.T) {
	e := New()
	text, err := e.Extract("report.docx", buildDOCX(t, docxParagraphs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "First paragraph.\n") {
		t.Errorf("missing first paragraph in %q", text)
	}
	if !strings.Contains(text, "Second paragraph.\n") {
		t.Errorf("split runs must be joined, got %q", text)
	}
	if strings.Contains(text, "Extracted Tables") {
		t.Errorf("no tables expected, got %q", text)
	}
}

const docxWithTable = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Budget summary.</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Item</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Cost</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Rails</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>1200</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func TestExtract_DOCXTables(t *testing.T) {
	e := New()
	text, err := e.Extract("budget.docx", buildDOCX(t, docxWithTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "--- Extracted Tables ---") {
		t.Fatalf("missing tables section in %q", text)
	}
	if !strings.Contains(text, "Item | Cost\n") {
		t.Errorf("expected pipe-joined header row, got %q", text)
	}
	if !strings.Contains(text, "Rails | 1200\n") {
		t.Errorf("expected pipe-joined data row, got %q", text)
	}
	// Table cell text must not leak into the paragraph section.
	if strings.Index(text, "Item | Cost") < strings.Index(text, "Budget summary.") {
		t.Errorf("tables must follow paragraphs, got %q", text)
	}
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.Close()

	e := New()
	if _, err := e.Extract("empty.docx", buf.Bytes()); err == nil {
		t.Fatal("expected error for archive without document.xml")
	}
}
