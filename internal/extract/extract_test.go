package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Dana Reyes</w:t></w:r></w:p>
    <w:p><w:r><w:t>Engineering Manager at Acme</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "card.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "Dana Reyes") || !strings.Contains(text, "Engineering Manager at Acme") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytesZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`)
	if _, err := TextFromBytes(context.Background(), data, "application/zip", "card.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseProfileHeuristics(t *testing.T) {
	raw := ParseProfile(`
Dana Reyes
Engineering Manager at Acme
Skills: Python, Leadership, Data Analysis
Industry: technology
Location: Austin, TX
Education: State University
`)

	if raw.Name != "Dana Reyes" {
		t.Fatalf("name: %q", raw.Name)
	}
	if raw.Title != "Engineering Manager" {
		t.Fatalf("title: %q", raw.Title)
	}
	if len(raw.Experience) != 1 || raw.Experience[0].Company != "Acme" || !raw.Experience[0].IsCurrent {
		t.Fatalf("experience: %+v", raw.Experience)
	}
	if len(raw.Skills) != 3 || raw.Skills[2] != "Data Analysis" {
		t.Fatalf("skills: %v", raw.Skills)
	}
	if raw.Industry != "technology" {
		t.Fatalf("industry: %q", raw.Industry)
	}
	if len(raw.Education) != 1 || raw.Education[0].School != "State University" {
		t.Fatalf("education: %+v", raw.Education)
	}
}

func TestParseProfileEmptyAndUnstructured(t *testing.T) {
	if raw := ParseProfile(""); raw.Name != "" || len(raw.Skills) != 0 {
		t.Fatalf("expected zero profile, got %+v", raw)
	}

	raw := ParseProfile("just a single opaque line")
	if raw.Name != "just a single opaque line" {
		t.Fatalf("first line should become the name, got %q", raw.Name)
	}
	if raw.Title != "" || len(raw.Experience) != 0 {
		t.Fatalf("no structure expected, got %+v", raw)
	}
}
