package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mapSource serves bytes from memory and fails for unknown names.
type mapSource map[string]string

func (m mapSource) Read(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", name)
	}
	return []byte(content), nil
}

// stubParser claims one extension and returns a fixed document or error.
type stubParser struct {
	ext  string
	name string
	err  error
}

func (s *stubParser) CanParse(filename string) bool {
	return fileExt(filename) == s.ext
}

func (s *stubParser) Parse(data []byte, filename string) (*Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return newDocument("stub:"+string(data), s.name), nil
}

func (s *stubParser) FormatName() string { return s.name }

func TestEngineOpen(t *testing.T) {
	src := mapSource{"note.txt": "hello\nworld"}
	eng := NewEngine(src)

	doc, err := eng.Open("note.txt")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Content != "hello\nworld" {
		t.Errorf("content = %q", doc.Content)
	}
	if doc.Metadata["parser"] != "Plain Text" {
		t.Errorf("parser = %s, want Plain Text", doc.Metadata["parser"])
	}
	if doc.Metadata["filename"] != "note.txt" {
		t.Errorf("filename = %s, want note.txt", doc.Metadata["filename"])
	}
}

func TestEngineUnsupportedFormat(t *testing.T) {
	src := mapSource{"archive.zip": "PK..."}
	eng := NewEngine(src)

	_, err := eng.Open("archive.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "archive.zip") {
		t.Errorf("error should name the input: %v", err)
	}
	if eng.CanOpen("archive.zip") {
		t.Error("CanOpen should be false for .zip")
	}
}

func TestEngineSourceUnavailable(t *testing.T) {
	eng := NewEngine(mapSource{})

	_, err := eng.Open("missing.txt")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}

	// Bytes are read before the registry is consulted, so an unreadable
	// input with an unclaimed extension still reports a read failure.
	_, err = eng.Open("missing.zip")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable for unknown ext", err)
	}
}

func TestEngineExtractionFailed(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry(&stubParser{ext: "txt", name: "Stub", err: boom})
	eng := NewEngineWithRegistry(mapSource{"a.txt": "x"}, reg)

	_, err := eng.Open("a.txt")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("err = %v, want ErrExtractionFailed", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("original cause lost: %v", err)
	}
	if !strings.Contains(err.Error(), "failed to parse a.txt") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestRegistryFirstMatchWins(t *testing.T) {
	reg := NewRegistry(
		&stubParser{ext: "txt", name: "First"},
		&stubParser{ext: "txt", name: "Second"},
	)
	eng := NewEngineWithRegistry(mapSource{"a.txt": "x"}, reg)

	doc, err := eng.Open("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Metadata["parser"] != "First" {
		t.Errorf("parser = %s, want First", doc.Metadata["parser"])
	}
}

func TestOpenDirect(t *testing.T) {
	// Empty registry: direct mode must not consult parsers at all.
	eng := NewEngineWithRegistry(mapSource{}, NewRegistry())

	doc := eng.OpenDirect("hi", "text")
	if doc.Content != "hi" {
		t.Errorf("content = %q, want hi", doc.Content)
	}
	if doc.Format != "text" {
		t.Errorf("format = %s, want text", doc.Format)
	}
	if doc.Metadata["type"] != "direct_content" {
		t.Errorf("type = %s, want direct_content", doc.Metadata["type"])
	}
}

func TestSupportedExtensions(t *testing.T) {
	eng := NewEngine(mapSource{})

	supported := []string{
		"a.txt", "a.text", "a.csv", "a.json", "a.xml", "a.html", "a.htm",
		"a.md", "a.markdown", "a.pdf", "a.docx", "a.xlsx",
		"REPORT.TXT", "Data.CSV",
	}
	for _, name := range supported {
		if !eng.CanOpen(name) {
			t.Errorf("CanOpen(%q) = false, want true", name)
		}
	}

	for _, name := range []string{"a.zip", "a.exe", "noext", "a.doc"} {
		if eng.CanOpen(name) {
			t.Errorf("CanOpen(%q) = true, want false", name)
		}
	}
}

func TestListFormats(t *testing.T) {
	formats := ListFormats()

	want := []string{"Plain Text", "CSV", "JSON", "XML/HTML", "Markdown", "PDF", "DOCX", "XLSX"}
	if len(formats) != len(want) {
		t.Fatalf("got %d formats, want %d: %v", len(formats), len(want), formats)
	}
	for i, name := range want {
		if formats[i] != name {
			t.Errorf("formats[%d] = %s, want %s", i, formats[i], name)
		}
	}

	if !CanParseFile("x.md") {
		t.Error("CanParseFile(x.md) = false")
	}
	if CanParseFile("x.tar") {
		t.Error("CanParseFile(x.tar) = true")
	}
}
