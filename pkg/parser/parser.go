// Package parser extracts normalized text and metadata from documents.
//
// Each supported format is handled by a Parser that claims filenames by
// extension and turns raw bytes into a Document. Parsers live in an ordered
// Registry (first claim wins) and are driven by an Engine that reads bytes
// from a source.ByteSource and stamps provenance metadata on every result.
//
// Usage:
//
//	eng := parser.NewEngine(&source.Local{})
//	doc, err := eng.Open("report.csv")
//	fmt.Println(doc.Content, doc.Metadata["rows"])
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/source"
)

// Parser is a single format's claim-matching and extraction logic.
type Parser interface {
	// CanParse reports whether this parser claims the given filename.
	CanParse(filename string) bool
	// Parse extracts content and metadata from raw bytes. The filename is
	// passed for metadata only; the bytes are already read.
	Parse(data []byte, filename string) (*Document, error)
	// FormatName returns the human-readable parser name.
	FormatName() string
}

// Registry holds parsers in registration order. The first parser that
// claims a filename wins; built-in parsers claim disjoint extension sets,
// so order only matters for custom overlapping parsers.
type Registry struct {
	parsers []Parser
}

func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{parsers: parsers}
}

// DefaultRegistry returns all built-in parsers.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&TextParser{},
		&CSVParser{},
		&JSONParser{},
		&XMLParser{},
		&MarkdownParser{},
		&PDFParser{},
		&DocxParser{},
		&XlsxParser{},
	)
}

// Select returns the first parser claiming filename, or nil.
func (r *Registry) Select(filename string) Parser {
	for _, p := range r.parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// Formats returns the display names of all parsers in registration order.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for _, p := range r.parsers {
		names = append(names, p.FormatName())
	}
	return names
}

// Supports reports whether any parser claims filename.
func (r *Registry) Supports(filename string) bool {
	return r.Select(filename) != nil
}

// Engine ties a byte source to a registry and decorates every parsed
// document with provenance metadata ("parser", "filename"). It holds no
// mutable state, so concurrent use is safe as long as the source is.
type Engine struct {
	registry *Registry
	source   source.ByteSource
}

// NewEngine creates an Engine with the built-in parser set.
func NewEngine(src source.ByteSource) *Engine {
	return NewEngineWithRegistry(src, DefaultRegistry())
}

// NewEngineWithRegistry creates an Engine over a custom parser set.
func NewEngineWithRegistry(src source.ByteSource, reg *Registry) *Engine {
	return &Engine{registry: reg, source: src}
}

// Open reads the named input and parses it with the first claiming parser.
// Failures are one of ErrSourceUnavailable, ErrUnsupportedFormat or
// ErrExtractionFailed; no partial Document is ever returned.
func (e *Engine) Open(name string) (*Document, error) {
	data, err := e.source.Read(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceUnavailable, name, err)
	}

	p := e.registry.Select(name)
	if p == nil {
		return nil, fmt.Errorf("%w for: %s", ErrUnsupportedFormat, name)
	}

	doc, err := p.Parse(data, name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrExtractionFailed, name, err)
	}

	doc.Metadata["parser"] = p.FormatName()
	doc.Metadata["filename"] = name
	return doc, nil
}

// OpenDirect wraps content the caller has already extracted. No parser is
// consulted; the format tag is taken as-is.
func (e *Engine) OpenDirect(content, format string) *Document {
	doc := newDocument(content, format)
	doc.Metadata["type"] = "direct_content"
	return doc
}

// Formats returns the display names of all registered parsers.
func (e *Engine) Formats() []string {
	return e.registry.Formats()
}

// CanOpen reports whether any registered parser claims the name.
func (e *Engine) CanOpen(name string) bool {
	return e.registry.Supports(name)
}

// One-shot helpers over the local filesystem.

// ParseFile parses a local file with a throwaway default engine.
func ParseFile(name string) (*Document, error) {
	return NewEngine(&source.Local{}).Open(name)
}

// ListFormats returns the display names of the built-in parsers.
func ListFormats() []string {
	return DefaultRegistry().Formats()
}

// CanParseFile reports whether a built-in parser claims the name.
func CanParseFile(name string) bool {
	return DefaultRegistry().Supports(name)
}

// fileExt returns the lowercased extension without the leading dot.
func fileExt(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
