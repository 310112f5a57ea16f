package parser

// Document is the normalized result of parsing a single input: extracted
// text plus format-specific metadata. Pages is reserved for paginated
// formats; only the PDF parser fills it.
type Document struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	Format   string            `json:"format"`
	Pages    []string          `json:"pages,omitempty"`
}

// newDocument guarantees a non-nil metadata map so parsers and the engine
// can assign keys without checking.
func newDocument(content, format string) *Document {
	return &Document{
		Content:  content,
		Format:   format,
		Metadata: make(map[string]string),
	}
}
