package parser

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// XMLParser strips markup with an in-tag scan; no DOM is built. Each closed
// tag leaves one space so adjacent text nodes stay separated, then
// whitespace runs collapse to single spaces.
type XMLParser struct{}

func (p *XMLParser) CanParse(filename string) bool {
	ext := fileExt(filename)
	return ext == "xml" || ext == "html" || ext == "htm"
}

func (p *XMLParser) Parse(data []byte, filename string) (*Document, error) {
	ext := fileExt(filename)
	doc := newDocument(stripTags(string(data)), ext)
	doc.Metadata["format"] = ext
	doc.Metadata["has_tags"] = "true"
	return doc, nil
}

func (p *XMLParser) FormatName() string { return "XML/HTML" }

func stripTags(markup string) string {
	var sb strings.Builder
	inTag := false

	for i := 0; i < len(markup); i++ {
		switch c := markup[i]; {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
			sb.WriteByte(' ')
		case !inTag:
			sb.WriteByte(c)
		}
	}
	return multiSpace.ReplaceAllString(sb.String(), " ")
}
