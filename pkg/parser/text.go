package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// TextParser passes plain text through untouched.
type TextParser struct{}

func (p *TextParser) CanParse(filename string) bool {
	ext := fileExt(filename)
	return ext == "txt" || ext == "text"
}

func (p *TextParser) Parse(data []byte, filename string) (*Document, error) {
	content := string(data)
	doc := newDocument(content, "text")
	doc.Metadata["encoding"] = "utf-8"
	// Line count is LF count + 1, so empty content still reports one line.
	doc.Metadata["lines"] = strconv.Itoa(strings.Count(content, "\n") + 1)
	return doc, nil
}

func (p *TextParser) FormatName() string { return "Plain Text" }

// Markdown substitutions, applied in order. The header strip is anchored to
// the very start of the content; bold runs before italic; no nesting.
var (
	mdHeader = regexp.MustCompile(`^#+\s*`)
	mdBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic = regexp.MustCompile(`\*([^*]+)\*`)
	mdLink   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdFence  = regexp.MustCompile("```[^`]*```")
	mdCode   = regexp.MustCompile("`([^`]+)`")
)

// MarkdownParser reduces lightweight markup to plain text: header markers
// stripped, bold/italic/link spans unwrapped, fenced code blocks removed,
// inline code unwrapped.
type MarkdownParser struct{}

func (p *MarkdownParser) CanParse(filename string) bool {
	ext := fileExt(filename)
	return ext == "md" || ext == "markdown"
}

func (p *MarkdownParser) Parse(data []byte, filename string) (*Document, error) {
	text := string(data)
	text = mdHeader.ReplaceAllString(text, "")
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdFence.ReplaceAllString(text, "")
	text = mdCode.ReplaceAllString(text, "$1")

	doc := newDocument(text, "markdown")
	doc.Metadata["format"] = "markdown"
	return doc, nil
}

func (p *MarkdownParser) FormatName() string { return "Markdown" }
