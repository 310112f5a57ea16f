package parser

import (
	"strconv"
	"strings"
)

// JSONParser re-indents JSON text with a single string-aware scan. There is
// no validation: unbalanced braces produce odd indentation, never an error.
type JSONParser struct{}

func (p *JSONParser) CanParse(filename string) bool {
	return fileExt(filename) == "json"
}

func (p *JSONParser) Parse(data []byte, filename string) (*Document, error) {
	raw := string(data)
	doc := newDocument(formatJSON(raw), "json")
	doc.Metadata["type"] = "json"
	doc.Metadata["size"] = strconv.Itoa(len(raw))
	return doc, nil
}

func (p *JSONParser) FormatName() string { return "JSON" }

// formatJSON pretty-prints with 2-space indentation. A quote not preceded
// by a backslash toggles string mode; inside strings everything is copied
// verbatim, outside strings whitespace is dropped and braces/commas emit
// newlines plus indent.
func formatJSON(raw string) string {
	var sb strings.Builder
	indent := 0
	inString := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == '"' && (i == 0 || raw[i-1] != '\\') {
			inString = !inString
		}

		if inString {
			sb.WriteByte(c)
			continue
		}

		switch c {
		case '{', '[':
			sb.WriteByte(c)
			sb.WriteByte('\n')
			indent++
			sb.WriteString(jsonPad(indent))
		case '}', ']':
			sb.WriteByte('\n')
			indent--
			sb.WriteString(jsonPad(indent))
			sb.WriteByte(c)
		case ',':
			sb.WriteByte(c)
			sb.WriteByte('\n')
			sb.WriteString(jsonPad(indent))
		case ' ', '\t', '\n':
			// whitespace outside strings is dropped
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// jsonPad tolerates the negative depth malformed input can drive the
// scanner to.
func jsonPad(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat("  ", indent)
}
