package parser

import (
	"strconv"
	"strings"
)

// CSVParser splits delimited rows with a quote-aware comma splitter and
// re-renders them as " | " separated text. This is not a full CSV reader:
// quotes only toggle separator handling, escaped quotes and CRLF endings
// pass through untouched.
type CSVParser struct{}

func (p *CSVParser) CanParse(filename string) bool {
	return fileExt(filename) == "csv"
}

func (p *CSVParser) Parse(data []byte, filename string) (*Document, error) {
	rows := parseCSV(string(data))

	var sb strings.Builder
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(field)
		}
		sb.WriteByte('\n')
	}

	doc := newDocument(sb.String(), "csv")
	doc.Metadata["rows"] = strconv.Itoa(len(rows))
	if len(rows) > 0 {
		doc.Metadata["columns"] = strconv.Itoa(len(rows[0]))
	}
	return doc, nil
}

func (p *CSVParser) FormatName() string { return "CSV" }

func parseCSV(content string) [][]string {
	var rows [][]string
	for _, line := range splitLines(content) {
		rows = append(rows, parseCSVLine(line))
	}
	return rows
}

// splitLines mimics line-by-line reading: a trailing newline does not yield
// a trailing empty row, interior blank lines do.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseCSVLine splits one physical line on commas outside double quotes.
// The quote characters themselves are dropped; the final field is flushed
// even when empty.
func parseCSVLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}
