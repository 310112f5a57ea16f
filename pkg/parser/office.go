package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/xuri/excelize/v2"
)

// DocxParser extracts Word documents. The docx library hands back the raw
// word/document.xml content, so the result goes through the same tag strip
// as the XML parser.
type DocxParser struct{}

func (p *DocxParser) CanParse(filename string) bool {
	return fileExt(filename) == "docx"
}

func (p *DocxParser) Parse(data []byte, filename string) (*Document, error) {
	rdr := bytes.NewReader(data)
	d, err := docx.ReadDocxFromMemory(rdr, rdr.Size())
	if err != nil {
		return nil, err
	}
	defer d.Close()

	doc := newDocument(stripTags(d.Editable().GetContent()), "docx")
	doc.Metadata["size"] = strconv.Itoa(len(data))
	return doc, nil
}

func (p *DocxParser) FormatName() string { return "DOCX" }

// XlsxParser renders every sheet with the same " | " row convention the
// CSV parser uses. Sheets that fail to read are skipped.
type XlsxParser struct{}

func (p *XlsxParser) CanParse(filename string) bool {
	return fileExt(filename) == "xlsx"
}

func (p *XlsxParser) Parse(data []byte, filename string) (*Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sb strings.Builder
	totalRows := 0
	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			sb.WriteString(strings.Join(row, " | "))
			sb.WriteByte('\n')
		}
		totalRows += len(rows)
	}

	doc := newDocument(sb.String(), "xlsx")
	doc.Metadata["sheets"] = strconv.Itoa(len(sheets))
	doc.Metadata["rows"] = strconv.Itoa(totalRows)
	return doc, nil
}

func (p *XlsxParser) FormatName() string { return "XLSX" }
