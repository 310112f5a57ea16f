package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParser extracts plain text page by page. Pages that fail to decode
// are skipped rather than failing the whole document.
type PDFParser struct{}

func (p *PDFParser) CanParse(filename string) bool {
	return fileExt(filename) == "pdf"
}

func (p *PDFParser) Parse(data []byte, filename string) (*Document, error) {
	rdr := bytes.NewReader(data)
	f, err := pdf.NewReader(rdr, rdr.Size())
	if err != nil {
		return nil, err
	}

	var pages []string
	for i := 1; i <= f.NumPage(); i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	doc := newDocument(strings.Join(pages, "\n"), "pdf")
	doc.Pages = pages
	doc.Metadata["pages"] = strconv.Itoa(len(pages))
	return doc, nil
}

func (p *PDFParser) FormatName() string { return "PDF" }
