package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor reads premium statement PDFs: the number of pages a document
// holds and the plain text of a single page.
type PDFProcessor interface {
	PageCount(pdfData []byte) (int, error)
	PageText(pdfData []byte, pageNum int) (string, error)
}

type pdfProcessor struct {
	conf *model.Configuration
}

func NewPDFProcessor() PDFProcessor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &pdfProcessor{conf: conf}
}

// PageCount also acts as the readability check: a document pdfcpu cannot
// count pages for is not a statement we can walk.
func (p *pdfProcessor) PageCount(pdfData []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdfData), p.conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return count, nil
}

// PageText extracts the text layer of a 1-indexed page. Statement columns are
// space separated, so words within a row are joined with single spaces and
// rows end with a newline. A page without a text layer yields an empty string,
// not an error.
func (p *pdfProcessor) PageText(pdfData []byte, pageNum int) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	if pageNum < 1 || pageNum > r.NumPage() {
		return "", fmt.Errorf("page %d out of range", pageNum)
	}

	page := r.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
	}

	var textBuilder strings.Builder
	for _, row := range rows {
		words := make([]string, 0, len(row.Content))
		for _, word := range row.Content {
			words = append(words, word.S)
		}
		textBuilder.WriteString(strings.Join(words, " "))
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}
