// Package extract implements the Document Extractor (C1): turning raw
// document bytes into normalized text plus a parse-confidence.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/unidoc/unioffice/document"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/textx"
)

// Confidence levels per §4.1.
const (
	confidencePDFPlain     = 0.80
	confidencePDFTableAware = 0.85
	confidenceDOCX         = 0.90
	confidencePlainText    = 1.0
)

// ExtractDocument turns raw document bytes into normalized text and a
// parse-confidence in [0,1]. mime must be one of the four accepted types;
// anything else yields domain.ErrUnsupportedFormat. A document that yields
// no recoverable text yields domain.ErrExtractionFailed.
func ExtractDocument(ctx domain.Context, data []byte, mime string) (string, float64, error) {
	var raw string
	var confidence float64
	var err error

	switch mime {
	case domain.MimePDF:
		raw, confidence, err = extractPDF(data)
	case domain.MimeDOCX, domain.MimeDOC:
		raw, err = extractDOCX(data)
		confidence = confidenceDOCX
	case domain.MimePlain:
		raw = string(data)
		confidence = confidencePlainText
	default:
		return "", 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, mime)
	}
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	normalized := textx.Normalize(raw)
	if strings.TrimSpace(normalized) == "" {
		return "", 0, fmt.Errorf("%w: no text recovered", domain.ErrExtractionFailed)
	}
	return normalized, confidence, nil
}

// extractPDF runs two extraction strategies (reading-order plain text and a
// row/column-aware dump that stands in for a "table-aware" backend) and
// keeps whichever yields more text, per §4.1.
func extractPDF(data []byte) (string, float64, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	plain := pdfPlainText(r)
	tableAware := pdfRowAwareText(r)

	if len(tableAware) > len(plain) {
		return tableAware, confidencePDFTableAware, nil
	}
	return plain, confidencePDFPlain, nil
}

func pdfPlainText(r *pdf.Reader) string {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

func pdfRowAwareText(r *pdf.Reader) string {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row.Content))
			for _, t := range row.Content {
				cells = append(cells, t.S)
			}
			b.WriteString(strings.Join(cells, "\t"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// extractDOCX reads the document's paragraphs first and then every table,
// row by row with cells tab-joined. Table text is appended after the
// paragraphs, not placed at the table's position in the document.
func extractDOCX(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}
	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			cells := make([]string, 0, len(row.Cells()))
			for _, cell := range row.Cells() {
				var cb strings.Builder
				for _, para := range cell.Paragraphs() {
					for _, run := range para.Runs() {
						cb.WriteString(run.Text())
					}
				}
				cells = append(cells, cb.String())
			}
			b.WriteString(strings.Join(cells, "\t"))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
