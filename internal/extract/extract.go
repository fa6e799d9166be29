// Package extract pulls text content out of uploaded menu PDFs and splits it
// into logical menu sections for downstream structuring.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Result holds the extracted text of a menu PDF.
type Result struct {
	FullText string
	Sections []string
}

// FromPDF extracts text from raw PDF bytes.
// Returns an error when the document contains no extractable text,
// which includes scanned image-only menus.
func FromPDF(data []byte) (*Result, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	var full strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		full.WriteString(pageText)
		full.WriteByte('\n')
	}

	text := strings.TrimSpace(full.String())
	if text == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &Result{
		FullText: text,
		Sections: splitSections(text),
	}, nil
}
