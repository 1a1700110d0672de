// Package pdf extracts page-marked text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/quotefinder"
	pdflib "github.com/ledongthuc/pdf"
)

var _ quotefinder.TextExtractor = (*Extractor)(nil)

const unreadable = "Could not parse the PDF file. It might be corrupted or protected."

// Extractor implements quotefinder.TextExtractor for PDF files. Every page
// is emitted behind a "[Page N]" marker, blank pages included.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the whole file and returns its page-marked text.
func (e *Extractor) Extract(ctx context.Context, f quotefinder.File) (string, error) {
	// ledongthuc/pdf needs random access, so the body is buffered.
	data, err := io.ReadAll(f.Body)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, unreadable)
	}

	pages, err := readPages(ctx, data)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, unreadable)
	}

	return quotefinder.FormatPages(pages), nil
}

// readPages returns the plain text of every page in order. The library
// panics on some malformed input; that is reported as an error.
func readPages(ctx context.Context, data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := reader.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("pdf: no pages")
	}

	pages = make([]string, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("pdf: page %d: %w", i, err)
		}
		pages[i-1] = text
	}

	return pages, nil
}
