// Package docx extracts paragraph text from Word documents.
package docx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/fwojciec/quotefinder"
)

var _ quotefinder.TextExtractor = (*Extractor)(nil)

const unreadable = "Could not parse the Word document. It might be corrupted or protected."

// Extractor implements quotefinder.TextExtractor for .docx files.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of every non-empty paragraph, separated by
// blank lines. Table cells are read row by row.
func (e *Extractor) Extract(ctx context.Context, f quotefinder.File) (string, error) {
	// go-docx needs a ReaderAt and size, so the body is buffered.
	data, err := io.ReadAll(f.Body)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, unreadable)
	}

	doc, err := parse(data)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, unreadable)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			paragraphs = appendText(paragraphs, paragraphText(v))
		case *docx.Table:
			for _, row := range v.TableRows {
				for _, cell := range row.TableCells {
					for _, para := range cell.Paragraphs {
						paragraphs = appendText(paragraphs, paragraphText(para))
					}
				}
			}
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

func parse(data []byte) (doc *docx.Docx, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("docx: %v", r)
		}
	}()
	return docx.Parse(bytes.NewReader(data), int64(len(data)))
}

func appendText(paragraphs []string, text string) []string {
	if text == "" {
		return paragraphs
	}
	return append(paragraphs, text)
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Tab:
				buf.WriteByte('\t')
			case *docx.BarterRabbet:
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
