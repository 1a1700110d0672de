// Package fs loads documents from the local file system.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/quotefinder"
)

// Ensure Loader implements quotefinder.DocumentLoader at compile time.
var _ quotefinder.DocumentLoader = (*Loader)(nil)

// Loader opens files by path and hands them to the TextExtractor
// registered for their type. Types without an extractor are read as
// plain text.
type Loader struct {
	extractors map[string]quotefinder.TextExtractor
	text       quotefinder.TextExtractor
}

// NewLoader creates a Loader that reads every type as plain text until
// other extractors are registered.
func NewLoader() *Loader {
	text := NewTextExtractor()
	return &Loader{
		extractors: map[string]quotefinder.TextExtractor{
			quotefinder.TypeText:     text,
			quotefinder.TypeMarkdown: text,
		},
		text: text,
	}
}

// Register sets the extractor used for files of type typ.
func (l *Loader) Register(typ string, ext quotefinder.TextExtractor) {
	l.extractors[typ] = ext
}

// Load reads the file at path and extracts its text. The file is closed
// before Load returns.
func (l *Loader) Load(ctx context.Context, path string) (*quotefinder.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, quotefinder.Errorf(quotefinder.EINVALID, "file path required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, quotefinder.WrapError(quotefinder.EUNREADABLE, err, "Could not open the file.")
	}
	defer f.Close()

	name := filepath.Base(path)
	typ := DetectType(name)

	ext, ok := l.extractors[typ]
	if !ok {
		ext = l.text
	}

	text, err := ext.Extract(ctx, quotefinder.File{Name: name, Type: typ, Body: f})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, quotefinder.Errorf(quotefinder.EEMPTY, "The file seems to be empty or text could not be extracted.")
	}

	return &quotefinder.Document{
		Name: name,
		Type: typ,
		Text: text,
		Hash: ComputeHash(text),
	}, nil
}

// DetectType maps a file name to a document type by extension. Unknown
// extensions are plain text.
func DetectType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return quotefinder.TypePDF
	case ".docx":
		return quotefinder.TypeDOCX
	case ".html", ".htm":
		return quotefinder.TypeHTML
	case ".md", ".markdown":
		return quotefinder.TypeMarkdown
	default:
		return quotefinder.TypeText
	}
}

// ComputeHash returns the xxhash of text as 16 hex digits.
func ComputeHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
