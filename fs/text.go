package fs

import (
	"context"
	"io"
	"strings"

	"github.com/fwojciec/quotefinder"
)

// Ensure TextExtractor implements quotefinder.TextExtractor at compile time.
var _ quotefinder.TextExtractor = (*TextExtractor)(nil)

// TextExtractor reads a file verbatim. Invalid UTF-8 sequences are
// replaced with U+FFFD.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Extract(ctx context.Context, f quotefinder.File) (string, error) {
	b, err := io.ReadAll(f.Body)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, "Could not read the file.")
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
