package mock

import (
	"context"

	"github.com/fwojciec/quotefinder"
)

var _ quotefinder.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of quotefinder.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, path string) (*quotefinder.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, path string) (*quotefinder.Document, error) {
	return l.LoadFn(ctx, path)
}

var _ quotefinder.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of quotefinder.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, f quotefinder.File) (string, error)
}

func (e *TextExtractor) Extract(ctx context.Context, f quotefinder.File) (string, error) {
	return e.ExtractFn(ctx, f)
}
