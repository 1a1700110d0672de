package mock

import (
	"context"

	"github.com/fwojciec/quotefinder"
)

var _ quotefinder.QuoteExtractor = (*QuoteExtractor)(nil)

// QuoteExtractor is a mock implementation of quotefinder.QuoteExtractor.
type QuoteExtractor struct {
	FindQuoteFn func(ctx context.Context, text string, section quotefinder.Section, description string) (*quotefinder.Quote, error)
}

func (e *QuoteExtractor) FindQuote(ctx context.Context, text string, section quotefinder.Section, description string) (*quotefinder.Quote, error) {
	return e.FindQuoteFn(ctx, text, section, description)
}
