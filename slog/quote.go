package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotefinder"
)

// Ensure LoggingQuoteExtractor implements quotefinder.QuoteExtractor.
var _ quotefinder.QuoteExtractor = (*LoggingQuoteExtractor)(nil)

// LoggingQuoteExtractor wraps a QuoteExtractor with logging.
type LoggingQuoteExtractor struct {
	next   quotefinder.QuoteExtractor
	logger *slog.Logger
}

// NewLoggingQuoteExtractor creates a new LoggingQuoteExtractor.
func NewLoggingQuoteExtractor(next quotefinder.QuoteExtractor, logger *slog.Logger) *LoggingQuoteExtractor {
	return &LoggingQuoteExtractor{next: next, logger: logger}
}

// FindQuote delegates to the wrapped extractor and logs the operation.
func (e *LoggingQuoteExtractor) FindQuote(ctx context.Context, text string, section quotefinder.Section, description string) (quote *quotefinder.Quote, err error) {
	defer func(begin time.Time) {
		e.logger.Info("find quote",
			"chars", len(text),
			"section", section.Summary,
			"description", description,
			"found", quote.Found(),
			"location", quotefinder.FormatLocation(locationOf(quote)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.FindQuote(ctx, text, section, description)
}

func locationOf(q *quotefinder.Quote) quotefinder.Location {
	if q == nil {
		return quotefinder.Location{}
	}
	return q.Location
}
