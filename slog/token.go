package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotefinder"
)

// Ensure LoggingTokenCounter implements quotefinder.TokenCounter.
var _ quotefinder.TokenCounter = (*LoggingTokenCounter)(nil)

// LoggingTokenCounter wraps a TokenCounter with logging.
type LoggingTokenCounter struct {
	next   quotefinder.TokenCounter
	logger *slog.Logger
}

// NewLoggingTokenCounter creates a new LoggingTokenCounter.
func NewLoggingTokenCounter(next quotefinder.TokenCounter, logger *slog.Logger) *LoggingTokenCounter {
	return &LoggingTokenCounter{next: next, logger: logger}
}

// CountTokens delegates to the wrapped counter and logs the operation.
func (c *LoggingTokenCounter) CountTokens(ctx context.Context, text string) (count int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("count tokens",
			"chars", len(text),
			"tokens", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CountTokens(ctx, text)
}
