package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotefinder"
)

// Ensure LoggingSectionFinder implements quotefinder.SectionFinder.
var _ quotefinder.SectionFinder = (*LoggingSectionFinder)(nil)

// LoggingSectionFinder wraps a SectionFinder with logging.
type LoggingSectionFinder struct {
	next   quotefinder.SectionFinder
	logger *slog.Logger
}

// NewLoggingSectionFinder creates a new LoggingSectionFinder.
func NewLoggingSectionFinder(next quotefinder.SectionFinder, logger *slog.Logger) *LoggingSectionFinder {
	return &LoggingSectionFinder{next: next, logger: logger}
}

// FindSections delegates to the wrapped finder and logs the operation.
// The document text is summarised by its length.
func (f *LoggingSectionFinder) FindSections(ctx context.Context, text, versionHint, description string) (sections []quotefinder.Section, err error) {
	defer func(begin time.Time) {
		f.logger.Info("find sections",
			"chars", len(text),
			"version", versionHint,
			"description", description,
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindSections(ctx, text, versionHint, description)
}
