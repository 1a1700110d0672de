// Package slog decorates quotefinder services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotefinder"
)

// Ensure LoggingDocumentLoader implements quotefinder.DocumentLoader.
var _ quotefinder.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader wraps a DocumentLoader with logging.
type LoggingDocumentLoader struct {
	next   quotefinder.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next quotefinder.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingDocumentLoader) Load(ctx context.Context, path string) (doc *quotefinder.Document, err error) {
	defer func(begin time.Time) {
		var typ, hash string
		var chars int
		if doc != nil {
			typ, hash, chars = doc.Type, doc.Hash, len(doc.Text)
		}
		l.logger.Info("load document",
			"path", path,
			"type", typ,
			"chars", chars,
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
