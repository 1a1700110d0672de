package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/quotefinder"
	"github.com/fwojciec/quotefinder/mock"
	qfslog "github.com/fwojciec/quotefinder/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingDocumentLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs path, type and size", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.DocumentLoader{
			LoadFn: func(_ context.Context, path string) (*quotefinder.Document, error) {
				return &quotefinder.Document{Name: path, Type: quotefinder.TypeText, Text: "Hello world.", Hash: "00000000deadbeef"}, nil
			},
		}

		doc, err := qfslog.NewLoggingDocumentLoader(inner, logger).Load(context.Background(), "hello.txt")

		require.NoError(t, err)
		assert.Equal(t, "Hello world.", doc.Text)
		output := buf.String()
		assert.Contains(t, output, `msg="load document"`)
		assert.Contains(t, output, "path=hello.txt")
		assert.Contains(t, output, "type=text/plain")
		assert.Contains(t, output, "chars=12")
		assert.Contains(t, output, "hash=00000000deadbeef")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.DocumentLoader{
			LoadFn: func(context.Context, string) (*quotefinder.Document, error) {
				return nil, errors.New("disk error")
			},
		}

		_, err := qfslog.NewLoggingDocumentLoader(inner, logger).Load(context.Background(), "hello.txt")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk error"`)
	})
}

func TestLoggingSectionFinder_FindSections(t *testing.T) {
	t.Parallel()

	t.Run("logs request and count", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.SectionFinder{
			FindSectionsFn: func(context.Context, string, string, string) ([]quotefinder.Section, error) {
				return []quotefinder.Section{{Summary: "one"}, {Summary: "two"}}, nil
			},
		}

		sections, err := qfslog.NewLoggingSectionFinder(inner, logger).FindSections(context.Background(), "Hello world.", "1st ed.", "a greeting")

		require.NoError(t, err)
		assert.Len(t, sections, 2)
		output := buf.String()
		assert.Contains(t, output, `msg="find sections"`)
		assert.Contains(t, output, `description="a greeting"`)
		assert.Contains(t, output, `version="1st ed."`)
		assert.Contains(t, output, "count=2")
		assert.NotContains(t, output, "Hello world.")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.SectionFinder{
			FindSectionsFn: func(context.Context, string, string, string) ([]quotefinder.Section, error) {
				return nil, quotefinder.Errorf(quotefinder.EUPSTREAM, "quota exceeded")
			},
		}

		_, err := qfslog.NewLoggingSectionFinder(inner, logger).FindSections(context.Background(), "text", "", "a greeting")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "count=0")
		assert.Contains(t, buf.String(), "quota exceeded")
	})
}

func TestLoggingQuoteExtractor_FindQuote(t *testing.T) {
	t.Parallel()

	t.Run("logs found quote with location", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		chapter, page, paragraph := "1", 1, 2
		inner := &mock.QuoteExtractor{
			FindQuoteFn: func(context.Context, string, quotefinder.Section, string) (*quotefinder.Quote, error) {
				return &quotefinder.Quote{
					Text:     "Call me Ishmael.",
					Location: quotefinder.Location{Chapter: &chapter, Page: &page, Paragraph: &paragraph},
				}, nil
			},
		}

		quote, err := qfslog.NewLoggingQuoteExtractor(inner, logger).FindQuote(context.Background(), "text", quotefinder.Section{Summary: "The opening"}, "his name")

		require.NoError(t, err)
		assert.True(t, quote.Found())
		output := buf.String()
		assert.Contains(t, output, `msg="find quote"`)
		assert.Contains(t, output, `section="The opening"`)
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, `location="Chapter 1, Page 1, Paragraph 2"`)
	})

	t.Run("logs error without quote", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.QuoteExtractor{
			FindQuoteFn: func(context.Context, string, quotefinder.Section, string) (*quotefinder.Quote, error) {
				return nil, errors.New("bad json")
			},
		}

		_, err := qfslog.NewLoggingQuoteExtractor(inner, logger).FindQuote(context.Background(), "text", quotefinder.Section{}, "his name")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "found=false")
		assert.Contains(t, buf.String(), `err="bad json"`)
	})
}

func TestLoggingTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.TokenCounter{
		CountTokensFn: func(context.Context, string) (int, error) {
			return 42, nil
		},
	}

	count, err := qfslog.NewLoggingTokenCounter(inner, logger).CountTokens(context.Background(), "Hello world.")

	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Contains(t, buf.String(), "tokens=42")
	assert.Contains(t, buf.String(), "chars=12")
}
