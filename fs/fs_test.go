package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/quotefinder"
	"github.com/fwojciec/quotefinder/fs"
	"github.com/fwojciec/quotefinder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads plain text verbatim", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "hello.txt", []byte("Hello world."))

		doc, err := fs.NewLoader().Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Hello world.", doc.Text)
		assert.Equal(t, "hello.txt", doc.Name)
		assert.Equal(t, quotefinder.TypeText, doc.Type)
		assert.Len(t, doc.Hash, 16)
		assert.Equal(t, fs.ComputeHash("Hello world."), doc.Hash)
	})

	t.Run("whitespace-only file is empty", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "blank.txt", []byte(" \n\t \n"))

		_, err := fs.NewLoader().Load(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, quotefinder.EEMPTY, quotefinder.ErrorCode(err))
		assert.Equal(t, "The file seems to be empty or text could not be extracted.", quotefinder.ErrorMessage(err))
	})

	t.Run("missing file is unreadable", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, quotefinder.EUNREADABLE, quotefinder.ErrorCode(err))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("blank path is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(context.Background(), " ")

		assert.Equal(t, quotefinder.EINVALID, quotefinder.ErrorCode(err))
	})

	t.Run("replaces invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "latin1.txt", []byte("caf\xe9 au lait"))

		doc, err := fs.NewLoader().Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "caf� au lait", doc.Text)
	})

	t.Run("markdown is read as text", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "notes.md", []byte("# Notes\n\nCall me Ishmael."))

		doc, err := fs.NewLoader().Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, quotefinder.TypeMarkdown, doc.Type)
		assert.Equal(t, "# Notes\n\nCall me Ishmael.", doc.Text)
	})

	t.Run("dispatches to registered extractor", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.PDF", []byte("%PDF-1.4"))

		loader := fs.NewLoader()
		loader.Register(quotefinder.TypePDF, &mock.TextExtractor{
			ExtractFn: func(_ context.Context, f quotefinder.File) (string, error) {
				assert.Equal(t, "book.PDF", f.Name)
				assert.Equal(t, quotefinder.TypePDF, f.Type)
				return "[Page 1]\nCall me Ishmael.\n\n", nil
			},
		})

		doc, err := loader.Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, quotefinder.TypePDF, doc.Type)
		assert.Equal(t, "[Page 1]\nCall me Ishmael.\n\n", doc.Text)
	})

	t.Run("unregistered type falls back to text", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "page.html", []byte("<p>Hello</p>"))

		doc, err := fs.NewLoader().Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, quotefinder.TypeHTML, doc.Type)
		assert.Equal(t, "<p>Hello</p>", doc.Text)
	})

	t.Run("surfaces extractor error", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.pdf", []byte("garbage"))

		loader := fs.NewLoader()
		loader.Register(quotefinder.TypePDF, &mock.TextExtractor{
			ExtractFn: func(context.Context, quotefinder.File) (string, error) {
				return "", quotefinder.Errorf(quotefinder.EUNREADABLE, "Could not parse the PDF file. It might be corrupted or protected.")
			},
		})

		_, err := loader.Load(context.Background(), path)

		assert.Equal(t, quotefinder.EUNREADABLE, quotefinder.ErrorCode(err))
	})

	t.Run("closes the file on every path", func(t *testing.T) {
		t.Parallel()

		for _, result := range []error{nil, errors.New("decode failed")} {
			path := writeFile(t, "book.pdf", []byte("data"))

			var body *os.File
			loader := fs.NewLoader()
			loader.Register(quotefinder.TypePDF, &mock.TextExtractor{
				ExtractFn: func(_ context.Context, f quotefinder.File) (string, error) {
					body, _ = f.Body.(*os.File)
					return "text", result
				},
			})

			_, _ = loader.Load(context.Background(), path)

			require.NotNil(t, body)
			_, err := body.Read(make([]byte, 1))
			assert.ErrorIs(t, err, os.ErrClosed)
		}
	})
}

func TestDetectType(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{
		"book.pdf":       quotefinder.TypePDF,
		"Book.PDF":       quotefinder.TypePDF,
		"essay.docx":     quotefinder.TypeDOCX,
		"page.html":      quotefinder.TypeHTML,
		"page.htm":       quotefinder.TypeHTML,
		"notes.md":       quotefinder.TypeMarkdown,
		"notes.markdown": quotefinder.TypeMarkdown,
		"story.txt":      quotefinder.TypeText,
		"README":         quotefinder.TypeText,
		"book.epub":      quotefinder.TypeText,
	} {
		assert.Equal(t, want, fs.DetectType(name), name)
	}
}
