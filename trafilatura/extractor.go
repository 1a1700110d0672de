// Package trafilatura extracts the main text of HTML documents.
package trafilatura

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/fwojciec/quotefinder"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements quotefinder.TextExtractor at compile time.
var _ quotefinder.TextExtractor = (*Extractor)(nil)

// Extractor isolates the main content of an HTML page with go-trafilatura
// and renders it as Markdown through a Converter. Navigation, sidebars and
// footers are dropped.
type Extractor struct {
	conv quotefinder.Converter
}

// NewExtractor creates a new Extractor that renders content with conv.
func NewExtractor(conv quotefinder.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract returns the page content as Markdown, headed by the page title
// when one is known.
func (e *Extractor) Extract(ctx context.Context, f quotefinder.File) (string, error) {
	raw, err := io.ReadAll(f.Body)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, "Could not read the HTML file.")
	}
	if strings.TrimSpace(string(raw)) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(raw), opts)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUNREADABLE, err, "Could not extract text from the HTML file.")
	}
	if result.ContentNode == nil {
		return "", nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EINTERNAL, err, "Could not render the HTML content.")
	}
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}

	md, err := e.conv.Convert(contentHTML)
	if err != nil {
		return "", err
	}

	if title := strings.TrimSpace(result.Metadata.Title); title != "" && !strings.HasPrefix(md, "# ") {
		md = "# " + title + "\n\n" + md
	}
	return md, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
