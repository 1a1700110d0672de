package quotefinder

import (
	"context"
	"io"
)

// Document types understood by the loaders.
const (
	TypePDF      = "application/pdf"
	TypeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeHTML     = "text/html"
	TypeMarkdown = "text/markdown"
	TypeText     = "text/plain"
)

// File is an uploaded file awaiting text extraction.
type File struct {
	Name string
	Type string
	Body io.Reader
}

// Document is the plain text extracted from a file.
type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Text string `json:"text"`
	Hash string `json:"hash"`

	// Tokens is the model token count of Text, or 0 when unknown.
	Tokens int `json:"tokens"`
}

// TextExtractor turns a file of one type into plain text.
type TextExtractor interface {
	// Extract returns the text of f. Returns EUNREADABLE if the file
	// cannot be decoded.
	Extract(ctx context.Context, f File) (string, error)
}

// DocumentLoader reads a document from a path.
type DocumentLoader interface {
	// Load returns the document at path. Returns EUNREADABLE if the file
	// cannot be read or decoded and EEMPTY if it holds no text.
	Load(ctx context.Context, path string) (*Document, error)
}
