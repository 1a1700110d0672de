package quotefinder

import "context"

// Quote is a passage extracted from a document. The text is not verified
// against the source.
type Quote struct {
	Text     string   `json:"quote"`
	Location Location `json:"location"`
}

// Found reports whether the extractor found a matching passage.
func (q *Quote) Found() bool {
	return q != nil && q.Text != ""
}

// QuoteExtractor pulls a single quote out of a document.
type QuoteExtractor interface {
	// FindQuote searches text for the passage matching description, using
	// section as a hint. A quote that is not Found is a valid outcome.
	// Returns EMALFORMED if the model output cannot be parsed and
	// EUPSTREAM if the model could not be reached.
	FindQuote(ctx context.Context, text string, section Section, description string) (*Quote, error)
}
