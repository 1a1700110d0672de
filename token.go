package quotefinder

import "context"

// TokenCounter reports how many model tokens a document's text occupies.
// The count is shown next to the document and never gates a request.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
