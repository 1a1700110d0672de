package quotefinder

import "context"

// Runner performs the operation a State is waiting on. Each operation is
// attempted once; failures are reported in the returned event.
type Runner struct {
	Loader   DocumentLoader
	Sections SectionFinder
	Quotes   QuoteExtractor

	// Tokens is optional. When set, loaded documents get a token count.
	Tokens TokenCounter
}

// Run executes s.Pending and returns its completion event, tagged with
// s.Gen. Returns nil when nothing is pending.
func (r *Runner) Run(ctx context.Context, s State) Event {
	switch s.Pending {
	case OpLoad:
		return r.load(ctx, s)
	case OpSearch:
		return r.search(ctx, s)
	case OpExtract:
		return r.extract(ctx, s)
	default:
		return nil
	}
}

func (r *Runner) load(ctx context.Context, s State) Event {
	doc, err := r.Loader.Load(ctx, s.FileName)
	if err != nil {
		return LoadFailed{Gen: s.Gen, Err: err}
	}

	// The count is informational; a failure leaves it at zero.
	if r.Tokens != nil {
		if n, err := r.Tokens.CountTokens(ctx, doc.Text); err == nil {
			doc.Tokens = n
		}
	}

	return DocumentLoaded{Gen: s.Gen, Document: doc}
}

func (r *Runner) search(ctx context.Context, s State) Event {
	if s.Document == nil {
		return SearchFailed{Gen: s.Gen, Err: Errorf(EINVALID, "Please upload and process a book or file first.")}
	}

	sections, err := r.Sections.FindSections(ctx, s.Document.Text, s.VersionHint, s.Description)
	if err != nil {
		return SearchFailed{Gen: s.Gen, Err: err}
	}
	return SectionsFound{Gen: s.Gen, Sections: sections}
}

func (r *Runner) extract(ctx context.Context, s State) Event {
	if s.Document == nil || s.Selected == nil {
		return ExtractFailed{Gen: s.Gen, Err: Errorf(EINVALID, "Please select a section first.")}
	}

	quote, err := r.Quotes.FindQuote(ctx, s.Document.Text, *s.Selected, s.Description)
	if err != nil {
		return ExtractFailed{Gen: s.Gen, Err: err}
	}
	return QuoteFound{Gen: s.Gen, Quote: quote}
}
