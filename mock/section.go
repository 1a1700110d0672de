package mock

import (
	"context"

	"github.com/fwojciec/quotefinder"
)

var _ quotefinder.SectionFinder = (*SectionFinder)(nil)

// SectionFinder is a mock implementation of quotefinder.SectionFinder.
type SectionFinder struct {
	FindSectionsFn func(ctx context.Context, text, versionHint, description string) ([]quotefinder.Section, error)
}

func (f *SectionFinder) FindSections(ctx context.Context, text, versionHint, description string) ([]quotefinder.Section, error) {
	return f.FindSectionsFn(ctx, text, versionHint, description)
}
