package quotefinder

import (
	"context"
	"strings"
)

// MaxSections is the largest number of candidate sections a search returns.
const MaxSections = 5

// Section is a region of a document that probably contains the sought
// quote, as estimated by the model.
type Section struct {
	Summary  string   `json:"summary"`
	Location Location `json:"location"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if strings.TrimSpace(s.Summary) == "" {
		return Errorf(EMALFORMED, "section summary required")
	}
	if s.Location.Chapter == nil || s.Location.Page == nil {
		return Errorf(EMALFORMED, "section location requires chapter and page")
	}
	return nil
}

// SectionFinder identifies candidate sections matching a description.
type SectionFinder interface {
	// FindSections returns up to MaxSections candidate sections. An empty
	// result means nothing relevant was found and is not an error.
	// Returns EMALFORMED if the model output cannot be parsed and
	// EUPSTREAM if the model could not be reached.
	FindSections(ctx context.Context, text, versionHint, description string) ([]Section, error)
}
