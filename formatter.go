package quotefinder

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPages joins per-page text into a single document. Every page is
// preceded by a "[Page N]" marker line, numbered from 1, so the model can
// use it as a location hint. Pages are separated by blank lines.
func FormatPages(pages []string) string {
	var sb strings.Builder
	for i, page := range pages {
		fmt.Fprintf(&sb, "[Page %d]\n%s\n\n", i+1, strings.TrimSpace(page))
	}
	return sb.String()
}

// FormatLocation renders the known parts of a location, e.g.
// "Chapter 3, Page 12, Paragraph 4". Returns "" for a zero location.
func FormatLocation(loc Location) string {
	parts := make([]string, 0, 3)
	if loc.Chapter != nil && *loc.Chapter != "" {
		parts = append(parts, "Chapter "+*loc.Chapter)
	}
	if loc.Page != nil {
		parts = append(parts, "Page "+strconv.Itoa(*loc.Page))
	}
	if loc.Paragraph != nil {
		parts = append(parts, "Paragraph "+strconv.Itoa(*loc.Paragraph))
	}
	return strings.Join(parts, ", ")
}

// FormatSections renders candidate sections as a numbered list.
func FormatSections(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sections))
	for i, s := range sections {
		entry := fmt.Sprintf("%d. %s", i+1, s.Summary)
		if loc := FormatLocation(s.Location); loc != "" {
			entry += "\n   Est. Location: " + loc
		}
		parts = append(parts, entry)
	}

	return strings.Join(parts, "\n")
}

// FormatQuote renders a found quote with the summary of the section it
// came from and its location.
func FormatQuote(q *Quote, context string) string {
	if !q.Found() {
		return ""
	}

	var sb strings.Builder
	if context != "" {
		fmt.Fprintf(&sb, "From the section about: \"%s\"\n\n", context)
	}
	fmt.Fprintf(&sb, "\"%s\"\n", q.Text)
	if loc := FormatLocation(q.Location); loc != "" {
		fmt.Fprintf(&sb, "\nLocation: %s\n", loc)
	}
	return sb.String()
}
