package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/quotefinder"
	"google.golang.org/genai"
)

// Ensure SectionFinder implements quotefinder.SectionFinder at compile time.
var _ quotefinder.SectionFinder = (*SectionFinder)(nil)

const sectionsSystemInstruction = `You are an AI literary assistant. Your job is to analyze a document and identify sections relevant to a user's description. You must return your findings as a JSON array of objects. Each object must contain a 'summary' (a concise, one-sentence summary) and a 'location' object. The 'location' object should contain estimated 'chapter' (string or number) and 'page' (number) for where the section is. The document may contain page markers like '[Page X]'. Use these markers to determine page numbers.`

// SectionFinder implements quotefinder.SectionFinder using Google Gemini.
type SectionFinder struct {
	gen   Generator
	model string
}

// NewSectionFinder creates a new SectionFinder.
func NewSectionFinder(gen Generator, model string) *SectionFinder {
	if model == "" {
		model = DefaultModel
	}
	return &SectionFinder{gen: gen, model: model}
}

// FindSections asks the model for up to quotefinder.MaxSections sections
// of text matching description.
func (f *SectionFinder) FindSections(ctx context.Context, text, versionHint, description string) ([]quotefinder.Section, error) {
	if strings.TrimSpace(text) == "" {
		return nil, quotefinder.Errorf(quotefinder.EINVALID, "document text required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, quotefinder.Errorf(quotefinder.EINVALID, "description required")
	}

	body, err := generate(ctx, f.gen, f.model,
		buildContents(BuildSectionsPrompt(versionHint, description), text),
		BuildSectionsConfig(),
		"Failed to get response from AI model while identifying sections.",
	)
	if err != nil {
		return nil, err
	}

	return ParseSections(body)
}

// BuildSectionsConfig returns the GenerateContentConfig for section search.
func BuildSectionsConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: sectionsSystemInstruction}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   sectionsSchema(),
		Temperature:      &temp,
	}
}

func sectionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {
					Type:        genai.TypeString,
					Description: "A concise, one-sentence summary of a relevant section.",
				},
				"location": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"chapter": {Type: genai.TypeString, Description: "The estimated chapter name or number."},
						"page":    {Type: genai.TypeInteger, Description: "The estimated page number."},
					},
					Required: []string{"chapter", "page"},
				},
			},
			Required: []string{"summary", "location"},
		},
	}
}

// BuildSectionsPrompt builds the user prompt for section search.
func BuildSectionsPrompt(versionHint, description string) string {
	version := strings.TrimSpace(versionHint)
	if version == "" {
		version = "Not specified"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I have provided a document. Based on my description below, please identify up to %d different sections where the described events might be taking place.\n\n", quotefinder.MaxSections)
	fmt.Fprintf(&sb, "Description: %q\n", description)
	fmt.Fprintf(&sb, "Book/File Version: %s", version)
	return sb.String()
}

type wireSection struct {
	Summary  *string       `json:"summary"`
	Location *wireLocation `json:"location"`
}

// ParseSections validates a section search response. The body must be a
// JSON array whose elements each carry a summary and a location with
// chapter and page. Entries beyond quotefinder.MaxSections are dropped.
func ParseSections(body string) ([]quotefinder.Section, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(body)), &raw); err != nil || raw == nil {
		return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid format for sections.")
	}

	if len(raw) > quotefinder.MaxSections {
		raw = raw[:quotefinder.MaxSections]
	}

	sections := make([]quotefinder.Section, 0, len(raw))
	for i, item := range raw {
		var w wireSection
		if err := json.Unmarshal(item, &w); err != nil {
			return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid section at position %d.", i+1)
		}
		if w.Summary == nil || w.Location == nil {
			return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an incomplete section at position %d.", i+1)
		}

		loc, err := w.Location.decode()
		if err != nil {
			return nil, err
		}

		section := quotefinder.Section{Summary: strings.TrimSpace(*w.Summary), Location: loc}
		if err := section.Validate(); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, nil
}
