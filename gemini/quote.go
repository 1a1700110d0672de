package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/quotefinder"
	"google.golang.org/genai"
)

// Ensure QuoteExtractor implements quotefinder.QuoteExtractor at compile time.
var _ quotefinder.QuoteExtractor = (*QuoteExtractor)(nil)

const quoteSystemInstruction = `You are an AI literary assistant. Your task is to find the single most relevant quote from a document based on a user's description and a specific section summary. The user's description may be a paraphrase or a general idea, not an exact match. Your goal is to interpret their intent and extract the passage that best captures the essence of their description.

RULES:
1. You MUST return a single JSON object with two properties: 'quote' and 'location'.
2. The 'quote' property should contain the full, continuous text of the passage.
3. The 'location' property must be an object containing the PRECISE 'chapter' (string), 'page' (number), and 'paragraph' (number) where the quote is found. The document may have markers like '[Page X]' to help you.
4. If no relevant quote can be found, return a JSON object with an empty string for the 'quote' property and null values for all location properties.`

// QuoteExtractor implements quotefinder.QuoteExtractor using Google Gemini.
type QuoteExtractor struct {
	gen   Generator
	model string
}

// NewQuoteExtractor creates a new QuoteExtractor.
func NewQuoteExtractor(gen Generator, model string) *QuoteExtractor {
	if model == "" {
		model = DefaultModel
	}
	return &QuoteExtractor{gen: gen, model: model}
}

// FindQuote asks the model for the passage of text matching description,
// using section as a hint for where to look.
func (e *QuoteExtractor) FindQuote(ctx context.Context, text string, section quotefinder.Section, description string) (*quotefinder.Quote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, quotefinder.Errorf(quotefinder.EINVALID, "document text required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, quotefinder.Errorf(quotefinder.EINVALID, "description required")
	}

	body, err := generate(ctx, e.gen, e.model,
		buildContents(BuildQuotePrompt(section, description), text),
		BuildQuoteConfig(),
		"Failed to get response from AI model.",
	)
	if err != nil {
		return nil, err
	}

	return ParseQuote(body)
}

// BuildQuoteConfig returns the GenerateContentConfig for quote extraction.
func BuildQuoteConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: quoteSystemInstruction}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   quoteSchema(),
		Temperature:      &temp,
	}
}

func quoteSchema() *genai.Schema {
	nullable := true
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quote": {
				Type:        genai.TypeString,
				Description: "The full text of the found quote.",
			},
			"location": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"chapter":   {Type: genai.TypeString, Description: "The chapter name or number.", Nullable: &nullable},
					"page":      {Type: genai.TypeInteger, Description: "The page number.", Nullable: &nullable},
					"paragraph": {Type: genai.TypeInteger, Description: "The paragraph number on that page.", Nullable: &nullable},
				},
				Required: []string{"chapter", "page", "paragraph"},
			},
		},
		Required: []string{"quote", "location"},
	}
}

// BuildQuotePrompt builds the user prompt for quote extraction. The
// section's summary and estimated location anchor the search.
func BuildQuotePrompt(section quotefinder.Section, description string) string {
	chapter := "unknown"
	if section.Location.Chapter != nil && *section.Location.Chapter != "" {
		chapter = *section.Location.Chapter
	}
	page := "unknown"
	if section.Location.Page != nil {
		page = strconv.Itoa(*section.Location.Page)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I am looking for a quote. My description of it is: %q.\n\n", description)
	fmt.Fprintf(&sb, "You have already identified a relevant section of the text, summarized as: %q, located around chapter %s, page %s.\n\n", section.Summary, chapter, page)
	sb.WriteString("Please analyze the full document text, using this section as a strong hint for where to look. Find the single, most relevant quote that matches my description. Remember, my description is an interpretation.\n")
	sb.WriteString("Return a JSON object with the quote and its precise location.")
	return sb.String()
}

type wireQuote struct {
	Quote    *string       `json:"quote"`
	Location *wireLocation `json:"location"`
}

// ParseQuote validates a quote extraction response. The body must be a
// JSON object with a string quote. An empty quote means nothing matched
// and yields a quote that is not Found. A non-empty quote must come with
// chapter, page and paragraph.
func ParseQuote(body string) (*quotefinder.Quote, error) {
	var w wireQuote
	if err := json.Unmarshal([]byte(stripFences(body)), &w); err != nil || w.Quote == nil {
		return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid format for the quote.")
	}

	text := strings.TrimSpace(*w.Quote)
	if text == "" {
		return &quotefinder.Quote{}, nil
	}

	if w.Location == nil {
		return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned a quote without a location.")
	}
	loc, err := w.Location.decode()
	if err != nil {
		return nil, err
	}
	if loc.Chapter == nil || loc.Page == nil || loc.Paragraph == nil {
		return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an incomplete location for the quote.")
	}

	return &quotefinder.Quote{Text: text, Location: loc}, nil
}
