// Package gemini implements section search and quote extraction on top of
// the Google Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fwojciec/quotefinder"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator sends a single content generation request. *genai.Models
// satisfies it; tests substitute canned responses.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ Generator = (*genai.Models)(nil)

// buildContents places the prompt and the document text in two parts of a
// single user turn.
func buildContents(prompt, text string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromText(text),
		}, genai.RoleUser),
	}
}

// generate performs the request and returns the response text. Transport
// failures are reported as EUPSTREAM with the given user-facing message.
func generate(ctx context.Context, gen Generator, model string, contents []*genai.Content, config *genai.GenerateContentConfig, failure string) (string, error) {
	resp, err := gen.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", quotefinder.WrapError(quotefinder.EUPSTREAM, err, "%s", failure)
	}
	if resp == nil {
		return "", quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an empty response.")
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", quotefinder.Errorf(quotefinder.EUPSTREAM, "The AI model declined the request (%s).", resp.PromptFeedback.BlockReason)
	}
	return resp.Text(), nil
}

// stripFences removes a Markdown code fence wrapped around a JSON body.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// wireLocation is a location as sent by the model. Fields stay raw so that
// absence, null and the loosely typed chapter can be told apart.
type wireLocation struct {
	Chapter   json.RawMessage `json:"chapter"`
	Page      json.RawMessage `json:"page"`
	Paragraph json.RawMessage `json:"paragraph"`
}

func (w *wireLocation) decode() (quotefinder.Location, error) {
	var loc quotefinder.Location
	var err error
	if loc.Chapter, err = decodeChapter(w.Chapter); err != nil {
		return loc, err
	}
	if loc.Page, err = decodeInt(w.Page); err != nil {
		return loc, err
	}
	if loc.Paragraph, err = decodeInt(w.Paragraph); err != nil {
		return loc, err
	}
	return loc, nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// decodeChapter accepts a chapter name or number.
func decodeChapter(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s, nil
	}
	return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid chapter: %s", raw)
}

// decodeInt accepts an integer, also when written as a float or a numeric
// string.
func decodeInt(raw json.RawMessage) (*int, error) {
	if isNull(raw) {
		return nil, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && f == float64(int(f)) {
		i := int(f)
		return &i, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &i, nil
		}
	}
	return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid number: %s", raw)
}
