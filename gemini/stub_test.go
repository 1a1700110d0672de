package gemini_test

import (
	"context"

	"github.com/fwojciec/quotefinder/gemini"
	"google.golang.org/genai"
)

var _ gemini.Generator = (*stubGenerator)(nil)

// stubGenerator returns canned responses in place of the Gemini API.
type stubGenerator struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (g *stubGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.GenerateContentFn(ctx, model, contents, config)
}

// respondWith returns a generator that always answers with body.
func respondWith(body string) *stubGenerator {
	return &stubGenerator{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(body), nil
		},
	}
}

func textResponse(body string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(body, genai.RoleModel),
		}},
	}
}
