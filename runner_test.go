package quotefinder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/quotefinder"
	"github.com/fwojciec/quotefinder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive reduces ev and, when that dispatches an operation, runs it through
// r and reduces its completion event as well.
func drive(t *testing.T, r *quotefinder.Runner, s quotefinder.State, ev quotefinder.Event) quotefinder.State {
	t.Helper()

	next := quotefinder.Reduce(s, ev)
	if !quotefinder.Dispatched(s, next) {
		return next
	}
	done := r.Run(context.Background(), next)
	require.NotNil(t, done)
	return quotefinder.Reduce(next, done)
}

func newRunner() *quotefinder.Runner {
	return &quotefinder.Runner{
		Loader: &mock.DocumentLoader{
			LoadFn: func(_ context.Context, path string) (*quotefinder.Document, error) {
				return &quotefinder.Document{Name: path, Type: quotefinder.TypeText, Text: "Hello world."}, nil
			},
		},
	}
}

func TestRunner_Run_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads document and counts tokens", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		r.Tokens = &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return 3, nil
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "hello.txt"})

		require.NotNil(t, s.Document)
		assert.Equal(t, "Hello world.", s.Document.Text)
		assert.Equal(t, 3, s.Document.Tokens)
		assert.False(t, s.Busy())
	})

	t.Run("token count failure leaves zero", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		r.Tokens = &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 0, errors.New("tokenizer unavailable")
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "hello.txt"})

		require.NotNil(t, s.Document)
		assert.Zero(t, s.Document.Tokens)
		assert.NoError(t, s.Err)
	})

	t.Run("surfaces loader error", func(t *testing.T) {
		t.Parallel()

		r := &quotefinder.Runner{
			Loader: &mock.DocumentLoader{
				LoadFn: func(context.Context, string) (*quotefinder.Document, error) {
					return nil, quotefinder.Errorf(quotefinder.EEMPTY, "The file seems to be empty or text could not be extracted.")
				},
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "blank.txt"})

		assert.Equal(t, quotefinder.EEMPTY, quotefinder.ErrorCode(s.Err))
		assert.Nil(t, s.Document)
	})
}

func TestRunner_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("passes document, hint and description", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		r.Sections = &mock.SectionFinder{
			FindSectionsFn: func(_ context.Context, text, versionHint, description string) ([]quotefinder.Section, error) {
				assert.Equal(t, "Hello world.", text)
				assert.Equal(t, "2nd Edition", versionHint)
				assert.Equal(t, "a greeting", description)
				return []quotefinder.Section{{Summary: "A greeting to the world."}}, nil
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "hello.txt"})
		s = drive(t, r, s, quotefinder.VersionHintChanged{Value: "2nd Edition"})
		s = drive(t, r, s, quotefinder.DescriptionChanged{Value: "a greeting"})
		s = drive(t, r, s, quotefinder.SearchRequested{})

		assert.Equal(t, quotefinder.StepSections, s.Step)
		assert.Len(t, s.Sections, 1)
	})

	// No relevant sections: the workflow reports the condition and stays
	// on the upload step.
	t.Run("reports no relevant sections", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		r.Sections = &mock.SectionFinder{
			FindSectionsFn: func(context.Context, string, string, string) ([]quotefinder.Section, error) {
				return []quotefinder.Section{}, nil
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "hello.txt"})
		s = drive(t, r, s, quotefinder.DescriptionChanged{Value: "a farewell"})
		s = drive(t, r, s, quotefinder.SearchRequested{})

		assert.Equal(t, quotefinder.StepUpload, s.Step)
		assert.Equal(t, quotefinder.ENOSECTIONS, quotefinder.ErrorCode(s.Err))
	})
}

func TestRunner_Run_Extract(t *testing.T) {
	t.Parallel()

	sectionsFound := func(t *testing.T, r *quotefinder.Runner) quotefinder.State {
		t.Helper()

		r.Sections = &mock.SectionFinder{
			FindSectionsFn: func(context.Context, string, string, string) ([]quotefinder.Section, error) {
				chapter, page := "1", 1
				return []quotefinder.Section{{
					Summary:  "A greeting to the world.",
					Location: quotefinder.Location{Chapter: &chapter, Page: &page},
				}}, nil
			},
		}

		s := drive(t, r, quotefinder.NewState(), quotefinder.FileSelected{Path: "hello.txt"})
		s = drive(t, r, s, quotefinder.DescriptionChanged{Value: "a greeting"})
		s = drive(t, r, s, quotefinder.SearchRequested{})
		require.Equal(t, quotefinder.StepSections, s.Step)
		return s
	}

	t.Run("shows found quote", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		s := sectionsFound(t, r)
		r.Quotes = &mock.QuoteExtractor{
			FindQuoteFn: func(_ context.Context, text string, section quotefinder.Section, description string) (*quotefinder.Quote, error) {
				assert.Equal(t, "A greeting to the world.", section.Summary)
				assert.Equal(t, "a greeting", description)
				return &quotefinder.Quote{
					Text:     "Hello world.",
					Location: quotefinder.Location{Chapter: strPtr("1"), Page: intPtr(1), Paragraph: intPtr(1)},
				}, nil
			},
		}

		s = drive(t, r, s, quotefinder.SectionSelected{Index: 0})

		assert.Equal(t, quotefinder.StepResult, s.Step)
		require.NotNil(t, s.Quote)
		assert.Equal(t, "Hello world.", s.Quote.Text)
	})

	// An empty quote is a "not found" outcome shown on the result step.
	t.Run("not found quote moves to result", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		s := sectionsFound(t, r)
		r.Quotes = &mock.QuoteExtractor{
			FindQuoteFn: func(context.Context, string, quotefinder.Section, string) (*quotefinder.Quote, error) {
				return &quotefinder.Quote{}, nil
			},
		}

		s = drive(t, r, s, quotefinder.SectionSelected{Index: 0})

		assert.Equal(t, quotefinder.StepResult, s.Step)
		assert.Equal(t, quotefinder.ENOQUOTE, quotefinder.ErrorCode(s.Err))
		assert.Nil(t, s.Quote)
	})

	// A malformed response never produced a result, so the workflow stays
	// on the candidate sections.
	t.Run("malformed response stays in sections", func(t *testing.T) {
		t.Parallel()

		r := newRunner()
		s := sectionsFound(t, r)
		r.Quotes = &mock.QuoteExtractor{
			FindQuoteFn: func(context.Context, string, quotefinder.Section, string) (*quotefinder.Quote, error) {
				return nil, quotefinder.Errorf(quotefinder.EMALFORMED, "AI returned an invalid format for the quote.")
			},
		}

		s = drive(t, r, s, quotefinder.SectionSelected{Index: 0})

		assert.Equal(t, quotefinder.StepSections, s.Step)
		assert.Equal(t, quotefinder.EMALFORMED, quotefinder.ErrorCode(s.Err))
		assert.False(t, s.Busy())
	})
}

func TestRunner_Run_NothingPending(t *testing.T) {
	t.Parallel()

	r := &quotefinder.Runner{}

	assert.Nil(t, r.Run(context.Background(), quotefinder.NewState()))
}

func TestRunner_Run_ExtractWithoutSelection(t *testing.T) {
	t.Parallel()

	r := &quotefinder.Runner{}
	s := quotefinder.State{Pending: quotefinder.OpExtract, Gen: 4}

	ev := r.Run(context.Background(), s)

	failed, ok := ev.(quotefinder.ExtractFailed)
	require.True(t, ok)
	assert.Equal(t, 4, failed.Gen)
	assert.Equal(t, quotefinder.EINVALID, quotefinder.ErrorCode(failed.Err))
}
