package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/quotefinder"
)

// Run executes the find command. It drives the same workflow as the
// terminal UI, one step at a time.
func (c *FindCmd) Run(deps *Dependencies) error {
	s := quotefinder.NewState()

	s = drive(deps.Ctx, deps.Runner, s, quotefinder.FileSelected{Path: c.File})
	if s.Err != nil {
		return fail(deps, s.Err)
	}

	doc := s.Document
	if doc.Tokens > 0 {
		fmt.Fprintf(deps.Stderr, "Loaded %s (%d characters, %d tokens)\n", doc.Name, len([]rune(doc.Text)), doc.Tokens)
	} else {
		fmt.Fprintf(deps.Stderr, "Loaded %s (%d characters)\n", doc.Name, len([]rune(doc.Text)))
	}

	s = drive(deps.Ctx, deps.Runner, s, quotefinder.VersionHintChanged{Value: c.VersionHint})
	s = drive(deps.Ctx, deps.Runner, s, quotefinder.DescriptionChanged{Value: c.Description})
	s = drive(deps.Ctx, deps.Runner, s, quotefinder.SearchRequested{})
	if s.Err != nil {
		return fail(deps, s.Err)
	}

	fmt.Fprintln(deps.Stdout, quotefinder.FormatSections(s.Sections))

	if c.Pick == 0 {
		return nil
	}
	if c.Pick < 0 || c.Pick > len(s.Sections) {
		return fail(deps, quotefinder.Errorf(quotefinder.EINVALID, "--pick must be between 1 and %d.", len(s.Sections)))
	}

	s = drive(deps.Ctx, deps.Runner, s, quotefinder.SectionSelected{Index: c.Pick - 1})
	if s.Step != quotefinder.StepResult {
		return fail(deps, s.Err)
	}

	fmt.Fprintln(deps.Stdout)
	if !s.Quote.Found() {
		// Not finding a quote is an answer, not a failure.
		fmt.Fprintln(deps.Stdout, quotefinder.ErrorMessage(s.Err))
		return nil
	}
	fmt.Fprint(deps.Stdout, quotefinder.FormatQuote(s.Quote, s.Selected.Summary))
	return nil
}

// drive reduces ev into s and runs the operation it dispatches, if any.
func drive(ctx context.Context, runner *quotefinder.Runner, s quotefinder.State, ev quotefinder.Event) quotefinder.State {
	next := quotefinder.Reduce(s, ev)
	if !quotefinder.Dispatched(s, next) {
		return next
	}
	if done := runner.Run(ctx, next); done != nil {
		next = quotefinder.Reduce(next, done)
	}
	return next
}

func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", quotefinder.ErrorMessage(err))
	return err
}
