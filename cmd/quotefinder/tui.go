package main

import (
	"github.com/fwojciec/quotefinder/bubbletea"
)

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	var opts []bubbletea.Option
	if c.File != "" {
		opts = append(opts, bubbletea.WithFile(c.File))
	}
	if c.VersionHint != "" {
		opts = append(opts, bubbletea.WithVersionHint(c.VersionHint))
	}

	model := bubbletea.New(deps.Ctx, deps.Runner, opts...)
	return deps.RunTUI(deps.Ctx, model, deps.Stdout)
}
