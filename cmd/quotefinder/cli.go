package main

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/quotefinder"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Runner *quotefinder.Runner
	RunTUI func(ctx context.Context, model tea.Model, stdout io.Writer) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Model    string `help:"Gemini model to use" default:"${model}" env:"QUOTEFINDER_MODEL"`
	LogLevel string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"warn"`
	LogFile  string `help:"Write logs to this file" env:"QUOTEFINDER_LOG"`
	NoTokens bool   `help:"Skip counting document tokens"`

	TUI  TUICmd  `cmd:"" name:"tui" help:"Search interactively in the terminal UI"`
	Find FindCmd `cmd:"" help:"Find candidate sections, and optionally a quote, without the UI"`
}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	File        string `arg:"" optional:"" help:"Document to load on start"`
	VersionHint string `short:"v" help:"Book or file version, e.g. edition or translation"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	File        string `arg:"" help:"Document to search (.txt, .md, .pdf, .docx, .html)"`
	Description string `arg:"" help:"Description of the quote or scene"`
	VersionHint string `short:"v" help:"Book or file version, e.g. edition or translation"`
	Pick        int    `short:"p" help:"Extract the quote from the Nth section (1-based)"`
}
