package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/quotefinder"
	"github.com/fwojciec/quotefinder/docx"
	"github.com/fwojciec/quotefinder/fs"
	"github.com/fwojciec/quotefinder/gemini"
	"github.com/fwojciec/quotefinder/htmltomarkdown"
	"github.com/fwojciec/quotefinder/pdf"
	qfslog "github.com/fwojciec/quotefinder/slog"
	"github.com/fwojciec/quotefinder/trafilatura"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up configuration. Defaults to os.Getenv.
	Getenv func(string) string

	// Services for end-to-end testing. When both are set, no Gemini
	// client is created and no API key is required.
	Sections quotefinder.SectionFinder
	Quotes   quotefinder.QuoteExtractor

	// RunTUI runs the interactive program. Replaced in tests.
	RunTUI func(ctx context.Context, model tea.Model, stdout io.Writer) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		RunTUI: runProgram,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quotefinder"),
		kong.Description("Find a half-remembered quote in a book or document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"model": gemini.DefaultModel},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quotefinder --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Check configuration before doing any work.
	sections, quotes := m.Sections, m.Quotes
	if sections == nil || quotes == nil {
		apiKey := m.apiKey()
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Set GEMINI_API_KEY (or API_KEY). Get an API key at https://aistudio.google.com/apikey")
			return quotefinder.Errorf(quotefinder.EINVALID, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		if sections == nil {
			sections = gemini.NewSectionFinder(client.Models, cli.Model)
		}
		if quotes == nil {
			quotes = gemini.NewQuoteExtractor(client.Models, cli.Model)
		}
	}

	logWriter, closeLog, err := openLog(cli.LogFile, kongCtx.Command(), stderr)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", cli.LogFile, err)
	}
	defer closeLog()

	logger := newLogger(logWriter, cli.LogLevel).With("session", uuid.NewString())
	logger.Info("session start", "command", kongCtx.Command(), "model", cli.Model)

	runner := &quotefinder.Runner{
		Loader:   qfslog.NewLoggingDocumentLoader(newLoader(), logger),
		Sections: qfslog.NewLoggingSectionFinder(sections, logger),
		Quotes:   qfslog.NewLoggingQuoteExtractor(quotes, logger),
	}

	if !cli.NoTokens {
		tokens, err := gemini.NewTokenCounter(cli.Model)
		if err != nil {
			// Counting is informational; the session continues without it.
			logger.Warn("token counter unavailable", "model", cli.Model, "err", err)
		} else {
			runner.Tokens = qfslog.NewLoggingTokenCounter(tokens, logger)
		}
	}

	deps.Logger = logger
	deps.Runner = runner
	deps.RunTUI = m.RunTUI

	return kongCtx.Run(deps)
}

// apiKey returns the configured Gemini API key.
func (m *Main) apiKey() string {
	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if key := getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return getenv("API_KEY")
}

// newLoader returns a loader that understands every supported format.
func newLoader() *fs.Loader {
	loader := fs.NewLoader()
	loader.Register(quotefinder.TypePDF, pdf.NewExtractor())
	loader.Register(quotefinder.TypeDOCX, docx.NewExtractor())
	loader.Register(quotefinder.TypeHTML, trafilatura.NewExtractor(htmltomarkdown.NewConverter()))
	return loader
}

// openLog returns the log destination. Without a log file the TUI logs
// nowhere, since the screen belongs to the UI, and other commands log to
// stderr.
func openLog(path, command string, stderr io.Writer) (io.Writer, func(), error) {
	if path == "" {
		if command == "tui" || strings.HasPrefix(command, "tui ") {
			return io.Discard, func() {}, nil
		}
		return stderr, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func runProgram(ctx context.Context, model tea.Model, stdout io.Writer) error {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
