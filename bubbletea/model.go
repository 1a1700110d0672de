// Package bubbletea implements the interactive terminal UI.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/quotefinder"
)

// Field identifies an input on the upload step.
type Field int

const (
	FieldFile Field = iota
	FieldVersion
	FieldDescription
	fieldCount
)

const spinnerInterval = 120 * time.Millisecond

// Model is the root bubbletea model. It owns the workflow state and the
// text typed into the upload inputs.
type Model struct {
	ctx    context.Context
	runner *quotefinder.Runner
	state  quotefinder.State

	// Upload inputs
	inputs [fieldCount]string
	focus  Field

	// Sections cursor
	cursor int

	// Busy indicator
	frame   int
	ticking bool

	width  int
	height int

	initialPath string
}

// Option configures a Model.
type Option func(*Model)

// WithFile loads path as soon as the program starts.
func WithFile(path string) Option {
	return func(m *Model) {
		m.initialPath = path
		m.inputs[FieldFile] = path
	}
}

// WithVersionHint prefills the version input.
func WithVersionHint(hint string) Option {
	return func(m *Model) {
		m.inputs[FieldVersion] = hint
	}
}

// New creates a Model that runs operations through runner.
func New(ctx context.Context, runner *quotefinder.Runner, opts ...Option) Model {
	m := Model{
		ctx:    ctx,
		runner: runner,
		state:  quotefinder.NewState(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current workflow state.
func (m Model) State() quotefinder.State {
	return m.state
}

// Init loads the initial file, if any.
func (m Model) Init() tea.Cmd {
	if m.initialPath == "" {
		return nil
	}
	path := m.initialPath
	return func() tea.Msg {
		return EventMsg{Event: quotefinder.FileSelected{Path: path}}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case EventMsg:
		if msg.Event == nil {
			return m, nil
		}
		return m.apply(msg.Event)

	case SpinnerTickMsg:
		if !m.state.Busy() {
			m.ticking = false
			return m, nil
		}
		m.frame++
		return m, spinnerTick()
	}

	return m, nil
}

// apply reduces ev into the workflow state. When that starts an
// operation, the returned command runs it and feeds the completion event
// back into Update.
func (m Model) apply(ev quotefinder.Event) (Model, tea.Cmd) {
	prev := m.state
	m.state = quotefinder.Reduce(prev, ev)

	if m.state.Document != nil && prev.Document == nil {
		m.focus = FieldDescription
	}
	if m.state.Step == quotefinder.StepSections && prev.Step == quotefinder.StepUpload {
		m.cursor = 0
	}

	if !quotefinder.Dispatched(prev, m.state) {
		return m, nil
	}

	cmds := []tea.Cmd{runCmd(m.ctx, m.runner, m.state)}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, spinnerTick())
	}
	return m, tea.Batch(cmds...)
}

// applyAll reduces several events in order and batches their commands.
func (m Model) applyAll(events ...quotefinder.Event) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range events {
		var cmd tea.Cmd
		m, cmd = m.apply(ev)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC, KeyEsc:
		return m, tea.Quit

	case KeyReset:
		m.inputs = [fieldCount]string{}
		m.focus = FieldFile
		m.cursor = 0
		return m.apply(quotefinder.Reset{})
	}

	switch m.state.Step {
	case quotefinder.StepUpload:
		return m.handleUploadKey(msg)
	case quotefinder.StepSections:
		return m.handleSectionsKey(msg)
	case quotefinder.StepResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyTab:
		m.focus = (m.focus + 1) % fieldCount
		return m, nil

	case KeyShiftTab:
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil

	case KeyEnter:
		if m.state.Busy() {
			return m, nil
		}
		if m.focus == FieldFile {
			return m.apply(quotefinder.FileSelected{Path: m.inputs[FieldFile]})
		}
		// Loading a file starts a fresh session, so the typed values are
		// resent before searching.
		return m.applyAll(
			quotefinder.VersionHintChanged{Value: m.inputs[FieldVersion]},
			quotefinder.DescriptionChanged{Value: m.inputs[FieldDescription]},
			quotefinder.SearchRequested{},
		)

	case KeyBackspace:
		runes := []rune(m.inputs[m.focus])
		if len(runes) > 0 {
			m.inputs[m.focus] = string(runes[:len(runes)-1])
		}
		return m.syncInput()
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.inputs[m.focus] += string(msg.Runes)
		return m.syncInput()
	case tea.KeySpace:
		m.inputs[m.focus] += " "
		return m.syncInput()
	}

	return m, nil
}

// syncInput reports an edited version or description to the workflow.
func (m Model) syncInput() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FieldVersion:
		return m.apply(quotefinder.VersionHintChanged{Value: m.inputs[FieldVersion]})
	case FieldDescription:
		return m.apply(quotefinder.DescriptionChanged{Value: m.inputs[FieldDescription]})
	}
	return m, nil
}

func (m Model) handleSectionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyUp, KeyK:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case KeyDown, KeyJ:
		if m.cursor < len(m.state.Sections)-1 {
			m.cursor++
		}
		return m, nil

	case KeyEnter:
		if m.state.Busy() {
			return m, nil
		}
		return m.apply(quotefinder.SectionSelected{Index: m.cursor})
	}

	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyBack {
		return m.apply(quotefinder.SectionsReopened{})
	}
	return m, nil
}

// runCmd performs the pending operation of s off the UI loop.
func runCmd(ctx context.Context, runner *quotefinder.Runner, s quotefinder.State) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: runner.Run(ctx, s)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
