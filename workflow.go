package quotefinder

import "strings"

// Step is a stage of the quote-finding workflow.
type Step int

// Workflow steps. StepUpload is the initial step.
const (
	StepUpload Step = iota
	StepSections
	StepResult
)

// String returns the name of the step.
func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepSections:
		return "sections"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

// Op is an operation the workflow is waiting on.
type Op int

// Operations that can be in flight. At most one is pending at a time.
const (
	OpNone Op = iota
	OpLoad
	OpSearch
	OpExtract
)

// String returns the name of the operation.
func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpLoad:
		return "load"
	case OpSearch:
		return "search"
	case OpExtract:
		return "extract"
	default:
		return "unknown"
	}
}

// State is a snapshot of one quote-finding session. States are values:
// Reduce returns a new State and never modifies the one it was given.
type State struct {
	Step Step

	// Gen is bumped whenever the session starts over. Completion events
	// carry the generation they were dispatched with and are dropped
	// when it no longer matches.
	Gen int

	// Pending is the operation the session is waiting on.
	Pending Op

	FileName    string
	Document    *Document
	VersionHint string
	Description string

	Sections []Section
	Selected *Section
	Quote    *Quote

	// Err is the last error, shown to the user until the next action.
	Err error
}

// NewState returns the initial workflow state.
func NewState() State {
	return State{Step: StepUpload}
}

// Busy reports whether an operation is in flight.
func (s State) Busy() bool {
	return s.Pending != OpNone
}

// expects reports whether a completion event for op dispatched in
// generation gen still applies.
func (s State) expects(op Op, gen int) bool {
	return s.Pending == op && s.Gen == gen
}

// Event is something that happened to a session: a user action or the
// completion of an operation.
type Event interface {
	event()
}

// FileSelected starts over with a new file and begins loading it.
type FileSelected struct {
	Path string
}

// DocumentLoaded completes OpLoad.
type DocumentLoaded struct {
	Gen      int
	Document *Document
}

// LoadFailed completes OpLoad with an error.
type LoadFailed struct {
	Gen int
	Err error
}

// VersionHintChanged sets the optional book or file version.
type VersionHintChanged struct {
	Value string
}

// DescriptionChanged sets the description of the sought quote.
type DescriptionChanged struct {
	Value string
}

// SearchRequested begins the search for candidate sections.
type SearchRequested struct{}

// SectionsFound completes OpSearch.
type SectionsFound struct {
	Gen      int
	Sections []Section
}

// SearchFailed completes OpSearch with an error.
type SearchFailed struct {
	Gen int
	Err error
}

// SectionSelected picks a candidate section and begins quote extraction.
type SectionSelected struct {
	Index int
}

// QuoteFound completes OpExtract. The quote may be not found.
type QuoteFound struct {
	Gen   int
	Quote *Quote
}

// ExtractFailed completes OpExtract with an error.
type ExtractFailed struct {
	Gen int
	Err error
}

// SectionsReopened returns from a result to the candidate sections.
type SectionsReopened struct{}

// Reset starts over, discarding everything held by the session.
type Reset struct{}

func (FileSelected) event()       {}
func (DocumentLoaded) event()     {}
func (LoadFailed) event()         {}
func (VersionHintChanged) event() {}
func (DescriptionChanged) event() {}
func (SearchRequested) event()    {}
func (SectionsFound) event()      {}
func (SearchFailed) event()       {}
func (SectionSelected) event()    {}
func (QuoteFound) event()         {}
func (ExtractFailed) event()      {}
func (SectionsReopened) event()   {}
func (Reset) event()              {}

// Reduce applies ev to s and returns the resulting state. Events that do
// not apply to the current step, arrive while another operation is in
// flight, or belong to an older generation leave the state unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case FileSelected:
		if strings.TrimSpace(ev.Path) == "" {
			s.Err = Errorf(EINVALID, "Please choose a file to upload.")
			return s
		}
		return State{Gen: s.Gen + 1, FileName: ev.Path, Pending: OpLoad}

	case DocumentLoaded:
		if !s.expects(OpLoad, ev.Gen) {
			return s
		}
		s.Pending = OpNone
		s.Document = ev.Document

	case LoadFailed:
		if !s.expects(OpLoad, ev.Gen) {
			return s
		}
		s.Pending = OpNone
		s.FileName = ""
		s.Err = ev.Err

	case VersionHintChanged:
		if s.Step != StepUpload {
			return s
		}
		s.VersionHint = ev.Value

	case DescriptionChanged:
		if s.Step != StepUpload {
			return s
		}
		s.Description = ev.Value

	case SearchRequested:
		if s.Step != StepUpload || s.Busy() {
			return s
		}
		if s.Document == nil {
			s.Err = Errorf(EINVALID, "Please upload and process a book or file first.")
			return s
		}
		if strings.TrimSpace(s.Description) == "" {
			s.Err = Errorf(EINVALID, "Please describe the quote you are looking for.")
			return s
		}
		s.Err = nil
		s.Sections = nil
		s.Selected = nil
		s.Quote = nil
		s.Pending = OpSearch

	case SectionsFound:
		if !s.expects(OpSearch, ev.Gen) {
			return s
		}
		s.Pending = OpNone
		if len(ev.Sections) == 0 {
			s.Err = Errorf(ENOSECTIONS, "Could not identify any relevant sections. Please try a different description.")
			return s
		}
		sections := ev.Sections
		if len(sections) > MaxSections {
			sections = sections[:MaxSections]
		}
		s.Sections = append([]Section(nil), sections...)
		s.Step = StepSections

	case SearchFailed:
		if !s.expects(OpSearch, ev.Gen) {
			return s
		}
		s.Pending = OpNone
		s.Err = ev.Err

	case SectionSelected:
		if s.Step != StepSections || s.Busy() {
			return s
		}
		if ev.Index < 0 || ev.Index >= len(s.Sections) {
			return s
		}
		selected := s.Sections[ev.Index]
		s.Selected = &selected
		s.Err = nil
		s.Quote = nil
		s.Pending = OpExtract

	case QuoteFound:
		if !s.expects(OpExtract, ev.Gen) {
			return s
		}
		s.Pending = OpNone
		s.Step = StepResult
		if !ev.Quote.Found() {
			s.Err = Errorf(ENOQUOTE, "Could not find a matching quote in this section. Please try another section or start over.")
			return s
		}
		s.Quote = ev.Quote

	case ExtractFailed:
		if !s.expects(OpExtract, ev.Gen) {
			return s
		}
		// No result exists, so the session stays on the candidate list.
		s.Pending = OpNone
		s.Selected = nil
		s.Err = ev.Err

	case SectionsReopened:
		if s.Step != StepResult || s.Busy() {
			return s
		}
		s.Step = StepSections
		s.Selected = nil
		s.Quote = nil
		s.Err = nil

	case Reset:
		return State{Gen: s.Gen + 1}
	}

	return s
}

// Dispatched reports whether moving from prev to next started an
// operation that the caller must now run.
func Dispatched(prev, next State) bool {
	if next.Pending == OpNone {
		return false
	}
	return next.Pending != prev.Pending || next.Gen != prev.Gen
}
