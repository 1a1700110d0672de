package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/quotefinder"
)

const defaultWidth = 80

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, DividerStyle.Render(strings.Repeat("─", width)))

	switch m.state.Step {
	case quotefinder.StepUpload:
		sections = append(sections, m.renderUpload(width))
	case quotefinder.StepSections:
		sections = append(sections, m.renderSections(width))
	case quotefinder.StepResult:
		sections = append(sections, m.renderResult(width))
	}

	sections = append(sections, DividerStyle.Render(strings.Repeat("─", width)))

	if m.state.Busy() {
		sections = append(sections, m.renderBusy())
	}
	if m.state.Err != nil {
		sections = append(sections, m.renderError(width))
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	steps := []quotefinder.Step{quotefinder.StepUpload, quotefinder.StepSections, quotefinder.StepResult}
	labels := map[quotefinder.Step]string{
		quotefinder.StepUpload:   "1 Upload",
		quotefinder.StepSections: "2 Sections",
		quotefinder.StepResult:   "3 Quote",
	}

	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		if s == m.state.Step {
			parts = append(parts, StepActiveStyle.Render(labels[s]))
		} else {
			parts = append(parts, StepStyle.Render(labels[s]))
		}
	}

	return TitleStyle.Render("Quote Finder") + "  " + strings.Join(parts, StepStyle.Render(" › "))
}

func (m Model) renderStatusBar() string {
	doc := m.state.Document
	if doc == nil {
		return StatusStyle.Render("No document loaded")
	}

	status := fmt.Sprintf("%s · %d chars", doc.Name, len([]rune(doc.Text)))
	if doc.Tokens > 0 {
		status += fmt.Sprintf(" · %d tokens", doc.Tokens)
	}
	return SuccessStyle.Render("● ") + StatusStyle.Render(status)
}

func (m Model) renderUpload(width int) string {
	fields := []struct {
		field       Field
		label       string
		placeholder string
	}{
		{FieldFile, "File", "path to a .txt, .md, .pdf, .docx or .html file"},
		{FieldVersion, "Version", "e.g. Penguin Classics 2003 (optional)"},
		{FieldDescription, "Description", "describe the quote or scene you remember"},
	}

	var lines []string
	for _, f := range fields {
		label := LabelStyle.Render(padRight(f.label, 12))
		if f.field == m.focus {
			label = LabelActiveStyle.Render(padRight(f.label, 12))
		}

		value := m.inputs[f.field]
		var rendered string
		switch {
		case value == "" && f.field != m.focus:
			rendered = PlaceholderStyle.Render(f.placeholder)
		case f.field == m.focus:
			rendered = InputStyle.Render(truncateToWidth(value, width-14) + "█")
		default:
			rendered = InputStyle.Render(truncateToWidth(value, width-13))
		}
		lines = append(lines, label+" "+rendered)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderSections(width int) string {
	var lines []string
	lines = append(lines, LabelStyle.Render("Where did it happen? Pick the section closest to what you remember:"))
	lines = append(lines, "")

	for i, s := range m.state.Sections {
		prefix := "  "
		style := InputStyle
		if i == m.cursor {
			prefix = "▸ "
			style = SelectedStyle
		}

		wrapped := wrapText(fmt.Sprintf("%d. %s", i+1, s.Summary), width-4)
		for j, line := range wrapped {
			if j == 0 {
				lines = append(lines, prefix+style.Render(line))
			} else {
				lines = append(lines, "   "+style.Render(line))
			}
		}
		if loc := quotefinder.FormatLocation(s.Location); loc != "" {
			lines = append(lines, "   "+LocationStyle.Render("Est. Location: "+loc))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderResult(width int) string {
	var lines []string

	if m.state.Selected != nil {
		lines = append(lines, LabelStyle.Render("From the section about:"))
		for _, line := range wrapText(m.state.Selected.Summary, width-2) {
			lines = append(lines, "  "+StatusStyle.Render(line))
		}
		lines = append(lines, "")
	}

	q := m.state.Quote
	if !q.Found() {
		// The not-found notice is rendered with the error bar.
		return strings.Join(lines, "\n")
	}

	quote := strings.Join(wrapText(q.Text, width-4), "\n")
	lines = append(lines, QuoteStyle.Render(quote))
	if loc := quotefinder.FormatLocation(q.Location); loc != "" {
		lines = append(lines, "")
		lines = append(lines, LocationStyle.Render("Location: "+loc))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderBusy() string {
	var label string
	switch m.state.Pending {
	case quotefinder.OpLoad:
		label = "Processing file..."
	case quotefinder.OpSearch:
		label = "Searching for relevant sections..."
	case quotefinder.OpExtract:
		label = "Extracting quote..."
	}
	frame := spinnerFrames[m.frame%len(spinnerFrames)]
	return SpinnerStyle.Render(frame) + " " + StatusStyle.Render(label)
}

func (m Model) renderError(width int) string {
	msg := quotefinder.ErrorMessage(m.state.Err)
	if quotefinder.ErrorCode(m.state.Err) == quotefinder.ENOQUOTE {
		return NoticeStyle.Render(strings.Join(wrapText(msg, width), "\n"))
	}
	return ErrorStyle.Render("Error: ") + ErrorTextStyle.Render(strings.Join(wrapText(msg, width-7), "\n"))
}

func (m Model) renderFooter() string {
	var parts []string

	switch m.state.Step {
	case quotefinder.StepUpload:
		parts = append(parts, FooterKeyStyle.Render("Tab")+FooterDescStyle.Render(" Next field"))
		if m.focus == FieldFile {
			parts = append(parts, FooterKeyStyle.Render("Enter")+FooterDescStyle.Render(" Load"))
		} else {
			parts = append(parts, FooterKeyStyle.Render("Enter")+FooterDescStyle.Render(" Find sections"))
		}
	case quotefinder.StepSections:
		parts = append(parts, FooterKeyStyle.Render("j/k")+FooterDescStyle.Render(" Move"))
		parts = append(parts, FooterKeyStyle.Render("Enter")+FooterDescStyle.Render(" Find quote"))
	case quotefinder.StepResult:
		parts = append(parts, FooterKeyStyle.Render("b")+FooterDescStyle.Render(" Back to sections"))
	}

	parts = append(parts, FooterKeyStyle.Render("Ctrl+R")+FooterDescStyle.Render(" Start over"))
	parts = append(parts, FooterKeyStyle.Render("Esc")+FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

func padRight(s string, width int) string {
	// Get visible length (ignoring ANSI codes)
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncateToWidth keeps the end of s, where typing happens.
func truncateToWidth(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + string(runes[len(runes)-width+1:])
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len([]rune(current))+1+len([]rune(word)) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
