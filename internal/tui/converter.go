package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

type converterFocus int

const (
	focusInput converterFocus = iota
	focusMode
	focusOutput
)

const (
	defaultPaneWidth  = 60
	defaultPaneHeight = 5
)

// converterModel is the main screen: romanised input, mode selector, braille
// output and the copy status line. Input, output and copy status themselves
// live in the session; the textarea only edits the next submission.
type converterModel struct {
	input textarea.Model
	modes modeSelectModel
	focus converterFocus
	// awaiting is the sequence number of the newest submission still in
	// flight, zero when none is.
	awaiting uint64
	spinner  spinner.Model
	notice   string
}

func newConverterModel(mode models.InputMode, placeholder string) converterModel {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(defaultPaneWidth)
	ta.SetHeight(defaultPaneHeight)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return converterModel{
		input:   ta,
		modes:   newModeSelectModel(mode),
		spinner: s,
	}
}

// toggleFocus cycles input, mode selector and output pane.
func (m converterModel) toggleFocus() converterModel {
	return m.focusOn((m.focus + 1) % (focusOutput + 1))
}

func (m converterModel) focusOn(focus converterFocus) converterModel {
	m.focus = focus
	if focus == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m converterModel) label(p *app.Printer, key string, focus converterFocus) string {
	if m.focus == focus {
		return focusedStyle.Render(p.Text(key))
	}
	return labelStyle.Render(p.Text(key))
}

// converterView holds what the main screen shows besides the model itself.
type converterView struct {
	output     string
	copyStatus string
	prefs      models.DisplayPreferences
	width      int
}

func (m converterModel) View(p *app.Printer, v converterView) string {
	pane := paneStyle(v.prefs)
	if v.width > 0 {
		pane = pane.Width(max(v.width-8, 20))
	}

	var b strings.Builder

	b.WriteString(m.label(p, app.LabelInputMode, focusMode))
	b.WriteString("  ")
	b.WriteString(m.modes.View(m.focus == focusMode))
	b.WriteString("\n\n")

	b.WriteString(m.label(p, app.LabelInput, focusInput))
	b.WriteString("\n")
	b.WriteString(pane.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(m.label(p, app.LabelOutput, focusOutput))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(v.prefs.FontSizeLabel()))
	if m.awaiting != 0 {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(p.Text(app.MsgConverting))
	}
	b.WriteString("\n")
	b.WriteString(pane.Render(v.output))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(p.Text(app.LabelCopyStatus)))
	b.WriteString(": ")
	b.WriteString(statusStyle.Render(v.copyStatus))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.notice))
	}

	return renderPage(p.Text(app.LabelTitle), b.String(), p.Text(app.HotkeysMain), p.Text(app.HotkeysQuit))
}
