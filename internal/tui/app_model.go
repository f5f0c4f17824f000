package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
	"github.com/hakkadots/braille-client/internal/store"
	"github.com/hakkadots/braille-client/models"
)

type screen int

const (
	screenConverter screen = iota
	screenHistory
	screenPreferences
)

const statusTimeout = 2 * time.Second

// State is the session state the TUI renders and edits.
type State interface {
	OutputBraille() string
	CopyStatus() string
	Preferences() models.DisplayPreferences
	SetPreferences(prefs models.DisplayPreferences) error
}

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	state         State
	printer       *app.Printer
	buildInfo     models.AppBuildInfo
	defaultPrefs  models.DisplayPreferences
	currentScreen screen

	converter converterModel
	history   historyModel

	showBuildInfo bool
	showAlert     bool
	alert         alertOverlayModel
	showConfirm   bool
	confirm       confirmModel
	width         int

	logger *logger.Logger
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	state State,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) appModel {
	p := services.Printer
	return appModel{
		ctx:           ctx,
		services:      services,
		state:         state,
		printer:       p,
		buildInfo:     buildInfo,
		defaultPrefs:  state.Preferences(),
		currentScreen: screenConverter,
		converter:     newConverterModel(services.ConversionService.DefaultInputMode(), p.Text(app.LabelInput)),
		logger:        log,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showAlert {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showAlert = false
				m.alert.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.history.loading = true
				return m, m.cmdClearHistory()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.history):
			m.currentScreen = screenHistory
			m.history.loading = true
			m.history.status = ""
			return m, m.cmdLoadHistory()
		case key.Matches(msg, keys.preferences):
			m.currentScreen = screenPreferences
			return m, nil
		}
	case conversionDoneMsg:
		if msg.seq == m.converter.awaiting {
			m.converter.awaiting = 0
		}
		if msg.err != nil {
			m.showAlertf(m.services.ConversionService.Alert(msg.err))
			return m, nil
		}
		if !msg.outcome.Stale && m.currentScreen == screenConverter {
			m.converter = m.converter.focusOn(focusOutput)
		}
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.showAlertf(m.services.ConversionService.Alert(msg.err))
			return m, nil
		}
		m.showAlertf(msg.notice)
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.history.status = m.historyErrorText(msg.err)
			return m, nil
		}
		m.history.entries = msg.entries
		if m.history.idx >= len(m.history.entries) {
			m.history.idx = len(m.history.entries) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil
	case historyClearedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showAlertf(m.historyErrorText(msg.err))
			return m, nil
		}
		m.history.entries = nil
		m.history.idx = 0
		m.history.status = m.printer.Text(app.MsgHistoryCleared)
		return m, nil
	case clearStatusMsg:
		m.converter.notice = ""
		return m, nil
	case spinner.TickMsg:
		if m.converter.awaiting == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.converter.spinner, cmd = m.converter.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.converter.input.SetWidth(max(msg.Width-16, 20))
		return m, nil
	}

	switch m.currentScreen {
	case screenConverter:
		return m.updateConverter(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenPreferences:
		return m.updatePreferences(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.printer))
	}

	var body string
	switch m.currentScreen {
	case screenConverter:
		body = m.converter.View(m.printer, converterView{
			output:     m.state.OutputBraille(),
			copyStatus: m.state.CopyStatus(),
			prefs:      m.state.Preferences(),
			width:      m.width,
		})
	case screenHistory:
		body = m.history.View(m.printer, m.width)
	case screenPreferences:
		body = renderPreferences(m.printer, m.state.Preferences())
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showAlert {
		body += "\n\n" + m.alert.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showAlertf(message string) {
	m.showAlert = true
	m.alert = alertOverlayModel{
		title:   m.printer.Text(app.LabelNotice),
		message: message,
		hint:    m.printer.Text(app.HotkeysOverlay),
	}
}

func (m appModel) historyErrorText(err error) string {
	if errors.Is(err, store.ErrHistoryDisabled) {
		return m.printer.Text(app.MsgHistoryDisabled)
	}
	m.logger.Err(err).Str("func", "appModel.historyErrorText").Msg("history request failed")
	return m.printer.Text(app.MsgHistoryFailed)
}

func (m appModel) updateConverter(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.converter.input, cmd = m.converter.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.convert):
		// the sequence number is taken here, not in the command, so key order is submission order
		sub, err := m.services.ConversionService.BeginSubmission(m.converter.input.Value(), m.converter.modes.current())
		if err != nil {
			m.showAlertf(m.services.ConversionService.Alert(err))
			return m, nil
		}
		cmds := []tea.Cmd{m.cmdRunSubmission(sub)}
		if m.converter.awaiting == 0 {
			cmds = append(cmds, m.converter.spinner.Tick)
		}
		m.converter.awaiting = sub.Seq
		return m, tea.Batch(cmds...)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(keyMsg, keys.clear):
		m.services.ConversionService.ResetState()
		m.converter.input.Reset()
		m.converter = m.converter.focusOn(focusInput)
		m.converter.awaiting = 0
		m.converter.notice = m.printer.Text(app.MsgCleared)
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.nextMode):
		m.converter.modes = m.converter.modes.next()
		return m, nil
	case key.Matches(keyMsg, keys.prevMode):
		m.converter.modes = m.converter.modes.prev()
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.converter = m.converter.toggleFocus()
		return m, nil
	}

	switch m.converter.focus {
	case focusMode:
		switch {
		case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.up):
			m.converter.modes = m.converter.modes.prev()
		case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.down):
			m.converter.modes = m.converter.modes.next()
		}
		return m, nil
	case focusOutput:
		if key.Matches(keyMsg, keys.enter) {
			return m, m.cmdCopy()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.converter.input, cmd = m.converter.input.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenConverter
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.entries)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.converter.input.SetValue(entry.Text)
		m.converter.modes = m.converter.modes.selectMode(entry.InputMode)
		m.currentScreen = screenConverter
	case key.Matches(keyMsg, keys.clearHistory):
		if len(m.history.entries) == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: m.printer.Text(app.MsgConfirmClearHistory)}
	}

	return m, nil
}

func (m appModel) updatePreferences(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenConverter
		return m, nil
	}

	prefs, changed := adjustPreferences(m.state.Preferences(), keyMsg.String(), m.defaultPrefs)
	if !changed {
		return m, nil
	}
	if err := m.state.SetPreferences(prefs); err != nil {
		m.logger.Err(err).Str("func", "appModel.updatePreferences").Msg("rejected display preferences")
	}

	return m, nil
}

func (m appModel) cmdRunSubmission(sub models.Submission) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ConversionService
	return func() tea.Msg {
		outcome, err := svc.RunSubmission(ctx, sub)
		return conversionDoneMsg{seq: sub.Seq, outcome: outcome, err: err}
	}
}

func (m appModel) cmdCopy() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ConversionService
	return func() tea.Msg {
		notice, err := svc.CopyOutput(ctx)
		return copyDoneMsg{notice: notice, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entries, err := svc.List(ctx, models.HistoryFilter{})
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		_, err := svc.Clear(ctx)
		return historyClearedMsg{err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
