package tui

import (
	"fmt"
	"strings"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

const historyTimeLayout = "2006-01-02 15:04"

// historyModel lists past conversions, newest first.
type historyModel struct {
	entries []models.HistoryEntry
	idx     int
	loading bool
	status  string
}

func (m historyModel) current() (models.HistoryEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.HistoryEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m historyModel) View(p *app.Printer, width int) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("…")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	case len(m.entries) == 0:
		b.WriteString(p.Text(app.MsgHistoryEmpty))
	default:
		rowWidth := width - 8
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := fmt.Sprintf("%s%s %s  %s → %s",
				cursor,
				entry.CreatedAt.Local().Format(historyTimeLayout),
				entry.InputMode.String(),
				singleLine(entry.Text),
				singleLine(entry.Braille),
			)
			b.WriteString(fitText(row, rowWidth))
			if i < len(m.entries)-1 {
				b.WriteString("\n")
			}
		}
	}

	return renderPage(p.Text(app.LabelHistory), b.String(), p.Text(app.HotkeysHistory), p.Text(app.HotkeysQuit))
}
