package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hakkadots/braille-client/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle      = lipgloss.NewStyle().Bold(true)
	focusedStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// backgroundPalette and foregroundPalette are cycled on the preferences screen.
var (
	backgroundPalette = []string{"#ffffff", "#000000", "#fff8dc", "#1e1e2e", "#ffff00", "#003366"}
	foregroundPalette = []string{"#000000", "#ffffff", "#333333", "#cdd6f4", "#0000ff", "#ffff00"}
)

// paneStyle draws the input and output panes with the display preferences.
// A terminal cannot change glyph size, so the font size widens the padding.
func paneStyle(prefs models.DisplayPreferences) lipgloss.Style {
	vertical, horizontal := panePadding(prefs.FontSize)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(prefs.Background)).
		Foreground(lipgloss.Color(prefs.Foreground)).
		Border(lipgloss.NormalBorder()).
		Padding(vertical, horizontal)
}

// panePadding maps [models.MinFontSize]..[models.MaxFontSize] to 0..3 rows
// and 1..7 columns.
func panePadding(fontSize int) (vertical, horizontal int) {
	step := models.ClampFontSize(fontSize) - models.MinFontSize
	return step / 12, 1 + step/6
}

// nextInPalette returns the palette entry after current, or the first one
// when current is not in the palette.
func nextInPalette(palette []string, current string) string {
	for i, c := range palette {
		if c == current {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
