package tui

import (
	"strings"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

// fontSizeStep matches the size slider granularity of the web client.
const fontSizeStep = 2

// adjustPreferences applies one preferences hotkey to prefs. ok is false for
// keys the screen does not handle.
func adjustPreferences(prefs models.DisplayPreferences, keyName string, defaults models.DisplayPreferences) (models.DisplayPreferences, bool) {
	switch keyName {
	case "b":
		prefs.Background = nextInPalette(backgroundPalette, prefs.Background)
	case "t":
		prefs.Foreground = nextInPalette(foregroundPalette, prefs.Foreground)
	case "+", "=":
		prefs.FontSize = models.ClampFontSize(prefs.FontSize + fontSizeStep)
	case "-", "_":
		prefs.FontSize = models.ClampFontSize(prefs.FontSize - fontSizeStep)
	case "r":
		prefs = defaults
	default:
		return prefs, false
	}
	return prefs, true
}

func renderPreferences(p *app.Printer, prefs models.DisplayPreferences) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(p.Text(app.LabelBackground)))
	b.WriteString(": ")
	b.WriteString(prefs.Background)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(p.Text(app.LabelForeground)))
	b.WriteString(": ")
	b.WriteString(prefs.Foreground)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(p.Text(app.LabelFontSize)))
	b.WriteString(": ")
	b.WriteString(prefs.FontSizeLabel())
	b.WriteString("\n\n")
	b.WriteString(paneStyle(prefs).Render("⠓⠁⠅⠅⠁  hak-kâ"))

	return renderPage(p.Text(app.LabelPreferences), b.String(), p.Text(app.HotkeysPreferences), p.Text(app.HotkeysQuit))
}
