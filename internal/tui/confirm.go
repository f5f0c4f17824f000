package tui

// confirmModel asks a yes/no question in an overlay box.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y / n"
	return overlayBoxStyle.Render(content)
}
