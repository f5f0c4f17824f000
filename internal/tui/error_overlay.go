package tui

// alertOverlayModel is the modal box for blocking alerts.
type alertOverlayModel struct {
	title   string
	message string
	hint    string
}

func (m alertOverlayModel) View() string {
	content := m.title + "\n\n" + m.message + "\n\n" + m.hint
	return overlayBoxStyle.Render(content)
}
