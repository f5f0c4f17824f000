package tui

import (
	"strings"

	"github.com/hakkadots/braille-client/models"
)

// modeSelectModel is the one-line input mode selector of the converter screen.
type modeSelectModel struct {
	modes []models.InputMode
	idx   int
}

func newModeSelectModel(initial models.InputMode) modeSelectModel {
	m := modeSelectModel{modes: models.SupportedInputModes}
	for i, mode := range m.modes {
		if mode == initial {
			m.idx = i
		}
	}
	return m
}

func (m modeSelectModel) current() models.InputMode {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.idx]
}

func (m modeSelectModel) next() modeSelectModel {
	if len(m.modes) > 0 {
		m.idx = (m.idx + 1) % len(m.modes)
	}
	return m
}

func (m modeSelectModel) prev() modeSelectModel {
	if len(m.modes) > 0 {
		m.idx = (m.idx - 1 + len(m.modes)) % len(m.modes)
	}
	return m
}

func (m modeSelectModel) selectMode(mode models.InputMode) modeSelectModel {
	for i, candidate := range m.modes {
		if candidate == mode {
			m.idx = i
		}
	}
	return m
}

func (m modeSelectModel) View(focused bool) string {
	items := make([]string, 0, len(m.modes))
	for i, mode := range m.modes {
		item := " " + mode.String() + " "
		if i == m.idx {
			item = "[" + mode.String() + "]"
			if focused {
				item = focusedStyle.Render(item)
			}
		}
		items = append(items, item)
	}
	return strings.Join(items, " ")
}
