package tui

import (
	"github.com/hakkadots/braille-client/models"
)

type conversionDoneMsg struct {
	seq     uint64
	outcome models.SubmitOutcome
	err     error
}

type copyDoneMsg struct {
	notice string
	err    error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyClearedMsg struct {
	err error
}

type clearStatusMsg struct{}
