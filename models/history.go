package models

import "time"

// HistoryEntry is one successful conversion kept in the local history.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	RequestID string    `json:"request_id"`
	Text      string    `json:"text"`
	InputMode InputMode `json:"input_mode,omitempty"`
	Braille   string    `json:"braille"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryFilter narrows a history listing. Zero values mean "no filter";
// a zero Limit means the repository default.
type HistoryFilter struct {
	InputMode InputMode
	Limit     uint64
}
