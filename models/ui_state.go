package models

// UIState is a point-in-time copy of the fields a conversion session shows.
// It is never persisted.
type UIState struct {
	InputText         string
	OutputBraille     string
	CopyStatusMessage string
}

// IsEmpty reports whether every field is blank.
func (s UIState) IsEmpty() bool {
	return s.InputText == "" && s.OutputBraille == "" && s.CopyStatusMessage == ""
}
