// Package session keeps the state of one conversion session in memory:
// the text being edited, the last braille output, the copy status line and
// the display preferences. Nothing here outlives the process.
package session

import (
	"sync"

	"github.com/hakkadots/braille-client/models"
)

// Session is safe for concurrent use; tea commands read and write it from
// their own goroutines.
type Session struct {
	mu sync.RWMutex

	inputText         string
	outputBraille     string
	copyStatusMessage string

	preferences models.DisplayPreferences
}

// New returns an empty session using prefs (normalised) for display.
func New(prefs models.DisplayPreferences) *Session {
	return &Session{preferences: prefs.Normalize()}
}

func (s *Session) InputText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputText
}

func (s *Session) SetInputText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputText = text
}

func (s *Session) OutputBraille() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputBraille
}

func (s *Session) SetOutputBraille(braille string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputBraille = braille
}

func (s *Session) CopyStatus() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyStatusMessage
}

func (s *Session) SetCopyStatus(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copyStatusMessage = message
}

// Reset clears the three text fields. Display preferences are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputText = ""
	s.outputBraille = ""
	s.copyStatusMessage = ""
}

// Snapshot returns a consistent copy of the text fields.
func (s *Session) Snapshot() models.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.UIState{
		InputText:         s.inputText,
		OutputBraille:     s.outputBraille,
		CopyStatusMessage: s.copyStatusMessage,
	}
}

func (s *Session) Preferences() models.DisplayPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences
}

// SetPreferences validates prefs after normalising them and stores the
// result. Invalid colours leave the current preferences in place.
func (s *Session) SetPreferences(prefs models.DisplayPreferences) error {
	prefs = prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences = prefs
	return nil
}
