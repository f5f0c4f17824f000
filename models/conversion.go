package models

import (
	"fmt"
	"strings"
)

// InputMode names the romanisation scheme the submitted text is written in.
// The value is sent verbatim as the "inputMode" field of a conversion request.
type InputMode string

const (
	InputModeSixian      InputMode = "四縣"
	InputModeSouthSixian InputMode = "南四縣"
	InputModeHailu       InputMode = "海陸"
	InputModeDapu        InputMode = "大埔"
	InputModeRaoping     InputMode = "饒平"
	InputModeZhaoan      InputMode = "詔安"
)

// SupportedInputModes lists every input mode in selector order.
var SupportedInputModes = []InputMode{
	InputModeSixian,
	InputModeSouthSixian,
	InputModeHailu,
	InputModeDapu,
	InputModeRaoping,
	InputModeZhaoan,
}

var inputModeAliases = map[string]InputMode{
	"sixian":       InputModeSixian,
	"sixien":       InputModeSixian,
	"south-sixian": InputModeSouthSixian,
	"southsixian":  InputModeSouthSixian,
	"hailu":        InputModeHailu,
	"dapu":         InputModeDapu,
	"raoping":      InputModeRaoping,
	"zhaoan":       InputModeZhaoan,
	"zhao-an":      InputModeZhaoan,
}

// IsValid reports whether m is one of [SupportedInputModes].
func (m InputMode) IsValid() bool {
	for _, mode := range SupportedInputModes {
		if m == mode {
			return true
		}
	}
	return false
}

func (m InputMode) String() string {
	return string(m)
}

// Alias returns the ASCII alias of m, or the raw value for unknown modes.
func (m InputMode) Alias() string {
	switch m {
	case InputModeSixian:
		return "sixian"
	case InputModeSouthSixian:
		return "south-sixian"
	case InputModeHailu:
		return "hailu"
	case InputModeDapu:
		return "dapu"
	case InputModeRaoping:
		return "raoping"
	case InputModeZhaoan:
		return "zhaoan"
	default:
		return string(m)
	}
}

// Next returns the mode following m in [SupportedInputModes], wrapping around.
// Unknown modes advance to the first supported mode.
func (m InputMode) Next() InputMode {
	return m.shift(1)
}

// Prev returns the mode preceding m in [SupportedInputModes], wrapping around.
func (m InputMode) Prev() InputMode {
	return m.shift(-1)
}

func (m InputMode) shift(step int) InputMode {
	n := len(SupportedInputModes)
	for i, mode := range SupportedInputModes {
		if mode == m {
			return SupportedInputModes[((i+step)%n+n)%n]
		}
	}
	return SupportedInputModes[0]
}

// ParseInputMode resolves s to an [InputMode]. Both the canonical value and
// its ASCII alias are accepted; matching is case-insensitive and ignores
// surrounding whitespace. An empty string yields an empty mode, which means
// "let the service pick its default".
func ParseInputMode(s string) (InputMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	if mode := InputMode(s); mode.IsValid() {
		return mode, nil
	}
	if mode, ok := inputModeAliases[strings.ToLower(s)]; ok {
		return mode, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownInputMode, s)
}

// ConversionRequest is the body of POST /convert.
type ConversionRequest struct {
	// Text is the trimmed, non-empty romanised text.
	Text string `json:"text"`

	// InputMode is optional; when empty the service applies its own default.
	InputMode InputMode `json:"inputMode,omitempty"`
}

// ConversionResponse is the body returned by POST /convert.
type ConversionResponse struct {
	Braille string `json:"braille"`
}

// Submission is a validated conversion request together with the sequence
// number and request id issued when it was submitted.
type Submission struct {
	Seq       uint64
	RequestID string
	Request   ConversionRequest
}

// SubmitOutcome describes what a single submission did to the UI state.
type SubmitOutcome struct {
	// RequestID is the id sent in the X-Request-ID header.
	RequestID string
	// Seq is the submission sequence number.
	Seq uint64
	// Braille is the transcription returned by the service.
	Braille string
	// Copied reports whether the automatic clipboard copy succeeded.
	Copied bool
	// CopyStatus is the message stored as the copy status.
	CopyStatus string
	// Stale is set when a newer submission (or a reset) superseded this one
	// and its result was discarded.
	Stale bool
}
