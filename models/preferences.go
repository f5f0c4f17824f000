package models

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinFontSize     = 12
	MaxFontSize     = 48
	DefaultFontSize = 18

	DefaultBackground = "#ffffff"
	DefaultForeground = "#000000"
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DisplayPreferences controls how the input and output panes are drawn.
// They live for one session only.
type DisplayPreferences struct {
	Background string
	Foreground string
	FontSize   int
}

// DefaultDisplayPreferences returns black text on white at 18px.
func DefaultDisplayPreferences() DisplayPreferences {
	return DisplayPreferences{
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		FontSize:   DefaultFontSize,
	}
}

// Normalize returns a copy with blank colours replaced by the defaults,
// colours lower-cased, and the font size clamped to [MinFontSize, MaxFontSize].
// A zero font size becomes [DefaultFontSize].
func (p DisplayPreferences) Normalize() DisplayPreferences {
	if strings.TrimSpace(p.Background) == "" {
		p.Background = DefaultBackground
	}
	if strings.TrimSpace(p.Foreground) == "" {
		p.Foreground = DefaultForeground
	}
	p.Background = strings.ToLower(strings.TrimSpace(p.Background))
	p.Foreground = strings.ToLower(strings.TrimSpace(p.Foreground))

	if p.FontSize == 0 {
		p.FontSize = DefaultFontSize
	}
	p.FontSize = ClampFontSize(p.FontSize)
	return p
}

// Validate checks both colours.
func (p DisplayPreferences) Validate() error {
	if err := ValidateColor(p.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if err := ValidateColor(p.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}

// FontSizeLabel renders the font size the way the size display shows it.
func (p DisplayPreferences) FontSizeLabel() string {
	return fmt.Sprintf("%dpx", p.FontSize)
}

// ValidateColor accepts #rgb and #rrggbb.
func ValidateColor(c string) error {
	if !colorPattern.MatchString(strings.TrimSpace(c)) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return nil
}

// ClampFontSize limits size to [MinFontSize, MaxFontSize].
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
