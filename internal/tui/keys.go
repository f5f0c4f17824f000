package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	left         key.Binding
	right        key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	quit         key.Binding
	convert      key.Binding
	copy         key.Binding
	clear        key.Binding
	nextMode     key.Binding
	prevMode     key.Binding
	history      key.Binding
	preferences  key.Binding
	buildInfo    key.Binding
	clearHistory key.Binding
	background   key.Binding
	foreground   key.Binding
	fontUp       key.Binding
	fontDown     key.Binding
	resetPrefs   key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	left:         key.NewBinding(key.WithKeys("left")),
	right:        key.NewBinding(key.WithKeys("right")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c")),
	convert:      key.NewBinding(key.WithKeys("ctrl+s")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y")),
	clear:        key.NewBinding(key.WithKeys("ctrl+l")),
	nextMode:     key.NewBinding(key.WithKeys("ctrl+n")),
	prevMode:     key.NewBinding(key.WithKeys("ctrl+b")),
	history:      key.NewBinding(key.WithKeys("f2")),
	preferences:  key.NewBinding(key.WithKeys("f3")),
	buildInfo:    key.NewBinding(key.WithKeys("f1")),
	clearHistory: key.NewBinding(key.WithKeys("ctrl+d")),
	background:   key.NewBinding(key.WithKeys("b")),
	foreground:   key.NewBinding(key.WithKeys("t")),
	fontUp:       key.NewBinding(key.WithKeys("+", "=")),
	fontDown:     key.NewBinding(key.WithKeys("-", "_")),
	resetPrefs:   key.NewBinding(key.WithKeys("r")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n")),
}
