package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	newNote     key.Binding
	edit        key.Binding
	delete      key.Binding
	copy        key.Binding
	multiSelect key.Binding
	toggle      key.Binding
	save        key.Binding
	location    key.Binding
	clearCoord  key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newNote:     key.NewBinding(key.WithKeys("n")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("ctrl+d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	multiSelect: key.NewBinding(key.WithKeys("v")),
	toggle:      key.NewBinding(key.WithKeys(" ")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	location:    key.NewBinding(key.WithKeys("ctrl+g")),
	clearCoord:  key.NewBinding(key.WithKeys("ctrl+x")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
