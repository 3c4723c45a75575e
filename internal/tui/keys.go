package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Up        key.Binding
	Down      key.Binding
	Today     key.Binding
	Cancel    key.Binding
	Reblock   key.Binding
	Search    key.Binding
	Yes       key.Binding
	No        key.Binding
	Enter     key.Binding
	Escape    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev day")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Cancel:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel day")),
	Reblock:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "re-block day")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "shoot happened")),
	No:        key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no shoot")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
