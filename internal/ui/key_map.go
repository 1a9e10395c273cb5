package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	sortName key.Binding
	sortArt  key.Binding
	sortDate key.Binding
	sortLen  key.Binding
	manual   key.Binding
	favorite key.Binding
	download key.Binding
	undl     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		sortName: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort by name")),
		sortArt:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort by artist")),
		sortDate: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort by date")),
		sortLen:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "sort by duration")),
		manual:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "manual order")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle favorite")),
		download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		undl:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove download")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.sortName, k.sortArt, k.sortDate, k.sortLen, k.manual},
		{k.favorite, k.download, k.undl, k.quit},
	}
}
