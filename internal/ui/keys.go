package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding

	// Gallery navigation
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding

	// Actions
	Surprise    key.Binding
	SizeSmall   key.Binding
	SizeMedium  key.Binding
	SizeLarge   key.Binding
	OpenBrowser key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus next control"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Focus previous control"),
		),

		// Gallery navigation
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Select previous / slide down"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Select next / slide up"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Select row above"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Select row below"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First photo"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last photo"),
		),

		// Actions
		Surprise: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Surprise Me!"),
		),
		SizeSmall: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Small thumbnails"),
		),
		SizeMedium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Medium thumbnails"),
		),
		SizeLarge: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Large thumbnails"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open photo in browser"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Surprise, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Left, k.Right, k.Up, k.Down, k.First, k.Last},
		// Actions
		{k.Surprise, k.SizeSmall, k.SizeMedium, k.SizeLarge, k.OpenBrowser},
		// Controls
		{k.Tab, k.ShiftTab},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
