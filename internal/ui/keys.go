package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Escape      key.Binding

	// Discovery
	Search      key.Binding
	Trending    key.Binding
	Random      key.Binding
	CycleGenre  key.Binding
	Confirm     key.Binding
	ToggleWatch key.Binding
	RemoveWatch key.Binding

	// Poll
	PollSetup key.Binding
	ClearPoll key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle light/dark"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous pane"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close dialog / leave search"),
		),

		// Discovery
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search movies"),
		),
		Trending: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Trending this week"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Random movie"),
		),
		CycleGenre: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle random genre"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open / vote / confirm"),
		),
		ToggleWatch: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add/remove watchlist"),
		),
		RemoveWatch: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove from watchlist"),
		),

		// Poll
		PollSetup: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Create poll"),
		),
		ClearPoll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear poll"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Trending, k.Random, k.PollSetup, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ShiftTab, k.Up, k.Down, k.Top, k.Bottom, k.Escape},
		// Movies
		{k.Search, k.Trending, k.Random, k.CycleGenre, k.Confirm},
		// Watchlist
		{k.ToggleWatch, k.RemoveWatch},
		// Poll
		{k.PollSetup, k.ClearPoll},
		// General
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
