package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding

	// Actions
	Search       key.Binding
	Filters      key.Binding
	Enter        key.Binding
	Favorite     key.Binding
	LoadMore     key.Binding
	ClearSearch  key.Binding
	ClearHistory key.Binding
	Theme        key.Binding
	Escape       key.Binding
	Help         key.Binding
	Quit         key.Binding

	// Filter panel
	ToggleGenre key.Binding
	RatingDown  key.Binding
	RatingUp    key.Binding
	Apply       key.Binding
	Reset       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab", "prev category"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "popular")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "top rated")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "now playing")),
		Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "favorites")),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "filters"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "clear search"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear history"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		ToggleGenre: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle genre"),
		),
		RatingDown: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "rating down"),
		),
		RatingUp: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "rating up"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// Keys is the global keymap instance
var Keys = DefaultKeyMap()

// HelpBindings returns the bindings listed in the help overlay, grouped
func (k KeyMap) HelpBindings() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.NextTab, k.PrevTab, k.Tab1, k.Tab4},
		{k.Search, k.ClearSearch, k.Enter, k.Favorite, k.LoadMore, k.Filters, k.ClearHistory},
		{k.ToggleGenre, k.RatingDown, k.RatingUp, k.Apply, k.Reset},
		{k.Theme, k.Escape, k.Help, k.Quit},
	}
}
