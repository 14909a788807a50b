package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the viewer. Scrolling keys of the body
// are the viewport's own.
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Outline key.Binding
	Up      key.Binding
	Down    key.Binding
	Jump    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Top     key.Binding
	Bottom  key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Outline: key.NewBinding(
		key.WithKeys("tab", "o"),
		key.WithHelp("tab", "toggle outline"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "prev heading"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next heading"),
	),
	Jump: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump to heading"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next section"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prev section"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q: quit  tab: outline  ↑/↓: select  enter: jump  n/p: next/prev section  g/G: top/bottom  ?: help"
