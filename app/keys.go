package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the builder screen bindings. It implements help.KeyMap.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Add             key.Binding
	AddChild        key.Binding
	AddSibling      key.Binding
	Delete          key.Binding
	MoveUp          key.Binding
	MoveDown        key.Binding
	Indent          key.Binding
	Outdent         key.Binding
	Duplicate       key.Binding
	Edit            key.Binding
	Reset           key.Binding
	ToggleMode      key.Binding
	ToggleBootstrap key.Binding
	Preview         key.Binding
	Settings        key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Add:             key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add (default placement)")),
		AddChild:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add child")),
		AddSibling:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add sibling")),
		Delete:          key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		MoveUp:          key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:        key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Indent:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),
		Duplicate:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "duplicate")),
		Edit:            key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Reset:           key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		ToggleMode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "full/empty")),
		ToggleBootstrap: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bootstrap")),
		Preview:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Settings:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "settings")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddChild, k.AddSibling, k.Delete, k.Edit, k.Preview, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.AddChild, k.AddSibling},
		{k.Delete, k.Duplicate, k.Edit, k.MoveUp, k.MoveDown},
		{k.Indent, k.Outdent, k.Reset, k.ToggleMode, k.ToggleBootstrap},
		{k.Preview, k.Settings, k.Help, k.Quit},
	}
}
