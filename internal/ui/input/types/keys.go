package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Focus    key.Binding
	Sidebar  key.Binding
	Filter   key.Binding
	Category key.Binding
	Clear    key.Binding
	Goto     key.Binding
	Back     key.Binding
	Delete   key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the application key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first row")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last row")),
		Enter:    key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Sidebar:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "collapse sidebar")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Goto:     key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to path")),
		Back:     key.NewBinding(key.WithKeys("backspace", "h", "left"), key.WithHelp("⌫", "back")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the status line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Focus, k.Filter, k.Category, k.Goto, k.Help, k.Quit}
}

// FullHelp is shown in the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Enter, k.Back, k.Focus, k.Sidebar, k.Goto},
		{k.Filter, k.Category, k.Clear},
		{k.Export, k.Delete, k.Help, k.Quit},
	}
}
