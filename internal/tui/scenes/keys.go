package scenes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-wide bindings.
type KeyMap struct {
	EMI        key.Binding
	Lumpsum    key.Binding
	Retirement key.Binding
	Tax        key.Binding
	Home       key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// GlobalKeys are handled by the root model before any scene sees a key.
var GlobalKeys = KeyMap{
	EMI:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "EMI")),
	Lumpsum:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lumpsum")),
	Retirement: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "retirement")),
	Tax:        key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "income tax")),
	Home:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Help, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EMI, k.Lumpsum, k.Retirement, k.Tax},
		{k.Home, k.Help, k.Back, k.Quit},
		append(PanelHelp(), toggleRegimeKey),
	}
}
