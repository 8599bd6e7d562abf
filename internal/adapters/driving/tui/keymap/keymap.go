// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list or scrolls the tree.
	Up key.Binding

	// Down navigates down in a list or scrolls the tree.
	Down key.Binding

	// Select opens the highlighted collection.
	Select key.Binding

	// Reload fetches the collection list again.
	Reload key.Binding

	// Deeper renders one more level.
	Deeper key.Binding

	// Shallower renders one level less.
	Shallower key.Binding

	// Format cycles through the render formats.
	Format key.Binding

	// NextPage shows the next page of top-level nodes.
	NextPage key.Binding

	// PrevPage shows the previous page of top-level nodes.
	PrevPage key.Binding

	// Reverse flips the order of top-level nodes.
	Reverse key.Binding

	// ReverseChildren flips the order of siblings.
	ReverseChildren key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Deeper: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "deeper"),
		),
		Shallower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shallower"),
		),
		Format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "format"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "prev page"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		ReverseChildren: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reverse children"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// ListHelp returns keybindings for the collection list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Select, k.Reload, k.Help, k.Quit}
}

// TreeHelp returns keybindings for the tree view.
func (k *KeyMap) TreeHelp() []key.Binding {
	return []key.Binding{k.Deeper, k.Shallower, k.Format, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Reload},
		{k.Deeper, k.Shallower, k.Format},
		{k.NextPage, k.PrevPage, k.Reverse, k.ReverseChildren},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
