package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeymapData contains all key bindings for the list view.
type KeymapData struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding

	// Task actions
	Select   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Remove   key.Binding
	Complete key.Binding
	Copy     key.Binding
	Clear    key.Binding

	// General
	Search key.Binding
	Help   key.Binding
	Hints  key.Binding
	Quit   key.Binding

	vim bool
}

// DefaultKeymap returns the key bindings. Vim mode adds j/k, G and the
// gg/dd/yy sequences on top of the arrow-key defaults.
func DefaultKeymap(vim bool) KeymapData {
	km := KeymapData{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
		HalfUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "half page down")),

		Select:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove:   key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove")),
		Complete: key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "complete")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Hints:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "hints")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		vim: vim,
	}

	if vim {
		km.Up = key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up"))
		km.Down = key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down"))
		km.Top = key.NewBinding(key.WithKeys("home"), key.WithHelp("gg", "top"))
		km.Bottom = key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom"))
		km.Remove = key.NewBinding(key.WithKeys("delete"), key.WithHelp("dd", "remove"))
		km.Copy = key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("yy", "copy"))
	}

	return km
}

// Vim reports whether multi-key sequences are active.
func (k KeymapData) Vim() bool { return k.vim }

// SetSelectionCount enables the bindings that need a selection, so the help
// line greys them out the way the Edit/Remove buttons are. Edit and Remove
// need exactly one selected task; Copy and Clear take any number.
func (k *KeymapData) SetSelectionCount(n int) {
	k.Edit.SetEnabled(n == 1)
	k.Remove.SetEnabled(n == 1)
	k.Copy.SetEnabled(n > 0)
	k.Clear.SetEnabled(n > 0)
}

// ShortHelp implements help.KeyMap.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Remove, k.Complete, k.Select, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfUp, k.HalfDown},
		{k.Select, k.Clear, k.Add, k.Edit, k.Remove, k.Complete, k.Copy},
		{k.Search, k.Help, k.Hints, k.Quit},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	k := msg.String()

	if keymap.vim {
		if ks.WaitingG {
			ks.WaitingG = false
			if k == "g" {
				return "top", true
			}
		}
		if ks.WaitingD {
			ks.WaitingD = false
			if k == "d" {
				return "remove", true
			}
		}
		if ks.WaitingY {
			ks.WaitingY = false
			if k == "y" {
				return "copy", true
			}
		}

		switch k {
		case "g":
			ks.WaitingG = true
			ks.LastKey = k
			return "", true
		case "d":
			ks.WaitingD = true
			ks.LastKey = k
			return "", true
		case "y":
			ks.WaitingY = true
			ks.LastKey = k
			return "", true
		}
	}

	switch {
	case key.Matches(msg, keymap.Up):
		return "up", true
	case key.Matches(msg, keymap.Down):
		return "down", true
	case key.Matches(msg, keymap.Top):
		return "top", true
	case key.Matches(msg, keymap.Bottom):
		return "bottom", true
	case key.Matches(msg, keymap.HalfUp):
		return "half_up", true
	case key.Matches(msg, keymap.HalfDown):
		return "half_down", true
	case key.Matches(msg, keymap.Select):
		return "select", true
	case key.Matches(msg, keymap.Add):
		return "add", true
	case key.Matches(msg, keymap.Edit):
		return "edit", true
	case key.Matches(msg, keymap.Remove):
		return "remove", true
	case key.Matches(msg, keymap.Complete):
		return "complete", true
	case key.Matches(msg, keymap.Copy):
		return "copy", true
	case key.Matches(msg, keymap.Clear):
		return "clear", true
	case key.Matches(msg, keymap.Search):
		return "search", true
	case key.Matches(msg, keymap.Help):
		return "help", true
	case key.Matches(msg, keymap.Hints):
		return "toggle_hints", true
	case key.Matches(msg, keymap.Quit):
		return "quit", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	items := [][]string{{"Navigation", ""}}
	for _, b := range []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.HalfUp, k.HalfDown} {
		items = append(items, []string{b.Help().Key, b.Help().Desc})
	}

	items = append(items, []string{"", ""}, []string{"Task Actions", ""})
	for _, b := range []key.Binding{k.Select, k.Clear, k.Add, k.Edit, k.Remove, k.Complete, k.Copy} {
		items = append(items, []string{b.Help().Key, b.Help().Desc})
	}

	items = append(items,
		[]string{"", ""},
		[]string{"General", ""},
		[]string{k.Search.Help().Key, "Search (enter/esc to leave)"},
		[]string{k.Help.Help().Key, "Toggle help"},
		[]string{k.Hints.Help().Key, "Toggle key hints"},
		[]string{k.Quit.Help().Key, "Quit"},
	)

	return items
}
