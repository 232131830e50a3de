package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"zotui/internal/config"
)

// keyMap binds the closed logical command set to keys. The configured keys
// come from [keys] in the config file; arrows, page keys and ctrl+c stay
// bound alongside them. Enter is deliberately absent: activation is a
// separate channel handled where the focused widget decides what "activate"
// means.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Quit     key.Binding
	Sort     key.Binding
	Reload   key.Binding
}

func newKeyMap(kc config.KeyConfig) keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", kc.Up), key.WithHelp(kc.Up, "up")),
		Down:     key.NewBinding(key.WithKeys("down", kc.Down), key.WithHelp(kc.Down, "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", kc.PageUp), key.WithHelp(kc.PageUp, "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", kc.PageDown), key.WithHelp(kc.PageDown, "page down")),
		Select:   key.NewBinding(key.WithKeys(kc.Select), key.WithHelp("space", "select")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", kc.Quit), key.WithHelp(kc.Quit, "quit")),
		Sort:     key.NewBinding(key.WithKeys(kc.Sort), key.WithHelp(kc.Sort, "sort")),
		Reload:   key.NewBinding(key.WithKeys(kc.Reload), key.WithHelp(kc.Reload, "reload")),
	}
}
