package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/filearr/filearr/internal/config"
)

// KeyMap holds the folder browser key bindings
type KeyMap struct {
	Cancel    key.Binding
	Down      key.Binding
	ForceQuit key.Binding
	GoTo      key.Binding
	Help      key.Binding
	Open      key.Binding
	Parent    key.Binding
	Refresh   key.Binding
	Select    key.Binding
	Up        key.Binding
}

// NewKeyMap builds the key bindings, applying customKeys over the defaults.
// Pass nil to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		Cancel:    buildBinding("cancel", customKeys),
		Down:      buildBinding("down", customKeys),
		ForceQuit: buildBinding("force_quit", customKeys),
		GoTo:      buildBinding("goto", customKeys),
		Help:      buildBinding("help", customKeys),
		Open:      buildBinding("open", customKeys),
		Parent:    buildBinding("parent", customKeys),
		Refresh:   buildBinding("refresh", customKeys),
		Select:    buildBinding("select", customKeys),
		Up:        buildBinding("up", customKeys),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.Parent, k.Select, k.GoTo, k.Help, k.Cancel}
}

func buildBinding(name string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := def.Defaults
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
