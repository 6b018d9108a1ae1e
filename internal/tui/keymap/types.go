// Package keymap provides declarative key binding definitions and lookup for
// the editor view. Bindings resolve a tea.KeyMsg to a named command; keys
// with no binding fall through to the backing text widget.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Command represents a named action that can be triggered by a key binding.
type Command string

// Editor commands
const (
	// CmdInsertIndent inserts one indentation unit at the cursor.
	CmdInsertIndent Command = "insert_indent"
	// CmdDedentLine removes one leading indentation unit from the
	// current line, when the line starts with exactly that unit.
	CmdDedentLine Command = "dedent_line"
	// CmdRunProgram requests a program run from the host application.
	CmdRunProgram Command = "run_program"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For special keys, use
	// tea.KeyType constants (e.g., tea.KeyTab). For rune keys, use
	// tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return "space"
	}
	return string(kb.Rune)
}

// Keymap is an ordered list of bindings; the first match wins.
type Keymap struct {
	// Name identifies this keymap (e.g., "default").
	Name string

	// Bindings are checked in order.
	Bindings []KeyBinding
}

// Resolve looks up the command for a key.
// Returns the command and true if a binding matches.
func (km *Keymap) Resolve(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range km.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}
