package keymap

import tea "github.com/charmbracelet/bubbletea"

// Default returns the editor key bindings.
//
// The run chord is Ctrl+Enter in spirit; most terminal emulators fold
// Ctrl+Enter into plain Enter, so the binding listens for Ctrl+J (the
// linefeed control, which those emulators do deliver distinctly).
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdInsertIndent, Description: "Insert 4 spaces"},
			{KeyType: tea.KeyShiftTab, Command: CmdDedentLine, Description: "Remove leading 4 spaces"},
			{KeyType: tea.KeyCtrlJ, Command: CmdRunProgram, Description: "Run program (Ctrl+Enter)"},
		},
	}
}
