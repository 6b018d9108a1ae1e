package editorview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BlockstreamResearch/simplicity-webide/internal/editor"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/keymap"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/styles"
)

// bracket pairs closed by auto-close.
var closingBracket = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Model wraps a bubbles textarea and implements editor.Widget.
//
// Key messages are resolved against the keymap first; unresolved keys are
// delegated to the textarea, whose own bindings handle ordinary editing.
// The backing textarea soft-wraps at the pane edge regardless of the
// LineWrapping option; that option is honored by widget implementations
// with horizontal scrolling.
type Model struct {
	area   textarea.Model
	keymap *keymap.Keymap
	cfg    editor.Config

	width  int
	height int

	onChange func(string)
	onRun    func()
}

// New creates a widget from the given construction options, seeded with
// initial text. Seeding does not fire the change hook; no hook is installed
// yet.
func New(cfg editor.Config, initial string, theme styles.Theme, km *keymap.Keymap) *Model {
	area := textarea.New()
	area.Prompt = ""
	area.CharLimit = 0
	area.ShowLineNumbers = cfg.ShowLineNumbers
	area.FocusedStyle.LineNumber = theme.LineNumber
	area.BlurredStyle.LineNumber = theme.LineNumber
	area.Placeholder = "Enter your program here"

	if initial != "" {
		area.SetValue(initial)
	}

	return &Model{
		area:   area,
		keymap: km,
		cfg:    cfg,
	}
}

// Factory returns an editor.WidgetFactory producing these models. register
// is called with each widget built, so the host can keep the concrete model
// for message routing and rendering; it may be nil.
func Factory(theme styles.Theme, km *keymap.Keymap, register func(*Model)) editor.WidgetFactory {
	return func(cfg editor.Config, initial string) (editor.Widget, error) {
		m := New(cfg, initial, theme, km)
		if register != nil {
			register(m)
		}
		return m, nil
	}
}

// Value returns the widget's full text.
func (m *Model) Value() string { return m.area.Value() }

// SetValue replaces the widget's content, firing the change hook when the
// text actually changes.
func (m *Model) SetValue(text string) {
	m.mutate(func() { m.area.SetValue(text) })
}

// Focus moves input focus to the textarea.
func (m *Model) Focus() { m.area.Focus() }

// Blur removes input focus from the textarea.
func (m *Model) Blur() { m.area.Blur() }

// Focused reports whether the textarea has input focus.
func (m *Model) Focused() bool { return m.area.Focused() }

// SetSize sets the pane dimensions the textarea renders into.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.area.SetWidth(width)
	m.area.SetHeight(height)
}

// Refresh re-applies the pane dimensions, forcing the textarea to recompute
// its layout. Needed after the pane was hidden or resized while unfocused.
func (m *Model) Refresh() {
	m.area.SetWidth(m.width)
	m.area.SetHeight(m.height)
}

// SetOnChange installs the content-change hook. Passing nil detaches it.
func (m *Model) SetOnChange(fn func(string)) { m.onChange = fn }

// SetOnRun installs the run-chord hook. Passing nil detaches it.
func (m *Model) SetOnRun(fn func()) { m.onRun = fn }

// Update routes a message to the widget. Keys bound in the keymap are
// handled here; everything else goes to the textarea.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if cmd, bound := m.keymap.Resolve(key); bound {
			switch cmd {
			case keymap.CmdInsertIndent:
				m.mutate(func() { m.area.InsertString(m.indent()) })
			case keymap.CmdDedentLine:
				m.mutate(m.dedentCurrentLine)
			case keymap.CmdRunProgram:
				if m.onRun != nil {
					m.onRun()
				}
			}
			return nil
		}
		if m.cfg.AutoCloseBrackets && m.autoClose(key) {
			return nil
		}
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if after := m.area.Value(); after != before && m.onChange != nil {
		m.onChange(after)
	}
	return cmd
}

// View renders the textarea.
func (m *Model) View() string { return m.area.View() }

// indent returns one indentation unit.
func (m *Model) indent() string {
	if m.cfg.IndentWithTabs {
		return "\t"
	}
	unit := m.cfg.IndentUnit
	if unit <= 0 {
		unit = 4
	}
	return strings.Repeat(" ", unit)
}

// dedentCurrentLine removes one leading indentation unit from the cursor's
// line. Lines that do not start with the full unit are left unchanged:
// partial indentation and tabs are not handled.
func (m *Model) dedentCurrentLine() {
	indent := m.indent()
	lines := strings.Split(m.area.Value(), "\n")
	row := m.area.Line()
	if row < 0 || row >= len(lines) {
		return
	}
	if !strings.HasPrefix(lines[row], indent) {
		return
	}

	col := m.area.LineInfo().ColumnOffset
	lines[row] = strings.TrimPrefix(lines[row], indent)
	m.area.SetValue(strings.Join(lines, "\n"))
	m.moveCursorTo(row, col-len(indent), len(lines)-1)
}

// autoClose inserts the closing half of a typed opening bracket and leaves
// the cursor between the pair. Returns false when the key is not an opening
// bracket, in which case the caller delegates to the textarea.
func (m *Model) autoClose(key tea.KeyMsg) bool {
	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return false
	}
	closing, ok := closingBracket[key.Runes[0]]
	if !ok {
		return false
	}

	m.mutate(func() {
		m.area.InsertString(string(key.Runes[0]) + string(closing))
		m.area.SetCursor(m.area.LineInfo().ColumnOffset - 1)
	})
	return true
}

// moveCursorTo repositions the cursor after a SetValue, which leaves it at
// the end of the content.
func (m *Model) moveCursorTo(row, col, lastRow int) {
	for i := 0; i < lastRow-row; i++ {
		m.area.CursorUp()
	}
	if col < 0 {
		col = 0
	}
	m.area.SetCursor(col)
}

// mutate runs an editing operation and fires the change hook when it
// changed the content.
func (m *Model) mutate(fn func()) {
	before := m.area.Value()
	fn()
	if after := m.area.Value(); after != before && m.onChange != nil {
		m.onChange(after)
	}
}
