package editor

// Config captures the construction options the bridge passes to the widget
// factory. The zero value is not useful; DefaultConfig supplies the
// conventional editing setup.
type Config struct {
	// SyntaxMode names the language mode for highlighting ("simplicity").
	SyntaxMode string
	// Theme names the visual theme the widget should render with.
	Theme string
	// ShowLineNumbers enables the line-number gutter.
	ShowLineNumbers bool
	// MatchBrackets enables highlighting of the bracket matching the one
	// at the cursor.
	MatchBrackets bool
	// AutoCloseBrackets inserts the closing half of a typed bracket pair.
	AutoCloseBrackets bool
	// IndentUnit is the number of columns one indent step occupies.
	IndentUnit int
	// IndentWithTabs selects tab characters over spaces for indentation.
	IndentWithTabs bool
	// LineWrapping enables soft wrapping of long lines.
	LineWrapping bool
}

// DefaultConfig returns the editing setup the IDE uses: 4-space indentation,
// line numbers, bracket matching and auto-close, no soft wrapping.
func DefaultConfig() Config {
	return Config{
		SyntaxMode:        "simplicity",
		Theme:             "default",
		ShowLineNumbers:   true,
		MatchBrackets:     true,
		AutoCloseBrackets: true,
		IndentUnit:        4,
		IndentWithTabs:    false,
		LineWrapping:      false,
	}
}

// Widget is the pre-built text-editing component the bridge delegates to.
// Implementations own rendering, key handling and highlighting; the bridge
// only configures them and moves text in and out.
type Widget interface {
	// Value returns the widget's full text.
	Value() string

	// SetValue replaces the widget's content. Implementations fire the
	// change hook for programmatic replacement, matching edit behavior.
	SetValue(text string)

	// Focus moves input focus to the widget.
	Focus()

	// Refresh recomputes the widget's layout, for widgets that were
	// resized or hidden while unfocused.
	Refresh()

	// SetOnChange installs the single content-change hook, replacing any
	// previous one. The hook receives the full text after each edit.
	// Passing nil detaches the hook.
	SetOnChange(fn func(text string))

	// SetOnRun installs the hook fired when the user presses the run key
	// chord inside the widget. Passing nil detaches the hook.
	SetOnRun(fn func())
}

// WidgetFactory constructs a widget from a configuration and initial text.
// The initial text must not fire the change hook; hooks are installed by
// the bridge after construction.
type WidgetFactory func(cfg Config, initial string) (Widget, error)
