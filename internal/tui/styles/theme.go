// Package styles defines the lipgloss styles the IDE renders with and the
// YAML theme files users can drop in to recolor it.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the resolved color set a theme provides.
type Palette struct {
	Primary    string
	Secondary  string
	Success    string
	Error      string
	Muted      string
	Text       string
	Border     string
	LineNumber string
}

// Theme holds the rendered styles for every surface of the IDE.
type Theme struct {
	Name string

	EditorPane  lipgloss.Style
	OutputPane  lipgloss.Style
	Title       lipgloss.Style
	StatusBar   lipgloss.Style
	StatusOK    lipgloss.Style
	StatusFail  lipgloss.Style
	DebugOutput lipgloss.Style
	ErrorOutput lipgloss.Style
	LineNumber  lipgloss.Style
	Help        lipgloss.Style
}

// DefaultPalette returns the built-in color set.
func DefaultPalette() Palette {
	return Palette{
		Primary:    "#7D56F4",
		Secondary:  "#04B575",
		Success:    "#04B575",
		Error:      "#FF5F87",
		Muted:      "#626262",
		Text:       "#FAFAFA",
		Border:     "#444444",
		LineNumber: "#626262",
	}
}

// Default returns the built-in theme.
func Default() Theme {
	return FromPalette("default", DefaultPalette())
}

// FromPalette builds the style set from a palette.
func FromPalette(name string, p Palette) Theme {
	border := lipgloss.RoundedBorder()

	return Theme{
		Name: name,
		EditorPane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
		OutputPane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		StatusFail: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),
		DebugOutput: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		ErrorOutput: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.LineNumber)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Italic(true),
	}
}
