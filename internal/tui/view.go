package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.view == nil {
		return m.theme.ErrorOutput.Render("editor failed to initialize")
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Simplicity Web IDE"))
	b.WriteString("\n")
	b.WriteString(m.theme.EditorPane.Render(m.view.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.OutputPane.Render(m.renderOutput()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderOutput renders the debug and error panes from the last run.
func (m *Model) renderOutput() string {
	var parts []string
	if m.debug != "" {
		parts = append(parts, m.theme.DebugOutput.Render(m.debug))
	}
	if m.errOut != "" {
		parts = append(parts, m.theme.ErrorOutput.Render(m.errOut))
	}
	if len(parts) == 0 {
		return m.theme.Help.Render("output appears here after a run")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatus renders the status bar with the transient run indicator.
func (m *Model) renderStatus() string {
	var indicator string
	switch m.flash {
	case flashOK:
		indicator = m.theme.StatusOK.Render("✓ run succeeded")
	case flashFail:
		indicator = m.theme.StatusFail.Render("✗ run failed")
	}

	help := m.theme.Help.Render("ctrl+enter run · tab indent · shift+tab dedent · ctrl+c quit")
	status := m.theme.StatusBar.Render(m.status)

	return lipgloss.JoinHorizontal(lipgloss.Left, indicator, " ", status, " ", help)
}
