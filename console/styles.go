package console

import "github.com/charmbracelet/lipgloss"

// Styles for the interactive shell. lipgloss degrades to plain text on
// terminals without color support, so piped output stays clean.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
