package editor

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the editor widget. Callers may
// replace any of them before the first View.
type Styles struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style
	LineNr    lipgloss.Style
	StatusBar lipgloss.Style
	Mode      lipgloss.Style
	Pending   lipgloss.Style
}

// DefaultStyles returns the stock color scheme.
func DefaultStyles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("255")),
		LineNr:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right).MarginRight(1),
		StatusBar: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		Mode:      lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// modeLabel returns the status bar label for a mode string.
func modeLabel(mode, subMode string) string {
	switch mode {
	case "VISUAL":
		switch subMode {
		case "LINE_WISE":
			return "V-LINE"
		case "BLOCK_WISE":
			return "V-BLOCK"
		default:
			return "VISUAL"
		}
	default:
		return mode
	}
}
