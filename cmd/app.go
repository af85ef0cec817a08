package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vimcore/vimcore/internal/ui/editor"
)

// appModel adapts the editor widget to tea.Model and owns program-level
// keys (quit).
type appModel struct {
	editor editor.Model
}

func (a appModel) Init() tea.Cmd { return a.editor.Init() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a appModel) View() string { return a.editor.View() }
