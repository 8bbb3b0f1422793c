package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formModel struct {
	field  fieldID
	input  textinput.Model
	errMsg string
}

func newFormModel(field fieldID, current string) formModel {
	input := textinput.New()
	input.SetValue(current)
	input.CursorEnd()
	input.Focus()

	return formModel{field: field, input: input}
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f formModel) value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f formModel) View() string {
	var b strings.Builder

	b.WriteString("Edit ")
	b.WriteString(fieldLabel(f.field))
	b.WriteString(" (")
	b.WriteString(fieldHint(f.field))
	b.WriteString("):\n\n")
	b.WriteString(f.input.View())

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}

	return b.String()
}
