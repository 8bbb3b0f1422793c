package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dircast/dircast/internal/config"
)

type menuModel struct {
	idx fieldID
}

func (m *menuModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *menuModel) moveDown() {
	if m.idx < fieldCount-1 {
		m.idx++
	}
}

// View renders the five fields as a two-column table with a `>` cursor on
// the highlighted row.
func (m *menuModel) View(cfg *config.Config) string {
	labelColWidth := lipgloss.Width("Field")
	for id := fieldID(0); id < fieldCount; id++ {
		if w := lipgloss.Width(fieldLabel(id)); w > labelColWidth {
			labelColWidth = w
		}
	}
	labelColWidth += 2 // reserve space for selection marker and space

	valueColWidth := lipgloss.Width("Value")
	for id := fieldID(0); id < fieldCount; id++ {
		if w := lipgloss.Width(fieldValue(cfg, id)); w > valueColWidth {
			valueColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", labelColWidth, "Field", valueColWidth, "Value"))
	b.WriteString(strings.Repeat("─", labelColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", valueColWidth))
	b.WriteString("\n")

	for id := fieldID(0); id < fieldCount; id++ {
		cursor := " "
		if id == m.idx {
			cursor = ">"
		}
		labelCell := fmt.Sprintf("%s %s", cursor, fieldLabel(id))
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", labelColWidth, labelCell, valueColWidth, fitText(fieldValue(cfg, id), 60)))
	}

	return strings.TrimRight(b.String(), "\n")
}
