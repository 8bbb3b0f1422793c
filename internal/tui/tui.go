// Package tui is the interactive terminal settings editor for the dircast
// config file. It shows the five resolved fields, lets the operator edit
// them one at a time (invalid input is rejected inline, keeping the prior
// value), and saves the working copy back to the YAML config file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dircast/dircast/internal/config"
	"github.com/dircast/dircast/internal/logger"
)

// Run starts the settings editor over cfg. Edits happen on a working copy;
// cfg itself is never mutated. path is where the save action writes and is
// shown in the title so the operator knows which file they are editing.
func Run(cfg *config.Config, path string, log *logger.Logger) error {
	model := newAppModel(cfg, path, log)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.dirty {
		log.Info().Str("file", path).Msg("settings editor closed with unsaved changes")
	}

	return nil
}
