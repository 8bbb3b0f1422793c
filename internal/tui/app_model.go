package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dircast/dircast/internal/adapter"
	"github.com/dircast/dircast/internal/config"
	"github.com/dircast/dircast/internal/logger"
)

type screen int

const (
	screenMenu screen = iota
	screenEdit
)

type appModel struct {
	cfg  *config.Config // working copy, never the resolved original
	path string
	log  *logger.Logger

	currentScreen screen
	menu          menuModel
	form          formModel

	width   int
	dirty   bool
	probing bool
	status  string
	errMsg  string
}

func newAppModel(cfg *config.Config, path string, log *logger.Logger) appModel {
	working := *cfg

	return appModel{
		cfg:  &working,
		path: path,
		log:  log,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.dirty = false
		m.errMsg = ""
		m.status = "Saved to " + msg.path
		return m, cmdClearStatus()
	case probeDoneMsg:
		m.probing = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Probe failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if !msg.status.Reachable {
			m.status = "Server unreachable on port " + strconv.Itoa(m.cfg.Port)
		} else {
			m.status = fmt.Sprintf("Server up: HTTP %d in %s", msg.status.Code, msg.status.Latency.Round(time.Millisecond))
		}
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch m.currentScreen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenEdit:
			return m.updateEdit(msg)
		}
	}

	if m.currentScreen == screenEdit {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.menu.moveUp()
	case key.Matches(msg, keys.down):
		m.menu.moveDown()
	case key.Matches(msg, keys.enter):
		m.form = newFormModel(m.menu.idx, fieldValue(m.cfg, m.menu.idx))
		m.currentScreen = screenEdit
	case key.Matches(msg, keys.save):
		return m, m.cmdSave()
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(fieldValue(m.cfg, m.menu.idx))
	case key.Matches(msg, keys.probe):
		if m.probing {
			return m, nil
		}
		m.probing = true
		m.status = "Probing server..."
		return m, m.cmdProbe()
	}

	return m, nil
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil
	case key.Matches(msg, keys.enter):
		if !applyField(m.cfg, m.form.field, m.form.value()) {
			// prior value stays in place, exactly like the resolver stages
			m.form.errMsg = "Invalid value, expected " + fieldHint(m.form.field)
			return m, nil
		}
		m.dirty = true
		m.currentScreen = screenMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) View() string {
	title := "DIRCAST SETTINGS — " + m.path
	if m.dirty {
		title += " *"
	}

	var body string
	var hotKeys string
	switch m.currentScreen {
	case screenEdit:
		body = m.form.View()
		hotKeys = "enter: apply │ esc: cancel"
	default:
		body = m.menu.View(m.cfg)
		hotKeys = "enter: edit │ s: save │ c: copy │ p: probe server │ ↑/↓: navigation │ q: quit"
	}

	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("ERROR: "+m.errMsg)
	} else if m.status != "" {
		body += "\n\n" + m.status
	}

	page := renderBanner(m.width) + "\n\n" + renderPage(titleStyle.Render(title), body, hotKeys)
	return appStyle.Render(page)
}

func (m appModel) cmdSave() tea.Cmd {
	cfg := m.cfg
	path := m.path
	return func() tea.Msg {
		return savedMsg{path: path, err: config.Save(cfg, path)}
	}
}

func (m appModel) cmdProbe() tea.Cmd {
	port := m.cfg.Port
	log := m.log
	return func() tea.Msg {
		client, err := adapter.NewStatusClient("localhost:"+strconv.Itoa(port), 0, log)
		if err != nil {
			return probeDoneMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return probeDoneMsg{status: client.Status(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
