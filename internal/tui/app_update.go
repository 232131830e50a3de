package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zotui/internal/model"
)

type flashClearMsg struct {
	seq int
}

type reloadedMsg struct {
	docs []model.Document
	err  error
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.setSize(m.listWidth(), m.listHeight())
		m.seenWindowSize = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case attachmentOpenedMsg:
		if msg.class == launchOK {
			m.logger.Debug("opened attachment", "path", msg.path)
			return m, nil
		}
		m.logger.Warn("attachment open failed", "path", msg.path, "err", msg.err)
		return m.showFlash(msg.class.message()+": "+filepath.Base(msg.path), true)

	case sortAppliedMsg:
		m.logger.Debug("sorted documents", "columns", strings.Join(msg.columns, ","))
		return m.showFlash("sorted by "+strings.Join(msg.columns, ", "), false)

	case reloadedMsg:
		if msg.err != nil {
			m.logger.Error("reload failed", "err", msg.err)
			return m.showFlash("reload failed: "+msg.err.Error(), true)
		}
		if err := m.list.resetData(msg.docs); err != nil {
			// An overlay opened between the reload request and its result.
			m.logger.Error("reload rejected", "err", err)
			return m.showFlash(err.Error(), true)
		}
		return m.showFlash(fmt.Sprintf("reloaded %d documents", len(msg.docs)), false)

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
			m.flashErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey gives the list (and through it any open overlay) first claim on
// the key; only unconsumed keys reach the app-level quit and reload
// commands. Contract violations surfaced by the list are reported on the
// status line, never fatal to the session.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", "key", msg.String())
	cmd, consumed, err := m.list.handleKey(msg, m.keys, m.open)
	if err != nil {
		m.logger.Error("input rejected", "key", msg.String(), "err", err)
		return m.showFlash(err.Error(), true)
	}
	if consumed {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()
	}
	return m, nil
}

func (m appModel) showFlash(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.flashText = text
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}

func (m appModel) reloadCmd() tea.Cmd {
	if m.lib == nil {
		return nil
	}
	lib := m.lib
	return func() tea.Msg {
		docs, err := lib.Documents(context.Background())
		return reloadedMsg{docs: docs, err: err}
	}
}
