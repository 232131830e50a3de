package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	charmLog "github.com/charmbracelet/log"

	"zotui/internal/config"
	"zotui/internal/model"
	"zotui/internal/store"
)

// Run starts the interactive browser over an already-opened library. docs is
// the initial record set; the reload command re-queries lib for a fresh one.
func Run(lib *store.Library, docs []model.Document, cfg config.Config, logger *charmLog.Logger) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m, err := newAppModel(lib, docs, cfg, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
