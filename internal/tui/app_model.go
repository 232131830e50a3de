package tui

import (
	"io"

	charmLog "github.com/charmbracelet/log"

	"zotui/internal/config"
	"zotui/internal/model"
	"zotui/internal/store"
)

type appModel struct {
	lib    *store.Library
	cfg    config.Config
	keys   keyMap
	list   *docList
	open   opener
	logger *charmLog.Logger

	width  int
	height int
	// We treat the very first WindowSizeMsg as initial sizing rather than a
	// user-driven resize.
	seenWindowSize bool

	// Transient status line under the list frame (launch failures, sort and
	// reload feedback). Cleared by a seq-guarded tick so a newer flash is
	// never wiped by an older timer.
	flashText string
	flashErr  bool
	flashSeq  int

	quitting bool
}

func newAppModel(lib *store.Library, docs []model.Document, cfg config.Config, logger *charmLog.Logger) (appModel, error) {
	if logger == nil {
		logger = charmLog.New(io.Discard)
	}

	cols := cfg.List.Columns
	if len(cols) == 0 {
		cols = nil
	}
	weights := cfg.List.Weights
	if len(weights) == 0 {
		weights = nil
	}

	list, err := newDocList(docs, cols, weights, cfg.List.Ascending)
	if err != nil {
		return appModel{}, err
	}

	return appModel{
		lib:    lib,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		list:   list,
		open:   systemOpen,
		logger: logger,
	}, nil
}

// The outer frame mirrors the classic layout: a border around the list with
// two cells of side padding, and one status line below the frame.
const (
	frameSidePad  = 2
	frameBorderW  = 1
	statusLineH   = 1
	minListWidth  = 1
	minListHeight = 1
)

func (m appModel) listWidth() int {
	w := m.width - 2*frameBorderW - 2*frameSidePad
	if w < minListWidth {
		w = minListWidth
	}
	return w
}

func (m appModel) listHeight() int {
	h := m.height - 2*frameBorderW - statusLineH
	if h < minListHeight {
		h = minListHeight
	}
	return h
}
