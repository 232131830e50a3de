package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zotui/internal/model"
)

// docRow is one document rendered as a horizontal run of weighted text
// columns. The row owns the chooser overlay opened from it, if any.
type docRow struct {
	doc     model.Document
	columns []string
	weights []int
	cells   []string
	overlay *chooserOverlay
}

// newDocRow binds a row to doc. columns nil means every field of the
// document in natural order; weights nil means uniform weighting.
func newDocRow(doc model.Document, columns []string, weights []int) (*docRow, error) {
	r := &docRow{doc: doc}
	if err := r.resetColumns(columns, weights); err != nil {
		return nil, err
	}
	return r, nil
}

// resetColumns swaps the displayed projection without touching the bound
// document. Rendering-only: the overlay slot survives a projection change.
func (r *docRow) resetColumns(columns []string, weights []int) error {
	cols := columns
	if cols == nil {
		cols = r.doc.Fields()
	}
	ws := weights
	if ws == nil {
		ws = uniformWeights(len(cols))
	}
	if err := validateProjection(cols, ws); err != nil {
		return err
	}

	r.columns = append([]string(nil), cols...)
	r.weights = append([]int(nil), ws...)
	cells := make([]string, len(cols))
	for i, c := range cols {
		v, _ := r.doc.Value(c)
		cells[i] = v
	}
	r.cells = cells
	return nil
}

// resetData rebinds the row to a new document under the current projection.
// Rebinding while the chooser still references the old attachment list is a
// contract violation and fails fast.
func (r *docRow) resetData(doc model.Document) error {
	if r.overlay != nil {
		return errOverlayActive("row", "reset data")
	}
	r.doc = doc
	return r.resetColumns(r.columns, r.weights)
}

// handleEnter dispatches the row's activate action on the attachment shape,
// resolved at trigger time so a rebound document always reflects the newest
// attachment field. No attachments is a consumed no-op; a single one is
// handed straight to open; several hand the choice to a chooser overlay.
func (r *docRow) handleEnter(open opener) (tea.Cmd, error) {
	paths := r.doc.Attachments()
	switch resolveAttachments(paths) {
	case attachNone:
		return nil, nil
	case attachSingle:
		return openPathCmd(open, paths[0]), nil
	default:
		if r.overlay != nil {
			return nil, errOverlayActive("row", "open chooser")
		}
		r.overlay = newChooserOverlay(paths)
		return nil, nil
	}
}

func (r *docRow) render(width int, focused bool) string {
	line := joinCells(r.cells, columnWidths(width, r.weights))
	if focused {
		return lipgloss.NewStyle().
			Background(colorSelectedBg).
			Foreground(colorSelectedFg).
			Bold(true).
			Render(line)
	}
	return lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(line)
}
