package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zotui/internal/model"
)

// sortAppliedMsg reports a confirmed sort so the app can acknowledge it on
// the status line.
type sortAppliedMsg struct {
	columns []string
}

// docList owns the document rows, the shared header, the current column
// projection, and the sort picker overlay. Its overlay slot is distinct
// from the per-row chooser slot; each holds at most one overlay.
type docList struct {
	docs    []model.Document
	rows    []*docRow
	columns []string
	weights []int

	focus  int
	scroll int
	width  int
	height int

	picker    *optionPicker
	ascending bool
}

// newDocList projects docs through the given columns. columns nil means the
// record set's natural field order; weights nil means uniform weighting.
func newDocList(docs []model.Document, columns []string, weights []int, ascending bool) (*docList, error) {
	l := &docList{ascending: ascending}
	if err := l.rebuild(docs, columns, weights); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *docList) rebuild(docs []model.Document, columns []string, weights []int) error {
	cols := columns
	if cols == nil && len(docs) > 0 {
		cols = docs[0].Fields()
	}
	ws := weights
	if ws == nil {
		ws = uniformWeights(len(cols))
	}
	if err := validateProjection(cols, ws); err != nil {
		return err
	}

	rows := make([]*docRow, len(docs))
	for i, d := range docs {
		r, err := newDocRow(d, cols, ws)
		if err != nil {
			return err
		}
		rows[i] = r
	}

	l.docs = append([]model.Document(nil), docs...)
	l.rows = rows
	l.columns = append([]string(nil), cols...)
	l.weights = append([]int(nil), ws...)
	l.focus = 0
	l.scroll = 0
	return nil
}

func (l *docList) setSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// resetColumns swaps the projection on the header and every row. Focus and
// any open overlay survive; this is a rendering-only change.
func (l *docList) resetColumns(columns []string, weights []int) error {
	cols := columns
	if cols == nil && len(l.docs) > 0 {
		cols = l.docs[0].Fields()
	}
	ws := weights
	if ws == nil {
		ws = uniformWeights(len(cols))
	}
	if err := validateProjection(cols, ws); err != nil {
		return err
	}
	for _, r := range l.rows {
		if err := r.resetColumns(cols, ws); err != nil {
			return err
		}
	}
	l.columns = append([]string(nil), cols...)
	l.weights = append([]int(nil), ws...)
	return nil
}

// resetData discards every row and rebuilds from docs under the current
// projection; focus returns to the first row. Rebinding under an open
// overlay is a contract violation and fails fast.
func (l *docList) resetData(docs []model.Document) error {
	if l.picker != nil {
		return errOverlayActive("list", "reset data")
	}
	for _, r := range l.rows {
		if r.overlay != nil {
			return errOverlayActive("row", "reset data")
		}
	}
	return l.rebuild(docs, l.columns, l.weights)
}

// sortBy stably reorders documents by the given column keys; records with
// equal keys keep their original relative order. Rows are reordered, not
// reconstructed. An empty column set is a deliberate no-reorder outcome.
func (l *docList) sortBy(columns []string, ascending bool) {
	if len(columns) == 0 || len(l.docs) < 2 {
		if len(columns) > 0 {
			l.focus = 0
			l.scroll = 0
		}
		return
	}

	idx := make([]int, len(l.docs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		c := compareDocs(l.docs[idx[a]], l.docs[idx[b]], columns)
		if ascending {
			return c < 0
		}
		return c > 0
	})

	docs := make([]model.Document, len(l.docs))
	rows := make([]*docRow, len(l.rows))
	for i, j := range idx {
		docs[i] = l.docs[j]
		rows[i] = l.rows[j]
	}
	l.docs = docs
	l.rows = rows
	l.focus = 0
	l.scroll = 0
}

func compareDocs(a, b model.Document, columns []string) int {
	for _, col := range columns {
		av, _ := a.Value(col)
		bv, _ := b.Value(col)
		if c := compareValues(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// compareValues orders numerically when both sides parse as integers (years,
// counts), otherwise case-insensitively as text.
func compareValues(a, b string) int {
	ai, aerr := strconv.Atoi(strings.TrimSpace(a))
	bi, berr := strconv.Atoi(strings.TrimSpace(b))
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	al, bl := strings.ToLower(a), strings.ToLower(b)
	switch {
	case al < bl:
		return -1
	case al > bl:
		return 1
	}
	return 0
}

// openSortPicker raises the sort picker seeded with the current column
// names, every option initially off.
func (l *docList) openSortPicker() error {
	if l.picker != nil {
		return errOverlayActive("list", "open sort picker")
	}
	p, err := newOptionPicker("Sort by", l.columns, nil)
	if err != nil {
		return err
	}
	l.picker = p
	return nil
}

func (l *docList) focusedRow() *docRow {
	if l.focus < 0 || l.focus >= len(l.rows) {
		return nil
	}
	return l.rows[l.focus]
}

// activeOverlay reports the overlay to composite, if any. The sort picker
// wins over a row chooser; in practice only one can be open since overlay
// input routing keeps the other from ever being triggered.
func (l *docList) activeOverlay() overlayBox {
	if l.picker != nil {
		return l.picker
	}
	if row := l.focusedRow(); row != nil && row.overlay != nil {
		return row.overlay
	}
	return nil
}

// handleKey routes one key press. Overlays get the key first; while one is
// open no key reaches the list underneath, though quit still falls through
// from the chooser (only the picker suppresses exit). The returned command
// carries any spawn triggered by the key.
func (l *docList) handleKey(msg tea.KeyMsg, km keyMap, open opener) (tea.Cmd, bool, error) {
	if l.picker != nil {
		res, _ := l.picker.handleKey(msg, km)
		if res.done {
			var cmd tea.Cmd
			if res.confirmed {
				if sel := l.picker.selected(); len(sel) > 0 {
					l.sortBy(sel, l.ascending)
					cmd = func() tea.Msg { return sortAppliedMsg{columns: sel} }
				}
			}
			l.picker = nil
			return cmd, true, nil
		}
		// The picker is fully modal: keys it does not handle are dropped,
		// never forwarded to the list or the app commands underneath.
		return nil, true, nil
	}

	if row := l.focusedRow(); row != nil && row.overlay != nil {
		res, consumed := row.overlay.handleKey(msg, km)
		if res.done {
			row.overlay = nil
			if res.path != "" {
				return openPathCmd(open, res.path), true, nil
			}
		}
		if consumed {
			return nil, true, nil
		}
		if key.Matches(msg, km.Quit) {
			return nil, false, nil
		}
		return nil, true, nil
	}

	switch {
	case key.Matches(msg, km.Up):
		l.move(-1)
		return nil, true, nil
	case key.Matches(msg, km.Down):
		l.move(1)
		return nil, true, nil
	case key.Matches(msg, km.PageUp):
		l.move(-l.visibleRows())
		return nil, true, nil
	case key.Matches(msg, km.PageDown):
		l.move(l.visibleRows())
		return nil, true, nil
	case key.Matches(msg, km.Sort):
		return nil, true, l.openSortPicker()
	}

	if msg.String() == "enter" {
		row := l.focusedRow()
		if row == nil {
			return nil, true, nil
		}
		cmd, err := row.handleEnter(open)
		return cmd, true, err
	}

	return nil, false, nil
}

func (l *docList) move(delta int) {
	if len(l.rows) == 0 {
		return
	}
	l.focus += delta
	if l.focus < 0 {
		l.focus = 0
	}
	if l.focus >= len(l.rows) {
		l.focus = len(l.rows) - 1
	}
	l.clampScroll()
}

func (l *docList) visibleRows() int {
	v := l.height - 2 // header and divider
	if v < 1 {
		v = 1
	}
	return v
}

func (l *docList) clampScroll() {
	vis := l.visibleRows()
	if l.focus < l.scroll {
		l.scroll = l.focus
	}
	if l.focus >= l.scroll+vis {
		l.scroll = l.focus - vis + 1
	}
	maxScroll := len(l.rows) - vis
	if maxScroll < 0 {
		maxScroll = 0
	}
	if l.scroll > maxScroll {
		l.scroll = maxScroll
	}
	if l.scroll < 0 {
		l.scroll = 0
	}
}

// view renders the header, divider and visible rows at the list's size.
// The header shares the rows' column widths, which keeps them aligned for
// any weight configuration.
func (l *docList) view() string {
	if l.width < 1 {
		return ""
	}

	widths := columnWidths(l.width, l.weights)
	header := lipgloss.NewStyle().
		Foreground(colorHeaderFg).
		Bold(true).
		Render(joinCells(l.columns, widths))
	divider := styleMuted().Render(strings.Repeat(glyphHRule(), l.width))

	lines := make([]string, 0, l.height)
	lines = append(lines, header, divider)
	vis := l.visibleRows()
	for i := l.scroll; i < len(l.rows) && i < l.scroll+vis; i++ {
		lines = append(lines, l.rows[i].render(l.width, i == l.focus))
	}
	return strings.Join(lines, "\n")
}
