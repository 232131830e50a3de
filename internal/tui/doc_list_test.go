package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"zotui/internal/config"
	"zotui/internal/model"
)

func testLibraryDocs() []model.Document {
	return []model.Document{
		testDoc("Achebe", "Things Fall Apart", "2020"),
		testDoc("Baldwin", "Notes of a Native Son", "2019"),
		testDoc("Carson", "Silent Spring", "2021"),
	}
}

func newTestList(t *testing.T, docs []model.Document) *docList {
	t.Helper()
	l, err := newDocList(docs, nil, nil, true)
	if err != nil {
		t.Fatalf("newDocList: %v", err)
	}
	l.setSize(60, 10)
	return l
}

func yearsOf(l *docList) []string {
	out := make([]string, len(l.docs))
	for i, d := range l.docs {
		out[i], _ = d.Value("year")
	}
	return out
}

func TestDocList_DefaultsToFirstDocumentFields(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	want := []string{"author", "title", "year"}
	if len(l.columns) != len(want) {
		t.Fatalf("expected columns %v, got %v", want, l.columns)
	}
	for i := range want {
		if l.columns[i] != want[i] {
			t.Fatalf("expected columns %v, got %v", want, l.columns)
		}
	}
}

func TestDocList_ViewAlignsHeaderAndRows(t *testing.T) {
	withTestTheme(t)

	l := newTestList(t, testLibraryDocs())
	out := l.view()
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected header, divider and 3 rows, got %q", out)
	}
	if !strings.Contains(lines[0], "author") || !strings.Contains(lines[0], "year") {
		t.Fatalf("expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], glyphHRule()) {
		t.Fatalf("expected divider line, got %q", lines[1])
	}
	// The title column starts at the same offset in header and rows.
	widths := columnWidths(60, l.weights)
	offset := widths[0] + colGap
	if lines[0][offset:offset+5] != "title" {
		t.Fatalf("expected title header at offset %d, got %q", offset, lines[0])
	}
	if lines[2][offset:offset+6] != "Things" {
		t.Fatalf("expected first row title at offset %d, got %q", offset, lines[2])
	}
}

func TestDocList_SortByYearAscending(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	l.move(2)
	if l.focus != 2 {
		t.Fatalf("expected focus 2 before sort, got %d", l.focus)
	}

	l.sortBy([]string{"year"}, true)

	got := yearsOf(l)
	want := []string{"2019", "2020", "2021"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected years %v, got %v", want, got)
		}
	}
	if l.focus != 0 || l.scroll != 0 {
		t.Fatalf("expected focus and scroll reset, got focus=%d scroll=%d", l.focus, l.scroll)
	}
	// Rows were permuted with the documents.
	if l.rows[0].cells[0] != "Baldwin" {
		t.Fatalf("expected row order to follow documents, got %v", l.rows[0].cells)
	}
}

func TestDocList_SortByYearDescending(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	l.sortBy([]string{"year"}, false)
	got := yearsOf(l)
	want := []string{"2021", "2020", "2019"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected years %v, got %v", want, got)
		}
	}
}

func TestDocList_SortIsStableOnEqualKeys(t *testing.T) {
	docs := []model.Document{
		testDoc("Zuboff", "B-title", "2019"),
		testDoc("Arendt", "A-title", "2019"),
		testDoc("Morrison", "C-title", "2018"),
	}
	l := newTestList(t, docs)
	l.sortBy([]string{"year"}, true)

	authors := make([]string, len(l.docs))
	for i, d := range l.docs {
		authors[i], _ = d.Value("author")
	}
	// 2018 first, then the equal 2019 pair in original relative order.
	want := []string{"Morrison", "Zuboff", "Arendt"}
	for i := range want {
		if authors[i] != want[i] {
			t.Fatalf("expected stable order %v, got %v", want, authors)
		}
	}
}

func TestDocList_SortBySecondaryKeyBreaksTies(t *testing.T) {
	docs := []model.Document{
		testDoc("Zuboff", "B-title", "2019"),
		testDoc("Arendt", "A-title", "2019"),
	}
	l := newTestList(t, docs)
	l.sortBy([]string{"year", "title"}, true)

	if title, _ := l.docs[0].Value("title"); title != "A-title" {
		t.Fatalf("expected secondary key to order the tie, got first title %q", title)
	}
}

func TestDocList_SortComparesNumbersNumerically(t *testing.T) {
	if compareValues("9", "10") >= 0 {
		t.Fatalf("expected 9 < 10 numerically")
	}
	if compareValues("Banana", "apple") <= 0 {
		t.Fatalf("expected case-insensitive text order")
	}
	if compareValues("2019", "alpha") == 0 {
		t.Fatalf("expected mixed values to order as text")
	}
}

func TestDocList_EmptySelectionLeavesOrderAlone(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	l.move(1)
	l.sortBy(nil, true)
	got := yearsOf(l)
	want := []string{"2020", "2019", "2021"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order untouched, got %v", got)
		}
	}
	if l.focus != 1 {
		t.Fatalf("expected focus untouched for empty selection, got %d", l.focus)
	}
}

func TestDocList_OpenSortPickerGuardsItsSlot(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	if err := l.openSortPicker(); err != nil {
		t.Fatalf("openSortPicker: %v", err)
	}
	if l.picker == nil {
		t.Fatalf("expected picker set")
	}
	err := l.openSortPicker()
	if err == nil {
		t.Fatalf("expected second picker to be rejected")
	}
	if !strings.Contains(err.Error(), "overlay active") {
		t.Fatalf("expected overlay-active error, got %v", err)
	}
}

func TestDocList_SortViaPickerKeys(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	l := newTestList(t, testLibraryDocs())
	open := recordingOpener(new([]string), nil)

	press := func(msg tea.KeyMsg) (tea.Cmd, bool) {
		t.Helper()
		cmd, consumed, err := l.handleKey(msg, km, open)
		if err != nil {
			t.Fatalf("handleKey(%q): %v", msg.String(), err)
		}
		return cmd, consumed
	}

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if l.picker == nil {
		t.Fatalf("expected sort picker after s")
	}

	// year is the third option: down twice, toggle, then over to Done.
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	cmd, _ := press(tea.KeyMsg{Type: tea.KeyEnter})

	if l.picker != nil {
		t.Fatalf("expected picker closed after Done")
	}
	got := yearsOf(l)
	want := []string{"2019", "2020", "2021"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted years %v, got %v", want, got)
		}
	}
	if cmd == nil {
		t.Fatalf("expected a sort acknowledgement command from Done")
	}
	applied, ok := cmd().(sortAppliedMsg)
	if !ok {
		t.Fatalf("expected sortAppliedMsg, got %T", cmd())
	}
	if len(applied.columns) != 1 || applied.columns[0] != "year" {
		t.Fatalf("expected sorted columns [year], got %v", applied.columns)
	}
}

func TestDocList_CancelledPickerLeavesOrderAlone(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	l := newTestList(t, testLibraryDocs())
	open := recordingOpener(new([]string), nil)

	l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km, open)
	l.handleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km, open)
	l.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, km, open)

	if l.picker != nil {
		t.Fatalf("expected picker closed after cancel")
	}
	got := yearsOf(l)
	want := []string{"2020", "2019", "2021"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order untouched after cancel, got %v", got)
		}
	}
}

func TestDocList_PickerIsFullyModal(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	l := newTestList(t, testLibraryDocs())
	open := recordingOpener(new([]string), nil)

	l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km, open)

	// Quit and reload keys are consumed, never forwarded.
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyRunes, Runes: []rune{'r'}},
		{Type: tea.KeyCtrlC},
	} {
		cmd, consumed, err := l.handleKey(msg, km, open)
		if err != nil {
			t.Fatalf("handleKey(%q): %v", msg.String(), err)
		}
		if !consumed || cmd != nil {
			t.Fatalf("expected %q consumed by open picker, consumed=%v cmd=%v", msg.String(), consumed, cmd)
		}
	}
	if l.picker == nil {
		t.Fatalf("expected picker still open")
	}
	if l.focus != 0 {
		t.Fatalf("expected list focus untouched under picker, got %d", l.focus)
	}
}

func TestDocList_ChooserFlowOpensChosenAttachment(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	var opened []string
	open := recordingOpener(&opened, nil)

	docs := []model.Document{
		testDoc("Achebe", "No attachments", "2020"),
		testDoc("Baldwin", "Three attachments", "2019",
			"/lib/storage/AA/first.pdf", "/lib/storage/BB/second.pdf", "/lib/storage/CC/third.pdf"),
	}
	l := newTestList(t, docs)

	// Focus the second document and activate it.
	l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km, open)
	cmd, consumed, err := l.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, km, open)
	if err != nil || !consumed || cmd != nil {
		t.Fatalf("expected chooser to open silently, cmd=%v consumed=%v err=%v", cmd, consumed, err)
	}
	if l.activeOverlay() == nil {
		t.Fatalf("expected an active overlay")
	}

	// Movement now drives the chooser, not the list.
	l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km, open)
	if l.focus != 1 {
		t.Fatalf("expected list focus pinned while chooser open, got %d", l.focus)
	}

	cmd, consumed, err = l.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, km, open)
	if err != nil || !consumed {
		t.Fatalf("expected chooser enter consumed, err=%v", err)
	}
	if cmd == nil {
		t.Fatalf("expected a launch command from the chosen row")
	}
	cmd()
	if len(opened) != 1 || opened[0] != "/lib/storage/BB/second.pdf" {
		t.Fatalf("expected the second attachment to open, got %v", opened)
	}
	if l.activeOverlay() != nil {
		t.Fatalf("expected overlay cleared after choice")
	}
}

func TestDocList_ChooserDropsUnboundKeysButReleasesQuit(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	open := recordingOpener(new([]string), nil)

	docs := []model.Document{
		testDoc("Baldwin", "Two attachments", "2019", "/p/a.pdf", "/p/b.pdf"),
	}
	l := newTestList(t, docs)
	l.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, km, open)
	if l.activeOverlay() == nil {
		t.Fatalf("expected chooser open")
	}

	// The sort key is dropped: consumed without opening a picker.
	_, consumed, err := l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km, open)
	if err != nil || !consumed {
		t.Fatalf("expected s consumed while chooser open, err=%v", err)
	}
	if l.picker != nil {
		t.Fatalf("expected no picker under an open chooser")
	}

	// Quit alone falls through so the program can exit.
	_, consumed, err = l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km, open)
	if err != nil {
		t.Fatalf("handleKey(q): %v", err)
	}
	if consumed {
		t.Fatalf("expected quit to fall through the chooser")
	}
}

func TestDocList_ResetDataRejectedUnderOverlays(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	open := recordingOpener(new([]string), nil)

	docs := []model.Document{
		testDoc("Baldwin", "Two attachments", "2019", "/p/a.pdf", "/p/b.pdf"),
	}
	l := newTestList(t, docs)

	l.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, km, open)
	err := l.resetData(testLibraryDocs())
	if err == nil || !strings.Contains(err.Error(), "row: reset data") {
		t.Fatalf("expected row overlay rejection, got %v", err)
	}

	// Dismiss the chooser, open the picker, and try again.
	l.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, km, open)
	l.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km, open)
	err = l.resetData(testLibraryDocs())
	if err == nil || !strings.Contains(err.Error(), "list: reset data") {
		t.Fatalf("expected picker rejection, got %v", err)
	}
}

func TestDocList_ResetDataRebindsUnderCurrentProjection(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	if err := l.resetColumns([]string{"year", "author"}, []int{1, 2}); err != nil {
		t.Fatalf("resetColumns: %v", err)
	}
	l.move(2)

	fresh := []model.Document{
		testDoc("Didion", "The White Album", "1979"),
	}
	if err := l.resetData(fresh); err != nil {
		t.Fatalf("resetData: %v", err)
	}
	if len(l.rows) != 1 {
		t.Fatalf("expected one row after rebind, got %d", len(l.rows))
	}
	if l.focus != 0 {
		t.Fatalf("expected focus reset, got %d", l.focus)
	}
	if l.rows[0].cells[0] != "1979" || l.rows[0].cells[1] != "Didion" {
		t.Fatalf("expected the rebind to keep the projection, got %v", l.rows[0].cells)
	}
}

func TestDocList_ResetColumnsPreservesFocus(t *testing.T) {
	l := newTestList(t, testLibraryDocs())
	l.move(2)
	if err := l.resetColumns([]string{"title"}, nil); err != nil {
		t.Fatalf("resetColumns: %v", err)
	}
	if l.focus != 2 {
		t.Fatalf("expected focus preserved, got %d", l.focus)
	}
	if l.rows[1].cells[0] != "Notes of a Native Son" {
		t.Fatalf("expected reprojected row cells, got %v", l.rows[1].cells)
	}
}

func TestDocList_ScrollFollowsFocus(t *testing.T) {
	withTestTheme(t)

	docs := make([]model.Document, 0, 12)
	for _, title := range []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"} {
		docs = append(docs, testDoc("A", title, "2000"))
	}
	l := newTestList(t, docs)
	l.setSize(40, 6) // 4 visible rows under header and divider

	for i := 0; i < 7; i++ {
		l.move(1)
	}
	if l.focus != 7 {
		t.Fatalf("expected focus 7, got %d", l.focus)
	}
	if l.scroll != 4 {
		t.Fatalf("expected scroll to follow focus, got %d", l.scroll)
	}

	out := l.view()
	if !strings.Contains(out, "t7") {
		t.Fatalf("expected focused row visible, got %q", out)
	}
	if strings.Contains(out, "t0 ") {
		t.Fatalf("expected scrolled-off rows hidden, got %q", out)
	}

	l.move(-100)
	if l.focus != 0 || l.scroll != 0 {
		t.Fatalf("expected clamped return to top, got focus=%d scroll=%d", l.focus, l.scroll)
	}
}

func TestDocList_PageMovementUsesVisibleHeight(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	open := recordingOpener(new([]string), nil)

	docs := make([]model.Document, 0, 12)
	for i := 0; i < 12; i++ {
		docs = append(docs, testDoc("A", "t", "2000"))
	}
	l := newTestList(t, docs)
	l.setSize(40, 6)

	l.handleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, km, open)
	if l.focus != 4 {
		t.Fatalf("expected page-down to move a page, got focus=%d", l.focus)
	}
	l.handleKey(tea.KeyMsg{Type: tea.KeyCtrlU}, km, open)
	if l.focus != 0 {
		t.Fatalf("expected page-up back to top, got focus=%d", l.focus)
	}
}

func TestDocList_EmptyListActivateIsHarmless(t *testing.T) {
	km := newKeyMap(config.Default().Keys)
	open := recordingOpener(new([]string), nil)

	l, err := newDocList(nil, []string{"title"}, nil, true)
	if err != nil {
		t.Fatalf("newDocList: %v", err)
	}
	l.setSize(40, 6)

	cmd, consumed, err := l.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, km, open)
	if err != nil || cmd != nil || !consumed {
		t.Fatalf("expected enter on empty list to be a consumed no-op, cmd=%v err=%v", cmd, err)
	}
	l.move(1)
	if l.focus != 0 {
		t.Fatalf("expected focus pinned at 0 for empty list, got %d", l.focus)
	}
}
