package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderModalBox draws a bordered, titled surface at exactly w x h cells.
// The body is expected to arrive as pre-styled lines already sized to the
// inner width; normalizePane is only a safety net against overflow.
func renderModalBox(w, h int, title, body string) string {
	if w < 4 {
		w = 4
	}
	if h < 3 {
		h = 3
	}
	innerW := w - 2
	innerH := h - 2

	titleLine := lipgloss.NewStyle().
		Background(colorSurfaceBg).
		Foreground(colorModalTitle).
		Bold(true).
		Render(truncCell(" "+title, innerW))

	inner := normalizePane(titleLine+"\n"+body, innerW, innerH)
	return lipgloss.NewStyle().
		Border(glyphModalBorder()).
		BorderForeground(colorModalBorder).
		Render(inner)
}

// surfaceLine styles one plain overlay line at exactly width cells on the
// modal surface.
func surfaceLine(s string, width int) string {
	return lipgloss.NewStyle().
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Render(truncCell(s, width))
}

// focusLine is surfaceLine with the focused-row highlight.
func focusLine(s string, width int) string {
	return lipgloss.NewStyle().
		Background(colorSelectedBg).
		Foreground(colorSelectedFg).
		Bold(true).
		Render(truncCell(s, width))
}

// renderButton draws a modal button. Buttons stay borderless: some terminals
// show background artifacts when nesting bordered components inside a modal
// with a background color.
func renderButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	return st.Render(label)
}
