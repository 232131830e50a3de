package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncCell forces a single line to exactly width columns (ANSI-aware):
// longer text is cut with a trailing ellipsis, shorter text padded with
// spaces. Every list cell and every overlay line goes through this, which is
// what keeps header and row columns aligned.
func truncCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			s = xansi.Cut(s, 0, 1)
		} else {
			s = xansi.Cut(s, 0, width-1) + glyphEllipsis()
		}
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// normalizePane forces s to exactly width x height (columns x lines). The
// app's final frame and the overlay backdrop are normalized so compositing
// can splice by column offset without measuring each line again.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i := range lines {
		lines[i] = truncCell(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
