package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rect is a placement in host cells, x/y being the top-left corner.
type rect struct {
	x, y, w, h int
}

// overlayBox is a modal surface composited over a host pane. A host holds
// at most one overlayBox at a time; opening a second is a contract failure
// surfaced by the host, not here.
type overlayBox interface {
	// placement reports where the box sits for the given host size.
	placement(hostW, hostH int) rect
	// view renders the box at exactly w x h cells.
	view(w, h int) string
}

// centeredRect clamps w x h to the host and centers the result.
func centeredRect(w, h, hostW, hostH int) rect {
	if w > hostW {
		w = hostW
	}
	if h > hostH {
		h = hostH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return rect{x: (hostW - w) / 2, y: (hostH - h) / 2, w: w, h: h}
}

// dimBackground pushes a pane visually behind a modal. Inner ANSI styling is
// stripped first so bright content cannot override the scrim.
func dimBackground(s string) string {
	scrim := lipgloss.NewStyle().Foreground(colorScrimFg)
	lines := strings.Split(stripANSIEscapes(s), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = scrim.Render(line)
	}
	return strings.Join(lines, "\n")
}

// compositeOverlay draws box over base. The base pane is dimmed and squared
// to the host size, then the box view is spliced into each covered line.
func compositeOverlay(base string, box overlayBox, hostW, hostH int) string {
	if hostW < 1 || hostH < 1 {
		return base
	}
	back := normalizePane(dimBackground(base), hostW, hostH)
	r := box.placement(hostW, hostH)
	if r.w > hostW {
		r.w = hostW
	}
	if r.h > hostH {
		r.h = hostH
	}
	if r.x < 0 {
		r.x = 0
	}
	if r.y < 0 {
		r.y = 0
	}
	if r.x+r.w > hostW {
		r.x = hostW - r.w
	}
	if r.y+r.h > hostH {
		r.y = hostH - r.h
	}

	bLines := strings.Split(back, "\n")
	oLines := strings.Split(normalizePane(box.view(r.w, r.h), r.w, r.h), "\n")
	for i, line := range oLines {
		row := r.y + i
		if row < 0 || row >= len(bLines) {
			continue
		}
		left := ""
		if r.x > 0 {
			left = xansi.Cut(bLines[row], 0, r.x) + "\x1b[0m"
		}
		right := ""
		if r.x+r.w < hostW {
			right = xansi.Cut(bLines[row], r.x+r.w, hostW)
		}
		bLines[row] = left + line + right
	}
	return strings.Join(bLines, "\n")
}
