package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const chooserTitle = "Multiple attachments found. Select one to open."

// chooserResult reports how the attachment chooser completed. done with an
// empty path means the chooser was dismissed without opening anything.
type chooserResult struct {
	done bool
	path string
}

// chooserOverlay lets the user pick one of a document's attachments. Rows
// show base filenames but resolve to the stored full paths. The overlay
// completes exactly once; after that it goes inert and the host drops it.
type chooserOverlay struct {
	paths []string
	focus int // 0..len(paths)-1 are attachment rows, len(paths) is Cancel
	done  bool
}

func newChooserOverlay(paths []string) *chooserOverlay {
	ps := make([]string, len(paths))
	copy(ps, paths)
	return &chooserOverlay{paths: ps}
}

// handleKey consumes navigation and activation keys. Quit keys fall through
// unconsumed so the chooser never traps an exit.
func (c *chooserOverlay) handleKey(msg tea.KeyMsg, km keyMap) (chooserResult, bool) {
	if c.done {
		return chooserResult{}, false
	}
	switch {
	case key.Matches(msg, km.Up):
		if c.focus > 0 {
			c.focus--
		}
		return chooserResult{}, true
	case key.Matches(msg, km.Down):
		if c.focus < len(c.paths) {
			c.focus++
		}
		return chooserResult{}, true
	case key.Matches(msg, km.PageUp):
		c.focus = 0
		return chooserResult{}, true
	case key.Matches(msg, km.PageDown):
		c.focus = len(c.paths)
		return chooserResult{}, true
	}
	switch msg.String() {
	case "enter":
		c.done = true
		if c.focus < len(c.paths) {
			return chooserResult{done: true, path: c.paths[c.focus]}, true
		}
		return chooserResult{done: true}, true
	case "esc", "ctrl+g":
		c.done = true
		return chooserResult{done: true}, true
	}
	return chooserResult{}, false
}

// placement centers the chooser; width follows the longest filename with the
// title as the floor, height follows the attachment count.
func (c *chooserOverlay) placement(hostW, hostH int) rect {
	longest := 0
	for _, p := range c.paths {
		if w := xansi.StringWidth(filepath.Base(p)); w > longest {
			longest = w
		}
	}
	w := xansi.StringWidth(chooserTitle) + 4
	if lw := longest + 10; lw > w {
		w = lw
	}
	if w > hostW-2 {
		w = hostW - 2
	}
	h := len(c.paths) + 5
	if h > hostH-2 {
		h = hostH - 2
	}
	return centeredRect(w, h, hostW, hostH)
}

func (c *chooserOverlay) view(w, h int) string {
	innerW := w - 2
	lines := make([]string, 0, len(c.paths)+2)
	lines = append(lines, surfaceLine("", innerW))
	for i, p := range c.paths {
		label := "    " + glyphAttachment() + " " + filepath.Base(p)
		if i == c.focus {
			lines = append(lines, focusLine(label, innerW))
		} else {
			lines = append(lines, surfaceLine(label, innerW))
		}
	}
	cancel := renderButton("Cancel", c.focus == len(c.paths))
	lines = append(lines, lipgloss.PlaceHorizontal(
		innerW, lipgloss.Right, cancel,
		lipgloss.WithWhitespaceBackground(colorSurfaceBg),
	))
	return renderModalBox(w, h, chooserTitle, strings.Join(lines, "\n"))
}
