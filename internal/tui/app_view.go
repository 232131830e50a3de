package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width < 1 || m.height < 1 {
		return ""
	}

	listPane := normalizePane(m.list.view(), m.listWidth(), m.listHeight())
	frame := lipgloss.NewStyle().
		Border(glyphModalBorder()).
		BorderForeground(colorHeaderFg).
		Padding(0, frameSidePad).
		Render(listPane)

	out := normalizePane(frame+"\n"+m.statusLine(), m.width, m.height)
	if box := m.list.activeOverlay(); box != nil {
		out = compositeOverlay(out, box, m.width, m.height)
	}
	return out
}

// statusLine shows the current flash if one is up, otherwise the key help.
func (m appModel) statusLine() string {
	if m.flashText != "" {
		st := styleMuted()
		if m.flashErr {
			st = lipgloss.NewStyle().Foreground(colorFlashErrorFg).Bold(true)
		}
		return st.Render(truncCell(" "+m.flashText, m.width))
	}
	return styleMuted().Render(truncCell(" "+m.keyHelp(), m.width))
}

func (m appModel) keyHelp() string {
	km := m.keys
	parts := []string{
		km.Down.Help().Key + "/" + km.Up.Help().Key + ": move",
		"enter: open",
		km.Sort.Help().Key + ": sort",
		km.Reload.Help().Key + ": reload",
		km.Quit.Help().Key + ": quit",
	}
	return strings.Join(parts, "   ")
}
