package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// pickerResult reports how the option picker completed.
type pickerResult struct {
	done      bool
	confirmed bool
}

// optionPicker is a multi-select overlay with Cancel and Done buttons.
// Toggles are tentative until Done commits them; Cancel rolls the tentative
// state back to the last committed one. While open it swallows the quit
// keys, so a stray q cannot exit the program mid-selection.
type optionPicker struct {
	title     string
	labels    []string
	live      []bool
	committed []bool
	focus     int // 0..len-1 are option rows, len is Cancel, len+1 is Done
	done      bool
}

// newOptionPicker builds a picker over labels. initial may be nil (every
// option starts off), a single element (broadcast to every option), or one
// element per label; anything else is a configuration error.
func newOptionPicker(title string, labels []string, initial []bool) (*optionPicker, error) {
	states := make([]bool, len(labels))
	switch {
	case initial == nil:
	case len(initial) == 1:
		for i := range states {
			states[i] = initial[0]
		}
	case len(initial) == len(labels):
		copy(states, initial)
	default:
		return nil, errConfig("option picker: %d initial states for %d options", len(initial), len(labels))
	}
	return &optionPicker{
		title:     title,
		labels:    append([]string(nil), labels...),
		live:      states,
		committed: append([]bool(nil), states...),
	}, nil
}

func (p *optionPicker) cancel() pickerResult {
	copy(p.live, p.committed)
	p.done = true
	return pickerResult{done: true}
}

func (p *optionPicker) confirm() pickerResult {
	copy(p.committed, p.live)
	p.done = true
	return pickerResult{done: true, confirmed: true}
}

func (p *optionPicker) handleKey(msg tea.KeyMsg, km keyMap) (pickerResult, bool) {
	if p.done {
		return pickerResult{}, false
	}
	n := len(p.labels)
	switch {
	case key.Matches(msg, km.Quit):
		// Swallowed. Quitting the program from inside the picker would
		// throw away a selection the user is still editing.
		return pickerResult{}, true
	case key.Matches(msg, km.Up):
		if p.focus >= n {
			p.focus = n - 1
		} else if p.focus > 0 {
			p.focus--
		}
		if p.focus < 0 {
			p.focus = 0
		}
		return pickerResult{}, true
	case key.Matches(msg, km.Down):
		if p.focus < n-1 {
			p.focus++
		} else if p.focus == n-1 {
			p.focus = n
		}
		return pickerResult{}, true
	case key.Matches(msg, km.Select):
		if p.focus < n {
			p.live[p.focus] = !p.live[p.focus]
		}
		return pickerResult{}, true
	}
	switch msg.String() {
	case "enter":
		switch {
		case p.focus < n:
			p.live[p.focus] = !p.live[p.focus]
			return pickerResult{}, true
		case p.focus == n:
			return p.cancel(), true
		default:
			return p.confirm(), true
		}
	case "left", "h":
		if p.focus > n {
			p.focus = n
		}
		return pickerResult{}, true
	case "right", "l":
		if p.focus == n {
			p.focus = n + 1
		}
		return pickerResult{}, true
	case "esc", "ctrl+g":
		return p.cancel(), true
	}
	return pickerResult{}, false
}

// selected reports the committed labels, in their original order.
func (p *optionPicker) selected() []string {
	var out []string
	for i, on := range p.committed {
		if on {
			out = append(out, p.labels[i])
		}
	}
	return out
}

// placement centers the picker; width follows the longest label with a
// floor wide enough for the button row.
func (p *optionPicker) placement(hostW, hostH int) rect {
	longest := 0
	for _, l := range p.labels {
		if w := xansi.StringWidth(l); w > longest {
			longest = w
		}
	}
	w := longest + 8
	if w < 26 {
		w = 26
	}
	if w > hostW-2 {
		w = hostW - 2
	}
	h := len(p.labels) + 5
	if h > hostH-2 {
		h = hostH - 2
	}
	return centeredRect(w, h, hostW, hostH)
}

func (p *optionPicker) view(w, h int) string {
	innerW := w - 2
	lines := make([]string, 0, len(p.labels)+2)
	lines = append(lines, surfaceLine("", innerW))
	for i, label := range p.labels {
		marker := "[ ] "
		if p.live[i] {
			marker = "[X] "
		}
		row := " " + marker + label
		if i == p.focus {
			lines = append(lines, focusLine(row, innerW))
		} else {
			lines = append(lines, surfaceLine(row, innerW))
		}
	}

	bg := lipgloss.NewStyle().Background(colorSurfaceBg)
	cancel := renderButton("Cancel", p.focus == len(p.labels))
	done := renderButton("Done", p.focus == len(p.labels)+1)
	pad := innerW - xansi.StringWidth(cancel) - xansi.StringWidth(done) - 2
	if pad < 0 {
		pad = 0
	}
	lines = append(lines, bg.Render(" ")+cancel+bg.Render(strings.Repeat(" ", pad))+done+bg.Render(" "))

	return renderModalBox(w, h, p.title, strings.Join(lines, "\n"))
}
