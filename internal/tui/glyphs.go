package tui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// A terminal app can't pick the user's font, only the glyphs it asks the font
// to draw. The Unicode set uses the corner marker and box-drawing rule; the
// ASCII set is for terminals/fonts that render those badly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ZOTUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphAttachment marks an attachment row in the chooser.
func glyphAttachment() string {
	if glyphs() == glyphSetASCII {
		return "L"
	}
	return "⌞"
}

// glyphHRule is the header/list divider character.
func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "═"
}

// glyphEllipsis terminates truncated cells.
func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "…"
}

// glyphModalBorder is the frame drawn around overlays.
func glyphModalBorder() lipgloss.Border {
	if glyphs() == glyphSetASCII {
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.RoundedBorder()
}
