package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The list must stay readable on both light and dark terminal backgrounds, so
// every color is a lipgloss.AdaptiveColor and "faint" styling is reserved for
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Semantic colors shared across the TUI.
var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	// Focused row highlight, kept high-contrast against the surface.
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	colorHeaderFg lipgloss.TerminalColor = ac("236", "250")

	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue

	// Modal chrome.
	colorSurfaceBg   lipgloss.TerminalColor = ac("255", "235")
	colorControlBg   lipgloss.TerminalColor = ac("252", "238")
	colorModalBorder lipgloss.TerminalColor = ac("240", "245")
	colorModalTitle  lipgloss.TerminalColor = ac("124", "203") // the chooser's red title

	// Flash line for launch errors and sort/reload feedback.
	colorFlashErrorFg lipgloss.TerminalColor = ac("160", "203")

	// Scrim applied to the backdrop while an overlay is up.
	colorScrimFg lipgloss.TerminalColor = ac("247", "241")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. termenv.EnvColorProfile also honors CLICOLOR, which is the
// right call for plain CLI output but can silently strip a TUI of color; here
// only NO_COLOR is honored, then the terminal's own capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they advertise more than probing detected;
	// some terminals under-report and end up with washed-out grays.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection. Terminals
// don't reliably report their background, and a wrong guess flips every
// AdaptiveColor to the wrong variant.
//
// Priority:
//  1. ZOTUI_THEME=light|dark|auto
//  2. ZOTUI_DARKBG=true|false
//  3. COLORFGBG heuristic ("fg;bg", e.g. "15;0" means a dark background)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("ZOTUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fall through to heuristics
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("ZOTUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			// Common xterm palette: 0-6 are dark, 7-15 light.
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}
