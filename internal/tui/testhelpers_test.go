package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"zotui/internal/model"
)

// withTestTheme pins rendering to plain text (no ANSI) and unicode glyphs so
// string assertions are stable regardless of the terminal running the tests.
func withTestTheme(t *testing.T) {
	t.Helper()
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	oldGlyphs := glyphs()
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
		setGlyphs(oldGlyphs)
	})
	lipgloss.SetColorProfile(termenv.Ascii)
	lipgloss.SetHasDarkBackground(true)
	setGlyphs(glyphSetUnicode)
}

// withANSI256 switches rendering to 256-color output for tests that assert
// on the emitted escape codes.
func withANSI256(t *testing.T, darkBG bool) {
	t.Helper()
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
	})
	lipgloss.SetColorProfile(termenv.ANSI256)
	lipgloss.SetHasDarkBackground(darkBG)
}

// testDoc builds a document over the classic projection with the given
// author/title/year and attachment paths.
func testDoc(author, title, year string, attachments ...string) model.Document {
	d := model.NewDocument(
		[]string{"author", "title", "year"},
		[]string{author, title, year},
	)
	if len(attachments) > 0 {
		d = d.WithAttachments(attachments)
	}
	return d
}

// recordingOpener returns an opener that appends every launched path to the
// slice behind dst and reports err.
func recordingOpener(dst *[]string, err error) opener {
	return func(path string) error {
		*dst = append(*dst, path)
		return err
	}
}
