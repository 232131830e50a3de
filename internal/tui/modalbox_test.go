package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderModalBox_UsesLightBackground_WhenThemeForcedLight(t *testing.T) {
	withANSI256(t, true)

	t.Setenv("ZOTUI_THEME", "light")
	t.Setenv("ZOTUI_DARKBG", "")
	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected HasDarkBackground=false after forcing light theme")
	}

	out := renderModalBox(60, 8, "Title", "Body")

	// With a forced light theme, we expect the light background variant to be
	// used. colorSurfaceBg is 255 on light terminals.
	if !strings.Contains(out, "48;5;255") {
		t.Fatalf("expected modal to include light background (48;5;255); got: %q", out)
	}
}

func TestRenderModalBox_UsesDarkBackground_WhenThemeForcedDark(t *testing.T) {
	withANSI256(t, false)

	t.Setenv("ZOTUI_THEME", "dark")
	applyThemePreference()
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected HasDarkBackground=true after forcing dark theme")
	}

	out := renderModalBox(60, 8, "Title", "Body")
	if !strings.Contains(out, "48;5;235") {
		t.Fatalf("expected modal to include dark background (48;5;235); got: %q", out)
	}
}

func TestRenderModalBox_ExactSizeAndBorder(t *testing.T) {
	withTestTheme(t)

	out := renderModalBox(20, 6, "Pick", "a\nb")
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := xansi.StringWidth(line); w != 20 {
			t.Fatalf("expected line %d at width 20, got %d (%q)", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasSuffix(lines[0], "╮") {
		t.Fatalf("expected rounded border corners, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Pick") {
		t.Fatalf("expected title on the first inner line, got %q", lines[1])
	}
}

func TestRenderModalBox_EnforcesMinimumSize(t *testing.T) {
	withTestTheme(t)

	out := renderModalBox(1, 1, "T", "")
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected minimum 3 lines, got %d", len(lines))
	}
	if w := xansi.StringWidth(lines[0]); w < 4 {
		t.Fatalf("expected minimum width 4, got %d", w)
	}
}

func TestRenderButton_ActiveAndIdleKeepLabelWidth(t *testing.T) {
	withTestTheme(t)

	idle := renderButton("Done", false)
	active := renderButton("Done", true)
	if xansi.StringWidth(idle) != xansi.StringWidth(active) {
		t.Fatalf("expected equal button widths, got %d vs %d", xansi.StringWidth(idle), xansi.StringWidth(active))
	}
	if !strings.Contains(idle, "Done") {
		t.Fatalf("expected label in button, got %q", idle)
	}
}

func TestSurfaceAndFocusLines_RenderAtExactWidth(t *testing.T) {
	withTestTheme(t)

	if w := xansi.StringWidth(surfaceLine("abc", 10)); w != 10 {
		t.Fatalf("expected surface line width 10, got %d", w)
	}
	if w := xansi.StringWidth(focusLine("abc", 10)); w != 10 {
		t.Fatalf("expected focus line width 10, got %d", w)
	}
}
