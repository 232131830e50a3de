package tui

// stripANSIEscapes removes ANSI CSI escape sequences from a string.
// Intentionally minimal: enough to neutralize inner styling before the
// overlay scrim re-colors the backdrop, without another dependency.
func stripANSIEscapes(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != 0x1b { // ESC
			out = append(out, b[i])
			continue
		}
		// CSI: ESC [ ... final byte in 0x40-0x7E.
		if i+1 < len(b) && b[i+1] == '[' {
			i += 2
			for i < len(b) {
				if c := b[i]; c >= 0x40 && c <= 0x7E {
					break
				}
				i++
			}
			continue
		}
		// Unknown ESC sequence: drop just the ESC byte.
	}
	return string(out)
}
