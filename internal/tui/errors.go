package tui

import "fmt"

// configError reports an invalid column projection or picker construction.
// These fail fast at the call that introduced them and are never coerced.
type configError struct {
	msg string
}

func (e configError) Error() string {
	return "config: " + e.msg
}

func errConfig(format string, args ...any) error {
	return configError{msg: fmt.Sprintf(format, args...)}
}

// overlayActiveError reports a contract violation against the overlay slot:
// opening a second overlay while one is active, or rebinding row data while
// the row's overlay still references it.
type overlayActiveError struct {
	host string
	op   string
}

func (e overlayActiveError) Error() string {
	return fmt.Sprintf("%s: %s while overlay active", e.host, e.op)
}

func errOverlayActive(host, op string) error {
	return overlayActiveError{host: host, op: op}
}
