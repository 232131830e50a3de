package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// launchClass describes how a handoff to the system opener ended. The
// classes follow the xdg-open exit convention; other launchers collapse
// into launchUnknown when they fail in ways xdg-open would not.
type launchClass int

const (
	launchOK launchClass = iota
	launchHandlerFailed
	launchTargetMissing
	launchNoHandler
	launchUnknown
)

func (c launchClass) message() string {
	switch c {
	case launchOK:
		return ""
	case launchHandlerFailed:
		return "opener reported failure"
	case launchTargetMissing:
		return "attachment file not found"
	case launchNoHandler:
		return "no application available for attachment"
	default:
		return "could not open attachment"
	}
}

// opener launches a file in the platform handler and blocks until the
// handler exits. Injectable so tests can record launches instead of
// spawning real processes.
type opener func(path string) error

func systemOpen(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	// Prevent any output from flashing in the terminal.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

// classifyLaunch maps an opener error onto a launchClass. xdg-open exits
// 1 on usage errors and 4 when the handler itself failed; both read as a
// handler failure to the person at the keyboard. 2 means the file was
// missing, 3 that no handler was registered.
func classifyLaunch(err error) launchClass {
	if err == nil {
		return launchOK
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return launchUnknown
	}
	switch exitErr.ExitCode() {
	case 1, 4:
		return launchHandlerFailed
	case 2:
		return launchTargetMissing
	case 3:
		return launchNoHandler
	default:
		return launchUnknown
	}
}

type attachmentOpenedMsg struct {
	path  string
	class launchClass
	err   error
}

func openPathCmd(open opener, path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return func() tea.Msg {
			return attachmentOpenedMsg{path: path, class: launchUnknown, err: errors.New("empty attachment path")}
		}
	}
	return func() tea.Msg {
		err := open(path)
		return attachmentOpenedMsg{path: path, class: classifyLaunch(err), err: err}
	}
}
