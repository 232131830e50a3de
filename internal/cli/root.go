package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"zotui/internal/config"
	"zotui/internal/store"
	"zotui/internal/tui"
)

// App carries the flag state shared by every command.
type App struct {
	ConfigPath string
	DebugLog   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "zotui PATH",
		Short:        "Terminal browser for a Zotero library",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the default Zotero data folder
  zotui ~/Zotero

  # Point directly at a database file
  zotui ~/Zotero/zotero.sqlite

  # List the columns this library can display
  zotui columns ~/Zotero
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("ZOTUI_CONFIG", ""), "Path to the config file (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("ZOTUI_DEBUG_LOG", ""), "Append debug logs to this file")

	cmd.AddCommand(newColumnsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App, path string) error {
	logger, closeLog, err := newLogger(app.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}

	lib, err := store.Open(path)
	if err != nil {
		return err
	}
	defer lib.Close()

	docs, err := lib.Documents(context.Background())
	if err != nil {
		return err
	}
	logger.Info("library opened", "path", lib.Path(), "documents", len(docs))

	return tui.Run(lib, docs, cfg, logger)
}

// loadConfig merges the config file over the defaults. A missing file is
// fine at the conventional location but an error when the user pointed at
// one explicitly.
func loadConfig(app *App) (config.Config, error) {
	path := strings.TrimSpace(app.ConfigPath)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		return config.Load(path, config.Default())
	}
	return config.Load(config.DefaultPath(), config.Default())
}

// newLogger builds the session logger. Without --debug-log everything is
// discarded: the TUI owns the terminal, and stray writes to stderr would
// tear the frame.
func newLogger(path string) (*charmLog.Logger, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return charmLog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	// Logfmt keeps the file parseable; styled output belongs to terminals.
	logger := charmLog.NewWithOptions(f, charmLog.Options{
		Level:           charmLog.DebugLevel,
		Prefix:          "zotui",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
	return logger, func() { _ = f.Close() }, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
