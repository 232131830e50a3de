package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"zotui/internal/model"
)

// Config is the whole zotui configuration file.
type Config struct {
	List ListConfig `toml:"list"`
	Keys KeyConfig  `toml:"keys"`
}

// ListConfig controls the document list's column projection and sort
// direction.
type ListConfig struct {
	// Columns is the ordered projection. Empty means "all fields of the
	// record set except the attachment path field, in natural order".
	Columns []string `toml:"columns"`
	// Weights are the relative column widths. Empty means uniform widths.
	// When set, the length must match Columns.
	Weights []int `toml:"weights"`
	// Ascending is the direction applied when the sort picker confirms.
	Ascending bool `toml:"ascending"`
}

// KeyConfig maps logical commands to keys. Enter, the arrow keys, page
// up/down and ctrl+c stay hard-wired alongside these.
type KeyConfig struct {
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	PageUp   string `toml:"page_up"`
	PageDown string `toml:"page_down"`
	Select   string `toml:"select"`
	Quit     string `toml:"quit"`
	Sort     string `toml:"sort"`
	Reload   string `toml:"reload"`
}

// Default returns the documented defaults: the classic five-column
// projection with uniform widths and vi-style movement keys.
func Default() Config {
	return Config{
		List: ListConfig{
			Columns:   []string{"author", "title", "publication title", "year", "time added"},
			Weights:   nil,
			Ascending: true,
		},
		Keys: KeyConfig{
			Up:       "k",
			Down:     "j",
			PageUp:   "ctrl+u",
			PageDown: "ctrl+d",
			Select:   " ",
			Quit:     "q",
			Sort:     "s",
			Reload:   "r",
		},
	}
}

// DefaultPath returns the conventional config file location
// (<user config dir>/zotui/config.toml).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zotui", "config.toml")
}

// Load reads a TOML config file over the given defaults. A missing or empty
// file yields the defaults unchanged. The merged result is validated; an
// invalid configuration is an error here, before anything renders.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, cfg.Validate()
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, col := range c.List.Columns {
		if strings.TrimSpace(col) == "" {
			return errors.New("list.columns: empty column name")
		}
		if col == model.AttachmentField {
			return fmt.Errorf("list.columns: %q is a control field and cannot be displayed", model.AttachmentField)
		}
	}
	if len(c.List.Weights) > 0 {
		if len(c.List.Weights) != len(c.List.Columns) {
			return fmt.Errorf("list.weights: got %d weights for %d columns", len(c.List.Weights), len(c.List.Columns))
		}
		for i, w := range c.List.Weights {
			if w <= 0 {
				return fmt.Errorf("list.weights[%d]: weight must be positive, got %d", i, w)
			}
		}
	}

	bindings := map[string]string{
		"up":        c.Keys.Up,
		"down":      c.Keys.Down,
		"page_up":   c.Keys.PageUp,
		"page_down": c.Keys.PageDown,
		"select":    c.Keys.Select,
		"quit":      c.Keys.Quit,
		"sort":      c.Keys.Sort,
		"reload":    c.Keys.Reload,
	}
	seen := map[string]string{}
	for _, name := range []string{"up", "down", "page_up", "page_down", "select", "quit", "sort", "reload"} {
		key := bindings[name]
		if key == "" {
			return fmt.Errorf("keys.%s: a key is required", name)
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("keys.%s: key %q already bound to %s", name, key, prev)
		}
		seen[key] = name
	}
	return nil
}
