// Package prefs persists the choices a user makes inside the TUI.
// Preferences are stored in ~/.config/codemarket/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/codemarket/internal/config"
)

// Prefs holds the theme and list filter remembered between sessions.
type Prefs struct {
	Theme  string `toml:"theme"`
	Filter string `toml:"filter"`
}

// List filters understood by the UI.
const (
	FilterAll     = "all"
	FilterForSale = "for_sale"
	FilterSold    = "sold"
)

const (
	defaultPrefsPath = "~/.config/codemarket/prefs.toml"
	defaultTheme     = "Dark+"
	defaultFilter    = FilterAll
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing has been saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Filter: defaultFilter}
}

// Load reads preferences from path. Unreadable or malformed files degrade to
// defaults; Load never fails.
func Load(path string) Prefs {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	var loaded Prefs
	if err := toml.Unmarshal(bytes, &loaded); err != nil {
		return prefs
	}

	if theme := strings.TrimSpace(loaded.Theme); theme != "" {
		prefs.Theme = theme
	}
	if ValidFilter(loaded.Filter) {
		prefs.Filter = loaded.Filter
	}
	return prefs
}

// ValidFilter reports whether name is one of the known list filters.
func ValidFilter(name string) bool {
	switch name {
	case FilterAll, FilterForSale, FilterSold:
		return true
	}
	return false
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
