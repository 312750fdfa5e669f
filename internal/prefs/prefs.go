// Package prefs remembers small UI choices between runs: the colour theme and
// where the last placard was saved. The file location comes from config's
// prefs_file and is already absolute.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultTheme is used when no theme has been saved.
const DefaultTheme = "Savanna"

// ErrNoPath is returned by Save when no prefs file is configured.
var ErrNoPath = errors.New("prefs path is empty")

// Prefs is the persisted state.
type Prefs struct {
	Theme         string `toml:"theme"`
	LastExportDir string `toml:"last_export_dir,omitempty"`
}

// Defaults returns the prefs of a first run.
func Defaults() Prefs {
	return Prefs{Theme: DefaultTheme}
}

// Load reads path. A missing file or empty path is a first run. An unreadable
// or invalid file still yields usable defaults, along with an error saying
// why it was ignored.
func Load(path string) (Prefs, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p.normalized(), nil
}

// Save writes p to path through a temp file in the same directory.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoPath
	}
	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	if dir := strings.TrimSpace(p.LastExportDir); dir != "" {
		p.LastExportDir = filepath.Clean(dir)
	} else {
		p.LastExportDir = ""
	}
	return p
}
