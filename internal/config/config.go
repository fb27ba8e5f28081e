// Package config handles memokit configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// AppName is the directory name used under the user's config dir.
const AppName = "memokit"

// Config represents the memokit configuration shared by both binaries.
type Config struct {
	Memo   MemoConfig   `toml:"memo"`
	SQLite SQLiteConfig `toml:"sqlite"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

// MemoConfig configures the memo extractor.
type MemoConfig struct {
	// Input is the CSV export to read (named like JSON by the app).
	Input string `toml:"input"`

	// OutDir is where memo_texts.* files are written.
	OutDir string `toml:"out_dir"`

	// PreviewLength truncates console previews to this many characters.
	// Zero prints each note in full.
	PreviewLength int `toml:"preview_length"`
}

// SQLiteConfig configures the database exporter.
type SQLiteConfig struct {
	// Encoding is the CSV encoding name, e.g. "utf-8-sig" or "shift_jis".
	Encoding string `toml:"encoding"`

	// ExportDir is the output directory for export_all.
	ExportDir string `toml:"export_dir"`

	// SearchPreviewRows limits how many matching rows search prints per column.
	SearchPreviewRows int `toml:"search_preview_rows"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Memo: MemoConfig{
			Input:  "note.json",
			OutDir: ".",
		},
		SQLite: SQLiteConfig{
			Encoding:          "utf-8-sig",
			ExportDir:         "csv_exports",
			SearchPreviewRows: 3,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadOrDefault loads the config at path, or at DefaultPath when path is
// empty. A missing file is not an error: the defaults are returned and
// exists is false.
func LoadOrDefault(path string) (cfg *Config, exists bool, err error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	cfg, err = LoadFrom(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// LoadFrom loads the configuration from a specific path. Keys absent from the
// file keep their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects values no command could act on.
func (c *Config) Validate() error {
	if c.Memo.PreviewLength < 0 {
		return fmt.Errorf("memo.preview_length must not be negative")
	}
	if c.SQLite.SearchPreviewRows < 0 {
		return fmt.Errorf("sqlite.search_preview_rows must not be negative")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/memokit/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	// Prefer XDG-style ~/.config/memokit/config.toml
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	// Fall back to XDG config dir or OS-specific location
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, AppName, "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/memokit/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}
