package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvConfigDir       = "SHOPLIST_CONFIG_DIR"
	EnvFormat          = "SHOPLIST_FORMAT"
	EnvTUIGlyphs       = "SHOPLIST_TUI_GLYPHS"
	EnvTUIDebugLog     = "SHOPLIST_TUI_DEBUG_LOG"
	EnvDefaultQuantity = "SHOPLIST_DEFAULT_QUANTITY"
)

type Config struct {
	// TUI holds optional preferences for the interactive screen.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// DefaultQuantity pre-fills the quantity field of the add dialog.
	DefaultQuantity string `json:"defaultQuantity,omitempty"`
}

// Glyphs returns the effective glyph preference: env first, then the config file.
func (c *Config) Glyphs() string {
	if v := strings.TrimSpace(os.Getenv(EnvTUIGlyphs)); v != "" {
		return strings.ToLower(v)
	}
	if c == nil || c.TUI == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.TUI.Glyphs))
}

func (c *Config) DefaultQuantity() string {
	if v := strings.TrimSpace(os.Getenv(EnvDefaultQuantity)); v != "" {
		return v
	}
	if c == nil || c.TUI == nil || strings.TrimSpace(c.TUI.DefaultQuantity) == "" {
		return "1"
	}
	return strings.TrimSpace(c.TUI.DefaultQuantity)
}

func (c *Config) SetGlyphs(v string) {
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	c.TUI.Glyphs = v
}

func Dir() (string, error) {
	// Tests point this elsewhere to keep ~/.shoplist untouched.
	if v := strings.TrimSpace(os.Getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shoplist"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields an empty config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func EnvOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
