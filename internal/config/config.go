// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/javiermolinar/vnote/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// DisplayConfig holds timestamp and clip length rendering settings.
type DisplayConfig struct {
	Locale          string `toml:"locale"`            // "en", "ru", "fi", "pt"
	RelativeStyle   string `toml:"relative_style"`    // "compact" or "detailed"
	MinVoiceSeconds int64  `toml:"min_voice_seconds"` // floor for displayed clip length
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Locale:          "en",
			RelativeStyle:   "compact",
			MinVoiceSeconds: 0,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vnote.db"
	}
	return filepath.Join(home, ".local", "share", "vnote", "vnote.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "vnote", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("VNOTE_LOCALE"); v != "" {
		cfg.Display.Locale = v
	}
	if v := os.Getenv("VNOTE_RELATIVE_STYLE"); v != "" {
		cfg.Display.RelativeStyle = v
	}
	if v := os.Getenv("VNOTE_MIN_VOICE_SECONDS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("VNOTE_MIN_VOICE_SECONDS must be an integer, got %q", v)
		}
		cfg.Display.MinVoiceSeconds = n
	}
	if v := os.Getenv("VNOTE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("VNOTE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validThemes = map[string]bool{
	"mocha": true,
	"latte": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dateutil.ParseLocale(c.Display.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if _, err := dateutil.ParseStyle(c.Display.RelativeStyle); err != nil {
		return err
	}
	if c.Display.MinVoiceSeconds < 0 || c.Display.MinVoiceSeconds >= dateutil.MaxClipSeconds {
		return fmt.Errorf("min_voice_seconds must be between 0 and %d, got %d",
			dateutil.MaxClipSeconds-1, c.Display.MinVoiceSeconds)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// Language returns the configured display language.
// Call after Validate; an invalid locale yields English.
func (c *Config) Language() language.Tag {
	tag, err := dateutil.ParseLocale(c.Display.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// RelativeFormatter builds the timestamp formatter described by the display settings.
func (c *Config) RelativeFormatter() *dateutil.RelativeFormatter {
	style, _ := dateutil.ParseStyle(c.Display.RelativeStyle)
	return dateutil.NewRelativeFormatter(
		dateutil.WithLanguage(c.Language()),
		dateutil.WithStyle(style),
	)
}

// FormatVoice renders a clip length using the configured floor.
func (c *Config) FormatVoice(ms int64) string {
	return dateutil.FormatMillisMin(ms, c.Display.MinVoiceSeconds)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
