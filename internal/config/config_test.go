package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/vnote/internal/dateutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Locale != "en" {
		t.Errorf("expected locale en, got %s", cfg.Display.Locale)
	}
	if cfg.Display.RelativeStyle != "compact" {
		t.Errorf("expected relative_style compact, got %s", cfg.Display.RelativeStyle)
	}
	if cfg.Display.MinVoiceSeconds != 0 {
		t.Errorf("expected min_voice_seconds 0, got %d", cfg.Display.MinVoiceSeconds)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Display.Locale != "en" {
		t.Errorf("expected default locale, got %s", cfg.Display.Locale)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[display]
locale = "ru"
relative_style = "detailed"
min_voice_seconds = 1

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Display.Locale != "ru" {
		t.Errorf("expected locale ru, got %s", cfg.Display.Locale)
	}
	if cfg.Display.RelativeStyle != "detailed" {
		t.Errorf("expected relative_style detailed, got %s", cfg.Display.RelativeStyle)
	}
	if cfg.Display.MinVoiceSeconds != 1 {
		t.Errorf("expected min_voice_seconds 1, got %d", cfg.Display.MinVoiceSeconds)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[display\nlocale ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[display]
locale = "fi"
relative_style = "compact"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("VNOTE_RELATIVE_STYLE", "detailed")
	t.Setenv("VNOTE_MIN_VOICE_SECONDS", "2")
	t.Setenv("VNOTE_UI_THEME", "latte")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Display.RelativeStyle != "detailed" {
		t.Errorf("expected relative_style detailed from env, got %s", cfg.Display.RelativeStyle)
	}
	// File value should be kept when no env override
	if cfg.Display.Locale != "fi" {
		t.Errorf("expected locale fi from file, got %s", cfg.Display.Locale)
	}
	// Env should override default
	if cfg.Display.MinVoiceSeconds != 2 {
		t.Errorf("expected min_voice_seconds 2 from env, got %d", cfg.Display.MinVoiceSeconds)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_BadEnvNumber(t *testing.T) {
	t.Setenv("VNOTE_MIN_VOICE_SECONDS", "soon")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric VNOTE_MIN_VOICE_SECONDS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unsupported locale", func(c *Config) { c.Display.Locale = "de" }},
		{"unknown relative style", func(c *Config) { c.Display.RelativeStyle = "verbose" }},
		{"negative voice floor", func(c *Config) { c.Display.MinVoiceSeconds = -1 }},
		{"voice floor past an hour", func(c *Config) { c.Display.MinVoiceSeconds = 3600 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRelativeFormatter(t *testing.T) {
	cfg := Default()
	cfg.Display.Locale = "pt"
	cfg.Display.RelativeStyle = "detailed"

	f := cfg.RelativeFormatter()
	if f.Style() != dateutil.StyleDetailed {
		t.Errorf("expected detailed style, got %v", f.Style())
	}

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	if got := f.Format(now.Add(-5*time.Minute), now); got != "5 minutos atrás" {
		t.Errorf("got %q, want %q", got, "5 minutos atrás")
	}
}

func TestFormatVoice(t *testing.T) {
	cfg := Default()
	if got := cfg.FormatVoice(890); got != "00:00" {
		t.Errorf("got %q, want 00:00", got)
	}
	cfg.Display.MinVoiceSeconds = 1
	if got := cfg.FormatVoice(890); got != "00:01" {
		t.Errorf("got %q, want 00:01", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Display.Locale = "fi"
	cfg.Display.MinVoiceSeconds = 3
	cfg.Storage.DBPath = filepath.Join(tmpDir, "vnote.db")

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Display.Locale != "fi" {
		t.Errorf("expected locale fi, got %s", loaded.Display.Locale)
	}
	if loaded.Display.MinVoiceSeconds != 3 {
		t.Errorf("expected min_voice_seconds 3, got %d", loaded.Display.MinVoiceSeconds)
	}
	if loaded.Storage.DBPath != cfg.Storage.DBPath {
		t.Errorf("expected db_path %s, got %s", cfg.Storage.DBPath, loaded.Storage.DBPath)
	}
}
