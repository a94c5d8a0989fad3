// Package config loads user preferences for clamshell front-ends from a TOML
// file, with environment overrides applied on top. Command-line flags are
// bound by the caller, so the effective precedence is flags over environment
// over file over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"clamshell/internal/logger"
)

// Config holds the user-tunable settings of a shell session.
type Config struct {
	// Prompt is the interactive prompt text.
	Prompt string `toml:"prompt"`
	// HistoryFile stores interactive input history. Empty means the default
	// location under the application's config directory.
	HistoryFile string `toml:"history_file"`
	// TranscriptPath, when set, tees handler output into a transcript file.
	TranscriptPath string `toml:"transcript_path"`
	// UsageLog, when set, records every invocation in a SQLite journal.
	UsageLog string `toml:"usage_log"`
	// Color selects styled output: "auto", "always" or "never".
	Color string `toml:"color"`
	// Theme picks the style table for help surfaces and messages.
	Theme string `toml:"theme"`
	// AutoCorrect dispatches the corrected line when a mistyped command has
	// exactly one suggestion.
	AutoCorrect bool `toml:"auto_correct"`
}

// Default returns the configuration used when no file or overrides exist.
func Default(app string) *Config {
	return &Config{
		Prompt: app + "> ",
		Color:  "auto",
		Theme:  "default",
	}
}

// Dir returns the application's configuration directory, typically
// ~/.config/<app> on Unix systems.
func Dir(app string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, app), nil
}

// Path returns the location of the application's config file.
func Path(app string) (string, error) {
	dir, err := Dir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the application's config file when it exists and applies
// environment overrides. A missing file is not an error; defaults are
// returned instead.
func Load(app string) (*Config, error) {
	cfg := Default(app)

	path, err := Path(app)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		if err := decodeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(EnvPrefix(app))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads an explicitly named config file and applies environment
// overrides. Unlike Load, a missing file is an error.
func LoadFile(app, path string) (*Config, error) {
	cfg := Default(app)
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.applyEnv(EnvPrefix(app))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		logger.Warn("unrecognized config keys ignored", "file", path, "keys", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks the loaded values. Theme names are not checked here; an
// unknown theme falls back to plain styling where it is loaded.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color setting %q, must be auto, always or never", c.Color)
	}
}

// EnvPrefix derives the environment variable prefix for an application name,
// for example "clam" yields "CLAM_".
func EnvPrefix(app string) string {
	upper := strings.ToUpper(app)
	upper = strings.ReplaceAll(upper, "-", "_")
	return upper + "_"
}

func (c *Config) applyEnv(prefix string) {
	if v := os.Getenv(prefix + "PROMPT"); v != "" {
		c.Prompt = v
	}
	if v := os.Getenv(prefix + "HISTORY_FILE"); v != "" {
		c.HistoryFile = v
	}
	if v := os.Getenv(prefix + "TRANSCRIPT"); v != "" {
		c.TranscriptPath = v
	}
	if v := os.Getenv(prefix + "USAGE_LOG"); v != "" {
		c.UsageLog = v
	}
	if v := os.Getenv(prefix + "COLOR"); v != "" {
		c.Color = v
	}
	if v := os.Getenv(prefix + "THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(prefix + "AUTO_CORRECT"); v != "" {
		c.AutoCorrect = v == "1" || strings.EqualFold(v, "true")
	}
}
