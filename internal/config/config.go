package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config captures everything exhibit reads at startup.
type Config struct {
	Model       string `koanf:"model"`
	BaseURL     string `koanf:"base_url"`
	ExportDir   string `koanf:"export_dir"`
	FontPath    string `koanf:"font_path"`
	LogFile     string `koanf:"log_file"`
	LogLevel    string `koanf:"log_level"`
	MetricsFile string `koanf:"metrics_file"`
	PrefsFile   string `koanf:"prefs_file"`

	// APIKey only ever comes from the API_KEY environment variable.
	APIKey string `koanf:"api_key"`

	// Path is the config file that was considered, whether or not it existed.
	Path string `koanf:"-"`
}

const (
	defaultConfigPath = "~/.config/exhibit/config.toml"
	defaultModel      = "gemini-3-flash-preview"
	defaultExportDir  = "~/Pictures/exhibit"
	defaultLogFile    = "~/.local/state/exhibit/exhibit.log"
	defaultLogLevel   = "info"
	defaultPrefsFile  = "~/.config/exhibit/prefs.toml"

	envPrefix     = "EXHIBIT_"
	credentialEnv = "API_KEY"
	credentialKey = "api_key"
)

// Default returns the built-in configuration before any file or env layer.
func Default() Config {
	return Config{
		Model:     defaultModel,
		ExportDir: defaultExportDir,
		LogFile:   defaultLogFile,
		LogLevel:  defaultLogLevel,
		PrefsFile: defaultPrefsFile,
	}
}

// Load layers defaults, the config file at path (default
// ~/.config/exhibit/config.toml) and EXHIBIT_* environment variables, then
// reads the credential from API_KEY. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	k := koanf.New(".")

	if _, err := os.Stat(resolved); err == nil {
		if err := k.Load(file.Provider(resolved), parserFor(resolved)); err != nil {
			return Config{}, fmt.Errorf("%w: parse config: %v", ErrLoadConfig, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: open config: %v", ErrLoadConfig, err)
	}

	// EXHIBIT_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("%w: read env: %v", ErrLoadConfig, err)
	}

	// The credential is never taken from the file or the EXHIBIT_ prefix.
	k.Delete(credentialKey)
	if err := k.Load(env.Provider(credentialEnv, ".", func(s string) string {
		if s == credentialEnv {
			return credentialKey
		}
		return ""
	}), nil); err != nil {
		return Config{}, fmt.Errorf("%w: read env: %v", ErrLoadConfig, err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: decode config: %v", ErrLoadConfig, err)
	}
	cfg.Path = resolved

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Model = orDefault(c.Model, defaultModel)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.LogLevel = strings.ToLower(orDefault(c.LogLevel, defaultLogLevel))
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.BaseURL != "" && !strings.Contains(c.BaseURL, "://") {
		return fmt.Errorf("%w: base_url %q needs a scheme", ErrInvalidConfig, c.BaseURL)
	}

	var err error
	if c.ExportDir, err = expandPath(orDefault(c.ExportDir, defaultExportDir)); err != nil {
		return fmt.Errorf("%w: export_dir: %v", ErrInvalidConfig, err)
	}
	if c.LogFile, err = expandPath(orDefault(c.LogFile, defaultLogFile)); err != nil {
		return fmt.Errorf("%w: log_file: %v", ErrInvalidConfig, err)
	}
	if c.PrefsFile, err = expandPath(orDefault(c.PrefsFile, defaultPrefsFile)); err != nil {
		return fmt.Errorf("%w: prefs_file: %v", ErrInvalidConfig, err)
	}
	if c.FontPath = strings.TrimSpace(c.FontPath); c.FontPath != "" {
		c.FontPath = mustExpand(c.FontPath)
	}
	if c.MetricsFile = strings.TrimSpace(c.MetricsFile); c.MetricsFile != "" {
		c.MetricsFile = mustExpand(c.MetricsFile)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return tomlParser{}
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
