package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Search  SearchConfig  `mapstructure:"search"`
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds content API configuration
type APIConfig struct {
	Key          string        `mapstructure:"key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// SearchConfig tunes live search
type SearchConfig struct {
	Debounce    time.Duration `mapstructure:"debounce"`
	MinLength   int           `mapstructure:"min_length"`   // in characters
	HistorySize int           `mapstructure:"history_size"` // recent queries kept
}

// StoreConfig locates the preferences database. An empty path keeps
// everything in memory.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme           string `mapstructure:"theme"` // "dark" or "light"
	DefaultCategory string `mapstructure:"default_category"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			Timeout:      10 * time.Second,
		},
		Search: SearchConfig{
			Debounce:    500 * time.Millisecond,
			MinLength:   3,
			HistorySize: 5,
		},
		Store: StoreConfig{
			Path: defaultDataPath(),
		},
		UI: UIConfig{
			Theme:           "dark",
			DefaultCategory: "popular",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "flick.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flick")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "flick")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flick")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flick")
	}
}

// DefaultConfigFile returns the path SaveConfig writes to when none is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Environment variable overrides: FLICK_API_KEY -> api.key
	v.SetEnvPrefix("FLICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key so env overrides reach Unmarshal
	for key, value := range settings(cfg) {
		v.SetDefault(key, value)
	}
	return v
}

func settings(cfg *Config) map[string]any {
	return map[string]any{
		"api.key":             cfg.API.Key,
		"api.base_url":        cfg.API.BaseURL,
		"api.image_base_url":  cfg.API.ImageBaseURL,
		"api.timeout":         cfg.API.Timeout.String(),
		"search.debounce":     cfg.Search.Debounce.String(),
		"search.min_length":   cfg.Search.MinLength,
		"search.history_size": cfg.Search.HistorySize,
		"store.path":          cfg.Store.Path,
		"ui.theme":            cfg.UI.Theme,
		"ui.default_category": cfg.UI.DefaultCategory,
		"logging.file":        cfg.Logging.File,
		"logging.level":       cfg.Logging.Level,
	}
}

// LoadConfig loads configuration from file and environment. An empty path
// searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Config file not found is OK, use defaults
		case path != "" && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.API.ImageBaseURL = strings.TrimRight(cfg.API.ImageBaseURL, "/")

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, or the default location when
// path is empty.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	// Set fields individually to ensure correct key names (snake_case)
	for key, value := range settings(cfg) {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return c.API.Key != ""
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
