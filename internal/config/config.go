package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CacheDir string `yaml:"cache_dir"`
	DBPath   string `yaml:"db_path"`
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`

	WatchInterval     time.Duration `yaml:"watch_interval"`
	ListLimit         int           `yaml:"list_limit"`
	ImportConcurrency int           `yaml:"import_concurrency"`

	// Comment block layout, in terminal cells.
	AvatarSize      int `yaml:"avatar_size"`
	TextIndent      int `yaml:"text_indent"`
	BasePadding     int `yaml:"base_padding"`
	IndentedPadding int `yaml:"indented_padding"`

	// Pixel size requested from the avatar image service.
	AvatarPixels int `yaml:"avatar_pixels"`

	FadeDuration   time.Duration `yaml:"fade_duration"`
	FadeStartAlpha float64       `yaml:"fade_start_alpha"`
}

func Default() Config {
	cacheDir := filepath.Join(userConfigDir(), "modview")
	return Config{
		CacheDir:          cacheDir,
		DBPath:            filepath.Join(cacheDir, "notes.db"),
		LogPath:           filepath.Join(cacheDir, "debug.log"),
		LogLevel:          "info",
		WatchInterval:     2 * time.Second,
		ListLimit:         200,
		ImportConcurrency: 8,
		AvatarSize:        4,
		AvatarPixels:      256,
		TextIndent:        5,
		BasePadding:       1,
		// Double the extra-large margin for replies.
		IndentedPadding: 2 * 2,
		FadeDuration:    400 * time.Millisecond,
		FadeStartAlpha:  0.4,
	}
}

// Load returns the defaults overlaid with the YAML file at path (if it
// exists) and then with MODVIEW_* environment variables. An empty path
// means <CacheDir>/config.yaml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = filepath.Join(cfg.CacheDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the UI cannot work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path is empty")
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("config: watch_interval must be positive, got %s", c.WatchInterval)
	}
	if c.FadeStartAlpha < 0 || c.FadeStartAlpha > 1 {
		return fmt.Errorf("config: fade_start_alpha must be within [0,1], got %v", c.FadeStartAlpha)
	}
	if c.BasePadding < 0 || c.IndentedPadding < 0 || c.TextIndent < 0 {
		return errors.New("config: paddings must not be negative")
	}
	if c.AvatarPixels < 1 {
		return fmt.Errorf("config: avatar_pixels must be positive, got %d", c.AvatarPixels)
	}
	if c.ImportConcurrency < 1 {
		return fmt.Errorf("config: import_concurrency must be at least 1, got %d", c.ImportConcurrency)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MODVIEW_CACHE_DIR"); v != "" {
		c.CacheDir = v
		c.DBPath = filepath.Join(v, "notes.db")
		c.LogPath = filepath.Join(v, "debug.log")
	}
	if v := os.Getenv("MODVIEW_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("MODVIEW_LOG"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("MODVIEW_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MODVIEW_WATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.WatchInterval = d
		}
	}
	if v := os.Getenv("MODVIEW_IMPORT_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ImportConcurrency = n
		}
	}
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
