// Package config holds the settings of the learn binary. Settings are
// read from a YAML file, then overridden by environment variables and
// finally by command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Name of the app to run
	App string `yaml:"app"`

	Window WindowConfig `yaml:"window"`

	// Read shaders from this directory instead of the embedded sources.
	// Shaders are reloaded when a file in the directory changes.
	ShaderDir string `yaml:"shader_dir"`

	// Compile shaders with naga before creating them on the device
	ValidateShaders bool `yaml:"validate_shaders"`

	// Read images from this directory instead of the embedded assets
	AssetDir string `yaml:"asset_dir"`

	LogLevel LogLevel `yaml:"log_level"`

	ForceFallbackAdapter bool `yaml:"force_fallback_adapter"`

	// Record a cpu profile
	Profile bool `yaml:"profile"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LogLevel wraps slog.Level for YAML unmarshaling.
type LogLevel slog.Level

// UnmarshalYAML implements yaml.Unmarshaler for LogLevel.
func (l *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}

	*l = LogLevel(level)

	return nil
}

func (l LogLevel) Level() slog.Level {
	return slog.Level(l)
}

func Default() Config {
	return Config{
		App: "cube",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "learnwgpu",
		},
		LogLevel: LogLevel(slog.LevelInfo),
	}
}

// Load reads the config file at path on top of the defaults. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config file %q: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overrides values from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) {
	if value, ok := lookup("LEARNWGPU_APP"); ok && value != "" {
		c.App = value
	}

	if value, ok := lookup("LEARNWGPU_SHADER_DIR"); ok && value != "" {
		c.ShaderDir = value
	}

	if value, ok := lookup("WGPU_FORCE_FALLBACK_ADAPTER"); ok && value != "" {
		c.ForceFallbackAdapter = value == "1" || strings.EqualFold(value, "true")
	}
}

func (c *Config) Validate() error {
	if c.App == "" {
		return errors.New("no app configured")
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	return nil
}
