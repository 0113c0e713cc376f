package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA
	TickRate   int        `yaml:"tick_rate"`   // fixed updates per second
	MaxSteps   int        `yaml:"max_steps"`   // fixed updates allowed per frame
	LogLevel   string     `yaml:"log_level"`

	ScreenshotPath  string  `yaml:"screenshot_path"`
	ScreenshotScale float64 `yaml:"screenshot_scale"`
}

func DefaultConfig() Config {
	return Config{
		Title:           "glsketch",
		Width:           1280,
		Height:          720,
		VSync:           true,
		ClearColor:      [4]float32{1, 1, 1, 1},
		TickRate:        60,
		MaxSteps:        10,
		LogLevel:        "info",
		ScreenshotPath:  "screenshot.png",
		ScreenshotScale: 1,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. A missing file is not an
// error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Width < 1 {
		c.Width = d.Width
	}
	if c.Height < 1 {
		c.Height = d.Height
	}
	if c.TickRate < 1 {
		c.TickRate = d.TickRate
	}
	if c.MaxSteps < 1 {
		c.MaxSteps = d.MaxSteps
	}
	if c.ScreenshotScale <= 0 {
		c.ScreenshotScale = 1
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
