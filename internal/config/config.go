package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/particle-graph/internal/theme"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Particle Graph - Space: pause, T: theme, H: HUD, S: save SVG, Esc/Q: quit"

	TPS = 60

	// Canvas opacity over the page background
	Opacity = 0.7

	// Snapshot defaults
	SnapshotWidth  = 1500
	SnapshotHeight = 800
	SnapshotTicks  = 120
	SnapshotFPS    = 60
)

var ErrInvalid = errors.New("invalid config")

// Config holds particle-graph settings.
type Config struct {
	Theme    string         `toml:"theme"`
	Seed     uint64         `toml:"seed"` // 0 picks a time-based seed
	LogLevel string         `toml:"log_level"`
	Window   WindowConfig   `toml:"window"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

// WindowConfig controls the interactive window.
type WindowConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Title     string  `toml:"title"`
	TPS       int     `toml:"tps"`
	Opacity   float64 `toml:"opacity"`
	HUD       bool    `toml:"hud"`
	Resizable bool    `toml:"resizable"`
}

// SnapshotConfig controls headless SVG export.
type SnapshotConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Ticks  int    `toml:"ticks"`
	FPS    int    `toml:"fps"`
	Output string `toml:"output"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Theme:    string(theme.Dark),
		LogLevel: "info",
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			TPS:       TPS,
			Opacity:   Opacity,
			HUD:       false,
			Resizable: true,
		},
		Snapshot: SnapshotConfig{
			Width:  SnapshotWidth,
			Height: SnapshotHeight,
			Ticks:  SnapshotTicks,
			FPS:    SnapshotFPS,
			Output: "particle-graph.svg",
		},
	}
}

// Dir returns the particle-graph config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "particle-graph")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// silently falls back to defaults when that file does not exist; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if _, err := c.ThemeMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Window.Opacity < 0 || c.Window.Opacity > 1 {
		return fmt.Errorf("%w: window opacity %v not in [0, 1]", ErrInvalid, c.Window.Opacity)
	}
	if c.Snapshot.Ticks < 0 {
		return fmt.Errorf("%w: snapshot ticks %d", ErrInvalid, c.Snapshot.Ticks)
	}
	if c.Snapshot.FPS <= 0 {
		return fmt.Errorf("%w: snapshot fps %d", ErrInvalid, c.Snapshot.FPS)
	}
	return nil
}

// ThemeMode parses Theme.
func (c *Config) ThemeMode() (theme.Mode, error) {
	return theme.ParseMode(c.Theme)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl, err
}
