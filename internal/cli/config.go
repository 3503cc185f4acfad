package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fibspiral/fibspiral/pkg/fib"
	"github.com/fibspiral/fibspiral/pkg/pipeline"
)

// Cache backend names accepted in the config file.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Config holds user preferences loaded from config.toml. Every field has
// a default, so a missing or partial file is fine.
type Config struct {
	MaxIndex MaxIndexConfig `toml:"max_index"`
	Viewport ViewportConfig `toml:"viewport"`
	Render   RenderConfig   `toml:"render"`
	Cache    CacheConfig    `toml:"cache"`
}

// MaxIndexConfig bounds the accepted sequence index per front end. The
// interactive TUI keeps a tighter bound than the CLI because it redraws
// the spiral on every keystroke.
type MaxIndexConfig struct {
	CLI uint32 `toml:"cli"`
	TUI uint32 `toml:"tui"`
}

// ViewportConfig sets the default layout frame for rendered output.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// RenderConfig sets default render toggles; flags override per run.
type RenderConfig struct {
	Grid  bool `toml:"grid"`
	Title bool `toml:"title"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxIndex: MaxIndexConfig{
			CLI: fib.DefaultMaxIndexCLI,
			TUI: fib.DefaultMaxIndexTUI,
		},
		Viewport: ViewportConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
		},
		Render: RenderConfig{
			Grid:  true,
			Title: true,
		},
		Cache: CacheConfig{
			Backend: cacheBackendFile,
		},
	}
}

// LoadConfig reads $XDG_CONFIG_HOME/fibspiral/config.toml, falling back
// to defaults when the file is missing or unreadable.
func LoadConfig() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	return loadConfigFrom(filepath.Join(dir, "config.toml"))
}

// loadConfigFrom loads a config file from an explicit path. Unknown keys
// are ignored; decode errors fall back to defaults rather than aborting
// the command.
func loadConfigFrom(path string) *Config {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig()
	}

	cfg.normalize()
	return cfg
}

// normalize repairs out-of-range values after decoding.
func (c *Config) normalize() {
	if c.MaxIndex.CLI == 0 {
		c.MaxIndex.CLI = fib.DefaultMaxIndexCLI
	}
	if c.MaxIndex.TUI == 0 {
		c.MaxIndex.TUI = fib.DefaultMaxIndexTUI
	}
	if c.Viewport.Width <= 0 {
		c.Viewport.Width = pipeline.DefaultWidth
	}
	if c.Viewport.Height <= 0 {
		c.Viewport.Height = pipeline.DefaultHeight
	}
	switch c.Cache.Backend {
	case cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		c.Cache.Backend = cacheBackendFile
	}
}
