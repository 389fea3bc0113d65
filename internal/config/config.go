// Package config holds the compile-time constants of the original CONF
// dict, promoted to a loaded struct with flag overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Config mirrors CONF from the Python original: tags, border width and
// the two border colours. SocketPath is new surface for the control
// socket location, which the original hardcoded.
type Config struct {
	Tags          []string
	BorderPixel   uint32
	AccentColour  uint32
	DefaultColour uint32
	SocketPath    string
	LogLevel      string
	LogJSON       bool

	tagsFlag *string // raw --tags value, split by ResolveFlags
}

// Default returns the built-in configuration, equivalent to CONF in the
// Python source and the literal grab table in driusan/dewm's main.go.
func Default() Config {
	return Config{
		Tags:          []string{"wrk", "www", "cmd", "fun", "etc"},
		BorderPixel:   4,
		AccentColour:  0xFF0000,
		DefaultColour: 0x888888,
		SocketPath:    "/tmp/vaswm.socket",
		LogLevel:      "info",
		LogJSON:       false,
	}
}

// RegisterFlags binds cobra/pflag overrides onto cfg's fields. Call
// ResolveFlags after the owning command parses argv.
func (cfg *Config) RegisterFlags(flags *pflag.FlagSet) {
	tags := flags.String("tags", strings.Join(cfg.Tags, ","), "comma-separated workspace tags")
	flags.Uint32Var(&cfg.BorderPixel, "borderpx", cfg.BorderPixel, "border width in pixels")
	flags.Uint32Var(&cfg.AccentColour, "accent", cfg.AccentColour, "accent border colour (0xRRGGBB)")
	flags.Uint32Var(&cfg.DefaultColour, "default-colour", cfg.DefaultColour, "default border colour (0xRRGGBB)")
	flags.StringVar(&cfg.SocketPath, "socket", cfg.SocketPath, "control socket path")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level (trace, debug, info, warn, error)")
	flags.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "emit logs as JSON instead of text")
	cfg.tagsFlag = tags
}

// ResolveFlags must be called after cobra parses flags, to turn the raw
// --tags string into cfg.Tags, then validates the result.
func (cfg *Config) ResolveFlags() error {
	if cfg.tagsFlag != nil {
		if raw := strings.TrimSpace(*cfg.tagsFlag); raw != "" {
			cfg.Tags = strings.Split(raw, ",")
		}
	}
	return cfg.Validate()
}

// Validate enforces the invariants the rest of the system assumes: at
// least one tag, and no duplicate tag names.
func (cfg *Config) Validate() error {
	if len(cfg.Tags) == 0 {
		return fmt.Errorf("config: at least one workspace tag is required")
	}
	seen := make(map[string]bool, len(cfg.Tags))
	for _, t := range cfg.Tags {
		if t == "" {
			return fmt.Errorf("config: workspace tag must not be empty")
		}
		if seen[t] {
			return fmt.Errorf("config: duplicate workspace tag %q", t)
		}
		seen[t] = true
	}
	return nil
}
