// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/worldline/units"
)

// EnvLogLevel overrides [log] level when set.
const EnvLogLevel = "WORLDLINE_LOG_LEVEL"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective configuration of the binary.
type Config struct {
	Physics PhysicsConfig
	Server  ServerConfig
	Log     LogConfig
}

// PhysicsConfig maps onto units.Option values.
type PhysicsConfig struct {
	SpeedOfLight float64
	ConeMargin   float64
	SampleCount  int
	MaxSamples   int
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Compress        bool
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level   string
	Console bool
}

type fileConfig struct {
	Physics struct {
		SpeedOfLight float64 `toml:"speed_of_light"`
		ConeMargin   float64 `toml:"cone_margin"`
		SampleCount  int     `toml:"sample_count"`
		MaxSamples   int     `toml:"max_samples"`
	} `toml:"physics"`
	Server struct {
		Addr            string `toml:"addr"`
		ReadTimeout     string `toml:"read_timeout"`
		WriteTimeout    string `toml:"write_timeout"`
		ShutdownTimeout string `toml:"shutdown_timeout"`
		Compress        bool   `toml:"compress"`
	} `toml:"server"`
	Log struct {
		Level   string `toml:"level"`
		Console bool   `toml:"console"`
	} `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			SpeedOfLight: units.C,
			ConeMargin:   units.LightConeMargin,
			SampleCount:  units.DefaultSampleCount,
			MaxSamples:   units.MaxSampleCount,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Compress:        true,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads path (empty means defaults only), applies the environment
// override and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode parses TOML text on top of the defaults and validates it.
// The environment is not consulted.
func Decode(text string) (Config, error) {
	cfg := Default()
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := merge(&cfg, &raw, meta); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	return merge(cfg, &raw, meta)
}

// merge copies every key defined in the file onto cfg.
func merge(cfg *Config, raw *fileConfig, meta toml.MetaData) error {
	if meta.IsDefined("physics", "speed_of_light") {
		cfg.Physics.SpeedOfLight = raw.Physics.SpeedOfLight
	}
	if meta.IsDefined("physics", "cone_margin") {
		cfg.Physics.ConeMargin = raw.Physics.ConeMargin
	}
	if meta.IsDefined("physics", "sample_count") {
		cfg.Physics.SampleCount = raw.Physics.SampleCount
	}
	if meta.IsDefined("physics", "max_samples") {
		cfg.Physics.MaxSamples = raw.Physics.MaxSamples
	}

	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"read_timeout", raw.Server.ReadTimeout, &cfg.Server.ReadTimeout},
		{"write_timeout", raw.Server.WriteTimeout, &cfg.Server.WriteTimeout},
		{"shutdown_timeout", raw.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if !meta.IsDefined("server", d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return fmt.Errorf("parse server.%s: %w", d.key, err)
		}
		*d.dst = v
	}
	if meta.IsDefined("server", "compress") {
		cfg.Server.Compress = raw.Server.Compress
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "console") {
		cfg.Log.Console = raw.Log.Console
	}

	return nil
}

// Validate reports the first out-of-range setting. A valid Config never makes
// the units.With* constructors panic.
func (c Config) Validate() error {
	p := c.Physics
	switch {
	case math.IsNaN(p.SpeedOfLight) || math.IsInf(p.SpeedOfLight, 0) || p.SpeedOfLight <= 0:
		return fmt.Errorf("%w: physics.speed_of_light must be finite and > 0, got %g", ErrInvalidConfig, p.SpeedOfLight)
	case math.IsNaN(p.ConeMargin) || math.IsInf(p.ConeMargin, 0) || p.ConeMargin <= -1:
		return fmt.Errorf("%w: physics.cone_margin must be finite and > -1, got %g", ErrInvalidConfig, p.ConeMargin)
	case p.MaxSamples < units.MinSampleCount || p.MaxSamples > units.MaxSampleCount:
		return fmt.Errorf("%w: physics.max_samples must be in [%d, %d], got %d",
			ErrInvalidConfig, units.MinSampleCount, units.MaxSampleCount, p.MaxSamples)
	case p.SampleCount < units.MinSampleCount || p.SampleCount > p.MaxSamples:
		return fmt.Errorf("%w: physics.sample_count must be in [%d, max_samples], got %d",
			ErrInvalidConfig, units.MinSampleCount, p.SampleCount)
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("%w: server timeouts must be >= 0", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the physics section into per-call units options.
func (c Config) Options() []units.Option {
	p := c.Physics
	return []units.Option{
		units.WithSpeedOfLight(p.SpeedOfLight),
		units.WithConeMargin(p.ConeMargin),
		units.WithMaxSamples(p.MaxSamples),
		units.WithSampleCount(p.SampleCount),
	}
}

// LogLevel returns the parsed log level, info when unparsable.
func (c Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}
