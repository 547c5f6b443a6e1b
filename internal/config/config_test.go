// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/worldline/internal/config"
	"github.com/katalvlaran/worldline/units"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	o := units.NewOptions(cfg.Options()...)
	assert.Equal(t, units.C, o.SpeedOfLight())
	assert.Equal(t, units.LightConeMargin, o.ConeMargin())
	assert.Equal(t, units.DefaultSampleCount, o.SampleCount())
	assert.Equal(t, units.MaxSampleCount, o.MaxSamples())
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestDecode_OverridesOnlyDefinedKeys(t *testing.T) {
	cfg, err := config.Decode(`
[physics]
speed_of_light = 2.0
sample_count = 50

[server]
addr = " :9090 "
write_timeout = "1m"
compress = false

[log]
level = "debug"
`)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Physics.SpeedOfLight)
	assert.Equal(t, 50, cfg.Physics.SampleCount)
	assert.Equal(t, units.LightConeMargin, cfg.Physics.ConeMargin)
	assert.Equal(t, units.MaxSampleCount, cfg.Physics.MaxSamples)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, config.Default().Server.ReadTimeout, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.Compress)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Log.Console)

	o := units.NewOptions(cfg.Options()...)
	assert.Equal(t, 2.0, o.SpeedOfLight())
	assert.Equal(t, 50, o.SampleCount())
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero c":           "[physics]\nspeed_of_light = 0.0",
		"narrow cone":      "[physics]\ncone_margin = -1.0",
		"one sample":       "[physics]\nsample_count = 1",
		"count above max":  "[physics]\nsample_count = 20\nmax_samples = 10",
		"max above cap":    "[physics]\nmax_samples = 2000000",
		"empty addr":       "[server]\naddr = \"\"",
		"negative timeout": "[server]\nread_timeout = \"-1s\"",
		"bad level":        "[log]\nlevel = \"loud\"",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(text)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := config.Decode("[server]\nread_timeout = \"soon\"")
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Decode("[physics\n")
	assert.Error(t, err)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldline.toml")
	require.NoError(t, os.WriteFile(path, []byte("[physics]\ncone_margin = 0.01\n[log]\nlevel = \"warn\"\n"), 0o600))

	t.Setenv(config.EnvLogLevel, "")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Physics.ConeMargin)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())

	t.Setenv(config.EnvLogLevel, "error")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
