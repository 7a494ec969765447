// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chotto2/amida/bitvec"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.NMax)
	assert.Equal(t, 128, cfg.MMax)
	assert.Equal(t, 128, cfg.DspMax)
	assert.Equal(t, "bitset", cfg.Backend)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.False(t, cfg.Verify)
	assert.Equal(t, bitvec.KindBitSet, cfg.Kind())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("AMIDA_N_MAX", "40")
	t.Setenv("AMIDA_BACKEND", "roaring")
	t.Setenv("AMIDA_VERIFY", "true")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.NMax)
	assert.Equal(t, 40, cfg.MMax, "m_max tracks n_max when unset")
	assert.Equal(t, bitvec.KindRoaring, cfg.Kind())
	assert.True(t, cfg.Verify)
}

func TestLoad_EnvMMax(t *testing.T) {
	t.Setenv("AMIDA_N_MAX", "40")
	t.Setenv("AMIDA_M_MAX", "12")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.NMax)
	assert.Equal(t, 12, cfg.MMax)
}

func TestLoad_Flags(t *testing.T) {
	v := NewViper()
	fs := pflag.NewFlagSet("amida", pflag.ContinueOnError)
	require.NoError(t, AddFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--n-max=30", "--dsp-max", "16", "--backend=big"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.NMax)
	assert.Equal(t, 30, cfg.MMax, "unchanged --m-max follows --n-max")
	assert.Equal(t, 16, cfg.DspMax)
	assert.Equal(t, bitvec.KindBig, cfg.Kind())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("AMIDA_N_MAX", "40")

	v := NewViper()
	fs := pflag.NewFlagSet("amida", pflag.ContinueOnError)
	require.NoError(t, AddFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--n-max=7", "--m-max=3"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.NMax)
	assert.Equal(t, 3, cfg.MMax)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amida.yaml")
	data := "n_max: 20\nm_max: 10\ndsp_max: 10\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v := NewViper()
	v.Set(KeyConfig, path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.NMax)
	assert.Equal(t, 10, cfg.MMax)
	assert.Equal(t, 10, cfg.DspMax)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	v := NewViper()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{NMax: 1, MMax: 1, DspMax: 1, Backend: "bitset", LogLevel: "INFO"}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative n", func(c *Config) { c.NMax = -1 }},
		{"negative m", func(c *Config) { c.MMax = -1 }},
		{"negative dsp", func(c *Config) { c.DspMax = -1 }},
		{"backend", func(c *Config) { c.Backend = "gmp" }},
		{"level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_BackendWrapsKindError(t *testing.T) {
	c := Config{Backend: "gmp", LogLevel: "WARN"}
	assert.ErrorIs(t, c.Validate(), bitvec.ErrUnknownKind)
}
