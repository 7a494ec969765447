// SPDX-License-Identifier: MIT

// Package config resolves the run parameters of amida from, in order of
// precedence, command-line flags, AMIDA_* environment variables, an
// optional YAML file and built-in defaults equal to the reference
// constants (DSP_MAX = N_MAX = M_MAX = 128).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chotto2/amida/bitvec"
	"github.com/chotto2/amida/internal/logging"
)

// Configuration keys. Flags use the same names with '-' for '_'.
const (
	KeyConfig   = "config"
	KeyNMax     = "n_max"
	KeyMMax     = "m_max"
	KeyDspMax   = "dsp_max"
	KeyBackend  = "backend"
	KeyLogLevel = "log_level"
	KeyVerify   = "verify"
)

// EnvPrefix is prepended to every key to form its environment variable.
const EnvPrefix = "AMIDA"

// Reference constants.
const (
	DefaultNMax   = 128
	DefaultDspMax = 128
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	// NMax is the largest index computed.
	NMax int `mapstructure:"n_max"`
	// MMax is the largest divisor considered; it follows NMax unless set.
	MMax int `mapstructure:"m_max"`
	// DspMax is the number of witness marks printed per row.
	DspMax int `mapstructure:"dsp_max"`
	// Backend names the bit vector storage (bitset, roaring, big).
	Backend string `mapstructure:"backend"`
	// LogLevel is DEBUG, INFO, WARN or ERROR.
	LogLevel string `mapstructure:"log_level"`
	// Verify cross-checks the table against the modulo reference.
	Verify bool `mapstructure:"verify"`
}

// NewViper returns a viper instance with defaults and environment binding
// in place.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults installs the reference defaults. m_max has no default so
// that it can track n_max.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyNMax, DefaultNMax)
	v.SetDefault(KeyDspMax, DefaultDspMax)
	v.SetDefault(KeyBackend, bitvec.DefaultKind.String())
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyVerify, false)
}

// AddFlags defines the amida flags on fs and binds them to v.
func AddFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.StringP(flagName(KeyConfig), "c", "", "YAML config file")
	fs.Int(flagName(KeyNMax), DefaultNMax, "largest index n computed (N_MAX)")
	fs.Int(flagName(KeyMMax), DefaultNMax, "largest divisor m considered (M_MAX, defaults to N_MAX)")
	fs.Int(flagName(KeyDspMax), DefaultDspMax, "witness marks printed per row (DSP_MAX)")
	fs.String(flagName(KeyBackend), bitvec.DefaultKind.String(), "bit vector backend: bitset, roaring or big")
	fs.String(flagName(KeyLogLevel), logging.DefaultLevel, "log level: DEBUG, INFO, WARN or ERROR")
	fs.Bool(flagName(KeyVerify), false, "check the table against n % m before printing")

	for _, key := range []string{KeyConfig, KeyNMax, KeyMMax, KeyDspMax, KeyBackend, KeyLogLevel, KeyVerify} {
		if err := v.BindPFlag(key, fs.Lookup(flagName(key))); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", key, err)
		}
	}

	return nil
}

// Load reads the optional config file named by the "config" key and
// returns the validated configuration.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := Config{
		NMax:     v.GetInt(KeyNMax),
		DspMax:   v.GetInt(KeyDspMax),
		Backend:  v.GetString(KeyBackend),
		LogLevel: v.GetString(KeyLogLevel),
		Verify:   v.GetBool(KeyVerify),
	}
	cfg.MMax = cfg.NMax
	if v.IsSet(KeyMMax) {
		cfg.MMax = v.GetInt(KeyMMax)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects negative bounds, unknown backends and unknown levels.
func (c Config) Validate() error {
	switch {
	case c.NMax < 0:
		return fmt.Errorf("%w: n_max=%d must be >= 0", ErrInvalid, c.NMax)
	case c.MMax < 0:
		return fmt.Errorf("%w: m_max=%d must be >= 0", ErrInvalid, c.MMax)
	case c.DspMax < 0:
		return fmt.Errorf("%w: dsp_max=%d must be >= 0", ErrInvalid, c.DspMax)
	case !logging.ValidLevel(c.LogLevel):
		return fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel)
	}
	if _, err := bitvec.ParseKind(c.Backend); err != nil {
		return fmt.Errorf("%w: backend: %w", ErrInvalid, err)
	}

	return nil
}

// Kind returns the parsed backend. Call after Validate.
func (c Config) Kind() bitvec.Kind {
	k, _ := bitvec.ParseKind(c.Backend)

	return k
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
