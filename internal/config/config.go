// Package config loads the benchmark settings from files, the environment and flags.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

const ErrInvalidConfig errorkit.Error = "invalid configuration"

const (
	EnvPrefix = "LINEARBENCH"
	FileName  = "linearbench"
)

const (
	KeyRepeat      = "repeat"
	KeyOperations  = "operations"
	KeyOutput      = "output"
	KeyHistory     = "history"
	KeyLogLevel    = "log_level"
	KeyPayload     = "payload"
	KeyForceTiming = "force_timing"
)

type Config struct {
	Repeat      int    `mapstructure:"repeat"`
	Operations  int    `mapstructure:"operations"`
	Output      string `mapstructure:"output"`
	History     string `mapstructure:"history"`
	LogLevel    string `mapstructure:"log_level"`
	Payload     string `mapstructure:"payload"`
	ForceTiming bool   `mapstructure:"force_timing"`
}

// Bench returns the part of the configuration the benchmark runner needs.
func (c Config) Bench() bench.Config {
	return bench.Config{
		Repeat:      c.Repeat,
		Operations:  c.Operations,
		Payload:     c.Payload,
		ForceTiming: c.ForceTiming,
	}
}

func (c Config) Level() logging.Level {
	return logging.Level(zerokit.Coalesce(strings.ToLower(c.LogLevel), string(logging.LevelInfo)))
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRepeat, 1)
	v.SetDefault(KeyOperations, bench.DefaultOperations)
	v.SetDefault(KeyOutput, bench.FormatText)
	v.SetDefault(KeyHistory, "")
	v.SetDefault(KeyLogLevel, string(logging.LevelInfo))
	v.SetDefault(KeyPayload, bench.PayloadFixed)
	v.SetDefault(KeyForceTiming, false)
}

// Load reads the configuration into v and decodes it.
// When path is empty, the config file is searched in the working directory and in $HOME/.linearbench,
// and a missing file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, ErrInvalidConfig.Wrap(err)
	}
	return c, c.Validate()
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.linearbench")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
		return nil
	}

	if filepath.Ext(path) != ".jsonc" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	v.SetConfigType("json")
	return v.ReadConfig(bytes.NewReader(jsonc.ToJSON(data)))
}

func (c Config) Validate() error {
	if c.Repeat < 0 {
		return ErrInvalidConfig.F("%s must not be negative, got %d", KeyRepeat, c.Repeat)
	}
	if c.Operations < 1 {
		return ErrInvalidConfig.F("%s must be at least 1, got %d", KeyOperations, c.Operations)
	}
	switch c.Output {
	case bench.FormatText, bench.FormatJSON, bench.FormatYAML:
	default:
		return ErrInvalidConfig.F("unknown %s format: %q", KeyOutput, c.Output)
	}
	switch c.Payload {
	case bench.PayloadFixed, bench.PayloadRandom:
	default:
		return ErrInvalidConfig.F("unknown %s kind: %q", KeyPayload, c.Payload)
	}
	switch c.Level() {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
	default:
		return ErrInvalidConfig.F("unknown %s: %q", KeyLogLevel, c.LogLevel)
	}
	return nil
}
