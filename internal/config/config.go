// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config builds cmd/inet's runtime configuration from flags, a
// config file and environment variables, the same pflag/viper/cast layering
// cmd/simulator's config package uses.
package config

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WorkersKey  = "workers"
	LogLevelKey = "log-level"
	LogFileKey  = "log-file"
	ConfigKey   = "config"

	envPrefix = "INET"
)

// Config is the fully resolved runtime configuration for cmd/inet.
type Config struct {
	// Workers is the number of reducer goroutines Machine.Eval launches.
	// Zero means "default to runtime.GOMAXPROCS(0)".
	Workers int
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// LogFile, if non-empty, additionally rotates logs through
	// lumberjack.v2 at this path.
	LogFile string
}

// BuildFlagSet declares cmd/inet's command-line flags.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("inet", pflag.ContinueOnError)
	fs.Int(WorkersKey, 0, "number of reducer workers (0 = GOMAXPROCS)")
	fs.String(LogLevelKey, "info", "log level: debug, info, warn, error")
	fs.String(LogFileKey, "", "rotate logs to this file in addition to stderr")
	fs.String(ConfigKey, "", "path to a config file (yaml/json/toml)")
	return fs
}

// BuildViper parses args against fs and layers in a config file (if named
// via --config) and INET_* environment variables, pflag/viper's usual
// precedence: flag > env > config file > default.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}
	return v, nil
}

// BuildConfig coerces v's bound values into a Config, using spf13/cast the
// way cmd/simulator's config package coerces viper's untyped values.
func BuildConfig(v *viper.Viper) (Config, error) {
	workers, err := cast.ToIntE(v.Get(WorkersKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", WorkersKey, err)
	}
	if workers < 0 {
		return Config{}, fmt.Errorf("%s: must be >= 0, got %d", WorkersKey, workers)
	}

	level, err := cast.ToStringE(v.Get(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", LogLevelKey, err)
	}
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("%s: unrecognized level %q", LogLevelKey, level)
	}

	logFile, err := cast.ToStringE(v.Get(LogFileKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", LogFileKey, err)
	}

	return Config{
		Workers:  workers,
		LogLevel: level,
		LogFile:  logFile,
	}, nil
}
