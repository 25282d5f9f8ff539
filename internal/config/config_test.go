// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WtzLAS/inet/internal/config"
)

func TestBuildConfigDefaults(t *testing.T) {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, nil)
	require.NoError(t, err)

	cfg, err := config.BuildConfig(v)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "", cfg.LogFile)
}

func TestBuildConfigFromFlags(t *testing.T) {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, []string{"--workers", "4", "--log-level", "debug", "--log-file", "/tmp/inet.log"})
	require.NoError(t, err)

	cfg, err := config.BuildConfig(v)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/tmp/inet.log", cfg.LogFile)
}

func TestBuildConfigRejectsNegativeWorkers(t *testing.T) {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, []string{"--workers", "-1"})
	require.NoError(t, err)

	_, err = config.BuildConfig(v)
	require.Error(t, err)
}

func TestBuildConfigRejectsUnknownLogLevel(t *testing.T) {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, []string{"--log-level", "verbose"})
	require.NoError(t, err)

	_, err = config.BuildConfig(v)
	require.Error(t, err)
}
