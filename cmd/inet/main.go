// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// inet is a CLI for the interaction-net evaluator in github.com/WtzLAS/inet/core:
// it can evaluate a .inet source file, or run the built-in Peano-arithmetic
// addition example end to end.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/WtzLAS/inet/internal/config"
)

const clientIdentifier = "inet"

var app = &cli.App{
	Name:    clientIdentifier,
	Usage:   "evaluate interaction-net programs",
	Version: "0.1.0",
}

func init() {
	app.Flags = []cli.Flag{
		&cli.IntFlag{Name: config.WorkersKey, Value: 0, Usage: "number of reducer workers (0 = GOMAXPROCS)"},
		&cli.StringFlag{Name: config.LogLevelKey, Value: "info", Usage: "log level: debug, info, warn, error"},
		&cli.StringFlag{Name: config.LogFileKey, Usage: "rotate logs to this file in addition to stderr"},
	}
	app.Commands = []*cli.Command{
		runCommand,
		exampleCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configFromCLI rebuilds internal/config's Config from the urfave/cli
// context's already-parsed flag values, so both the config package and
// cmd/inet agree on the same flag names and defaults.
func configFromCLI(c *cli.Context) (config.Config, error) {
	fs := config.BuildFlagSet()
	args := make([]string, 0, 6)
	if c.IsSet(config.WorkersKey) {
		args = append(args, "--"+config.WorkersKey, strconv.Itoa(c.Int(config.WorkersKey)))
	}
	if c.IsSet(config.LogLevelKey) {
		args = append(args, "--"+config.LogLevelKey, c.String(config.LogLevelKey))
	}
	if c.IsSet(config.LogFileKey) {
		args = append(args, "--"+config.LogFileKey, c.String(config.LogFileKey))
	}
	v, err := config.BuildViper(fs, args)
	if err != nil {
		return config.Config{}, err
	}
	return config.BuildConfig(v)
}

var metricsRegistry = prometheus.NewRegistry()
