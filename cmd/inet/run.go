// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/WtzLAS/inet/core"
	"github.com/WtzLAS/inet/syntax"
)

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "parse and evaluate a .inet source file",
	ArgsUsage: "<path.inet>",
	Action:    runAction,
}

func runAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("run requires exactly one <path.inet> argument", 1)
	}
	path := c.Args().First()

	cfg, err := configFromCLI(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger := setupLogger(cfg)

	src, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %s", path, err), 1)
	}

	defs, err := syntax.Parse(string(src))
	if err != nil {
		return cli.Exit(fmt.Sprintf("parsing %s: %s", path, err), 1)
	}

	builder := core.NewBuilder(1<<20, 64)
	driver := syntax.NewDriver(builder)
	if err := driver.Apply(defs, nil); err != nil {
		return cli.Exit(fmt.Sprintf("building %s: %s", path, err), 1)
	}

	metrics := core.NewMetrics(metricsRegistry)
	machine := builder.Seal(core.WithMetrics(metrics), core.WithLogger(logger))

	interactions, nameOps, err := machine.Eval(context.Background(), cfg.Workers)
	if err != nil {
		return reportEvalError(err)
	}

	fmt.Printf("interactions=%d name_ops=%d\n", interactions, nameOps)
	printReadout(machine, driver.Roots())
	return nil
}

// reportEvalError maps a core.Error to a non-zero exit code, per
// SPEC_FULL.md §3's "never a panic" error-handling contract.
func reportEvalError(err error) error {
	var cerr *core.Error
	if errors.As(err, &cerr) {
		return cli.Exit(fmt.Sprintf("eval failed: %s (%s)", cerr.Error(), cerr.Kind), 1)
	}
	return cli.Exit(fmt.Sprintf("eval failed: %s", err), 1)
}
