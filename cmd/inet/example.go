// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/WtzLAS/inet/core"
)

var exampleCommand = &cli.Command{
	Name:  "example",
	Usage: "run a built-in example program",
	Subcommands: []*cli.Command{
		exampleAddCommand,
	},
}

var exampleAddCommand = &cli.Command{
	Name:      "add",
	Usage:     "build two Peano-encoded numbers, add them, and print the result",
	ArgsUsage: "<n> <m>",
	Action:    exampleAddAction,
}

// exampleAddAction is inet-example/src/main.rs ported to the core package:
// Z (arity 0), S (arity 1, tail aux), Add (arity 2, out/rhs aux); rule
// Add><Z unifies out with rhs, rule Add><S peels one S off the left operand
// and recurses.
func exampleAddAction(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("example add requires exactly two arguments: <n> <m>", 1)
	}
	n, err := strconv.Atoi(c.Args().Get(0))
	if err != nil || n < 0 {
		return cli.Exit(fmt.Sprintf("invalid n: %s", c.Args().Get(0)), 1)
	}
	m, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || m < 0 {
		return cli.Exit(fmt.Sprintf("invalid m: %s", c.Args().Get(1)), 1)
	}

	cfg, err := configFromCLI(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger := setupLogger(cfg)

	builder := core.NewBuilder(4096, 8)
	zType := builder.NewType()
	sType := builder.NewType()
	addType := builder.NewType()

	builder.NewRule(addType, zType, func(ctx *core.RuleContext) {
		out, rhs := ctx.LHSPorts[0], ctx.LHSPorts[1]
		ctx.Machine.NewEq(out, rhs)
		ctx.Machine.RemoveAgent(ctx.LHSID)
		ctx.Machine.RemoveAgent(ctx.RHSID)
	})
	builder.NewRule(addType, sType, func(ctx *core.RuleContext) {
		out, rhs := ctx.LHSPorts[0], ctx.LHSPorts[1]
		tail := ctx.RHSPorts[0]
		newOut, err := ctx.Machine.NewTag()
		if err != nil {
			return
		}
		if _, err := ctx.Machine.NewAgent(addType, tail, []core.AgentID{newOut, rhs}); err != nil {
			return
		}
		if _, err := ctx.Machine.NewAgent(sType, out, []core.AgentID{newOut}); err != nil {
			return
		}
		ctx.Machine.RemoveAgent(ctx.LHSID)
		ctx.Machine.RemoveAgent(ctx.RHSID)
	})

	lTag, err := builder.NewTag()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	rTag, err := builder.NewTag()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	outTag, err := builder.NewTag()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if _, err := builder.NewAgent(addType, lTag, []core.AgentID{outTag, rTag}); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := insertNumber(builder, zType, sType, lTag, n); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := insertNumber(builder, zType, sType, rTag, m); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	metrics := core.NewMetrics(metricsRegistry)
	machine := builder.Seal(core.WithMetrics(metrics), core.WithLogger(logger))

	interactions, nameOps, err := machine.Eval(context.Background(), cfg.Workers)
	if err != nil {
		return reportEvalError(err)
	}

	result, err := decodePeano(machine, zType, outTag)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("%d + %d = %d\n", n, m, result)
	fmt.Printf("interactions=%d name_ops=%d\n", interactions, nameOps)
	return nil
}

// insertNumber wires n nested S agents terminated by a Z agent onto port,
// exactly inet-example/src/main.rs's insert_number (see core/peano_test.go's
// copy of the same helper against the Builder API).
func insertNumber(b *core.Builder, zType, sType core.TypeID, port core.AgentID, n int) error {
	for i := 0; i < n; i++ {
		next, err := b.NewTag()
		if err != nil {
			return err
		}
		if _, err := b.NewAgent(sType, port, []core.AgentID{next}); err != nil {
			return err
		}
		port = next
	}
	_, err := b.NewAgent(zType, port, nil)
	return err
}

// decodePeano walks the resolved chain rooted at root and counts S agents
// until it reaches Z.
func decodePeano(m *core.Machine, zType core.TypeID, root core.AgentID) (int, error) {
	count := 0
	cur := root
	for {
		_, view, err := m.Resolve(cur)
		if err != nil {
			return 0, err
		}
		if view.Kind == core.KindCustom && view.TypeID == zType {
			return count, nil
		}
		count++
		cur = view.Ports[0]
	}
}
