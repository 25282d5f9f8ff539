// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/WtzLAS/inet/core"
	"github.com/WtzLAS/inet/syntax"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// printReadout resolves and prints every root the driver recorded,
// coloring the line by whether resolution succeeded, the same way the
// teacher's CLI output colors success/error state when writing to an
// interactive terminal.
func printReadout(m *core.Machine, roots []syntax.Root) {
	w, color := terminalWriter()
	for _, root := range roots {
		final, view, err := m.Resolve(root.Agent)
		if err != nil {
			fmt.Fprintf(w, "%s: %s\n", root.Label, colorize(color, colorRed, err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", root.Label, colorize(color, colorGreen, describe(final, view)))
	}
}

func describe(id core.AgentID, v *core.AgentView) string {
	if v.Kind == core.KindTag {
		return fmt.Sprintf("#%d (free name)", id)
	}
	return fmt.Sprintf("#%d (type %d, %d aux ports)", id, v.TypeID, len(v.Ports))
}

func colorize(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + colorReset
}
