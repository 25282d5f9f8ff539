// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package syntax

import (
	"strconv"
	"strings"
)

// Print renders defs back to source text. It is the right inverse of
// Parse: Parse(Print(defs)) reproduces defs (spec.md §8 property 5),
// preserving the Ports == nil vs Ports == []Term{} distinction.
func Print(defs []Definition) string {
	var b strings.Builder
	for i, d := range defs {
		if i > 0 {
			b.WriteByte('\n')
		}
		printDefinition(&b, d)
	}
	return b.String()
}

func printDefinition(b *strings.Builder, d Definition) {
	switch d := d.(type) {
	case AgentDef:
		b.WriteString("#agent ")
		for i, decl := range d.Decls {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(decl.Name)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(decl.Arity))
		}
	case RuleDef:
		b.WriteString("#rule ")
		printTerm(b, d.LHS)
		b.WriteString(" >< ")
		printTerm(b, d.RHS)
	case EqDef:
		printTerm(b, d.LHS)
		b.WriteString(" = ")
		printTerm(b, d.RHS)
	}
}

func printTerm(b *strings.Builder, t Term) {
	b.WriteString(t.Name)
	if t.Ports == nil {
		return
	}
	b.WriteByte('(')
	for i, p := range t.Ports {
		if i > 0 {
			b.WriteString(", ")
		}
		printTerm(b, p)
	}
	b.WriteByte(')')
}
