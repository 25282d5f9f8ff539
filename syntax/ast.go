// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package syntax implements the textual grammar described in spec.md §6: a
// small language of agent declarations, rule declarations and equations,
// carried over from the Rust original's src/syntax.rs and
// inet-compiler/src/parser.rs.
package syntax

// Term is either a bare identifier (Ports == nil, e.g. a variable name) or
// an identifier applied to zero or more sub-terms in parentheses
// (Ports != nil, possibly empty, e.g. "Z()"). Preserving the nil-vs-empty
// distinction matters for the round-trip property (spec.md §8 property 5):
// "x" and "x()" are different terms that must print back differently.
type Term struct {
	Name  string
	Ports []Term
}

// HasPorts reports whether t was written with parentheses at all.
func (t Term) HasPorts() bool { return t.Ports != nil }

// Definition is one top-level statement of a .inet source file.
type Definition interface {
	isDefinition()
}

// AgentDecl is a single "name:arity" entry of an AgentDef.
type AgentDecl struct {
	Name  string
	Arity int
}

// AgentDef declares one or more agent types: "#agent Name:arity, ...".
type AgentDef struct {
	Decls []AgentDecl
}

func (AgentDef) isDefinition() {}

// RuleDef declares that two term shapes interact: "#rule term >< term".
type RuleDef struct {
	LHS, RHS Term
}

func (RuleDef) isDefinition() {}

// EqDef declares an initial equation between two terms: "term = term".
type EqDef struct {
	LHS, RHS Term
}

func (EqDef) isDefinition() {}
