// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package syntax

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/WtzLAS/inet/core"
)

// DriverError reports a problem mapping parsed Definitions onto a
// core.Builder: an undeclared type name, a duplicate declaration, or a
// #rule with no matching RuleBody supplied by the caller.
type DriverError struct {
	Msg string
}

func (e *DriverError) Error() string { return e.Msg }

// RuleBody supplies the executable rewrite for a #rule declaration. The
// grammar itself has no body syntax (src/syntax.rs and
// inet-compiler/src/parser.rs's Def::Rule carries only term *shapes*, used
// here only for their outermost type names), so a rule's actual logic is
// always Go code the caller hands the Driver — the same way
// inet-example/src/main.rs wires its Add rules by hand against a
// MachineBuilder. See DESIGN.md's Open Questions.
type RuleBody struct {
	LHS, RHS string
	Fn       core.RuleFn
}

// Root names one side of a top-level equation, for callers (such as
// cmd/inet) that want to print a readout of every root once eval finishes.
type Root struct {
	Label string
	Agent core.AgentID
}

// Driver maps a parsed .inet source file onto a core.Builder:
// AgentDef -> Builder.NewType, RuleDef -> Builder.NewRule (paired with a
// caller-supplied RuleBody), EqDef -> a materialized initial graph wired
// with Builder.NewEq.
type Driver struct {
	builder *core.Builder
	types   map[string]core.TypeID
	seen    mapset.Set[string]
	roots   []Root
}

// NewDriver returns a Driver that registers against b.
func NewDriver(b *core.Builder) *Driver {
	return &Driver{
		builder: b,
		types:   make(map[string]core.TypeID),
		seen:    mapset.NewThreadUnsafeSet[string](),
	}
}

// Roots returns, in the order they were applied, one Root per side of every
// EqDef processed so far.
func (d *Driver) Roots() []Root {
	return d.roots
}

// TypeID returns the type id registered for an agent name declared via an
// earlier AgentDef, if any.
func (d *Driver) TypeID(name string) (core.TypeID, bool) {
	id, ok := d.types[name]
	return id, ok
}

// Apply walks defs in order, registering types, rules and equations.
func (d *Driver) Apply(defs []Definition, bodies []RuleBody) error {
	bodyIndex := make(map[[2]string]core.RuleFn, len(bodies))
	for _, rb := range bodies {
		bodyIndex[[2]string{rb.LHS, rb.RHS}] = rb.Fn
	}

	for _, def := range defs {
		switch def := def.(type) {
		case AgentDef:
			if err := d.applyAgentDef(def); err != nil {
				return err
			}
		case RuleDef:
			if err := d.applyRuleDef(def, bodyIndex); err != nil {
				return err
			}
		case EqDef:
			if err := d.applyEqDef(def); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver) applyAgentDef(def AgentDef) error {
	for _, decl := range def.Decls {
		if d.seen.Contains(decl.Name) {
			return &DriverError{Msg: fmt.Sprintf("duplicate agent declaration %q", decl.Name)}
		}
		d.seen.Add(decl.Name)
		d.types[decl.Name] = d.builder.NewType()
	}
	return nil
}

func (d *Driver) applyRuleDef(def RuleDef, bodyIndex map[[2]string]core.RuleFn) error {
	lhsType, ok := d.types[def.LHS.Name]
	if !ok {
		return &DriverError{Msg: fmt.Sprintf("#rule references undeclared agent %q", def.LHS.Name)}
	}
	rhsType, ok := d.types[def.RHS.Name]
	if !ok {
		return &DriverError{Msg: fmt.Sprintf("#rule references undeclared agent %q", def.RHS.Name)}
	}
	fn, ok := bodyIndex[[2]string{def.LHS.Name, def.RHS.Name}]
	if !ok {
		return &DriverError{Msg: fmt.Sprintf("no RuleBody supplied for #rule %s >< %s", def.LHS.Name, def.RHS.Name)}
	}
	d.builder.NewRule(lhsType, rhsType, fn)
	return nil
}

func (d *Driver) applyEqDef(def EqDef) error {
	scope := make(map[string]core.AgentID)
	lhsID, err := d.materialize(def.LHS, scope)
	if err != nil {
		return err
	}
	rhsID, err := d.materialize(def.RHS, scope)
	if err != nil {
		return err
	}
	d.builder.NewEq(lhsID, rhsID)
	d.roots = append(d.roots, Root{Label: termLabel(def.LHS), Agent: lhsID}, Root{Label: termLabel(def.RHS), Agent: rhsID})
	return nil
}

// termLabel renders t's outermost shape for diagnostic purposes: a bare
// name prints as-is, an applied term prints as "Name(...)".
func termLabel(t Term) string {
	if t.Ports == nil {
		return t.Name
	}
	return t.Name + "(...)"
}

// materialize returns the AgentID denoted by t: a bare name is a variable
// (reused if already bound in scope, otherwise a freshly created tag), and
// an applied term creates a fresh agent of the named type, wired through a
// fresh tag that stands for the agent's principal port so it can be handed
// back as a value for whatever enclosing term (or the equation itself)
// references it.
func (d *Driver) materialize(t Term, scope map[string]core.AgentID) (core.AgentID, error) {
	if t.Ports == nil {
		if id, ok := scope[t.Name]; ok {
			return id, nil
		}
		id, err := d.builder.NewTag()
		if err != nil {
			return 0, err
		}
		scope[t.Name] = id
		return id, nil
	}

	typeID, ok := d.types[t.Name]
	if !ok {
		return 0, &DriverError{Msg: fmt.Sprintf("undeclared agent %q in equation", t.Name)}
	}

	aux := make([]core.AgentID, len(t.Ports))
	for i, sub := range t.Ports {
		id, err := d.materialize(sub, scope)
		if err != nil {
			return 0, err
		}
		aux[i] = id
	}

	principal, err := d.builder.NewTag()
	if err != nil {
		return 0, err
	}
	if _, err := d.builder.NewAgent(typeID, principal, aux); err != nil {
		return 0, err
	}
	return principal, nil
}
