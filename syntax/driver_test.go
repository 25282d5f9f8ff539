// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package syntax_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/WtzLAS/inet/core"
	"github.com/WtzLAS/inet/syntax"
)

var _ = Describe("Driver", func() {
	It("rejects a duplicate #agent declaration", func() {
		defs, err := syntax.Parse("#agent Z:0\n#agent Z:1")
		Expect(err).NotTo(HaveOccurred())

		b := core.NewBuilder(64, 2)
		d := syntax.NewDriver(b)
		Expect(d.Apply(defs, nil)).To(HaveOccurred())
	})

	It("rejects a #rule referencing an undeclared agent", func() {
		defs, err := syntax.Parse("#agent Z:0\n#rule Add(o, r) >< Z()")
		Expect(err).NotTo(HaveOccurred())

		b := core.NewBuilder(64, 2)
		d := syntax.NewDriver(b)
		Expect(d.Apply(defs, nil)).To(HaveOccurred())
	})

	It("rejects a #rule with no supplied RuleBody", func() {
		defs, err := syntax.Parse("#agent Z:0\n#agent Add:2\n#rule Add(o, r) >< Z()")
		Expect(err).NotTo(HaveOccurred())

		b := core.NewBuilder(64, 2)
		d := syntax.NewDriver(b)
		Expect(d.Apply(defs, nil)).To(HaveOccurred())
	})

	It("materializes a nested equation and evaluates it via a Peano addition built entirely from source text", func() {
		b := core.NewBuilder(256, 4)
		d := syntax.NewDriver(b)

		agentDefs, err := syntax.Parse("#agent Z:0\n#agent S:1\n#agent Add:2")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Apply(agentDefs, nil)).To(Succeed())

		sID, ok := d.TypeID("S")
		Expect(ok).To(BeTrue())
		addID, ok := d.TypeID("Add")
		Expect(ok).To(BeTrue())

		ruleDefs, err := syntax.Parse("#rule Add(o, r) >< Z()\n#rule Add(o, r) >< S(t)")
		Expect(err).NotTo(HaveOccurred())
		bodies := []syntax.RuleBody{
			{LHS: "Add", RHS: "Z", Fn: func(ctx *core.RuleContext) {
				out, rhs := ctx.LHSPorts[0], ctx.LHSPorts[1]
				ctx.Machine.NewEq(out, rhs)
				ctx.Machine.RemoveAgent(ctx.LHSID)
				ctx.Machine.RemoveAgent(ctx.RHSID)
			}},
			{LHS: "Add", RHS: "S", Fn: func(ctx *core.RuleContext) {
				out, rhs := ctx.LHSPorts[0], ctx.LHSPorts[1]
				tail := ctx.RHSPorts[0]
				newOut, err := ctx.Machine.NewTag()
				Expect(err).NotTo(HaveOccurred())
				_, err = ctx.Machine.NewAgent(addID, tail, []core.AgentID{newOut, rhs})
				Expect(err).NotTo(HaveOccurred())
				_, err = ctx.Machine.NewAgent(sID, out, []core.AgentID{newOut})
				Expect(err).NotTo(HaveOccurred())
				ctx.Machine.RemoveAgent(ctx.LHSID)
				ctx.Machine.RemoveAgent(ctx.RHSID)
			}},
		}
		Expect(d.Apply(ruleDefs, bodies)).To(Succeed())

		eqDefs, err := syntax.Parse("out = Add(S(S(Z())), S(Z()))")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Apply(eqDefs, nil)).To(Succeed())

		machine := b.Seal()
		interactions, _, err := machine.Eval(context.Background(), 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(interactions).To(Equal(uint64(3)))
	})
})
