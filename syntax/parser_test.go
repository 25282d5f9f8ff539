// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package syntax_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/WtzLAS/inet/syntax"
)

var _ = Describe("Parse", func() {
	It("parses multi-line #agent declarations and an equation, matching src/syntax.rs's parser_multiline_statement_test", func() {
		defs, err := syntax.Parse("#agent Add:2, Z: 1 , E :0\n#agent A:2\r\nA(c)=A(r)")
		Expect(err).NotTo(HaveOccurred())
		Expect(defs).To(Equal([]syntax.Definition{
			syntax.AgentDef{Decls: []syntax.AgentDecl{{Name: "Add", Arity: 2}, {Name: "Z", Arity: 1}, {Name: "E", Arity: 0}}},
			syntax.AgentDef{Decls: []syntax.AgentDecl{{Name: "A", Arity: 2}}},
			syntax.EqDef{
				LHS: syntax.Term{Name: "A", Ports: []syntax.Term{{Name: "c"}}},
				RHS: syntax.Term{Name: "A", Ports: []syntax.Term{{Name: "r"}}},
			},
		}))
	})

	It("distinguishes a bare name from an empty-parens application", func() {
		defs, err := syntax.Parse("x = Z()")
		Expect(err).NotTo(HaveOccurred())
		eq := defs[0].(syntax.EqDef)
		Expect(eq.LHS.Ports).To(BeNil())
		Expect(eq.RHS.Ports).To(Equal([]syntax.Term{}))
	})

	It("parses #rule declarations", func() {
		defs, err := syntax.Parse("#rule Add(o, r) >< Z()")
		Expect(err).NotTo(HaveOccurred())
		rule := defs[0].(syntax.RuleDef)
		Expect(rule.LHS.Name).To(Equal("Add"))
		Expect(rule.RHS.Name).To(Equal("Z"))
	})

	It("rejects an arity literal that overflows int", func() {
		_, err := syntax.Parse("#agent Big:99999999999999999999999999999")
		Expect(err).To(HaveOccurred())
		var perr *syntax.ParseError
		Expect(err).To(BeAssignableToTypeOf(perr))
	})

	It("requires at least one definition", func() {
		_, err := syntax.Parse("   ")
		Expect(err).To(HaveOccurred())
	})
})

var _ = DescribeTable("round trip: parse(print(d)) == d",
	func(src string) {
		defs, err := syntax.Parse(src)
		Expect(err).NotTo(HaveOccurred())

		printed := syntax.Print(defs)
		reparsed, err := syntax.Parse(printed)
		Expect(err).NotTo(HaveOccurred())

		Expect(reparsed).To(Equal(defs))
	},
	Entry("agent declarations", "#agent Z:0, S:1, Add:2"),
	Entry("rule declaration", "#rule Add(o, r) >< S(t)"),
	Entry("bare-name equation", "x = y"),
	Entry("nested application equation", "out = Add(S(Z()), S(S(Z())))"),
	Entry("empty-parens application", "x = E()"),
)
