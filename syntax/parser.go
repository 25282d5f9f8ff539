// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports where and why parsing failed. Kind mirrors the nom
// ErrorKind values the Rust original surfaces, notably TooLarge for an
// arity literal that overflows int.
type ParseError struct {
	Pos  int
	Kind string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at byte %d (%s): %s", e.Pos, e.Kind, e.Msg)
}

// parser is a hand-written recursive-descent cursor over the source text.
// No parser-combinator library appears anywhere in the retrieved example
// corpus, so this translates src/syntax.rs's nom combinators into Go's
// idiomatic hand-rolled-cursor equivalent rather than reaching for a
// dependency the corpus gives no evidence of using (see DESIGN.md).
type parser struct {
	src string
	pos int
}

// Parse parses a full .inet source file into its list of definitions.
// At least one definition is required, matching src/syntax.rs's def
// (nom's many1).
func Parse(src string) ([]Definition, error) {
	p := &parser{src: src}
	var defs []Definition
	for {
		p.skipWS()
		if p.pos >= len(p.src) {
			break
		}
		def, err := p.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, &ParseError{Pos: 0, Kind: "many1", Msg: "expected at least one definition"}
	}
	return defs, nil
}

func (p *parser) definition() (Definition, error) {
	if p.lookingAt("#agent") {
		return p.agentDef()
	}
	if p.lookingAt("#rule") {
		return p.ruleDef()
	}
	return p.eqDef()
}

func (p *parser) lookingAt(tok string) bool {
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, tok) {
		return false
	}
	// No word-boundary check is made: '#' already disambiguates
	// #agent/#rule from identifiers, and "#agentX" is read as "#agent"
	// followed by the identifier "X".
	return true
}

func (p *parser) agentDef() (Definition, error) {
	p.advance(len("#agent"))
	p.skipWS()

	var decls []AgentDecl
	for {
		decl, err := p.agentDeclAtom()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)

		p.skipWS()
		if !p.consumeByte(',') {
			break
		}
		p.skipWS()
	}
	return AgentDef{Decls: decls}, nil
}

func (p *parser) agentDeclAtom() (AgentDecl, error) {
	name, err := p.identifier()
	if err != nil {
		return AgentDecl{}, err
	}
	p.skipWS()
	if !p.consumeByte(':') {
		return AgentDecl{}, &ParseError{Pos: p.pos, Kind: "tag", Msg: "expected ':' after agent name"}
	}
	p.skipWS()

	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return AgentDecl{}, &ParseError{Pos: p.pos, Kind: "digit1", Msg: "expected an arity"}
	}
	arity, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return AgentDecl{}, &ParseError{Pos: start, Kind: "TooLarge", Msg: "arity does not fit in an int"}
	}
	return AgentDecl{Name: name, Arity: arity}, nil
}

func (p *parser) ruleDef() (Definition, error) {
	p.advance(len("#rule"))
	p.skipWS()

	lhs, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.consumeString("><") {
		return nil, &ParseError{Pos: p.pos, Kind: "tag", Msg: "expected '><' in #rule"}
	}
	p.skipWS()
	rhs, err := p.term()
	if err != nil {
		return nil, err
	}
	return RuleDef{LHS: lhs, RHS: rhs}, nil
}

func (p *parser) eqDef() (Definition, error) {
	p.skipWS()
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.consumeByte('=') {
		return nil, &ParseError{Pos: p.pos, Kind: "tag", Msg: "expected '=' in equation"}
	}
	p.skipWS()
	rhs, err := p.term()
	if err != nil {
		return nil, err
	}
	return EqDef{LHS: lhs, RHS: rhs}, nil
}

// term parses identifier ('(' term (',' term)* ')')? — Ports is nil when
// there is no parenthesized list at all, and a non-nil (possibly empty)
// slice when there is.
func (p *parser) term() (Term, error) {
	name, err := p.identifier()
	if err != nil {
		return Term{}, err
	}
	if !p.consumeByte('(') {
		return Term{Name: name}, nil
	}

	ports := []Term{}
	p.skipWS()
	if !p.peekByte(')') {
		for {
			p.skipWS()
			sub, err := p.term()
			if err != nil {
				return Term{}, err
			}
			ports = append(ports, sub)
			p.skipWS()
			if !p.consumeByte(',') {
				break
			}
		}
	}
	p.skipWS()
	if !p.consumeByte(')') {
		return Term{}, &ParseError{Pos: p.pos, Kind: "tag", Msg: "expected ')'"}
	}
	return Term{Name: name, Ports: ports}, nil
}

func (p *parser) identifier() (string, error) {
	start := p.pos
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		return "", &ParseError{Pos: p.pos, Kind: "alpha1", Msg: "expected an identifier"}
	}
	p.pos++
	for p.pos < len(p.src) && isIdentCont(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// isIdentStart/isIdentCont implement spec.md §6's literal identifier
// grammar, [A-Za-z_][A-Za-z0-9_]*, rather than a unicode-letter superset.
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }
func isDigit(b byte) bool     { return b >= '0' && b <= '9' }

// skipWS consumes runs of space, tab, '\n' and '\r', matching nom's
// multispace0 (so "\r\n" line endings in the source are accepted).
func (p *parser) skipWS() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) consumeByte(b byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) peekByte(b byte) bool {
	return p.pos < len(p.src) && p.src[p.pos] == b
}

func (p *parser) consumeString(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) advance(n int) {
	p.pos += n
}
