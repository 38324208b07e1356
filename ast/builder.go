package ast

import (
	"github.com/npillmayer/lookahead"
)

// Builder is a helper for constructing grammars programmatically.
// Rules are recorded first and turned into a grammar tree by Grammar(),
// which allows rules to be referenced before they are defined.
//
//    b := ast.NewBuilder("G")
//    b.LHS("S").N("A").T("a").End()
//    b.LHS("S").Block(func(bb *ast.BlockBuilder) {
//        bb.Alt().T("b").End()
//        bb.Alt().Epsilon()
//    }).End()
//    b.LHS("A").T("c").End()
//    g, err := b.Grammar()
//
// The first LHS is the start rule.
type Builder struct {
	name      string
	lhs       []string             // nonterminals in order of definition
	rules     map[string][]*altDef // alternatives per nonterminal
	terminals []string             // terminals in order of first use
	isTerm    map[string]bool
}

type symDef struct {
	name  string
	term  bool
	block *blockDef // non-nil for blocks
}

type altDef struct {
	syms []symDef
}

type blockDef struct {
	alts []*altDef
}

// NewBuilder creates a builder for a grammar with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		rules:  make(map[string][]*altDef),
		isTerm: make(map[string]bool),
	}
}

// LHS starts a new alternative for nonterminal name.
func (b *Builder) LHS(name string) *RuleBuilder {
	if _, ok := b.rules[name]; !ok {
		b.lhs = append(b.lhs, name)
	}
	alt := &altDef{}
	b.rules[name] = append(b.rules[name], alt)
	return &RuleBuilder{b: b, alt: alt}
}

// RuleBuilder collects the terms of one alternative.
type RuleBuilder struct {
	b   *Builder
	alt *altDef
}

// N appends a nonterminal.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.alt.syms = append(rb.alt.syms, symDef{name: name})
	return rb
}

// T appends a terminal. Terminals are declared on first use.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if _, ok := rb.b.isTerm[name]; !ok {
		rb.b.terminals = append(rb.b.terminals, name)
		rb.b.isTerm[name] = true
	}
	rb.alt.syms = append(rb.alt.syms, symDef{name: name, term: true})
	return rb
}

// Block appends a block. Its alternatives are defined by f.
func (rb *RuleBuilder) Block(f func(*BlockBuilder)) *RuleBuilder {
	block := &blockDef{}
	if f != nil {
		f(&BlockBuilder{b: rb.b, block: block})
	}
	rb.alt.syms = append(rb.alt.syms, symDef{block: block})
	return rb
}

// End finishes an alternative.
func (rb *RuleBuilder) End() *Builder {
	return rb.b
}

// Epsilon finishes an alternative, which has to be empty.
func (rb *RuleBuilder) Epsilon() *Builder {
	if len(rb.alt.syms) > 0 {
		panic(lookahead.InvalidArgument("ast.Epsilon", "ε-alternative has terms"))
	}
	return rb.b
}

// BlockBuilder collects the alternatives of a block.
type BlockBuilder struct {
	b     *Builder
	block *blockDef
}

// Alt starts a new alternative of the block.
func (bb *BlockBuilder) Alt() *RuleBuilder {
	alt := &altDef{}
	bb.block.alts = append(bb.block.alts, alt)
	return &RuleBuilder{b: bb.b, alt: alt}
}

// Grammar checks the rules and creates the grammar tree.
// Errors are of kind lookahead.ErrInvalidArgument.
func (b *Builder) Grammar() (*Grammar, error) {
	if err := b.check(); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	g := NewGrammar(b.name)
	for _, name := range b.lhs {
		g.NewNonterminalRule(name)
	}
	for _, name := range b.terminals {
		g.NewTerminalRule(name)
	}
	for _, name := range b.lhs {
		r, _ := g.NonterminalRule(name)
		for _, def := range b.rules[name] {
			b.fill(g, r.NewAlternative(), def)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.Dump()
	return g, nil
}

func (b *Builder) fill(g *Grammar, a *Alternative, def *altDef) {
	for _, sym := range def.syms {
		switch {
		case sym.block != nil:
			block := a.AddBlock()
			for _, bdef := range sym.block.alts {
				b.fill(g, block.NewAlternative(), bdef)
			}
		case sym.term:
			r, _ := g.TerminalRule(sym.name)
			a.AddTerminal(r)
		default:
			r, _ := g.NonterminalRule(sym.name)
			a.AddNonterminal(r)
		}
	}
}

func (b *Builder) check() error {
	const op = "ast.Builder"
	if len(b.lhs) == 0 {
		return lookahead.InvalidArgument(op, "grammar %q has no rules", b.name)
	}
	for _, name := range b.lhs {
		if name == "" {
			return lookahead.InvalidArgument(op, "nonterminal with empty name")
		}
		if b.isTerm[name] {
			return lookahead.InvalidArgument(op, "%q used as terminal and nonterminal", name)
		}
		if name == lookahead.EOFName {
			return lookahead.InvalidArgument(op, "%q is reserved", name)
		}
	}
	if b.isTerm[""] {
		return lookahead.InvalidArgument(op, "terminal with empty name")
	}
	if b.isTerm[lookahead.EOFName] {
		return lookahead.InvalidArgument(op, "%q is reserved", lookahead.EOFName)
	}
	for _, name := range b.lhs {
		for _, alt := range b.rules[name] {
			if err := b.checkAlt(name, alt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) checkAlt(lhs string, alt *altDef) error {
	const op = "ast.Builder"
	for _, sym := range alt.syms {
		switch {
		case sym.block != nil:
			if len(sym.block.alts) == 0 {
				return lookahead.InvalidArgument(op, "rule %q has a block without alternatives", lhs)
			}
			for _, a := range sym.block.alts {
				if err := b.checkAlt(lhs, a); err != nil {
					return err
				}
			}
		case !sym.term:
			if _, ok := b.rules[sym.name]; !ok {
				return lookahead.InvalidArgument(op, "rule %q references undefined nonterminal %q", lhs, sym.name)
			}
		}
	}
	return nil
}
