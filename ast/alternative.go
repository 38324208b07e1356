package ast

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lookahead"
)

// Alternative is a sequence of terms. An empty alternative derives ε.
type Alternative struct {
	node
	Slots
	g     *Grammar
	terms []Term
}

var _ Node = &Alternative{}

// newAlternative creates an alternative for a multiplex node. g.mu must be held.
func (g *Grammar) newAlternative(owner Multiplex, index int) *Alternative {
	a := &Alternative{g: g}
	a.node = node{
		id:     g.nextID(),
		kind:   AlternativeKind,
		name:   fmt.Sprintf("%s/%d", owner.Name(), index),
		parent: owner,
	}
	g.register(a)
	return a
}

// Multiplex returns the rule or block a holds an alternative of.
func (a *Alternative) Multiplex() Multiplex {
	return a.parent.(Multiplex)
}

// Terms returns the terms of a.
func (a *Alternative) Terms() []Term {
	return a.terms
}

// Term returns the term at position i.
func (a *Alternative) Term(i int) Term {
	if i < 0 || i >= len(a.terms) {
		panic(lookahead.OutOfRange("ast.Term", "position %d, length is %d", i, len(a.terms)))
	}
	return a.terms[i]
}

// Len returns the number of terms.
func (a *Alternative) Len() int {
	return len(a.terms)
}

// IsEmpty is true for an ε-alternative.
func (a *Alternative) IsEmpty() bool {
	return len(a.terms) == 0
}

// AddTerminal appends an instance of rule r to a.
func (a *Alternative) AddTerminal(r *TerminalRule) *Terminal {
	if r == nil || r.g != a.g {
		panic(lookahead.InvalidArgument("ast.AddTerminal", "rule is nil or foreign"))
	}
	a.g.mu.Lock()
	defer a.g.mu.Unlock()
	t := &Terminal{g: a.g, rule: r.id}
	t.node = node{id: a.g.nextID(), kind: TerminalKind, parent: a}
	a.terms = append(a.terms, t)
	r.instances = append(r.instances, t.id)
	a.g.register(t)
	return t
}

// AddNonterminal appends an instance of rule r to a.
func (a *Alternative) AddNonterminal(r *NonterminalRule) *Nonterminal {
	if r == nil || r.g != a.g {
		panic(lookahead.InvalidArgument("ast.AddNonterminal", "rule is nil or foreign"))
	}
	a.g.mu.Lock()
	defer a.g.mu.Unlock()
	n := &Nonterminal{g: a.g, rule: r.id}
	n.node = node{id: a.g.nextID(), kind: NonterminalKind, parent: a}
	a.terms = append(a.terms, n)
	r.instances = append(r.instances, n.id)
	a.g.register(n)
	return n
}

// AddBlock appends a new block without alternatives to a.
func (a *Alternative) AddBlock() *Block {
	a.g.mu.Lock()
	defer a.g.mu.Unlock()
	b := &Block{g: a.g}
	b.node = node{
		id:     a.g.nextID(),
		kind:   BlockKind,
		name:   fmt.Sprintf("%s#%d", a.ruleName(), len(a.g.blocks)+1),
		parent: a,
	}
	a.terms = append(a.terms, b)
	a.g.blocks = append(a.g.blocks, b)
	a.g.register(b)
	return b
}

// ruleName returns the name of the nonterminal rule a is nested in.
func (a *Alternative) ruleName() string {
	var n Node = a
	for n != nil {
		if r, ok := n.(*NonterminalRule); ok {
			return r.name
		}
		n = n.Parent()
	}
	return "?"
}

// String prints the terms of a, e.g., "A ( b | ε ) c".
func (a *Alternative) String() string {
	if len(a.terms) == 0 {
		return "ε"
	}
	syms := make([]string, len(a.terms))
	for i, t := range a.terms {
		if b, ok := t.(*Block); ok {
			syms[i] = b.String()
			continue
		}
		syms[i] = t.Name()
	}
	return strings.Join(syms, " ")
}

// --- Blocks ----------------------------------------------------------------

// Block is a parenthesized group of alternatives, occurring as a term.
type Block struct {
	node
	Slots
	TermSlots
	multiplex
	g *Grammar
}

var _ Term = &Block{}
var _ Multiplex = &Block{}

// Alternative returns the alternative containing b.
func (b *Block) Alternative() *Alternative {
	return b.parent.(*Alternative)
}

// NewAlternative appends a new, empty alternative to b.
func (b *Block) NewAlternative() *Alternative {
	b.g.mu.Lock()
	defer b.g.mu.Unlock()
	a := b.g.newAlternative(b, len(b.alternatives))
	b.alternatives = append(b.alternatives, a)
	return a
}

func (b *Block) String() string {
	alts := make([]string, len(b.alternatives))
	for i, a := range b.alternatives {
		alts[i] = a.String()
	}
	return "( " + strings.Join(alts, " | ") + " )"
}
