package ast

import (
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/linear"
	"github.com/npillmayer/lookahead/symset"
)

// Term is an element of an alternative: *Terminal, *Nonterminal or *Block.
type Term interface {
	Node
	Alternative() *Alternative
	PrefixNullable() bool
	SuffixNullable() bool
	SuffixFirst() *symset.Set
	SuffixFirstK() *kseq.Set
	SuffixFirstKL() *linear.Set
	SetPrefixNullable(bool)
	SetSuffixNullable(bool)
	SetSuffixFirst(*symset.Set)
	SetSuffixFirstK(*kseq.Set)
	SetSuffixFirstKL(*linear.Set)
	termSlots() *TermSlots
}

// TermSlots holds the analysis results which depend on the position of a term
// within its alternative. Contrary to Slots, these are owned by instances, too.
type TermSlots struct {
	prefixNullable bool        // all terms left of this are nullable
	suffixNullable bool        // all terms right of this are nullable
	suffixFirst    *symset.Set // lookahead contributed by the terms right of this
	suffixFirstK   *kseq.Set
	suffixFirstKL  *linear.Set
}

// PrefixNullable is true if all terms left of this one are nullable.
func (ts *TermSlots) PrefixNullable() bool { return ts.prefixNullable }

// SuffixNullable is true if all terms right of this one are nullable.
func (ts *TermSlots) SuffixNullable() bool { return ts.suffixNullable }

// SuffixFirst returns FIRST of the terms right of this one.
func (ts *TermSlots) SuffixFirst() *symset.Set { return ts.suffixFirst }

// SuffixFirstK returns FIRSTk of the terms right of this one.
func (ts *TermSlots) SuffixFirstK() *kseq.Set { return ts.suffixFirstK }

// SuffixFirstKL returns FIRSTkl of the terms right of this one.
func (ts *TermSlots) SuffixFirstKL() *linear.Set { return ts.suffixFirstKL }

// SetPrefixNullable stores PrefixNullable.
func (ts *TermSlots) SetPrefixNullable(b bool) { ts.prefixNullable = b }

// SetSuffixNullable stores SuffixNullable.
func (ts *TermSlots) SetSuffixNullable(b bool) { ts.suffixNullable = b }

// SetSuffixFirst stores SuffixFirst.
func (ts *TermSlots) SetSuffixFirst(s *symset.Set) { ts.suffixFirst = s }

// SetSuffixFirstK stores SuffixFirstK.
func (ts *TermSlots) SetSuffixFirstK(s *kseq.Set) { ts.suffixFirstK = s }

// SetSuffixFirstKL stores SuffixFirstKL.
func (ts *TermSlots) SetSuffixFirstKL(s *linear.Set) { ts.suffixFirstKL = s }

func (ts *TermSlots) termSlots() *TermSlots { return ts }

// --- Instances -------------------------------------------------------------

// Terminal is an occurrence of a terminal within an alternative.
type Terminal struct {
	node
	TermSlots
	g    *Grammar
	rule int
}

var _ Term = &Terminal{}

// Rule returns the terminal rule this instance refers to.
func (t *Terminal) Rule() *TerminalRule {
	return t.g.mustNode(t.rule).(*TerminalRule)
}

// Alternative returns the alternative containing t.
func (t *Terminal) Alternative() *Alternative {
	return t.parent.(*Alternative)
}

// Name returns the name of the terminal.
func (t *Terminal) Name() string { return t.Rule().Name() }

// Nullable forwards to the rule.
func (t *Terminal) Nullable() bool { return t.Rule().Nullable() }

// Productive forwards to the rule.
func (t *Terminal) Productive() bool { return t.Rule().Productive() }

// Reachable forwards to the rule.
func (t *Terminal) Reachable() bool { return t.Rule().Reachable() }

// First forwards to the rule.
func (t *Terminal) First() *symset.Set { return t.Rule().First() }

// Follow forwards to the rule.
func (t *Terminal) Follow() *symset.Set { return t.Rule().Follow() }

// FirstK forwards to the rule.
func (t *Terminal) FirstK() *kseq.Set { return t.Rule().FirstK() }

// FollowK forwards to the rule.
func (t *Terminal) FollowK() *kseq.Set { return t.Rule().FollowK() }

// FirstKL forwards to the rule.
func (t *Terminal) FirstKL() *linear.Set {
	return t.Rule().FirstKL()
}

// FollowKL forwards to the rule.
func (t *Terminal) FollowKL() *linear.Set {
	return t.Rule().FollowKL()
}

// Nonterminal is an occurrence of a nonterminal within an alternative.
type Nonterminal struct {
	node
	TermSlots
	g    *Grammar
	rule int
}

var _ Term = &Nonterminal{}

// Rule returns the nonterminal rule this instance refers to.
func (n *Nonterminal) Rule() *NonterminalRule {
	return n.g.mustNode(n.rule).(*NonterminalRule)
}

// Alternative returns the alternative containing n.
func (n *Nonterminal) Alternative() *Alternative {
	return n.parent.(*Alternative)
}

// Name returns the name of the nonterminal.
func (n *Nonterminal) Name() string {
	return n.Rule().Name()
}

// Nullable forwards to the rule.
func (n *Nonterminal) Nullable() bool { return n.Rule().Nullable() }

// Productive forwards to the rule.
func (n *Nonterminal) Productive() bool { return n.Rule().Productive() }

// Reachable forwards to the rule.
func (n *Nonterminal) Reachable() bool { return n.Rule().Reachable() }

// First forwards to the rule.
func (n *Nonterminal) First() *symset.Set { return n.Rule().First() }

// Follow forwards to the rule.
func (n *Nonterminal) Follow() *symset.Set { return n.Rule().Follow() }

// FirstK forwards to the rule.
func (n *Nonterminal) FirstK() *kseq.Set { return n.Rule().FirstK() }

// FollowK forwards to the rule.
func (n *Nonterminal) FollowK() *kseq.Set { return n.Rule().FollowK() }

// FirstKL forwards to the rule.
func (n *Nonterminal) FirstKL() *linear.Set { return n.Rule().FirstKL() }

// FollowKL forwards to the rule.
func (n *Nonterminal) FollowKL() *linear.Set { return n.Rule().FollowKL() }
