package ast

import (
	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/linear"
	"github.com/npillmayer/lookahead/symset"
)

// Kind is the type tag of a node.
type Kind int8

// Kinds of nodes.
const (
	GrammarKind Kind = iota
	NonterminalRuleKind
	TerminalRuleKind
	AlternativeKind
	BlockKind
	TerminalKind
	NonterminalKind
)

func (k Kind) String() string {
	switch k {
	case GrammarKind:
		return "Grammar"
	case NonterminalRuleKind:
		return "NonterminalRule"
	case TerminalRuleKind:
		return "TerminalRule"
	case AlternativeKind:
		return "Alternative"
	case BlockKind:
		return "Block"
	case TerminalKind:
		return "Terminal"
	case NonterminalKind:
		return "Nonterminal"
	}
	return "<unknown>"
}

// Node is a node of the grammar tree. The set of node types is closed:
// *Grammar, *NonterminalRule, *TerminalRule, *Alternative, *Block,
// *Terminal and *Nonterminal.
//
// Analysis slots are nil or false until set by a calculator.
type Node interface {
	ID() int
	Kind() Kind
	Name() string
	Parent() Node
	Nullable() bool
	Productive() bool
	Reachable() bool
	First() *symset.Set
	Follow() *symset.Set
	FirstK() *kseq.Set
	FollowK() *kseq.Set
	FirstKL() *linear.Set
	FollowKL() *linear.Set
	isNode()
}

type node struct {
	id     int
	kind   Kind
	name   string
	parent Node
}

// ID returns the unique id of a node. For rules, this is the symbol id.
func (n *node) ID() int {
	return n.id
}

// Kind returns the type tag of a node.
func (n *node) Kind() Kind {
	return n.kind
}

// Name returns the display name of a node.
func (n *node) Name() string {
	return n.name
}

// Parent returns the parent node, which is nil for the grammar.
func (n *node) Parent() Node {
	return n.parent
}

func (n *node) isNode() {}

// --- Analysis slots --------------------------------------------------------

// Slots holds the results of analysis for a node. It is embedded into every
// node type which owns this data, i.e. every node type except terminal and
// nonterminal instances.
type Slots struct {
	nullable   bool
	productive bool
	reachable  bool
	first      *symset.Set
	follow     *symset.Set
	firstK     *kseq.Set
	followK    *kseq.Set
	firstKL    *linear.Set
	followKL   *linear.Set
}

// Nullable is true if a node derives ε.
func (s *Slots) Nullable() bool { return s.nullable }

// Productive is true if a node derives a finite string of terminals.
func (s *Slots) Productive() bool { return s.productive }

// Reachable is true if a node is derivable from the start rule.
func (s *Slots) Reachable() bool { return s.reachable }

// First returns the FIRST set, nil if not computed.
func (s *Slots) First() *symset.Set { return s.first }

// Follow returns the FOLLOW set, nil if not computed.
func (s *Slots) Follow() *symset.Set { return s.follow }

// FirstK returns FIRSTk, nil if not computed.
func (s *Slots) FirstK() *kseq.Set { return s.firstK }

// FollowK returns FOLLOWk, nil if not computed.
func (s *Slots) FollowK() *kseq.Set { return s.followK }

// FirstKL returns FIRSTkl, nil if not computed.
func (s *Slots) FirstKL() *linear.Set { return s.firstKL }

// FollowKL returns FOLLOWkl, nil if not computed.
func (s *Slots) FollowKL() *linear.Set { return s.followKL }

// SetNullable stores the result of nullability analysis.
func (s *Slots) SetNullable(b bool) { s.nullable = b }

// SetProductive stores the result of productivity analysis.
func (s *Slots) SetProductive(b bool) { s.productive = b }

// SetReachable stores the result of reachability analysis.
func (s *Slots) SetReachable(b bool) { s.reachable = b }

// SetFirst stores FIRST. A nil set marks it as absent.
func (s *Slots) SetFirst(first *symset.Set) { s.first = first }

// SetFollow stores FOLLOW. A nil set marks it as absent.
func (s *Slots) SetFollow(follow *symset.Set) { s.follow = follow }

// SetFirstK stores FIRSTk.
func (s *Slots) SetFirstK(first *kseq.Set) { s.firstK = first }

// SetFollowK stores FOLLOWk.
func (s *Slots) SetFollowK(follow *kseq.Set) { s.followK = follow }

// SetFirstKL stores FIRSTkl.
func (s *Slots) SetFirstKL(first *linear.Set) { s.firstKL = first }

// SetFollowKL stores FOLLOWkl.
func (s *Slots) SetFollowKL(follow *linear.Set) { s.followKL = follow }

// SlotsOf returns the analysis slots owned by a node, for writing.
// Terminal and nonterminal instances do not own slots; for them an error of
// kind lookahead.ErrUnsupported is returned, and clients should write to
// the instance's rule instead.
func SlotsOf(n Node) (*Slots, error) {
	switch n := n.(type) {
	case *Grammar:
		return &n.Slots, nil
	case *NonterminalRule:
		return &n.Slots, nil
	case *TerminalRule:
		return &n.Slots, nil
	case *Alternative:
		return &n.Slots, nil
	case *Block:
		return &n.Slots, nil
	case *Terminal, *Nonterminal:
		return nil, lookahead.Unsupported("ast.SlotsOf",
			"%s %q delegates to its rule", n.Kind(), n.Name())
	}
	return nil, lookahead.Unsupported("ast.SlotsOf", "unknown node type %T", n)
}
