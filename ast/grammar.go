package ast

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/maps/treebidimap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/linear"
	"github.com/npillmayer/lookahead/symset"
	"github.com/npillmayer/schuko/gconf"
)

// Configuration keys for the default lookahead depths of new grammars.
const (
	ConfigK  = "lookahead.k"
	ConfigKL = "lookahead.kl"
)

// Grammar is the root node of a grammar tree. It owns all rules and blocks,
// assigns node ids and resolves symbol names.
type Grammar struct {
	node
	Slots
	ids          atomic.Int64
	mu           sync.Mutex         // guards construction
	nodes        map[int]Node       // arena of all nodes by id
	names        *treebidimap.Map   // symbol id ↔ name
	nonterminals []*NonterminalRule // in order of definition
	terminals    []*TerminalRule    // in order of definition
	blocks       []*Block           // in order of creation
	k, kl        int                // maximum lookahead depths
	computed     [4]bool            // indexed by Generation
}

var _ Node = &Grammar{}

// NewGrammar creates an empty grammar. Lookahead depths K and KL are taken
// from configuration keys ConfigK and ConfigKL, defaulting to 1.
func NewGrammar(name string) *Grammar {
	g := &Grammar{
		node:  node{id: 0, kind: GrammarKind, name: name},
		nodes: make(map[int]Node),
		names: treebidimap.NewWith(utils.IntComparator, utils.StringComparator),
		k:     configuredDepth(ConfigK),
		kl:    configuredDepth(ConfigKL),
	}
	g.nodes[0] = g
	g.names.Put(lookahead.EOF, lookahead.EOFName)
	return g
}

func configuredDepth(key string) int {
	if gconf.IsSet(key) {
		if k := gconf.GetInt(key); k > 0 {
			return k
		}
		tracer().Errorf("ignoring non-positive value for %s", key)
	}
	return 1
}

func (g *Grammar) nextID() int {
	return int(g.ids.Add(1))
}

// register puts a node into the arena. g.mu must be held.
func (g *Grammar) register(n Node) {
	g.nodes[n.ID()] = n
}

func (g *Grammar) mustNode(id int) Node {
	n, ok := g.Node(id)
	if !ok {
		panic(lookahead.OutOfRange("ast.Node", "no node with id %d", id))
	}
	return n
}

// Node returns the node with a given id.
func (g *Grammar) Node(id int) (Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	return n, ok
}

// --- Lookahead depths and flags --------------------------------------------

// K returns the maximum lookahead depth for FIRSTk/FOLLOWk.
func (g *Grammar) K() int {
	return g.k
}

// SetK sets the maximum lookahead depth for FIRSTk/FOLLOWk. k must be positive.
func (g *Grammar) SetK(k int) error {
	if k <= 0 {
		return lookahead.InvalidArgument("ast.SetK", "K must be positive, is %d", k)
	}
	g.k = k
	return nil
}

// KL returns the maximum lookahead depth for FIRSTkl/FOLLOWkl.
func (g *Grammar) KL() int {
	return g.kl
}

// SetKL sets the maximum lookahead depth for FIRSTkl/FOLLOWkl. kl must be positive.
func (g *Grammar) SetKL(kl int) error {
	if kl <= 0 {
		return lookahead.InvalidArgument("ast.SetKL", "KL must be positive, is %d", kl)
	}
	g.kl = kl
	return nil
}

// Computed is true if a generation of analysis results is present.
func (g *Grammar) Computed(gen Generation) bool {
	checkGeneration("ast.Computed", gen)
	return g.computed[gen]
}

// SetComputed marks a generation of analysis results as present or absent.
func (g *Grammar) SetComputed(gen Generation, b bool) {
	checkGeneration("ast.SetComputed", gen)
	g.computed[gen] = b
}

func checkGeneration(op string, gen Generation) {
	if gen < Flags || gen > FFKL {
		tracer().Errorf("%s: no generation %d", op, gen)
		panic(lookahead.OutOfRange(op, "no generation %d", gen))
	}
}

// FlagsComputed is Computed(Flags).
func (g *Grammar) FlagsComputed() bool { return g.computed[Flags] }

// FFComputed is Computed(FF).
func (g *Grammar) FFComputed() bool { return g.computed[FF] }

// FFKComputed is Computed(FFK).
func (g *Grammar) FFKComputed() bool { return g.computed[FFK] }

// FFKLComputed is Computed(FFKL).
func (g *Grammar) FFKLComputed() bool { return g.computed[FFKL] }

// --- Rules -----------------------------------------------------------------

// NewNonterminalRule creates a nonterminal rule without alternatives.
// Rule names have to be unique for terminals and nonterminals.
func (g *Grammar) NewNonterminalRule(name string) *NonterminalRule {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkName("ast.NewNonterminalRule", name)
	r := &NonterminalRule{g: g}
	r.node = node{id: g.nextID(), kind: NonterminalRuleKind, name: name, parent: g}
	g.nonterminals = append(g.nonterminals, r)
	g.register(r)
	g.names.Put(r.id, name)
	tracer().Debugf("new nonterminal %s = %d", name, r.id)
	return r
}

// NewTerminalRule creates a terminal rule.
// Rule names have to be unique for terminals and nonterminals.
func (g *Grammar) NewTerminalRule(name string) *TerminalRule {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkName("ast.NewTerminalRule", name)
	r := &TerminalRule{g: g}
	r.node = node{id: g.nextID(), kind: TerminalRuleKind, name: name, parent: g}
	g.terminals = append(g.terminals, r)
	g.register(r)
	g.names.Put(r.id, name)
	tracer().Debugf("new terminal %s = %d", name, r.id)
	return r
}

func (g *Grammar) checkName(op string, name string) {
	if name == "" {
		panic(lookahead.InvalidArgument(op, "rule name is empty"))
	}
	if _, exists := g.names.GetKey(name); exists {
		tracer().Errorf("%s: duplicate rule name %q", op, name)
		panic(lookahead.InvalidArgument(op, "duplicate rule name %q", name))
	}
}

// NonterminalRules returns the nonterminal rules in order of definition.
func (g *Grammar) NonterminalRules() []*NonterminalRule {
	return g.nonterminals
}

// TerminalRules returns the terminal rules in order of definition.
func (g *Grammar) TerminalRules() []*TerminalRule {
	return g.terminals
}

// Blocks returns all blocks of the grammar in order of creation.
func (g *Grammar) Blocks() []*Block {
	return g.blocks
}

// StartRule returns the first nonterminal rule, or nil.
func (g *Grammar) StartRule() *NonterminalRule {
	if len(g.nonterminals) == 0 {
		return nil
	}
	return g.nonterminals[0]
}

// NonterminalRule finds a nonterminal rule by name.
func (g *Grammar) NonterminalRule(name string) (*NonterminalRule, bool) {
	if id, ok := g.SymbolID(name); ok {
		n, _ := g.Node(id)
		r, ok := n.(*NonterminalRule)
		return r, ok
	}
	return nil, false
}

// TerminalRule finds a terminal rule by name.
func (g *Grammar) TerminalRule(name string) (*TerminalRule, bool) {
	if id, ok := g.SymbolID(name); ok {
		n, _ := g.Node(id)
		r, ok := n.(*TerminalRule)
		return r, ok
	}
	return nil, false
}

// --- Symbol names ----------------------------------------------------------

// SymbolName returns the name for a symbol id.
func (g *Grammar) SymbolName(id int) (string, bool) {
	if name, ok := g.names.Get(id); ok {
		return name.(string), true
	}
	return "", false
}

// SymbolID returns the symbol id for a name.
func (g *Grammar) SymbolID(name string) (int, bool) {
	if id, ok := g.names.GetKey(name); ok {
		return id.(int), true
	}
	return 0, false
}

// Namer returns a namer which resolves symbol ids of g.
func (g *Grammar) Namer() lookahead.Namer {
	return g.SymbolName
}

// NewSymbolSet creates an empty symbol set, printing symbols of g by name.
func (g *Grammar) NewSymbolSet() *symset.Set {
	return symset.New(symset.WithNamer(g.Namer()))
}

// NewKSet creates an empty set of strings with capacity K, printing symbols of g by name.
func (g *Grammar) NewKSet() *kseq.Set {
	S := kseq.NewSet(g.k)
	S.SetNamer(g.Namer())
	return S
}

// NewKLSet creates an empty linearized set with capacity KL, printing symbols of g by name.
func (g *Grammar) NewKLSet() *linear.Set {
	return linear.New(g.kl, symset.WithNamer(g.Namer()))
}

// --- Consistency -----------------------------------------------------------

// Validate checks that references between rules and their instances are
// mutually consistent, and that every node has the parent it is linked from.
func (g *Grammar) Validate() error {
	var err error
	seen := make(map[int]bool)
	check := func(n, parent Node) {
		if err == nil && n.Parent() != parent {
			err = lookahead.InvalidArgument("ast.Validate", "%s %q has wrong parent", n.Kind(), n.Name())
		}
	}
	Walk(g, VisitorFuncs{Pre: func(n Node) {
		if err != nil {
			return
		}
		switch n := n.(type) {
		case *NonterminalRule:
			check(n, g)
		case *TerminalRule:
			check(n, g)
		case *Alternative:
			for _, t := range n.terms {
				check(t, n)
			}
		case *Block:
			for _, a := range n.alternatives {
				check(a, n)
			}
		case *Terminal:
			seen[n.id] = true
			if !n.Rule().hasInstance(n.id) {
				err = lookahead.InvalidArgument("ast.Validate", "terminal %q unknown to its rule", n.Name())
			}
		case *Nonterminal:
			seen[n.id] = true
			if !n.Rule().hasInstance(n.id) {
				err = lookahead.InvalidArgument("ast.Validate", "nonterminal %q unknown to its rule", n.Name())
			}
		}
	}})
	if err != nil {
		return err
	}
	for _, r := range g.nonterminals {
		for _, a := range r.alternatives {
			check(a, r)
		}
		for _, id := range r.instances {
			if !seen[id] {
				return lookahead.InvalidArgument("ast.Validate", "rule %q has dangling instance %d", r.name, id)
			}
		}
	}
	for _, r := range g.terminals {
		for _, id := range r.instances {
			if !seen[id] {
				return lookahead.InvalidArgument("ast.Validate", "rule %q has dangling instance %d", r.name, id)
			}
		}
	}
	return err
}

// Dump traces the rules of g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- Grammar %s (K=%d, KL=%d) ---", g.name, g.k, g.kl)
	for _, r := range g.nonterminals {
		alts := make([]string, len(r.alternatives))
		for i, a := range r.alternatives {
			alts[i] = a.String()
		}
		tracer().Debugf("%4d: %s ➞ %s", r.id, r.name, strings.Join(alts, " | "))
	}
	for _, r := range g.terminals {
		tracer().Debugf("%4d: %s", r.id, r.name)
	}
	tracer().Debugf("-------------------------------")
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar %s", g.name)
}
