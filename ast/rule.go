package ast

// NonterminalRule is the definition of a nonterminal, holding its alternatives.
type NonterminalRule struct {
	node
	Slots
	multiplex
	g         *Grammar
	instances []int // ids of *Nonterminal
}

var _ Multiplex = &NonterminalRule{}

// NewAlternative appends a new, empty alternative to r.
func (r *NonterminalRule) NewAlternative() *Alternative {
	r.g.mu.Lock()
	defer r.g.mu.Unlock()
	a := r.g.newAlternative(r, len(r.alternatives))
	r.alternatives = append(r.alternatives, a)
	return a
}

// Instances returns every occurrence of r within alternatives.
func (r *NonterminalRule) Instances() []*Nonterminal {
	inst := make([]*Nonterminal, len(r.instances))
	for i, id := range r.instances {
		inst[i] = r.g.mustNode(id).(*Nonterminal)
	}
	return inst
}

func (r *NonterminalRule) hasInstance(id int) bool {
	return contains(r.instances, id)
}

// TerminalRule is the definition of a terminal. Its id is the symbol id used
// in lookahead sets.
type TerminalRule struct {
	node
	Slots
	g         *Grammar
	instances []int // ids of *Terminal
}

var _ Node = &TerminalRule{}

// Instances returns every occurrence of r within alternatives.
func (r *TerminalRule) Instances() []*Terminal {
	inst := make([]*Terminal, len(r.instances))
	for i, id := range r.instances {
		inst[i] = r.g.mustNode(id).(*Terminal)
	}
	return inst
}

func (r *TerminalRule) hasInstance(id int) bool {
	return contains(r.instances, id)
}

func contains(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
