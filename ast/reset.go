package ast

// Generation identifies one of the independent layers of analysis results.
type Generation int8

// Generations of analysis results, each of which can be reset separately.
const (
	Flags Generation = iota // nullable, productive, reachable
	FF                      // FIRST/FOLLOW
	FFK                     // FIRSTk/FOLLOWk
	FFKL                    // FIRSTkl/FOLLOWkl
)

func (gen Generation) String() string {
	switch gen {
	case Flags:
		return "flags"
	case FF:
		return "FF"
	case FFK:
		return "FFk"
	case FFKL:
		return "FFkl"
	}
	return "<unknown>"
}

// Reset clears all analysis results of generation gen from the tree, leaving
// other generations untouched, and marks gen as not computed.
func (g *Grammar) Reset(gen Generation) {
	checkGeneration("ast.Reset", gen)
	tracer().Debugf("reset %s for grammar %s", gen, g.name)
	Walk(g, resetter{gen: gen})
	g.computed[gen] = false
}

// ResetFlags clears nullability, productivity and reachability.
func ResetFlags(g *Grammar) { g.Reset(Flags) }

// ResetFF clears FIRST/FOLLOW and the respective conflicts.
func ResetFF(g *Grammar) { g.Reset(FF) }

// ResetFFK clears FIRSTk/FOLLOWk and the respective conflicts and minimal depths.
func ResetFFK(g *Grammar) { g.Reset(FFK) }

// ResetFFKL clears FIRSTkl/FOLLOWkl and the respective conflicts and minimal depths.
func ResetFFKL(g *Grammar) { g.Reset(FFKL) }

type resetter struct {
	gen Generation
}

func (r resetter) PreVisit(n Node) {
	switch n := n.(type) {
	case *Grammar:
		r.slots(&n.Slots)
	case *NonterminalRule:
		r.slots(&n.Slots)
		r.bookkeeping(&n.multiplex)
	case *TerminalRule:
		r.slots(&n.Slots)
	case *Alternative:
		r.slots(&n.Slots)
	case *Block:
		r.slots(&n.Slots)
		r.term(&n.TermSlots)
		r.bookkeeping(&n.multiplex)
	case *Terminal:
		r.term(&n.TermSlots)
	case *Nonterminal:
		r.term(&n.TermSlots)
	}
}

func (r resetter) PostVisit(Node) {}

func (r resetter) slots(s *Slots) {
	switch r.gen {
	case Flags:
		s.nullable, s.productive, s.reachable = false, false, false
	case FF:
		s.first, s.follow = nil, nil
	case FFK:
		s.firstK, s.followK = nil, nil
	case FFKL:
		s.firstKL, s.followKL = nil, nil
	}
}

func (r resetter) term(ts *TermSlots) {
	switch r.gen {
	case Flags:
		ts.prefixNullable, ts.suffixNullable = false, false
	case FF:
		ts.suffixFirst = nil
	case FFK:
		ts.suffixFirstK = nil
	case FFKL:
		ts.suffixFirstKL = nil
	}
}

func (r resetter) bookkeeping(m *multiplex) {
	switch r.gen {
	case FF:
		m.resetFF()
	case FFK:
		m.resetFFK()
	case FFKL:
		m.resetFFKL()
	}
}
