package ast

import "github.com/npillmayer/lookahead"

// Visitor is called by Walk for every node, before and after the node's
// children are visited.
type Visitor interface {
	PreVisit(n Node)
	PostVisit(n Node)
}

// VisitorFuncs adapts a pair of functions to the Visitor interface.
// Either of them may be nil.
type VisitorFuncs struct {
	Pre  func(n Node)
	Post func(n Node)
}

// PreVisit calls Pre, if present.
func (v VisitorFuncs) PreVisit(n Node) {
	if v.Pre != nil {
		v.Pre(n)
	}
}

// PostVisit calls Post, if present.
func (v VisitorFuncs) PostVisit(n Node) {
	if v.Post != nil {
		v.Post(n)
	}
}

// Walk traverses the tree rooted at n in depth-first order:
//
//    Grammar → nonterminal rules, then terminal rules
//    rule or block → alternatives
//    alternative → terms
//
// Terminal and nonterminal instances are leaves, i.e. Walk does not descend
// into the rule they refer to.
func Walk(n Node, v Visitor) {
	v.PreVisit(n)
	switch n := n.(type) {
	case *Grammar:
		for _, r := range n.nonterminals {
			Walk(r, v)
		}
		for _, r := range n.terminals {
			Walk(r, v)
		}
	case *NonterminalRule:
		walkAlternatives(n.alternatives, v)
	case *Block:
		walkAlternatives(n.alternatives, v)
	case *Alternative:
		for _, t := range n.terms {
			Walk(t, v)
		}
	case *TerminalRule, *Terminal, *Nonterminal:
		// leaves
	default:
		tracer().Errorf("ast.Walk: unknown node type %T", n)
		panic(lookahead.Unsupported("ast.Walk", "unknown node type %T", n))
	}
	v.PostVisit(n)
}

func walkAlternatives(alts []*Alternative, v Visitor) {
	for _, a := range alts {
		Walk(a, v)
	}
}
