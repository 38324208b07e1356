package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Render writes the tree rooted at n to w, in a format suited for terminals.
// Every node is annotated with the analysis results present.
func Render(n Node, w io.Writer) error {
	tb := &treeBuilder{}
	Walk(n, tb)
	return pterm.DefaultTree.WithRoot(tb.root).WithWriter(w).Render()
}

// Srender renders the tree rooted at n into a string.
func Srender(n Node) (string, error) {
	tb := &treeBuilder{}
	Walk(n, tb)
	return pterm.DefaultTree.WithRoot(tb.root).Srender()
}

type treeBuilder struct {
	stack []*pterm.TreeNode
	root  pterm.TreeNode
}

func (tb *treeBuilder) PreVisit(n Node) {
	tb.stack = append(tb.stack, &pterm.TreeNode{Text: label(n)})
}

func (tb *treeBuilder) PostVisit(n Node) {
	top := tb.stack[len(tb.stack)-1]
	tb.stack = tb.stack[:len(tb.stack)-1]
	if len(tb.stack) == 0 {
		tb.root = *top
		return
	}
	parent := tb.stack[len(tb.stack)-1]
	parent.Children = append(parent.Children, *top)
}

func label(n Node) string {
	var b strings.Builder
	switch n := n.(type) {
	case *Alternative:
		fmt.Fprintf(&b, "%s: %s", n.Name(), n.String())
	case *Grammar:
		fmt.Fprintf(&b, "Grammar %s (K=%d, KL=%d)", n.Name(), n.K(), n.KL())
	default:
		fmt.Fprintf(&b, "%s %s", n.Kind(), n.Name())
	}
	if n.Nullable() {
		b.WriteString(" nullable")
	}
	if f := n.First(); f != nil {
		fmt.Fprintf(&b, " FIRST=%v", f)
	}
	if f := n.Follow(); f != nil {
		fmt.Fprintf(&b, " FOLLOW=%v", f)
	}
	if f := n.FirstK(); f != nil {
		fmt.Fprintf(&b, " FIRSTk=%v", f)
	}
	if f := n.FollowK(); f != nil {
		fmt.Fprintf(&b, " FOLLOWk=%v", f)
	}
	if f := n.FirstKL(); f != nil {
		fmt.Fprintf(&b, " FIRSTkl=%v", f)
	}
	if f := n.FollowKL(); f != nil {
		fmt.Fprintf(&b, " FOLLOWkl=%v", f)
	}
	if m, ok := n.(Multiplex); ok {
		if c := len(m.Conflicts()) + len(m.ConflictsK()) + len(m.ConflictsKL()); c > 0 {
			fmt.Fprintf(&b, " conflicts=%d", c)
		}
		if m.MinK() == Irresolvable {
			b.WriteString(" irresolvable")
		} else if m.MinK() > 0 {
			fmt.Fprintf(&b, " minK=%d", m.MinK())
		}
	}
	return b.String()
}
