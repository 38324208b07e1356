package ast

import (
	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/linear"
	"github.com/npillmayer/lookahead/symset"
)

// Irresolvable is the value of a minimal lookahead depth if no depth up to the
// configured maximum is able to resolve a conflict.
const Irresolvable = -1

// Multiplex is a node holding alternatives: *NonterminalRule or *Block.
// It keeps the bookkeeping for conflicts between its alternatives,
// separately for each generation of lookahead.
type Multiplex interface {
	Node
	Alternatives() []*Alternative
	NewAlternative() *Alternative
	Conflicts() []*Conflict
	ConflictsK() []*ConflictK
	ConflictsKL() []*ConflictKL
	AddConflict(*Conflict)
	AddConflictK(*ConflictK)
	AddConflictKL(*ConflictKL)
	ConflictSet() *symset.Set
	ConflictSetK() *kseq.Set
	ConflictSetKL() *linear.Set
	SetConflictSet(*symset.Set)
	SetConflictSetK(*kseq.Set)
	SetConflictSetKL(*linear.Set)
	MinK() int
	MinKL() int
	MinFfK() int
	MinFfKL() int
	SetMinK(int)
	SetMinKL(int)
	SetMinFfK(int)
	SetMinFfKL(int)
	bookkeeping() *multiplex
}

// --- Conflict records ------------------------------------------------------

// ConflictRecord states that the lookahead of two alternatives of a multiplex
// node overlaps. Set holds the overlapping lookahead. Records are immutable.
type ConflictRecord[S any] struct {
	source *Alternative
	target *Alternative
	set    S
}

// Conflict records an overlap of FIRST/FOLLOW.
type Conflict = ConflictRecord[*symset.Set]

// ConflictK records an overlap of FIRSTk/FOLLOWk.
type ConflictK = ConflictRecord[*kseq.Set]

// ConflictKL records an overlap of FIRSTkl/FOLLOWkl.
type ConflictKL = ConflictRecord[*linear.Set]

// NewConflict creates a conflict record. Alternatives must not be nil.
func NewConflict[S any](source, target *Alternative, set S) *ConflictRecord[S] {
	if source == nil || target == nil {
		panic(lookahead.InvalidArgument("ast.NewConflict", "alternative is nil"))
	}
	return &ConflictRecord[S]{source: source, target: target, set: set}
}

// Source returns the alternative the conflict was detected for.
func (c *ConflictRecord[S]) Source() *Alternative { return c.source }

// Target returns the alternative conflicting with Source.
func (c *ConflictRecord[S]) Target() *Alternative { return c.target }

// Set returns the overlapping lookahead.
func (c *ConflictRecord[S]) Set() S { return c.set }

// --- Bookkeeping -----------------------------------------------------------

type multiplex struct {
	alternatives  []*Alternative
	conflicts     []*Conflict
	conflictsK    []*ConflictK
	conflictsKL   []*ConflictKL
	conflictSet   *symset.Set
	conflictSetK  *kseq.Set
	conflictSetKL *linear.Set
	minK          int
	minKL         int
	minFfK        int
	minFfKL       int
}

func (m *multiplex) bookkeeping() *multiplex { return m }

// Alternatives returns the alternatives in order of definition.
func (m *multiplex) Alternatives() []*Alternative {
	return m.alternatives
}

// Conflicts returns the FIRST/FOLLOW conflicts in order of discovery.
func (m *multiplex) Conflicts() []*Conflict { return m.conflicts }

// ConflictsK returns the FIRSTk/FOLLOWk conflicts in order of discovery.
func (m *multiplex) ConflictsK() []*ConflictK { return m.conflictsK }

// ConflictsKL returns the FIRSTkl/FOLLOWkl conflicts in order of discovery.
func (m *multiplex) ConflictsKL() []*ConflictKL { return m.conflictsKL }

// AddConflict appends a FIRST/FOLLOW conflict.
func (m *multiplex) AddConflict(c *Conflict) {
	if c == nil {
		panic(lookahead.InvalidArgument("ast.AddConflict", "conflict is nil"))
	}
	m.conflicts = append(m.conflicts, c)
}

// AddConflictK appends a FIRSTk/FOLLOWk conflict.
func (m *multiplex) AddConflictK(c *ConflictK) {
	if c == nil {
		panic(lookahead.InvalidArgument("ast.AddConflictK", "conflict is nil"))
	}
	m.conflictsK = append(m.conflictsK, c)
}

// AddConflictKL appends a FIRSTkl/FOLLOWkl conflict.
func (m *multiplex) AddConflictKL(c *ConflictKL) {
	if c == nil {
		panic(lookahead.InvalidArgument("ast.AddConflictKL", "conflict is nil"))
	}
	m.conflictsKL = append(m.conflictsKL, c)
}

// ConflictSet is the union of the sets of all FIRST/FOLLOW conflicts.
func (m *multiplex) ConflictSet() *symset.Set { return m.conflictSet }

// ConflictSetK is the union of the sets of all FIRSTk/FOLLOWk conflicts.
func (m *multiplex) ConflictSetK() *kseq.Set { return m.conflictSetK }

// ConflictSetKL is the union of the sets of all FIRSTkl/FOLLOWkl conflicts.
func (m *multiplex) ConflictSetKL() *linear.Set { return m.conflictSetKL }

// SetConflictSet stores ConflictSet.
func (m *multiplex) SetConflictSet(s *symset.Set) { m.conflictSet = s }

// SetConflictSetK stores ConflictSetK.
func (m *multiplex) SetConflictSetK(s *kseq.Set) { m.conflictSetK = s }

// SetConflictSetKL stores ConflictSetKL.
func (m *multiplex) SetConflictSetKL(s *linear.Set) {
	m.conflictSetKL = s
}

// MinK is the minimal k for which FIRSTk of the alternatives do not conflict.
// It is 0 if not yet computed and Irresolvable if there is no such k.
func (m *multiplex) MinK() int { return m.minK }

// MinKL is MinK for linearized lookahead.
func (m *multiplex) MinKL() int { return m.minKL }

// MinFfK is the minimal k for which FIRSTk·FOLLOWk of the alternatives
// do not conflict.
func (m *multiplex) MinFfK() int { return m.minFfK }

// MinFfKL is MinFfK for linearized lookahead.
func (m *multiplex) MinFfKL() int { return m.minFfKL }

// SetMinK stores MinK, which must be ≥ 0 or Irresolvable.
func (m *multiplex) SetMinK(k int) { m.minK = checkMin("ast.SetMinK", k) }

// SetMinKL stores MinKL, which must be ≥ 0 or Irresolvable.
func (m *multiplex) SetMinKL(k int) { m.minKL = checkMin("ast.SetMinKL", k) }

// SetMinFfK stores MinFfK, which must be ≥ 0 or Irresolvable.
func (m *multiplex) SetMinFfK(k int) { m.minFfK = checkMin("ast.SetMinFfK", k) }

// SetMinFfKL stores MinFfKL, which must be ≥ 0 or Irresolvable.
func (m *multiplex) SetMinFfKL(k int) { m.minFfKL = checkMin("ast.SetMinFfKL", k) }

func checkMin(op string, k int) int {
	if k < 0 && k != Irresolvable {
		panic(lookahead.InvalidArgument(op, "minimal lookahead must be ≥ 0 or Irresolvable, is %d", k))
	}
	return k
}

func (m *multiplex) resetFF() {
	m.conflicts = nil
	m.conflictSet = nil
}

func (m *multiplex) resetFFK() {
	m.conflictsK = nil
	m.conflictSetK = nil
	m.minK = 0
	m.minFfK = 0
}

func (m *multiplex) resetFFKL() {
	m.conflictsKL = nil
	m.conflictSetKL = nil
	m.minKL = 0
	m.minFfKL = 0
}
