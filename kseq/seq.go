package kseq

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lookahead"
)

// Seq is a string of symbol ids with capacity K.
type Seq struct {
	k     int
	syms  []int
	namer lookahead.Namer
}

// New creates a string with capacity k, initially holding ids (truncated to k).
// k has to be positive.
func New(k int, ids ...int) *Seq {
	if k <= 0 {
		tracer().Errorf("kseq.New: k must be positive, is %d", k)
		panic(lookahead.InvalidArgument("kseq.New", "k must be positive, is %d", k))
	}
	s := &Seq{k: k, syms: make([]int, 0, min(k, max(len(ids), 1)))}
	return s.Add(ids...)
}

// Empty creates the empty string with capacity k.
func Empty(k int) *Seq {
	return New(k)
}

func (s *Seq) sameK(op string, o *Seq) {
	if o == nil {
		panic(lookahead.InvalidArgument(op, "operand is nil"))
	}
	if s.k != o.k {
		tracer().Errorf("%s: K mismatch %d ≠ %d", op, s.k, o.k)
		panic(lookahead.InvalidArgument(op, "K mismatch %d ≠ %d", s.k, o.k))
	}
}

// K returns the capacity of s.
func (s *Seq) K() int {
	return s.k
}

// Len returns the number of symbols in s.
func (s *Seq) Len() int {
	return len(s.syms)
}

// IsEmpty is true for the empty string.
func (s *Seq) IsEmpty() bool {
	return len(s.syms) == 0
}

// IsFull is true if s has reached its capacity.
func (s *Seq) IsFull() bool {
	return len(s.syms) == s.k
}

// At returns the symbol at position i.
func (s *Seq) At(i int) int {
	if i < 0 || i >= len(s.syms) {
		panic(lookahead.OutOfRange("kseq.At", "position %d, length is %d", i, len(s.syms)))
	}
	return s.syms[i]
}

// Symbols returns a copy of the symbols of s.
func (s *Seq) Symbols() []int {
	c := make([]int, len(s.syms))
	copy(c, s.syms)
	return c
}

// Add appends ids to s. Ids beyond capacity are dropped. Returns s.
func (s *Seq) Add(ids ...int) *Seq {
	n := min(len(ids), s.k-len(s.syms))
	if n > 0 {
		s.syms = append(s.syms, ids[:n]...)
	}
	return s
}

// Append concatenates o to s, truncating at K. Returns s.
func (s *Seq) Append(o *Seq) *Seq {
	s.sameK("kseq.Append", o)
	return s.Add(o.syms...)
}

// StartsWith is true if o is a prefix of s.
func (s *Seq) StartsWith(o *Seq) bool {
	s.sameK("kseq.StartsWith", o)
	if len(o.syms) > len(s.syms) {
		return false
	}
	for i, id := range o.syms {
		if s.syms[i] != id {
			return false
		}
	}
	return true
}

// ContainsAt is true if s holds value at position pos.
// Positions beyond the length of s never match.
func (s *Seq) ContainsAt(pos int, value int) bool {
	if pos < 0 || pos >= len(s.syms) {
		return false
	}
	return s.syms[pos] == value
}

// EqualsTo is true if s and o, both truncated to length k, are identical.
func (s *Seq) EqualsTo(o *Seq, k int) bool {
	s.sameK("kseq.EqualsTo", o)
	a, b := min(len(s.syms), k), min(len(o.syms), k)
	if a != b {
		return false
	}
	for i := 0; i < a; i++ {
		if s.syms[i] != o.syms[i] {
			return false
		}
	}
	return true
}

// CompareTo orders strings lexicographically, with a proper prefix ordered
// before the longer string. It returns -1, 0 or 1.
func (s *Seq) CompareTo(o *Seq) int {
	s.sameK("kseq.CompareTo", o)
	n := min(len(s.syms), len(o.syms))
	for i := 0; i < n; i++ {
		if c := utils.IntComparator(s.syms[i], o.syms[i]); c != 0 {
			return c
		}
	}
	return utils.IntComparator(len(s.syms), len(o.syms))
}

// Equals is true if o has the same capacity and the same symbols as s.
// Different capacities are never equal, but this is not an error.
func (s *Seq) Equals(o *Seq) bool {
	if o == nil || s.k != o.k {
		return false
	}
	return s.CompareTo(o) == 0
}

// Hash returns a digest of capacity and content.
func (s *Seq) Hash() string {
	h, err := structhash.Hash(struct {
		K       int
		Symbols []int
	}{s.k, s.syms}, 1)
	if err != nil {
		tracer().Errorf("kseq.Hash: %v", err)
	}
	return h
}

// Copy returns a copy of s, sharing the namer.
func (s *Seq) Copy() *Seq {
	c := &Seq{k: s.k, namer: s.namer, syms: make([]int, len(s.syms), s.k)}
	copy(c.syms, s.syms)
	return c
}

// SetNamer injects a namer for printing.
func (s *Seq) SetNamer(namer lookahead.Namer) {
	s.namer = namer
}

// String prints the symbols of s, by name if possible, e.g., "[a, b]".
func (s *Seq) String() string {
	return s.format(s.namer)
}

func (s *Seq) format(namer lookahead.Namer) string {
	var b strings.Builder
	b.WriteString("[")
	for i, id := range s.syms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(lookahead.SymbolName(id, namer))
	}
	b.WriteString("]")
	return b.String()
}
