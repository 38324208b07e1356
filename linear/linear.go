package linear

import (
	"strconv"
	"strings"

	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/symset"
)

// Set is a linearized set of strings with capacity K.
type Set struct {
	k       int
	pos     []*symset.Set
	lengths *symset.Set     // realized lengths, 0 = ε
	opts    []symset.Option // for creating positions
	namer   lookahead.Namer
}

// New creates an empty linearized set of capacity k. Options are applied to
// every position set.
func New(k int, opts ...symset.Option) *Set {
	if k <= 0 {
		tracer().Errorf("linear.New: k must be positive, is %d", k)
		panic(lookahead.InvalidArgument("linear.New", "k must be positive, is %d", k))
	}
	s := &Set{
		k:       k,
		lengths: symset.New(symset.WithMin(0)),
		opts:    opts,
	}
	s.namer = symset.New(opts...).Namer()
	return s
}

// Project creates the linearized form of a set of strings.
func Project(S *kseq.Set, opts ...symset.Option) *Set {
	if S == nil {
		panic(lookahead.InvalidArgument("linear.Project", "set is nil"))
	}
	s := New(S.K(), opts...)
	if S.ContainsEmpty() {
		s.AddEmpty()
	}
	S.Each(func(seq *kseq.Seq) {
		for i, id := range seq.Symbols() {
			s.position(i).Set(id)
		}
		s.lengths.Set(seq.Len())
	})
	return s
}

func (s *Set) sameK(op string, o *Set) {
	if o == nil {
		panic(lookahead.InvalidArgument(op, "operand is nil"))
	}
	if s.k != o.k {
		tracer().Errorf("%s: K mismatch %d ≠ %d", op, s.k, o.k)
		panic(lookahead.InvalidArgument(op, "K mismatch %d ≠ %d", s.k, o.k))
	}
}

// position returns the symbol set at position i, creating it if necessary.
func (s *Set) position(i int) *symset.Set {
	for len(s.pos) <= i {
		p := symset.New(s.opts...)
		p.SetNamer(s.namer)
		s.pos = append(s.pos, p)
	}
	return s.pos[i]
}

// K returns the capacity of s.
func (s *Set) K() int {
	return s.k
}

// Len returns the number of populated positions.
func (s *Set) Len() int {
	return len(s.pos)
}

// At returns the symbol set at position i. The set is not copied.
func (s *Set) At(i int) *symset.Set {
	if i < 0 || i >= len(s.pos) {
		panic(lookahead.OutOfRange("linear.At", "position %d, length is %d", i, len(s.pos)))
	}
	return s.pos[i]
}

// Lengths returns the realized lengths in ascending order.
func (s *Set) Lengths() []int {
	return s.lengths.Values()
}

// AddLength adds a realized length, 0 ≤ l ≤ K.
func (s *Set) AddLength(l int) {
	if l < 0 || l > s.k {
		panic(lookahead.OutOfRange("linear.AddLength", "length %d not in [0,%d]", l, s.k))
	}
	s.lengths.Set(l)
}

// AddEmpty adds ε. Returns true if s changed.
func (s *Set) AddEmpty() bool {
	changed := !s.lengths.Get(0)
	s.lengths.Set(0)
	return changed
}

// RemoveEmpty removes ε. Returns true if s changed.
func (s *Set) RemoveEmpty() bool {
	changed := s.lengths.Get(0)
	s.lengths.Clear(0)
	return changed
}

// ContainsEmpty is true if the language represented by s contains ε.
func (s *Set) ContainsEmpty() bool {
	return s.lengths.Get(0)
}

// IsEmpty is true if s represents the empty language, i.e. has no realized length.
func (s *Set) IsEmpty() bool {
	return s.lengths.IsEmpty()
}

func (s *Set) isEpsilonOnly() bool {
	return len(s.pos) == 0 && s.lengths.Cardinality() == 1 && s.lengths.Get(0)
}

func (s *Set) clear() {
	s.pos = nil
	s.lengths.Reset()
}

// --- Algebra ---------------------------------------------------------------

// AddAt merges the first otherLength positions of o into s, starting at
// position offset. Positions at or beyond K are dropped. Realized lengths are
// not touched. Returns true if s changed.
func (s *Set) AddAt(o *Set, offset int, otherLength int) bool {
	s.sameK("linear.AddAt", o)
	if offset < 0 {
		panic(lookahead.OutOfRange("linear.AddAt", "offset %d", offset))
	}
	changed := false
	n := min(otherLength, len(o.pos))
	for i := 0; i < n && offset+i < s.k; i++ {
		p := s.position(offset + i)
		before := p.Cardinality()
		p.Or(o.pos[i])
		changed = changed || p.Cardinality() != before
	}
	return changed
}

// Append replaces s by the bounded concatenation of s and o. For every
// realized length ℓ of s, the positions of o are merged starting at ℓ.
// The new realized lengths are all sums of lengths of s and o, saturated at K.
// Returns true if s changed.
func (s *Set) Append(o *Set) bool {
	s.sameK("linear.Append", o)
	if o.isEpsilonOnly() {
		return false
	}
	if s.isEpsilonOnly() {
		c := o.Copy()
		s.pos, s.lengths = c.pos, c.lengths
		return true
	}
	if s.IsEmpty() {
		return false
	}
	if o.IsEmpty() {
		s.clear()
		return true
	}
	old := s.Copy()
	ls, lo := s.lengths.Values(), o.lengths.Values()
	for _, l := range ls {
		if l < s.k {
			s.AddAt(o, l, len(o.pos))
		}
	}
	s.lengths.Reset()
	for _, l := range ls {
		for _, m := range lo {
			s.lengths.Set(min(l+m, s.k))
		}
	}
	if s.Equals(old) {
		return false
	}
	tracer().Debugf("append: %v · %v = %v", old, o, s)
	return true
}

// Conflict returns the position-wise intersection of s and o over the first
// min(Len, k) positions.
//
// The result is empty if s and o differ in the number of positions or in
// containment of ε. ε is part of the result if both sides contain it. If any
// positional intersection is empty, the whole result is cleared, including ε.
func (s *Set) Conflict(o *Set, k int) *Set {
	s.sameK("linear.Conflict", o)
	if k <= 0 {
		panic(lookahead.InvalidArgument("linear.Conflict", "k must be positive, is %d", k))
	}
	r := New(s.k, s.opts...)
	if len(s.pos) != len(o.pos) || s.ContainsEmpty() != o.ContainsEmpty() {
		return r
	}
	if s.ContainsEmpty() {
		r.AddEmpty()
	}
	n := min(len(s.pos), k)
	for i := 0; i < n; i++ {
		c := s.pos[i].Conflict(o.pos[i])
		if c.IsEmpty() {
			r.clear()
			return r
		}
		r.pos = append(r.pos, c)
	}
	for _, lengths := range []*symset.Set{s.lengths, o.lengths} {
		for _, l := range lengths.Values() {
			if m := min(l, n); m > 0 {
				r.lengths.Set(m)
			}
		}
	}
	return r
}

// IsLE is a partial order: s has no more positions than o, every position of s
// is a subset of the corresponding position of o, and every realized length
// of s is realized by o.
func (s *Set) IsLE(o *Set) bool {
	s.sameK("linear.IsLE", o)
	if s.IsEmpty() {
		return true
	}
	if o.IsEmpty() || len(s.pos) > len(o.pos) {
		return false
	}
	for i, p := range s.pos {
		if !o.pos[i].Contains(p) {
			return false
		}
	}
	return o.lengths.Contains(s.lengths)
}

// --- Queries ---------------------------------------------------------------

func (s *Set) checkSeq(op string, seq *kseq.Seq) {
	if seq == nil {
		panic(lookahead.InvalidArgument(op, "string is nil"))
	}
	if seq.K() != s.k {
		panic(lookahead.InvalidArgument(op, "K mismatch %d ≠ %d", s.k, seq.K()))
	}
}

// StartsWith is true if some string represented by s may start with seq.
func (s *Set) StartsWith(seq *kseq.Seq) bool {
	s.checkSeq("linear.StartsWith", seq)
	if s.IsEmpty() || seq.Len() > len(s.pos) {
		return false
	}
	for i, id := range seq.Symbols() {
		if !s.pos[i].Get(id) {
			return false
		}
	}
	return true
}

// ContainsAt is true if value occurs at position pos.
func (s *Set) ContainsAt(pos int, value int) bool {
	if pos < 0 || pos >= len(s.pos) {
		return false
	}
	return s.pos[pos].Get(value)
}

// Contains is true if seq is represented by s: its length is realized and
// each of its symbols occurs at the respective position.
func (s *Set) Contains(seq *kseq.Seq) bool {
	s.checkSeq("linear.Contains", seq)
	if seq.IsEmpty() {
		return s.ContainsEmpty()
	}
	return s.lengths.Get(seq.Len()) && s.StartsWith(seq)
}

// Equals is true if s and o have the same capacity, positions and lengths.
func (s *Set) Equals(o *Set) bool {
	if o == nil || s.k != o.k || len(s.pos) != len(o.pos) || !s.lengths.Equals(o.lengths) {
		return false
	}
	for i, p := range s.pos {
		if !p.Equals(o.pos[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of s.
func (s *Set) Copy() *Set {
	c := &Set{
		k:       s.k,
		pos:     make([]*symset.Set, len(s.pos)),
		lengths: s.lengths.Copy(),
		opts:    s.opts,
		namer:   s.namer,
	}
	for i, p := range s.pos {
		c.pos[i] = p.Copy()
	}
	return c
}

// SetNamer injects a namer for printing.
func (s *Set) SetNamer(namer lookahead.Namer) {
	s.namer = namer
	for _, p := range s.pos {
		p.SetNamer(namer)
	}
}

// String prints positions and realized lengths, e.g., "[{a, c}, {b}] len{1, 2}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, p := range s.pos {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("] len{")
	for i, l := range s.lengths.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(l))
	}
	b.WriteString("}")
	return b.String()
}
