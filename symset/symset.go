package symset

import (
	"math/bits"
	"strings"

	"github.com/npillmayer/lookahead"
)

const wordSize = 64

// Set is a set of symbol ids. The zero value is not usable, create sets with New.
type Set struct {
	words []uint64
	min   int // most negative representable id
	namer lookahead.Namer
}

// Option configures a set at construction time.
type Option func(*Set)

// WithMin sets the most negative id a set will be able to represent.
func WithMin(min int) Option {
	return func(s *Set) {
		s.min = min
	}
}

// WithNamer injects a namer, used for printing the set.
func WithNamer(namer lookahead.Namer) Option {
	return func(s *Set) {
		s.namer = namer
	}
}

// New creates an empty symbol set.
func New(opts ...Option) *Set {
	s := &Set{min: defaultMin()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Of creates a set containing ids, using the default minimum.
func Of(ids ...int) *Set {
	s := New()
	for _, id := range ids {
		s.Set(id)
	}
	return s
}

// Min returns the most negative id s is able to represent.
func (s *Set) Min() int {
	return s.min
}

// None is the sentinel returned from NextSetBit if there is no further member.
// It is one below Min().
func (s *Set) None() int {
	return s.min - 1
}

// Namer returns the namer of s, which may be nil.
func (s *Set) Namer() lookahead.Namer {
	return s.namer
}

// SetNamer injects a namer for printing.
func (s *Set) SetNamer(namer lookahead.Namer) {
	s.namer = namer
}

// --- Single bits and ranges ------------------------------------------------

func (s *Set) index(op string, id int) (int, uint) {
	if id < s.min {
		tracer().Errorf("%s: symbol id %d below minimum %d", op, id, s.min)
		panic(lookahead.OutOfRange(op, "symbol id %d below minimum %d", id, s.min))
	}
	i := id - s.min
	return i / wordSize, uint(i % wordSize)
}

func (s *Set) grow(words int) {
	if words > len(s.words) {
		w := make([]uint64, words)
		copy(w, s.words)
		s.words = w
	}
}

// Set adds id to s.
func (s *Set) Set(id int) {
	w, b := s.index("symset.Set", id)
	s.grow(w + 1)
	s.words[w] |= 1 << b
}

// Clear removes id from s.
func (s *Set) Clear(id int) {
	w, b := s.index("symset.Clear", id)
	if w < len(s.words) {
		s.words[w] &^= 1 << b
	}
}

// Flip toggles membership of id.
func (s *Set) Flip(id int) {
	w, b := s.index("symset.Flip", id)
	s.grow(w + 1)
	s.words[w] ^= 1 << b
}

// Get is a membership test. Ids below Min() are never members.
func (s *Set) Get(id int) bool {
	if id < s.min {
		return false
	}
	i := id - s.min
	w := i / wordSize
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<uint(i%wordSize)) != 0
}

func (s *Set) checkRange(op string, from, to int) {
	if from > to {
		panic(lookahead.InvalidArgument(op, "range [%d,%d) is reversed", from, to))
	}
}

// SetRange adds all ids of the half-open range [from,to).
func (s *Set) SetRange(from, to int) {
	s.checkRange("symset.SetRange", from, to)
	for id := from; id < to; id++ {
		s.Set(id)
	}
}

// ClearRange removes all ids of the half-open range [from,to).
func (s *Set) ClearRange(from, to int) {
	s.checkRange("symset.ClearRange", from, to)
	for id := from; id < to; id++ {
		s.Clear(id)
	}
}

// FlipRange toggles all ids of the half-open range [from,to).
func (s *Set) FlipRange(from, to int) {
	s.checkRange("symset.FlipRange", from, to)
	for id := from; id < to; id++ {
		s.Flip(id)
	}
}

// NextSetBit returns the smallest member ≥ from, or None() if there is none.
func (s *Set) NextSetBit(from int) int {
	if from < s.min {
		from = s.min
	}
	i := from - s.min
	w := i / wordSize
	if w >= len(s.words) {
		return s.None()
	}
	word := s.words[w] & (^uint64(0) << uint(i%wordSize))
	for {
		if word != 0 {
			return w*wordSize + bits.TrailingZeros64(word) + s.min
		}
		w++
		if w == len(s.words) {
			return s.None()
		}
		word = s.words[w]
	}
}

// NextClearBit returns the smallest id ≥ from which is not a member of s.
func (s *Set) NextClearBit(from int) int {
	if from < s.min {
		from = s.min
	}
	i := from - s.min
	w := i / wordSize
	if w >= len(s.words) {
		return from
	}
	word := ^s.words[w] & (^uint64(0) << uint(i%wordSize))
	for {
		if word != 0 {
			return w*wordSize + bits.TrailingZeros64(word) + s.min
		}
		w++
		if w == len(s.words) {
			return w*wordSize + s.min
		}
		word = ^s.words[w]
	}
}

// Values returns the members of s in ascending order.
func (s *Set) Values() []int {
	v := make([]int, 0, s.Cardinality())
	for id := s.NextSetBit(s.min); id != s.None(); id = s.NextSetBit(id + 1) {
		v = append(v, id)
	}
	return v
}

// --- Set algebra -----------------------------------------------------------

func (s *Set) compatible(op string, o *Set) {
	if o == nil {
		panic(lookahead.InvalidArgument(op, "operand is nil"))
	}
	if s.min != o.min {
		tracer().Errorf("%s: minimum mismatch %d ≠ %d", op, s.min, o.min)
		panic(lookahead.InvalidArgument(op, "minimum mismatch %d ≠ %d", s.min, o.min))
	}
}

// And intersects s with o, in place.
func (s *Set) And(o *Set) {
	s.compatible("symset.And", o)
	for i := range s.words {
		if i < len(o.words) {
			s.words[i] &= o.words[i]
		} else {
			s.words[i] = 0
		}
	}
}

// Or unites s with o, in place.
func (s *Set) Or(o *Set) {
	s.compatible("symset.Or", o)
	s.grow(len(o.words))
	for i, w := range o.words {
		s.words[i] |= w
	}
}

// Xor computes the symmetric difference of s and o, in place.
func (s *Set) Xor(o *Set) {
	s.compatible("symset.Xor", o)
	s.grow(len(o.words))
	for i, w := range o.words {
		s.words[i] ^= w
	}
}

// AndNot removes all members of o from s.
func (s *Set) AndNot(o *Set) {
	s.compatible("symset.AndNot", o)
	for i := 0; i < len(s.words) && i < len(o.words); i++ {
		s.words[i] &^= o.words[i]
	}
}

// Conflict returns the intersection of s and o as a new set, leaving s unchanged.
func (s *Set) Conflict(o *Set) *Set {
	s.compatible("symset.Conflict", o)
	c := s.Copy()
	c.And(o)
	return c
}

// Contains is a subset test: is every member of o a member of s?
func (s *Set) Contains(o *Set) bool {
	s.compatible("symset.Contains", o)
	for i, w := range o.words {
		var sw uint64
		if i < len(s.words) {
			sw = s.words[i]
		}
		if w&^sw != 0 {
			return false
		}
	}
	return true
}

// Intersects returns true if s and o have a member in common.
func (s *Set) Intersects(o *Set) bool {
	s.compatible("symset.Intersects", o)
	for i := 0; i < len(s.words) && i < len(o.words); i++ {
		if s.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// Cardinality returns the number of members.
func (s *Set) Cardinality() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty returns true if s has no members.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equals returns true if s and o have the same minimum and the same members.
func (s *Set) Equals(o *Set) bool {
	if o == nil || s.min != o.min {
		return false
	}
	n := max(len(s.words), len(o.words))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s.words) {
			a = s.words[i]
		}
		if i < len(o.words) {
			b = o.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// Reset removes all members.
func (s *Set) Reset() {
	s.words = s.words[:0]
}

// Copy returns a copy of s, sharing the namer.
func (s *Set) Copy() *Set {
	c := &Set{min: s.min, namer: s.namer}
	if len(s.words) > 0 {
		c.words = make([]uint64, len(s.words))
		copy(c.words, s.words)
	}
	return c
}

// String lists the members in ascending order, by name if possible.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for id := s.NextSetBit(s.min); id != s.None(); id = s.NextSetBit(id + 1) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(lookahead.SymbolName(id, s.namer))
	}
	b.WriteString("}")
	return b.String()
}
