package kseq

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lookahead"
)

// Set is a set of strings sharing capacity K. The empty string is represented
// by a marker, separate from the other members.
type Set struct {
	k       int
	strings *treeset.Set // of *Seq, non-empty only
	empty   bool         // set contains ε
	namer   lookahead.Namer
}

func seqComparator(a, b interface{}) int {
	return a.(*Seq).CompareTo(b.(*Seq))
}

// NewSet creates an empty set of strings with capacity k.
func NewSet(k int) *Set {
	if k <= 0 {
		tracer().Errorf("kseq.NewSet: k must be positive, is %d", k)
		panic(lookahead.InvalidArgument("kseq.NewSet", "k must be positive, is %d", k))
	}
	return &Set{k: k, strings: treeset.NewWith(seqComparator)}
}

// Of creates a set of capacity k, containing seqs.
func Of(k int, seqs ...*Seq) *Set {
	S := NewSet(k)
	for _, s := range seqs {
		S.Add(s)
	}
	return S
}

func (S *Set) sameK(op string, o *Set) {
	if o == nil {
		panic(lookahead.InvalidArgument(op, "operand is nil"))
	}
	if S.k != o.k {
		tracer().Errorf("%s: K mismatch %d ≠ %d", op, S.k, o.k)
		panic(lookahead.InvalidArgument(op, "K mismatch %d ≠ %d", S.k, o.k))
	}
}

func (S *Set) checkSeq(op string, s *Seq) {
	if s == nil {
		panic(lookahead.InvalidArgument(op, "string is nil"))
	}
	if s.k != S.k {
		tracer().Errorf("%s: K mismatch %d ≠ %d", op, S.k, s.k)
		panic(lookahead.InvalidArgument(op, "K mismatch %d ≠ %d", S.k, s.k))
	}
}

// K returns the capacity of the member strings.
func (S *Set) K() int {
	return S.k
}

// --- Membership ------------------------------------------------------------

// Add adds a copy of s. Adding the empty string sets the ε marker.
// Returns true if S changed.
func (S *Set) Add(s *Seq) bool {
	S.checkSeq("kseq.Set.Add", s)
	if s.IsEmpty() {
		return S.AddEmpty()
	}
	if S.strings.Contains(s) {
		return false
	}
	S.strings.Add(s.Copy())
	return true
}

// AddAll adds all members of o to S. Returns true if S changed.
func (S *Set) AddAll(o *Set) bool {
	S.sameK("kseq.Set.AddAll", o)
	changed := false
	if o.empty {
		changed = S.AddEmpty()
	}
	for _, v := range o.strings.Values() {
		if !S.strings.Contains(v) {
			S.strings.Add(v.(*Seq).Copy())
			changed = true
		}
	}
	return changed
}

// Remove removes s from S. Returns true if S changed.
func (S *Set) Remove(s *Seq) bool {
	S.checkSeq("kseq.Set.Remove", s)
	if s.IsEmpty() {
		return S.RemoveEmpty()
	}
	if !S.strings.Contains(s) {
		return false
	}
	S.strings.Remove(s)
	return true
}

// Contains is a membership test for s.
func (S *Set) Contains(s *Seq) bool {
	if s == nil {
		panic(lookahead.InvalidArgument("kseq.Set.Contains", "string is nil"))
	}
	if s.k != S.k {
		return false
	}
	if s.IsEmpty() {
		return S.empty
	}
	return S.strings.Contains(s)
}

// AddEmpty sets the ε marker. Returns true if S changed.
func (S *Set) AddEmpty() bool {
	changed := !S.empty
	S.empty = true
	return changed
}

// RemoveEmpty clears the ε marker. Returns true if S changed.
func (S *Set) RemoveEmpty() bool {
	changed := S.empty
	S.empty = false
	return changed
}

// ContainsEmpty is true if the language represented by S contains ε.
func (S *Set) ContainsEmpty() bool {
	return S.empty
}

// Size returns the number of members, including ε.
func (S *Set) Size() int {
	n := S.strings.Size()
	if S.empty {
		n++
	}
	return n
}

// IsEmpty is true if S has no members at all, i.e. represents the empty language.
// A set containing just ε is not empty.
func (S *Set) IsEmpty() bool {
	return !S.empty && S.strings.Empty()
}

func (S *Set) isEpsilonOnly() bool {
	return S.empty && S.strings.Empty()
}

// Values returns the non-empty members of S in ascending order.
// Strings returned are copies.
func (S *Set) Values() []*Seq {
	v := make([]*Seq, 0, S.strings.Size())
	for _, s := range S.strings.Values() {
		v = append(v, s.(*Seq).Copy())
	}
	return v
}

// Each calls f for every non-empty member of S, in ascending order.
// f must not modify the string.
func (S *Set) Each(f func(s *Seq)) {
	it := S.strings.Iterator()
	for it.Next() {
		f(it.Value().(*Seq))
	}
}

// all returns the members of S, including ε as a zero-length string.
func (S *Set) all() []*Seq {
	v := make([]*Seq, 0, S.Size())
	if S.empty {
		v = append(v, Empty(S.k))
	}
	for _, s := range S.strings.Values() {
		v = append(v, s.(*Seq))
	}
	return v
}

// --- Algebra ---------------------------------------------------------------

// Append replaces S by the bounded concatenation of S and o:
// every string a·b, truncated to K, for a in S and b in o.
// Returns true if S changed.
func (S *Set) Append(o *Set) bool {
	S.sameK("kseq.Set.Append", o)
	if o.isEpsilonOnly() { // identity
		return false
	}
	if S.isEpsilonOnly() {
		S.strings = treeset.NewWith(seqComparator)
		S.empty = false
		S.AddAll(o)
		return true
	}
	if S.IsEmpty() {
		return false
	}
	if o.IsEmpty() {
		S.strings.Clear()
		S.empty = false
		return true
	}
	R := NewSet(S.k)
	others := o.all()
	for _, a := range S.all() {
		if a.IsFull() {
			R.Add(a)
			continue
		}
		for _, b := range others {
			R.Add(a.Copy().Append(b))
		}
	}
	if R.Equals(S) {
		return false
	}
	tracer().Debugf("append: %v · %v = %v", S, o, R)
	S.strings, S.empty = R.strings, R.empty
	return true
}

// Conflict returns all members of S and o which have a partner on the other
// side with an identical prefix of length k (strings shorter than k have to
// match completely). ε is part of the result if both sides contain it.
func (S *Set) Conflict(o *Set, k int) *Set {
	S.sameK("kseq.Set.Conflict", o)
	if k <= 0 {
		panic(lookahead.InvalidArgument("kseq.Set.Conflict", "k must be positive, is %d", k))
	}
	R := NewSet(S.k)
	R.namer = S.namer
	if S.empty && o.empty {
		R.AddEmpty()
	}
	S.Each(func(a *Seq) {
		o.Each(func(b *Seq) {
			if a.EqualsTo(b, k) {
				R.Add(a)
				R.Add(b)
			}
		})
	})
	return R
}

// IsLE is a partial order on sets: it is true if every member of S is a member
// of o. Strings have to match exactly, not just by prefix.
func (S *Set) IsLE(o *Set) bool {
	S.sameK("kseq.Set.IsLE", o)
	if S.IsEmpty() {
		return true
	}
	if o.IsEmpty() {
		return false
	}
	if S.empty && !o.empty {
		return false
	}
	return o.strings.Contains(S.strings.Values()...)
}

// IsFull is true if S is non-empty, does not contain ε, and all of its members
// have reached capacity. Such a set cannot change by appending.
func (S *Set) IsFull() bool {
	if S.empty || S.strings.Empty() {
		return false
	}
	it := S.strings.Iterator()
	for it.Next() {
		if !it.Value().(*Seq).IsFull() {
			return false
		}
	}
	return true
}

// Equals is true if o has the same capacity and the same members as S.
func (S *Set) Equals(o *Set) bool {
	if o == nil || S.k != o.k || S.empty != o.empty || S.strings.Size() != o.strings.Size() {
		return false
	}
	return o.strings.Contains(S.strings.Values()...)
}

// Copy returns a copy of S.
func (S *Set) Copy() *Set {
	C := NewSet(S.k)
	C.namer = S.namer
	C.AddAll(S)
	return C
}

// Hash returns a digest of capacity and members.
func (S *Set) Hash() string {
	content := struct {
		K       int
		Empty   bool
		Strings [][]int
	}{K: S.k, Empty: S.empty}
	S.Each(func(s *Seq) {
		content.Strings = append(content.Strings, s.syms)
	})
	h, err := structhash.Hash(content, 1)
	if err != nil {
		tracer().Errorf("kseq.Set.Hash: %v", err)
	}
	return h
}

// SetNamer injects a namer for printing.
func (S *Set) SetNamer(namer lookahead.Namer) {
	S.namer = namer
}

// String lists the members in ascending order, ε first as "[]".
func (S *Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, s := range S.all() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.format(S.namer))
	}
	b.WriteString("}")
	return b.String()
}
