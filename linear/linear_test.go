package linear

import (
	"errors"
	"testing"

	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/lookahead/kseq"
	"github.com/npillmayer/lookahead/symset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const (
	a = iota + 1
	b
	c
)

func names(id int) (string, bool) {
	switch id {
	case a:
		return "a", true
	case b:
		return "b", true
	case c:
		return "c", true
	}
	return "", false
}

// lin creates a linearized set by projecting strings of capacity k.
// A nil slice denotes ε.
func lin(k int, strs ...[]int) *Set {
	S := kseq.NewSet(k)
	for _, s := range strs {
		S.Add(kseq.New(k, s...))
	}
	return Project(S, symset.WithNamer(names))
}

func TestProjectSingleSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	s := Project(kseq.Of(3, kseq.New(3, b)))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.At(0).Equals(symset.Of(b)))
	assert.Equal(t, []int{1}, s.Lengths())
	assert.False(t, s.ContainsEmpty())
}

func TestProjectIsLossy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	s := lin(2, []int{a, b}, []int{c})
	assert.Equal(t, "[{a, c}, {b}] len{1, 2}", s.String())
	assert.True(t, s.Contains(kseq.New(2, a, b)))
	assert.True(t, s.Contains(kseq.New(2, c, b)), "cross-position combination")
	assert.True(t, s.Contains(kseq.New(2, a)))
	assert.False(t, s.Contains(kseq.New(2)))
	assert.True(t, s.StartsWith(kseq.New(2, c)))
	assert.False(t, s.StartsWith(kseq.New(2, b)))
	assert.True(t, s.ContainsAt(1, b))
	assert.False(t, s.ContainsAt(2, b))
	err := lookahead.Catch(func() { s.At(2) })
	assert.True(t, errors.Is(err, lookahead.ErrOutOfRange))
}

func TestEmptyMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	s := New(2)
	assert.True(t, s.IsEmpty())
	assert.True(t, s.AddEmpty())
	assert.False(t, s.AddEmpty())
	assert.True(t, s.ContainsEmpty())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(kseq.New(2)))
	assert.True(t, s.RemoveEmpty())
	assert.True(t, s.IsEmpty())
}

func TestAddAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	s := lin(3, []int{a})
	o := lin(3, []int{b, c, a})
	assert.True(t, s.AddAt(o, 1, 3))
	assert.Equal(t, 3, s.Len(), "positions beyond K are dropped")
	assert.Equal(t, "[{a}, {b}, {c}] len{1}", s.String())
	assert.False(t, s.AddAt(o, 1, 2))
}

func TestAppendScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	A := lin(2, []int{a, b})
	B := lin(2, []int{c})
	assert.False(t, A.Append(B))
	assert.True(t, A.Equals(lin(2, []int{a, b})))
}

func TestAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	A := lin(3, nil, []int{a})
	B := lin(3, []int{b}, []int{b, c})
	assert.True(t, A.Append(B))
	assert.Equal(t, "[{a, b}, {b, c}, {c}] len{1, 2, 3}", A.String())
	//
	eps := lin(3, nil)
	C := B.Copy()
	assert.False(t, C.Append(eps), "appending {ε} is the identity")
	assert.True(t, C.Equals(B))
	E := eps.Copy()
	assert.True(t, E.Append(B))
	assert.True(t, E.Equals(B))
	assert.True(t, C.Append(New(3)))
	assert.True(t, C.IsEmpty())
	assert.Equal(t, 0, C.Len())
	assert.False(t, New(3).Append(B))
	err := lookahead.Catch(func() { A.Append(New(2)) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	r := lin(2, []int{a, b}).Conflict(lin(2, []int{a, c}), 1)
	assert.Equal(t, "[{a}] len{1}", r.String())
	r = lin(2, []int{a, b}).Conflict(lin(2, []int{a, c}), 2)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	err := lookahead.Catch(func() { lin(2, []int{a}).Conflict(lin(2, []int{a}), 0) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
}

func TestConflictAsymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	// both sides realize only ε
	r := lin(2, nil).Conflict(lin(2, nil), 2)
	assert.True(t, r.ContainsEmpty())
	assert.Equal(t, 0, r.Len())
	// ε agrees, but position 0 does not: ε is lost as well
	r = lin(2, nil, []int{a}).Conflict(lin(2, nil, []int{b}), 2)
	assert.True(t, r.IsEmpty())
	assert.False(t, r.ContainsEmpty())
	// number of positions differs
	r = lin(2, nil).Conflict(lin(2, nil, []int{b}), 2)
	assert.True(t, r.IsEmpty())
	// ε containment differs
	r = lin(2, []int{a}).Conflict(lin(2, nil, []int{a}), 2)
	assert.True(t, r.IsEmpty())
	// ε agrees and positions intersect
	r = lin(2, nil, []int{a}).Conflict(lin(2, nil, []int{a, b}), 2)
	assert.True(t, r.IsEmpty(), "positions differ in number")
	r = lin(2, nil, []int{a}).Conflict(lin(2, nil, []int{a}, []int{c}), 2)
	assert.True(t, r.ContainsEmpty())
	assert.Equal(t, "[{a}] len{0, 1}", r.String())
	// lengths without positions do not survive as ε
	s, o := New(2), New(2)
	s.AddLength(1)
	o.AddLength(1)
	r = s.Conflict(o, 2)
	assert.False(t, r.ContainsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
}

func TestPartialOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.linear")
	defer teardown()
	//
	A := lin(2, []int{a})
	B := lin(2, []int{a}, []int{b, c})
	assert.True(t, A.IsLE(A))
	assert.True(t, B.IsLE(B))
	assert.True(t, A.IsLE(B))
	assert.False(t, B.IsLE(A))
	assert.True(t, New(2).IsLE(A))
	assert.False(t, A.IsLE(New(2)))
	// same positions, different lengths: antisymmetry needs lengths
	C := lin(2, []int{a, c}, []int{b})
	D := lin(2, []int{a, c}, []int{b, c})
	assert.False(t, C.IsLE(D))
	assert.True(t, D.IsLE(lin(2, []int{a, c}, []int{b}, []int{b, c})))
}
