package kseq

import (
	"errors"
	"testing"

	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSetDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	S := NewSet(2)
	assert.True(t, S.IsEmpty())
	assert.True(t, S.Add(New(2, a, b)))
	assert.False(t, S.Add(New(2, a, b)))
	assert.True(t, S.Add(New(2)))
	assert.True(t, S.ContainsEmpty())
	assert.False(t, S.IsEmpty())
	assert.Equal(t, 2, S.Size())
	assert.Equal(t, 1, len(S.Values()))
	assert.True(t, S.Contains(New(2)))
	assert.True(t, S.RemoveEmpty())
	assert.False(t, S.ContainsEmpty())
	assert.True(t, S.Remove(New(2, a, b)))
	assert.True(t, S.IsEmpty())
	for name, op := range map[string]func(){
		"add":      func() { S.Add(nil) },
		"remove":   func() { S.Remove(nil) },
		"contains": func() { S.Contains(nil) },
	} {
		err := lookahead.Catch(op)
		if !errors.Is(err, lookahead.ErrInvalidArgument) {
			t.Errorf("%s: expected invalid argument for nil string, got %v", name, err)
		}
	}
}

func TestSetOrderedPrinting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	S := Of(2, New(2, c), New(2, a, b), New(2), New(2, a))
	S.SetNamer(names)
	assert.Equal(t, "{[], [a], [a, b], [c]}", S.String())
}

func TestAppendScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	A := Of(2, New(2, a, b))
	B := Of(2, New(2, c))
	changed := A.Append(B)
	assert.False(t, changed)
	assert.True(t, A.Equals(Of(2, New(2, a, b))))
}

func TestAppendFastPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	eps := Of(2, New(2))
	A := Of(2, New(2, a), New(2, b))
	assert.False(t, A.Append(eps), "appending {ε} is the identity")
	assert.True(t, A.Equals(Of(2, New(2, a), New(2, b))))
	//
	E := eps.Copy()
	assert.True(t, E.Append(A), "{ε} is replaced by the appended set")
	assert.True(t, E.Equals(A))
	assert.False(t, E.ContainsEmpty())
	//
	N := NewSet(2)
	assert.False(t, N.Append(A))
	assert.True(t, N.IsEmpty())
	assert.True(t, A.Append(NewSet(2)))
	assert.True(t, A.IsEmpty())
}

func TestAppendCrossProduct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	A := Of(3, New(3), New(3, a))
	B := Of(3, New(3, b), New(3, b, c), New(3))
	assert.True(t, A.Append(B))
	expected := Of(3, New(3), New(3, a), New(3, b), New(3, b, c), New(3, a, b), New(3, a, b, c))
	assert.True(t, A.Equals(expected), "got %v", A)
}

func TestAppendAssociative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	A := Of(2, New(2, a), New(2))
	B := Of(2, New(2, b), New(2, c, a))
	C := Of(2, New(2, c), New(2))
	left := A.Copy()
	left.Append(B)
	left.Append(C)
	BC := B.Copy()
	BC.Append(C)
	right := A.Copy()
	right.Append(BC)
	assert.True(t, left.Equals(right), "(A·B)·C = %v, A·(B·C) = %v", left, right)
	assert.Equal(t, left.Hash(), right.Hash())
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	A := Of(2, New(2, a, b), New(2, c))
	B := Of(2, New(2, a, c), New(2, b))
	C1 := A.Conflict(B, 1)
	assert.True(t, C1.Equals(Of(2, New(2, a, b), New(2, a, c))), "got %v", C1)
	C2 := A.Conflict(B, 2)
	assert.True(t, C2.IsEmpty())
	for _, s := range C1.Values() {
		assert.True(t, A.Contains(s) || B.Contains(s))
	}
	E := Of(2, New(2), New(2, a))
	F := Of(2, New(2), New(2, b))
	assert.True(t, E.Conflict(F, 1).Equals(Of(2, New(2))))
	err := lookahead.Catch(func() { A.Conflict(B, 0) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
	err = lookahead.Catch(func() { A.Conflict(NewSet(3), 1) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
}

func TestPartialOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	A := Of(2, New(2, a), New(2))
	B := Of(2, New(2, a), New(2, b), New(2))
	assert.True(t, A.IsLE(A))
	assert.True(t, A.IsLE(B))
	assert.False(t, B.IsLE(A))
	assert.True(t, NewSet(2).IsLE(A))
	assert.False(t, A.IsLE(NewSet(2)))
	assert.False(t, Of(2, New(2, a, b)).IsLE(Of(2, New(2, a))), "prefixes do not count")
	assert.False(t, A.IsLE(Of(2, New(2, a))), "ε must be matched")
}

func TestIsFull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	assert.False(t, NewSet(2).IsFull())
	assert.True(t, Of(2, New(2, a, b), New(2, c, c)).IsFull())
	assert.False(t, Of(2, New(2, a, b), New(2, c)).IsFull())
	assert.False(t, Of(2, New(2, a, b), New(2)).IsFull())
}
