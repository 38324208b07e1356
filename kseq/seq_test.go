package kseq

import (
	"errors"
	"testing"

	"github.com/npillmayer/lookahead"
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
	case lookahead.EOF:
		return lookahead.EOFName, true
	}
	return "", false
}

func TestSeqTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	s := New(2, a, b, c)
	assert.Equal(t, []int{a, b}, s.Symbols())
	assert.True(t, s.IsFull())
	s.Add(c)
	assert.Equal(t, 2, s.Len())
	x := New(3, a)
	x.Append(New(3, b, c))
	assert.Equal(t, []int{a, b, c}, x.Symbols())
	y := New(3).Append(New(3, c))
	assert.Equal(t, 1, y.Len())
	assert.Equal(t, c, y.At(0))
}

func TestSeqContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	err := lookahead.Catch(func() { New(0) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
	err = lookahead.Catch(func() { New(2, a).Append(New(3, b)) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
	err = lookahead.Catch(func() { New(2, a).At(1) })
	assert.True(t, errors.Is(err, lookahead.ErrOutOfRange))
	assert.False(t, New(2, a).Equals(New(3, a)), "different K is never equal")
}

func TestSeqPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	s := New(3, a, b, c)
	assert.True(t, s.StartsWith(New(3, a, b)))
	assert.True(t, s.StartsWith(New(3)))
	assert.False(t, s.StartsWith(New(3, b)))
	assert.False(t, New(3, a).StartsWith(s))
	assert.True(t, s.ContainsAt(1, b))
	assert.False(t, s.ContainsAt(1, a))
	assert.False(t, s.ContainsAt(3, c))
	assert.True(t, s.EqualsTo(New(3, a, b), 2))
	assert.False(t, s.EqualsTo(New(3, a, b), 3))
	assert.False(t, New(3, a).EqualsTo(New(3, a, b), 2))
	assert.True(t, New(3, a).EqualsTo(New(3, a, b), 1))
}

func TestSeqOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	assert.Equal(t, -1, New(3, a).CompareTo(New(3, a, b)))
	assert.Equal(t, 1, New(3, b).CompareTo(New(3, a, c)))
	assert.Equal(t, 0, New(3, a, c).CompareTo(New(3, a, c)))
	assert.Equal(t, -1, New(3).CompareTo(New(3, a)))
	assert.Equal(t, New(3, a, c).Hash(), New(3, a, c).Hash())
	assert.NotEqual(t, New(3, a, c).Hash(), New(2, a, c).Hash())
}

func TestSeqString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.kseq")
	defer teardown()
	//
	s := New(3, a, lookahead.EOF)
	assert.Equal(t, "[0x1, -0x1]", s.String())
	s.SetNamer(names)
	assert.Equal(t, "[a, #eof]", s.String())
	assert.Equal(t, "[]", New(1).String())
}
