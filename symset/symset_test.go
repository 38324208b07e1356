package symset

import (
	"errors"
	"testing"

	"github.com/npillmayer/lookahead"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSetGetClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	s := New()
	assert.Equal(t, -16, s.Min())
	assert.Equal(t, -17, s.None())
	assert.True(t, s.IsEmpty())
	s.Set(lookahead.EOF)
	s.Set(0)
	s.Set(200)
	assert.True(t, s.Get(-1))
	assert.True(t, s.Get(200))
	assert.False(t, s.Get(1))
	assert.False(t, s.Get(-100))
	assert.Equal(t, 3, s.Cardinality())
	s.Clear(200)
	s.Clear(5000) // beyond storage
	assert.Equal(t, []int{-1, 0}, s.Values())
	s.Flip(0)
	s.Flip(1)
	assert.Equal(t, []int{-1, 1}, s.Values())
}

func TestOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	s := New(WithMin(-2))
	err := lookahead.Catch(func() { s.Set(-3) })
	if !errors.Is(err, lookahead.ErrOutOfRange) {
		t.Errorf("expected out-of-range error, got %v", err)
	}
}

func TestAscendingIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	for _, m := range []int{0, -1, -16, -70} {
		s := New(WithMin(m))
		n := 130
		for x := m; x <= n; x++ {
			s.Set(x)
		}
		prev := s.None()
		count := 0
		for id := s.NextSetBit(s.Min()); id != s.None(); id = s.NextSetBit(id + 1) {
			if id <= prev {
				t.Fatalf("iteration not ascending: %d after %d", id, prev)
			}
			if !s.Get(id) {
				t.Errorf("visited non-member %d", id)
			}
			prev = id
			count++
		}
		assert.Equal(t, n-m+1, count)
		assert.Equal(t, n, prev)
		assert.Equal(t, s.None(), s.NextSetBit(n+1))
		assert.Equal(t, n+1, s.NextClearBit(m))
	}
}

func TestRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	s := New()
	s.SetRange(-3, 3)
	assert.Equal(t, []int{-3, -2, -1, 0, 1, 2}, s.Values())
	s.ClearRange(-1, 1)
	assert.Equal(t, []int{-3, -2, 1, 2}, s.Values())
	s.FlipRange(1, 4)
	assert.Equal(t, []int{-3, -2, 3}, s.Values())
	assert.Equal(t, -1, s.NextClearBit(-3))
	assert.Equal(t, 4, s.NextClearBit(3))
	err := lookahead.Catch(func() { s.SetRange(3, 1) })
	assert.True(t, errors.Is(err, lookahead.ErrInvalidArgument))
}

func TestAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	a := Of(1, 2, 3, 100)
	b := Of(2, 3, 4)
	c := a.Conflict(b)
	assert.Equal(t, []int{2, 3}, c.Values())
	assert.Equal(t, []int{1, 2, 3, 100}, a.Values(), "conflict must not modify receiver")
	assert.True(t, a.Intersects(b))
	assert.True(t, a.Contains(c))
	assert.False(t, c.Contains(a))
	//
	x := a.Copy()
	x.Or(b)
	assert.Equal(t, []int{1, 2, 3, 4, 100}, x.Values())
	x = a.Copy()
	x.Xor(b)
	assert.Equal(t, []int{1, 4, 100}, x.Values())
	x = a.Copy()
	x.AndNot(b)
	assert.Equal(t, []int{1, 100}, x.Values())
	x = b.Copy()
	x.And(a)
	assert.Equal(t, []int{2, 3}, x.Values())
	assert.True(t, x.Equals(c))
	assert.False(t, Of(5).Intersects(Of(6)))
	assert.True(t, New().Contains(New()))
}

func TestBiasMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	a := New(WithMin(-4))
	b := New(WithMin(-8))
	for name, op := range map[string]func(){
		"and":        func() { a.And(b) },
		"or":         func() { a.Or(b) },
		"xor":        func() { a.Xor(b) },
		"andnot":     func() { a.AndNot(b) },
		"conflict":   func() { a.Conflict(b) },
		"contains":   func() { a.Contains(b) },
		"intersects": func() { a.Intersects(b) },
		"nil":        func() { a.Or(nil) },
	} {
		err := lookahead.Catch(op)
		if !errors.Is(err, lookahead.ErrInvalidArgument) {
			t.Errorf("%s: expected invalid argument, got %v", name, err)
		}
	}
	assert.False(t, a.Equals(b))
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	namer := func(id int) (string, bool) {
		switch id {
		case lookahead.EOF:
			return lookahead.EOFName, true
		case 1:
			return "a", true
		}
		return "", false
	}
	s := New(WithNamer(namer))
	s.Set(1)
	s.Set(lookahead.EOF)
	s.Set(31)
	assert.Equal(t, "{#eof, a, 0x1f}", s.String())
	assert.Equal(t, "{}", New().String())
}

func TestConfiguredWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lookahead.symset")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{ConfigNegativeWindow: 4})
	defer gconf.Initialize(testconfig.Conf{})
	s := New()
	assert.Equal(t, -4, s.Min())
	assert.Equal(t, -5, s.None())
	assert.Equal(t, -8, New(WithMin(-8)).Min())
}
