package arraylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSeq(t *testing.T, vals ...int) *List[int] {
	t.Helper()
	l := New[int]()
	for _, v := range vals {
		_, err := l.Add(v)
		require.NoError(t, err)
	}
	return l
}

func TestCursorArithmetic(t *testing.T) {
	l := newSeq(t, 10, 20, 30, 40)
	begin, end := l.Begin(), l.End()

	require.Equal(t, 4, end.Distance(begin))
	require.Equal(t, -4, begin.Distance(end))
	require.Equal(t, 30, begin.Add(2).Value())
	require.Equal(t, 40, end.Sub(1).Value())
	require.True(t, begin.Add(4).Equal(end))
	require.True(t, end.Sub(4).Equal(begin))
	require.True(t, Offset(3, begin).Equal(begin.Add(3)))
	require.Equal(t, 20, begin.Index(1))
	require.Equal(t, 30, end.Index(-2))
	require.True(t, begin.Less(end))
	require.False(t, end.Less(begin))
	require.Equal(t, 1, begin.Next().Pos())
	require.True(t, begin.Next().Prev().Equal(begin))
}

func TestCursorIncDec(t *testing.T) {
	l := newSeq(t, 1, 2, 3)

	it := l.Begin()
	require.Equal(t, 2, it.Inc().Value())
	require.Equal(t, 3, it.Inc().Value())
	require.Equal(t, 2, it.Dec().Value())

	prev := it.PostInc()
	require.Equal(t, 2, prev.Value())
	require.Equal(t, 3, it.Value())

	prev = it.PostDec()
	require.Equal(t, 3, prev.Value())
	require.Equal(t, 2, it.Value())

	it.Advance(2)
	require.True(t, it.Equal(l.End()))
	it.Retreat(3)
	require.True(t, it.Equal(l.Begin()))
}

func TestCursorMutation(t *testing.T) {
	type point struct{ X, Y int }
	l := New[point]()
	_, err := l.Add(point{1, 2})
	require.NoError(t, err)
	_, err = l.Add(point{3, 4})
	require.NoError(t, err)

	it := l.Begin()
	Ptr(it).X = 100
	Store(it.Next(), point{7, 8})
	PtrAt(it, 1).Y = 9

	require.Equal(t, []point{{100, 2}, {7, 9}}, l.Values())
	require.Equal(t, 100, l.CBegin().Value().X)
}

func TestConstCursor(t *testing.T) {
	l := newSeq(t, 5, 6, 7)
	c := l.CBegin()

	require.Equal(t, 3, l.CEnd().Distance(c))
	require.Equal(t, 7, c.Index(2))
	require.True(t, l.Begin().Const().Equal(c))
	require.True(t, l.End().Const().Equal(l.CEnd()))

	var sum int
	for it := l.CBegin(); !it.Equal(l.CEnd()); it.Inc() {
		sum += it.Value()
	}
	require.Equal(t, 18, sum)
}

func TestCursorEmptyList(t *testing.T) {
	l := New[int]()
	require.True(t, l.Begin().Equal(l.End()))
	require.True(t, l.CBegin().Equal(l.CEnd()))
	require.Equal(t, 0, l.End().Distance(l.Begin()))
}

func TestCursorInvalidatedByGrowth(t *testing.T) {
	l := newSeq(t, 1, 2)
	require.Equal(t, 2, l.Cap())
	stale := l.Begin()

	_, err := l.Add(3)
	require.NoError(t, err)

	// The old block was freed: the cursor still compares but aliases zeroed storage
	require.False(t, stale.Equal(l.Begin()))
	require.Equal(t, 0, stale.Value())
	require.Equal(t, 1, l.Begin().Value())
}

func TestCursorsFromDifferentListsDiffer(t *testing.T) {
	a := newSeq(t, 1)
	b := newSeq(t, 1)
	require.False(t, a.Begin().Equal(b.Begin()))
}
