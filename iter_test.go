package flist_test

import (
	"testing"

	"deedles.dev/flist"
	"github.com/stretchr/testify/require"
)

func TestIteratorZero(t *testing.T) {
	ls := flist.Of(1)

	var it flist.Iterator[int]
	require.True(t, it.Equal(ls.End()))
	require.False(t, it.Valid())
	require.Nil(t, it.Ptr())

	var cit flist.ConstIterator[int]
	require.True(t, cit.Equal(ls.CEnd()))
	require.True(t, cit.Equal(it))
	_, ok := cit.Lookup()
	require.False(t, ok)
}

func TestIteratorNext(t *testing.T) {
	ls := flist.Of(1, 2, 3)

	it := ls.BeforeBegin()
	require.Same(t, &it, it.Next())
	require.True(t, it.Equal(ls.Begin()))

	prev := it.PostNext()
	require.Equal(t, 1, prev.Get())
	require.Equal(t, 2, it.Get())

	it.Next().Next()
	require.True(t, it.Equal(ls.End()))
}

func TestIteratorSet(t *testing.T) {
	ls := flist.Of(1, 2, 3)
	for it := ls.Begin(); it.Valid(); it.Next() {
		it.Set(it.Get() * 10)
	}
	require.Equal(t, []int{10, 20, 30}, values(ls))

	p := ls.Begin().Ptr()
	require.NotNil(t, p)
	*p = 5
	require.Equal(t, 5, ls.Front())
}

func TestIteratorPtrStruct(t *testing.T) {
	type point struct{ X, Y int }
	ls := flist.Of(point{1, 2}, point{3, 4})
	ls.Begin().Ptr().Y = 7
	require.Equal(t, []point{{1, 7}, {3, 4}}, values(ls))
}

func TestConstIterator(t *testing.T) {
	ls := flist.Of("a", "b")

	cit := ls.CBegin()
	require.True(t, cit.Equal(ls.Begin()))
	require.True(t, ls.Begin().Equal(cit))
	require.True(t, ls.Begin().Const() == cit)

	v, ok := cit.Lookup()
	require.True(t, ok)
	require.Equal(t, "a", v)

	prev := cit.PostNext()
	require.Equal(t, "a", prev.Get())
	require.Equal(t, "b", cit.Get())

	require.Same(t, &cit, cit.Next())
	require.True(t, cit.Equal(ls.CEnd()))
	require.True(t, cit.Equal(ls.End()))

	bb := ls.CBeforeBegin()
	require.True(t, bb.Equal(ls.BeforeBegin()))
	require.False(t, bb.Equal(ls.CBegin()))
	require.True(t, bb.Next().Equal(ls.CBegin()))
}

func TestIteratorIdentity(t *testing.T) {
	a := flist.Of(1, 2)
	b := flist.Of(1, 2)
	require.False(t, a.Begin().Equal(b.Begin()))
	require.False(t, a.BeforeBegin().Equal(b.BeforeBegin()))
	require.True(t, a.End().Equal(b.End()))
	require.False(t, a.Begin().Equal(nil))
	require.True(t, a.End().Equal(nil))
}

func TestIteratorAfterInsert(t *testing.T) {
	ls := flist.Of(1, 3)
	first := ls.Begin()
	second := ls.InsertAfter(first, 2)

	next := first
	next.Next()
	require.True(t, next.Equal(second))
	require.Equal(t, 1, first.Get())
}
