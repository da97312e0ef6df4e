package flist_test

import (
	"fmt"

	"deedles.dev/flist"
)

func Example() {
	ls := flist.Of(1, 2, 3)
	ls.InsertAfter(ls.Begin(), 10)
	ls.EraseAfter(ls.BeforeBegin())
	ls.PushFront(0)

	for v := range ls.All() {
		fmt.Println(v)
	}
	// Output:
	// 0
	// 10
	// 2
	// 3
}

func ExampleList_EraseAfter() {
	ls := flist.Of(1, 2, 3, 4, 5, 6)

	// Remove every even element by trailing a position one behind.
	prev := ls.BeforeBegin()
	for cur := ls.Begin(); cur.Valid(); {
		if cur.Get()%2 == 0 {
			cur = ls.EraseAfter(prev)
			continue
		}
		prev = cur
		cur.Next()
	}
	fmt.Println(ls, ls.Len())
	// Output: [1 3 5] 3
}

func ExampleLess() {
	a := flist.Of("apple", "pear")
	b := flist.Of("apple", "plum")
	fmt.Println(flist.Less(a, b), flist.Less(b, a), flist.Equal(a, a.Clone()))
	// Output: true false true
}
