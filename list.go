package flist

import (
	"fmt"
	"iter"
	"slices"
)

// List is a singly linked list. A zero value List is empty and ready
// to use.
//
// A List must not be copied after first use. To copy the contents of
// a List, use [List.Clone] or [List.Assign].
type List[T any] struct {
	_ noCopy

	head node[T] // before-begin sentinel; head.next is the first element
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of returns a list containing vals in order.
func Of[T any](vals ...T) *List[T] {
	return Collect(slices.Values(vals))
}

// Collect returns a list containing the values yielded by seq in
// order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	ls := new(List[T])
	ls.AssignSeq(seq)
	return ls
}

// Clone returns an independent copy of the list.
func (ls *List[T]) Clone() *List[T] {
	return Collect(ls.All())
}

// Assign replaces the contents of ls with a copy of the contents of
// src. Assigning a list to itself does nothing.
func (ls *List[T]) Assign(src *List[T]) {
	if ls == src {
		return
	}
	ls.AssignSeq(src.All())
}

// AssignSeq replaces the contents of ls with the values yielded by
// seq. The new contents are fully built before ls is touched, so if
// seq panics ls is left as it was.
func (ls *List[T]) AssignSeq(seq iter.Seq[T]) {
	var tmp List[T]
	tmp.init(seq)
	ls.Swap(&tmp)
	tmp.Clear()
}

func (ls *List[T]) init(seq iter.Seq[T]) {
	tail := &ls.head
	for v := range seq {
		tail = tail.link(v)
		ls.size++
	}
}

// Swap exchanges the contents of ls and other. Iterators to elements
// follow the elements into the other list. Before-begin positions do
// not move.
func (ls *List[T]) Swap(other *List[T]) {
	ls.head.next, other.head.next = other.head.next, ls.head.next
	ls.size, other.size = other.size, ls.size
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.size
}

// IsEmpty reports whether the list has no elements.
func (ls *List[T]) IsEmpty() bool {
	return ls.size == 0
}

// Front returns the first element. The list must not be empty.
func (ls *List[T]) Front() T {
	if checked && ls.head.next == nil {
		panic(fmt.Errorf("front: %w", ErrEmpty))
	}
	return ls.head.next.val
}

// PushFront inserts v at the front of the list.
func (ls *List[T]) PushFront(v T) {
	ls.head.link(v)
	ls.size++
}

// PopFront removes the first element and returns it. The list must
// not be empty.
func (ls *List[T]) PopFront() T {
	if checked && ls.head.next == nil {
		panic(fmt.Errorf("pop front: %w", ErrEmpty))
	}

	v := ls.head.next.val
	ls.head.unlink()
	ls.size--
	return v
}

// InsertAfter inserts v immediately after pos and returns an iterator
// to the new element. pos must be a position in ls other than the
// end, such as the result of [List.BeforeBegin].
func (ls *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	n := pos.node()
	if checked {
		ls.check("insert after", n)
	}

	ls.size++
	return iterAt(n.link(v))
}

// EraseAfter removes the element following pos and returns an
// iterator to the element that now follows pos, which is the end of
// the list if the removed element was the last one. pos must have a
// successor.
func (ls *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	n := pos.node()
	if checked {
		ls.check("erase after", n)
		if n.next == nil {
			panic(fmt.Errorf("erase after: %w", ErrNoSuccessor))
		}
	}

	n.unlink()
	ls.size--
	return iterAt(n.next)
}

// Clear removes every element from the list.
func (ls *List[T]) Clear() {
	for ls.head.next != nil {
		ls.head.unlink()
	}
	ls.size = 0
}

func (ls *List[T]) check(op string, n *node[T]) {
	if n == nil {
		panic(fmt.Errorf("%v: %w", op, ErrEnd))
	}
	for cur := &ls.head; cur != nil; cur = cur.next {
		if cur == n {
			return
		}
	}
	panic(fmt.Errorf("%v: %w", op, ErrForeign))
}

// Begin returns an iterator to the first element, or the end of the
// list if it is empty.
func (ls *List[T]) Begin() Iterator[T] {
	return iterAt(ls.head.next)
}

// End returns the position one past the last element. It is always
// the zero Iterator.
func (ls *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position preceding the first element. It
// may only be used as an argument to InsertAfter and EraseAfter or be
// advanced; it must not be dereferenced.
func (ls *List[T]) BeforeBegin() Iterator[T] {
	return iterAt(&ls.head)
}

// CBegin is the read-only form of [List.Begin].
func (ls *List[T]) CBegin() ConstIterator[T] {
	return ls.Begin().Const()
}

// CEnd is the read-only form of [List.End].
func (ls *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin is the read-only form of [List.BeforeBegin].
func (ls *List[T]) CBeforeBegin() ConstIterator[T] {
	return ls.BeforeBegin().Const()
}

// All returns an iterator over the elements of the list.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head.next
		for cur != nil {
			if !yield(cur.val) {
				return
			}
			cur = cur.next
		}
	}
}

func (ls *List[T]) String() string {
	return fmt.Sprint(slices.Collect(ls.All()))
}

type node[T any] struct {
	val  T
	next *node[T]
}

// link inserts a new node holding v after n and returns it.
func (n *node[T]) link(v T) *node[T] {
	n.next = &node[T]{val: v, next: n.next}
	return n.next
}

// unlink removes the node after n. The removed node is zeroed so that
// stale iterators can't reach nodes still in the list.
func (n *node[T]) unlink() {
	victim := n.next
	n.next = victim.next
	*victim = node[T]{}
}

func iterAt[T any](n *node[T]) Iterator[T] {
	return Iterator[T]{cursor[T]{n}}
}
