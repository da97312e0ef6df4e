package flist

import "cmp"

// Swap exchanges the contents of a and b. It is equivalent to
// a.Swap(b).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Equal reports whether a and b have the same length and equal
// elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but uses eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}

	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of [Equal].
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a sorts before b, comparing elements
// lexicographically. A list sorts before any longer list that it is a
// prefix of.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is like [Less] but uses less to order elements.
func LessFunc[T any](a, b *List[T], less func(T, T) bool) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.val, y.val) {
			return true
		}
		if less(y.val, x.val) {
			return false
		}
	}
	return x == nil && y != nil
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0, or +1 depending on whether a sorts before,
// the same as, or after b. It agrees with [Less].
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare] but uses compare to order elements.
func CompareFunc[T any](a, b *List[T], compare func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := compare(x.val, y.val); c != 0 {
			return c
		}
	}

	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return 1
	default:
		return 0
	}
}
