package flist

import "fmt"

// Position is a location in a [List]. It is implemented by both
// [Iterator] and [ConstIterator], so either may be passed to
// [List.InsertAfter], [List.EraseAfter], and the Equal methods.
type Position[T any] interface {
	node() *node[T]
}

// cursor holds the traversal state shared by both iterator types.
type cursor[T any] struct {
	n *node[T]
}

func (c cursor[T]) node() *node[T] {
	return c.n
}

// Valid reports whether the iterator references a node. It is false
// only at the end of the list.
func (c cursor[T]) Valid() bool {
	return c.n != nil
}

// Equal reports whether c and p reference the same node. Positions
// compare by identity, never by value.
func (c cursor[T]) Equal(p Position[T]) bool {
	if p == nil {
		return c.n == nil
	}
	return c.n == p.node()
}

func (c *cursor[T]) advance() {
	if checked && c.n == nil {
		panic(fmt.Errorf("advance: %w", ErrEnd))
	}
	c.n = c.n.next
}

func (c cursor[T]) value() *T {
	if checked && c.n == nil {
		panic(fmt.Errorf("dereference: %w", ErrEnd))
	}
	return &c.n.val
}

// Iterator is a position in a [List] that allows the referenced
// element to be modified. The zero value is equal to [List.End].
type Iterator[T any] struct {
	cursor[T]
}

// Next advances the iterator to the following node and returns it.
// Advancing an iterator at the end of the list is invalid.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.advance()
	return it
}

// PostNext advances the iterator and returns its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.advance()
	return prev
}

// Get returns the referenced element.
func (it Iterator[T]) Get() T {
	return *it.value()
}

// Set replaces the referenced element with v.
func (it Iterator[T]) Set(v T) {
	*it.value() = v
}

// Ptr returns a pointer to the referenced element, or nil if the
// iterator is at the end of the list.
func (it Iterator[T]) Ptr() *T {
	if it.n == nil {
		return nil
	}
	return &it.n.val
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a read-only position in a [List]. An [Iterator]
// can be converted to a ConstIterator with [Iterator.Const], but not
// the other way around. The zero value is equal to [List.CEnd].
type ConstIterator[T any] struct {
	cursor[T]
}

// Next advances the iterator to the following node and returns it.
func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.advance()
	return it
}

// PostNext advances the iterator and returns its previous position.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.advance()
	return prev
}

// Get returns the referenced element.
func (it ConstIterator[T]) Get() T {
	return *it.value()
}

// Lookup returns the referenced element and true, or the zero value
// and false if the iterator is at the end of the list.
func (it ConstIterator[T]) Lookup() (v T, ok bool) {
	if it.n == nil {
		return v, false
	}
	return it.n.val, true
}
