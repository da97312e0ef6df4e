// Package flist provides a generic singly linked list with forward
// iterators, modeled on a standard forward list.
//
// Positions in a [List] are expressed as iterators. Insertion and
// removal always happen after a position, and the list provides a
// before-begin position, [List.BeforeBegin], so that the front of the
// list is handled the same way as any other position.
//
// Iterators are invalidated by any structural change that removes the
// node they reference. Operating on an invalid iterator, dereferencing
// [List.End], or removing from an empty list is a programming error.
// These are not checked by default. Building with the flistcheck tag
// turns them into panics carrying one of the errors declared below.
package flist

import "errors"

var (
	ErrEnd         = errors.New("iterator is at end of list")
	ErrEmpty       = errors.New("list is empty")
	ErrNoSuccessor = errors.New("position has no successor")
	ErrForeign     = errors.New("position does not belong to list")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
