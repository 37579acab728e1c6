package flist

import "github.com/qjpcpu/container.v2/assert"

// Position is a borrowed reference to a list node, implemented by Iterator and ConstIterator.
// Any two positions of the same list compare by node identity.
type Position[T any] interface {
	position() *node[T]
}

func nodeOf[T any](p Position[T]) *node[T] {
	if p == nil {
		return nil
	}
	return p.position()
}

// Iterator is a mutable forward iterator. The zero value is End.
// An Iterator is invalidated when its node is erased or the list is cleared.
// Passing an invalidated iterator to InsertAfter or EraseAfter is not detected
// and leaves Size out of step with the elements actually in the list.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) position() *node[T] { return it.n }

// IsEnd reports whether it is past the last element
func (it Iterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal compare node identity with a mutable or read only position
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == nodeOf(other)
}

// Next advance to the following node
func (it Iterator[T]) Next() Iterator[T] {
	assert.Require(it.n != nil, "Iterator.Next", "iterator is end")
	return Iterator[T]{n: it.n.next}
}

// Value of the referenced element
func (it Iterator[T]) Value() T {
	assert.Require(it.n != nil, "Iterator.Value", "iterator is end")
	return it.n.val
}

// Ptr to the referenced element, valid as long as the iterator is
func (it Iterator[T]) Ptr() *T {
	assert.Require(it.n != nil, "Iterator.Ptr", "iterator is end")
	return &it.n.val
}

// Set overwrite the referenced element
func (it Iterator[T]) Set(v T) {
	assert.Require(it.n != nil, "Iterator.Set", "iterator is end")
	it.n.val = v
}

// Const read only view of the same position
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is a read only forward iterator. The zero value is End.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) position() *node[T] { return it.n }

// IsEnd reports whether it is past the last element
func (it ConstIterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal compare node identity with a mutable or read only position
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == nodeOf(other)
}

// Next advance to the following node
func (it ConstIterator[T]) Next() ConstIterator[T] {
	assert.Require(it.n != nil, "ConstIterator.Next", "iterator is end")
	return ConstIterator[T]{n: it.n.next}
}

// Value of the referenced element
func (it ConstIterator[T]) Value() T {
	assert.Require(it.n != nil, "ConstIterator.Value", "iterator is end")
	return it.n.val
}
