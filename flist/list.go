// Package flist implements ForwardList, a singly linked list that owns its
// nodes and is traversed front to back.
//
// A list keeps an internal sentinel node in front of the first element, so
// InsertAfter and EraseAfter work the same way for the first element (through
// BeforeBegin) and for interior ones. Size is cached and O(1).
//
// A ForwardList is not safe for concurrent use. Callers that share a list
// between goroutines must synchronize access themselves.
//
// Broken preconditions (popping an empty list, inserting or erasing relative to
// End, dereferencing End) panic with *assert.PreconditionError.
package flist

import (
	sysfmt "fmt"
	"iter"

	"github.com/qjpcpu/container.v2/assert"
)

type node[T any] struct {
	next *node[T]
	val  T
}

// noCopy trips go vet's copylocks check, the sentinel address is the list identity
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ForwardList is a singly linked sequence. The zero value is an empty list ready to use.
// A ForwardList must not be copied after first use, use Clone or Assign instead.
type ForwardList[T any] struct {
	noCopy noCopy
	head   node[T]
	size   int
}

// New empty list
func New[T any]() *ForwardList[T] {
	return new(ForwardList[T])
}

// Of build list holding values in the given order
func Of[T any](values ...T) *ForwardList[T] {
	return FromSlice(values)
}

// FromSlice build list holding the slice elements in order
func FromSlice[T any](values []T) *ForwardList[T] {
	l := New[T]()
	tail := &l.head
	for _, v := range values {
		tail = l.linkAfter(tail, v)
	}
	return l
}

// FromSeq build list by draining seq in order
func FromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := New[T]()
	tail := &l.head
	for v := range seq {
		tail = l.linkAfter(tail, v)
	}
	return l
}

// Clone deep copy, the result shares no node with l
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	c := New[T]()
	tail := &c.head
	for n := l.head.next; n != nil; n = n.next {
		tail = c.linkAfter(tail, n.val)
	}
	return c
}

// Assign replace contents of l with a copy of other.
// The copy is built aside and swapped in, so l is untouched if copying panics.
func (l *ForwardList[T]) Assign(other *ForwardList[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Size of list
func (l *ForwardList[T]) Size() int {
	return l.size
}

// IsEmpty list
func (l *ForwardList[T]) IsEmpty() bool {
	return l.size == 0
}

// Front return first element, list must not be empty
func (l *ForwardList[T]) Front() T {
	assert.Require(l.head.next != nil, "Front", "list is empty")
	return l.head.next.val
}

// PushFront insert v before the first element
func (l *ForwardList[T]) PushFront(v T) {
	l.linkAfter(&l.head, v)
}

// PopFront remove first element, list must not be empty
func (l *ForwardList[T]) PopFront() {
	assert.Require(l.head.next != nil, "PopFront", "list is empty")
	l.unlinkAfter(&l.head)
}

// InsertAfter insert v right after pos and return an iterator to it.
// pos must belong to l and must not be End. Other iterators stay valid.
func (l *ForwardList[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	n := nodeOf(pos)
	assert.Require(n != nil, "InsertAfter", "position is end")
	return Iterator[T]{n: l.linkAfter(n, v)}
}

// EraseAfter remove the element following pos and return an iterator to the new successor.
// pos must belong to l and must have a successor.
func (l *ForwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	n := nodeOf(pos)
	assert.Require(n != nil, "EraseAfter", "position is end")
	assert.Require(n.next != nil, "EraseAfter", "position has no successor")
	l.unlinkAfter(n)
	return Iterator[T]{n: n.next}
}

// RemoveIf erase every element matching pred, return how many were erased
func (l *ForwardList[T]) RemoveIf(pred func(T) bool) int {
	var removed int
	prev := &l.head
	for prev.next != nil {
		if pred(prev.next.val) {
			l.unlinkAfter(prev)
			removed++
		} else {
			prev = prev.next
		}
	}
	return removed
}

// Reverse relink nodes in place
func (l *ForwardList[T]) Reverse() {
	var prev *node[T]
	cur := l.head.next
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head.next = prev
}

// Clear release every element, the list stays usable
func (l *ForwardList[T]) Clear() {
	n := l.head.next
	for n != nil {
		next := n.next
		release(n)
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// Swap exchange contents with other without touching any node
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchange contents of a and b
func Swap[T any](a, b *ForwardList[T]) {
	a.Swap(b)
}

// Begin iterator to the first element, equals End on empty list
func (l *ForwardList[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End iterator, never dereferenced
func (l *ForwardList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin iterator to the sentinel, only valid as InsertAfter/EraseAfter position
func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head}
}

// CBegin read only Begin
func (l *ForwardList[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

// CEnd read only End
func (l *ForwardList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin read only BeforeBegin
func (l *ForwardList[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head}
}

// All yield elements front to back, starting from the current head on every call.
// The list must not be modified while ranging.
func (l *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Slice copy elements out in order
func (l *ForwardList[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

func (l *ForwardList[T]) String() string {
	return sysfmt.Sprint(l.Slice())
}

func (l *ForwardList[T]) linkAfter(prev *node[T], v T) *node[T] {
	n := &node[T]{val: v, next: prev.next}
	prev.next = n
	l.size++
	return n
}

func (l *ForwardList[T]) unlinkAfter(prev *node[T]) {
	n := prev.next
	prev.next = n.next
	release(n)
	l.size--
}

// release cut n off the chain and drop its value
func release[T any](n *node[T]) {
	var zero T
	n.next = nil
	n.val = zero
}
