package flist

import "cmp"

// Equal lists have the same size and pairwise equal elements
func Equal[T comparable](a, b *ForwardList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal
func NotEqual[T comparable](a, b *ForwardList[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a custom element equality
func EqualFunc[T any](a, b *ForwardList[T], eq func(T, T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return true
}

// LessFunc lexicographic less over elements ordered by less.
// A strict prefix is less than the longer list.
func LessFunc[T any](a, b *ForwardList[T], less func(T, T) bool) bool {
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

// CompareFunc three way lexicographic comparison, -1, 0 or +1
func CompareFunc[T any](a, b *ForwardList[T], compare func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := compare(x.val, y.val); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

// Compare lists of ordered elements
func Compare[T cmp.Ordered](a, b *ForwardList[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// Less a < b
func Less[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessEqual a <= b
func LessEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(b, a)
}

// Greater a > b
func Greater[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Less(b, a)
}

// GreaterEqual a >= b
func GreaterEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return !Less(a, b)
}
