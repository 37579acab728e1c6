package fp

import (
	"cmp"
	"slices"

	"github.com/qjpcpu/container.v2/flist"
)

// every function here leaves its input untouched and builds a new list in input order

type builder[T any] struct {
	list *flist.ForwardList[T]
	tail flist.Iterator[T]
}

func newBuilder[T any]() *builder[T] {
	l := flist.New[T]()
	return &builder[T]{list: l, tail: l.BeforeBegin()}
}

func (b *builder[T]) add(v T) {
	b.tail = b.list.InsertAfter(b.tail, v)
}

// Map convert every element by fn
// example: fp.Map(flist.Of("a", "bb"), func(s string) int { return len(s) })
func Map[T, R any](l *flist.ForwardList[T], fn func(T) R) *flist.ForwardList[R] {
	b := newBuilder[R]()
	for v := range l.All() {
		b.add(fn(v))
	}
	return b.list
}

// MapIndexed is Map with element index
func MapIndexed[T, R any](l *flist.ForwardList[T], fn func(int, T) R) *flist.ForwardList[R] {
	b := newBuilder[R]()
	var i int
	for v := range l.All() {
		b.add(fn(i, v))
		i++
	}
	return b.list
}

// FlatMap map and flatten
func FlatMap[T, R any](l *flist.ForwardList[T], fn func(T) []R) *flist.ForwardList[R] {
	b := newBuilder[R]()
	for v := range l.All() {
		for _, r := range fn(v) {
			b.add(r)
		}
	}
	return b.list
}

// Filter keep elements matching fn
// example: fp.Filter(flist.Of("a", ""), func(s string) bool { return len(s) > 0 })
func Filter[T any](l *flist.ForwardList[T], fn func(T) bool) *flist.ForwardList[T] {
	b := newBuilder[T]()
	for v := range l.All() {
		if fn(v) {
			b.add(v)
		}
	}
	return b.list
}

// Reject drop elements matching fn
func Reject[T any](l *flist.ForwardList[T], fn func(T) bool) *flist.ForwardList[T] {
	return Filter(l, func(v T) bool { return !fn(v) })
}

// Foreach iter for each element with its index
func Foreach[T any](l *flist.ForwardList[T], fn func(int, T)) {
	var i int
	for v := range l.All() {
		fn(i, v)
		i++
	}
}

// Reduce fold elements into memo from front to back
// example: fp.Reduce(flist.Of("a"), 0, func(count int, s string) int { return count + 1 })
func Reduce[T, M any](l *flist.ForwardList[T], initval M, fn func(M, T) M) M {
	memo := initval
	for v := range l.All() {
		memo = fn(memo, v)
	}
	return memo
}

// GroupBy key, each group keeps input order
func GroupBy[T any, K comparable](l *flist.ForwardList[T], fn func(T) K) map[K]*flist.ForwardList[T] {
	groups := make(map[K]*builder[T])
	for v := range l.All() {
		key := fn(v)
		b, ok := groups[key]
		if !ok {
			b = newBuilder[T]()
			groups[key] = b
		}
		b.add(v)
	}
	out := make(map[K]*flist.ForwardList[T], len(groups))
	for k, b := range groups {
		out[k] = b.list
	}
	return out
}

// Partition split list into chunks of size, the last one may be shorter.
// size <= 0 yields a single chunk holding everything.
func Partition[T any](l *flist.ForwardList[T], size int) *flist.ForwardList[*flist.ForwardList[T]] {
	chunks := newBuilder[*flist.ForwardList[T]]()
	if size <= 0 {
		chunks.add(l.Clone())
		return chunks.list
	}
	var cur *builder[T]
	var n int
	for v := range l.All() {
		if cur == nil || n == size {
			cur = newBuilder[T]()
			chunks.add(cur.list)
			n = 0
		}
		cur.add(v)
		n++
	}
	return chunks.list
}

// Uniq keep the first occurrence of each element
func Uniq[T comparable](l *flist.ForwardList[T]) *flist.ForwardList[T] {
	return UniqBy(l, func(v T) T { return v })
}

// UniqBy keep the first element of each key
func UniqBy[T any, K comparable](l *flist.ForwardList[T], fn func(T) K) *flist.ForwardList[T] {
	seen := newSet[K]()
	return Filter(l, func(v T) bool { return seen.Add(fn(v)) })
}

// Sub elements of l not in l2
func Sub[T comparable](l, l2 *flist.ForwardList[T]) *flist.ForwardList[T] {
	s2 := setOf(l2)
	return Reject(l, s2.Contains)
}

// Intersect elements of l also in l2, deduplicated
func Intersect[T comparable](l, l2 *flist.ForwardList[T]) *flist.ForwardList[T] {
	s2 := setOf(l2)
	return Uniq(Filter(l, s2.Contains))
}

// Concat lists in order
func Concat[T any](lists ...*flist.ForwardList[T]) *flist.ForwardList[T] {
	b := newBuilder[T]()
	for _, l := range lists {
		for v := range l.All() {
			b.add(v)
		}
	}
	return b.list
}

// Flatten list of lists
func Flatten[T any](l *flist.ForwardList[*flist.ForwardList[T]]) *flist.ForwardList[T] {
	return Concat(l.Slice()...)
}

// Take first n elements
func Take[T any](l *flist.ForwardList[T], n int) *flist.ForwardList[T] {
	b := newBuilder[T]()
	for v := range l.All() {
		if n <= 0 {
			break
		}
		b.add(v)
		n--
	}
	return b.list
}

// Sort ascending, stable
func Sort[T cmp.Ordered](l *flist.ForwardList[T]) *flist.ForwardList[T] {
	return SortBy(l, cmp.Less[T])
}

// SortBy less function, stable
func SortBy[T any](l *flist.ForwardList[T], less func(a, b T) bool) *flist.ForwardList[T] {
	items := l.Slice()
	slices.SortStableFunc(items, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return flist.FromSlice(items)
}

// First element
func First[T any](l *flist.ForwardList[T]) Option[T] {
	if l.IsEmpty() {
		return None[T]()
	}
	return Some(l.Front())
}

// Find first element matching fn
func Find[T any](l *flist.ForwardList[T], fn func(T) bool) Option[T] {
	for v := range l.All() {
		if fn(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// Contains elem
func Contains[T comparable](l *flist.ForwardList[T], elem T) bool {
	return Find(l, Equal(elem)).IsSome()
}
