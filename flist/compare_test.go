package flist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	require.True(t, Equal(a, a))
	require.True(t, Equal(a, a.Clone()))
	require.True(t, Equal(New[int](), New[int]()))
	require.False(t, Equal(a, Of(1, 2)))
	require.False(t, Equal(a, Of(1, 2, 4)))
	require.True(t, NotEqual(a, Of(3, 2, 1)))
	require.False(t, NotEqual(a, Of(1, 2, 3)))

	fold := func(x, y string) bool { return strings.EqualFold(x, y) }
	require.True(t, EqualFunc(Of("A", "b"), Of("a", "B"), fold))
	require.False(t, EqualFunc(Of("A", "b"), Of("a", "c"), fold))
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{nil, nil, 0},
		{nil, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 3}, []int{1, 2, 3}, 1},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
		{[]int{2}, []int{1, 9, 9}, 1},
	}
	for _, c := range cases {
		a, b := FromSlice(c.a), FromSlice(c.b)
		require.Equal(t, c.want, Compare(a, b), "%v vs %v", c.a, c.b)
		require.Equal(t, -c.want, Compare(b, a), "%v vs %v", c.b, c.a)
		require.Equal(t, c.want < 0, Less(a, b), "%v < %v", c.a, c.b)
		require.Equal(t, c.want <= 0, LessEqual(a, b), "%v <= %v", c.a, c.b)
		require.Equal(t, c.want > 0, Greater(a, b), "%v > %v", c.a, c.b)
		require.Equal(t, c.want >= 0, GreaterEqual(a, b), "%v >= %v", c.a, c.b)
	}
}

func TestOrderingFunc(t *testing.T) {
	byLen := func(x, y string) bool { return len(x) < len(y) }
	require.True(t, LessFunc(Of("a", "bb"), Of("a", "ccc"), byLen))
	require.False(t, LessFunc(Of("a", "ccc"), Of("b", "ddd"), byLen))
	require.True(t, LessFunc(Of("a"), Of("b", "c"), byLen))

	cmpLen := func(x, y string) int { return len(x) - len(y) }
	require.Equal(t, 0, CompareFunc(Of("ab"), Of("cd"), cmpLen))
	require.Equal(t, 1, CompareFunc(Of("abc"), Of("d"), cmpLen))
	require.Equal(t, -1, CompareFunc(Of("a"), Of("b", "c"), cmpLen))
}
