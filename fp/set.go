package fp

import "github.com/qjpcpu/container.v2/flist"

type _Set[K comparable] map[K]struct{}

func newSet[K comparable]() _Set[K] {
	return make(_Set[K])
}

func setOf[K comparable](l *flist.ForwardList[K]) _Set[K] {
	s := newSet[K]()
	for v := range l.All() {
		s.Add(v)
	}
	return s
}

// Add return false if k already exists
func (s _Set[K]) Add(k K) bool {
	if s.Contains(k) {
		return false
	}
	s[k] = struct{}{}
	return true
}

func (s _Set[K]) Contains(k K) bool {
	_, ok := s[k]
	return ok
}
