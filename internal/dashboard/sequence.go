package dashboard

import "sync"

// sequence drops responses that arrive after a newer one was applied.
type sequence struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func (s *sequence) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// apply runs fn when n is newer than the last applied number.
func (s *sequence) apply(n uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= s.applied {
		return false
	}
	s.applied = n
	fn()
	return true
}
