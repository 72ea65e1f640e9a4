package ledger

import (
	"context"
	"sync"
)

// Memory is a process-local Store.
type Memory struct {
	claims map[string]Marker
	last   map[string]Marker
	mu     sync.Mutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		claims: make(map[string]Marker),
		last:   make(map[string]Marker),
	}
}

// Claim implements Store.
func (s *Memory) Claim(ctx context.Context, m Marker) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[m.Key()]; ok {
		return false, nil
	}
	s.claims[m.Key()] = m
	s.last[m.Course] = m
	return true, nil
}

// Release implements Store.
func (s *Memory) Release(ctx context.Context, m Marker) error {
	if err := m.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claims, m.Key())
	if last, ok := s.last[m.Course]; ok && last.Date == m.Date {
		delete(s.last, m.Course)
		for _, other := range s.claims {
			if other.Course != m.Course {
				continue
			}
			if cur, ok := s.last[m.Course]; !ok || other.SentAt.After(cur.SentAt) {
				s.last[m.Course] = other
			}
		}
	}
	return nil
}

// Last implements Store.
func (s *Memory) Last(ctx context.Context, course string) (Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.last[course]
	if !ok {
		return Marker{}, ErrNotFound
	}
	return m, nil
}

var _ Store = (*Memory)(nil)
