// Package history keeps a bounded in-memory window of recent climate
// readings. Oldest entries fall off as new ones arrive (FIFO).
package history

import (
	"sync"

	"github.com/sgolla/polar/internal/climate"
)

// DefaultCapacity is the number of readings kept when no capacity is given.
const DefaultCapacity = 5

// Store is a fixed-capacity ring of readings. The sampling loop is the only
// writer, but HTTP handlers read concurrently, so all access goes through
// the mutex and Snapshot hands out a copy.
type Store struct {
	mu sync.RWMutex

	buf   []climate.Reading
	head  int // next write position
	count int
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Store{buf: make([]climate.Reading, capacity)}
}

// Append inserts r as the newest reading, evicting the oldest one when the
// store is full. O(1).
func (s *Store) Append(r climate.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf[s.head] = r
	s.head = (s.head + 1) % len(s.buf)
	if s.count < len(s.buf) {
		s.count++
	}
}

// Latest returns the most recently appended reading. The second return is
// false if nothing has ever been appended.
func (s *Store) Latest() (climate.Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.count == 0 {
		return climate.Reading{}, false
	}

	return s.buf[(s.head-1+len(s.buf))%len(s.buf)], true
}

// Snapshot returns the current contents oldest-first. The slice is a copy,
// safe to hold while appends continue.
func (s *Store) Snapshot() []climate.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]climate.Reading, s.count)
	start := (s.head - s.count + len(s.buf)) % len(s.buf)
	for i := 0; i < s.count; i++ {
		out[i] = s.buf[(start+i)%len(s.buf)]
	}

	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.count
}

// Cap returns the fixed capacity of the store.
func (s *Store) Cap() int {
	return len(s.buf)
}
