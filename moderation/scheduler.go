package moderation

import (
	"sync"
	"time"
)

// ReversalHandle identifies one scheduled reversal for cancellation.
type ReversalHandle uint64

// Scheduler holds the in-memory timers that undo time-boxed actions once
// their duration elapses. Reversals fire independently of each other and
// of in-flight commands. They are not persisted: a restart drops every
// pending reversal.
type Scheduler struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]*time.Timer)}
}

// Schedule runs fn after d unless the handle is cancelled first. fn runs
// on its own goroutine, at most once.
func (s *Scheduler) Schedule(d time.Duration, fn func()) ReversalHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		// A cancel that raced the timer wins: the entry is already gone.
		if live {
			fn()
		}
	})
	return ReversalHandle(id)
}

// Cancel marks the reversal cancelled. Cancelling an already fired or
// already cancelled handle is a no-op.
func (s *Scheduler) Cancel(h ReversalHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.pending[uint64(h)]; ok {
		timer.Stop()
		delete(s.pending, uint64(h))
	}
}

// Pending reports how many reversals have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
