package scheduler

import (
	"sync"
	"time"
)

// Scheduler owns fire-and-forget timers whose callbacks mutate shared
// state. Every callback is guaranteed not to run after Close returns,
// so a pending timer can never touch state owned by a torn-down session.
type Scheduler struct {
	mu     sync.Mutex
	nextID int64
	timers map[int64]*time.Timer
	closed bool
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{timers: make(map[int64]*time.Timer)}
}

// After schedules fn to run once after d. The returned cancel func is
// safe to call at any time, including after the callback has fired.
func (s *Scheduler) After(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	s.nextID++
	id := s.nextID

	timer := time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()
		fn()
	})
	s.timers[id] = timer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t, ok := s.timers[id]; ok {
			t.Stop()
			delete(s.timers, id)
		}
	}
}

// Every schedules fn to run repeatedly with period d until the returned
// stop func is called or the scheduler is closed.
func (s *Scheduler) Every(d time.Duration, fn func()) (stop func()) {
	var (
		mu      sync.Mutex
		stopped bool
		cancel  func()
	)

	var schedule func()
	schedule = func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		cancel = s.After(d, func() {
			fn()
			schedule()
		})
	}
	schedule()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		if cancel != nil {
			cancel()
		}
	}
}

// Close stops every pending timer. Callbacks that have not started yet
// will never run; Close does not wait for a callback already in flight.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
