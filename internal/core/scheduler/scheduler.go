package scheduler

import (
	"log"
	"sync"
	"time"
)

// Scheduler runs tasks after a fixed delay. The production
// implementation is backed by real timers; tests use the fake in
// fake.go to advance virtual time deterministically.
type Scheduler interface {
	Schedule(delay time.Duration, task func())
	Stop()
}

// TimerScheduler schedules tasks on time.AfterFunc timers
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	nextID  uint64
	stopped bool
}

// NewTimerScheduler creates a new timer-backed scheduler
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[uint64]*time.Timer),
	}
}

// Schedule runs task after delay on its own goroutine
func (s *TimerScheduler) Schedule(delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	id := s.nextID
	s.nextID++
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		task()
	})
}

// Stop cancels all pending tasks. Tasks already running are not
// interrupted.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	log.Println("⏰ Scheduler stopped")
}
