package scheduler

import (
	"sort"
	"sync"
	"time"
)

type fakeTask struct {
	fireAt time.Duration
	seq    uint64
	run    func()
}

// FakeScheduler is a deterministic Scheduler for tests: tasks fire only
// when Advance moves the virtual clock past their deadline. Tasks
// scheduled by a firing task are honored within the same Advance call.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextSeq uint64
	tasks   []fakeTask
	stopped bool
}

// NewFakeScheduler creates a fake scheduler at virtual time zero
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// Schedule registers task to fire delay after the current virtual time
func (f *FakeScheduler) Schedule(delay time.Duration, task func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		return
	}
	f.tasks = append(f.tasks, fakeTask{
		fireAt: f.now + delay,
		seq:    f.nextSeq,
		run:    task,
	})
	f.nextSeq++
}

// Stop drops all pending tasks
func (f *FakeScheduler) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.tasks = nil
}

// Pending returns the number of tasks not yet fired
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

// Advance moves the virtual clock forward and runs every task whose
// deadline falls within the window, in deadline order.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		if f.stopped || len(f.tasks) == 0 {
			f.now = target
			f.mu.Unlock()
			return
		}
		sort.SliceStable(f.tasks, func(i, j int) bool {
			if f.tasks[i].fireAt == f.tasks[j].fireAt {
				return f.tasks[i].seq < f.tasks[j].seq
			}
			return f.tasks[i].fireAt < f.tasks[j].fireAt
		})
		next := f.tasks[0]
		if next.fireAt > target {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.tasks = f.tasks[1:]
		f.now = next.fireAt
		f.mu.Unlock()

		next.run()
	}
}
