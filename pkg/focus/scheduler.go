package focus

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped it
	// before it ran.
	Stop() bool
}

// Scheduler runs fn once after delay. A KeyDispatcher used on its own needs
// fn delivered on the loop that feeds it key events; Manager serializes the
// callback with its own lock, so any Scheduler will do there.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Timer
}

// AfterFuncScheduler schedules with time.AfterFunc. When Post is set, the
// expired callback is handed to Post instead of being run on the timer
// goroutine, which lets a host marshal it back onto its event loop.
type AfterFuncScheduler struct {
	Post func(fn func())
}

// Schedule implements Scheduler.
func (s AfterFuncScheduler) Schedule(delay time.Duration, fn func()) Timer {
	post := s.Post
	if post == nil {
		return time.AfterFunc(delay, fn)
	}
	return time.AfterFunc(delay, func() { post(fn) })
}

// ManualScheduler is a Scheduler driven by an explicit clock. Nothing fires
// until Advance moves the clock past a callback's deadline. It is used for
// deterministic replay and in tests.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue []*manualTimer
}

type manualTimer struct {
	owner   *ManualScheduler
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{owner: s, at: s.now + delay, seq: s.seq, fn: fn}
	s.queue = append(s.queue, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that became
// due, in deadline order. Callbacks run on the caller's goroutine.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now
	s.mu.Unlock()

	for {
		t := s.popDue(now)
		if t == nil {
			return
		}
		t.fn()
	}
}

// Pending returns the number of callbacks waiting to fire.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Now returns the scheduler's clock.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) popDue(now time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.queue[:0]
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.queue = live
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].at != s.queue[j].at {
			return s.queue[i].at < s.queue[j].at
		}
		return s.queue[i].seq < s.queue[j].seq
	})
	if len(s.queue) == 0 || s.queue[0].at > now {
		return nil
	}
	t := s.queue[0]
	t.fired = true
	s.queue = s.queue[1:]
	return t
}

func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
