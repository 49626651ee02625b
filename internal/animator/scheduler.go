package animator

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Scheduler arms recurring work. The returned function cancels it; once it
// returns, fn is not called again.
type Scheduler interface {
	Every(interval time.Duration, fn func(now time.Time)) (cancel func())
}

// TickerScheduler runs each registration on its own time.Ticker goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func(now time.Time)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				// Both cases may be ready at once; cancellation wins.
				if ctx.Err() != nil {
					return
				}
				fn(t)
			}
		}
	}()
	return cancel
}

// ManualScheduler fires registrations only when Advance moves its clock.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	entries []*manualEntry
}

type manualEntry struct {
	interval  time.Duration
	next      time.Time
	fn        func(time.Time)
	cancelled bool
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func(now time.Time)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &manualEntry{interval: interval, next: s.now.Add(interval), fn: fn}
	s.entries = append(s.entries, e)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		e.cancelled = true
		s.prune()
	}
}

// Advance moves the clock forward by d, firing every due callback in time
// order. Callbacks run without the scheduler lock held, so they may arm or
// cancel registrations.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	for {
		e := s.due(target)
		if e == nil {
			break
		}
		s.now = e.next
		e.next = e.next.Add(e.interval)
		now := s.now
		s.mu.Unlock()
		e.fn(now)
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Now returns the scheduler clock.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of live registrations.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *ManualScheduler) due(target time.Time) *manualEntry {
	live := make([]*manualEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.cancelled && !e.next.After(target) {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].next.Before(live[j].next)
	})
	return live[0]
}

func (s *ManualScheduler) prune() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.cancelled {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
